// Package compline handles the completion-line contract between bash and the
// resolver: reading the raw line bash exposes through COMP_LINE, splitting it
// into tokens with shell quoting rules, and rendering the registration
// snippet used to hook the resolver into a shell session.
package compline

import (
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// EnvCompLine is the environment variable bash sets for complete -C programs.
const EnvCompLine = "COMP_LINE"

// FromEnv returns the raw completion line, if the process was invoked by a
// shell performing completion.
func FromEnv() (string, bool) {
	return os.LookupEnv(EnvCompLine)
}

// Tokens splits a raw completion line into tokens using shell quoting rules.
// A line ending in whitespace yields an extra trailing empty token: the
// cursor sits on a fresh word rather than inside a partial one. Unbalanced
// quoting is an error.
func Tokens(line string) ([]string, error) {
	tokens, err := shell.Fields(line, nil)
	if err != nil {
		return nil, fmt.Errorf("compline: splitting %q: %w", line, err)
	}

	if line != "" && strings.ContainsRune(" \t", rune(line[len(line)-1])) {
		tokens = append(tokens, "")
	}

	return tokens, nil
}

// RegistrationScript returns the bash snippet registering executable as the
// completion resolver for ecl. Printed when the program is run outside of a
// completion request.
func RegistrationScript(executable string) string {
	return fmt.Sprintf(`# bash completion for ecl
# Add the following to your shell startup, or source this output directly:
#   eval "$(%s)"
complete -o default -C %q ecl
`, executable, executable)
}
