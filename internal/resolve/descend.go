package resolve

import (
	"go.uber.org/zap"

	"github.com/ecl-project/ecl-completion/internal/grammar"
)

// Context is a command considered active for completion, together with the
// index in the token stream where its own tokens begin. tokens[Start] is the
// token that invoked the command.
type Context struct {
	Command *grammar.Command
	Start   int
}

// Descend walks the token stream down the command tree, one subcommand
// boundary at a time, and returns the visited contexts from the root down to
// the deepest command whose arguments are still being typed.
func (r *Resolver) Descend(root *grammar.Command, tokens []string) []Context {
	path := []Context{{Command: root, Start: 0}}
	pos := 0

	for pos < len(tokens) {
		// Empty tokens carry no context information.
		if tokens[pos] == "" {
			pos++
			continue
		}

		current := path[len(path)-1]
		skip, found := r.subcommandOffset(current.Command, tokens[pos:])
		r.logger.Debug("context scan",
			zap.String("command", current.Command.Name),
			zap.Int("pos", pos),
			zap.Int("skip", skip),
			zap.Bool("found", found))

		if !found || skip == 0 {
			break
		}

		pos += skip
		sub := current.Command.FindSubcommand(tokens[pos])
		if sub == nil {
			break
		}
		path = append(path, Context{Command: sub, Start: pos})
	}

	return path
}

// subcommandOffset scans the window for the first token that names a
// subcommand of cmd, skipping over each recognized option and the argument
// tokens it consumes. It returns the offset of the subcommand token within
// the window, or false when the window is exhausted first. The offset is
// tracked with an explicit index; tokens swallowed during option consumption
// count toward it.
func (r *Resolver) subcommandOffset(cmd *grammar.Command, window []string) (int, bool) {
	i := 0
	for i < len(window) {
		token := window[i]
		i++

		if option := cmd.FindOption(token); option != nil {
			args, n := option.ConsumeArgs(cmd, window[i:])
			r.logger.Debug("option consumed",
				zap.Strings("names", option.Names),
				zap.Strings("args", args))
			i += n
		}

		if cmd.FindSubcommand(token) != nil {
			return i - 1, true
		}
	}

	return 0, false
}
