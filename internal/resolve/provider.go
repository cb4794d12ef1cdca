package resolve

import (
	"github.com/ecl-project/ecl-completion/internal/grammar"
	"github.com/ecl-project/ecl-completion/internal/profile"
)

// ValueSource is implemented by grammar definitions (options and
// positionals) that can offer completion values for their arguments.
type ValueSource interface {
	ValueType() grammar.ExpectedType
	LiteralValues() []string
}

// Available returns the literal values a definition can complete to:
// profile names when the definition expects a profile, its own declared
// value set otherwise. Path-typed definitions declare no values of their
// own, leaving path completion to the shell.
func Available(src ValueSource, profiles []profile.Profile) []string {
	if src.ValueType() == grammar.TypeProfile {
		return profile.Names(profiles)
	}
	return src.LiteralValues()
}
