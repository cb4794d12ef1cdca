// Package resolve computes shell tab-completion candidates for the ecl CLI.
// Resolution runs in two phases: descending the command tree to the deepest
// active context (descend.go), then replaying that context's tokens to
// enumerate the legal next tokens (this file). Both phases take all state as
// explicit input, so concurrent resolutions never contend.
package resolve

import (
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/ecl-project/ecl-completion/internal/grammar"
	"github.com/ecl-project/ecl-completion/internal/profile"
)

// HiddenPrefix marks grammar entries reserved for internal use. They are
// never surfaced as candidates.
const HiddenPrefix = "__"

// Resolver resolves completion candidates against an immutable grammar tree.
type Resolver struct {
	logger *zap.Logger
}

// New creates a Resolver. A nil logger disables debug tracing.
func New(logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{logger: logger}
}

// Candidates replays the window of tokens belonging to one command context
// and returns every legal next token. window[0] is the context's own
// invocation name and is always skipped.
func (r *Resolver) Candidates(cmd *grammar.Command, window []string, profiles []profile.Profile) []string {
	// Options already given a full set of arguments, keyed by definition
	// identity so structurally equal options in different slots stay apart.
	usedOptions := make(map[*grammar.Option][]string)
	var usedPositionals []string

	// The option whose value is currently being typed, if the last thing
	// seen was an option with nothing after it.
	var pending *grammar.Option

	i := 1
	for i < len(window) {
		token := window[i]
		i++

		if option := cmd.FindOption(token); option != nil {
			pending = option
			args, n := option.ConsumeArgs(cmd, window[i:])
			i += n

			// Tokens left after the option's arguments mean the user moved
			// on; the option is fully used, not the completion target.
			if i < len(window) {
				pending = nil
				usedOptions[option] = args
			}
		} else if i < len(window) {
			// A non-option token that is not the final one counts as a
			// consumed positional value. The final token is the partial
			// text being completed and consumes nothing.
			usedPositionals = append(usedPositionals, token)
		}
	}

	r.logger.Debug("replayed context",
		zap.String("command", cmd.Name),
		zap.Int("used_options", len(usedOptions)),
		zap.Strings("used_positionals", usedPositionals),
		zap.Bool("pending_option", pending != nil))

	if pending != nil {
		return Available(pending, profiles)
	}

	var candidates []string
	for _, option := range cmd.Options {
		if _, ok := usedOptions[option]; !ok {
			candidates = append(candidates, option.Names...)
		}
	}

	candidates = append(candidates, lo.Map(cmd.Subcommands, func(sub *grammar.Command, _ int) string {
		return sub.Name
	})...)

	if len(usedPositionals) < cmd.PositionalSlots() {
		idx := min(len(usedPositionals), len(cmd.Positionals)-1)
		candidates = append(candidates, Available(cmd.Positionals[idx], profiles)...)
	}

	return candidates
}

// Complete resolves the full token stream against the grammar and returns
// the candidate set for the final token, with hidden entries removed and the
// rest filtered by the final token's prefix. Order is unspecified.
func (r *Resolver) Complete(root *grammar.Command, tokens []string, profiles []profile.Profile) []string {
	if len(tokens) == 0 {
		return nil
	}

	path := r.Descend(root, tokens)
	deepest := path[len(path)-1]
	lastToken := tokens[len(tokens)-1]

	candidates := r.Candidates(deepest.Command, tokens[deepest.Start:], profiles)
	matching := lo.Filter(lo.Uniq(candidates), func(c string, _ int) bool {
		return !strings.HasPrefix(c, HiddenPrefix) && strings.HasPrefix(c, lastToken)
	})

	r.logger.Debug("completion candidates",
		zap.String("context", deepest.Command.Name),
		zap.String("prefix", lastToken),
		zap.Strings("candidates", matching))

	return matching
}
