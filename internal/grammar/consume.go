package grammar

// ConsumeArgs walks the tokens that follow this option's own name on the
// command line and consumes the ones that belong to it according to its
// arity. It returns the consumed argument values and the total number of
// tokens taken from the stream, which may exceed len(args) when a trailing
// empty sentinel token is swallowed.
//
// The parent command is needed because some arities stop (or, for at-most-one,
// start) consuming at tokens that are recognized option names of the same
// command.
func (o *Option) ConsumeArgs(parent *Command, tokens []string) (args []string, n int) {
	switch o.Arguments.kind {
	case arityFixed:
		for i := 0; i < o.Arguments.fixed; i++ {
			if n >= len(tokens) {
				break
			}
			// An empty token marks the cursor sitting on a fresh word. It is
			// taken off the stream but never recorded as an argument, leaving
			// this option as the one being completed.
			if tokens[n] == "" {
				n++
				break
			}
			args = append(args, tokens[n])
			n++
		}

	case arityAtMostOne:
		// Consumes the following token only when that token is itself an
		// option name of the parent command. Odd, but matches the behavior
		// completion transcripts rely on; see DESIGN.md before changing.
		if len(tokens) > 0 && parent.FindOption(tokens[0]) != nil {
			args = append(args, tokens[0])
			n = 1
		}

	default:
		// AtLeastOne and Any consume greedily until the next recognized
		// option of the parent command. The lower bound is not enforced;
		// under-supplied arguments are a completion concern, not an error.
		for n < len(tokens) && parent.FindOption(tokens[n]) == nil {
			args = append(args, tokens[n])
			n++
		}
	}

	return args, n
}
