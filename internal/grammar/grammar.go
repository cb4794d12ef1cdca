// Package grammar models the command tree of the ecl CLI as used for tab
// completion: commands, their options and positionals, and the argument-count
// and expected-value-type rules attached to them. The tree is decoded once
// from the embedded JSON description and is immutable afterwards.
package grammar

import (
	"encoding/json"
	"fmt"
)

// openEndedSlots stands in for "unbounded" when summing positional slots.
// It is only ever compared against with <, never counted up to.
const openEndedSlots = 1 << 16

// ArgumentCount is the arity rule governing how many tokens an option or
// positional consumes from the command line.
type ArgumentCount struct {
	kind  arityKind
	fixed int
}

type arityKind int

const (
	arityFixed arityKind = iota
	arityAtMostOne
	arityAtLeastOne
	arityAny
)

// Fixed returns an arity consuming exactly n tokens.
func Fixed(n int) ArgumentCount {
	return ArgumentCount{kind: arityFixed, fixed: n}
}

// AtMostOne returns the at-most-one arity.
func AtMostOne() ArgumentCount {
	return ArgumentCount{kind: arityAtMostOne}
}

// AtLeastOne returns the at-least-one arity.
func AtLeastOne() ArgumentCount {
	return ArgumentCount{kind: arityAtLeastOne}
}

// Any returns the open-ended arity.
func Any() ArgumentCount {
	return ArgumentCount{kind: arityAny}
}

// Slots reports how many positional slots this arity accounts for when
// deciding whether a command still expects positional values.
func (a ArgumentCount) Slots() int {
	switch a.kind {
	case arityFixed:
		return a.fixed
	case arityAtMostOne:
		return 1
	default:
		return openEndedSlots
	}
}

func (a ArgumentCount) String() string {
	switch a.kind {
	case arityFixed:
		return fmt.Sprintf("Fixed(%d)", a.fixed)
	case arityAtMostOne:
		return "AtMostOne"
	case arityAtLeastOne:
		return "AtLeastOne"
	default:
		return "Any"
	}
}

// UnmarshalJSON decodes an arity from its wire form: a bare non-negative
// integer for a fixed count, or one of the tags ARGS_ATMOSTONE,
// ARGS_ATLEASTONE and ARGS_SOME. Anything else is a decode error rather than
// a silent default.
func (a *ArgumentCount) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if n < 0 {
			return fmt.Errorf("grammar: negative argument count %d", n)
		}
		*a = Fixed(n)
		return nil
	}

	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("grammar: argument count must be an integer or a tag: %w", err)
	}

	switch tag {
	case "ARGS_ATMOSTONE":
		*a = AtMostOne()
	case "ARGS_ATLEASTONE":
		*a = AtLeastOne()
	case "ARGS_SOME":
		*a = Any()
	default:
		return fmt.Errorf("grammar: unknown argument count tag %q", tag)
	}
	return nil
}

// ExpectedType describes where the completion values of an option or
// positional come from.
type ExpectedType int

const (
	// TypeUnknown offers no dynamic values; an option may still carry its
	// own literal value set.
	TypeUnknown ExpectedType = iota
	// TypeProfile sources values from the user's profile database.
	TypeProfile
	// TypePath is a filesystem path. No candidates are offered; the shell's
	// own path completion takes over.
	TypePath
)

func (t ExpectedType) String() string {
	switch t {
	case TypeProfile:
		return "Profile"
	case TypePath:
		return "Path"
	default:
		return "Unknown"
	}
}

// UnmarshalJSON decodes an expected type from its wire tags DEFINED_PROFILE
// and POSIX_PATH. Unknown tags are a decode error.
func (t *ExpectedType) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("grammar: expected type must be a tag: %w", err)
	}

	switch tag {
	case "DEFINED_PROFILE":
		*t = TypeProfile
	case "POSIX_PATH":
		*t = TypePath
	default:
		return fmt.Errorf("grammar: unknown expected type tag %q", tag)
	}
	return nil
}

// Option is a named flag of a command. Two structurally equal options
// attached to different commands are distinct definitions; consumers track
// them by pointer identity.
type Option struct {
	Names        []string      `json:"names"`
	Values       []string      `json:"values"`
	Arguments    ArgumentCount `json:"arguments"`
	ExpectedType ExpectedType  `json:"expected_type"`
}

// ValueType reports where this option's completion values come from.
func (o *Option) ValueType() ExpectedType {
	return o.ExpectedType
}

// LiteralValues returns the option's statically declared completion values.
func (o *Option) LiteralValues() []string {
	return o.Values
}

// Positional is an unnamed argument slot of a command. Order within the
// command determines which slot is next during resolution.
type Positional struct {
	Arguments    ArgumentCount `json:"arguments"`
	ExpectedType ExpectedType  `json:"expected_type"`
}

// ValueType reports where this positional's completion values come from.
func (p *Positional) ValueType() ExpectedType {
	return p.ExpectedType
}

// LiteralValues returns nil; positionals declare no literal value sets.
func (p *Positional) LiteralValues() []string {
	return nil
}

// Command is a node in the grammar tree.
type Command struct {
	Name        string        `json:"name"`
	Subcommands []*Command    `json:"subcommands"`
	Positionals []*Positional `json:"positionals"`
	Options     []*Option     `json:"options"`
}

// FindOption returns the option of this command with the given alias, or nil.
func (c *Command) FindOption(token string) *Option {
	for _, option := range c.Options {
		for _, name := range option.Names {
			if name == token {
				return option
			}
		}
	}
	return nil
}

// FindSubcommand returns the child command with the given name, or nil.
func (c *Command) FindSubcommand(token string) *Command {
	for _, sub := range c.Subcommands {
		if sub.Name == token {
			return sub
		}
	}
	return nil
}

// PositionalSlots sums the positional slots this command expects. Open-ended
// arities contribute a large sentinel, so the result is only meaningful for
// "are more positionals expected" comparisons.
func (c *Command) PositionalSlots() int {
	total := 0
	for _, p := range c.Positionals {
		total += p.Arguments.Slots()
	}
	return total
}

// Parse decodes a grammar tree from its JSON wire form. Unknown arity or
// expected-type tags fail the decode.
func Parse(data []byte) (*Command, error) {
	var root Command
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("grammar: %w", err)
	}
	return &root, nil
}
