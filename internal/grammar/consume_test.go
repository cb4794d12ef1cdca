package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func consumeFixture() (*Command, *Option, *Option, *Option) {
	fixed := &Option{Names: []string{"--profile"}, Arguments: Fixed(1)}
	toggle := &Option{Names: []string{"--toggle"}, Arguments: AtMostOne()}
	greedy := &Option{Names: []string{"--files"}, Arguments: Any()}

	cmd := &Command{
		Name:    "launch",
		Options: []*Option{fixed, toggle, greedy},
	}
	return cmd, fixed, toggle, greedy
}

func TestConsumeFixedTakesExactly(t *testing.T) {
	cmd, _, _, _ := consumeFixture()
	two := &Option{Names: []string{"--pair"}, Arguments: Fixed(2)}

	args, n := two.ConsumeArgs(cmd, []string{"a", "b", "c"})
	assert.Equal(t, []string{"a", "b"}, args)
	assert.Equal(t, 2, n)
}

func TestConsumeFixedHaltsAtSentinel(t *testing.T) {
	cmd, _, _, _ := consumeFixture()
	two := &Option{Names: []string{"--pair"}, Arguments: Fixed(2)}

	// The sentinel is taken off the stream but never recorded as an
	// argument, so strictly fewer than n arguments are consumed.
	args, n := two.ConsumeArgs(cmd, []string{"a", "", "b"})
	assert.Equal(t, []string{"a"}, args)
	assert.Equal(t, 2, n)

	args, n = two.ConsumeArgs(cmd, []string{""})
	assert.Empty(t, args)
	assert.Equal(t, 1, n)
}

func TestConsumeFixedStopsAtEndOfInput(t *testing.T) {
	cmd, _, _, _ := consumeFixture()
	three := &Option{Names: []string{"--triple"}, Arguments: Fixed(3)}

	args, n := three.ConsumeArgs(cmd, []string{"only"})
	assert.Equal(t, []string{"only"}, args)
	assert.Equal(t, 1, n)
}

func TestConsumeFixedZeroTakesNothing(t *testing.T) {
	cmd, _, _, _ := consumeFixture()
	flag := &Option{Names: []string{"--flag"}, Arguments: Fixed(0)}

	args, n := flag.ConsumeArgs(cmd, []string{"a", "b"})
	assert.Empty(t, args)
	assert.Zero(t, n)
}

func TestConsumeAtMostOneTakesSiblingOptionName(t *testing.T) {
	cmd, _, toggle, _ := consumeFixture()

	// Consumes the next token only when it names an option of the same
	// command.
	args, n := toggle.ConsumeArgs(cmd, []string{"--files", "rest"})
	assert.Equal(t, []string{"--files"}, args)
	assert.Equal(t, 1, n)

	args, n = toggle.ConsumeArgs(cmd, []string{"value", "rest"})
	assert.Empty(t, args)
	assert.Zero(t, n)

	args, n = toggle.ConsumeArgs(cmd, nil)
	assert.Empty(t, args)
	assert.Zero(t, n)
}

func TestConsumeGreedyStopsAtRecognizedOption(t *testing.T) {
	cmd, _, _, greedy := consumeFixture()

	args, n := greedy.ConsumeArgs(cmd, []string{"a", "b", "--profile", "dev"})
	assert.Equal(t, []string{"a", "b"}, args)
	assert.Equal(t, 2, n)
}

func TestConsumeGreedyTakesEverythingWithoutOptions(t *testing.T) {
	cmd, _, _, greedy := consumeFixture()

	args, n := greedy.ConsumeArgs(cmd, []string{"a", "", "b"})
	assert.Equal(t, []string{"a", "", "b"}, args)
	assert.Equal(t, 3, n)
}

func TestConsumeGreedyOnlyStopsAtOwnCommandOptions(t *testing.T) {
	cmd, _, _, greedy := consumeFixture()

	// Options of other commands are plain values here.
	args, n := greedy.ConsumeArgs(cmd, []string{"--not-ours", "a"})
	assert.Equal(t, []string{"--not-ours", "a"}, args)
	assert.Equal(t, 2, n)
}
