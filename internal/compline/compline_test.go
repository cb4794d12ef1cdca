package compline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"simple", "ecl launch", []string{"ecl", "launch"}},
		{"trailing space adds sentinel", "ecl launch ", []string{"ecl", "launch", ""}},
		{"trailing tab adds sentinel", "ecl launch\t", []string{"ecl", "launch", ""}},
		{"partial word", "ecl lau", []string{"ecl", "lau"}},
		{"quoted word with space", `ecl profile select "my profile"`, []string{"ecl", "profile", "select", "my profile"}},
		{"single quotes", "ecl profile select 'my profile' ", []string{"ecl", "profile", "select", "my profile", ""}},
		{"option then space", "ecl launch --profile ", []string{"ecl", "launch", "--profile", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokens(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTokensEmptyLine(t *testing.T) {
	got, err := Tokens("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTokensUnbalancedQuote(t *testing.T) {
	_, err := Tokens(`ecl profile select "my prof`)
	assert.Error(t, err)
}

func TestRegistrationScript(t *testing.T) {
	script := RegistrationScript("/usr/local/bin/ecl-complete")

	assert.Contains(t, script, `complete -o default -C "/usr/local/bin/ecl-complete" ecl`)
	assert.Contains(t, script, "eval")
}
