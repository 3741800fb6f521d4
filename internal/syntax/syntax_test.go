package syntax

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindResults_Classify(t *testing.T) {
	rs := FindResults()
	require.NotNil(t, rs)

	tests := []struct {
		line  string
		scope string
		end   int
	}{
		{"/src/main.go:", ScopeHeader, 13},
		{"    .", ScopeGap, 5},
		{"  ...", ScopeGap, 5},
		{"    5: a needle", ScopeHit, 6},
		{" 12345: wide", ScopeHit, 7},
		{"   42  context: text", ScopeContext, 6},
		{"  123: ", ScopeHit, 6},
	}
	for _, tt := range tests {
		tok, ok := rs.Classify(tt.line)
		require.True(t, ok, tt.line)
		assert.Equal(t, tt.scope, tok.Scope, tt.line)
		assert.Equal(t, tt.end, tok.End, tt.line)
	}

	_, ok := rs.Classify("")
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	rs, ok := Lookup("Find Results")
	require.True(t, ok)
	assert.Len(t, rs.Rules, 4)
	assert.True(t, rs.Found.Bold)

	_, ok = Lookup("Plain Text")
	assert.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("rules: [\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("rules: []\n"))
	assert.ErrorContains(t, err, "missing name")

	_, err = Parse([]byte("name: x\nrules:\n  - scope: s\n    match: '('\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("name: x\nrules:\n  - match: 'a'\n"))
	assert.ErrorContains(t, err, "no scope")
}

func TestStyle_Apply(t *testing.T) {
	st := Style{Foreground: "2", Bold: true}.Apply(lipgloss.NewStyle())
	assert.True(t, st.GetBold())
	assert.False(t, st.GetUnderline())
}
