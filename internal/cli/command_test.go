package cli

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dl/quickfind/internal/input"
	"github.com/dl/quickfind/internal/matcher"
)

func parseArgs(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	var got Config
	cmd := NewRootCommand(func(cfg Config) error {
		got = cfg
		return nil
	})
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return got, err
}

func TestRootCommand_Defaults(t *testing.T) {
	cfg, err := parseArgs(t, "notes.txt")
	require.NoError(t, err)

	assert.Equal(t, "notes.txt", cfg.Path)
	assert.Empty(t, cfg.Text)
	assert.Equal(t, matcher.EngineLiteral, cfg.Engine)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, log.WarnLevel, cfg.LogLevel)
	assert.Equal(t, int64(input.DefaultMmapThreshold), cfg.MmapThreshold)
	assert.Equal(t, "main", cfg.Window)
	assert.False(t, cfg.IgnoreCase)
	assert.False(t, cfg.JSONOutput)
	assert.False(t, cfg.Interactive)
	assert.Empty(t, cfg.Selections)
}

func TestRootCommand_Flags(t *testing.T) {
	cfg, err := parseArgs(t,
		"--engine", "pcre", "-i", "--json", "--color=never",
		"--selection", "1:4", "--selection", "8:8",
		"--log-level", "debug", "--window", "w2", "--mmap-threshold", "0",
		"notes.txt", "needle",
	)
	require.NoError(t, err)

	assert.Equal(t, "needle", cfg.Text)
	assert.Equal(t, matcher.EnginePCRE, cfg.Engine)
	assert.True(t, cfg.IgnoreCase)
	assert.True(t, cfg.JSONOutput)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "w2", cfg.Window)
	assert.Zero(t, cfg.MmapThreshold)
	assert.Equal(t, []matcher.Span{{Begin: 1, End: 4}, {Begin: 8, End: 8}}, cfg.Selections)
}

func TestRootCommand_LaterFlagWins(t *testing.T) {
	cfg, err := parseArgs(t, "--engine=regex", "notes.txt", "--engine=literal")
	require.NoError(t, err)
	assert.Equal(t, matcher.EngineLiteral, cfg.Engine)
}

func TestRootCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no file", nil},
		{"too many args", []string{"a", "b", "c"}},
		{"bad engine", []string{"--engine", "glob", "f"}},
		{"bad color", []string{"--color", "rainbow", "f"}},
		{"bad log level", []string{"--log-level", "loud", "f"}},
		{"bad selection", []string{"--selection", "4", "f"}},
		{"tui with json", []string{"--tui", "--json", "f"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
