package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dl/quickfind/internal/matcher"
)

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// ParseColorMode parses auto, always or never.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// StdinPath names standard input as the file to search.
const StdinPath = "-"

// Config holds all configuration for one quickfind invocation.
type Config struct {
	Path          string
	Text          string // search text from the command line; empty means selection or prompt
	Selections    []matcher.Span
	Engine        matcher.Engine
	IgnoreCase    bool
	JSONOutput    bool
	Interactive   bool
	Color         ColorMode
	MmapThreshold int64
	LogLevel      log.Level
	Window        string
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("no file specified")
	}
	if c.Interactive && c.JSONOutput {
		return fmt.Errorf("cannot use --tui and --json together")
	}
	if c.Interactive && c.Path == StdinPath {
		return fmt.Errorf("cannot read the file from stdin with --tui")
	}
	if c.MmapThreshold < 0 {
		return fmt.Errorf("invalid mmap threshold: %d", c.MmapThreshold)
	}
	if c.Window == "" {
		return fmt.Errorf("empty window id")
	}
	for _, s := range c.Selections {
		if s.Begin < 0 || s.End < s.Begin {
			return fmt.Errorf("invalid selection %d:%d", s.Begin, s.End)
		}
	}
	return nil
}

// ParseSelection parses a "begin:end" byte range.
func ParseSelection(s string) (matcher.Span, error) {
	b, e, ok := strings.Cut(s, ":")
	if !ok {
		return matcher.Span{}, fmt.Errorf("selection %q: want begin:end", s)
	}
	begin, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return matcher.Span{}, fmt.Errorf("selection %q: %w", s, err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(e))
	if err != nil {
		return matcher.Span{}, fmt.Errorf("selection %q: %w", s, err)
	}
	return matcher.Span{Begin: begin, End: end}, nil
}
