package finder

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/dl/quickfind/internal/host"
)

const (
	// ResultsSurface is the name of the output surface reports are written to.
	ResultsSurface = "Find Results"
	// ResultsSyntax is the highlighting ruleset attached to the surface.
	ResultsSyntax = "Find Results"
	// HighlightKey names the decoration applied to occurrences in the report.
	HighlightKey = "find_results"
	// PromptMessage is shown when no selection supplies the search text.
	PromptMessage = "Enter word to find:"
)

// Command is one invocation of "find in file". The host fields are
// resolved by the caller once per invocation.
type Command struct {
	Buffer   host.BufferReader
	Selector host.Selector
	Prompter host.Prompter
	Surfaces host.SurfaceProvider
	Window   host.WindowID
	Logger   *log.Logger

	// OnDone receives the outcome of a find that ran. It is not called when
	// the prompt is cancelled. May be nil.
	OnDone func(Report, error)
}

// Run obtains the search text and performs the find. With exactly one
// non-empty selection the selection is used; otherwise the user is
// prompted and the find resumes from the prompt callback.
func (c *Command) Run() {
	if c.Selector != nil {
		if text, ok := c.Selector.SelectionText(); ok {
			c.finish(c.Find(text))
			return
		}
	}

	if c.Prompter == nil {
		c.logger().Debug("no selection and no prompter, find aborted")
		return
	}
	c.Prompter.Prompt(PromptMessage, "", func(text string) {
		c.finish(c.Find(text))
	})
}

// Find searches the buffer for text, renders the report and replaces the
// content of the results surface with it. Nothing is written unless the
// whole report was rendered and the surface resolved and revealed.
func (c *Command) Find(text string) (Report, error) {
	if text == "" {
		return Report{}, host.ErrNoQuery
	}

	spans, pattern, err := c.Buffer.FindAll(text)
	if err != nil {
		return Report{}, fmt.Errorf("find %q: %w", text, err)
	}

	lines := Collect(spans, c.Buffer.LineOf, c.Buffer.LineCount())
	rep := Render(c.Buffer.Path(), lines, c.Buffer.LineText, pattern)

	surface, created, err := c.Surfaces.GetOrCreate(c.Window, ResultsSurface, host.SurfaceOptions{
		Scratch:          true,
		Syntax:           ResultsSyntax,
		DrawIndentGuides: false,
	})
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", host.ErrSurfaceUnavailable, err)
	}
	if created {
		c.logger().Debug("created results surface", "window", c.Window, "name", ResultsSurface)
	}
	if err := c.Surfaces.Reveal(c.Window, ResultsSurface); err != nil {
		return Report{}, fmt.Errorf("%w: reveal %s: %w", host.ErrSurfaceUnavailable, ResultsSurface, err)
	}

	surface.Replace(rep.Body)
	n, err := surface.Highlight(HighlightKey, rep.Highlight)
	if err != nil {
		// The content is complete; only the decoration is missing.
		c.logger().Warn("highlight failed", "pattern", rep.Highlight, "err", err)
	}

	c.logger().Debug("find complete", "path", rep.Path, "text", text,
		"spans", len(spans), "lines", len(lines), "highlighted", n)
	return rep, nil
}

func (c *Command) finish(rep Report, err error) {
	switch {
	case errors.Is(err, host.ErrNoQuery):
		c.logger().Debug("find aborted", "err", err)
		return
	case err != nil:
		c.logger().Error("find failed", "err", err)
	}
	if c.OnDone != nil {
		c.OnDone(rep, err)
	}
}

func (c *Command) logger() *log.Logger {
	if c.Logger == nil {
		return log.Default()
	}
	return c.Logger
}
