// Package host declares the narrow contracts the find command needs from
// the editor hosting it. Nothing here depends on a concrete host.
package host

import (
	"errors"

	"github.com/dl/quickfind/internal/matcher"
)

var (
	// ErrNoQuery means no search text was supplied: the prompt was cancelled
	// or confirmed empty. The command aborts without touching any surface.
	ErrNoQuery = errors.New("no search text")

	// ErrSurfaceUnavailable means the host refused to create or focus the
	// output surface.
	ErrSurfaceUnavailable = errors.New("output surface unavailable")
)

// BufferReader is read-only access to the buffer being searched.
type BufferReader interface {
	// Path is the file path shown in the report header.
	Path() string
	// FindAll returns every occurrence of text taken literally, in ascending
	// order, and the RE2 pattern that finds the same occurrences. The pattern
	// is what the output surface highlights.
	FindAll(text string) (spans []matcher.Span, pattern string, err error)
	// LineOf maps a byte offset to its zero-based line.
	LineOf(offset int) int
	// LineCount is the number of lines in the buffer.
	LineCount() int
	// LineText returns the text of a zero-based line without its newline.
	LineText(line int) string
}

// Selector exposes the selections of the searched view.
type Selector interface {
	// SelectionText returns the selected text when exactly one non-empty
	// selection exists.
	SelectionText() (string, bool)
}

// Prompter asks the user for a single line of text. On confirm, done is
// invoked exactly once with the typed text; on cancel it is never invoked.
type Prompter interface {
	Prompt(message, initial string, done func(text string))
}

// WindowID identifies the window a surface belongs to.
type WindowID string

// SurfaceOptions configures a newly created surface.
type SurfaceOptions struct {
	Scratch          bool
	Syntax           string
	DrawIndentGuides bool
}

// SurfaceWriter is the write side of an output surface.
type SurfaceWriter interface {
	Name() string
	// Replace erases the whole content and inserts text in one edit.
	Replace(text string)
	// Highlight decorates every occurrence of pattern in the current content
	// and returns how many were decorated.
	Highlight(key, pattern string) (int, error)
}

// SurfaceProvider resolves named output surfaces per window.
type SurfaceProvider interface {
	// GetOrCreate returns the surface named name in window, creating it with
	// opts when absent. created reports whether a new surface was made.
	GetOrCreate(window WindowID, name string, opts SurfaceOptions) (w SurfaceWriter, created bool, err error)
	// Reveal shows the surface in its window while the searched view keeps focus.
	Reveal(window WindowID, name string) error
}
