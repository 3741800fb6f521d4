// Package buffer is an in-memory text buffer: the searched side of a find.
package buffer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/dl/quickfind/internal/input"
	"github.com/dl/quickfind/internal/matcher"
)

// Options controls how FindAll searches.
type Options struct {
	Engine     matcher.Engine
	IgnoreCase bool
}

// Buffer holds the content of one file and an index of line starts.
// It is read-only after construction apart from its selections.
type Buffer struct {
	path       string
	data       []byte
	lineStarts []int // byte offset of each line start
	selections []matcher.Span
	opts       Options
	closer     func() error
}

// New creates a Buffer over data. The Buffer does not copy data.
func New(path string, data []byte, opts Options) *Buffer {
	return &Buffer{
		path:       path,
		data:       data,
		lineStarts: indexLines(data),
		opts:       opts,
	}
}

// Open reads path with r into a Buffer. Close releases the file data.
func Open(r input.Reader, path string, opts Options) (*Buffer, error) {
	res, err := input.ReadText(r, path)
	if err != nil {
		return nil, err
	}
	b := New(path, res.Data, opts)
	b.closer = res.Closer
	return b, nil
}

// Close releases the data backing the buffer.
func (b *Buffer) Close() error {
	if b.closer == nil {
		return nil
	}
	err := b.closer()
	b.closer = nil
	return err
}

// indexLines records where each line starts. A trailing newline ends the
// last line rather than starting an empty one.
func indexLines(data []byte) []int {
	if len(data) == 0 {
		return nil
	}
	starts := make([]int, 1, bytes.Count(data, []byte{'\n'})+1)
	for i, c := range data {
		if c == '\n' && i+1 < len(data) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (b *Buffer) Path() string { return b.path }

func (b *Buffer) LineCount() int { return len(b.lineStarts) }

// LineOf maps a byte offset to its zero-based line. Offsets before the
// start map to line 0, offsets past the end to the last line.
func (b *Buffer) LineOf(offset int) int {
	if len(b.lineStarts) == 0 {
		return 0
	}
	// First start strictly greater than offset, minus one.
	i := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	})
	if i == 0 {
		return 0
	}
	return i - 1
}

// LineStart returns the byte offset where line begins, or the content
// length when line is past the end.
func (b *Buffer) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(b.lineStarts) {
		return len(b.data)
	}
	return b.lineStarts[line]
}

// LineText returns line without its line terminator; "" when out of range.
func (b *Buffer) LineText(line int) string {
	if line < 0 || line >= len(b.lineStarts) {
		return ""
	}
	start := b.lineStarts[line]
	end := len(b.data)
	if line+1 < len(b.lineStarts) {
		end = b.lineStarts[line+1]
	}
	text := b.data[start:end]
	text = bytes.TrimSuffix(text, []byte{'\n'})
	text = bytes.TrimSuffix(text, []byte{'\r'})
	return string(text)
}

// FindAll returns every occurrence of text taken literally and the pattern
// of the engine that found them.
func (b *Buffer) FindAll(text string) ([]matcher.Span, string, error) {
	m, err := matcher.NewLiteralMatcher(text, b.opts.Engine, b.opts.IgnoreCase)
	if err != nil {
		return nil, "", fmt.Errorf("compile %q: %w", text, err)
	}
	if c, ok := m.(interface{ Close() }); ok {
		defer c.Close()
	}
	return m.FindAll(b.data), m.Pattern(), nil
}

// SetSelections replaces the selections. Spans are clipped to the content.
func (b *Buffer) SetSelections(spans []matcher.Span) {
	b.selections = b.selections[:0]
	for _, s := range spans {
		s.Begin = clamp(s.Begin, 0, len(b.data))
		s.End = clamp(s.End, 0, len(b.data))
		if s.End < s.Begin {
			s.Begin, s.End = s.End, s.Begin
		}
		b.selections = append(b.selections, s)
	}
}

// Selections returns the current selections.
func (b *Buffer) Selections() []matcher.Span {
	return b.selections
}

// SelectionText returns the selected text when exactly one non-empty
// selection exists.
func (b *Buffer) SelectionText() (string, bool) {
	if len(b.selections) != 1 || b.selections[0].Len() == 0 {
		return "", false
	}
	s := b.selections[0]
	return string(b.data[s.Begin:s.End]), true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
