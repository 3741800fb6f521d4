package buffer

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dl/quickfind/internal/host"
	"github.com/dl/quickfind/internal/input"
	"github.com/dl/quickfind/internal/matcher"
)

var (
	_ host.BufferReader = (*Buffer)(nil)
	_ host.Selector     = (*Buffer)(nil)
)

func TestLineCount(t *testing.T) {
	tests := []struct {
		name string
		data string
		want int
	}{
		{"empty", "", 0},
		{"single line no newline", "abc", 1},
		{"single line with newline", "abc\n", 1},
		{"two lines", "a\nb", 2},
		{"blank lines", "\n\n\n", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New("f", []byte(tt.data), Options{}).LineCount())
		})
	}
}

func TestLineOf(t *testing.T) {
	b := New("f", []byte("ab\ncd\n\nef"), Options{})
	cases := map[int]int{
		-1: 0,
		0:  0,
		2:  0, // the newline belongs to its line
		3:  1,
		5:  1,
		6:  2,
		7:  3,
		8:  3,
		99: 3,
	}
	for offset, want := range cases {
		assert.Equal(t, want, b.LineOf(offset), "offset %d", offset)
	}
}

func TestLineStart(t *testing.T) {
	b := New("f", []byte("ab\ncd\n\nef"), Options{})
	assert.Equal(t, []int{0, 3, 6, 7}, []int{b.LineStart(0), b.LineStart(1), b.LineStart(2), b.LineStart(3)})
	assert.Equal(t, 9, b.LineStart(4))
	assert.Equal(t, 0, b.LineStart(-2))
}

func TestLineText(t *testing.T) {
	b := New("f", []byte("first\r\nsecond\n\nlast"), Options{})
	assert.Equal(t, "first", b.LineText(0))
	assert.Equal(t, "second", b.LineText(1))
	assert.Equal(t, "", b.LineText(2))
	assert.Equal(t, "last", b.LineText(3))
	assert.Equal(t, "", b.LineText(4))
	assert.Equal(t, "", b.LineText(-1))
}

func searchEngines(t *testing.T) []matcher.Engine {
	engines := []matcher.Engine{matcher.EngineLiteral, matcher.EngineRegex}
	if os.Getenv("QUICKFIND_SKIP_PCRE") != "1" {
		engines = append(engines, matcher.EnginePCRE)
	}
	return engines
}

func TestFindAll_Engines(t *testing.T) {
	data := []byte("a.b\naxb\nA.B\n")
	for _, engine := range searchEngines(t) {
		b := New("f", data, Options{Engine: engine})
		spans, pattern, err := b.FindAll("a.b")
		require.NoError(t, err)
		assert.Equal(t, []matcher.Span{{Begin: 0, End: 3}}, spans, engine)
		assert.Equal(t, `a\.b`, pattern, engine)

		b = New("f", data, Options{Engine: engine, IgnoreCase: true})
		spans, pattern, err = b.FindAll("a.b")
		require.NoError(t, err)
		assert.Len(t, spans, 2, engine)
		assert.Equal(t, `(?i)a\.b`, pattern, engine)
	}
}

// The returned pattern must find exactly the spans FindAll found, whatever
// the engine, including case folding outside ASCII.
func TestFindAll_PatternAgreesWithSpans(t *testing.T) {
	tests := []struct {
		data string
		text string
	}{
		{"café\nCAFÉ\ncafe\n", "café"},
		{"Straße STRASSE straße\n", "straße"},
		{"o\u212a ok OK\n", "ok"},
		{"Σίσυφος σίσυφος ΣΊΣΥΦΟΣ\n", "σίσυφος"},
		{"plain ascii, Plain ASCII\n", "plain"},
	}
	for _, engine := range searchEngines(t) {
		for _, tt := range tests {
			b := New("f", []byte(tt.data), Options{Engine: engine, IgnoreCase: true})
			spans, pattern, err := b.FindAll(tt.text)
			require.NoError(t, err)

			var want []matcher.Span
			for _, loc := range regexp.MustCompile(pattern).FindAllStringIndex(tt.data, -1) {
				want = append(want, matcher.Span{Begin: loc[0], End: loc[1]})
			}
			assert.Equal(t, want, spans, "%s %q", engine, tt.text)
		}
	}
}

func TestFindAll_EmptyText(t *testing.T) {
	_, _, err := New("f", []byte("x"), Options{}).FindAll("")
	assert.Error(t, err)
}

func TestSelectionText(t *testing.T) {
	b := New("f", []byte("hello world"), Options{})

	_, ok := b.SelectionText()
	assert.False(t, ok, "no selection")

	b.SetSelections([]matcher.Span{{Begin: 6, End: 11}})
	text, ok := b.SelectionText()
	assert.True(t, ok)
	assert.Equal(t, "world", text)

	b.SetSelections([]matcher.Span{{Begin: 3, End: 3}})
	_, ok = b.SelectionText()
	assert.False(t, ok, "empty selection")

	b.SetSelections([]matcher.Span{{Begin: 0, End: 5}, {Begin: 6, End: 11}})
	_, ok = b.SelectionText()
	assert.False(t, ok, "multiple selections")

	b.SetSelections([]matcher.Span{{Begin: 11, End: 6}})
	text, ok = b.SelectionText()
	assert.True(t, ok)
	assert.Equal(t, "world", text, "reversed span is normalised")

	b.SetSelections([]matcher.Span{{Begin: 6, End: 400}})
	text, _ = b.SelectionText()
	assert.Equal(t, "world", text, "span is clipped")
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0644))

	b, err := Open(input.NewAdaptiveReader(1<<20), path, Options{})
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, path, b.Path())
	assert.Equal(t, 2, b.LineCount())
	assert.Equal(t, "two", b.LineText(1))
}

func TestOpen_Binary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob")
	require.NoError(t, os.WriteFile(path, []byte{'a', 0, 'b'}, 0644))

	_, err := Open(input.NewBufferedReader(), path, Options{})
	assert.ErrorIs(t, err, input.ErrBinary)
}
