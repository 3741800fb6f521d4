package finder

import (
	"strconv"
	"strings"
)

const (
	// gutterWidth is the field the 1-based line number is right-aligned in.
	gutterWidth = 4
	// gapWidth is the total width of a gap marker line.
	gapWidth = gutterWidth + 1

	hitMarker     = ':'
	contextMarker = ' '
)

// Entry is one rendered line of a report.
type Entry struct {
	Number int    // 1-based line number
	Hits   int    // matches on the line; 0 for context
	Text   string // source line text
	Gap    bool   // a gap marker precedes this entry
}

// Report is the rendered result of one find.
type Report struct {
	Path      string
	Body      string // header, entries and gap markers joined by newlines
	Highlight string // escaped search text, passed through unchanged
	Entries   []Entry
}

// Hits returns the total number of matches in the report.
func (r Report) Hits() int {
	n := 0
	for _, e := range r.Entries {
		n += e.Hits
	}
	return n
}

// HitLines returns the number of rendered lines holding a match.
func (r Report) HitLines() int {
	n := 0
	for _, e := range r.Entries {
		if e.Hits > 0 {
			n++
		}
	}
	return n
}

// Render formats lines as a grep-style report for filePath. lineText
// supplies the text of a zero-based line. highlight is carried into the
// report as-is.
func Render(filePath string, lines LineSet, lineText func(line int) string, highlight string) Report {
	rep := Report{
		Path:      filePath,
		Highlight: highlight,
		Entries:   make([]Entry, 0, len(lines)),
	}

	pieces := make([]string, 0, 1+len(lines)*2)
	pieces = append(pieces, filePath+":")

	last := -1
	for _, rec := range lines {
		gap := last >= 0 && rec.Line > last+1
		if gap {
			pieces = append(pieces, GapMarker(rec.Line))
		}

		text := lineText(rec.Line)
		pieces = append(pieces, FormatLine(rec.Line+1, text, rec.IsHit()))
		rep.Entries = append(rep.Entries, Entry{
			Number: rec.Line + 1,
			Hits:   rec.Hits,
			Text:   text,
			Gap:    gap,
		})
		last = rec.Line
	}

	rep.Body = strings.Join(pieces, "\n")
	return rep
}

// FormatLine renders one entry: the 1-based number right-aligned in a
// 4-column gutter, ':' for hit lines or ' ' for context, a space, the text.
// Numbers wider than the gutter push the text right.
func FormatLine(number int, text string, hit bool) string {
	num := strconv.Itoa(number)
	marker := contextMarker
	if hit {
		marker = hitMarker
	}

	var b strings.Builder
	b.Grow(gutterWidth + 3 + len(text))
	b.WriteByte(' ')
	b.WriteString(strings.Repeat(" ", max(0, gutterWidth-len(num))))
	b.WriteString(num)
	b.WriteRune(marker)
	b.WriteByte(' ')
	b.WriteString(text)
	return b.String()
}

// GapMarker renders the line placed before the entry for zero-based line
// next when lines were skipped: dots as wide as the upcoming line number,
// right-aligned under it.
func GapMarker(next int) string {
	digits := len(strconv.Itoa(next + 1))
	return strings.Repeat(" ", max(0, gapWidth-digits)) + strings.Repeat(".", digits)
}
