package matcher

// Span is a half-open byte range [Begin, End) into a searched buffer.
type Span struct {
	Begin int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Begin
}

// Matcher finds every non-overlapping occurrence of a compiled pattern.
type Matcher interface {
	// FindAll scans data (full buffer content) and returns all match spans
	// in ascending order of Begin.
	FindAll(data []byte) []Span

	// Pattern returns the escaped pattern text the matcher was compiled from.
	// Searching for it with a regex engine finds the same occurrences.
	Pattern() string
}

// toSpans converts [][]int index pairs as returned by the regex engines.
// Empty matches are dropped: they cannot be highlighted and carry no text.
func toSpans(locs [][]int) []Span {
	if len(locs) == 0 {
		return nil
	}
	spans := make([]Span, 0, len(locs))
	for _, loc := range locs {
		if loc[1] <= loc[0] {
			continue
		}
		spans = append(spans, Span{Begin: loc[0], End: loc[1]})
	}
	return spans
}
