// Package finder turns the matches of a single in-buffer search into a
// grep-style report: hit lines, merged context windows and gap markers.
package finder

import (
	"sort"

	"github.com/dl/quickfind/internal/matcher"
)

// ContextRadius is the number of lines shown on each side of a hit line.
const ContextRadius = 2

// LineRecord is one line selected for the report.
type LineRecord struct {
	Line int // zero-based line index
	Hits int // matches starting on this line; 0 for context lines
}

// IsHit reports whether the line holds at least one match.
func (r LineRecord) IsHit() bool {
	return r.Hits > 0
}

// LineSet is the ordered set of lines to render, ascending by Line.
type LineSet []LineRecord

// Collect maps each span to the line its Begin offset falls on and returns
// every hit line together with the lines within ContextRadius of it. All
// lines are clipped to [0, lineCount-1]; hits outside that range are dropped.
func Collect(spans []matcher.Span, lineOf func(offset int) int, lineCount int) LineSet {
	if len(spans) == 0 || lineCount <= 0 {
		return nil
	}

	hits := make(map[int]int, len(spans))
	for _, s := range spans {
		line := lineOf(s.Begin)
		if line < 0 || line >= lineCount {
			continue
		}
		hits[line]++
	}

	// Union of the clipped windows around each hit line.
	include := make(map[int]struct{}, len(hits)*(2*ContextRadius+1))
	for line := range hits {
		lo := max(0, line-ContextRadius)
		hi := min(lineCount-1, line+ContextRadius)
		for i := lo; i <= hi; i++ {
			include[i] = struct{}{}
		}
	}

	set := make(LineSet, 0, len(include))
	for line := range include {
		set = append(set, LineRecord{Line: line, Hits: hits[line]})
	}
	sort.Slice(set, func(i, j int) bool { return set[i].Line < set[j].Line })
	return set
}
