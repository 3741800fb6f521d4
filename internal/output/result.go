package output

import (
	"github.com/dl/quickfind/internal/finder"
	"github.com/dl/quickfind/internal/matcher"
)

// Result is a snapshot of a results surface after a find.
type Result struct {
	Report  finder.Report
	Content string         // surface content as written
	Regions []matcher.Span // highlighted occurrences within Content
}

// Count returns the number of matches in this result.
func (r *Result) Count() int {
	return r.Report.Hits()
}

// HasMatch returns true if this result has at least one match.
func (r *Result) HasMatch() bool {
	return r.Count() > 0
}
