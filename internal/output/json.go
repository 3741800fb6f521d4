package output

import (
	"encoding/json"
)

// JSONFormatter formats a report as JSON Lines: one object per rendered
// line followed by a summary.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// jsonLine is the JSON serialization format for a rendered line.
type jsonLine struct {
	Type      string `json:"type"`
	File      string `json:"file,omitempty"`
	LineNum   int    `json:"line_number"`
	Text      string `json:"text"`
	Hits      int    `json:"hits,omitempty"`
	GapBefore bool   `json:"gap_before,omitempty"`
}

type jsonSummary struct {
	Type     string `json:"type"`
	File     string `json:"file,omitempty"`
	Pattern  string `json:"pattern"`
	Hits     int    `json:"hits"`
	HitLines int    `json:"hit_lines"`
}

func (f *JSONFormatter) Format(buf []byte, result Result) []byte {
	rep := result.Report
	for _, e := range rep.Entries {
		jl := jsonLine{
			Type:      "context",
			File:      rep.Path,
			LineNum:   e.Number,
			Text:      e.Text,
			Hits:      e.Hits,
			GapBefore: e.Gap,
		}
		if e.Hits > 0 {
			jl.Type = "match"
		}
		data, _ := json.Marshal(jl)
		buf = append(buf, data...)
		buf = append(buf, '\n')
	}

	data, _ := json.Marshal(jsonSummary{
		Type:     "summary",
		File:     rep.Path,
		Pattern:  rep.Highlight,
		Hits:     rep.Hits(),
		HitLines: rep.HitLines(),
	})
	buf = append(buf, data...)
	buf = append(buf, '\n')
	return buf
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
