package output

import (
	"sort"
	"strings"

	"github.com/dl/quickfind/internal/matcher"
)

// TextFormatter writes the surface content, optionally colored by the
// ruleset scopes with highlighted regions on top.
type TextFormatter struct {
	styles Styles
}

// NewTextFormatter creates a TextFormatter. NoStyles gives plain output.
func NewTextFormatter(styles Styles) *TextFormatter {
	return &TextFormatter{styles: styles}
}

func (f *TextFormatter) Format(buf []byte, result Result) []byte {
	if !f.styles.Enabled() {
		buf = append(buf, result.Content...)
		buf = append(buf, '\n')
		return buf
	}

	content := result.Content
	regions := result.Regions
	lineStart := 0
	for {
		end := strings.IndexByte(content[lineStart:], '\n')
		last := end < 0
		if last {
			end = len(content)
		} else {
			end += lineStart
		}
		buf = f.formatLine(buf, content[lineStart:end], lineStart, regions)
		buf = append(buf, '\n')
		if last {
			break
		}
		lineStart = end + 1
	}
	return buf
}

// formatLine styles one line. offset is the line's start within the
// content the regions refer to.
func (f *TextFormatter) formatLine(buf []byte, line string, offset int, regions []matcher.Span) []byte {
	tok, scoped := f.styles.ruleset.Classify(line)

	cuts := []int{0, len(line)}
	if scoped {
		cuts = append(cuts, tok.End)
	}
	var local []matcher.Span
	for _, r := range regions {
		b, e := r.Begin-offset, r.End-offset
		if e <= 0 || b >= len(line) {
			continue
		}
		b, e = max(b, 0), min(e, len(line))
		local = append(local, matcher.Span{Begin: b, End: e})
		cuts = append(cuts, b, e)
	}
	sort.Ints(cuts)

	for i := 0; i+1 < len(cuts); i++ {
		a, b := cuts[i], cuts[i+1]
		if a == b {
			continue
		}
		seg := line[a:b]
		switch {
		case covered(local, a):
			buf = append(buf, f.styles.Found.Render(seg)...)
		case scoped && a < tok.End:
			buf = append(buf, f.styles.Scope(tok.Scope).Render(seg)...)
		default:
			buf = append(buf, seg...)
		}
	}
	return buf
}

func covered(spans []matcher.Span, pos int) bool {
	for _, s := range spans {
		if pos >= s.Begin && pos < s.End {
			return true
		}
	}
	return false
}

var _ Formatter = (*TextFormatter)(nil)
