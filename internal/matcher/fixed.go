package matcher

import (
	"bytes"
	"regexp"
	"unicode"
)

// FixedMatcher does literal string matching using bytes.Index.
// Case-insensitive search folds ASCII in place when every letter of the
// pattern folds only to ASCII; other patterns are matched with RE2 case
// folding so all engines find the same occurrences.
type FixedMatcher struct {
	pattern    []byte
	patternLow []byte // ASCII-lowered pattern for case-insensitive
	ignoreCase bool
	folded     *regexp.Regexp // set when ASCII folding is not enough
}

// NewFixedMatcher creates a FixedMatcher for a single literal pattern.
func NewFixedMatcher(pattern string, ignoreCase bool) *FixedMatcher {
	m := &FixedMatcher{
		pattern:    []byte(pattern),
		ignoreCase: ignoreCase,
	}
	if ignoreCase {
		if asciiFoldable(pattern) {
			m.patternLow = lowerASCII(m.pattern)
		} else {
			m.folded = regexp.MustCompile(literalPattern(pattern, true))
		}
	}
	return m
}

func (m *FixedMatcher) Pattern() string {
	return literalPattern(string(m.pattern), m.ignoreCase)
}

func (m *FixedMatcher) FindAll(data []byte) []Span {
	if len(m.pattern) == 0 || len(data) == 0 {
		return nil
	}
	if m.folded != nil {
		return toSpans(m.folded.FindAllIndex(data, -1))
	}

	haystack := data
	pattern := m.pattern
	if m.ignoreCase {
		// ASCII folding keeps byte offsets identical to data.
		haystack = lowerASCII(data)
		pattern = m.patternLow
	}

	var spans []Span
	start := 0
	for start <= len(haystack)-len(pattern) {
		idx := bytes.Index(haystack[start:], pattern)
		if idx < 0 {
			break
		}
		pos := start + idx
		spans = append(spans, Span{Begin: pos, End: pos + len(pattern)})
		start = pos + len(pattern)
	}
	return spans
}

// asciiFoldable reports whether s is ASCII and no letter in it has a
// non-ASCII case equivalent ('k' matches U+212A KELVIN SIGN, 's' matches
// U+017F LONG S).
func asciiFoldable(s string) bool {
	for i := 0; i < len(s); i++ {
		c := rune(s[i])
		if c > unicode.MaxASCII {
			return false
		}
		for f := unicode.SimpleFold(c); f != c; f = unicode.SimpleFold(f) {
			if f > unicode.MaxASCII {
				return false
			}
		}
	}
	return true
}

// lowerASCII returns a copy of b with ASCII letters lowered.
func lowerASCII(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = toLower(c)
	}
	return out
}

// toLower converts an ASCII byte to lowercase.
func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// Ensure FixedMatcher implements Matcher.
var _ Matcher = (*FixedMatcher)(nil)
