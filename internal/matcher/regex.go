package matcher

import (
	"regexp"
)

// RegexMatcher uses Go's RE2 regexp engine.
type RegexMatcher struct {
	re      *regexp.Regexp
	pattern string
}

// NewRegexMatcher creates a RegexMatcher for the given pattern.
// The pattern is used as-is; callers searching for literal text escape it first.
func NewRegexMatcher(pattern string, ignoreCase bool) (*RegexMatcher, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &RegexMatcher{re: re, pattern: pattern}, nil
}

func (m *RegexMatcher) Pattern() string {
	return m.pattern
}

func (m *RegexMatcher) FindAll(data []byte) []Span {
	return toSpans(m.re.FindAllIndex(data, -1))
}

var _ Matcher = (*RegexMatcher)(nil)
