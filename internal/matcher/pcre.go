package matcher

import (
	"go.elara.ws/pcre"
)

// PCREMatcher matches using PCRE2-compatible regexes via the pure Go pcre package.
type PCREMatcher struct {
	re      *pcre.Regexp
	pattern string
}

// NewPCREMatcher creates a PCREMatcher from a PCRE2 pattern string.
// Patterns and subjects are UTF-8, so caseless matching folds the same
// characters RE2 does. Invalid UTF-8 in the subject is skipped, not an error.
func NewPCREMatcher(pattern string, ignoreCase bool) (*PCREMatcher, error) {
	opts := pcre.UTF | pcre.MatchInvalidUTF
	if ignoreCase {
		opts |= pcre.Caseless
	}

	re, err := pcre.CompileOpts(pattern, opts)
	if err != nil {
		return nil, err
	}

	display := pattern
	if ignoreCase {
		display = "(?i)" + pattern
	}
	return &PCREMatcher{re: re, pattern: display}, nil
}

func (m *PCREMatcher) Pattern() string {
	return m.pattern
}

func (m *PCREMatcher) FindAll(data []byte) []Span {
	return toSpans(m.re.FindAllIndex(data, -1))
}

// Close releases the compiled PCRE regex resources.
func (m *PCREMatcher) Close() {
	if m.re != nil {
		m.re.Close()
	}
}

var _ Matcher = (*PCREMatcher)(nil)
