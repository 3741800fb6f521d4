package matcher

import (
	"fmt"
	"regexp"
)

// Engine selects the search implementation backing a Matcher.
type Engine string

const (
	EngineLiteral Engine = "literal" // bytes.Index scan
	EngineRegex   Engine = "regex"   // RE2 over the escaped literal
	EnginePCRE    Engine = "pcre"    // PCRE2 over the escaped literal
)

// ParseEngine validates an engine name.
func ParseEngine(name string) (Engine, error) {
	switch e := Engine(name); e {
	case EngineLiteral, EngineRegex, EnginePCRE:
		return e, nil
	case "":
		return EngineLiteral, nil
	default:
		return "", fmt.Errorf("unknown engine %q (want literal, regex or pcre)", name)
	}
}

// NewLiteralMatcher creates a Matcher that finds occurrences of text taken
// literally. For the regex engines the text is escaped first, the same
// escaping that Escape applies for highlighting.
func NewLiteralMatcher(text string, engine Engine, ignoreCase bool) (Matcher, error) {
	if text == "" {
		return nil, fmt.Errorf("empty search text")
	}

	switch engine {
	case EngineLiteral, "":
		return NewFixedMatcher(text, ignoreCase), nil
	case EngineRegex:
		return NewRegexMatcher(Escape(text), ignoreCase)
	case EnginePCRE:
		return NewPCREMatcher(Escape(text), ignoreCase)
	default:
		return nil, fmt.Errorf("unknown engine %q", engine)
	}
}

// Escape quotes every regex metacharacter in text.
func Escape(text string) string {
	return regexp.QuoteMeta(text)
}

// literalPattern returns the regex that finds text literally, the pattern
// used to highlight occurrences of a literal search.
func literalPattern(text string, ignoreCase bool) string {
	if ignoreCase {
		return "(?i)" + Escape(text)
	}
	return Escape(text)
}
