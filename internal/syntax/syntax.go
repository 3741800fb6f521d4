// Package syntax holds the highlighting rulesets surfaces can be
// associated with. Rulesets are YAML documents; the "Find Results" one is
// embedded.
package syntax

import (
	_ "embed"
	"fmt"
	"regexp"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed findresults.yaml
var findResultsYAML []byte

// Scope names produced by the Find Results ruleset.
const (
	ScopeHeader  = "header"
	ScopeGap     = "gap"
	ScopeHit     = "hit"
	ScopeContext = "context"
	ScopeFound   = "found"
)

// Style is the serialized form of a lipgloss style.
type Style struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Bold       bool   `yaml:"bold"`
	Underline  bool   `yaml:"underline"`
	Faint      bool   `yaml:"faint"`
}

// Apply sets the style's attributes on base.
func (s Style) Apply(base lipgloss.Style) lipgloss.Style {
	if s.Foreground != "" {
		base = base.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		base = base.Background(lipgloss.Color(s.Background))
	}
	return base.Bold(s.Bold).Underline(s.Underline).Faint(s.Faint)
}

// Rule assigns a scope to lines whose start matches Match.
type Rule struct {
	Scope     string `yaml:"scope"`
	Match     string `yaml:"match"`
	WholeLine bool   `yaml:"whole_line"`
	Style     Style  `yaml:"style"`

	re *regexp.Regexp
}

// Ruleset is an ordered list of rules plus the style for search hits.
type Ruleset struct {
	Name  string `yaml:"name"`
	Rules []Rule `yaml:"rules"`
	Found Style  `yaml:"found"`
}

// Token is the classified leading part of a line.
type Token struct {
	Scope string
	End   int // bytes of the line covered by the scope
	Style Style
}

// Parse decodes and compiles a ruleset.
func Parse(data []byte) (*Ruleset, error) {
	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parse ruleset: %w", err)
	}
	if rs.Name == "" {
		return nil, fmt.Errorf("parse ruleset: missing name")
	}
	for i := range rs.Rules {
		r := &rs.Rules[i]
		if r.Scope == "" {
			return nil, fmt.Errorf("ruleset %s: rule %d has no scope", rs.Name, i)
		}
		re, err := regexp.Compile(r.Match)
		if err != nil {
			return nil, fmt.Errorf("ruleset %s: rule %s: %w", rs.Name, r.Scope, err)
		}
		r.re = re
	}
	return &rs, nil
}

// Classify returns the scope of line per the first matching rule.
func (rs *Ruleset) Classify(line string) (Token, bool) {
	for _, r := range rs.Rules {
		loc := r.re.FindStringIndex(line)
		if loc == nil || loc[0] != 0 {
			continue
		}
		end := loc[1]
		if r.WholeLine {
			end = len(line)
		}
		return Token{Scope: r.Scope, End: end, Style: r.Style}, true
	}
	return Token{}, false
}

var (
	builtinOnce sync.Once
	builtin     map[string]*Ruleset
)

func loadBuiltin() {
	builtin = make(map[string]*Ruleset)
	rs, err := Parse(findResultsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded ruleset: %v", err))
	}
	builtin[rs.Name] = rs
}

// Lookup returns the built-in ruleset with the given name.
func Lookup(name string) (*Ruleset, bool) {
	builtinOnce.Do(loadBuiltin)
	rs, ok := builtin[name]
	return rs, ok
}

// FindResults returns the built-in ruleset for results surfaces.
func FindResults() *Ruleset {
	rs, _ := Lookup("Find Results")
	return rs
}
