package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/sys/unix"

	"github.com/dl/quickfind/internal/syntax"
)

// Styles holds the lipgloss styles for each scope of a ruleset.
type Styles struct {
	ruleset *syntax.Ruleset
	scopes  map[string]lipgloss.Style
	Found   lipgloss.Style
	Plain   lipgloss.Style
}

// NewStyles creates color styles for rs, rendering ANSI escapes to w
// regardless of whether w is a terminal.
func NewStyles(rs *syntax.Ruleset, w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)

	st := Styles{
		ruleset: rs,
		scopes:  make(map[string]lipgloss.Style, len(rs.Rules)),
		Found:   rs.Found.Apply(r.NewStyle()),
		Plain:   r.NewStyle(),
	}
	for _, rule := range rs.Rules {
		st.scopes[rule.Scope] = rule.Style.Apply(r.NewStyle())
	}
	return st
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{}
}

// Enabled reports whether the styles produce color.
func (s Styles) Enabled() bool {
	return s.ruleset != nil
}

// Scope returns the style for a scope name, plain when unknown.
func (s Styles) Scope(name string) lipgloss.Style {
	if st, ok := s.scopes[name]; ok {
		return st
	}
	return s.Plain
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}
