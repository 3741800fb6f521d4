// Package surface keeps the named output surfaces of each window: scratch
// documents whose content is replaced wholesale on every write.
package surface

import (
	"fmt"

	"github.com/dl/quickfind/internal/host"
	"github.com/dl/quickfind/internal/matcher"
)

// Surface is a named, in-memory document owned by a window.
type Surface struct {
	name     string
	opts     host.SurfaceOptions
	content  string
	regions  map[string][]matcher.Span
	revision int
}

func newSurface(name string, opts host.SurfaceOptions) *Surface {
	return &Surface{
		name:    name,
		opts:    opts,
		regions: make(map[string][]matcher.Span),
	}
}

func (s *Surface) Name() string { return s.name }

// Options returns the settings the surface was created with.
func (s *Surface) Options() host.SurfaceOptions { return s.opts }

// Content returns the current document text.
func (s *Surface) Content() string { return s.content }

// Revision increments on every Replace.
func (s *Surface) Revision() int { return s.revision }

// Replace erases the whole content and inserts text. Decorations belong to
// the erased content and are dropped with it.
func (s *Surface) Replace(text string) {
	s.content = text
	clear(s.regions)
	s.revision++
}

// Highlight finds every occurrence of the regex pattern in the content and
// stores them as the regions for key, replacing earlier ones.
func (s *Surface) Highlight(key, pattern string) (int, error) {
	if pattern == "" {
		delete(s.regions, key)
		return 0, nil
	}
	m, err := matcher.NewRegexMatcher(pattern, false)
	if err != nil {
		return 0, fmt.Errorf("highlight pattern %q: %w", pattern, err)
	}
	spans := m.FindAll([]byte(s.content))
	s.regions[key] = spans
	return len(spans), nil
}

// Regions returns the decorated spans stored under key.
func (s *Surface) Regions(key string) []matcher.Span {
	return s.regions[key]
}

var _ host.SurfaceWriter = (*Surface)(nil)
