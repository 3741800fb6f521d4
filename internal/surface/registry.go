package surface

import (
	"errors"
	"fmt"

	"github.com/dl/quickfind/internal/host"
)

// ErrNoWindow is returned for a window that is not open.
var ErrNoWindow = errors.New("window not open")

type key struct {
	window host.WindowID
	name   string
}

// Registry resolves surfaces by (window, name). It is not safe for
// concurrent use; hosts serialize commands.
type Registry struct {
	windows  map[host.WindowID]bool
	surfaces map[key]*Surface
	revealed map[host.WindowID]string
}

// NewRegistry creates a registry with the given windows open.
func NewRegistry(windows ...host.WindowID) *Registry {
	r := &Registry{
		windows:  make(map[host.WindowID]bool),
		surfaces: make(map[key]*Surface),
		revealed: make(map[host.WindowID]string),
	}
	for _, w := range windows {
		r.windows[w] = true
	}
	return r
}

// OpenWindow makes window available for surfaces.
func (r *Registry) OpenWindow(window host.WindowID) {
	r.windows[window] = true
}

// CloseWindow discards window and every surface it owns.
func (r *Registry) CloseWindow(window host.WindowID) {
	delete(r.windows, window)
	delete(r.revealed, window)
	for k := range r.surfaces {
		if k.window == window {
			delete(r.surfaces, k)
		}
	}
}

func (r *Registry) GetOrCreate(window host.WindowID, name string, opts host.SurfaceOptions) (host.SurfaceWriter, bool, error) {
	s, created, err := r.getOrCreate(window, name, opts)
	if err != nil {
		return nil, false, err
	}
	return s, created, nil
}

func (r *Registry) getOrCreate(window host.WindowID, name string, opts host.SurfaceOptions) (*Surface, bool, error) {
	if !r.windows[window] {
		return nil, false, fmt.Errorf("%s: %w", window, ErrNoWindow)
	}
	k := key{window: window, name: name}
	if s, ok := r.surfaces[k]; ok {
		return s, false, nil
	}
	s := newSurface(name, opts)
	r.surfaces[k] = s
	return s, true, nil
}

// Lookup returns an existing surface without creating one.
func (r *Registry) Lookup(window host.WindowID, name string) (*Surface, bool) {
	s, ok := r.surfaces[key{window: window, name: name}]
	return s, ok
}

func (r *Registry) Reveal(window host.WindowID, name string) error {
	if _, ok := r.surfaces[key{window: window, name: name}]; !ok {
		return fmt.Errorf("reveal %q in %s: no such surface", name, window)
	}
	r.revealed[window] = name
	return nil
}

// Revealed returns the name of the surface last revealed in window.
func (r *Registry) Revealed(window host.WindowID) (string, bool) {
	name, ok := r.revealed[window]
	return name, ok
}

var _ host.SurfaceProvider = (*Registry)(nil)
