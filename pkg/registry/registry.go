package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/folio/pkg/layout"
)

// ErrDuplicate is returned when a layout name is registered twice.
var ErrDuplicate = errors.New("layout already registered")

// ErrNotFound is returned when a layout name is unknown.
var ErrNotFound = errors.New("layout not found")

// Layouts maps layout names to layouts.
type Layouts struct {
	mu      sync.RWMutex
	layouts map[string]layout.Layout
}

// New creates an empty layout registry.
func New() *Layouts {
	return &Layouts{
		layouts: make(map[string]layout.Layout),
	}
}

// Register adds a layout under its own name.
// Names must be non-empty and unique.
func (r *Layouts) Register(l layout.Layout) error {
	if layout.IsMissing(l) || l.Name() == "" {
		return fmt.Errorf("cannot register a layout without a name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.layouts[l.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, l.Name())
	}
	r.layouts[l.Name()] = l
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Layouts) MustRegister(ls ...layout.Layout) {
	for _, l := range ls {
		if err := r.Register(l); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the layout registered under name.
func (r *Layouts) Lookup(name string) (layout.Layout, error) {
	r.mu.RLock()
	l, ok := r.layouts[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return l, nil
}

// Names returns the registered names in sorted order.
func (r *Layouts) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.layouts))
	for n := range r.layouts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
