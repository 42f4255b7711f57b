package dsl

import (
	"fmt"
	"sort"

	"github.com/aretw0/folio/pkg/adapters/memory"
)

// Builder collects page declarations.
type Builder struct {
	pages map[string]*PageBuilder
}

// New creates a new page builder.
func New() *Builder {
	return &Builder{
		pages: make(map[string]*PageBuilder),
	}
}

// Page declares a page at path.
// If the page already exists, it returns the existing builder.
func (b *Builder) Page(path string) *PageBuilder {
	if pb, ok := b.pages[path]; ok {
		return pb
	}
	pb := &PageBuilder{
		entry: memory.Entry{
			Path: path,
		},
	}
	b.pages[path] = pb
	return pb
}

// Paths returns the declared page paths in sorted order.
func (b *Builder) Paths() []string {
	paths := make([]string, 0, len(b.pages))
	for p := range b.pages {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Build compiles the declarations into an in-memory source.
func (b *Builder) Build() (*memory.Source, error) {
	entries := make([]memory.Entry, 0, len(b.pages))
	for _, path := range b.Paths() {
		if path == "" {
			return nil, fmt.Errorf("page missing path")
		}
		entries = append(entries, b.pages[path].entry)
	}
	return memory.NewSource(entries...), nil
}
