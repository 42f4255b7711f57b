package memory

import (
	"fmt"
	"path"
	"sort"
	"sync"

	"github.com/aretw0/folio/pkg/layout"
	"github.com/aretw0/folio/pkg/markup"
)

// Entry is an in-memory content page.
type Entry struct {
	Path   string
	Title  string
	Layout string
	Body   string
	Draft  bool
}

// Site resolves layout names and supplies the default layout.
type Site interface {
	layout.PublishingContext
	Lookup(name string) (layout.Layout, error)
}

// Source holds pages in memory.
// Safe for concurrent use.
type Source struct {
	entries map[string]Entry
	mu      sync.RWMutex
}

// NewSource creates a source from entries. Later entries with the same path win.
func NewSource(entries ...Entry) *Source {
	s := &Source{entries: make(map[string]Entry)}
	for _, e := range entries {
		s.Put(e)
	}
	return s
}

// Put adds or replaces an entry.
func (s *Source) Put(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[e.Path] = e
}

// Delete removes the entry at path.
func (s *Source) Delete(p string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, p)
}

// Pages builds every non-draft entry against site, sorted by path.
func (s *Source) Pages(site Site) ([]*layout.Page, error) {
	s.mu.RLock()
	entries := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if !e.Draft {
			entries = append(entries, e)
		}
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	pages := make([]*layout.Page, 0, len(entries))
	for _, e := range entries {
		if e.Path == "" {
			return nil, fmt.Errorf("entry missing path")
		}
		l, err := site.Lookup(e.Layout)
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", e.Path, err)
		}
		title := e.Title
		if title == "" {
			title = path.Base(e.Path)
		}
		body := e.Body
		pages = append(pages, layout.NewPage(site, func() markup.Node {
			return markup.Raw(body)
		},
			layout.WithLayout(l),
			layout.WithTitle(title),
			layout.WithPath(e.Path),
		))
	}
	return pages, nil
}
