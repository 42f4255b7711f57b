package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/folio/pkg/layout"
	"github.com/aretw0/folio/pkg/markup"
	"github.com/aretw0/loam"
)

// PageMetadata is the frontmatter of a content page.
type PageMetadata struct {
	Title  string `json:"title" mapstructure:"title"`
	Layout string `json:"layout" mapstructure:"layout"`
	Path   string `json:"path" mapstructure:"path"`
	Draft  bool   `json:"draft" mapstructure:"draft"`
}

// Site is what the source needs from the publishing context: the default
// layout and a way to resolve layout names used in frontmatter.
type Site interface {
	layout.PublishingContext
	Lookup(name string) (layout.Layout, error)
}

// Source reads layout-bearing pages from a Loam repository.
type Source struct {
	Repo *loam.TypedRepository[PageMetadata]
}

// New creates a page source over a typed Loam repository.
func New(repo *loam.TypedRepository[PageMetadata]) *Source {
	return &Source{
		Repo: repo,
	}
}

// Page loads a single page by document ID.
func (s *Source) Page(ctx context.Context, site Site, id string) (*layout.Page, error) {
	doc, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", id, err)
	}
	return buildPage(site, doc.ID, doc.Data, doc.Content)
}

// Pages lists every non-draft page, sorted by path.
// A page naming an unknown layout is an error; a page naming none uses the
// site default.
func (s *Source) Pages(ctx context.Context, site Site) ([]*layout.Page, error) {
	docs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	pages := make([]*layout.Page, 0, len(docs))
	seen := make(map[string]string)
	for _, doc := range docs {
		if doc.Data.Draft {
			continue
		}
		// List carries metadata only; the body comes from Get.
		page, err := s.Page(ctx, site, doc.ID)
		if err != nil {
			return nil, err
		}
		if existing, ok := seen[page.Path()]; ok {
			return nil, fmt.Errorf("collision detected: path '%s' is used by both '%s' and '%s'", page.Path(), existing, doc.ID)
		}
		seen[page.Path()] = doc.ID
		pages = append(pages, page)
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Path() < pages[j].Path() })
	return pages, nil
}

func buildPage(site Site, docID string, meta PageMetadata, content string) (*layout.Page, error) {
	l, err := site.Lookup(meta.Layout)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", docID, err)
	}

	path := meta.Path
	if path == "" {
		path = trimExtension(docID)
	}
	title := meta.Title
	if title == "" {
		title = filepath.Base(path)
	}

	return layout.NewPage(site, func() markup.Node {
		return markup.Raw(content)
	},
		layout.WithLayout(l),
		layout.WithTitle(title),
		layout.WithPath(path),
	), nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
