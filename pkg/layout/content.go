package layout

import "github.com/aretw0/folio/pkg/markup"

// Content is a unit of page content rendered inside a layout.
type Content interface {
	Body() markup.Node
	Layout() Layout
}

// BodyFunc builds the body of a page.
type BodyFunc func() markup.Node

// Page is layout-bearing content with an optional explicit layout.
// Pages are built once and then used from a single goroutine.
type Page struct {
	ctx    PublishingContext
	body   BodyFunc
	layout Layout
	title  string
	path   string
}

// PageOption configures a Page.
type PageOption func(*Page)

// WithLayout sets an explicit layout. Missing or nil leaves the page on the default.
func WithLayout(l Layout) PageOption {
	return func(p *Page) {
		p.layout = l
	}
}

// WithTitle sets the page title.
func WithTitle(title string) PageOption {
	return func(p *Page) {
		p.title = title
	}
}

// WithPath sets the page's path within the site.
func WithPath(path string) PageOption {
	return func(p *Page) {
		p.path = path
	}
}

// NewPage creates a page whose default layout comes from ctx.
func NewPage(ctx PublishingContext, body BodyFunc, opts ...PageOption) *Page {
	p := &Page{ctx: ctx, body: body}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Body builds the page body. A nil page, or one without a body function,
// renders empty.
func (p *Page) Body() markup.Node {
	if p == nil || p.body == nil {
		return markup.Empty()
	}
	return p.body()
}

// Layout returns the explicit layout, or the publishing context's default
// read at call time. A nil page resolves to Missing.
func (p *Page) Layout() Layout {
	if p == nil {
		return Missing
	}
	if !IsMissing(p.layout) {
		return p.layout
	}
	if p.ctx == nil {
		return Missing
	}
	if l := p.ctx.DefaultLayout(); l != nil {
		return l
	}
	return Missing
}

// SetLayout sets the explicit layout. Passing nil or Missing restores the default.
func (p *Page) SetLayout(l Layout) {
	p.layout = l
}

// Explicit reports whether the page carries its own layout.
func (p *Page) Explicit() bool {
	return p != nil && !IsMissing(p.layout)
}

// Title returns the page title.
func (p *Page) Title() string {
	if p == nil {
		return ""
	}
	return p.title
}

// Path returns the page path.
func (p *Page) Path() string {
	if p == nil {
		return ""
	}
	return p.path
}

// Resolve returns c's layout, or Missing when c is nil or resolves to nil.
// Implementations of Content must handle their own typed-nil receivers, as
// *Page does.
func Resolve(c Content) Layout {
	if c == nil {
		return Missing
	}
	if l := c.Layout(); l != nil {
		return l
	}
	return Missing
}
