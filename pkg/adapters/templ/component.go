package templ

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/aretw0/folio/pkg/layout"
	"github.com/aretw0/folio/pkg/markup"
)

// Component exposes a node to templ-based renderers.
// The node is rendered when the component is, not before.
func Component(n markup.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup.Render(n).String())
		return err
	})
}

// FromComponent renders c once and returns its output as a plain node.
// templ components take a context and may fail, while nodes do neither, so the
// rendering happens here rather than inside Render.
func FromComponent(ctx context.Context, c templ.Component) (markup.Node, error) {
	if c == nil {
		return markup.Empty(), nil
	}
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component: %w", err)
	}
	return markup.Raw(buf.String()), nil
}

// Layout is a layout backed by a templ template that wraps a page body.
type Layout struct {
	name     string
	template func(title string, body templ.Component) templ.Component
}

// NewLayout returns a named layout rendering pages with template.
func NewLayout(name string, template func(title string, body templ.Component) templ.Component) Layout {
	return Layout{name: name, template: template}
}

// Name implements layout.Layout.
func (l Layout) Name() string { return l.name }

// Titled is implemented by content that carries a title, such as *layout.Page.
type Titled interface {
	Title() string
}

// RenderContent writes c's body wrapped in the layout c resolves to.
// The resolved layout must be a Layout from this package.
func RenderContent(ctx context.Context, w io.Writer, c layout.Content) error {
	resolved := layout.Resolve(c)
	l, ok := resolved.(Layout)
	if !ok {
		return fmt.Errorf("layout %q is not a templ layout", resolved.Name())
	}
	title := ""
	if t, ok := c.(Titled); ok {
		title = t.Title()
	}
	return l.template(title, Component(c.Body())).Render(ctx, w)
}
