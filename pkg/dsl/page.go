package dsl

import "github.com/aretw0/folio/pkg/adapters/memory"

// PageBuilder provides a fluent API for configuring a page.
type PageBuilder struct {
	entry memory.Entry
}

// Title sets the page title.
func (p *PageBuilder) Title(title string) *PageBuilder {
	p.entry.Title = title
	return p
}

// Layout names the page's layout. An empty name leaves the page on the
// site default.
func (p *PageBuilder) Layout(name string) *PageBuilder {
	p.entry.Layout = name
	return p
}

// Body sets the page's raw body markup.
func (p *PageBuilder) Body(body string) *PageBuilder {
	p.entry.Body = body
	return p
}

// Draft excludes the page from the built pages.
func (p *PageBuilder) Draft() *PageBuilder {
	p.entry.Draft = true
	return p
}

// Build returns the underlying entry.
func (p *PageBuilder) Build() memory.Entry {
	return p.entry
}
