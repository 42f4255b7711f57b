/*
Package dsl provides a fluent builder for declaring a site's pages in Go.

It is the programmatic counterpart of a content directory: instead of
markdown files with layout frontmatter, pages are declared in code and
compiled into an in-memory source. This is useful for tests, generated
sites and small embedded documents.

Example usage:

	b := dsl.New()

	b.Page("index").
		Title("Home").
		Body("Welcome!")

	b.Page("blog/hello").
		Title("Hello").
		Layout("post").
		Body("# Hello")

	src, err := b.Build()
	if err != nil {
		return err
	}
	pages, err := src.Pages(site)
*/
package dsl
