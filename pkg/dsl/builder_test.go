package dsl

import (
	"testing"

	"github.com/aretw0/folio/pkg/site"
)

func TestBuilder_SimpleSite(t *testing.T) {
	// 1. Declare pages
	b := New()

	b.Page("index").
		Title("Home").
		Body("Welcome!")

	b.Page("blog/hello").
		Title("Hello").
		Layout("post").
		Body("# Hello")

	b.Page("blog/unfinished").
		Draft()

	// 2. Compile to a source
	src, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	s, err := site.New(site.Config{
		Layout:  "base",
		Layouts: []site.LayoutConfig{{Name: "base"}, {Name: "post"}},
	})
	if err != nil {
		t.Fatalf("site.New() failed: %v", err)
	}

	// 3. Verify the resolved pages
	pages, err := src.Pages(s)
	if err != nil {
		t.Fatalf("Pages() failed: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("Expected 2 pages, got %d", len(pages))
	}

	hello, index := pages[0], pages[1]
	if hello.Path() != "blog/hello" || hello.Layout().Name() != "post" {
		t.Errorf("Unexpected hello page: %s -> %s", hello.Path(), hello.Layout().Name())
	}
	if index.Title() != "Home" || index.Layout().Name() != "base" {
		t.Errorf("Unexpected index page: %s -> %s", index.Title(), index.Layout().Name())
	}
	if index.Explicit() {
		t.Errorf("Expected index to inherit the default layout")
	}
}

func TestBuilder_PageIsIdempotent(t *testing.T) {
	b := New()
	first := b.Page("about").Title("About")
	second := b.Page("about")

	if first != second {
		t.Fatalf("Expected the same builder for the same path")
	}
	if got := second.Build().Title; got != "About" {
		t.Errorf("Expected title 'About', got '%s'", got)
	}
	if paths := b.Paths(); len(paths) != 1 || paths[0] != "about" {
		t.Errorf("Unexpected paths: %v", paths)
	}
}

func TestBuilder_EmptyPath(t *testing.T) {
	b := New()
	b.Page("")

	if _, err := b.Build(); err == nil {
		t.Fatal("Expected error for empty path")
	}
}
