/*
Package folio is the composition core of a declarative document generator.

It provides three pieces that cooperate while a site is being built:

  - pkg/markup: the renderable node model and its capability tags (plain,
    inline, head, document).
  - pkg/modifier: attaching transformations to nodes while keeping the
    capability the caller held.
  - pkg/layout: deciding which layout wraps a page, falling back to the
    publishing context's default.

Rendering the final tree to files, discovering pages and managing themes belong
to the surrounding pipeline.

# Usage

Install the publishing context once, then build pages:

	package main

	import (
		"fmt"
		"log"
		"os"

		"github.com/aretw0/folio"
		"github.com/aretw0/folio/pkg/markup"
		"github.com/aretw0/folio/pkg/modifier"
		"github.com/aretw0/folio/pkg/site"
	)

	func main() {
		f, err := os.Open("site.yaml")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		cfg, err := site.Load(f)
		if err != nil {
			log.Fatal(err)
		}
		s, err := site.New(cfg)
		if err != nil {
			log.Fatal(err)
		}
		folio.SetDefaultContext(s)

		intro := markup.Raw("<p>Welcome</p>")
		page := folio.NewPage(folio.Body(
			modifier.Apply(intro, modifier.Class("lead")),
		))

		fmt.Println(page.Layout().Name(), page.Body().Render())
	}

Library code that must stay testable should pass a layout.PublishingContext to
layout.NewPage directly; only the outermost entry point needs the process-wide
default.

# Threading

Tree construction, modifier application and layout resolution run on one
goroutine. Nodes are immutable once built, and the publishing context is
read-only during a run, so nothing in the core takes a lock.
*/
package folio
