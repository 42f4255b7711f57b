/*
Package site provides the publishing context for a generation run.

A Site is built from a Config (usually a site.yaml file) and a layout registry.
It implements layout.PublishingContext, answering the site's default layout for
every page that does not choose one. A Site is immutable once built.

	cfg, err := site.Load(file)
	s, err := site.New(cfg, site.WithLogger(logger))
	page := layout.NewPage(s, body)
*/
package site
