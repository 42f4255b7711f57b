package layout

// Layout is a page template. This package only needs to reference one;
// how it renders is up to the publishing pipeline.
type Layout interface {
	Name() string
}

// Named returns a Layout identified only by its name.
func Named(name string) Layout {
	return named(name)
}

type named string

func (n named) Name() string { return string(n) }

// Missing marks content that has no layout of its own and should use the
// site's default layout.
var Missing Layout = missing{}

type missing struct{}

func (missing) Name() string { return "" }

// IsMissing reports whether l is nil or Missing.
func IsMissing(l Layout) bool {
	return l == nil || l == Missing
}

// PublishingContext supplies the site's default layout.
// It is read-only from this package's point of view and must stay consistent
// for the duration of one generation run.
type PublishingContext interface {
	DefaultLayout() Layout
}

// ContextFunc adapts a function to PublishingContext.
type ContextFunc func() Layout

// DefaultLayout calls f.
func (f ContextFunc) DefaultLayout() Layout { return f() }

// Static returns a PublishingContext that always answers l.
func Static(l Layout) PublishingContext {
	return ContextFunc(func() Layout { return l })
}
