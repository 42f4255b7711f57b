package modifier

import "github.com/aretw0/folio/pkg/markup"

// Attributes returns a modifier that rewrites the attribute set of attributable
// content with fn. Content that is not markup.Attributable is returned unchanged.
//
// When the content is itself a wrapper from this package, the rewrite is
// deferred onto the wrapper's output: the wrapped modifier still runs once per
// render, and only when the result is rendered.
func Attributes(fn func(markup.Attributes) markup.Attributes) Modifier {
	var self Modifier
	self = Func(func(content markup.Node) markup.Node {
		switch w := content.(type) {
		case Modified:
			return w.then(self)
		case Inline:
			return Inline{w.then(self)}
		case Head:
			return Head{w.then(self)}
		case Document:
			return Document{w.then(self)}
		}
		a, ok := content.(markup.Attributable)
		if !ok {
			return content
		}
		return a.WithAttributes(fn(a.Attributes()))
	})
	return self
}

// Class adds class names to attributable content.
func Class(names ...string) Modifier {
	return Attributes(func(a markup.Attributes) markup.Attributes {
		return a.WithClass(names...)
	})
}

// Attribute sets a single attribute on attributable content.
func Attribute(name, value string) Modifier {
	return Attributes(func(a markup.Attributes) markup.Attributes {
		return a.With(name, value)
	})
}

// ID sets the id attribute.
func ID(id string) Modifier {
	return Attribute("id", id)
}
