package modifier

import (
	"slices"

	"github.com/aretw0/folio/pkg/markup"
)

// Modifier transforms a content node into a renderable node.
// Body must not depend on or mutate state outside the node it is given.
type Modifier interface {
	Body(content markup.Node) markup.Node
}

// Func adapts an ordinary function to the Modifier interface.
type Func func(content markup.Node) markup.Node

// Body calls f(content).
func (f Func) Body(content markup.Node) markup.Node { return f(content) }

// Chain combines modifiers into one. The first modifier is the innermost,
// so Apply(c, Chain(m1, m2)) renders like Apply(Apply(c, m1), m2).
// Nil modifiers are skipped. The chain keeps its own copy of ms.
func Chain(ms ...Modifier) Modifier {
	return chain(slices.DeleteFunc(slices.Clone(ms), func(m Modifier) bool { return m == nil }))
}

type chain []Modifier

func (c chain) Body(content markup.Node) markup.Node {
	if len(c) == 0 {
		return content
	}
	inner := content
	for _, m := range c[:len(c)-1] {
		inner = Modified{content: inner, modifier: m}
	}
	return c[len(c)-1].Body(inner)
}
