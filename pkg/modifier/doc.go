/*
Package modifier attaches transformations to nodes without losing their structural role.

A Modifier turns a content node into any renderable node. Applying one never runs
it: the result is a Modified wrapper that calls the modifier each time it is
rendered. Go has no overloading, so there are four entry points, one per
capability, and each returns a wrapper typed with the same capability the caller
held:

	p := modifier.Apply(paragraph, modifier.Class("lead"))      // markup.Node
	s := modifier.ApplyInline(span, modifier.Class("muted"))     // markup.InlineElement
	t := modifier.ApplyHead(title, modifier.Attribute("lang", "en"))
	d := modifier.ApplyDocument(doc, modifier.ID("root"))

Passing a block node to ApplyInline does not compile.

# Unchecked precondition

A modifier used through ApplyInline, ApplyHead or ApplyDocument must return
content of the same category it was given. The wrapper claims the capability
without re-checking it when rendered. Verify runs that check on demand, for tests
and diagnostics.

# Chaining

Nested application is right-nested: in Apply(Apply(c, m1), m2) the outer m2 runs
first and receives the inner wrapper. The inner modifier only runs if m2 renders
the content it was given.
*/
package modifier
