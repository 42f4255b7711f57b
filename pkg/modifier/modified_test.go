package modifier_test

import (
	"testing"

	"github.com/aretw0/folio/internal/testutils"
	"github.com/aretw0/folio/pkg/markup"
	"github.com/aretw0/folio/pkg/modifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wrap surrounds the rendered content with a tag.
func wrap(tag string) modifier.Modifier {
	return modifier.Func(func(content markup.Node) markup.Node {
		return markup.Raw("<" + tag + ">" + content.Render().String() + "</" + tag + ">")
	})
}

func TestApply_AddClassToParagraph(t *testing.T) {
	p := testutils.Paragraph("hello")

	w := modifier.Apply(p, modifier.Class("x"))

	expected := p.WithAttributes(p.Attrs.WithClass("x")).Render()
	assert.Equal(t, expected, w.Render())
	assert.Equal(t, markup.Markup(`<p class="x">hello</p>`), w.Render())

	_, isInline := w.(markup.InlineElement)
	assert.False(t, isInline, "plain content must stay plain")
	assert.Equal(t, markup.Plain, markup.CapabilityOf(w))

	// The original is untouched.
	assert.Equal(t, markup.Markup("<p>hello</p>"), p.Render())
}

func TestApply_PlainEntryDoesNotClaimDynamicCapability(t *testing.T) {
	var n markup.Node = testutils.NewSpan("x")

	w := modifier.Apply(n, modifier.Class("c"))

	assert.Equal(t, markup.Plain, markup.CapabilityOf(w))
}

func TestCapabilityPreservation(t *testing.T) {
	mods := map[string]modifier.Modifier{
		"class":     modifier.Class("c"),
		"attribute": modifier.Attribute("lang", "en"),
		"wrap":      wrap("b"),
		"identity":  modifier.Func(func(c markup.Node) markup.Node { return c }),
		"nil":       nil,
	}

	for name, m := range mods {
		t.Run(name, func(t *testing.T) {
			var inline markup.InlineElement = modifier.ApplyInline(testutils.NewSpan("s"), m)
			assert.Equal(t, markup.Inline, markup.CapabilityOf(inline))

			var head markup.HeadElement = modifier.ApplyHead(testutils.NewTitle("t"), m)
			assert.Equal(t, markup.Head, markup.CapabilityOf(head))

			var doc markup.DocumentElement = modifier.ApplyDocument(testutils.Document{}, m)
			assert.Equal(t, markup.Document, markup.CapabilityOf(doc))

			// Attribute modifiers over a wrapper keep its capability too.
			assert.Equal(t, markup.Inline, markup.CapabilityOf(modifier.Class("z").Body(inline)))
			assert.Equal(t, markup.Head, markup.CapabilityOf(modifier.ID("z").Body(head)))
			assert.Equal(t, markup.Document, markup.CapabilityOf(modifier.Class("z").Body(doc)))
		})
	}
}

func TestRenderingDelegation(t *testing.T) {
	calls := 0
	m := modifier.Func(func(content markup.Node) markup.Node {
		calls++
		return testutils.NewSpan("replaced " + content.Render().String())
	})
	p := testutils.Paragraph("p")

	w := modifier.Apply(p, m)
	assert.Equal(t, 0, calls, "applying must not run the modifier")

	assert.Equal(t, m(p).Render(), w.Render())
	assert.Equal(t, markup.Markup("<span>replaced <p>p</p></span>"), w.Render())
	assert.Equal(t, 3, calls, "every render invokes the modifier again")
}

func TestIdempotentConstruction(t *testing.T) {
	p := testutils.Paragraph("same")
	m := modifier.Class("k")

	w1 := modifier.Apply(p, m)
	w2 := modifier.Apply(p, m)

	assert.Equal(t, w1.Render(), w2.Render())
	assert.Equal(t, markup.Markup("<p>same</p>"), p.Render())

	mod, ok := w1.(modifier.Modified)
	require.True(t, ok)
	assert.Equal(t, p, mod.Content())
	assert.NotNil(t, mod.Modifier())
}

func TestChainingOrder(t *testing.T) {
	var order []string
	trace := func(name string, render bool) modifier.Modifier {
		return modifier.Func(func(content markup.Node) markup.Node {
			order = append(order, name)
			if !render {
				return markup.Raw(name)
			}
			return markup.Raw(name + "(" + content.Render().String() + ")")
		})
	}
	c := markup.Raw("c")

	t.Run("outer asks for inner", func(t *testing.T) {
		order = nil
		w := modifier.Apply(modifier.Apply(c, trace("m1", true)), trace("m2", true))

		assert.Equal(t, markup.Markup("m2(m1(c))"), w.Render())
		assert.Equal(t, []string{"m2", "m1"}, order)
	})

	t.Run("outer ignores inner", func(t *testing.T) {
		order = nil
		w := modifier.Apply(modifier.Apply(c, trace("m1", true)), trace("m2", false))

		assert.Equal(t, markup.Markup("m2"), w.Render())
		assert.Equal(t, []string{"m2"}, order)
	})

	t.Run("chain matches nesting", func(t *testing.T) {
		order = nil
		nested := modifier.Apply(modifier.Apply(c, trace("m1", true)), trace("m2", true)).Render()
		nestedOrder := order

		order = nil
		chained := modifier.Apply(c, modifier.Chain(trace("m1", true), trace("m2", true))).Render()

		assert.Equal(t, nested, chained)
		assert.Equal(t, nestedOrder, order)
	})

	t.Run("empty chain is identity", func(t *testing.T) {
		assert.Equal(t, markup.Markup("c"), modifier.Apply(c, modifier.Chain()).Render())
	})
}

func TestStackedAttributeModifiers(t *testing.T) {
	span := testutils.NewSpan("hi")

	w := modifier.ApplyInline(
		modifier.ApplyInline(span, modifier.Class("a")),
		modifier.ID("greeting"),
	)

	assert.Equal(t, markup.Markup(`<span class="a" id="greeting">hi</span>`), w.Render())
	assert.Equal(t, markup.Inline, markup.CapabilityOf(w))
}

func TestStackedAttributeModifiers_InnerRunsOncePerRender(t *testing.T) {
	calls := 0
	inner := modifier.Func(func(content markup.Node) markup.Node {
		calls++
		return content
	})
	p := testutils.Paragraph("p")

	w := modifier.Apply(modifier.Apply(p, inner), modifier.Class("x"))
	assert.Equal(t, 0, calls, "applying must not run the inner modifier")

	assert.Equal(t, markup.Markup(`<p class="x">p</p>`), w.Render())
	assert.Equal(t, 1, calls)

	w.Render()
	assert.Equal(t, 2, calls)

	t.Run("outer attribute modifier never rendered", func(t *testing.T) {
		calls = 0
		modifier.Class("y").Body(modifier.Apply(p, inner))
		assert.Equal(t, 0, calls)
	})
}

func TestChain_SkipsNil(t *testing.T) {
	p := testutils.Paragraph("p")

	w := modifier.Apply(p, modifier.Chain(modifier.Class("a"), nil, modifier.ID("i"), nil))

	assert.NotPanics(t, func() { w.Render() })
	assert.Equal(t, markup.Markup(`<p class="a" id="i">p</p>`), w.Render())
	assert.Equal(t, markup.Markup("<p>p</p>"), modifier.Apply(p, modifier.Chain(nil)).Render())
}

func TestChain_CopiesInput(t *testing.T) {
	p := testutils.Paragraph("p")
	ms := []modifier.Modifier{modifier.Class("a")}

	w := modifier.Apply(p, modifier.Chain(ms...))
	before := w.Render()

	ms[0] = modifier.Class("b")

	assert.Equal(t, markup.Markup(`<p class="a">p</p>`), before)
	assert.Equal(t, before, w.Render(), "a built node must not change when the caller reuses its slice")
}

func TestAttributeModifiers_NonAttributableUnchanged(t *testing.T) {
	raw := markup.Raw("<br>")

	assert.Equal(t, markup.Markup("<br>"), modifier.Apply(raw, modifier.Class("x")).Render())
}

func TestModified_NilBodyRendersEmpty(t *testing.T) {
	w := modifier.Apply(testutils.Paragraph("x"), modifier.Func(func(markup.Node) markup.Node { return nil }))
	assert.Equal(t, markup.Markup(""), w.Render())
}
