package modifier

import "github.com/aretw0/folio/pkg/markup"

// Modified pairs a content node with the modifier applied to it.
// It is immutable; rendering invokes the modifier every time and renders its result.
type Modified struct {
	content  markup.Node
	modifier Modifier
}

// Render renders whatever the modifier's Body returns for the content.
// A nil result renders as empty markup; a nil modifier renders the content as is.
func (m Modified) Render() markup.Markup {
	return markup.Render(m.body())
}

// Content returns the wrapped node.
func (m Modified) Content() markup.Node { return m.content }

// Modifier returns the applied modifier.
func (m Modified) Modifier() Modifier { return m.modifier }

// Inline is a Modified node that keeps the inline capability.
type Inline struct{ Modified }

func (Inline) InlineElement() {}

// Head is a Modified node that keeps the head capability.
type Head struct{ Modified }

func (Head) HeadElement() {}

// Document is a Modified node that keeps the document capability.
type Document struct{ Modified }

func (Document) DocumentElement() {}

// Apply wraps a plain node. The result is plain even when content's dynamic
// type carries a capability: it mirrors what the caller held.
func Apply(content markup.Node, m Modifier) markup.Node {
	return Modified{content: content, modifier: m}
}

// ApplyInline wraps an inline node and keeps it inline.
func ApplyInline(content markup.InlineElement, m Modifier) markup.InlineElement {
	return Inline{Modified{content: content, modifier: m}}
}

// ApplyHead wraps a head node and keeps it usable in document metadata.
func ApplyHead(content markup.HeadElement, m Modifier) markup.HeadElement {
	return Head{Modified{content: content, modifier: m}}
}

// ApplyDocument wraps a document node and keeps it a document.
func ApplyDocument(content markup.DocumentElement, m Modifier) markup.DocumentElement {
	return Document{Modified{content: content, modifier: m}}
}

func (m Modified) body() markup.Node {
	if m.modifier == nil {
		return m.content
	}
	return m.modifier.Body(m.content)
}

// then returns a wrapper over the same content whose single Body call runs
// the original modifier and hands its output to after.
func (m Modified) then(after Modifier) Modified {
	inner := m.modifier
	return Modified{
		content: m.content,
		modifier: Func(func(content markup.Node) markup.Node {
			out := Modified{content: content, modifier: inner}.body()
			if out == nil {
				return nil
			}
			return after.Body(out)
		}),
	}
}
