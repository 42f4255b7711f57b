package markup

import "strings"

// Markup is the structural output of a rendered node.
type Markup string

// String returns the markup text.
func (m Markup) String() string { return string(m) }

// Join concatenates markup fragments in order.
func Join(parts ...Markup) Markup {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(string(p))
	}
	return Markup(sb.String())
}

// Node is the universal renderable unit.
// Render must be deterministic and free of side effects.
type Node interface {
	Render() Markup
}

// InlineElement is a node that may appear where running text is expected.
type InlineElement interface {
	Node
	InlineElement()
}

// HeadElement is a node that may appear inside document metadata.
type HeadElement interface {
	Node
	HeadElement()
}

// DocumentElement is a node that represents an entire document.
type DocumentElement interface {
	Node
	DocumentElement()
}

// Render renders n, treating a nil node as empty markup.
func Render(n Node) Markup {
	if n == nil {
		return ""
	}
	return n.Render()
}
