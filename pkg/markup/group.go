package markup

// Group renders its children in order. Nil children are skipped.
func Group(nodes ...Node) Node {
	kept := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			kept = append(kept, n)
		}
	}
	return group(kept)
}

type group []Node

func (g group) Render() Markup {
	parts := make([]Markup, len(g))
	for i, n := range g {
		parts[i] = n.Render()
	}
	return Join(parts...)
}

// Children returns a copy of the grouped nodes.
func (g group) Children() []Node {
	out := make([]Node, len(g))
	copy(out, g)
	return out
}

// Raw returns a node that renders s verbatim.
func Raw(s string) Node {
	return raw(s)
}

type raw string

func (r raw) Render() Markup { return Markup(r) }

// Empty returns a node that renders nothing.
func Empty() Node {
	return raw("")
}

// Container is implemented by nodes that hold child nodes.
type Container interface {
	Node
	Children() []Node
}
