package markup

import "fmt"

// Capability names the structural contract a node satisfies.
type Capability int

const (
	// Plain is the generic block-level capability every node has.
	Plain Capability = iota
	Inline
	Head
	Document
)

func (c Capability) String() string {
	switch c {
	case Plain:
		return "plain"
	case Inline:
		return "inline"
	case Head:
		return "head"
	case Document:
		return "document"
	default:
		return fmt.Sprintf("capability(%d)", int(c))
	}
}

// Has reports whether n satisfies c. Every non-nil node satisfies Plain.
func Has(n Node, c Capability) bool {
	if n == nil {
		return false
	}
	switch c {
	case Plain:
		return true
	case Inline:
		_, ok := n.(InlineElement)
		return ok
	case Head:
		_, ok := n.(HeadElement)
		return ok
	case Document:
		_, ok := n.(DocumentElement)
		return ok
	}
	return false
}

// CapabilityOf returns the most specific capability n declares.
// When a type declares several, Document wins over Head, and Head over Inline.
func CapabilityOf(n Node) Capability {
	for _, c := range []Capability{Document, Head, Inline} {
		if Has(n, c) {
			return c
		}
	}
	return Plain
}

// Require returns a *CapabilityError when n does not satisfy want.
func Require(n Node, want Capability) error {
	if n == nil {
		return ErrNilNode
	}
	if Has(n, want) {
		return nil
	}
	return &CapabilityError{
		Expected: want,
		Actual:   CapabilityOf(n),
		Node:     fmt.Sprintf("%T", n),
	}
}
