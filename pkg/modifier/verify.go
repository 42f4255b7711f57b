package modifier

import (
	"fmt"

	"github.com/aretw0/folio/pkg/markup"
)

// ApplyAs is the runtime-checked entry point for trees whose static type has been
// lost, such as nodes assembled from configuration. It fails fast with a
// *markup.CapabilityError when content does not satisfy want, and otherwise
// returns the wrapper typed for want.
func ApplyAs(content markup.Node, want markup.Capability, m Modifier) (markup.Node, error) {
	if err := markup.Require(content, want); err != nil {
		return nil, err
	}
	switch want {
	case markup.Inline:
		return ApplyInline(content.(markup.InlineElement), m), nil
	case markup.Head:
		return ApplyHead(content.(markup.HeadElement), m), nil
	case markup.Document:
		return ApplyDocument(content.(markup.DocumentElement), m), nil
	case markup.Plain:
		return Apply(content, m), nil
	}
	return nil, fmt.Errorf("unknown capability %s", want)
}

// Verify checks the modifier precondition for one wrapper produced by this
// package: it evaluates the modifier's Body once and reports a
// *markup.CapabilityError if the result lacks the capability the wrapper claims.
// Nodes that are not wrappers, and plain wrappers, always pass.
//
// Rendering never calls Verify.
func Verify(n markup.Node) error {
	var (
		inner Modified
		want  markup.Capability
	)
	switch w := n.(type) {
	case Inline:
		inner, want = w.Modified, markup.Inline
	case Head:
		inner, want = w.Modified, markup.Head
	case Document:
		inner, want = w.Modified, markup.Document
	default:
		return nil
	}
	out := inner.body()
	if out == nil {
		return fmt.Errorf("modifier %T returned nil for %s content: %w", inner.modifier, want, markup.ErrNilNode)
	}
	return markup.Require(out, want)
}
