/*
Package markup defines the renderable node model shared by every Folio element.

A Node produces Markup when rendered. On top of that base contract, three
independent capability tags refine where a node may legally appear:

  - InlineElement: may appear where running text is expected.
  - HeadElement: may appear inside document metadata.
  - DocumentElement: represents a whole document rather than a fragment.

A node that declares none of them is a plain block-level unit. Capabilities are
opted into by declaring the marker method, so membership is structural and a
concrete type can satisfy several at once:

	type Link struct{ ... }

	func (l Link) Render() markup.Markup { ... }
	func (Link) InlineElement()          {}

Trees are built by ordinary composition (Group, Raw, Empty); there is no
builder syntax.
*/
package markup
