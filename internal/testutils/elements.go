package testutils

import (
	"fmt"

	"github.com/aretw0/folio/pkg/markup"
)

// Element is a minimal tagged node used across package tests.
type Element struct {
	Tag   string
	Text  string
	Attrs markup.Attributes
}

func (e Element) Render() markup.Markup {
	return markup.Markup(fmt.Sprintf("<%s%s>%s</%s>", e.Tag, e.Attrs, e.Text, e.Tag))
}

func (e Element) Attributes() markup.Attributes { return e.Attrs }

func (e Element) WithAttributes(a markup.Attributes) markup.Node {
	e.Attrs = a
	return e
}

// Paragraph is a plain block element.
func Paragraph(text string) Element {
	return Element{Tag: "p", Text: text}
}

// Span is an inline element.
type Span struct{ Element }

func (Span) InlineElement() {}

func (s Span) WithAttributes(a markup.Attributes) markup.Node {
	s.Attrs = a
	return s
}

// NewSpan returns an inline span holding text.
func NewSpan(text string) Span {
	return Span{Element{Tag: "span", Text: text}}
}

// Title is a head element.
type Title struct{ Element }

func (Title) HeadElement() {}

// NewTitle returns a head title element.
func NewTitle(text string) Title {
	return Title{Element{Tag: "title", Text: text}}
}

// Document is a document-root element wrapping a body.
type Document struct {
	Head markup.Node
	Body markup.Node
}

func (d Document) Render() markup.Markup {
	return markup.Join(
		"<html><head>", markup.Render(d.Head), "</head><body>",
		markup.Render(d.Body), "</body></html>",
	)
}

func (Document) DocumentElement() {}
