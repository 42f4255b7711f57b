package markup

import (
	"html"
	"slices"
	"strings"
)

// Attribute is a single name/value pair.
type Attribute struct {
	Name  string
	Value string
}

// Attributes is an immutable, insertion-ordered attribute set.
// Classes are kept apart from other pairs and always render first.
// Every method returning Attributes returns a copy.
type Attributes struct {
	classes []string
	pairs   []Attribute
}

// Attributable is implemented by nodes whose attributes can be rewritten.
// WithAttributes must return a new node and leave the receiver untouched.
type Attributable interface {
	Node
	Attributes() Attributes
	WithAttributes(Attributes) Node
}

// With sets name to value, replacing an earlier value for the same name.
// Setting "class" replaces the class list with the fields of value.
func (a Attributes) With(name, value string) Attributes {
	out := a.clone()
	if name == "class" {
		out.classes = nil
		return out.WithClass(strings.Fields(value)...)
	}
	for i, p := range out.pairs {
		if p.Name == name {
			out.pairs[i].Value = value
			return out
		}
	}
	out.pairs = append(out.pairs, Attribute{Name: name, Value: value})
	return out
}

// WithClass appends class names that are not already present.
func (a Attributes) WithClass(names ...string) Attributes {
	out := a.clone()
	for _, n := range names {
		if n == "" || slices.Contains(out.classes, n) {
			continue
		}
		out.classes = append(out.classes, n)
	}
	return out
}

// Get returns the value for name. For "class" it returns the joined class list.
func (a Attributes) Get(name string) (string, bool) {
	if name == "class" {
		if len(a.classes) == 0 {
			return "", false
		}
		return strings.Join(a.classes, " "), true
	}
	for _, p := range a.pairs {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Classes returns the class names in insertion order.
func (a Attributes) Classes() []string {
	return slices.Clone(a.classes)
}

// Len returns the number of attributes that would be rendered.
func (a Attributes) Len() int {
	n := len(a.pairs)
	if len(a.classes) > 0 {
		n++
	}
	return n
}

// String renders the set as ` name="value"` pairs, ready to follow a tag name.
func (a Attributes) String() string {
	var sb strings.Builder
	if len(a.classes) > 0 {
		writePair(&sb, "class", strings.Join(a.classes, " "))
	}
	for _, p := range a.pairs {
		writePair(&sb, p.Name, p.Value)
	}
	return sb.String()
}

func writePair(sb *strings.Builder, name, value string) {
	sb.WriteByte(' ')
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(html.EscapeString(value))
	sb.WriteByte('"')
}

func (a Attributes) clone() Attributes {
	return Attributes{
		classes: slices.Clone(a.classes),
		pairs:   slices.Clone(a.pairs),
	}
}
