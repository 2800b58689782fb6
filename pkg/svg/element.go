package svg

import (
	"bytes"
	"slices"

	"github.com/matzehuels/svgtree/pkg/errors"
)

// Attribute is one name/value pair of an element, in rendered form.
type Attribute struct {
	Name  string
	Value string
}

// Element is a generic markup node with ordered attributes and owned children.
//
// The zero value is not usable; create elements with [NewElement]. An element
// takes ownership of every child passed to [Element.Append]; appending the
// same node to two parents is a programming error.
type Element struct {
	name       string
	attributes []Attribute
	children   []Node
}

// NewElement creates an element with no attributes and no children.
func NewElement(name string) *Element {
	return &Element{name: name}
}

// Name returns the tag name.
func (e *Element) Name() string { return e.name }

// Attributes returns a copy of the attribute list in assignment order.
func (e *Element) Attributes() []Attribute { return slices.Clone(e.attributes) }

// Len returns the number of children.
func (e *Element) Len() int { return len(e.children) }

// Get returns the value of the last attribute assigned under name.
func (e *Element) Get(name string) (string, bool) {
	for i := len(e.attributes) - 1; i >= 0; i-- {
		if e.attributes[i].Name == name {
			return e.attributes[i].Value, true
		}
	}
	return "", false
}

// Append adds child as the last child of e.
func (e *Element) Append(child Node) {
	e.children = append(e.children, child)
}

// Assign appends the attribute name with value converted by [Value].
// Earlier attributes of the same name are kept; both are rendered.
// If the conversion fails nothing is appended.
func (e *Element) Assign(name string, value any) error {
	s, err := Value(value)
	if err != nil {
		code := errors.GetCode(err)
		if code == "" {
			code = errors.ErrCodeInvalidValue
		}
		return errors.Wrap(code, err, "attribute %s of <%s>", name, e.name)
	}
	e.attributes = append(e.attributes, Attribute{Name: name, Value: s})
	return nil
}

// Render implements [Node].
func (e *Element) Render(buf *bytes.Buffer) {
	buf.WriteByte('<')
	buf.WriteString(e.name)
	for _, a := range e.attributes {
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
		buf.WriteString("='")
		buf.WriteString(a.Value)
		buf.WriteByte('\'')
	}
	if len(e.children) == 0 {
		buf.WriteString("/>")
		return
	}
	buf.WriteByte('>')
	for _, c := range e.children {
		buf.WriteByte('\n')
		c.Render(buf)
	}
	buf.WriteString("\n</")
	buf.WriteString(e.name)
	buf.WriteByte('>')
}

// String returns the rendered markup.
func (e *Element) String() string { return Render(e) }
