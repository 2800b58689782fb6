package tag

import (
	"bytes"

	"github.com/matzehuels/svgtree/pkg/svg"
	"github.com/matzehuels/svgtree/pkg/svg/path"
)

// Builder is a chainable façade over one element.
type Builder struct {
	el  *svg.Element
	err error
}

// New creates a builder for an element with an arbitrary tag name.
func New(name string) *Builder {
	return &Builder{el: svg.NewElement(name)}
}

// Set assigns an attribute. After the first failure further calls are
// ignored.
func (b *Builder) Set(name string, value any) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.el.Assign(name, value)
	return b
}

// Add appends child. A child carrying a construction error passes it on to b.
func (b *Builder) Add(child svg.Node) *Builder {
	if f, ok := child.(svg.Fallible); ok && b.err == nil {
		b.err = f.Err()
	}
	b.el.Append(child)
	return b
}

// Text appends a text node.
func (b *Builder) Text(content string) *Builder {
	return b.Add(svg.NewText(content))
}

// D assigns path data as the d attribute.
func (b *Builder) D(data *path.Data) *Builder {
	return b.Set("d", data)
}

// Err returns the first construction error, if any.
func (b *Builder) Err() error { return b.err }

// Element returns the built element, or the first construction error.
func (b *Builder) Element() (*svg.Element, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.el, nil
}

// Unwrap implements [svg.Wrapper].
func (b *Builder) Unwrap() *svg.Element { return b.el }

// Render implements [svg.Node].
func (b *Builder) Render(buf *bytes.Buffer) { b.el.Render(buf) }

func (b *Builder) String() string { return svg.Render(b) }
