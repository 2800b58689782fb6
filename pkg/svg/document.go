package svg

import (
	"bytes"
	"io"
	"os"

	"github.com/matzehuels/svgtree/pkg/errors"
)

// Namespace is the SVG XML namespace assigned to every [Document].
const Namespace = "http://www.w3.org/2000/svg"

// Document is the root <svg> element of a drawing.
type Document struct {
	root *Element
}

// NewDocument creates an <svg> element with the SVG namespace assigned.
func NewDocument() *Document {
	root := NewElement("svg")
	root.attributes = append(root.attributes, Attribute{Name: "xmlns", Value: Namespace})
	return &Document{root: root}
}

// Append adds child as the last top-level node of the document.
func (d *Document) Append(child Node) { d.root.Append(child) }

// Assign appends an attribute to the root element; see [Element.Assign].
func (d *Document) Assign(name string, value any) error { return d.root.Assign(name, value) }

// SetViewBox assigns the viewBox attribute.
func (d *Document) SetViewBox(minX, minY, width, height float64) error {
	return d.Assign("viewBox", Tuple{minX, minY, width, height})
}

// SetSize assigns the width and height attributes.
func (d *Document) SetSize(width, height any) error {
	if err := d.Assign("width", width); err != nil {
		return err
	}
	return d.Assign("height", height)
}

// Unwrap returns the root element. It implements [Wrapper].
func (d *Document) Unwrap() *Element { return d.root }

// Render implements [Node].
func (d *Document) Render(buf *bytes.Buffer) { d.root.Render(buf) }

func (d *Document) String() string { return Render(d) }

// Write checks the tree with [Check] and writes its markup followed by a
// newline to w. Nothing is written when the check fails.
func (d *Document) Write(w io.Writer) error {
	if err := Check(d); err != nil {
		return err
	}
	var buf bytes.Buffer
	d.Render(&buf)
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

// Save writes the document to the file at path.
func (d *Document) Save(path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := Check(d); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
