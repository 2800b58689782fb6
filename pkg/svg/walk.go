package svg

import "errors"

// SkipChildren can be returned from a [Walk] callback to skip the children
// of the node being visited.
var SkipChildren = errors.New("skip children")

// Visit describes one node reached by [Walk]. It is a read-only snapshot;
// the walk never hands out the nodes themselves.
type Visit struct {
	ID         int    // pre-order index, the root is 0
	Parent     int    // ID of the parent, -1 for the root
	Depth      int    // 0 for the root
	Name       string // tag name, "#text" for text nodes, "#node" for foreign leaves
	Attributes []Attribute
	Text       string // content of text nodes
	Children   int
	Markup     string // rendered markup of leaves other than elements
	Err        error  // deferred construction error, if the node carries one
}

// Walk visits the tree rooted at n in document order.
// Returning [SkipChildren] prunes the subtree; any other error stops the walk
// and is returned.
func Walk(n Node, fn func(Visit) error) error {
	w := walker{fn: fn}
	return w.walk(n, -1, 0)
}

type walker struct {
	fn   func(Visit) error
	next int
}

func (w *walker) walk(n Node, parent, depth int) error {
	v := Visit{ID: w.next, Parent: parent, Depth: depth}
	w.next++

	if f, ok := n.(Fallible); ok {
		v.Err = f.Err()
	}
	if wr, ok := n.(Wrapper); ok {
		n = wr.Unwrap()
	}

	var children []Node
	switch n := n.(type) {
	case *Element:
		v.Name = n.name
		v.Attributes = n.Attributes()
		v.Children = len(n.children)
		children = n.children
	case *Text:
		v.Name = "#text"
		v.Text = n.content
	default:
		v.Name = "#node"
		v.Markup = Render(n)
	}

	if err := w.fn(v); err != nil {
		if err == SkipChildren {
			return nil
		}
		return err
	}
	for _, c := range children {
		if err := w.walk(c, v.ID, depth+1); err != nil {
			return err
		}
	}
	return nil
}
