package svg

import "bytes"

// Node is anything that renders itself as one unit of markup.
//
// A node may span several lines but never ends with a newline; the parent
// element places separators around it.
type Node interface {
	Render(buf *bytes.Buffer)
}

// Wrapper is implemented by nodes that delegate to an [Element], such as the
// typed façades in the tag subpackage. [Walk] and [Check] look through it.
type Wrapper interface {
	Node
	Unwrap() *Element
}

// Fallible is implemented by nodes that can carry a construction error
// deferred from a chained builder call.
type Fallible interface {
	Err() error
}

// Render returns the markup of n.
func Render(n Node) string {
	var buf bytes.Buffer
	n.Render(&buf)
	return buf.String()
}

// Check reports the first deferred construction error found in the tree
// rooted at n, in document order.
func Check(n Node) error {
	return Walk(n, func(v Visit) error { return v.Err })
}
