// Package svg builds SVG documents as a tree of nodes and renders them to markup.
//
// # Overview
//
// The tree is made of [Node] values. [Element] is the generic markup node: a
// tag name, an ordered attribute list and an ordered list of owned children.
// Leaf nodes such as [Text] render a single unit of markup.
//
//	rect := svg.NewElement("rect")
//	_ = rect.Assign("x", 10)
//	_ = rect.Assign("size", svg.Tuple{42.5, 69.0})
//
//	g := svg.NewElement("g")
//	g.Append(rect)
//	fmt.Println(svg.Render(g))
//	// <g>
//	// <rect x='10' size='42.5 69'/>
//	// </g>
//
// # Attribute Values
//
// [Element.Assign] converts its value with [Value]. Integers render as plain
// decimal text, floats in their shortest form without a trailing ".0",
// strings pass through untouched, and tuples and slices are joined with single
// spaces. Types can take part by implementing [Valuer]; path data from the
// path subpackage does so. NaN and infinities are rejected with an
// INVALID_VALUE error rather than rendered.
//
// # Rendering
//
// Rendering is a pure function of the tree. There is no indentation: each
// child is placed on its own line between the opening and closing tags, and
// an element without children renders in self-closing form. Attribute values
// are emitted between single quotes without escaping; callers supply text
// that is already safe. Text nodes, by contrast, escape their content.
//
// # Documents
//
// [Document] is the root <svg> element with the SVG namespace assigned.
// [Document.Write] and [Document.Save] run [Check] first, so a tree holding a
// deferred construction error (see the tag subpackage) is never written.
package svg
