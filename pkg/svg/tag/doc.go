// Package tag provides chainable builders for individual SVG elements.
//
// Every builder wraps a [svg.Element] and exposes [Builder.Set] and
// [Builder.Add], both of which return the builder so calls can be chained:
//
//	doc := svg.NewDocument()
//	doc.Append(tag.Rect().Set("x", 0).Set("y", 0).Set("width", 10).Set("height", 10))
//	doc.Append(tag.Path().D(path.NewData().MoveTo(0, 0).LineTo(10, 10)).Set("stroke", "black"))
//
// Because a chain cannot return an error at every step, the first conversion
// failure is recorded and reported by [Builder.Err]. Adding a failed builder
// to another builder propagates its error upward, and [svg.Document.Write]
// refuses to write a tree containing one. The failing attribute itself is
// never appended.
//
// Constructors exist for the elements of SVG 1.1; [Lookup] finds one by
// tag name and [Names] lists them.
package tag
