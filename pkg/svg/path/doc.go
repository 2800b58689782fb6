// Package path models SVG path data, the mini-language of the d attribute.
//
// A [Command] is one drawing operation: a [Kind] (move, line, curve, arc,
// close), a [Position] that selects absolute or relative coordinates, and
// exactly as many [Parameters] as the kind declares:
//
//	Kind                    Letter  Parameters
//	Move                    M m     x y
//	Line                    L l     x y
//	HorizontalLine          H h     x
//	VerticalLine            V v     y
//	CubicCurve              C c     x1 y1 x2 y2 x y
//	SmoothCubicCurve        S s     x2 y2 x y
//	QuadraticCurve          Q q     x1 y1 x y
//	SmoothQuadraticCurve    T t     x y
//	EllipticalArc           A a     rx ry x-axis-rotation large-arc-flag sweep-flag x y
//	ClosePath               Z z     (none)
//
// The typed constructors ([MoveTo], [LineTo], ...) take the operands as
// arguments. [NewCommand] takes a kind and a variadic operand list and fails
// with INVALID_ARITY when the count is wrong.
//
// [Data] accumulates commands in order and renders them without any
// normalization: each command becomes its letter followed by its operands,
// and commands are separated by single spaces.
//
//	d := path.NewData().
//	    Append(path.MoveTo(path.Absolute, 0, 0)).
//	    Append(path.LineTo(path.Relative, 10, 0)).
//	    Append(path.Close(path.Absolute))
//	fmt.Println(d) // M 0 0 l 10 0 Z
//
// Data implements [svg.Valuer], so it can be assigned directly as the d
// attribute of an element.
package path
