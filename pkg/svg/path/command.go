package path

import (
	"slices"
	"strings"

	"github.com/matzehuels/svgtree/pkg/errors"
)

// Kind identifies a path drawing operation.
type Kind uint8

const (
	Move Kind = iota
	Line
	HorizontalLine
	VerticalLine
	CubicCurve
	SmoothCubicCurve
	QuadraticCurve
	SmoothQuadraticCurve
	EllipticalArc
	ClosePath
)

var kinds = [...]struct {
	letter byte
	arity  int
	name   string
}{
	Move:                 {'M', 2, "move-to"},
	Line:                 {'L', 2, "line-to"},
	HorizontalLine:       {'H', 1, "horizontal-line-to"},
	VerticalLine:         {'V', 1, "vertical-line-to"},
	CubicCurve:           {'C', 6, "cubic-curve-to"},
	SmoothCubicCurve:     {'S', 4, "smooth-cubic-curve-to"},
	QuadraticCurve:       {'Q', 4, "quadratic-curve-to"},
	SmoothQuadraticCurve: {'T', 2, "smooth-quadratic-curve-to"},
	EllipticalArc:        {'A', 7, "elliptical-arc-to"},
	ClosePath:            {'Z', 0, "close-path"},
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return int(k) < len(kinds) }

// Arity returns the number of parameters a command of kind k takes, or -1
// for an unknown kind.
func (k Kind) Arity() int {
	if !k.Valid() {
		return -1
	}
	return kinds[k].arity
}

// Letter returns the command letter for position p, or '?' for an unknown
// kind.
func (k Kind) Letter(p Position) byte {
	if !k.Valid() {
		return '?'
	}
	l := kinds[k].letter
	if p == Relative {
		l += 'a' - 'A'
	}
	return l
}

func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kinds[k].name
}

// ParseLetter returns the kind and position a command letter stands for.
func ParseLetter(letter byte) (Kind, Position, bool) {
	pos := Absolute
	if letter >= 'a' && letter <= 'z' {
		pos = Relative
		letter -= 'a' - 'A'
	}
	for k, d := range kinds {
		if d.letter == letter {
			return Kind(k), pos, true
		}
	}
	return 0, 0, false
}

// Command is one operation of path data. Its parameter count always matches
// the arity of its kind.
type Command struct {
	kind     Kind
	position Position
	params   Parameters
}

// NewCommand creates a command of the given kind.
//
// It fails with INVALID_ARITY when len(params) differs from kind.Arity() and
// with INVALID_VALUE when an operand is NaN or infinite. An unknown kind or
// position fails with INVALID_INPUT.
func NewCommand(kind Kind, pos Position, params ...Number) (Command, error) {
	if !kind.Valid() {
		return Command{}, errors.New(errors.ErrCodeInvalidInput, "unknown path command kind %d", kind)
	}
	if !pos.Valid() {
		return Command{}, errors.New(errors.ErrCodeInvalidInput, "unknown position %d", pos)
	}
	if len(params) != kind.Arity() {
		return Command{}, errors.New(errors.ErrCodeInvalidArity,
			"%s takes %d parameters, got %d", kind, kind.Arity(), len(params))
	}
	if err := Parameters(params).valid(); err != nil {
		return Command{}, errors.Wrap(errors.ErrCodeInvalidValue, err, "%s", kind)
	}
	return Command{kind: kind, position: pos, params: slices.Clone(params)}, nil
}

func newCommand(kind Kind, pos Position, params ...Number) Command {
	return Command{kind: kind, position: pos, params: params}
}

// MoveTo starts a new subpath at (x, y).
func MoveTo(pos Position, x, y Number) Command {
	return newCommand(Move, pos, x, y)
}

// LineTo draws a straight segment to (x, y).
func LineTo(pos Position, x, y Number) Command {
	return newCommand(Line, pos, x, y)
}

// HorizontalLineTo draws a straight segment to x, keeping y.
func HorizontalLineTo(pos Position, x Number) Command {
	return newCommand(HorizontalLine, pos, x)
}

// VerticalLineTo draws a straight segment to y, keeping x.
func VerticalLineTo(pos Position, y Number) Command {
	return newCommand(VerticalLine, pos, y)
}

// CubicCurveTo draws a cubic Bézier curve with control points (x1, y1) and
// (x2, y2) ending at (x, y).
func CubicCurveTo(pos Position, x1, y1, x2, y2, x, y Number) Command {
	return newCommand(CubicCurve, pos, x1, y1, x2, y2, x, y)
}

// SmoothCubicCurveTo draws a cubic Bézier curve whose first control point is
// the reflection of the previous segment's second one.
func SmoothCubicCurveTo(pos Position, x2, y2, x, y Number) Command {
	return newCommand(SmoothCubicCurve, pos, x2, y2, x, y)
}

// QuadraticCurveTo draws a quadratic Bézier curve with control point (x1, y1).
func QuadraticCurveTo(pos Position, x1, y1, x, y Number) Command {
	return newCommand(QuadraticCurve, pos, x1, y1, x, y)
}

// SmoothQuadraticCurveTo draws a quadratic Bézier curve with a reflected
// control point.
func SmoothQuadraticCurveTo(pos Position, x, y Number) Command {
	return newCommand(SmoothQuadraticCurve, pos, x, y)
}

// EllipticalArcTo draws an elliptical arc. The flags are 0 or 1.
func EllipticalArcTo(pos Position, rx, ry, rotation, largeArc, sweep, x, y Number) Command {
	return newCommand(EllipticalArc, pos, rx, ry, rotation, largeArc, sweep, x, y)
}

// Close closes the current subpath.
func Close(pos Position) Command {
	return newCommand(ClosePath, pos)
}

// Kind returns the operation kind.
func (c Command) Kind() Kind { return c.kind }

// Position returns the positioning mode.
func (c Command) Position() Position { return c.position }

// Parameters returns a copy of the operands.
func (c Command) Parameters() Parameters { return slices.Clone(c.params) }

// Letter returns the command letter, uppercase when absolute.
func (c Command) Letter() byte { return c.kind.Letter(c.position) }

// SVGValue renders the letter followed by the operands.
func (c Command) SVGValue() (string, error) {
	var sb strings.Builder
	if err := c.write(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// String renders the command like [Command.SVGValue] but never fails;
// non-finite operands show up as NaN or ±Inf.
func (c Command) String() string {
	if len(c.params) == 0 {
		return string(c.Letter())
	}
	return string(c.Letter()) + " " + c.params.String()
}

// check reports commands that did not come from a constructor, such as the
// zero Command, whose operand count does not match their kind.
func (c Command) check() error {
	if !c.kind.Valid() || !c.position.Valid() {
		return errors.New(errors.ErrCodeInvalidArity, "malformed path command (kind %d, position %d)", c.kind, c.position)
	}
	if len(c.params) != c.kind.Arity() {
		return errors.New(errors.ErrCodeInvalidArity,
			"%s takes %d parameters, has %d", c.kind, c.kind.Arity(), len(c.params))
	}
	return nil
}

func (c Command) write(sb *strings.Builder) error {
	if err := c.check(); err != nil {
		return err
	}
	sb.WriteByte(c.Letter())
	if len(c.params) == 0 {
		return nil
	}
	s, err := c.params.SVGValue()
	if err != nil {
		return err
	}
	sb.WriteByte(' ')
	sb.WriteString(s)
	return nil
}
