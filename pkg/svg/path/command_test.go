package path

import (
	"math"
	"testing"

	"github.com/matzehuels/svgtree/pkg/errors"
)

func TestKindArity(t *testing.T) {
	want := map[Kind]int{
		Move: 2, Line: 2, HorizontalLine: 1, VerticalLine: 1,
		CubicCurve: 6, SmoothCubicCurve: 4, QuadraticCurve: 4,
		SmoothQuadraticCurve: 2, EllipticalArc: 7, ClosePath: 0,
	}
	for k, n := range want {
		if got := k.Arity(); got != n {
			t.Errorf("%s.Arity() = %d, want %d", k, got, n)
		}
	}
}

func TestKindLetter(t *testing.T) {
	tests := []struct {
		kind Kind
		abs  byte
		rel  byte
	}{
		{Move, 'M', 'm'},
		{Line, 'L', 'l'},
		{HorizontalLine, 'H', 'h'},
		{VerticalLine, 'V', 'v'},
		{CubicCurve, 'C', 'c'},
		{SmoothCubicCurve, 'S', 's'},
		{QuadraticCurve, 'Q', 'q'},
		{SmoothQuadraticCurve, 'T', 't'},
		{EllipticalArc, 'A', 'a'},
		{ClosePath, 'Z', 'z'},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Letter(Absolute); got != tt.abs {
				t.Errorf("Letter(Absolute) = %c, want %c", got, tt.abs)
			}
			if got := tt.kind.Letter(Relative); got != tt.rel {
				t.Errorf("Letter(Relative) = %c, want %c", got, tt.rel)
			}

			k, pos, ok := ParseLetter(tt.rel)
			if !ok || k != tt.kind || pos != Relative {
				t.Errorf("ParseLetter(%c) = %v, %v, %v", tt.rel, k, pos, ok)
			}
			k, pos, ok = ParseLetter(tt.abs)
			if !ok || k != tt.kind || pos != Absolute {
				t.Errorf("ParseLetter(%c) = %v, %v, %v", tt.abs, k, pos, ok)
			}
		})
	}

	if _, _, ok := ParseLetter('X'); ok {
		t.Error("ParseLetter(X) should fail")
	}
}

func TestNewCommandArity(t *testing.T) {
	for k := Move; k <= ClosePath; k++ {
		n := k.Arity()
		t.Run(k.String(), func(t *testing.T) {
			for _, count := range []int{n - 1, n + 1, n + 3} {
				if count < 0 {
					continue
				}
				_, err := NewCommand(k, Absolute, make([]Number, count)...)
				if !errors.Is(err, errors.ErrCodeInvalidArity) {
					t.Errorf("NewCommand with %d params: error = %v, want INVALID_ARITY", count, err)
				}
			}

			params := make([]Number, n)
			for i := range params {
				params[i] = Number(i + 1)
			}
			c, err := NewCommand(k, Relative, params...)
			if err != nil {
				t.Fatalf("NewCommand with %d params: %v", n, err)
			}
			if c.Kind() != k || c.Position() != Relative || len(c.Parameters()) != n {
				t.Errorf("NewCommand built %+v", c)
			}
		})
	}
}

func TestNewCommandRender(t *testing.T) {
	tests := []struct {
		kind   Kind
		pos    Position
		params []Number
		want   string
	}{
		{Move, Absolute, []Number{0, 0}, "M 0 0"},
		{Line, Relative, []Number{10, -5.5}, "l 10 -5.5"},
		{HorizontalLine, Absolute, []Number{3}, "H 3"},
		{VerticalLine, Relative, []Number{-2}, "v -2"},
		{CubicCurve, Absolute, []Number{1, 2, 3, 4, 5, 6}, "C 1 2 3 4 5 6"},
		{SmoothCubicCurve, Relative, []Number{1, 2, 3, 4}, "s 1 2 3 4"},
		{QuadraticCurve, Absolute, []Number{1, 2, 3, 4}, "Q 1 2 3 4"},
		{SmoothQuadraticCurve, Relative, []Number{0.25, 0.5}, "t 0.25 0.5"},
		{EllipticalArc, Absolute, []Number{25, 25, -30, 0, 1, 50, -25}, "A 25 25 -30 0 1 50 -25"},
		{ClosePath, Absolute, nil, "Z"},
		{ClosePath, Relative, nil, "z"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			c, err := NewCommand(tt.kind, tt.pos, tt.params...)
			if err != nil {
				t.Fatal(err)
			}
			got, err := c.SVGValue()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("SVGValue() = %q, want %q", got, tt.want)
			}
			if c.String() != tt.want {
				t.Errorf("String() = %q, want %q", c.String(), tt.want)
			}
		})
	}
}

func TestNewCommandRejects(t *testing.T) {
	if _, err := NewCommand(Line, Absolute, 1, Number(math.NaN())); !errors.Is(err, errors.ErrCodeInvalidValue) {
		t.Errorf("NaN operand: error = %v, want INVALID_VALUE", err)
	}
	if _, err := NewCommand(Kind(42), Absolute); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("unknown kind: error = %v, want INVALID_INPUT", err)
	}
}

func TestNewCommandCopiesParameters(t *testing.T) {
	params := []Number{1, 2}
	c, err := NewCommand(Move, Absolute, params...)
	if err != nil {
		t.Fatal(err)
	}
	params[0] = 99
	if got := c.String(); got != "M 1 2" {
		t.Errorf("command changed with caller slice: %q", got)
	}
	c.Parameters()[1] = 99
	if got := c.String(); got != "M 1 2" {
		t.Errorf("command changed through Parameters(): %q", got)
	}
}

func TestTypedConstructors(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{MoveTo(Absolute, 1, 2), "M 1 2"},
		{LineTo(Relative, 1, 2), "l 1 2"},
		{HorizontalLineTo(Absolute, 1), "H 1"},
		{VerticalLineTo(Relative, 1), "v 1"},
		{CubicCurveTo(Absolute, 1, 2, 3, 4, 5, 6), "C 1 2 3 4 5 6"},
		{SmoothCubicCurveTo(Relative, 1, 2, 3, 4), "s 1 2 3 4"},
		{QuadraticCurveTo(Absolute, 1, 2, 3, 4), "Q 1 2 3 4"},
		{SmoothQuadraticCurveTo(Relative, 1, 2), "t 1 2"},
		{EllipticalArcTo(Absolute, 1, 2, 3, 0, 1, 6, 7), "A 1 2 3 0 1 6 7"},
		{Close(Relative), "z"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if len(tt.cmd.Parameters()) != tt.cmd.Kind().Arity() {
			t.Errorf("%s: %d parameters, arity %d", tt.want, len(tt.cmd.Parameters()), tt.cmd.Kind().Arity())
		}
	}
}

func TestCommandStringNonFinite(t *testing.T) {
	c := LineTo(Absolute, Number(math.Inf(1)), 0)
	if _, err := c.SVGValue(); !errors.Is(err, errors.ErrCodeInvalidValue) {
		t.Errorf("SVGValue() error = %v, want INVALID_VALUE", err)
	}
	if got := c.String(); got != "L +Inf 0" {
		t.Errorf("String() = %q, want %q", got, "L +Inf 0")
	}
}

func TestMalformedCommandFails(t *testing.T) {
	short, err := NewCommand(Line, Absolute, 1)
	if err == nil {
		t.Fatal("NewCommand accepted one operand for line-to")
	}
	tests := []struct {
		name string
		cmd  Command
	}{
		{"zero value", Command{}},
		{"returned with error", short},
		{"unknown kind", Command{kind: Kind(42)}},
		{"unknown position", Command{kind: ClosePath, position: Position(7)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cmd.SVGValue(); !errors.Is(err, errors.ErrCodeInvalidArity) {
				t.Errorf("Command.SVGValue() error = %v, want INVALID_ARITY", err)
			}
			d := NewData().MoveTo(0, 0).Append(tt.cmd)
			if s, err := d.SVGValue(); !errors.Is(err, errors.ErrCodeInvalidArity) {
				t.Errorf("Data.SVGValue() = %q, %v, want INVALID_ARITY", s, err)
			}
		})
	}
}

func TestUnknownKind(t *testing.T) {
	k := Kind(42)
	if k.Valid() {
		t.Fatal("Kind(42) reported valid")
	}
	if got := k.Arity(); got != -1 {
		t.Errorf("Arity() = %d, want -1", got)
	}
	if got := k.Letter(Absolute); got != '?' {
		t.Errorf("Letter() = %q, want '?'", got)
	}
}

func TestNewCommandRejectsPosition(t *testing.T) {
	if _, err := NewCommand(Move, Position(7), 1, 2); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}
