package path

import (
	"slices"
	"strings"
)

// Data is an append-only sequence of commands forming one path description.
type Data struct {
	commands []Command
}

// NewData creates empty path data.
func NewData() *Data {
	return &Data{}
}

// Append adds c as the last command and returns d for chaining.
func (d *Data) Append(c Command) *Data {
	d.commands = append(d.commands, c)
	return d
}

// Len returns the number of commands.
func (d *Data) Len() int { return len(d.commands) }

// Commands returns a copy of the command sequence.
func (d *Data) Commands() []Command { return slices.Clone(d.commands) }

// SVGValue renders the d attribute text. It fails with INVALID_VALUE when an
// operand is NaN or infinite.
func (d *Data) SVGValue() (string, error) {
	var sb strings.Builder
	for i, c := range d.commands {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if err := c.write(&sb); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func (d *Data) String() string {
	parts := make([]string, len(d.commands))
	for i, c := range d.commands {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// MoveTo appends an absolute move-to.
func (d *Data) MoveTo(x, y Number) *Data { return d.Append(MoveTo(Absolute, x, y)) }

// MoveBy appends a relative move-to.
func (d *Data) MoveBy(dx, dy Number) *Data { return d.Append(MoveTo(Relative, dx, dy)) }

// LineTo appends an absolute line-to.
func (d *Data) LineTo(x, y Number) *Data { return d.Append(LineTo(Absolute, x, y)) }

// LineBy appends a relative line-to.
func (d *Data) LineBy(dx, dy Number) *Data { return d.Append(LineTo(Relative, dx, dy)) }

// Close appends an absolute close-path.
func (d *Data) Close() *Data { return d.Append(Close(Absolute)) }
