package path

// Number is the numeric type of path operands.
type Number = float32

// Position selects how a command's coordinates are interpreted.
type Position uint8

const (
	// Absolute coordinates, rendered with an uppercase letter.
	Absolute Position = iota
	// Relative coordinates, offsets from the current point; rendered lowercase.
	Relative
)

// Valid reports whether p is Absolute or Relative.
func (p Position) Valid() bool { return p <= Relative }

func (p Position) String() string {
	if p == Relative {
		return "relative"
	}
	return "absolute"
}
