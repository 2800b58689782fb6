package path

import (
	"strconv"
	"strings"

	"github.com/matzehuels/svgtree/pkg/svg"
)

// Parameters is the ordered operand list of a command.
type Parameters []Number

// SVGValue renders the operands separated by single spaces.
// It implements [svg.Valuer].
func (p Parameters) SVGValue() (string, error) {
	var sb strings.Builder
	for i, n := range p {
		s, err := svg.FormatNumber(n)
		if err != nil {
			return "", err
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// String renders the operands like [Parameters.SVGValue] without the
// finiteness check.
func (p Parameters) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		if s, err := svg.FormatNumber(n); err == nil {
			parts[i] = s
		} else {
			parts[i] = strconv.FormatFloat(float64(n), 'g', -1, 32)
		}
	}
	return strings.Join(parts, " ")
}

func (p Parameters) valid() error {
	for _, n := range p {
		if _, err := svg.FormatNumber(n); err != nil {
			return err
		}
	}
	return nil
}
