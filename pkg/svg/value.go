package svg

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/matzehuels/svgtree/pkg/errors"
)

// Valuer is implemented by types that convert themselves into attribute text.
type Valuer interface {
	SVGValue() (string, error)
}

// Tuple groups two or more values that render as one attribute, separated by
// single spaces: Tuple{42.5, 69.0} renders as "42.5 69".
type Tuple []any

// SVGValue implements [Valuer].
func (t Tuple) SVGValue() (string, error) {
	return join(len(t), func(i int) any { return t[i] })
}

// Value converts v into its attribute text.
//
// Supported inputs are strings, booleans, all integer and float kinds,
// [Tuple], slices of those, [Valuer] and [fmt.Stringer]. Anything else, as
// well as a NaN or infinite float anywhere inside v, fails with an
// INVALID_VALUE error. A nil pointer behind a [Valuer] or [fmt.Stringer] is
// rejected the same way as an untyped nil.
func Value(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", errors.New(errors.ErrCodeInvalidValue, "nil value")
	case Valuer:
		if nilPointer(v) {
			return "", errors.New(errors.ErrCodeInvalidValue, "nil %T", v)
		}
		return v.SVGValue()
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return formatFloat(float64(v), 32)
	case float64:
		return formatFloat(v, 64)
	case []any:
		return Tuple(v).SVGValue()
	case []string:
		return strings.Join(v, " "), nil
	case []int:
		return join(len(v), func(i int) any { return v[i] })
	case []float32:
		return join(len(v), func(i int) any { return v[i] })
	case []float64:
		return join(len(v), func(i int) any { return v[i] })
	case fmt.Stringer:
		if nilPointer(v) {
			return "", errors.New(errors.ErrCodeInvalidValue, "nil %T", v)
		}
		return v.String(), nil
	}
	return "", errors.New(errors.ErrCodeInvalidValue, "unsupported value type %T", v)
}

// FormatNumber renders a float32 the way attribute and path text expect it.
func FormatNumber(f float32) (string, error) {
	return formatFloat(float64(f), 32)
}

func formatFloat(f float64, bits int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", errors.New(errors.ErrCodeInvalidValue, "non-finite number %v", f)
	}
	if f == 0 {
		// Drops the sign of negative zero.
		return "0", nil
	}
	return strconv.FormatFloat(f, 'f', -1, bits), nil
}

func join(n int, at func(int) any) (string, error) {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		s, err := Value(at(i))
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

func nilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
