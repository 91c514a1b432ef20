package apiclient

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// QueryParams holds flat query values: strings, integers, floats or bools.
type QueryParams map[string]any

// Encode stringifies every value and returns the query string with keys in
// sorted order. Floats are written the way JavaScript prints numbers: 65.0
// encodes as "65", 0.5 as "0.5" and 1e21 as "1e+21".
func (p QueryParams) Encode() (string, error) {
	values := make(url.Values, len(p))
	for key, value := range p {
		s, err := stringify(value)
		if err != nil {
			return "", fmt.Errorf("param %q: %w", key, err)
		}
		values.Set(key, s)
	}
	return values.Encode(), nil
}

func stringify(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
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
		return formatFloat(float64(v), 32), nil
	case float64:
		return formatFloat(v, 64), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedParam, value)
	}
}

// formatFloat switches to exponent notation outside [1e-6, 1e21) and drops
// the exponent's zero padding ("1.5e-7", not "1.5e-07").
func formatFloat(v float64, bitSize int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, bitSize), "e")
		return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(v, 'f', -1, bitSize)
}
