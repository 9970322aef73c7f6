package saldata

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// convertScalar extracts a T from a generic tree value. Numbers may arrive as
// json.Number (JSON input), Go integers (YAML, CBOR, values produced by
// Encode) or Go floats. Integer kinds reject fractional and out-of-range
// values instead of truncating them.
func convertScalar[T Scalar](v any) (T, error) {
	var zero T
	var out any
	var err error
	switch any(zero).(type) {
	case int8:
		var i int64
		i, err = toInt(v, 8)
		out = int8(i)
	case int16:
		var i int64
		i, err = toInt(v, 16)
		out = int16(i)
	case int32:
		var i int64
		i, err = toInt(v, 32)
		out = int32(i)
	case int64:
		out, err = toInt(v, 64)
	case uint8:
		var u uint64
		u, err = toUint(v, 8)
		out = uint8(u)
	case uint16:
		var u uint64
		u, err = toUint(v, 16)
		out = uint16(u)
	case uint32:
		var u uint64
		u, err = toUint(v, 32)
		out = uint32(u)
	case uint64:
		out, err = toUint(v, 64)
	case float32:
		var f float64
		f, err = toFloat(v, 32)
		out = float32(f)
	case float64:
		out, err = toFloat(v, 64)
	case bool:
		b, ok := v.(bool)
		if !ok {
			err = fmt.Errorf("expected a boolean, got %T", v)
		}
		out = b
	case string:
		s, ok := v.(string)
		if !ok {
			err = fmt.Errorf("expected a string, got %T", v)
		}
		out = s
	}
	if err != nil {
		return zero, err
	}
	return out.(T), nil
}

func toInt(v any, bits int) (int64, error) {
	lo, hi := int64(math.MinInt64), int64(math.MaxInt64)
	if bits < 64 {
		lo, hi = -1<<(bits-1), 1<<(bits-1)-1
	}
	var i int64
	switch n := v.(type) {
	case json.Number:
		var err error
		i, err = strconv.ParseInt(string(n), 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(string(n), 64)
			if ferr != nil {
				return 0, fmt.Errorf("%q is not an integer", n)
			}
			return toInt(f, bits)
		}
	case int:
		i = int64(n)
	case int8:
		i = int64(n)
	case int16:
		i = int64(n)
	case int32:
		i = int64(n)
	case int64:
		i = n
	case uint8:
		i = int64(n)
	case uint16:
		i = int64(n)
	case uint32:
		i = int64(n)
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int%d", n, bits)
		}
		i = int64(n)
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int%d", n, bits)
		}
		i = int64(n)
	case float32:
		return toInt(float64(n), bits)
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		if n < -9.223372036854775808e18 || n >= 9.223372036854775808e18 {
			return 0, fmt.Errorf("%v overflows int%d", n, bits)
		}
		i = int64(n)
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
	if i < lo || i > hi {
		return 0, fmt.Errorf("%d overflows int%d", i, bits)
	}
	return i, nil
}

func toUint(v any, bits int) (uint64, error) {
	hi := uint64(math.MaxUint64)
	if bits < 64 {
		hi = 1<<bits - 1
	}
	var u uint64
	switch n := v.(type) {
	case json.Number:
		var err error
		u, err = strconv.ParseUint(string(n), 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(string(n), 64)
			if ferr != nil {
				return 0, fmt.Errorf("%q is not an unsigned integer", n)
			}
			return toUint(f, bits)
		}
	case int, int8, int16, int32, int64:
		i, _ := toInt(n, 64)
		if i < 0 {
			return 0, fmt.Errorf("%d is negative", i)
		}
		u = uint64(i)
	case uint:
		u = uint64(n)
	case uint8:
		u = uint64(n)
	case uint16:
		u = uint64(n)
	case uint32:
		u = uint64(n)
	case uint64:
		u = n
	case float32:
		return toUint(float64(n), bits)
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		if n < 0 || n >= 1.8446744073709551616e19 {
			return 0, fmt.Errorf("%v overflows uint%d", n, bits)
		}
		u = uint64(n)
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
	if u > hi {
		return 0, fmt.Errorf("%d overflows uint%d", u, bits)
	}
	return u, nil
}

func toFloat(v any, bits int) (float64, error) {
	var f float64
	switch n := v.(type) {
	case json.Number:
		var err error
		f, err = strconv.ParseFloat(string(n), bits)
		if err != nil {
			return 0, fmt.Errorf("%q is not a float%d", n, bits)
		}
		return f, nil
	case float32:
		return float64(n), nil
	case float64:
		f = n
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
	if bits == 32 && !math.IsInf(f, 0) && !math.IsNaN(f) && math.Abs(f) > math.MaxFloat32 {
		return 0, fmt.Errorf("%v overflows float32", f)
	}
	return f, nil
}
