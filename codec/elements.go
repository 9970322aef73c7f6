package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrNotFixed is returned when a buffer without a fixed-width layout (strings)
// is handed to the base64 element codec.
var ErrNotFixed = errors.New("codec: element type has no fixed-width layout")

// Fixed is the set of element types carried in base64 payloads.
type Fixed interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64 | bool
}

// LengthError reports a decoded payload whose byte length does not match
// element count times element width.
type LengthError struct {
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("payload is %d bytes, expected %d", e.Got, e.Want)
}

// Width returns the byte width of one element of T.
func Width[T Fixed]() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8, bool:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	default:
		return 8
	}
}

// Marshal lays src out as little-endian fixed-width bytes. Floats keep their
// IEEE-754 bit patterns; bools take one byte each (0 or 1).
func Marshal[T Fixed](src []T) []byte {
	out := make([]byte, len(src)*Width[T]())
	le := binary.LittleEndian
	switch s := any(src).(type) {
	case []int8:
		for i, v := range s {
			out[i] = byte(v)
		}
	case []uint8:
		copy(out, s)
	case []bool:
		for i, v := range s {
			if v {
				out[i] = 1
			}
		}
	case []int16:
		for i, v := range s {
			le.PutUint16(out[2*i:], uint16(v))
		}
	case []uint16:
		for i, v := range s {
			le.PutUint16(out[2*i:], v)
		}
	case []int32:
		for i, v := range s {
			le.PutUint32(out[4*i:], uint32(v))
		}
	case []uint32:
		for i, v := range s {
			le.PutUint32(out[4*i:], v)
		}
	case []float32:
		for i, v := range s {
			le.PutUint32(out[4*i:], math.Float32bits(v))
		}
	case []int64:
		for i, v := range s {
			le.PutUint64(out[8*i:], uint64(v))
		}
	case []uint64:
		for i, v := range s {
			le.PutUint64(out[8*i:], v)
		}
	case []float64:
		for i, v := range s {
			le.PutUint64(out[8*i:], math.Float64bits(v))
		}
	}
	return out
}

// Unmarshal fills dst from little-endian raw bytes. raw must hold exactly
// len(dst) elements.
func Unmarshal[T Fixed](raw []byte, dst []T) error {
	if want := len(dst) * Width[T](); len(raw) != want {
		return &LengthError{Want: want, Got: len(raw)}
	}
	le := binary.LittleEndian
	switch d := any(dst).(type) {
	case []int8:
		for i := range d {
			d[i] = int8(raw[i])
		}
	case []uint8:
		copy(d, raw)
	case []bool:
		for i := range d {
			d[i] = raw[i] != 0
		}
	case []int16:
		for i := range d {
			d[i] = int16(le.Uint16(raw[2*i:]))
		}
	case []uint16:
		for i := range d {
			d[i] = le.Uint16(raw[2*i:])
		}
	case []int32:
		for i := range d {
			d[i] = int32(le.Uint32(raw[4*i:]))
		}
	case []uint32:
		for i := range d {
			d[i] = le.Uint32(raw[4*i:])
		}
	case []float32:
		for i := range d {
			d[i] = math.Float32frombits(le.Uint32(raw[4*i:]))
		}
	case []int64:
		for i := range d {
			d[i] = int64(le.Uint64(raw[8*i:]))
		}
	case []uint64:
		for i := range d {
			d[i] = le.Uint64(raw[8*i:])
		}
	case []float64:
		for i := range d {
			d[i] = math.Float64frombits(le.Uint64(raw[8*i:]))
		}
	}
	return nil
}

// EncodeElements is Marshal followed by EncodeBase64.
func EncodeElements[T Fixed](src []T) string {
	return EncodeBase64(Marshal(src))
}

// DecodeElements is DecodeBase64 followed by Unmarshal into dst.
func DecodeElements[T Fixed](s string, dst []T) error {
	raw, err := DecodeBase64(s)
	if err != nil {
		return err
	}
	return Unmarshal(raw, dst)
}
