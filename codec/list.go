package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// ListError reports a nested list that does not match the array shape. At is
// the index path of the offending level.
type ListError struct {
	At  []int
	Msg string
	Err error
}

func (e *ListError) Error() string {
	var b strings.Builder
	b.WriteString("list payload")
	if len(e.At) > 0 {
		b.WriteString(" at [")
		for i, v := range e.At {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte(']')
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ListError) Unwrap() error { return e.Err }

// EncodeList renders data as nested []any whose depth equals len(shape). A
// 0-dimensional array renders as its single element.
func EncodeList[T any](data []T, shape, strides []int) any {
	if len(shape) == 0 {
		return data[0]
	}
	return encodeLevel(data, shape, strides, 0, 0)
}

func encodeLevel[T any](data []T, shape, strides []int, dim, offset int) []any {
	out := make([]any, shape[dim])
	if dim == len(shape)-1 {
		for i := range out {
			out[i] = data[offset+i]
		}
		return out
	}
	for i := range out {
		out[i] = encodeLevel(data, shape, strides, dim+1, offset+i*strides[dim])
	}
	return out
}

// CheckListShape follows the first element down each axis of node and checks
// the list lengths against shape. It touches at most len(shape) lists, so it
// bounds every extent by the size of the payload before a buffer sized from
// shape is allocated. A 0-dimensional shape accepts any node.
func CheckListShape(node any, shape []int) error {
	at := []int{}
	for dim, extent := range shape {
		list, ok := node.([]any)
		if !ok {
			return &ListError{At: at, Msg: fmt.Sprintf("expected a list at depth %d, got %T", dim, node)}
		}
		if len(list) != extent {
			return &ListError{At: at, Msg: fmt.Sprintf("length %d does not match extent %d of axis %d", len(list), extent, dim)}
		}
		if extent == 0 {
			return nil
		}
		node = list[0]
		at = append(at, 0)
	}
	return nil
}

// DecodeList walks node following shape and stores each leaf into dst at its
// row-major offset. conv converts one leaf element. dst must hold
// product(shape) elements.
func DecodeList[T any](node any, shape, strides []int, dst []T, conv func(any) (T, error)) error {
	if len(shape) == 0 {
		v, err := conv(node)
		if err != nil {
			return &ListError{Msg: "bad element", Err: err}
		}
		dst[0] = v
		return nil
	}
	return decodeLevel(node, shape, strides, dst, conv, 0, 0, nil)
}

func decodeLevel[T any](node any, shape, strides []int, dst []T, conv func(any) (T, error), dim, offset int, at []int) error {
	list, ok := node.([]any)
	if !ok {
		return &ListError{At: at, Msg: fmt.Sprintf("expected a list at depth %d, got %T", dim, node)}
	}
	if len(list) != shape[dim] {
		return &ListError{At: at, Msg: fmt.Sprintf("length %d does not match extent %d of axis %d", len(list), shape[dim], dim)}
	}
	last := dim == len(shape)-1
	for i, child := range list {
		here := append(at[:len(at):len(at)], i)
		if last {
			if _, nested := child.([]any); nested {
				return &ListError{At: here, Msg: "nesting deeper than the dimension count"}
			}
			v, err := conv(child)
			if err != nil {
				return &ListError{At: here, Msg: "bad element", Err: err}
			}
			dst[offset+i] = v
			continue
		}
		if err := decodeLevel(child, shape, strides, dst, conv, dim+1, offset+i*strides[dim], here); err != nil {
			return err
		}
	}
	return nil
}
