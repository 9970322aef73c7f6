package saldata

import (
	"github.com/reoring/saldata/codec"
)

// Array is a multi-dimensional array of element kind T held in a flat
// row-major buffer. The buffer length always equals the product of the shape
// and the strides are derived from the shape.
//
// Array is not intended to be used with its zero value; build it with
// NewArray or decode it. For example:
//
//	// 1D uint8 array with 1000 elements
//	a1, _ := NewArray[uint8](1000)
//	// 2D int32 array with 50x20 elements
//	a2, _ := NewArray[int32](50, 20)
//	// 3D float32 array with 512x512x3 elements
//	a3, _ := NewArray[float32](512, 512, 3)
type Array[T Scalar] struct {
	shape   []int
	strides []int
	data    []T
	summary bool
}

// Array aliases named after the element kinds.
type (
	Int8Array    = Array[int8]
	Int16Array   = Array[int16]
	Int32Array   = Array[int32]
	Int64Array   = Array[int64]
	Uint8Array   = Array[uint8]
	Uint16Array  = Array[uint16]
	Uint32Array  = Array[uint32]
	Uint64Array  = Array[uint64]
	Float32Array = Array[float32]
	Float64Array = Array[float64]
	BoolArray    = Array[bool]
	StringArray  = Array[string]
)

// NewArray allocates a zero-filled array of the given shape. No extents means
// a 0-dimensional array holding one element.
func NewArray[T Scalar](shape ...int) (*Array[T], error) {
	strides, count, err := layout[T](shape)
	if err != nil {
		return nil, err
	}
	return &Array[T]{
		shape:   append([]int{}, shape...),
		strides: strides,
		data:    make([]T, count),
	}, nil
}

// layout validates shape for element kind T and returns its strides and
// element count. The payload size in bytes must also fit in an int.
func layout[T Scalar](shape []int) ([]int, int, error) {
	strides, err := Strides(shape)
	if err != nil {
		return nil, 0, err
	}
	count, err := ElementCount(shape)
	if err != nil {
		return nil, 0, err
	}
	if _, ok := mulInt(count, max(kindOf[T]().ElementWidth(), 1)); !ok {
		return nil, 0, extentOverflow(shape)
	}
	return strides, count, nil
}

// NewArrayFrom builds an array of the given shape over a copy of data.
func NewArrayFrom[T Scalar](data []T, shape ...int) (*Array[T], error) {
	a, err := NewArray[T](shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.data) {
		return nil, malformed(RootPath(), nil, "%d elements do not fill shape %v", len(data), shape)
	}
	copy(a.data, data)
	return a, nil
}

func (a *Array[T]) Kind() Kind        { return KindArray }
func (a *Array[T]) ElementKind() Kind { return kindOf[T]() }
func (a *Array[T]) IsSummary() bool   { return a.summary }
func (a *Array[T]) attribute()        {}

func (a *Array[T]) Shape() []int   { return append([]int{}, a.shape...) }
func (a *Array[T]) Strides() []int { return append([]int{}, a.strides...) }
func (a *Array[T]) Dimension() int { return len(a.shape) }

// Len is the number of stored elements; 0 for summaries.
func (a *Array[T]) Len() int { return len(a.data) }

// ByteSize is the size of the base64 payload in bytes. String arrays have
// no fixed-width layout and report 0.
func (a *Array[T]) ByteSize() int { return len(a.data) * a.ElementKind().ElementWidth() }

// Encoding is the payload encoding of this array ("list" for strings).
func (a *Array[T]) Encoding() string { return a.ElementKind().Encoding() }

// Data returns the flat buffer for fast access. Indexing it is not bounds
// checked against the shape; use At for that. Summaries return an empty
// slice.
func (a *Array[T]) Data() []T { return a.data }

// At returns the element at the multi-index idx. Each index must lie in
// [0, shape[axis]).
func (a *Array[T]) At(idx ...int) (T, error) {
	var zero T
	if a.summary {
		return zero, summaryAccess()
	}
	off, err := Offset(a.shape, a.strides, idx)
	if err != nil {
		return zero, err
	}
	return a.data[off], nil
}

// SetAt stores v at the multi-index idx with the same checks as At.
func (a *Array[T]) SetAt(v T, idx ...int) error {
	if a.summary {
		return summaryAccess()
	}
	off, err := Offset(a.shape, a.strides, idx)
	if err != nil {
		return err
	}
	a.data[off] = v
	return nil
}

// Matrix returns element (row, col) of a 2D array without bounds checks.
func (a *Array[T]) Matrix(row, col int) T {
	return a.data[row*a.strides[0]+col]
}

// Element is At with the result boxed; it serves the ArrayValue interface.
func (a *Array[T]) Element(idx ...int) (any, error) {
	v, err := a.At(idx...)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Bytes returns the little-endian payload bytes of a numeric or bool array.
func (a *Array[T]) Bytes() ([]byte, error) {
	if a.summary {
		return nil, summaryAccess()
	}
	raw, ok := marshalFixed(a.data)
	if !ok {
		return nil, malformed(RootPath(), nil, "%s elements have no fixed-width layout", a.ElementKind())
	}
	return raw, nil
}

// Encode renders
//
//	{type: "array", value: {type, shape, encoding, data}}
//
// where data is a base64 string, or nested lists for string elements.
func (a *Array[T]) Encode() (map[string]any, error) {
	if a.summary {
		return nil, summaryAccess()
	}
	kind := a.ElementKind()
	var data any
	if kind == KindString {
		data = codec.EncodeList(a.data, a.shape, a.strides)
	} else {
		data = encodeFixed(a.data)
	}
	return map[string]any{
		"type": TypeNameArray,
		"value": map[string]any{
			"type":     kind.WireName(),
			"shape":    encodeShape(a.shape),
			"encoding": kind.Encoding(),
			"data":     data,
		},
	}, nil
}

// EncodeSummary renders {shape: [...]}.
func (a *Array[T]) EncodeSummary() map[string]any {
	return map[string]any{"shape": encodeShape(a.shape)}
}

func (a *Array[T]) Summary() string { return summaryJSON(a.EncodeSummary()) }

// DecodeArray decodes an array node into an Array of element kind T. The
// declared element type must be T's wire name; uint8 arrays also accept
// "bool". A node without "value" decodes as a summary.
func DecodeArray[T Scalar](node any) (*Array[T], error) {
	return decodeArray[T](node, RootPath())
}

func decodeArray[T Scalar](node any, p PathRef) (*Array[T], error) {
	obj, name, err := typedObject(node, p)
	if err != nil {
		return nil, err
	}
	if name != TypeNameArray {
		return nil, mismatch(p, node, TypeNameArray, name)
	}
	raw, full := obj["value"]
	if !full {
		shape, err := decodeShape(obj, p, node)
		if err != nil {
			return nil, err
		}
		strides, err := Strides(shape)
		if err != nil {
			return nil, relocate(err, p.Field("shape"), node)
		}
		return &Array[T]{shape: shape, strides: strides, data: []T{}, summary: true}, nil
	}

	vp := p.Field("value")
	def, ok := raw.(map[string]any)
	if !ok {
		return nil, malformed(vp, node, "array definition must be an object, got %T", raw)
	}
	want := kindOf[T]()
	elName, ok := def["type"].(string)
	if !ok {
		return nil, malformed(vp.Field("type"), node, "missing element type")
	}
	if !want.acceptsElementName(elName) {
		return nil, mismatch(vp.Field("type"), node, want.WireName(), elName)
	}
	enc, err := decodeEncoding(def, want, vp, node)
	if err != nil {
		return nil, err
	}
	shape, err := decodeShape(def, vp, node)
	if err != nil {
		return nil, err
	}
	strides, count, err := layout[T](shape)
	if err != nil {
		return nil, relocate(err, vp.Field("shape"), node)
	}
	payload, ok := def["data"]
	if !ok {
		return nil, malformed(vp, node, "missing data")
	}
	// The payload must match the shape before the buffer is allocated.
	dp := vp.Field("data")
	if enc == EncodingList {
		if err := codec.CheckListShape(payload, shape); err != nil {
			return nil, withCause(malformed(dp, node, "list payload does not match shape %v", shape), err)
		}
		a := &Array[T]{shape: shape, strides: strides, data: make([]T, count)}
		if err := codec.DecodeList(payload, a.shape, a.strides, a.data, convertScalar[T]); err != nil {
			return nil, withCause(malformed(dp, node, "list payload does not match shape %v", a.shape), err)
		}
		return a, nil
	}
	s, ok := payload.(string)
	if !ok {
		return nil, malformed(dp, node, "base64 payload must be a string, got %T", payload)
	}
	buf, err := codec.DecodeBase64(s)
	if err != nil {
		return nil, withCause(malformed(dp, node, "bad base64 payload"), err)
	}
	if size := count * want.ElementWidth(); len(buf) != size {
		return nil, withCause(malformed(dp, node, "bad base64 payload"), &codec.LengthError{Want: size, Got: len(buf)})
	}
	a := &Array[T]{shape: shape, strides: strides, data: make([]T, count)}
	if err := unmarshalFixed(buf, a.data); err != nil {
		return nil, withCause(malformed(dp, node, "bad base64 payload"), err)
	}
	return a, nil
}

func decodeEncoding(def map[string]any, want Kind, p PathRef, node any) (string, error) {
	enc, ok := def["encoding"].(string)
	if !ok {
		return "", malformed(p.Field("encoding"), node, "missing encoding")
	}
	// Known identifiers must still fit the element kind.
	if enc != want.Encoding() {
		return "", singleIssue(p.Field("encoding"), CodeUnsupportedEncoding, node, map[string]string{"got": enc})
	}
	return enc, nil
}

func encodeShape(shape []int) []any {
	out := make([]any, len(shape))
	for i, d := range shape {
		out[i] = d
	}
	return out
}

// decodeShape reads obj["shape"] as a list of non-negative integers.
func decodeShape(obj map[string]any, p PathRef, node any) ([]int, error) {
	sp := p.Field("shape")
	raw, ok := obj["shape"]
	if !ok {
		return nil, malformed(sp, node, "missing shape")
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, malformed(sp, node, "shape must be a list, got %T", raw)
	}
	if len(list) > MaxDimensions {
		return nil, relocate(dimensionOverflow(len(list)), sp, node)
	}
	shape := make([]int, len(list))
	for i, v := range list {
		d, err := toInt(v, 64)
		if err != nil || d < 0 || int64(int(d)) != d {
			return nil, withCause(malformed(sp.Index(i), node, "extent must be a non-negative integer"), err)
		}
		shape[i] = int(d)
	}
	return shape, nil
}
