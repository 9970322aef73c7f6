package saldata

import (
	"github.com/reoring/saldata/codec"
)

// ArrayValue is the element-kind independent view of an array. Every *Array[T]
// implements it, as do the header-only arrays returned by Decode for summary
// nodes (their ElementKind is KindNull since summaries do not declare one).
type ArrayValue interface {
	Attribute
	ElementKind() Kind
	Shape() []int
	Strides() []int
	Dimension() int
	Len() int
	ByteSize() int
	Encoding() string
	// Element returns the element at idx boxed in an any.
	Element(idx ...int) (any, error)
	Bytes() ([]byte, error)
}

var (
	_ ArrayValue = (*Array[int8])(nil)
	_ ArrayValue = (*Array[string])(nil)
	_ ArrayValue = (*arraySummary)(nil)
)

// NewArrayOfKind allocates a zero-filled array whose element kind is only
// known at runtime.
func NewArrayOfKind(kind Kind, shape ...int) (ArrayValue, error) {
	switch kind {
	case KindInt8:
		return asArrayValue(NewArray[int8](shape...))
	case KindInt16:
		return asArrayValue(NewArray[int16](shape...))
	case KindInt32:
		return asArrayValue(NewArray[int32](shape...))
	case KindInt64:
		return asArrayValue(NewArray[int64](shape...))
	case KindUint8:
		return asArrayValue(NewArray[uint8](shape...))
	case KindUint16:
		return asArrayValue(NewArray[uint16](shape...))
	case KindUint32:
		return asArrayValue(NewArray[uint32](shape...))
	case KindUint64:
		return asArrayValue(NewArray[uint64](shape...))
	case KindFloat32:
		return asArrayValue(NewArray[float32](shape...))
	case KindFloat64:
		return asArrayValue(NewArray[float64](shape...))
	case KindBool:
		return asArrayValue(NewArray[bool](shape...))
	case KindString:
		return asArrayValue(NewArray[string](shape...))
	default:
		return nil, mismatch(RootPath(), nil, "array element kind", kind.String())
	}
}

// decodeAnyArray picks the Array instantiation from the declared element type.
func decodeAnyArray(obj map[string]any, node any, p PathRef) (Attribute, error) {
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
		return &arraySummary{shape: shape, strides: strides}, nil
	}
	def, ok := raw.(map[string]any)
	if !ok {
		return nil, malformed(p.Field("value"), node, "array definition must be an object, got %T", raw)
	}
	tp := p.Field("value").Field("type")
	name, ok := def["type"].(string)
	if !ok {
		return nil, malformed(tp, node, "missing element type")
	}
	kind, ok := KindFromWireName(name)
	if !ok {
		return nil, singleIssue(tp, CodeUnknownWireType, node, map[string]string{"got": name})
	}
	switch kind {
	case KindInt8:
		return asAttribute(decodeArray[int8](node, p))
	case KindInt16:
		return asAttribute(decodeArray[int16](node, p))
	case KindInt32:
		return asAttribute(decodeArray[int32](node, p))
	case KindInt64:
		return asAttribute(decodeArray[int64](node, p))
	case KindUint8:
		return asAttribute(decodeArray[uint8](node, p))
	case KindUint16:
		return asAttribute(decodeArray[uint16](node, p))
	case KindUint32:
		return asAttribute(decodeArray[uint32](node, p))
	case KindUint64:
		return asAttribute(decodeArray[uint64](node, p))
	case KindFloat32:
		return asAttribute(decodeArray[float32](node, p))
	case KindFloat64:
		return asAttribute(decodeArray[float64](node, p))
	case KindBool:
		return asAttribute(decodeArray[bool](node, p))
	case KindString:
		return asAttribute(decodeArray[string](node, p))
	default:
		return nil, mismatch(tp, node, "array element kind", name)
	}
}

// arraySummary is a header-only array of undeclared element kind.
type arraySummary struct {
	shape   []int
	strides []int
}

func (s *arraySummary) Kind() Kind        { return KindArray }
func (s *arraySummary) ElementKind() Kind { return KindNull }
func (s *arraySummary) IsSummary() bool   { return true }
func (s *arraySummary) attribute()        {}

func (s *arraySummary) Shape() []int     { return append([]int{}, s.shape...) }
func (s *arraySummary) Strides() []int   { return append([]int{}, s.strides...) }
func (s *arraySummary) Dimension() int   { return len(s.shape) }
func (s *arraySummary) Len() int         { return 0 }
func (s *arraySummary) ByteSize() int    { return 0 }
func (s *arraySummary) Encoding() string { return "" }

func (s *arraySummary) Element(...int) (any, error)     { return nil, summaryAccess() }
func (s *arraySummary) Bytes() ([]byte, error)          { return nil, summaryAccess() }
func (s *arraySummary) Encode() (map[string]any, error) { return nil, summaryAccess() }

func (s *arraySummary) EncodeSummary() map[string]any {
	return map[string]any{"shape": encodeShape(s.shape)}
}

func (s *arraySummary) Summary() string { return summaryJSON(s.EncodeSummary()) }

func marshalFixed[T Scalar](data []T) ([]byte, bool) {
	switch s := any(data).(type) {
	case []int8:
		return codec.Marshal(s), true
	case []int16:
		return codec.Marshal(s), true
	case []int32:
		return codec.Marshal(s), true
	case []int64:
		return codec.Marshal(s), true
	case []uint8:
		return codec.Marshal(s), true
	case []uint16:
		return codec.Marshal(s), true
	case []uint32:
		return codec.Marshal(s), true
	case []uint64:
		return codec.Marshal(s), true
	case []float32:
		return codec.Marshal(s), true
	case []float64:
		return codec.Marshal(s), true
	case []bool:
		return codec.Marshal(s), true
	default:
		return nil, false
	}
}

func encodeFixed[T Scalar](data []T) string {
	raw, _ := marshalFixed(data)
	return codec.EncodeBase64(raw)
}

func unmarshalFixed[T Scalar](raw []byte, dst []T) error {
	switch d := any(dst).(type) {
	case []int8:
		return codec.Unmarshal(raw, d)
	case []int16:
		return codec.Unmarshal(raw, d)
	case []int32:
		return codec.Unmarshal(raw, d)
	case []int64:
		return codec.Unmarshal(raw, d)
	case []uint8:
		return codec.Unmarshal(raw, d)
	case []uint16:
		return codec.Unmarshal(raw, d)
	case []uint32:
		return codec.Unmarshal(raw, d)
	case []uint64:
		return codec.Unmarshal(raw, d)
	case []float32:
		return codec.Unmarshal(raw, d)
	case []float64:
		return codec.Unmarshal(raw, d)
	case []bool:
		return codec.Unmarshal(raw, d)
	default:
		return codec.ErrNotFixed
	}
}

func asArrayValue[T Scalar](a *Array[T], err error) (ArrayValue, error) {
	if err != nil {
		return nil, err
	}
	return a, nil
}
