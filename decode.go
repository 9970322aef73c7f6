package saldata

import (
	"fmt"
	"strconv"
)

// DefaultMaxDepth is the attribute nesting limit applied when DecodeOpt leaves
// MaxDepth at zero.
const DefaultMaxDepth = 64

// DecodeOpt controls decoding. The zero value applies the defaults.
type DecodeOpt struct {
	// MaxDepth caps attribute nesting (a root scalar is depth 1, each
	// dictionary level adds one). 0 means DefaultMaxDepth; a negative value
	// disables the guard.
	MaxDepth int
	// AllowDuplicateKeys lets the byte-level adapters (DecodeJSON) accept
	// repeated object keys, keeping the last one. Tree input is unaffected.
	AllowDuplicateKeys bool
}

func resolveOpt(opts []DecodeOpt) DecodeOpt {
	var o DecodeOpt
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

type decoder struct {
	maxDepth int
}

func newDecoder(opts []DecodeOpt) *decoder {
	return &decoder{maxDepth: resolveOpt(opts).MaxDepth}
}

// Decode builds an attribute tree from a generic node by reading its "type"
// tag and recursing into dictionary entries. The input is never retained or
// modified.
func Decode(node any, opts ...DecodeOpt) (Attribute, error) {
	return newDecoder(opts).decode(node, RootPath(), 1)
}

// DecodeAs decodes node and asserts the resulting variant, e.g.
// DecodeAs[*Float64Array](node).
func DecodeAs[T Attribute](node any, opts ...DecodeOpt) (T, error) {
	var zero T
	attr, err := Decode(node, opts...)
	if err != nil {
		return zero, err
	}
	v, ok := attr.(T)
	if !ok {
		return zero, mismatch(RootPath(), node, fmt.Sprintf("%T", zero), describe(attr))
	}
	return v, nil
}

func (dec *decoder) decode(node any, p PathRef, depth int) (Attribute, error) {
	if dec.maxDepth >= 0 && depth > dec.maxDepth {
		return nil, singleIssue(p, CodeDepthExceeded, nil, map[string]string{"max": strconv.Itoa(dec.maxDepth)})
	}
	obj, name, err := typedObject(node, p)
	if err != nil {
		return nil, err
	}
	kind, ok := KindFromWireName(name)
	if !ok {
		return nil, singleIssue(p.Field("type"), CodeUnknownWireType, node, map[string]string{"got": name})
	}
	switch kind {
	case KindNull:
		return NewNull(), nil
	case KindDictionary:
		return asAttribute(dec.dictionary(obj, node, p, depth))
	case KindArray:
		return decodeAnyArray(obj, node, p)
	case KindInt8:
		return asAttribute(decodeAtomic[int8](node, p))
	case KindInt16:
		return asAttribute(decodeAtomic[int16](node, p))
	case KindInt32:
		return asAttribute(decodeAtomic[int32](node, p))
	case KindInt64:
		return asAttribute(decodeAtomic[int64](node, p))
	case KindUint8:
		return asAttribute(decodeAtomic[uint8](node, p))
	case KindUint16:
		return asAttribute(decodeAtomic[uint16](node, p))
	case KindUint32:
		return asAttribute(decodeAtomic[uint32](node, p))
	case KindUint64:
		return asAttribute(decodeAtomic[uint64](node, p))
	case KindFloat32:
		return asAttribute(decodeAtomic[float32](node, p))
	case KindFloat64:
		return asAttribute(decodeAtomic[float64](node, p))
	case KindBool:
		return asAttribute(decodeAtomic[bool](node, p))
	default:
		return asAttribute(decodeAtomic[string](node, p))
	}
}

// typedObject checks that node is an object with a string "type" field.
func typedObject(node any, p PathRef) (map[string]any, string, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, "", malformed(p, node, "expected an object, got %T", node)
	}
	raw, ok := obj["type"]
	if !ok {
		return nil, "", malformed(p, node, "missing type")
	}
	name, ok := raw.(string)
	if !ok {
		return nil, "", malformed(p.Field("type"), node, "type must be a string, got %T", raw)
	}
	return obj, name, nil
}
