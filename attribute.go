package saldata

import (
	json "github.com/goccy/go-json"
)

// Attribute is a node of the typed value tree. The variant set is closed:
// *Null, *Atomic[T], *Array[T] (plus header-only arrays from Decode) and
// *Dictionary.
type Attribute interface {
	// Kind returns the attribute kind. Arrays report KindArray and
	// dictionaries KindDictionary regardless of their contents.
	Kind() Kind
	// IsSummary reports whether the value was decoded from a header-only node
	// and carries no payload.
	IsSummary() bool
	// Encode renders the full wire node. Summary instances fail with
	// ErrSummaryPayloadAccess.
	Encode() (map[string]any, error)
	// EncodeSummary renders the header-only wire node.
	EncodeSummary() map[string]any
	// Summary is EncodeSummary as compact JSON.
	Summary() string

	attribute()
}

// Scalar is the set of Go types an Atomic holds and an Array stores.
type Scalar interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64 | bool | string
}

// kindOf maps a Scalar type to its kind.
func kindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case bool:
		return KindBool
	default:
		return KindString
	}
}

func summaryJSON(m map[string]any) string {
	b, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// asAttribute converts a typed decode result without turning a nil pointer
// into a non-nil interface.
func asAttribute[T Attribute](v T, err error) (Attribute, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
