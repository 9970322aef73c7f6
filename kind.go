package saldata

import "fmt"

// APIVersion is the wire API version understood by this package. Transport
// layers use it for compatibility negotiation with the archive server.
const APIVersion uint64 = 1

// Kind is the closed type tag of an attribute.
type Kind int

const (
	KindNull Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindArray
	KindDictionary
)

// Wire type names. Numeric names follow numpy dtype names.
const (
	TypeNameNull       = "null"
	TypeNameInt8       = "int8"
	TypeNameInt16      = "int16"
	TypeNameInt32      = "int32"
	TypeNameInt64      = "int64"
	TypeNameUint8      = "uint8"
	TypeNameUint16     = "uint16"
	TypeNameUint32     = "uint32"
	TypeNameUint64     = "uint64"
	TypeNameFloat32    = "float32"
	TypeNameFloat64    = "float64"
	TypeNameBool       = "bool"
	TypeNameString     = "string"
	TypeNameArray      = "array"
	TypeNameDictionary = "dictionary"
)

var kindNames = [...]string{
	KindNull:       TypeNameNull,
	KindInt8:       TypeNameInt8,
	KindInt16:      TypeNameInt16,
	KindInt32:      TypeNameInt32,
	KindInt64:      TypeNameInt64,
	KindUint8:      TypeNameUint8,
	KindUint16:     TypeNameUint16,
	KindUint32:     TypeNameUint32,
	KindUint64:     TypeNameUint64,
	KindFloat32:    TypeNameFloat32,
	KindFloat64:    TypeNameFloat64,
	KindBool:       TypeNameBool,
	KindString:     TypeNameString,
	KindArray:      TypeNameArray,
	KindDictionary: TypeNameDictionary,
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// KindFromWireName resolves a wire type name. The lookup is exact: no case
// folding or trimming.
func KindFromWireName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// WireName returns the canonical wire type name of k.
func (k Kind) WireName() string {
	if k < 0 || int(k) >= len(kindNames) {
		return ""
	}
	return kindNames[k]
}

func (k Kind) String() string {
	if s := k.WireName(); s != "" {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	s := k.WireName()
	if s == "" {
		return nil, fmt.Errorf("saldata: invalid kind %d", int(k))
	}
	return []byte(s), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := KindFromWireName(string(d))
	if !ok {
		return fmt.Errorf("saldata: unrecognized wire type %q", d)
	}
	*k = kk
	return nil
}

// IsNumeric reports whether k is one of the integer or floating point kinds.
func (k Kind) IsNumeric() bool {
	return k >= KindInt8 && k <= KindFloat64
}

// IsAtomic reports whether k is a scalar kind (numeric, bool or string).
func (k Kind) IsAtomic() bool {
	return k >= KindInt8 && k <= KindString
}

// IsElement reports whether k may be the element kind of an Array.
func (k Kind) IsElement() bool { return k.IsAtomic() }

// IsContainer reports whether k is Array or Dictionary.
func (k Kind) IsContainer() bool {
	return k == KindArray || k == KindDictionary
}

// ElementWidth is the byte width of one element in a base64 payload. String
// and non-element kinds report 0.
func (k Kind) ElementWidth() int {
	switch k {
	case KindInt8, KindUint8, KindBool:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	case KindInt64, KindUint64, KindFloat64:
		return 8
	default:
		return 0
	}
}

// Encoding identifiers carried in array nodes.
const (
	EncodingBase64 = "base64"
	EncodingList   = "list"
)

// Encoding returns the payload encoding used for arrays of element kind k.
func (k Kind) Encoding() string {
	if k == KindString {
		return EncodingList
	}
	return EncodingBase64
}

// acceptsElementName reports whether an array expecting element kind k may
// decode a payload declared as name. uint8 arrays also accept the "bool"
// byte view.
func (k Kind) acceptsElementName(name string) bool {
	if name == k.WireName() {
		return true
	}
	return k == KindUint8 && name == TypeNameBool
}
