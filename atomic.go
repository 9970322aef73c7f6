package saldata

// Atomic holds exactly one scalar of kind T. The kind is fixed by T; the
// value may be changed with Set.
type Atomic[T Scalar] struct {
	value T
}

// Atomic aliases named after the wire kinds.
type (
	Int8    = Atomic[int8]
	Int16   = Atomic[int16]
	Int32   = Atomic[int32]
	Int64   = Atomic[int64]
	Uint8   = Atomic[uint8]
	Uint16  = Atomic[uint16]
	Uint32  = Atomic[uint32]
	Uint64  = Atomic[uint64]
	Float32 = Atomic[float32]
	Float64 = Atomic[float64]
	Bool    = Atomic[bool]
	String  = Atomic[string]
)

// NewAtomic wraps v; the kind is inferred from the Go type of v.
func NewAtomic[T Scalar](v T) *Atomic[T] { return &Atomic[T]{value: v} }

func (a *Atomic[T]) Kind() Kind      { return kindOf[T]() }
func (a *Atomic[T]) Value() T        { return a.value }
func (a *Atomic[T]) Set(v T)         { a.value = v }
func (a *Atomic[T]) IsSummary() bool { return false }
func (a *Atomic[T]) attribute()      {}

// Encode renders {type: <wire name>, value: <scalar>}.
func (a *Atomic[T]) Encode() (map[string]any, error) {
	return map[string]any{"type": a.Kind().WireName(), "value": a.value}, nil
}

// EncodeSummary of a scalar carries its value too.
func (a *Atomic[T]) EncodeSummary() map[string]any {
	m, _ := a.Encode()
	return m
}

func (a *Atomic[T]) Summary() string { return summaryJSON(a.EncodeSummary()) }

// DecodeAtomic decodes a scalar node whose type must be exactly the wire name
// of T.
func DecodeAtomic[T Scalar](node any) (*Atomic[T], error) {
	return decodeAtomic[T](node, RootPath())
}

func decodeAtomic[T Scalar](node any, p PathRef) (*Atomic[T], error) {
	obj, name, err := typedObject(node, p)
	if err != nil {
		return nil, err
	}
	want := kindOf[T]()
	if name != want.WireName() {
		return nil, mismatch(p, node, want.WireName(), name)
	}
	raw, ok := obj["value"]
	if !ok {
		return nil, malformed(p, node, "missing value")
	}
	v, err := convertScalar[T](raw)
	if err != nil {
		return nil, withCause(malformed(p.Field("value"), node, "bad %s value", want), err)
	}
	return &Atomic[T]{value: v}, nil
}
