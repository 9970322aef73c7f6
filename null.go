package saldata

// Null is the empty attribute. It corresponds to an uninitialized value.
type Null struct{}

// NewNull returns a Null attribute.
func NewNull() *Null { return &Null{} }

func (*Null) Kind() Kind      { return KindNull }
func (*Null) IsSummary() bool { return false }
func (*Null) attribute()      {}

func (*Null) Encode() (map[string]any, error) {
	return map[string]any{"type": TypeNameNull, "value": nil}, nil
}

func (*Null) EncodeSummary() map[string]any {
	return map[string]any{"type": TypeNameNull}
}

func (n *Null) Summary() string { return summaryJSON(n.EncodeSummary()) }
