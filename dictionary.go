package saldata

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Dictionary maps unique string keys to child attributes. Each child is owned
// by exactly one dictionary. Key order is not significant; Keys and All
// iterate in sorted order so output is deterministic.
type Dictionary struct {
	items   map[string]Attribute
	summary bool
}

// NewDictionary returns an empty, non-summary dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{items: map[string]Attribute{}}
}

func (d *Dictionary) Kind() Kind      { return KindDictionary }
func (d *Dictionary) IsSummary() bool { return d.summary }
func (d *Dictionary) attribute()      {}

// Set inserts or replaces the child under key. A nil attribute is stored as
// Null. Storing d inside itself, directly or through a nested dictionary,
// fails with MalformedInput since the tree must stay acyclic.
func (d *Dictionary) Set(key string, attr Attribute) error {
	if d.summary {
		return summaryAccess()
	}
	if attr == nil {
		attr = NewNull()
	}
	if child, ok := attr.(*Dictionary); ok && child.reaches(d) {
		return malformed(RootPath().Field("items").Field(key), nil, "dictionary cannot contain itself")
	}
	if d.items == nil {
		d.items = map[string]Attribute{}
	}
	d.items[key] = attr
	return nil
}

// Get returns the child under key or an ErrUnknownKey issue.
func (d *Dictionary) Get(key string) (Attribute, error) {
	if d.summary {
		return nil, summaryAccess()
	}
	attr, ok := d.items[key]
	if !ok {
		return nil, singleIssue(RootPath().Field("items").Field(key), CodeUnknownKey, nil, map[string]string{"key": key})
	}
	return attr, nil
}

// reaches reports whether target is d or is nested anywhere below it.
func (d *Dictionary) reaches(target *Dictionary) bool {
	if d == target {
		return true
	}
	for _, child := range d.items {
		if cd, ok := child.(*Dictionary); ok && cd.reaches(target) {
			return true
		}
	}
	return false
}

// Has reports whether key is present. A summary has no entries.
func (d *Dictionary) Has(key string) bool {
	_, ok := d.items[key]
	return ok
}

// Remove deletes key and reports whether it was present. A summary refuses
// the mutation with SummaryPayloadAccess.
func (d *Dictionary) Remove(key string) (bool, error) {
	if d.summary {
		return false, summaryAccess()
	}
	if _, ok := d.items[key]; !ok {
		return false, nil
	}
	delete(d.items, key)
	return true, nil
}

// Len is the number of entries; 0 for summaries.
func (d *Dictionary) Len() int { return len(d.items) }

// Keys returns the keys in sorted order.
func (d *Dictionary) Keys() []string {
	return slices.Sorted(maps.Keys(d.items))
}

// All iterates over the entries in sorted key order.
func (d *Dictionary) All() iter.Seq2[string, Attribute] {
	return func(yield func(string, Attribute) bool) {
		for _, k := range d.Keys() {
			if !yield(k, d.items[k]) {
				return
			}
		}
	}
}

// GetAs returns the child under key as the variant T, for example
// GetAs[*Int32](d, "count") or GetAs[*Float64Array](d, "samples").
func GetAs[T Attribute](d *Dictionary, key string) (T, error) {
	var zero T
	attr, err := d.Get(key)
	if err != nil {
		return zero, err
	}
	v, ok := attr.(T)
	if !ok {
		return zero, mismatch(RootPath().Field("items").Field(key), nil, fmt.Sprintf("%T", zero), describe(attr))
	}
	return v, nil
}

// Encode renders {type: "dictionary", items: {key: child, ...}}.
func (d *Dictionary) Encode() (map[string]any, error) {
	if d.summary {
		return nil, summaryAccess()
	}
	items := make(map[string]any, len(d.items))
	ip := RootPath().Field("items")
	for k, child := range d.items {
		m, err := child.Encode()
		if err != nil {
			return nil, nest(err, ip.Field(k))
		}
		items[k] = m
	}
	return map[string]any{"type": TypeNameDictionary, "items": items}, nil
}

// EncodeSummary of a dictionary lists no entries.
func (d *Dictionary) EncodeSummary() map[string]any { return map[string]any{} }

func (d *Dictionary) Summary() string { return summaryJSON(d.EncodeSummary()) }

// DecodeDictionary decodes a dictionary node. Entries whose value is null are
// skipped. A node without "items" decodes as a summary with no entries.
func DecodeDictionary(node any, opts ...DecodeOpt) (*Dictionary, error) {
	dec := newDecoder(opts)
	obj, name, err := typedObject(node, RootPath())
	if err != nil {
		return nil, err
	}
	if name != TypeNameDictionary {
		return nil, mismatch(RootPath(), node, TypeNameDictionary, name)
	}
	return dec.dictionary(obj, node, RootPath(), 1)
}

func (dec *decoder) dictionary(obj map[string]any, node any, p PathRef, depth int) (*Dictionary, error) {
	raw, ok := obj["items"]
	if !ok {
		return &Dictionary{items: map[string]Attribute{}, summary: true}, nil
	}
	ip := p.Field("items")
	items, ok := raw.(map[string]any)
	if !ok {
		return nil, malformed(ip, node, "items must be an object, got %T", raw)
	}
	d := &Dictionary{items: make(map[string]Attribute, len(items))}
	// Sorted so the first reported failure does not depend on map order.
	for _, k := range slices.Sorted(maps.Keys(items)) {
		v := items[k]
		if v == nil {
			continue
		}
		cp := ip.Field(k)
		if _, ok := v.(map[string]any); !ok {
			return nil, malformed(cp, v, "entry must be an object, got %T", v)
		}
		child, err := dec.decode(v, cp, depth+1)
		if err != nil {
			return nil, err
		}
		d.items[k] = child
	}
	return d, nil
}

func describe(attr Attribute) string {
	if av, ok := attr.(ArrayValue); ok && av.ElementKind() != KindNull {
		return "array of " + av.ElementKind().String()
	}
	return attr.Kind().String()
}
