package saldata

// WalkFunc is called for every attribute reached by Walk. path is a JSON
// Pointer built from dictionary keys ("/" for the root).
type WalkFunc func(path string, attr Attribute) error

// Walk visits attr and then, for dictionaries, every child depth-first in
// sorted key order. It stops at the first error returned by fn.
func Walk(attr Attribute, fn WalkFunc) error {
	return walk(attr, RootPath(), fn)
}

func walk(attr Attribute, p PathRef, fn WalkFunc) error {
	if err := fn(p.Pointer(), attr); err != nil {
		return err
	}
	d, ok := attr.(*Dictionary)
	if !ok {
		return nil
	}
	for k, child := range d.All() {
		if err := walk(child, p.Field(k), fn); err != nil {
			return err
		}
	}
	return nil
}
