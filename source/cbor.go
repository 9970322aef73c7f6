package source

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map keys,
// smallest integer encoding, no indefinite-length items. The same tree always
// produces identical bytes.
var encMode cbor.EncMode

// decMode decodes any-typed maps as map[string]any so the result matches the
// trees produced by the JSON and YAML readers.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("source: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("source: CBOR decoder initialization failed: " + err.Error())
	}
}

// CBOR decodes one CBOR data item into a generic tree. Integers arrive as
// uint64 or int64 and floats as float64.
func CBOR(data []byte) (any, error) {
	var tree any
	if err := decMode.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("source: cbor: %w", err)
	}
	return tree, nil
}

// MarshalCBOR encodes a generic tree with Core Deterministic Encoding.
func MarshalCBOR(tree any) ([]byte, error) {
	b, err := encMode.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("source: cbor: %w", err)
	}
	return b, nil
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) of data.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
