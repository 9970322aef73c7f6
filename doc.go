package saldata

// Package saldata provides:
//
// - A typed attribute tree (Null, Atomic, Array, Dictionary) for measurement data read from an archive
// - Encoding to and decoding from a generic JSON-like tree with strict type-tag validation
// - Row-major shape/stride arithmetic for N-dimensional arrays (up to MaxDimensions)
// - A stable error model via Issues (JSON Pointer, code, message, offending node)
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Payload codecs live under codec/, YAML/CBOR tree adapters under source/, and the CLI under cmd/saldump.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  attr, err := saldata.DecodeJSON(data)
//  arr, err := saldata.DecodeAs[*saldata.Float64Array](tree)
//  v, err := arr.At(2, 3)
//
//  d := saldata.NewDictionary()
//  _ = d.Set("gain", saldata.NewAtomic(1.5))
//  wire, err := saldata.EncodeJSON(d)
//
