package benchmarks_test

import (
	"bytes"
	"fmt"
	"testing"

	saldata "github.com/reoring/saldata"
	"github.com/reoring/saldata/source"
)

// ---- Helpers ----

func float64Array(tb testing.TB, n int) *saldata.Float64Array {
	tb.Helper()
	a, err := saldata.NewArray[float64](n)
	if err != nil {
		tb.Fatalf("array: %v", err)
	}
	for i := range a.Data() {
		a.Data()[i] = float64(i) * 0.25
	}
	return a
}

// generateWideDictionary returns the JSON of a dictionary with numEntries
// scalar entries and one float64 array of arrayLen elements.
func generateWideDictionary(numEntries, arrayLen int) []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"type":"dictionary","items":{`)
	for i := 0; i < numEntries; i++ {
		fmt.Fprintf(&buf, `"k%d":{"type":"int32","value":%d},`, i, i)
	}
	a, _ := saldata.NewArray[float64](arrayLen)
	node, _ := saldata.EncodeJSON(a)
	buf.WriteString(`"samples":`)
	buf.Write(node)
	buf.WriteString(`}}`)
	return buf.Bytes()
}

// ---- Benchmarks ----

func BenchmarkArrayEncode_Float64_64k(b *testing.B) {
	a := float64Array(b, 1<<16)
	b.SetBytes(int64(a.ByteSize()))
	b.ReportAllocs()
	for b.Loop() {
		if _, err := a.Encode(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkArrayDecode_Float64_64k(b *testing.B) {
	a := float64Array(b, 1<<16)
	node, err := a.Encode()
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(a.ByteSize()))
	b.ReportAllocs()
	for b.Loop() {
		if _, err := saldata.DecodeArray[float64](node); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStringListDecode_100x100(b *testing.B) {
	a, _ := saldata.NewArray[string](100, 100)
	for i := range a.Data() {
		a.Data()[i] = fmt.Sprintf("s%d", i)
	}
	node, _ := a.Encode()
	b.ReportAllocs()
	for b.Loop() {
		if _, err := saldata.DecodeArray[string](node); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeJSON_WideDictionary(b *testing.B) {
	js := generateWideDictionary(1000, 4096)
	b.SetBytes(int64(len(js)))
	b.ReportAllocs()
	for b.Loop() {
		if _, err := saldata.DecodeJSON(js); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeCBOR_WideDictionary(b *testing.B) {
	attr, err := saldata.DecodeJSON(generateWideDictionary(1000, 4096))
	if err != nil {
		b.Fatal(err)
	}
	data, err := source.Encode(source.FormatCBOR, attr, "")
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for b.Loop() {
		if _, err := source.Decode(source.FormatCBOR, data); err != nil {
			b.Fatal(err)
		}
	}
}
