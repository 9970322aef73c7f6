package saldata

import (
	"errors"
	"io"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/reoring/saldata/internal/engine"
)

// jsonDepth converts an attribute depth limit into a JSON nesting limit. Each
// dictionary level spends two JSON levels (node and items) and an array node
// adds its definition object plus up to MaxDimensions list levels.
func jsonDepth(maxDepth int) int {
	if maxDepth < 0 {
		return 0
	}
	return 2*maxDepth + MaxDimensions + 6
}

// ParseJSON reads one JSON value into a generic tree. Numbers are kept as
// json.Number so integer precision survives. Duplicate object keys are
// rejected unless DecodeOpt.AllowDuplicateKeys is set.
func ParseJSON(data []byte, opts ...DecodeOpt) (any, error) {
	return parseJSON(engine.NewBytes(data), resolveOpt(opts))
}

func parseJSON(src engine.TokenSource, o DecodeOpt) (any, error) {
	lim := engine.Limits{MaxDepth: jsonDepth(o.MaxDepth), AllowDuplicates: o.AllowDuplicateKeys}
	tree, err := engine.BuildTree(src, lim)
	if err != nil {
		return nil, fromEngine(err, lim.MaxDepth)
	}
	return tree, nil
}

// DecodeJSON parses data and decodes the resulting tree.
func DecodeJSON(data []byte, opts ...DecodeOpt) (Attribute, error) {
	tree, err := ParseJSON(data, opts...)
	if err != nil {
		return nil, err
	}
	return Decode(tree, opts...)
}

// ReadJSON is DecodeJSON over a reader.
func ReadJSON(r io.Reader, opts ...DecodeOpt) (Attribute, error) {
	tree, err := parseJSON(engine.NewReader(r), resolveOpt(opts))
	if err != nil {
		return nil, err
	}
	return Decode(tree, opts...)
}

// EncodeJSON encodes attr and marshals the tree as compact JSON.
func EncodeJSON(attr Attribute) ([]byte, error) {
	m, err := attr.Encode()
	if err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

// EncodeJSONIndent is EncodeJSON with indentation.
func EncodeJSONIndent(attr Attribute, indent string) ([]byte, error) {
	m, err := attr.Encode()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(m, "", indent)
}

// EncodeSummaryJSON marshals the summary tree of attr.
func EncodeSummaryJSON(attr Attribute) ([]byte, error) {
	return json.Marshal(attr.EncodeSummary())
}

func fromEngine(err error, maxNesting int) error {
	var ee *engine.Error
	if !errors.As(err, &ee) {
		return malformed(RootPath(), nil, "%v", err)
	}
	code := CodeMalformedInput
	data := map[string]string{"detail": ee.Message}
	if ee.Code == engine.CodeDepth {
		code = CodeDepthExceeded
		data = map[string]string{"max": strconv.Itoa(maxNesting)}
	}
	it := Issue{Path: ee.Path, Code: code, Cause: ee, Params: map[string]any{"offset": ee.Offset, "reason": ee.Code}}
	it.Message = IssueAt(RootPath(), code, nil, data).Message
	return Issues{it}
}
