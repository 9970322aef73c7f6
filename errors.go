package saldata

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMalformedInput       = "malformed_input"
	CodeTypeMismatch         = "type_mismatch"
	CodeUnsupportedEncoding  = "unsupported_encoding"
	CodeDimensionOverflow    = "dimension_overflow"
	CodeIndexOutOfRange      = "index_out_of_range"
	CodeSummaryPayloadAccess = "summary_payload_access"
	CodeUnknownWireType      = "unknown_wire_type"
	CodeUnknownKey           = "unknown_key"
	// Depth guard; matches ErrMalformedInput.
	CodeDepthExceeded = "depth_exceeded"
)

// Sentinel errors for errors.Is. An Issues error matches the sentinel of any
// of its issue codes.
var (
	ErrMalformedInput       = errors.New("saldata: malformed input")
	ErrTypeMismatch         = errors.New("saldata: type mismatch")
	ErrUnsupportedEncoding  = errors.New("saldata: unsupported encoding")
	ErrDimensionOverflow    = errors.New("saldata: dimensionality too high")
	ErrIndexOutOfRange      = errors.New("saldata: index out of range")
	ErrSummaryPayloadAccess = errors.New("saldata: payload access on summary")
	ErrUnknownWireType      = errors.New("saldata: unknown wire type")
	ErrUnknownKey           = errors.New("saldata: unknown key")
)

var sentinels = map[string]error{
	CodeMalformedInput:       ErrMalformedInput,
	CodeDepthExceeded:        ErrMalformedInput,
	CodeTypeMismatch:         ErrTypeMismatch,
	CodeUnsupportedEncoding:  ErrUnsupportedEncoding,
	CodeDimensionOverflow:    ErrDimensionOverflow,
	CodeIndexOutOfRange:      ErrIndexOutOfRange,
	CodeSummaryPayloadAccess: ErrSummaryPayloadAccess,
	CodeUnknownWireType:      ErrUnknownWireType,
	CodeUnknownKey:           ErrUnknownKey,
}

// Issue represents a single decode or usage failure.
type Issue struct {
	Path    string // JSON Pointer into the decoded tree (for example: /items/ip/value).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Node is the offending input node, kept for diagnostics. It is nil for
	// failures that are not tied to input (index checks, summary access).
	Node any
	// Params carries structured parameters (e.g., {"axis":1, "index":10, "extent":4}).
	Params map[string]any
}

// Fragment renders the offending node as indented JSON. It returns "" when
// the issue carries no node or the node cannot be rendered.
func (it Issue) Fragment() string {
	if it.Node == nil {
		return ""
	}
	b, err := json.MarshalIndent(it.Node, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

func (it Issue) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at %s", it.Code, it.Path)
	if it.Message != "" {
		b.WriteString(": ")
		b.WriteString(it.Message)
	}
	if it.Cause != nil {
		b.WriteString(": ")
		b.WriteString(it.Cause.Error())
	}
	return b.String()
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].String())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is matches the sentinel error of any contained issue code.
func (iss Issues) Is(target error) bool {
	for _, it := range iss {
		if s, ok := sentinels[it.Code]; ok && s == target {
			return true
		}
	}
	return false
}

// Unwrap exposes the issue causes to errors.Is/errors.As.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// HasCode reports whether any issue carries code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
