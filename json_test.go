package saldata_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	saldata "github.com/reoring/saldata"
)

func TestDecodeJSON_Dictionary(t *testing.T) {
	js := []byte(`{"type":"dictionary","items":{"a":{"type":"int32","value":5},"b":{"type":"string","value":"x"}}}`)
	attr, err := saldata.DecodeJSON(js)
	require.NoError(t, err)
	d := attr.(*saldata.Dictionary)
	assert.Equal(t, 2, d.Len())

	out, err := saldata.EncodeJSON(attr)
	require.NoError(t, err)
	assert.JSONEq(t, string(js), string(out))

	pretty, err := saldata.EncodeJSONIndent(attr, "  ")
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  ")
	assert.JSONEq(t, string(js), string(pretty))
}

func TestReadJSON(t *testing.T) {
	attr, err := saldata.ReadJSON(strings.NewReader(`{"type":"array","shape":[2,2]}`))
	require.NoError(t, err)
	assert.True(t, attr.IsSummary())

	sum, err := saldata.EncodeSummaryJSON(attr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"shape":[2,2]}`, string(sum))
}

func TestDecodeJSON_DuplicateKeys(t *testing.T) {
	js := []byte(`{"type":"int8","value":1,"value":2}`)
	_, err := saldata.DecodeJSON(js)
	require.ErrorIs(t, err, saldata.ErrMalformedInput)
	iss, _ := saldata.AsIssues(err)
	assert.Equal(t, "/value", iss[0].Path)
	assert.Equal(t, "duplicate_key", iss[0].Params["reason"])

	attr, err := saldata.DecodeJSON(js, saldata.DecodeOpt{AllowDuplicateKeys: true})
	require.NoError(t, err)
	assert.Equal(t, int8(2), attr.(*saldata.Int8).Value())
}

func TestDecodeJSON_SyntaxAndTrailingData(t *testing.T) {
	for _, in := range []string{`{"type":`, `{"type":"null"} {}`, ``, `{"type":"int8",}`} {
		_, err := saldata.DecodeJSON([]byte(in))
		assert.ErrorIs(t, err, saldata.ErrMalformedInput, "input %q", in)
	}
}

func TestDecodeJSON_NestingLimit(t *testing.T) {
	var b bytes.Buffer
	for i := 0; i < 500; i++ {
		b.WriteString("[")
	}
	for i := 0; i < 500; i++ {
		b.WriteString("]")
	}
	_, err := saldata.DecodeJSON(b.Bytes())
	require.ErrorIs(t, err, saldata.ErrMalformedInput)
	iss, _ := saldata.AsIssues(err)
	assert.True(t, iss.HasCode(saldata.CodeDepthExceeded))
}

func TestDecodeJSON_KeepsIntegerPrecision(t *testing.T) {
	attr, err := saldata.DecodeJSON([]byte(`{"type":"uint64","value":18446744073709551615}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), attr.(*saldata.Uint64).Value())

	_, err = saldata.DecodeJSON([]byte(`{"type":"int64","value":9223372036854775808}`))
	assert.ErrorIs(t, err, saldata.ErrMalformedInput)
}

func TestIssueFragment(t *testing.T) {
	_, err := saldata.DecodeJSON([]byte(`{"type":"int16","value":"12"}`))
	require.Error(t, err)
	iss, ok := saldata.AsIssues(err)
	require.True(t, ok)
	frag := iss[0].Fragment()
	assert.Contains(t, frag, `"value": "12"`)
	assert.Equal(t, "/value", iss[0].Path)
}
