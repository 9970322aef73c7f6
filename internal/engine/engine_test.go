package engine

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, in string, lim Limits) (any, error) {
	t.Helper()
	return BuildTree(NewBytes([]byte(in)), lim)
}

func TestBuildTree_Shapes(t *testing.T) {
	v, err := build(t, `{"a":[1,"x",true,null,{"b":1.5}],"c":{}}`, Limits{})
	require.NoError(t, err)
	want := map[string]any{
		"a": []any{json.Number("1"), "x", true, nil, map[string]any{"b": json.Number("1.5")}},
		"c": map[string]any{},
	}
	assert.Equal(t, want, v)
}

func TestBuildTree_KeepsIntegerPrecision(t *testing.T) {
	v, err := build(t, `{"v":18446744073709551615}`, Limits{})
	require.NoError(t, err)
	assert.Equal(t, json.Number("18446744073709551615"), v.(map[string]any)["v"])
}

func TestBuildTree_StringValuesAreNotKeys(t *testing.T) {
	v, err := build(t, `{"k":"v","k2":["s"],"k3":"w"}`, Limits{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": "v", "k2": []any{"s"}, "k3": "w"}, v)
}

func TestBuildTree_DuplicateKey(t *testing.T) {
	_, err := build(t, `{"items":{"a":1,"a":2}}`, Limits{})
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, CodeDuplicate, e.Code)
	assert.Equal(t, "/items/a", e.Path)

	v, err := build(t, `{"a":1,"a":2}`, Limits{AllowDuplicates: true})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": json.Number("2")}, v)
}

func TestBuildTree_MaxDepth(t *testing.T) {
	_, err := build(t, `[[[1]]]`, Limits{MaxDepth: 3})
	require.NoError(t, err)

	_, err = build(t, `[[[[1]]]]`, Limits{MaxDepth: 3})
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, CodeDepth, e.Code)
	assert.Equal(t, "/0/0/0", e.Path)
}

func TestBuildTree_Errors(t *testing.T) {
	cases := map[string]string{
		"truncated": `{"a":`,
		"trailing":  `{} {}`,
		"empty":     ``,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := build(t, in, Limits{})
			var e *Error
			require.True(t, errors.As(err, &e), "got %v", err)
		})
	}
}

func TestPointerEscaping(t *testing.T) {
	assert.Equal(t, "/a~1b/c~0d", joinPointer(joinPointer("", "a/b"), "c~d"))
}
