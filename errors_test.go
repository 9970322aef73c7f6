package saldata_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	saldata "github.com/reoring/saldata"
	"github.com/reoring/saldata/i18n"
)

func TestIssues_ErrorSummarizesFirstThree(t *testing.T) {
	var iss saldata.Issues
	for _, p := range []string{"/a", "/b", "/c", "/d", "/e"} {
		iss = saldata.AppendIssues(iss, saldata.Issue{Path: p, Code: saldata.CodeUnknownKey, Message: "unknown key"})
	}
	msg := iss.Error()
	assert.Contains(t, msg, "/c")
	assert.NotContains(t, msg, "/d")
	assert.True(t, strings.HasSuffix(msg, "(total 5)"))
	assert.Equal(t, "", saldata.Issues{}.Error())
}

func TestIssues_SentinelMatching(t *testing.T) {
	cause := errors.New("boom")
	iss := saldata.Issues{
		{Code: saldata.CodeDimensionOverflow},
		{Code: saldata.CodeDepthExceeded, Cause: cause},
	}
	var err error = iss
	assert.ErrorIs(t, err, saldata.ErrDimensionOverflow)
	assert.ErrorIs(t, err, saldata.ErrMalformedInput)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, saldata.ErrTypeMismatch)

	got, ok := saldata.AsIssues(err)
	require.True(t, ok)
	assert.Len(t, got, 2)

	_, ok = saldata.AsIssues(errors.New("plain"))
	assert.False(t, ok)
	_, ok = saldata.AsIssues(nil)
	assert.False(t, ok)
}

func TestIssueAt_TranslatesMessages(t *testing.T) {
	p := saldata.RootPath().Field("items").Field("x")
	it := saldata.IssueAt(p, saldata.CodeUnknownKey, nil, map[string]string{"key": "x"})
	assert.Equal(t, "/items/x", it.Path)
	assert.Equal(t, "unknown key x", it.Message)
	assert.Equal(t, "x", it.Params["key"])
	assert.Equal(t, "", it.Fragment())

	i18n.SetLanguage("ja")
	t.Cleanup(func() { i18n.SetLanguage("en") })
	_, err := saldata.DecodeAtomic[int8](map[string]any{"type": "int16", "value": 1})
	iss, ok := saldata.AsIssues(err)
	require.True(t, ok)
	assert.Contains(t, iss[0].Message, "型が一致しません")
}

func TestKind_WireNames(t *testing.T) {
	for _, k := range saldata.Kinds() {
		name := k.WireName()
		require.NotEmpty(t, name)
		back, ok := saldata.KindFromWireName(name)
		require.True(t, ok, name)
		assert.Equal(t, k, back)

		text, err := k.MarshalText()
		require.NoError(t, err)
		var u saldata.Kind
		require.NoError(t, u.UnmarshalText(text))
		assert.Equal(t, k, u)
	}
	_, ok := saldata.KindFromWireName("Float64")
	assert.False(t, ok)
	assert.Equal(t, "Kind(99)", saldata.Kind(99).String())
	assert.Equal(t, 8, saldata.KindFloat64.ElementWidth())
	assert.Equal(t, 1, saldata.KindBool.ElementWidth())
	assert.Equal(t, 0, saldata.KindString.ElementWidth())
	assert.True(t, saldata.KindUint16.IsNumeric())
	assert.False(t, saldata.KindBool.IsNumeric())
	assert.True(t, saldata.KindDictionary.IsContainer())
	assert.Equal(t, uint64(1), saldata.APIVersion)
}
