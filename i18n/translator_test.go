package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	msg := T("type_mismatch", map[string]string{"expected": "int32", "got": "float64"})
	assert.Equal(t, "type mismatch: expected int32, got float64", msg)

	SetLanguage("ja")
	defer SetLanguage("en")
	msg = T("unknown_key", map[string]string{"key": "ip"})
	assert.Equal(t, "未知のキーです: ip", msg)
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	assert.Equal(t, "no_such_code", T("no_such_code", nil))
}

func TestTranslator_MissingPlaceholderLeftAsIs(t *testing.T) {
	assert.Equal(t, "unsupported encoding {got}", T("unsupported_encoding", nil))
}

type fixedTranslator struct{}

func (fixedTranslator) Message(code string, data map[string]string) string { return "fixed:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(fixedTranslator{})
	assert.Equal(t, "fixed:unknown_key", T("unknown_key", nil))
	SetTranslator(nil)
	assert.Equal(t, "summary holds no payload", T("summary_payload_access", nil))
}
