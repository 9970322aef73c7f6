package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected", "got" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates use
// {name} placeholders that are filled from data; unknown placeholders are left
// as written.
type dictTranslator struct{ lang string }

var templates = map[string]map[string]string{
	"en": {
		"malformed_input":        "malformed input: {detail}",
		"type_mismatch":          "type mismatch: expected {expected}, got {got}",
		"unsupported_encoding":   "unsupported encoding {got}",
		"dimension_overflow":     "dimensionality too high: {got} dimensions, at most {max}",
		"index_out_of_range":     "index {index} out of range for axis {axis} with extent {extent}",
		"summary_payload_access": "summary holds no payload",
		"unknown_wire_type":      "unknown wire type {got}",
		"unknown_key":            "unknown key {key}",
		"depth_exceeded":         "nesting deeper than {max} levels",
	},
	"ja": {
		"malformed_input":        "入力が不正です: {detail}",
		"type_mismatch":          "型が一致しません: {expected} を期待しましたが {got} でした",
		"unsupported_encoding":   "未対応のエンコーディングです: {got}",
		"dimension_overflow":     "次元数が多すぎます: {got} 次元 (最大 {max})",
		"index_out_of_range":     "軸 {axis} のインデックス {index} が範囲外です (長さ {extent})",
		"summary_payload_access": "サマリーにはデータがありません",
		"unknown_wire_type":      "未知の型名です: {got}",
		"unknown_key":            "未知のキーです: {key}",
		"depth_exceeded":         "ネストが {max} 段を超えています",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tpl, ok := templates[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return tpl
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
