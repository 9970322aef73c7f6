package codec

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64_Alphabets(t *testing.T) {
	// 0xfb 0xff 0xbf uses the characters that differ between alphabets.
	raw := []byte{0xfb, 0xff, 0xbf, 0x01}
	cases := map[string]string{
		"url padded":   base64.URLEncoding.EncodeToString(raw),
		"url raw":      base64.RawURLEncoding.EncodeToString(raw),
		"std padded":   base64.StdEncoding.EncodeToString(raw),
		"std raw":      base64.RawStdEncoding.EncodeToString(raw),
		"line wrapped": "-_-_\r\nAQ==\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := DecodeBase64(in)
			require.NoError(t, err)
			assert.Equal(t, raw, got)
		})
	}
}

func TestDecodeBase64_Invalid(t *testing.T) {
	_, err := DecodeBase64("a")
	assert.Error(t, err)
	_, err = DecodeBase64("!!!!")
	assert.Error(t, err)
}

func TestEncodeBase64_URLSafePadded(t *testing.T) {
	assert.Equal(t, "-_-_AQ==", EncodeBase64([]byte{0xfb, 0xff, 0xbf, 0x01}))
	assert.Equal(t, "", EncodeBase64(nil))
}
