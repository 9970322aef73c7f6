package codec

import (
	"encoding/base64"
	"strings"
)

// EncodeBase64 encodes raw with the URL-safe alphabet and padding.
func EncodeBase64(raw []byte) string {
	return base64.URLEncoding.EncodeToString(raw)
}

// DecodeBase64 accepts the URL-safe and standard alphabets, padded or not.
// Line breaks and other whitespace are ignored since some encoders wrap their
// output.
func DecodeBase64(s string) ([]byte, error) {
	s = stripSpace(s)
	if strings.ContainsAny(s, "+/") {
		return decodeEither(base64.StdEncoding, base64.RawStdEncoding, s)
	}
	return decodeEither(base64.URLEncoding, base64.RawURLEncoding, s)
}

func decodeEither(padded, raw *base64.Encoding, s string) ([]byte, error) {
	if strings.HasSuffix(s, "=") || len(s)%4 == 0 {
		return padded.DecodeString(s)
	}
	return raw.DecodeString(s)
}

func stripSpace(s string) string {
	if !strings.ContainsAny(s, " \t\r\n") {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
}
