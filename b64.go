package asn1ber

/*
b64.go wraps the standard base64 codec for test ergonomics and for
the decode entry points that accept either raw bytes or a base64
string, per spec.md §4.1 and §6.
*/

import (
	"encoding/base64"
	"encoding/hex"
)

func hexDecode(s string) ([]byte, error) { return hex.DecodeString(s) }

// ToBase64 returns the standard (non-URL) base64 encoding of data.
func ToBase64(data []byte) string { return base64.StdEncoding.EncodeToString(data) }

// FromBase64 decodes a standard base64 string to bytes.
func FromBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, codecErrorf("invalid base64 input: ", err.Error())
	}
	return b, nil
}
