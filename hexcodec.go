package aessiv

import (
	fasthex "github.com/tmthrgd/go-hex"

	"github.com/pkg/errors"
)

// Parse decodes a lowercase or uppercase hex string into bytes. It is the
// only text-facing boundary this package exposes; everything else is raw
// byte buffers, per the library's byte-in/byte-out surface.
func Parse(s string) ([]byte, error) {
	b, err := fasthex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedHex, err.Error())
	}
	return b, nil
}

// Stringify renders b as lowercase hex.
func Stringify(b []byte) string {
	return fasthex.EncodeToString(b)
}
