package aessiv

import "github.com/pkg/errors"

var (
	// ErrInvalidKeySize is returned when a key handed to New, NewCMAC, or
	// NewAES does not match one of the sizes the target accepts.
	ErrInvalidKeySize = errors.New("aessiv: invalid key size")

	// ErrOpen is returned when decryption fails authentication. No
	// plaintext is returned alongside it.
	ErrOpen = errors.New("aessiv: message authentication failed")

	// ErrCiphertextTooShort is returned when an Open input is shorter than
	// the tag it must contain.
	ErrCiphertextTooShort = errors.New("aessiv: ciphertext too short")

	// ErrMalformedHex is returned by Parse when its input is not valid
	// hex.
	ErrMalformedHex = errors.New("aessiv: malformed hex input")
)
