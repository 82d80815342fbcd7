// Package aessiv implements AES-SIV (Synthetic Initialization Vector) mode
// as defined in RFC 5297, from the ground up: its own AES block primitive,
// CMAC, S2V, and CTR, not crypto/aes or crypto/cipher. AES-SIV provides
// nonce-reuse misuse-resistant authenticated encryption.
package aessiv

import (
	"crypto/cipher"

	"github.com/pkg/errors"
)

const (
	// TagSize is the size of the authentication tag (synthetic IV) in
	// bytes.
	TagSize = BlockSize

	// KeySize256 is the key size for AES-SIV with AES-128 (256 bits total).
	KeySize256 = 32

	// KeySize384 is the key size for AES-SIV with AES-192 (384 bits total).
	KeySize384 = 48

	// KeySize512 is the key size for AES-SIV with AES-256 (512 bits total).
	KeySize512 = 64
)

// AESSIV implements the AES-SIV AEAD construction described in RFC 5297.
// It satisfies the shape of crypto/cipher.AEAD (Seal/Open/NonceSize/
// Overhead) without depending on that package for any cryptography.
type AESSIV struct {
	s2vKey []byte
	ctr    *AES
}

var _ cipher.AEAD = (*AESSIV)(nil)

// New creates an AES-SIV instance. key must be 32, 48, or 64 bytes long,
// selecting AES-128-SIV, AES-192-SIV, or AES-256-SIV respectively. The key
// is split in half by byte count: the first half drives S2V/CMAC, the
// second half drives CTR.
func New(key []byte) (*AESSIV, error) {
	switch len(key) {
	case KeySize256, KeySize384, KeySize512:
	default:
		return nil, errors.Wrapf(ErrInvalidKeySize, "got %d bytes, want %d, %d, or %d", len(key), KeySize256, KeySize384, KeySize512)
	}

	half := len(key) / 2
	ctr, err := NewAES(key[half:])
	if err != nil {
		return nil, err
	}

	return &AESSIV{
		s2vKey: append([]byte(nil), key[:half]...),
		ctr:    ctr,
	}, nil
}

func (s *AESSIV) s2v(associatedData [][]byte, plaintext []byte) ([16]byte, error) {
	v, err := NewS2V(s.s2vKey)
	if err != nil {
		return [16]byte{}, err
	}
	for _, ad := range associatedData {
		v.UpdateAAD(ad)
	}
	return v.Finalize(plaintext), nil
}

// Seal encrypts and authenticates plaintext with the given nonce and
// additional data, returning tag(16) || ciphertext(len(plaintext)). nonce
// may be nil for fully deterministic encryption; when present it is
// treated as the last entry of the AD vector, per RFC 5297 section 2.5.
func (s *AESSIV) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	ct, err := s.SealWithAssociatedDataList(dst, adVector(additionalData, nonce), plaintext)
	if err != nil {
		panic(err)
	}
	return ct
}

// SealWithAssociatedDataList encrypts plaintext against an ordered vector
// of associated-data strings, following RFC 5297's own interface.
func (s *AESSIV) SealWithAssociatedDataList(dst []byte, associatedData [][]byte, plaintext []byte) ([]byte, error) {
	v, err := s.s2v(associatedData, plaintext)
	if err != nil {
		return nil, err
	}

	ret, out := sliceForAppend(dst, TagSize+len(plaintext))
	copy(out, v[:])

	if len(plaintext) > 0 {
		q := maskNonMSB(v)
		ctrStream(s.ctr, q, out[TagSize:], plaintext)
	}

	return ret, nil
}

// Open decrypts and authenticates ciphertext against nonce and
// additionalData, the mirror image of Seal.
func (s *AESSIV) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	return s.OpenWithAssociatedDataList(dst, adVector(additionalData, nonce), ciphertext)
}

// OpenWithAssociatedDataList decrypts ciphertext against an ordered vector
// of associated-data strings. It returns ErrCiphertextTooShort if
// ciphertext cannot hold a tag, and ErrOpen if authentication fails -- in
// which case no plaintext is returned and the scratch buffer used to
// compute the candidate plaintext is zeroed before returning. On success the
// returned slice is non-nil, even when the plaintext is empty.
func (s *AESSIV) OpenWithAssociatedDataList(dst []byte, associatedData [][]byte, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < TagSize {
		return nil, ErrCiphertextTooShort
	}

	var v [16]byte
	copy(v[:], ciphertext[:TagSize])
	encrypted := ciphertext[TagSize:]

	ret, plaintext := sliceForAppend(dst, len(encrypted))
	if len(encrypted) > 0 {
		q := maskNonMSB(v)
		ctrStream(s.ctr, q, plaintext, encrypted)
	}

	computedV, err := s.s2v(associatedData, plaintext)
	if err != nil {
		clear(plaintext)
		return nil, err
	}

	if !constantTimeEqual(v, computedV) {
		clear(plaintext)
		return nil, ErrOpen
	}

	if ret == nil {
		ret = []byte{}
	}
	return ret, nil
}

// adVector builds the teacher-shaped [additionalData, nonce] vector used by
// Seal/Open, dropping either entry when nil.
func adVector(additionalData, nonce []byte) [][]byte {
	var ad [][]byte
	if additionalData != nil {
		ad = append(ad, additionalData)
	}
	if nonce != nil {
		ad = append(ad, nonce)
	}
	return ad
}

// constantTimeEqual compares two 128-bit tags via a word-wise XOR-OR
// reduction, so that the comparison does not branch on where the tags
// first differ.
func constantTimeEqual(a, b [16]byte) bool {
	var v uint32
	for i := 0; i < 16; i += 4 {
		v |= (beUint32(a[i:i+4]) ^ beUint32(b[i:i+4]))
	}
	return v == 0
}

// sliceForAppend extends the input slice to accommodate n more bytes.
// Returns the extended slice and the n-byte slice to write to.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}

// NonceSize returns 0: AES-SIV does not require a nonce. When one is used,
// pass it to Seal/Open; it is folded into the AD vector.
func (s *AESSIV) NonceSize() int {
	return 0
}

// Overhead returns the number of bytes Seal adds beyond the plaintext
// length.
func (s *AESSIV) Overhead() int {
	return TagSize
}
