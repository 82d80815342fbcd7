package aessiv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// RFC 4493 subkey derivation and MAC vectors.

func TestCMACSubkeyDerivation(t *testing.T) {
	key := mustParse(t, "2b7e151628aed2a6abf7158809cf4f3c")
	c, err := NewCMAC(key)
	require.NoError(t, err)

	expectedK1 := mustParse(t, "fbeed618357133667c85e08f7236a8de")
	expectedK2 := mustParse(t, "f7ddac306ae266ccf90bc11ee46d513b")

	require.Equal(t, expectedK1, c.k1[:])
	require.Equal(t, expectedK2, c.k2[:])
}

func TestCMACVectors(t *testing.T) {
	// Test vectors from RFC 4493, covering the empty message, exactly one
	// block, and the 40-byte/64-byte cases that exercise the multi-block
	// chaining loop in Update (two full blocks plus an 8-byte partial block,
	// and four full blocks, respectively).
	key := mustParse(t, "2b7e151628aed2a6abf7158809cf4f3c")
	c, err := NewCMAC(key)
	require.NoError(t, err)

	tests := []struct {
		name     string
		message  []byte
		expected string
	}{
		{
			name:     "empty",
			message:  []byte{},
			expected: "bb1d6929e95937287fa37d129b756746",
		},
		{
			name:     "16 bytes",
			message:  mustParse(t, "6bc1bee22e409f96e93d7e117393172a"),
			expected: "070a16b46b4d4144f79bdd9dd04a287c",
		},
		{
			name:     "40 bytes",
			message:  mustParse(t, "6bc1bee22e409f96e93d7e117393172aae2d8a571e03ac9c9eb76fac45af8e5130c81c46a35ce411"),
			expected: "dfa66747de9ae63030ca32611497c827",
		},
		{
			name:     "64 bytes",
			message:  mustParse(t, "6bc1bee22e409f96e93d7e117393172aae2d8a571e03ac9c9eb76fac45af8e5130c81c46a35ce411e5fbc1191a0a52eff69f2445df4f9b17ad2b417be66c3710"),
			expected: "51f0bebf7e3b9d92fc49741779363cfe",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			expected := mustParse(t, tc.expected)
			tag := c.MAC(tc.message)
			require.Equal(t, expected, tag[:])
		})
	}
}

func TestCMACStreamingMatchesOneShot(t *testing.T) {
	key := mustParse(t, "2b7e151628aed2a6abf7158809cf4f3c")
	c, err := NewCMAC(key)
	require.NoError(t, err)

	msg := make([]byte, 37)
	for i := range msg {
		msg[i] = byte(i)
	}
	oneShot := c.MAC(msg)

	c.Reset()
	c.Update(msg[:10])
	c.Update(msg[10:20])
	streamed := c.Finalize(msg[20:])

	require.Equal(t, oneShot, streamed)
}

func TestCMACReusableAfterFinalize(t *testing.T) {
	key := mustParse(t, "2b7e151628aed2a6abf7158809cf4f3c")
	c, err := NewCMAC(key)
	require.NoError(t, err)

	msg := []byte("some message")
	first := c.MAC(msg)
	second := c.MAC(msg)
	require.Equal(t, first, second)
}

func TestCMACOMAC2DiffersFromOMAC1(t *testing.T) {
	key := mustParse(t, "2b7e151628aed2a6abf7158809cf4f3c")

	omac1, err := NewCMACVariant(key, OMAC1)
	require.NoError(t, err)
	omac2, err := NewCMACVariant(key, OMAC2)
	require.NoError(t, err)

	require.NotEqual(t, omac1.k2, omac2.k2)
	require.Equal(t, omac1.k1, omac2.k1)

	msg := []byte("distinguishing message")
	require.NotEqual(t, omac1.MAC(msg), omac2.MAC(msg))
}

func TestCMACInvalidKeySize(t *testing.T) {
	_, err := NewCMAC(make([]byte, 20))
	require.ErrorIs(t, err, ErrInvalidKeySize)
}
