package aessiv

// CMACVariant selects which subkey-derivation rule a CMAC instance uses for
// K2. Default is OMAC1 (what RFC 4493 calls CMAC, and what SIV's S2V relies
// on exclusively); OMAC2 exists so the building block can be exercised on
// its own, per this package's "lower-level APIs for testing" surface.
type CMACVariant int

const (
	// OMAC1 derives K2 = dbl(K1). This is what RFC 4493 / NIST SP 800-38B
	// calls CMAC.
	OMAC1 CMACVariant = iota
	// OMAC2 derives K2 = inv(L) instead.
	OMAC2
)

// CMAC is AES-CMAC (a.k.a. OMAC1), block-chained AES-CBC-MAC with a
// final-block rule that depends on whether the message ends on a block
// boundary. It is a streaming primitive: Update may be called any number of
// times before Finalize.
type CMAC struct {
	cipher  *AES
	variant CMACVariant
	k1, k2  [16]byte
	x       [16]byte
	buf     *ByteBlock
}

// NewCMAC builds an OMAC1/CMAC instance for key.
func NewCMAC(key []byte) (*CMAC, error) {
	return NewCMACVariant(key, OMAC1)
}

// NewCMACVariant builds a CMAC instance for key, selecting the OMAC1 or
// OMAC2 subkey-derivation rule.
func NewCMACVariant(key []byte, variant CMACVariant) (*CMAC, error) {
	cipher, err := NewAES(key)
	if err != nil {
		return nil, err
	}
	c := &CMAC{cipher: cipher, variant: variant}
	c.deriveSubkeys()
	c.Reset()
	return c, nil
}

func (c *CMAC) deriveSubkeys() {
	var zero, l [16]byte
	c.cipher.EncryptBlock(l[:], zero[:])

	c.k1 = Dbl(l)
	if c.variant == OMAC2 {
		c.k2 = Inv(l)
	} else {
		c.k2 = Dbl(c.k1)
	}
}

// Reset returns the instance to its initial state so it can MAC another
// message. The derived subkeys and underlying cipher are unaffected.
func (c *CMAC) Reset() {
	c.x = [16]byte{}
	c.buf = NewByteBlock(nil, 0)
}

// Update feeds more message bytes into the running MAC. It buffers
// internally, holding back at least the final block (whether full or
// partial) so Finalize's block-selection rule has something to decide.
func (c *CMAC) Update(msg []byte) {
	c.buf.Concat(BlockFromBytes(msg))
	for c.buf.SigBytes() > 16 {
		block := c.buf.ShiftBytes(16)
		var m [16]byte
		copy(m[:], block.Bytes())
		xorBlock16(&c.x, &m)
		c.cipher.EncryptBlock(c.x[:], c.x[:])
	}
}

// Finalize absorbs an optional final chunk, computes the tag over
// everything fed so far, and resets the instance so it is immediately
// reusable.
func (c *CMAC) Finalize(msg []byte) [16]byte {
	if msg != nil {
		c.Update(msg)
	}

	remaining := c.buf.Bytes()
	var last [16]byte
	if len(remaining) == 16 {
		copy(last[:], remaining)
		xorBlock16(&last, &c.k1)
	} else {
		copy(last[:], remaining)
		last[len(remaining)] = 0x80
		xorBlock16(&last, &c.k2)
	}
	xorBlock16(&last, &c.x)

	var tag [16]byte
	c.cipher.EncryptBlock(tag[:], last[:])
	c.Reset()
	return tag
}

// MAC is a single-shot convenience wrapper equivalent to
// Reset(); Update(msg); return Finalize(nil).
func (c *CMAC) MAC(msg []byte) [16]byte {
	c.Reset()
	return c.Finalize(msg)
}
