package aessiv

// GF(2^128) helpers used by CMAC subkey derivation and S2V's accumulator.
// All operate on, or are backed by, 16-byte ByteBlocks.

var (
	// Zero128 is the all-zero 128-bit block.
	Zero128 = [16]byte{}

	// One128 is 0^127 || 1.
	One128 = [16]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}

	// rb is the GF(2^128) reduction constant used by dbl: x^128 + x^7 +
	// x^2 + x + 1, represented as its low byte.
	rb = [16]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x87}

	// rbShifted is rb already shifted into the top bit, used by inv.
	rbShifted = [16]byte{0x80, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x43}

	// nonMSB masks off bit 31 of the 8th byte and bit 31 of the 12th byte
	// of a 16-byte block -- the two "counter word" MSBs that SIV clears
	// before using its synthetic IV to drive CTR mode.
	nonMSB = [16]byte{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0x7F, 0xFF, 0xFF, 0xFF, 0x7F, 0xFF, 0xFF, 0xFF,
	}
)

// DblBlock doubles a 16-byte ByteBlock in GF(2^128): left shift by one bit,
// then XOR with rb if a 1 bit carried off the top. It mutates and returns x.
func DblBlock(x *ByteBlock) *ByteBlock {
	if x.SigBytes() != 16 {
		panic("aessiv: dbl requires a 128-bit block")
	}
	carry := x.words[0]>>31 != 0
	x.BitShift(1)
	x.Clamp()
	if carry {
		x.Xor(BlockFromBytes(rb[:]))
	}
	return x
}

// InvBlock is the inverse of DblBlock, used by CMAC's OMAC2 variant to
// derive K2 = inv(L) instead of K2 = dbl(K1). Per RFC 5297 / Rogaway's OMAC2
// definition, the carry bit examined is the low bit of the fourth (and
// last) word of the 128-bit block -- words[3], not a fifth, nonexistent
// word.
func InvBlock(x *ByteBlock) *ByteBlock {
	if x.SigBytes() != 16 {
		panic("aessiv: inv requires a 128-bit block")
	}
	carry := x.words[3]&1 != 0
	x.BitShift(-1)
	if carry {
		x.Xor(BlockFromBytes(rbShifted[:]))
	}
	return x
}

// Dbl is the [16]byte convenience form of DblBlock.
func Dbl(x [16]byte) [16]byte {
	b := BlockFromBytes(x[:])
	DblBlock(b)
	var out [16]byte
	copy(out[:], b.Bytes())
	return out
}

// Inv is the [16]byte convenience form of InvBlock.
func Inv(x [16]byte) [16]byte {
	b := BlockFromBytes(x[:])
	InvBlock(b)
	var out [16]byte
	copy(out[:], b.Bytes())
	return out
}

// xorBlock16 XORs b into a, in place.
func xorBlock16(a *[16]byte, b *[16]byte) {
	for i := range a {
		a[i] ^= b[i]
	}
}

// maskNonMSB clears the two counter-word MSBs of a synthetic IV before it
// drives CTR mode, per RFC 5297 section 2.6.
func maskNonMSB(v [16]byte) [16]byte {
	var out [16]byte
	for i := range out {
		out[i] = v[i] & nonMSB[i]
	}
	return out
}
