package aessiv

// ByteBlock is a logical byte string backed by 32-bit big-endian words, the
// same representation the rest of this package's building blocks (AES state,
// CMAC's pending-bytes buffer, S2V's buffered plaintext tail) pass around
// internally. byte i of the block lives in word[i/4] at bit shift
// 24-8*(i%4).
//
// sigBytes tracks how many leading bytes of the block are significant; words
// beyond ceil(sigBytes/4) don't exist, and bits of the last word past
// sigBytes are undefined until Clamp is called.
type ByteBlock struct {
	words    []uint32
	sigBytes int
}

// NewByteBlock wraps words as a block with the given number of significant
// bytes. It does not clone words.
func NewByteBlock(words []uint32, sigBytes int) *ByteBlock {
	return &ByteBlock{words: words, sigBytes: sigBytes}
}

// BlockFromBytes packs b into a ByteBlock.
func BlockFromBytes(b []byte) *ByteBlock {
	words := make([]uint32, (len(b)+3)/4)
	for i, c := range b {
		words[i/4] |= uint32(c) << (24 - 8*uint(i%4))
	}
	return &ByteBlock{words: words, sigBytes: len(b)}
}

// SigBytes returns the number of significant bytes in the block.
func (b *ByteBlock) SigBytes() int {
	return b.sigBytes
}

// Bytes unpacks the block's significant bytes.
func (b *ByteBlock) Bytes() []byte {
	out := make([]byte, b.sigBytes)
	for i := range out {
		out[i] = byte(b.words[i/4] >> (24 - 8*uint(i%4)))
	}
	return out
}

// Clone returns an independent copy; callers that might mutate a block they
// did not create must clone it first.
func (b *ByteBlock) Clone() *ByteBlock {
	words := make([]uint32, len(b.words))
	copy(words, b.words)
	return &ByteBlock{words: words, sigBytes: b.sigBytes}
}

// Concat appends other's significant bytes to b, in place.
func (b *ByteBlock) Concat(other *ByteBlock) *ByteBlock {
	if b.sigBytes%4 == 0 {
		b.words = append(b.words, other.words...)
	} else {
		for i := 0; i < other.sigBytes; i++ {
			thisByte := byte(other.words[i/4] >> (24 - 8*uint(i%4)))
			pos := b.sigBytes + i
			b.ensureWord(pos / 4)
			b.words[pos/4] |= uint32(thisByte) << (24 - 8*uint(pos%4))
		}
	}
	b.sigBytes += other.sigBytes
	return b
}

func (b *ByteBlock) ensureWord(idx int) {
	for len(b.words) <= idx {
		b.words = append(b.words, 0)
	}
}

// Clamp truncates words to ceil(sigBytes/4) and zeroes bits of the last word
// beyond sigBytes.
func (b *ByteBlock) Clamp() {
	nWords := (b.sigBytes + 3) / 4
	if nWords < len(b.words) {
		b.words = b.words[:nWords]
	}
	if nWords > 0 {
		rem := b.sigBytes % 4
		if rem != 0 {
			mask := uint32(0xFFFFFFFF) << (32 - 8*uint(rem))
			b.words[nWords-1] &= mask
		}
	}
}

// BitShift shifts the whole block left (n > 0) or right (n < 0) by |n| bits,
// in place, across word boundaries. Bits shifted past either end are
// dropped.
func (b *ByteBlock) BitShift(n int) *ByteBlock {
	if n == 0 {
		return b
	}
	if n > 0 {
		wordShift := n / 32
		bitShift := uint(n % 32)
		for i := 0; i < len(b.words); i++ {
			srcIdx := i + wordShift
			var hi, lo uint32
			if srcIdx < len(b.words) {
				hi = b.words[srcIdx]
			}
			if bitShift != 0 && srcIdx+1 < len(b.words) {
				lo = b.words[srcIdx+1] >> (32 - bitShift)
			}
			if bitShift != 0 {
				hi <<= bitShift
			}
			b.words[i] = hi | lo
		}
	} else {
		n = -n
		wordShift := n / 32
		bitShift := uint(n % 32)
		for i := len(b.words) - 1; i >= 0; i-- {
			srcIdx := i - wordShift
			var hi, lo uint32
			if srcIdx >= 0 {
				hi = b.words[srcIdx]
			}
			if bitShift != 0 && srcIdx-1 >= 0 {
				lo = b.words[srcIdx-1] << (32 - bitShift)
			}
			if bitShift != 0 {
				hi >>= bitShift
			}
			b.words[i] = hi | lo
		}
	}
	return b
}

// Xor XORs other into b word-wise. The two blocks must share the same
// sigBytes.
func (b *ByteBlock) Xor(other *ByteBlock) *ByteBlock {
	if b.sigBytes != other.sigBytes {
		panic("aessiv: xor of mismatched-length blocks")
	}
	for i := range b.words {
		b.words[i] ^= other.words[i]
	}
	return b
}

// BitAnd ANDs other into b word-wise.
func (b *ByteBlock) BitAnd(other *ByteBlock) *ByteBlock {
	for i := range b.words {
		if i < len(other.words) {
			b.words[i] &= other.words[i]
		}
	}
	return b
}

// Neg flips every bit of b.
func (b *ByteBlock) Neg() *ByteBlock {
	for i := range b.words {
		b.words[i] = ^b.words[i]
	}
	return b
}

// Equals reports whether a and b have equal sigBytes and equal significant
// bytes. The comparison is a word-wise XOR-OR reduction so that it does not
// short-circuit on the first differing word, matching the constant-time
// comparison discipline used for tag verification.
func (b *ByteBlock) Equals(other *ByteBlock) bool {
	if b.sigBytes != other.sigBytes {
		return false
	}
	var acc uint32
	for i := range b.words {
		acc |= b.words[i] ^ other.words[i]
	}
	return acc == 0
}

// ShiftBytes destructively removes the first n bytes of b and returns them
// as a new block; b's remaining bytes are shifted down to the front.
func (b *ByteBlock) ShiftBytes(n int) *ByteBlock {
	head := b.LeftmostBytes(n)
	rest := b.RightmostBytes(b.sigBytes - n)
	b.words = rest.words
	b.sigBytes = rest.sigBytes
	return head
}

// PopWords destructively removes the first n words of b and returns them.
func (b *ByteBlock) PopWords(n int) []uint32 {
	if n > len(b.words) {
		n = len(b.words)
	}
	popped := make([]uint32, n)
	copy(popped, b.words[:n])
	b.words = b.words[n:]
	if b.sigBytes > n*4 {
		b.sigBytes -= n * 4
	} else {
		b.sigBytes = 0
	}
	return popped
}

// LeftmostBytes returns a new block holding b's first n bytes, without
// modifying b.
func (b *ByteBlock) LeftmostBytes(n int) *ByteBlock {
	if n > b.sigBytes {
		n = b.sigBytes
	}
	nWords := (n + 3) / 4
	words := make([]uint32, nWords)
	copy(words, b.words[:nWords])
	block := &ByteBlock{words: words, sigBytes: n}
	block.Clamp()
	return block
}

// RightmostBytes returns a new block holding b's last n bytes, without
// modifying b.
func (b *ByteBlock) RightmostBytes(n int) *ByteBlock {
	if n > b.sigBytes {
		n = b.sigBytes
	}
	full := b.Bytes()
	return BlockFromBytes(full[len(full)-n:])
}

// XorEndBytes returns leftmost(a, len(a)-len(b)) || (rightmost(a, len(b)) XOR b).
func XorEndBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	copy(out, a)
	offset := len(a) - len(b)
	for i, c := range b {
		out[offset+i] ^= c
	}
	return out
}
