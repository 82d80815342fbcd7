package aessiv

// blockCipher is the minimal capability CTR mode needs: encrypt exactly one
// BlockSize-byte block.
type blockCipher interface {
	EncryptBlock(dst, src []byte)
}

// ctrStream runs AES-CTR over src into dst, starting from the given 16-byte
// IV. It never pads; the final block is XORed byte-for-byte with a
// truncated keystream block. Encryption and decryption are the same
// operation.
func ctrStream(cipher blockCipher, iv [16]byte, dst, src []byte) {
	var counter [4]uint32
	counter[0] = beUint32(iv[0:4])
	counter[1] = beUint32(iv[4:8])
	counter[2] = beUint32(iv[8:12])
	counter[3] = beUint32(iv[12:16])

	var counterBytes, keystream [16]byte
	for offset := 0; offset < len(src); offset += 16 {
		putBeUint32(counterBytes[0:4], counter[0])
		putBeUint32(counterBytes[4:8], counter[1])
		putBeUint32(counterBytes[8:12], counter[2])
		putBeUint32(counterBytes[12:16], counter[3])

		cipher.EncryptBlock(keystream[:], counterBytes[:])

		end := offset + 16
		if end > len(src) {
			end = len(src)
		}
		for i := offset; i < end; i++ {
			dst[i] = src[i] ^ keystream[i-offset]
		}

		counter[3]++
	}
}
