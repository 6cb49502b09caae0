package aes256

import "sync"

var (
	sboxOnce sync.Once
	sbox     [256]byte
	invSbox  [256]byte
)

// xtime multiplies x by 2 in GF(2^8) with the AES reduction polynomial.
func xtime(x byte) byte {
	if x&0x80 != 0 {
		return (x << 1) ^ 0x1b
	}
	return x << 1
}

func rotl8(x byte, shift uint) byte {
	return (x << shift) | (x >> (8 - shift))
}

// deriveSbox walks the multiplicative group with generator 3, pairing each element with its inverse.
func deriveSbox() {
	var p, q byte = 1, 1
	for {
		// p *= 3
		p ^= xtime(p)

		// q /= 3
		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		s := q ^ rotl8(q, 1) ^ rotl8(q, 2) ^ rotl8(q, 3) ^ rotl8(q, 4) ^ 0x63
		sbox[p] = s
		invSbox[s] = p
		if p == 1 {
			break
		}
	}
	// Zero has no inverse.
	sbox[0] = 0x63
	invSbox[0x63] = 0
}

func initSbox() {
	sboxOnce.Do(deriveSbox)
}
