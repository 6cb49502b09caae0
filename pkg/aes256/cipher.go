package aes256

import (
	"crypto/cipher"
	"errors"
	"fmt"
)

const (
	KeySize   = 32
	BlockSize = 16
	Rounds    = 14
)

var (
	ErrKeySize  = errors.New("invalid AES-256 key size")
	ErrNotKeyed = errors.New("cipher used before a key was set")
)

// Block is a single AES block.
type Block = [BlockSize]byte

type roundKeys [Rounds + 1]Block

var _ cipher.Block = (*Cipher)(nil)

// Cipher is an AES-256 block cipher.
// The zero value is usable, but must be keyed with SetKey before any block operation.
type Cipher struct {
	enc   roundKeys
	dec   roundKeys
	keyed bool
}

// New creates an un-keyed Cipher.
func New() *Cipher {
	initSbox()
	return new(Cipher)
}

// NewCipher creates a Cipher that is already keyed with the given key.
func NewCipher(key []byte) (*Cipher, error) {
	c := New()
	if err := c.SetKey(key); err != nil {
		return nil, err
	}
	return c, nil
}

// SetKey derives the encryption and decryption round key schedules from a 32 byte key.
func (c *Cipher) SetKey(key []byte) error {
	if len(key) != KeySize {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrKeySize, KeySize, len(key))
	}
	initSbox()
	c.enc = expandKey(key)
	for i := range c.enc {
		c.dec[i] = c.enc[Rounds-i]
	}
	c.keyed = true
	return nil
}

// IsInitialized reports whether SetKey has been called successfully.
func (c *Cipher) IsInitialized() bool {
	return c != nil && c.keyed
}

func (c *Cipher) mustBeKeyed() {
	if !c.IsInitialized() {
		panic(ErrNotKeyed)
	}
}

// EncryptBlock encrypts a single block.
func (c *Cipher) EncryptBlock(plain Block) Block {
	c.mustBeKeyed()
	state := plain
	addRoundKey(&state, &c.enc[0])
	for round := 1; round < Rounds; round++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		addRoundKey(&state, &c.enc[round])
	}
	subBytes(&state)
	shiftRows(&state)
	addRoundKey(&state, &c.enc[Rounds])
	return state
}

// DecryptBlock reverses EncryptBlock.
func (c *Cipher) DecryptBlock(encrypted Block) Block {
	c.mustBeKeyed()
	state := encrypted
	addRoundKey(&state, &c.dec[0])
	for round := 1; round < Rounds; round++ {
		invShiftRows(&state)
		invSubBytes(&state)
		addRoundKey(&state, &c.dec[round])
		invMixColumns(&state)
	}
	invShiftRows(&state)
	invSubBytes(&state)
	addRoundKey(&state, &c.dec[Rounds])
	return state
}

func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt implements cipher.Block.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("aes256: input not full block")
	}
	var in Block
	copy(in[:], src)
	out := c.EncryptBlock(in)
	copy(dst, out[:])
}

// Decrypt implements cipher.Block.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("aes256: input not full block")
	}
	var in Block
	copy(in[:], src)
	out := c.DecryptBlock(in)
	copy(dst, out[:])
}

func expandKey(key []byte) roundKeys {
	const (
		nk    = KeySize / 4
		words = 4 * (Rounds + 1)
	)
	var (
		w    [words][4]byte
		rcon byte = 1
		out  roundKeys
	)
	for i := 0; i < nk; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}
	for i := nk; i < words; i++ {
		t := w[i-1]
		switch i % nk {
		case 0:
			t = [4]byte{sbox[t[1]] ^ rcon, sbox[t[2]], sbox[t[3]], sbox[t[0]]}
			rcon = xtime(rcon)
		case 4:
			t = [4]byte{sbox[t[0]], sbox[t[1]], sbox[t[2]], sbox[t[3]]}
		}
		for j := range t {
			w[i][j] = w[i-nk][j] ^ t[j]
		}
	}
	for i := range w {
		copy(out[i/4][4*(i%4):], w[i][:])
	}
	return out
}

func addRoundKey(state *Block, key *Block) {
	for i := range state {
		state[i] ^= key[i]
	}
}

func subBytes(state *Block) {
	for i, b := range state {
		state[i] = sbox[b]
	}
}

func invSubBytes(state *Block) {
	for i, b := range state {
		state[i] = invSbox[b]
	}
}

// The state is column major: byte i is row i%4 of column i/4.
func shiftRows(s *Block) {
	s[1], s[5], s[9], s[13] = s[5], s[9], s[13], s[1]
	s[2], s[6], s[10], s[14] = s[10], s[14], s[2], s[6]
	s[3], s[7], s[11], s[15] = s[15], s[3], s[7], s[11]
}

func invShiftRows(s *Block) {
	s[1], s[5], s[9], s[13] = s[13], s[1], s[5], s[9]
	s[2], s[6], s[10], s[14] = s[10], s[14], s[2], s[6]
	s[3], s[7], s[11], s[15] = s[7], s[11], s[15], s[3]
}

func mixColumns(s *Block) {
	for i := 0; i < BlockSize; i += 4 {
		a, b, c, d := s[i], s[i+1], s[i+2], s[i+3]
		e := a ^ b ^ c ^ d
		s[i] ^= e ^ xtime(a^b)
		s[i+1] ^= e ^ xtime(b^c)
		s[i+2] ^= e ^ xtime(c^d)
		s[i+3] ^= e ^ xtime(d^a)
	}
}

func invMixColumns(s *Block) {
	for i := 0; i < BlockSize; i += 4 {
		a, b, c, d := s[i], s[i+1], s[i+2], s[i+3]
		e := a ^ b ^ c ^ d
		z := xtime(e)
		x := e ^ xtime(xtime(z^a^c))
		y := e ^ xtime(xtime(z^b^d))
		s[i] ^= x ^ xtime(a^b)
		s[i+1] ^= y ^ xtime(b^c)
		s[i+2] ^= x ^ xtime(c^d)
		s[i+3] ^= y ^ xtime(d^a)
	}
}
