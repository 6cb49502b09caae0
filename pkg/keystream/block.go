package keystream

import "github.com/saylorsolutions/passgen/pkg/aes256"

// BlockEncrypter encrypts a single keystream block.
// *aes256.Cipher satisfies this interface.
type BlockEncrypter interface {
	EncryptBlock(plain aes256.Block) aes256.Block
}

var _ BlockEncrypter = (*aes256.Cipher)(nil)

// NextBlock produces the next keystream block from s.
// The counter is incremented first, its bytes are XOR'd into the previous block, and the result is encrypted.
// The returned State holds the new counter and block under the same key.
func NextBlock(enc BlockEncrypter, s State) ([BlockSize]byte, State) {
	s.Counter.Inc()
	ctr := s.Counter.Bytes()
	var plain aes256.Block
	for i := range plain {
		plain[i] = s.Block[i] ^ ctr[i]
	}
	s.Block = enc.EncryptBlock(plain)
	return s.Block, s
}
