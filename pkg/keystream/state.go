package keystream

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"
	"github.com/saylorsolutions/passgen/pkg/aes256"
)

const (
	KeySize   = aes256.KeySize
	BlockSize = aes256.BlockSize

	// StateSize is the encoded size of a State.
	StateSize = 4 + KeySize + 8 + 8 + 4 + BlockSize
)

var (
	ErrCorruptState = errors.New("corrupt generator state")
	ErrNoState      = errors.New("no generator state stored")
)

// State is the durable generator record.
// Counter is always the value that was consumed to produce Block.
type State struct {
	Key     [KeySize]byte
	Counter Counter
	Block   [BlockSize]byte
}

func byteSequence(target []byte) bin.Mapper {
	mappers := make([]bin.Mapper, len(target))
	for i := range target {
		mappers[i] = bin.Byte(&target[i])
	}
	return bin.MapSequence(mappers...)
}

// mapper lays out the record with length-prefixed key and block fields.
func (s *State) mapper(keyLen, blockLen *uint32) bin.Mapper {
	return bin.MapSequence(
		bin.Int(keyLen),
		byteSequence(s.Key[:]),
		bin.Int(&s.Counter.Lo),
		bin.Int(&s.Counter.Hi),
		bin.Int(blockLen),
		byteSequence(s.Block[:]),
	)
}

// Write encodes the State to w.
func (s *State) Write(w io.Writer) error {
	var (
		keyLen   uint32 = KeySize
		blockLen uint32 = BlockSize
	)
	return s.mapper(&keyLen, &blockLen).Write(w, binary.BigEndian)
}

// Read decodes a State from r.
// The receiver is only modified if the whole record parses and passes validation.
func (s *State) Read(r io.Reader) error {
	var (
		keyLen   uint32
		blockLen uint32
		read     State
	)
	if err := read.mapper(&keyLen, &blockLen).Read(r, binary.BigEndian); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if keyLen != KeySize {
		return fmt.Errorf("%w: key length prefix is %d, expected %d", ErrCorruptState, keyLen, KeySize)
	}
	if blockLen != BlockSize {
		return fmt.Errorf("%w: block length prefix is %d, expected %d", ErrCorruptState, blockLen, BlockSize)
	}
	*s = read
	return nil
}

func (s State) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(StateSize)
	if err := s.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *State) UnmarshalBinary(data []byte) error {
	if len(data) != StateSize {
		return fmt.Errorf("%w: record is %d bytes, expected %d", ErrCorruptState, len(data), StateSize)
	}
	return s.Read(bytes.NewReader(data))
}
