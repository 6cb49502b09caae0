package keystream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState() State {
	var s State
	for i := range s.Key {
		s.Key[i] = byte(i)
	}
	for i := range s.Block {
		s.Block[i] = byte(0xa0 + i)
	}
	s.Counter = Counter{Lo: 0x0102030405060708, Hi: 0x1112131415161718}
	return s
}

func TestState_MarshalBinary(t *testing.T) {
	s := testState()
	data, err := s.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, StateSize)

	var expected []byte
	expected = append(expected, 0, 0, 0, 32)
	expected = append(expected, s.Key[:]...)
	expected = append(expected, 1, 2, 3, 4, 5, 6, 7, 8)
	expected = append(expected, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18)
	expected = append(expected, 0, 0, 0, 16)
	expected = append(expected, s.Block[:]...)
	assert.Equal(t, expected, data)

	var read State
	assert.NoError(t, read.UnmarshalBinary(data))
	assert.Equal(t, s, read)
}

func TestState_UnmarshalBinaryNeg(t *testing.T) {
	good, err := testState().MarshalBinary()
	require.NoError(t, err)

	badKeyLen := bytes.Clone(good)
	badKeyLen[3] = 31
	badBlockLen := bytes.Clone(good)
	badBlockLen[4+KeySize+16+3] = 0xff
	nullKey := bytes.Clone(good)
	copy(nullKey, []byte{0xff, 0xff, 0xff, 0xff})

	tests := map[string][]byte{
		"Empty":             nil,
		"Truncated":         good[:len(good)-1],
		"Trailing bytes":    append(bytes.Clone(good), 0),
		"Bad key length":    badKeyLen,
		"Bad block length":  badBlockLen,
		"Null key sentinel": nullKey,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			orig := testState()
			s := orig
			err := s.UnmarshalBinary(data)
			assert.ErrorIs(t, err, ErrCorruptState)
			assert.Equal(t, orig, s, "State should not be partially updated")
		})
	}
}

func TestState_ReadPartial(t *testing.T) {
	good, err := testState().MarshalBinary()
	require.NoError(t, err)

	var s State
	err = s.Read(bytes.NewReader(good[:40]))
	assert.ErrorIs(t, err, ErrCorruptState)
	assert.Equal(t, State{}, s)
}
