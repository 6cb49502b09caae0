package keystream

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"os"
	"reflect"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/blake2b"
)

// seedSequence makes every draw in this process distinct, even within the same clock tick.
var seedSequence atomic.Uint64

// seedMaterial gathers the inputs for a single draw.
// OS entropy is mixed in when available, but the draw doesn't depend on it.
func seedMaterial(seq uint64) []byte {
	nonce := new([8]byte)
	var buf []byte
	buf = binary.BigEndian.AppendUint64(buf, uint64(os.Getpid()))
	buf = binary.BigEndian.AppendUint64(buf, uint64(time.Now().UnixNano()))
	buf = binary.BigEndian.AppendUint64(buf, uint64(reflect.ValueOf(nonce).Pointer()))
	buf = binary.BigEndian.AppendUint64(buf, uint64(reflect.ValueOf(seedMaterial).Pointer()))
	buf = binary.BigEndian.AppendUint64(buf, seq)

	var entropy [32]byte
	if _, err := rand.Read(entropy[:]); err == nil {
		buf = append(buf, entropy[:]...)
	}
	return buf
}

// newSeedEngine returns an extendable output stream seeded for one draw.
func newSeedEngine() io.Reader {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		// Only possible with an invalid key or length, neither of which are used here.
		panic(err)
	}
	_, _ = xof.Write(seedMaterial(seedSequence.Add(1)))
	return xof
}

func drawSeed(target []byte) {
	if _, err := io.ReadFull(newSeedEngine(), target); err != nil {
		panic(err)
	}
}

// Synthesize creates a fresh State.
// The key, counter, and block each come from an independently seeded draw.
func Synthesize() State {
	var (
		s   State
		ctr [16]byte
	)
	drawSeed(s.Key[:])
	drawSeed(ctr[:])
	drawSeed(s.Block[:])
	s.Counter = CounterFromBytes(ctr)
	return s
}
