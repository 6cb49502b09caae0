package keystream

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Counter is a 128-bit unsigned counter split into two 64-bit words.
type Counter struct {
	Lo uint64
	Hi uint64
}

// Inc adds one to the counter, carrying from Lo into Hi.
// The maximum value wraps around to zero.
func (c *Counter) Inc() {
	if c.Lo == math.MaxUint64 {
		c.Lo = 0
		c.Hi++
		return
	}
	c.Lo++
}

// Bytes converts the counter to its 16 byte form: Lo then Hi, each little-endian.
func (c Counter) Bytes() [16]byte {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], c.Lo)
	binary.LittleEndian.PutUint64(b[8:], c.Hi)
	return b
}

// CounterFromBytes reverses Counter.Bytes.
func CounterFromBytes(b [16]byte) Counter {
	return Counter{
		Lo: binary.LittleEndian.Uint64(b[:8]),
		Hi: binary.LittleEndian.Uint64(b[8:]),
	}
}

func (c Counter) String() string {
	return fmt.Sprintf("%016x%016x", c.Hi, c.Lo)
}
