package oto

import (
	"encoding/binary"
	"math"
)

// FloatBufferToBytes converts a mono float32 buffer to interleaved float32
// little-endian bytes with the sample repeated on every channel. Samples are
// clamped to [-1, 1]. The result is appended to out, so an old buffer can be
// reused by passing it with length zero.
func FloatBufferToBytes(buff []float32, channels int, out []byte) []byte {
	var tmp [4]byte
	for _, v := range buff {
		v = max(-1, min(1, v))
		binary.LittleEndian.PutUint32(tmp[:], math.Float32bits(v))
		for c := 0; c < channels; c++ {
			out = append(out, tmp[:]...)
		}
	}
	return out
}
