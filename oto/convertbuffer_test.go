package oto_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/vsariola/oido/oto"
)

func TestFloatBufferToBytes(t *testing.T) {
	in := []float32{0, 0.5, -2, 2}
	out := oto.FloatBufferToBytes(in, 2, nil)
	if len(out) != len(in)*2*4 {
		t.Fatalf("got %d bytes, want %d", len(out), len(in)*8)
	}
	want := []float32{0, 0, 0.5, 0.5, -1, -1, 1, 1}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(out[i*4:]))
		if got != w {
			t.Errorf("sample %d: got %v, want %v", i, got, w)
		}
	}
}

func TestFloatBufferToBytesReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, 64)
	out := oto.FloatBufferToBytes([]float32{0.25}, 1, buf)
	if &out[0] != &buf[:1][0] {
		t.Error("expected the output to reuse the given buffer")
	}
}
