package synth

import (
	"math"
	"time"

	"github.com/viterin/vek/vek32"
	"github.com/vsariola/oido"
)

const (
	// Attack is the time the gain takes to rise from silence to its peak.
	Attack = 10 * time.Millisecond

	TonePeak      = 0.5
	ChordHeadroom = 0.3

	DefaultToneDuration  = 500 * time.Millisecond
	DefaultChordDuration = time.Second
)

// Samples converts a duration to a number of samples at oido.SampleRate.
func Samples(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Round(d.Seconds() * oido.SampleRate))
}

// Sine fills buf with a unit amplitude sine wave starting at phase 0.
func Sine(buf []float32, frequency float64) []float32 {
	w := 2 * math.Pi * frequency / oido.SampleRate
	for i := range buf {
		buf[i] = float32(math.Sin(w * float64(i)))
	}
	return buf
}

// Envelope fills buf with a linear attack from 0 to peak lasting Attack,
// followed by a linear release back to 0 at the last sample. Buffers shorter
// than twice the attack get a symmetric triangle.
func Envelope(buf []float32, peak float32) []float32 {
	n := len(buf)
	if n == 0 {
		return buf
	}
	a := min(Samples(Attack), n/2)
	for i := 0; i < a; i++ {
		buf[i] = peak * float32(i) / float32(a)
	}
	r := n - 1 - a
	for i := a; i < n; i++ {
		if r <= 0 {
			buf[i] = peak
			continue
		}
		buf[i] = peak * float32(n-1-i) / float32(r)
	}
	return buf
}

// RenderTone renders one enveloped sine tone of the given duration.
func RenderTone(frequency float64, duration time.Duration, peak float32) []float32 {
	n := Samples(duration)
	buf := Sine(make([]float32, n), frequency)
	env := Envelope(make([]float32, n), peak)
	vek32.Mul_Inplace(buf, env)
	return buf
}

// RenderChord renders all frequencies at once. Every voice gets its own
// envelope with the peak divided by the number of voices, so the sum stays
// below ChordHeadroom however many voices there are.
func RenderChord(frequencies []float64, duration time.Duration) []float32 {
	out := vek32.Zeros(Samples(duration))
	if len(frequencies) == 0 {
		return out
	}
	peak := float32(ChordHeadroom / float64(len(frequencies)))
	for _, f := range frequencies {
		vek32.Add_Inplace(out, RenderTone(f, duration, peak))
	}
	return out
}
