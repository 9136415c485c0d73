package synth_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vsariola/oido"
	"github.com/vsariola/oido/synth"
)

func maxAbs(buf []float32) float32 {
	var m float32
	for _, v := range buf {
		m = max(m, float32(math.Abs(float64(v))))
	}
	return m
}

func TestEnvelopeShape(t *testing.T) {
	env := synth.Envelope(make([]float32, synth.Samples(500*time.Millisecond)), 0.5)
	a := synth.Samples(synth.Attack)
	if env[0] != 0 {
		t.Errorf("envelope should start silent, got %v", env[0])
	}
	if env[a] != 0.5 {
		t.Errorf("envelope should reach the peak after the attack, got %v", env[a])
	}
	if last := env[len(env)-1]; last != 0 {
		t.Errorf("envelope should end silent, got %v", last)
	}
	for i := 1; i < a; i++ {
		if env[i] <= env[i-1] {
			t.Fatalf("attack not rising at sample %d", i)
		}
	}
	for i := a + 1; i < len(env); i++ {
		if env[i] >= env[i-1] {
			t.Fatalf("release not falling at sample %d", i)
		}
	}
}

func TestRenderToneLengthAndPeak(t *testing.T) {
	buf := synth.RenderTone(440, 400*time.Millisecond, synth.TonePeak)
	if got, want := len(buf), 17640; got != want {
		t.Errorf("length: got %d, want %d", got, want)
	}
	if m := maxAbs(buf); m > synth.TonePeak || m < 0.45 {
		t.Errorf("peak out of range: %v", m)
	}
}

func TestRenderChordStaysUnderHeadroom(t *testing.T) {
	for n := 1; n <= 4; n++ {
		freqs := oido.Frequencies(oido.Notes[:n])
		buf := synth.RenderChord(freqs, time.Second)
		if m := maxAbs(buf); m > synth.ChordHeadroom+1e-6 {
			t.Errorf("%d voices: peak %v exceeds headroom", n, m)
		}
	}
	if buf := synth.RenderChord(nil, time.Second); maxAbs(buf) != 0 {
		t.Error("empty chord should be silent")
	}
}

type recordingContext struct {
	buffers [][]float32
	closed  bool
}

func (c *recordingContext) Output() oido.AudioSink { return c }
func (c *recordingContext) Close() error           { c.closed = true; return nil }
func (c *recordingContext) WriteAudio(buffer []float32) error {
	c.buffers = append(c.buffers, buffer)
	return nil
}

func TestEngineCreatesContextOnce(t *testing.T) {
	created := 0
	ctx := &recordingContext{}
	e := synth.NewEngine(func() (oido.AudioContext, error) {
		created++
		return ctx, nil
	})
	if created != 0 {
		t.Fatal("context should be created lazily")
	}
	if err := e.PlayTone(440, 0); err != nil {
		t.Fatal(err)
	}
	if err := e.PlayChord([]float64{261.63, 329.63, 392}, 0); err != nil {
		t.Fatal(err)
	}
	if created != 1 {
		t.Errorf("context created %d times", created)
	}
	if len(ctx.buffers) != 2 {
		t.Fatalf("expected 2 buffers, got %d", len(ctx.buffers))
	}
	if got, want := len(ctx.buffers[0]), synth.Samples(synth.DefaultToneDuration); got != want {
		t.Errorf("default tone length: got %d, want %d", got, want)
	}
	if got, want := len(ctx.buffers[1]), synth.Samples(synth.DefaultChordDuration); got != want {
		t.Errorf("default chord length: got %d, want %d", got, want)
	}
	if err := e.Close(); err != nil || !ctx.closed {
		t.Errorf("close: %v, closed=%v", err, ctx.closed)
	}
}

func TestEngineWithoutAudio(t *testing.T) {
	calls := 0
	e := synth.NewEngine(func() (oido.AudioContext, error) {
		calls++
		return nil, errors.New("no device")
	})
	for i := 0; i < 3; i++ {
		if err := e.PlayTone(440, 0); !errors.Is(err, oido.ErrAudioUnavailable) {
			t.Fatalf("expected ErrAudioUnavailable, got %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("context construction attempted %d times", calls)
	}
	if err := e.Close(); err != nil {
		t.Error(err)
	}
}
