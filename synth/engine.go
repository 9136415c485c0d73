package synth

import (
	"fmt"
	"sync"
	"time"

	"github.com/vsariola/oido"
)

// Engine is the oido.ToneEngine used by the game. The audio context is
// created on first use; if that fails, the engine stays silent and every call
// returns an error wrapping oido.ErrAudioUnavailable.
type Engine struct {
	newContext func() (oido.AudioContext, error)

	once    sync.Once
	mu      sync.Mutex
	context oido.AudioContext
	sink    oido.AudioSink
	err     error
}

func NewEngine(newContext func() (oido.AudioContext, error)) *Engine {
	return &Engine{newContext: newContext}
}

func (e *Engine) output() (oido.AudioSink, error) {
	e.once.Do(func() {
		if e.newContext == nil {
			e.err = oido.ErrAudioUnavailable
			return
		}
		ctx, err := e.newContext()
		if err != nil {
			e.err = fmt.Errorf("%w: %w", oido.ErrAudioUnavailable, err)
			return
		}
		e.context = ctx
		e.sink = ctx.Output()
	})
	return e.sink, e.err
}

// PlayTone plays a sine tone; zero duration means DefaultToneDuration.
func (e *Engine) PlayTone(frequency float64, duration time.Duration) error {
	if duration <= 0 {
		duration = DefaultToneDuration
	}
	return e.write(RenderTone(frequency, duration, TonePeak))
}

// PlayChord plays all frequencies together; zero duration means
// DefaultChordDuration.
func (e *Engine) PlayChord(frequencies []float64, duration time.Duration) error {
	if len(frequencies) == 0 {
		return nil
	}
	if duration <= 0 {
		duration = DefaultChordDuration
	}
	return e.write(RenderChord(frequencies, duration))
}

func (e *Engine) write(buf []float32) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	sink, err := e.output()
	if err != nil {
		return err
	}
	if err := sink.WriteAudio(buf); err != nil {
		return fmt.Errorf("cannot write tone: %w", err)
	}
	return nil
}

// Close releases the audio context, if one was ever created.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.context == nil {
		return nil
	}
	e.sink.Close()
	err := e.context.Close()
	e.context, e.sink = nil, nil
	e.err = oido.ErrAudioUnavailable
	return err
}
