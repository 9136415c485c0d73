package oido

import (
	"errors"
	"time"
)

// SampleRate is the rate of every buffer passed around in oido.
const SampleRate = 44100

type (
	// AudioSink receives mono float32 audio. WriteAudio starts playing the
	// buffer and returns without waiting for it to finish.
	AudioSink interface {
		WriteAudio(buffer []float32) error
		Close() error
	}

	// AudioContext is the audio output device, created once per session.
	AudioContext interface {
		Output() AudioSink
		Close() error
	}

	// ToneEngine plays sine tones. Both methods return immediately after the
	// sound has been started; a zero duration selects the default length.
	ToneEngine interface {
		PlayTone(frequency float64, duration time.Duration) error
		PlayChord(frequencies []float64, duration time.Duration) error
	}
)

var ErrAudioUnavailable = errors.New("audio output is not available")

// NullAudioContext discards all audio; used when audio is disabled.
type NullAudioContext struct{}

type nullSink struct{}

func (NullAudioContext) Output() AudioSink         { return nullSink{} }
func (NullAudioContext) Close() error              { return nil }
func (nullSink) WriteAudio(buffer []float32) error { return nil }
func (nullSink) Close() error                      { return nil }
