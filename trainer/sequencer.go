package trainer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/vsariola/oido"
)

type (
	// Step is one onset of a playback script. A step with one frequency is a
	// tone, with several a chord and with none a rest. Gap is the delay from
	// the onset of this step to the onset of the next one.
	Step struct {
		Frequencies []float64
		Duration    time.Duration
		Gap         time.Duration
	}

	Script []Step

	// RoundID identifies a round. Every new round, and returning to the menu,
	// gets a new id; messages carrying an old id are ignored.
	RoundID uint64

	PlaybackJob struct {
		Round  RoundID
		Script Script
		Replay bool
	}

	// PlaybackDone is sent to the model when a job has been played, skipped
	// or has failed. Err is the first error reported by the tone engine.
	PlaybackDone struct {
		Round  RoundID
		Replay bool
		Err    error
	}

	// Playback is the part of the sequencer the model uses.
	Playback interface {
		// Start queues the job; jobs are played one after another.
		Start(job PlaybackJob)
		// SetRound marks the active round. Steps of other rounds are skipped.
		SetRound(round RoundID)
	}

	// Sequencer plays scripts through a ToneEngine. Jobs are handed to a single
	// worker goroutine (Run), so scripts never overlap.
	Sequencer struct {
		engine oido.ToneEngine
		broker *Broker
		round  atomic.Uint64
	}
)

var errQueueFull = errors.New("playback queue full")

func NewSequencer(broker *Broker, engine oido.ToneEngine) *Sequencer {
	return &Sequencer{engine: engine, broker: broker}
}

func (s *Sequencer) SetRound(round RoundID) {
	s.round.Store(uint64(round))
}

func (s *Sequencer) Start(job PlaybackJob) {
	s.SetRound(job.Round)
	if !TrySend(s.broker.ToSequencer, job) {
		// never leave the round waiting for a completion that does not come
		TrySend(s.broker.ToModel, MsgToModel{Data: PlaybackDone{Round: job.Round, Replay: job.Replay, Err: errQueueFull}})
	}
}

// Run is the worker loop. It returns when CloseSequencer receives a value,
// after which FinishedSequencer is closed.
func (s *Sequencer) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer close(s.broker.FinishedSequencer)
	defer cancel()
	go func() {
		select {
		case <-s.broker.CloseSequencer:
			cancel()
		case <-ctx.Done():
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-s.broker.ToSequencer:
			err := s.Play(ctx, job.Round, job.Script)
			if ctx.Err() != nil {
				return
			}
			TrySend(s.broker.ToModel, MsgToModel{Data: PlaybackDone{Round: job.Round, Replay: job.Replay, Err: err}})
		}
	}
}

// Play plays the script in the calling goroutine and returns when the gap of
// the last step has passed, the round is no longer active or ctx is done. All
// steps are attempted even if the engine fails; the first error is returned.
func (s *Sequencer) Play(ctx context.Context, round RoundID, script Script) error {
	var firstErr error
	for i, step := range script {
		if !s.active(round) {
			return nil
		}
		var err error
		switch len(step.Frequencies) {
		case 0:
		case 1:
			err = s.engine.PlayTone(step.Frequencies[0], step.Duration)
		default:
			err = s.engine.PlayChord(step.Frequencies, step.Duration)
		}
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("step %d: %w", i, err)
		}
		if err := sleep(ctx, step.Gap); err != nil {
			return err
		}
	}
	return firstErr
}

func (s *Sequencer) active(round RoundID) bool {
	return RoundID(s.round.Load()) == round
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Rest is a silent step, used for the lead-in before a round.
func Rest(d time.Duration) Step {
	return Step{Gap: d}
}

// Tone is a single note step.
func Tone(frequency float64, d, gap time.Duration) Step {
	return Step{Frequencies: []float64{frequency}, Duration: d, Gap: gap}
}

// Chord is a step playing all frequencies at once.
func Chord(frequencies []float64, d, gap time.Duration) Step {
	return Step{Frequencies: frequencies, Duration: d, Gap: gap}
}
