package trainer_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vsariola/oido/trainer"
)

type syncEngine struct {
	mu     sync.Mutex
	calls  [][]float64
	err    error
	onTone func()
}

func (e *syncEngine) PlayTone(f float64, d time.Duration) error {
	e.mu.Lock()
	e.calls = append(e.calls, []float64{f})
	hook := e.onTone
	e.mu.Unlock()
	if hook != nil {
		hook()
	}
	return e.err
}

func (e *syncEngine) PlayChord(f []float64, d time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, append([]float64(nil), f...))
	return e.err
}

func (e *syncEngine) numCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}

var testScript = trainer.Script{
	trainer.Rest(time.Millisecond),
	trainer.Tone(440, 10*time.Millisecond, time.Millisecond),
	trainer.Chord([]float64{261.63, 329.63, 392}, 10*time.Millisecond, 0),
}

func TestSequencerPlaysStepsInOrder(t *testing.T) {
	engine := &syncEngine{}
	s := trainer.NewSequencer(trainer.NewBroker(), engine)
	s.SetRound(1)
	if err := s.Play(context.Background(), 1, testScript); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if len(engine.calls) != 2 {
		t.Fatalf("got %d engine calls, want 2", len(engine.calls))
	}
	if len(engine.calls[0]) != 1 || engine.calls[0][0] != 440 {
		t.Errorf("first call = %v, want tone 440", engine.calls[0])
	}
	if len(engine.calls[1]) != 3 {
		t.Errorf("second call = %v, want a three note chord", engine.calls[1])
	}
}

func TestSequencerSkipsStaleRound(t *testing.T) {
	engine := &syncEngine{}
	s := trainer.NewSequencer(trainer.NewBroker(), engine)
	s.SetRound(2)
	if err := s.Play(context.Background(), 1, testScript); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if n := engine.numCalls(); n != 0 {
		t.Errorf("stale script made %d engine calls", n)
	}
}

func TestSequencerStopsWhenRoundChanges(t *testing.T) {
	engine := &syncEngine{}
	s := trainer.NewSequencer(trainer.NewBroker(), engine)
	engine.onTone = func() { s.SetRound(3) }
	s.SetRound(1)
	script := trainer.Script{
		trainer.Tone(440, time.Millisecond, time.Millisecond),
		trainer.Tone(880, time.Millisecond, time.Millisecond),
	}
	if err := s.Play(context.Background(), 1, script); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if n := engine.numCalls(); n != 1 {
		t.Errorf("got %d engine calls, want 1", n)
	}
}

func TestSequencerReturnsFirstError(t *testing.T) {
	errBroken := errors.New("broken")
	engine := &syncEngine{err: errBroken}
	s := trainer.NewSequencer(trainer.NewBroker(), engine)
	s.SetRound(1)
	err := s.Play(context.Background(), 1, testScript)
	if !errors.Is(err, errBroken) {
		t.Errorf("err = %v, want %v", err, errBroken)
	}
	if n := engine.numCalls(); n != 2 {
		t.Errorf("all steps should be attempted, got %d calls", n)
	}
}

func TestSequencerPlayHonoursContext(t *testing.T) {
	s := trainer.NewSequencer(trainer.NewBroker(), &syncEngine{})
	s.SetRound(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Play(ctx, 1, trainer.Script{trainer.Rest(time.Hour)})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestSequencerWorker(t *testing.T) {
	broker := trainer.NewBroker()
	engine := &syncEngine{}
	s := trainer.NewSequencer(broker, engine)
	go s.Run()
	s.Start(trainer.PlaybackJob{Round: 7, Script: testScript, Replay: true})
	msg, ok := trainer.TimeoutReceive(broker.ToModel, time.Second)
	if !ok {
		t.Fatalf("no PlaybackDone received")
	}
	done, ok := msg.Data.(trainer.PlaybackDone)
	if !ok || done.Round != 7 || !done.Replay || done.Err != nil {
		t.Errorf("got %+v, want PlaybackDone for round 7", msg.Data)
	}
	if n := engine.numCalls(); n != 2 {
		t.Errorf("got %d engine calls, want 2", n)
	}
	broker.CloseSequencer <- struct{}{}
	if _, ok := trainer.TimeoutReceive(broker.FinishedSequencer, time.Second); ok {
		t.Errorf("FinishedSequencer should be closed, not receive a value")
	}
	select {
	case <-broker.FinishedSequencer:
	default:
		t.Errorf("sequencer did not finish")
	}
}

func TestSequencerFullQueueReportsDone(t *testing.T) {
	broker := trainer.NewBroker()
	broker.ToSequencer = make(chan trainer.PlaybackJob) // nobody is listening
	s := trainer.NewSequencer(broker, &syncEngine{})
	s.Start(trainer.PlaybackJob{Round: 1, Script: testScript})
	msg, ok := trainer.TimeoutReceive(broker.ToModel, time.Second)
	if !ok {
		t.Fatalf("no PlaybackDone received")
	}
	if done, ok := msg.Data.(trainer.PlaybackDone); !ok || done.Round != 1 || done.Err == nil {
		t.Errorf("got %+v, want PlaybackDone with an error", msg.Data)
	}
}
