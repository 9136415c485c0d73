package trainer

import "time"

type (
	// Broker is the centralized message broker of the trainer. It is used to
	// communicate between the model, the sequencer, the timers and the MIDI
	// input. The broker is just many-to-one communication, implemented with
	// one channel for each recipient.
	//
	// For closing the sequencer goroutine, there are two channels:
	// CloseSequencer and FinishedSequencer. CloseSequencer has a capacity of
	// 1, so you can always send an empty message (struct{}{}) to it without
	// blocking; if it is already full, someone has already requested the
	// closure. FinishedSequencer is closed when the goroutine is done. Wait for
	// it with a timeout to avoid deadlocks:
	//    select {
	//      case <-FinishedSequencer:
	//      case <-time.After(3 * time.Second):
	//    }
	Broker struct {
		ToModel     chan MsgToModel
		ToSequencer chan PlaybackJob

		CloseSequencer    chan struct{}
		FinishedSequencer chan struct{}
	}

	// MsgToModel is a message sent to the model. Data is one of PlaybackDone,
	// MIDINoteOn or a func() that gets executed on the model goroutine.
	MsgToModel struct {
		Data any
	}

	// MIDINoteOn is sent by MIDI inputs when a key is pressed.
	MIDINoteOn struct {
		Key int
	}
)

func NewBroker() *Broker {
	return &Broker{
		ToModel:           make(chan MsgToModel, 1024),
		ToSequencer:       make(chan PlaybackJob, 64),
		CloseSequencer:    make(chan struct{}, 1),
		FinishedSequencer: make(chan struct{}),
	}
}

// TrySend is a helper function to send a value to a channel if it is not full.
// It is guaranteed to be non-blocking. Return true if the value was sent, false
// otherwise.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}

// TimeoutReceive is a helper function to block until a value is received from a
// channel, or timing out after t. ok will be false if the timeout occurred or
// if the channel is closed.
func TimeoutReceive[T any](c <-chan T, t time.Duration) (v T, ok bool) {
	select {
	case v, ok = <-c:
		return v, ok
	case <-time.After(t):
		return v, false
	}
}
