package gomidi

import (
	"errors"
	"fmt"

	"github.com/vsariola/oido/trainer"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

type (
	// RTMIDIContext forwards the note ons of the open input device to the
	// model as trainer.MIDINoteOn messages.
	RTMIDIContext struct {
		driver    *rtmididrv.Driver
		broker    *trainer.Broker
		currentIn drivers.In
		stop      func()
	}

	RTMIDIDevice struct {
		context *RTMIDIContext
		in      drivers.In
	}
)

var errNoDriver = errors.New("no MIDI driver available")

// NewContext opens the rtmidi driver. If that fails, the context is still
// usable but has no inputs.
func NewContext(broker *trainer.Broker) *RTMIDIContext {
	m := RTMIDIContext{broker: broker}
	// there's not much we can do if this fails, so just use m.driver = nil to
	// indicate no driver available
	m.driver, _ = rtmididrv.New()
	return &m
}

func (m *RTMIDIContext) Inputs(yield func(trainer.MIDIInputDevice) bool) {
	if m.driver == nil {
		return
	}
	ins, err := m.driver.Ins()
	if err != nil {
		return
	}
	for _, in := range ins {
		if !yield(RTMIDIDevice{context: m, in: in}) {
			break
		}
	}
}

func (m *RTMIDIContext) Support() trainer.MIDISupport {
	if m.driver == nil {
		return trainer.MIDISupportNoDriver
	}
	return trainer.MIDISupported
}

func (m *RTMIDIContext) Close() {
	if m.driver == nil {
		return
	}
	m.closeCurrent()
	m.driver.Close()
}

func (m *RTMIDIContext) closeCurrent() {
	if m.stop != nil {
		m.stop()
		m.stop = nil
	}
	if m.currentIn != nil && m.currentIn.IsOpen() {
		m.currentIn.Close()
	}
	m.currentIn = nil
}

// Open the input device while closing the currently open if necessary.
func (d RTMIDIDevice) Open() error {
	m := d.context
	if m.driver == nil {
		return errNoDriver
	}
	if m.currentIn == d.in && d.in.IsOpen() {
		return nil
	}
	m.closeCurrent()
	if err := d.in.Open(); err != nil {
		return fmt.Errorf("opening MIDI input failed: %w", err)
	}
	stop, err := midi.ListenTo(d.in, m.handleMessage)
	if err != nil {
		d.in.Close()
		return fmt.Errorf("listening to MIDI input failed: %w", err)
	}
	m.currentIn, m.stop = d.in, stop
	return nil
}

func (d RTMIDIDevice) Close() error {
	if d.context.currentIn == d.in {
		d.context.closeCurrent()
		return nil
	}
	return d.in.Close()
}

func (d RTMIDIDevice) IsOpen() bool   { return d.in.IsOpen() }
func (d RTMIDIDevice) String() string { return d.in.String() }

// handleMessage runs on the driver's goroutine; it never blocks.
func (m *RTMIDIContext) handleMessage(msg midi.Message, timestampms int32) {
	var channel, key, velocity uint8
	if msg.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
		trainer.TrySend(m.broker.ToModel, trainer.MsgToModel{Data: trainer.MIDINoteOn{Key: int(key)}})
	}
}
