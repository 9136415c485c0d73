package trainer

import (
	"errors"
	"fmt"
	"strings"
)

type (
	MIDIContext interface {
		Inputs(yield func(input MIDIInputDevice) bool)
		Close()
		Support() MIDISupport
	}

	MIDIInputDevice interface {
		Open() error
		Close() error
		IsOpen() bool
		String() string
	}

	MIDISupport int

	// NullMIDIContext is used when the program is built without MIDI support.
	NullMIDIContext struct{}

	midiState struct {
		context      MIDIContext
		currentInput MIDIInputDevice
	}
)

const (
	MIDISupportNotCompiled MIDISupport = iota
	MIDISupportNoDriver
	MIDISupported
)

var ErrNoMIDIInput = errors.New("no matching MIDI input")

func (NullMIDIContext) Inputs(yield func(input MIDIInputDevice) bool) {}
func (NullMIDIContext) Close()                                       {}
func (NullMIDIContext) Support() MIDISupport                         { return MIDISupportNotCompiled }

// FindMIDIInput returns the first input whose name starts with prefix. An
// empty prefix matches the first input.
func FindMIDIInput(context MIDIContext, prefix string) (MIDIInputDevice, bool) {
	for input := range context.Inputs {
		if strings.HasPrefix(input.String(), prefix) {
			return input, true
		}
	}
	return nil, false
}

// SetMIDIContext gives the model a MIDI context. The model closes it in Quit.
func (m *Model) SetMIDIContext(context MIDIContext) {
	m.midi.context = context
}

// MIDIInputs returns the names of the available MIDI inputs.
func (m *Model) MIDIInputs() []string {
	if m.midi.context == nil {
		return nil
	}
	var ret []string
	for input := range m.midi.context.Inputs {
		ret = append(ret, input.String())
	}
	return ret
}

// OpenMIDIInput opens the first MIDI input whose name starts with prefix,
// closing the current one. Failures are reported as alerts.
func (m *Model) OpenMIDIInput(prefix string) Action {
	return MakeEnabledAction(DoFunc(func() {
		if err := m.openMIDIInput(prefix); err != nil {
			m.alerts.AddNamed("midi", m.texts.Format("midi.failed", struct{ Error error }{err}), Error)
			return
		}
		m.alerts.AddNamed("midi", fmt.Sprintf("MIDI: %s", m.midi.currentInput.String()), Info)
	}), func() bool { return m.midi.context != nil && m.midi.context.Support() == MIDISupported })
}

func (m *Model) openMIDIInput(prefix string) error {
	input, ok := FindMIDIInput(m.midi.context, prefix)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoMIDIInput, prefix)
	}
	if m.midi.currentInput != nil {
		if m.midi.currentInput.String() == input.String() && m.midi.currentInput.IsOpen() {
			return nil
		}
		m.midi.currentInput.Close()
		m.midi.currentInput = nil
	}
	if err := input.Open(); err != nil {
		return err
	}
	m.midi.currentInput = input
	return nil
}

func (m *Model) closeMIDI() {
	if m.midi.currentInput != nil {
		m.midi.currentInput.Close()
		m.midi.currentInput = nil
	}
	if m.midi.context != nil {
		m.midi.context.Close()
	}
}
