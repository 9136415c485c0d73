//go:build !cgo

package cmd

import (
	"github.com/vsariola/oido/trainer"
)

func NewMidiContext(broker *trainer.Broker) trainer.MIDIContext {
	// with no cgo, we cannot use MIDI, so return a null context
	return trainer.NullMIDIContext{}
}
