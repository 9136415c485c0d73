//go:build cgo

package cmd

import (
	"github.com/vsariola/oido/trainer"
	"github.com/vsariola/oido/trainer/gomidi"
)

func NewMidiContext(broker *trainer.Broker) trainer.MIDIContext {
	return gomidi.NewContext(broker)
}
