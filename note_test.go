package oido_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vsariola/oido"
)

func TestNoteTable(t *testing.T) {
	assert.Len(t, oido.Notes, 25)
	assert.Equal(t, "C4", oido.Notes[0].Name)
	assert.Equal(t, "C6", oido.Notes[len(oido.Notes)-1].Name)
	black := 0
	seen := map[string]bool{}
	for i, n := range oido.Notes {
		assert.False(t, seen[n.Name], "duplicate %s", n.Name)
		seen[n.Name] = true
		if n.Color == oido.Black {
			black++
		}
		if i > 0 {
			assert.Greater(t, n.Frequency, oido.Notes[i-1].Frequency)
		}
	}
	assert.Equal(t, 10, black)
}

func TestPitchClass(t *testing.T) {
	assert.Equal(t, "C#", oido.PitchClass("C#4"))
	assert.Equal(t, "C", oido.PitchClass("C6"))
	assert.Equal(t, []string{"D", "F", "A"}, oido.PitchClasses([]string{"D4", "F4", "A4"}))
}

func TestMIDIRoundTrip(t *testing.T) {
	a4, ok := oido.NoteByName("A4")
	assert.True(t, ok)
	assert.Equal(t, 69, a4.MIDI())
	n, ok := oido.NoteForMIDI(69)
	assert.True(t, ok)
	assert.Equal(t, a4, n)
	_, ok = oido.NoteForMIDI(59)
	assert.False(t, ok)
	_, ok = oido.NoteForMIDI(85)
	assert.False(t, ok)
}

func TestModes(t *testing.T) {
	for _, m := range oido.Modes {
		parsed, err := oido.ParseMode(m.String())
		assert.NoError(t, err)
		assert.Equal(t, m, parsed)
		assert.Equal(t, m, oido.MakeMode(m.Kind(), m.Reference()))
	}
	assert.Equal(t, oido.Chord, oido.ChordReference.Kind())
	assert.True(t, oido.ChordReference.Reference())
	assert.False(t, oido.PatternAbsolute.Reference())
	_, err := oido.ParseMode("scale-absolute")
	assert.Error(t, err)
}
