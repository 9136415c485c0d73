package oido_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vsariola/oido"
)

func TestResolveMajorChordOnC4(t *testing.T) {
	major, ok := oido.ChordByName("Maj")
	assert.True(t, ok)
	notes, err := oido.ResolveChord(0, major)
	assert.NoError(t, err)
	assert.Equal(t, []string{"C4", "E4", "G4"}, oido.Names(notes))
}

func TestResolvedChordHasOneNotePerInterval(t *testing.T) {
	for _, c := range oido.Chords {
		for root := 0; root < oido.ChordRoots; root++ {
			notes, err := oido.ResolveChord(root, c)
			if !assert.NoError(t, err, "%s on %s", c.Name, oido.Notes[root].Name) {
				continue
			}
			assert.Len(t, notes, len(c.Intervals))
			assert.Equal(t, oido.Notes[root], notes[0])
		}
	}
}

func TestResolveChordOutOfRange(t *testing.T) {
	dom7, _ := oido.ChordByName("Dominante 7")
	_, err := oido.ResolveChord(len(oido.Notes)-3, dom7)
	assert.True(t, errors.Is(err, oido.ErrChordOutOfRange))
	_, err = oido.ResolveChord(-1, dom7)
	assert.True(t, errors.Is(err, oido.ErrChordOutOfRange))
}

func TestChordTemplatesStartAtRoot(t *testing.T) {
	assert.Len(t, oido.Chords, 5)
	for _, c := range oido.Chords {
		assert.Equal(t, 0, c.Intervals[0], c.Name)
	}
}
