package oido

import (
	"errors"
	"fmt"
)

// ChordTemplate describes a chord quality as semitone offsets from the root.
// The first interval is always 0.
type ChordTemplate struct {
	Name      string
	ShortName string
	Intervals []int
}

var Chords = []ChordTemplate{
	{Name: "Mayor", ShortName: "Maj", Intervals: []int{0, 4, 7}},
	{Name: "Menor", ShortName: "min", Intervals: []int{0, 3, 7}},
	{Name: "Dominante 7", ShortName: "7", Intervals: []int{0, 4, 7, 10}},
	{Name: "Mayor 7", ShortName: "maj7", Intervals: []int{0, 4, 7, 11}},
	{Name: "Menor 7", ShortName: "m7", Intervals: []int{0, 3, 7, 10}},
}

// ChordRoots is the number of notes, counted from the start of Notes, that can
// be picked as a chord root (C4..C5).
const ChordRoots = 13

var ErrChordOutOfRange = errors.New("chord does not fit in the note table")

// ChordByName finds a template by its Name or ShortName.
func ChordByName(name string) (ChordTemplate, bool) {
	for _, c := range Chords {
		if c.Name == name || c.ShortName == name {
			return c, true
		}
	}
	return ChordTemplate{}, false
}

// ResolveChord returns the notes of the chord built on Notes[rootIndex]. The
// result has exactly one note per interval; if any interval falls outside the
// note table, ErrChordOutOfRange is returned instead.
func ResolveChord(rootIndex int, t ChordTemplate) ([]Note, error) {
	ret := make([]Note, 0, len(t.Intervals))
	for _, interval := range t.Intervals {
		i := rootIndex + interval
		if i < 0 || i >= len(Notes) {
			return nil, fmt.Errorf("%s on %d: %w", t.Name, rootIndex, ErrChordOutOfRange)
		}
		ret = append(ret, Notes[i])
	}
	return ret, nil
}
