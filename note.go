package oido

import "strings"

type (
	// Note is one key of the two octave keyboard the game is played on. Notes
	// are compared by Name, which includes the octave ("C#4").
	Note struct {
		Name      string
		Frequency float64 // Hz
		Color     KeyColor
	}

	KeyColor int
)

const (
	White KeyColor = iota
	Black
)

// Notes is the fixed, ordered note table from C4 to C6. The order matters:
// chord intervals and MIDI keys are resolved by position in this table.
var Notes = [...]Note{
	{"C4", 261.63, White}, {"C#4", 277.18, Black},
	{"D4", 293.66, White}, {"D#4", 311.13, Black},
	{"E4", 329.63, White},
	{"F4", 349.23, White}, {"F#4", 369.99, Black},
	{"G4", 392.00, White}, {"G#4", 415.30, Black},
	{"A4", 440.00, White}, {"A#4", 466.16, Black},
	{"B4", 493.88, White},
	{"C5", 523.25, White}, {"C#5", 554.37, Black},
	{"D5", 587.33, White}, {"D#5", 622.25, Black},
	{"E5", 659.25, White},
	{"F5", 698.46, White}, {"F#5", 739.99, Black},
	{"G5", 783.99, White}, {"G#5", 830.61, Black},
	{"A5", 880.00, White}, {"A#5", 932.33, Black},
	{"B5", 987.77, White},
	{"C6", 1046.50, White},
}

// firstMIDIKey is the MIDI key number of Notes[0].
const firstMIDIKey = 60

// NoteIndex returns the position of the named note in Notes.
func NoteIndex(name string) (int, bool) {
	for i, n := range Notes {
		if n.Name == name {
			return i, true
		}
	}
	return -1, false
}

// NoteByName returns the note with the given name.
func NoteByName(name string) (Note, bool) {
	if i, ok := NoteIndex(name); ok {
		return Notes[i], true
	}
	return Note{}, false
}

// NoteForMIDI maps a MIDI key number to the note table. Keys outside C4..C6
// are not playable.
func NoteForMIDI(key int) (Note, bool) {
	i := key - firstMIDIKey
	if i < 0 || i >= len(Notes) {
		return Note{}, false
	}
	return Notes[i], true
}

// MIDI returns the MIDI key number of the note, or -1 if the note is not part
// of the note table.
func (n Note) MIDI() int {
	i, ok := NoteIndex(n.Name)
	if !ok {
		return -1
	}
	return firstMIDIKey + i
}

// PitchClass strips the octave from a note name: "C#4" becomes "C#".
func PitchClass(name string) string {
	return strings.TrimRightFunc(name, func(r rune) bool { return r >= '0' && r <= '9' })
}

// PitchClasses maps PitchClass over names.
func PitchClasses(names []string) []string {
	ret := make([]string, len(names))
	for i, n := range names {
		ret[i] = PitchClass(n)
	}
	return ret
}

// Names returns the names of the notes, in order.
func Names(notes []Note) []string {
	ret := make([]string, len(notes))
	for i, n := range notes {
		ret[i] = n.Name
	}
	return ret
}

// Frequencies returns the frequencies of the notes, in order.
func Frequencies(notes []Note) []float64 {
	ret := make([]float64, len(notes))
	for i, n := range notes {
		ret[i] = n.Frequency
	}
	return ret
}
