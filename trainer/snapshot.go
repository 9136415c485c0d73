package trainer

import (
	"strings"

	"github.com/vsariola/oido"
)

type (
	// Snapshot is a read-only copy of everything needed to draw the game.
	Snapshot struct {
		Screen    Screen
		Mode      oido.Mode
		Phase     Phase
		Result    Result
		Score     Score
		Feedback  Feedback
		Keys      []KeyState
		Progress  []string // pitch classes of the keys pressed this round
		Selection []string // in note table order
		Round     RoundID
	}

	KeyState struct {
		Note    oido.Note
		Class   KeyClass
		Pressed bool
	}

	KeyClass int
)

const (
	KeyPlain KeyClass = iota
	KeyCorrectGuess
	KeyIncorrectGuess
	KeyCorrectlyGuessed
	KeyShowAnswer
	KeySelected
	KeyReference
)

var keyClassNames = [...]string{"plain", "correct-guess", "incorrect-guess", "correctly-guessed", "show-answer", "selected", "reference"}

func (c KeyClass) String() string {
	if c < 0 || int(c) >= len(keyClassNames) {
		return "unknown"
	}
	return keyClassNames[c]
}

func (m *Model) Snapshot() Snapshot {
	s := Snapshot{
		Screen:    m.screen,
		Mode:      m.mode,
		Phase:     m.phase,
		Result:    m.result,
		Score:     m.score,
		Feedback:  m.feedback,
		Keys:      make([]KeyState, numNotes),
		Progress:  oido.PitchClasses(m.progress),
		Selection: m.selectionNames(),
		Round:     m.round,
	}
	for i, n := range oido.Notes {
		_, pressed := m.pressed[n.Name]
		s.Keys[i] = KeyState{Note: n, Class: m.KeyClass(n.Name), Pressed: pressed}
	}
	return s
}

// KeyClass decides how a key is highlighted. The first matching rule wins:
// flash, correctly guessed, revealed answer, selected, reference, and the
// chord root while guessing a chord with a reference.
func (m *Model) KeyClass(name string) KeyClass {
	switch {
	case m.flash.note == name:
		return m.flash.class
	case m.guessed[name]:
		return KeyCorrectlyGuessed
	case m.revealed[name]:
		return KeyShowAnswer
	case m.selection[name]:
		return KeySelected
	case m.hasReference && m.reference.Name == name:
		return KeyReference
	case m.mode.Kind() == oido.Chord && m.mode.Reference() && m.phase == GuessingPhase &&
		len(m.target) > 0 && m.target[0].Name == name:
		return KeyReference
	}
	return KeyPlain
}

// String renders the snapshot as text, one line per item. It is used by the
// terminal drill and in test failure messages.
func (s Snapshot) String() string {
	var b strings.Builder
	b.WriteString(s.Mode.String())
	b.WriteString(" ")
	b.WriteString(s.Phase.String())
	b.WriteString("\n")
	if s.Feedback.Message != "" {
		b.WriteString(s.Feedback.Message)
		b.WriteString("\n")
	}
	for _, k := range s.Keys {
		if k.Class == KeyPlain {
			continue
		}
		b.WriteString("  ")
		b.WriteString(k.Note.Name)
		b.WriteString(": ")
		b.WriteString(k.Class.String())
		b.WriteString("\n")
	}
	return b.String()
}

var phaseNames = map[Phase]string{
	IdlePhase:     "idle",
	PlaybackPhase: "playback",
	GuessingPhase: "guessing",
	ResolvedPhase: "resolved",
}

func (p Phase) String() string { return phaseNames[p] }
