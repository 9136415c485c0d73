package trainer

import (
	"github.com/vsariola/oido"
)

// selectMode
type selectMode struct {
	Mode oido.Mode
	*Model
}

// SelectMode starts a new session in the given mode, skipping the menu.
func (m *Model) SelectMode(mode oido.Mode) Action {
	return MakeAction(selectMode{Mode: mode, Model: m})
}
func (s selectMode) Enabled() bool { return s.Mode >= 0 && int(s.Mode) < len(oido.Modes) }
func (s selectMode) Do() {
	m := s.Model
	m.leaveRound()
	m.screen = GameScreen
	m.mode = s.Mode
	m.score = Score{}
	m.startRound()
}

// backToMenu
type backToMenu Model

func (m *Model) BackToMenu() Action { return MakeAction((*backToMenu)(m)) }
func (m *backToMenu) Enabled() bool { return m.screen == GameScreen }
func (m *backToMenu) Do() {
	(*Model)(m).leaveRound()
	m.screen = MenuScreen
	m.score = Score{}
}

// pressKey
type pressKey struct {
	Note string
	*Model
}

// PressKey plays the named key and, while guessing, uses it as an answer.
func (m *Model) PressKey(name string) Action {
	return MakeAction(pressKey{Note: name, Model: m})
}
func (p pressKey) Enabled() bool {
	_, ok := oido.NoteByName(p.Note)
	return ok && p.screen == GameScreen
}
func (p pressKey) Do() {
	m := p.Model
	note, _ := oido.NoteByName(p.Note)
	m.playTone(note, m.prefs.Timing.KeyTone)
	m.pulse(note.Name)
	if m.phase != GuessingPhase {
		return
	}
	switch m.mode.Kind() {
	case oido.Chord:
		if m.selection[note.Name] {
			delete(m.selection, note.Name)
		} else {
			m.selection[note.Name] = true
		}
	case oido.Pattern:
		m.guessPattern(note.Name)
	default:
		m.guessSingle(note.Name)
	}
}

// verifyChord
type verifyChord Model

func (m *Model) VerifyChord() Action { return MakeAction((*verifyChord)(m)) }
func (m *verifyChord) Enabled() bool {
	return m.phase == GuessingPhase && m.mode.Kind() == oido.Chord && len(m.target) > 0
}
func (m *verifyChord) Do() { (*Model)(m).verifyChord() }

// playSelection
type playSelection Model

func (m *Model) PlaySelection() Action { return MakeAction((*playSelection)(m)) }
func (m *playSelection) Enabled() bool {
	return m.phase == GuessingPhase && m.mode.Kind() == oido.Chord && len(m.selection) > 0
}
func (m *playSelection) Do() {
	(*Model)(m).playChord((*Model)(m).selectedNotes(), m.prefs.Timing.Selection)
}

// replay
type replay Model

func (m *Model) Replay() Action { return MakeAction((*replay)(m)) }
func (m *replay) Enabled() bool { return m.phase == GuessingPhase }
func (m *replay) Do() {
	m.playback.Start(PlaybackJob{Round: m.round, Script: (*Model)(m).roundScript(), Replay: true})
}

// nextRound
type nextRound Model

func (m *Model) NextRound() Action { return MakeAction((*nextRound)(m)) }
func (m *nextRound) Enabled() bool { return m.screen == GameScreen && m.phase == ResolvedPhase }
func (m *nextRound) Do()           { (*Model)(m).startRound() }

// quit
type quit Model

// Quit stops the sequencer and closes the MIDI input. The GUI exits once
// Quitted returns true.
func (m *Model) Quit() Action { return MakeAction((*quit)(m)) }
func (m *quit) Do() {
	(*Model)(m).leaveRound()
	(*Model)(m).closeMIDI()
	TrySend(m.broker.CloseSequencer, struct{}{})
	m.quitted = true
}
