package trainer

import (
	"errors"

	"github.com/vsariola/oido"
)

// startRound resets the per-round state, picks a new target and schedules its
// playback after the lead-in. The round enters GuessingPhase when the
// sequencer reports that the playback is done.
func (m *Model) startRound() {
	m.round++
	m.phase = PlaybackPhase
	m.result = Unresolved
	m.target = nil
	m.chord = oido.ChordTemplate{}
	m.hasReference = false
	m.progress = m.progress[:0]
	clear(m.selection)
	clear(m.revealed)
	clear(m.guessed)
	m.flash = flash{}
	m.pickTarget()
	m.info(m.texts.Format("listen."+m.mode.Kind().String(), struct{ Reference bool }{m.mode.Reference()}))
	script := append(Script{Rest(m.prefs.Timing.LeadIn)}, m.roundScript()...)
	m.playback.Start(PlaybackJob{Round: m.round, Script: script})
}

// leaveRound makes everything still scheduled for the current round stale.
func (m *Model) leaveRound() {
	m.round++
	m.playback.SetRound(m.round)
	m.phase = IdlePhase
	m.result = Unresolved
	m.target = nil
	m.hasReference = false
	m.progress = m.progress[:0]
	clear(m.selection)
	clear(m.revealed)
	clear(m.guessed)
	m.flash = flash{}
	m.feedback = Feedback{}
}

// playableNotes excludes the topmost note, which is never a target.
func playableNotes() []oido.Note {
	return oido.Notes[:numNotes-1]
}

func (m *Model) pickTarget() {
	switch m.mode.Kind() {
	case oido.Chord:
		// the chord reference is its root, highlighted only while guessing
		m.pickChord()
		return
	case oido.Pattern:
		notes := playableNotes()
		m.target = make([]oido.Note, m.prefs.PatternLength)
		for i := range m.target {
			m.target[i] = notes[m.rand.IntN(len(notes))]
		}
	default:
		notes := playableNotes()
		m.target = []oido.Note{notes[m.rand.IntN(len(notes))]}
	}
	if m.mode.Reference() {
		notes := playableNotes()
		m.reference = notes[m.rand.IntN(len(notes))]
		m.hasReference = true
	}
}

// pickChord draws a root and a template until the chord fits in the note
// table. After maxChordAttempts draws the first combination that fits is used.
func (m *Model) pickChord() {
	for range maxChordAttempts {
		root := m.rand.IntN(m.prefs.ChordRoots)
		t := oido.Chords[m.rand.IntN(len(oido.Chords))]
		notes, err := oido.ResolveChord(root, t)
		if errors.Is(err, oido.ErrChordOutOfRange) {
			continue
		}
		m.target, m.chord = notes, t
		return
	}
	for root := range m.prefs.ChordRoots {
		for _, t := range oido.Chords {
			if notes, err := oido.ResolveChord(root, t); err == nil {
				m.target, m.chord = notes, t
				return
			}
		}
	}
}

// roundScript is what gets played for the current target: the optional
// reference followed by the target itself.
func (m *Model) roundScript() Script {
	t := m.prefs.Timing
	var script Script
	switch m.mode.Kind() {
	case oido.Chord:
		if m.mode.Reference() {
			script = append(script, Tone(m.target[0].Frequency, t.ChordReferenceTone, t.ChordReferenceGap))
		}
		script = append(script, Chord(oido.Frequencies(m.target), t.Chord, 0))
	case oido.Pattern:
		if m.hasReference {
			script = append(script, Tone(m.reference.Frequency, t.ReferenceTone, t.ReferenceGap))
		}
		for _, n := range m.target {
			script = append(script, Tone(n.Frequency, t.PatternNote, t.PatternGap))
		}
	default:
		if m.hasReference {
			script = append(script, Tone(m.reference.Frequency, t.ReferenceTone, t.ReferenceGap))
		}
		script = append(script, Tone(m.target[0].Frequency, t.Tone, 0))
	}
	return script
}

// guessSingle resolves a single note round with the pressed note.
func (m *Model) guessSingle(name string) {
	target := m.target[0]
	m.progress = append(m.progress[:0], name)
	if oido.EqualsSingle(name, target.Name) {
		m.setFlash(name, KeyCorrectGuess)
		mark(m.guessed, m.target)
		m.resolve(true, m.texts.Text("correct"))
		return
	}
	m.setFlash(name, KeyIncorrectGuess)
	mark(m.revealed, m.target)
	m.resolve(false, m.texts.Format("incorrect.single-note", struct{ Note string }{target.Name}))
}

// guessPattern appends the pressed note to the progress and compares it to
// the same length prefix of the target. A mismatch ends the round at once.
func (m *Model) guessPattern(name string) {
	m.progress = append(m.progress, name)
	user, target := m.progress, oido.Names(m.target[:len(m.progress)])
	if !m.prefs.ExactPatternOctave {
		user, target = oido.PitchClasses(user), oido.PitchClasses(target)
	}
	if !oido.EqualsSequence(user, target) {
		m.setFlash(name, KeyIncorrectGuess)
		mark(m.revealed, m.target)
		pattern := oido.PitchClasses(oido.Names(m.target))
		if m.prefs.ExactPatternOctave {
			pattern = oido.Names(m.target)
		}
		m.resolve(false, m.texts.Format("incorrect.pattern", struct{ Pattern []string }{pattern}))
		return
	}
	m.setFlash(name, KeyCorrectGuess)
	if len(m.progress) == len(m.target) {
		mark(m.guessed, m.target)
		m.resolve(true, m.texts.Text("correct"))
	}
}

// verifyChord compares the selection to the chord as sets.
func (m *Model) verifyChord() {
	root := m.target[0]
	if oido.EqualsSet(m.selectionNames(), oido.Names(m.target)) {
		mark(m.guessed, m.target)
		m.resolve(true, m.texts.Text("correct"))
		return
	}
	mark(m.revealed, m.target)
	m.resolve(false, m.texts.Format("incorrect.chord", struct{ Root, Chord, ChordShort string }{
		oido.PitchClass(root.Name), m.chord.Name, m.chord.ShortName,
	}))
}

// selectionNames returns the selected notes in note table order.
func (m *Model) selectionNames() []string {
	var ret []string
	for _, n := range oido.Notes {
		if m.selection[n.Name] {
			ret = append(ret, n.Name)
		}
	}
	return ret
}

func (m *Model) selectedNotes() []oido.Note {
	var ret []oido.Note
	for _, n := range oido.Notes {
		if m.selection[n.Name] {
			ret = append(ret, n)
		}
	}
	return ret
}
