package trainer

import (
	"errors"
	"log"
	"math/rand/v2"
	"time"

	"github.com/vsariola/oido"
)

// Model implements the mutable state of the game. It is owned by the GUI
// goroutine; the sequencer, timers and MIDI input only talk to it by sending
// messages to Broker.ToModel, which the GUI drains and passes to ProcessMsg.
type (
	Model struct {
		broker       *Broker
		engine       oido.ToneEngine
		playback     Playback
		prefs        Preferences
		texts        *Texts
		rand         Randomizer
		fullscreener Fullscreener
		alerts       Alerts
		midi         midiState

		screen      Screen
		mode        oido.Mode
		round       RoundID
		phase       Phase
		result      Result
		score       Score
		feedback    Feedback
		audioFailed bool
		quitted     bool

		target       []oido.Note
		chord        oido.ChordTemplate
		reference    oido.Note
		hasReference bool
		progress     []string
		selection    map[string]bool
		revealed     map[string]bool
		guessed      map[string]bool
		flash        flash
		pressed      map[string]uint64
		timers       uint64
	}

	// Randomizer is the source of randomness for picking targets;
	// *rand.Rand satisfies it.
	Randomizer interface {
		IntN(n int) int
	}

	Screen int
	Phase  int
	Result int

	Score struct {
		Correct int
		Total   int
	}

	Feedback struct {
		Message string
		Kind    FeedbackKind
	}

	FeedbackKind int

	flash struct {
		note  string
		class KeyClass
		id    uint64
	}
)

const (
	MenuScreen Screen = iota
	GameScreen
)

const (
	IdlePhase Phase = iota
	PlaybackPhase
	GuessingPhase
	ResolvedPhase
)

const (
	Unresolved Result = iota
	Correct
	Incorrect
)

const (
	InfoFeedback FeedbackKind = iota
	CorrectFeedback
	IncorrectFeedback
)

const numNotes = len(oido.Notes)

// maxChordAttempts bounds how many times a chord that does not fit in the
// note table is resampled before falling back to a scan.
const maxChordAttempts = 32

func NewModel(broker *Broker, engine oido.ToneEngine, playback Playback, prefs Preferences, texts *Texts) *Model {
	m := &Model{
		broker:    broker,
		engine:    engine,
		playback:  playback,
		prefs:     prefs,
		texts:     texts,
		rand:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x6f69646f)),
		selection: map[string]bool{},
		revealed:  map[string]bool{},
		guessed:   map[string]bool{},
		pressed:   map[string]uint64{},
	}
	m.prefs.sanitize()
	if prefs.YmlError != nil {
		log.Printf("preferences.yml: %v", prefs.YmlError)
		m.alerts.Add("preferences.yml: "+prefs.YmlError.Error(), Warning)
	}
	return m
}

func (m *Model) SetRandomizer(r Randomizer) { m.rand = r }

func (m *Model) Broker() *Broker           { return m.broker }
func (m *Model) Alerts() *Alerts           { return &m.alerts }
func (m *Model) Texts() *Texts             { return m.texts }
func (m *Model) Preferences() *Preferences { return &m.prefs }
func (m *Model) Quitted() bool             { return m.quitted }

// ProcessMsg handles one message received from Broker.ToModel.
func (m *Model) ProcessMsg(msg MsgToModel) {
	switch d := msg.Data.(type) {
	case func():
		d()
	case PlaybackDone:
		m.playbackDone(d)
	case MIDINoteOn:
		if n, ok := oido.NoteForMIDI(d.Key); ok {
			m.PressKey(n.Name).Do()
		}
	}
}

func (m *Model) playbackDone(d PlaybackDone) {
	if d.Round != m.round || m.screen != GameScreen {
		return
	}
	if d.Err != nil {
		m.reportAudioError(d.Err)
	}
	if d.Replay || m.phase != PlaybackPhase {
		return
	}
	m.phase = GuessingPhase
	m.info(m.texts.Text("question." + m.mode.Kind().String()))
}

// reportAudioError shows a persistent message the first time the audio turns
// out to be unavailable. Other playback errors only raise an alert.
func (m *Model) reportAudioError(err error) {
	if errors.Is(err, oido.ErrAudioUnavailable) {
		if m.audioFailed {
			return
		}
		m.audioFailed = true
		log.Printf("audio: %v", err)
		msg := m.texts.Text("audio.unsupported")
		m.feedback = Feedback{Message: msg, Kind: IncorrectFeedback}
		m.alerts.AddNamed("audio", msg, Error)
		return
	}
	log.Printf("playback: %v", err)
	m.alerts.AddNamed("playback", err.Error(), Warning)
}

// info sets an informational prompt. Once the audio has failed, the failure
// message is shown instead.
func (m *Model) info(msg string) {
	if m.audioFailed {
		m.feedback = Feedback{Message: m.texts.Text("audio.unsupported"), Kind: IncorrectFeedback}
		return
	}
	m.feedback = Feedback{Message: msg, Kind: InfoFeedback}
}

// after sends f to the model goroutine once d has passed.
func (m *Model) after(d time.Duration, f func()) {
	time.AfterFunc(d, func() {
		TrySend(m.broker.ToModel, MsgToModel{Data: f})
	})
}

func (m *Model) playTone(n oido.Note, d time.Duration) {
	if err := m.engine.PlayTone(n.Frequency, d); err != nil {
		m.reportAudioError(err)
	}
}

func (m *Model) playChord(notes []oido.Note, d time.Duration) {
	if err := m.engine.PlayChord(oido.Frequencies(notes), d); err != nil {
		m.reportAudioError(err)
	}
}

// pulse marks the key pressed for the pressed duration.
func (m *Model) pulse(name string) {
	m.timers++
	id := m.timers
	m.pressed[name] = id
	m.after(m.prefs.Timing.Pressed, func() {
		if m.pressed[name] == id {
			delete(m.pressed, name)
		}
	})
}

func (m *Model) setFlash(name string, class KeyClass) {
	m.timers++
	m.flash = flash{note: name, class: class, id: m.timers}
	id, round := m.timers, m.round
	m.after(m.prefs.Timing.Flash, func() {
		if m.round == round && m.flash.id == id {
			m.flash = flash{}
		}
	})
}

// resolve ends the round. It is the only place where the score changes.
func (m *Model) resolve(correct bool, msg string) {
	if m.phase != GuessingPhase {
		return
	}
	m.phase = ResolvedPhase
	m.score.Total++
	if correct {
		m.score.Correct++
		m.result = Correct
		m.feedback = Feedback{Message: msg, Kind: CorrectFeedback}
		return
	}
	m.result = Incorrect
	m.feedback = Feedback{Message: msg, Kind: IncorrectFeedback}
}

func mark(set map[string]bool, notes []oido.Note) {
	for _, n := range notes {
		set[n.Name] = true
	}
}
