package trainer

import "log"

// Fullscreener is implemented by the window. SetFullscreen may fail, e.g. when
// the platform does not allow it; the round is not affected by the failure.
type Fullscreener interface {
	SetFullscreen(on bool) error
	Fullscreen() bool
}

func (m *Model) SetFullscreener(f Fullscreener) { m.fullscreener = f }

// Fullscreen returns a Bool for the fullscreen state of the window. It is
// disabled when there is no window to control.
func (m *Model) Fullscreen() Bool { return MakeBool((*fullscreen)(m)) }

type fullscreen Model

func (m *fullscreen) Value() bool   { return m.fullscreener != nil && m.fullscreener.Fullscreen() }
func (m *fullscreen) Enabled() bool { return m.fullscreener != nil }
func (m *fullscreen) SetValue(on bool) {
	if err := m.fullscreener.SetFullscreen(on); err != nil {
		log.Printf("fullscreen: %v", err)
		m.alerts.AddNamed("fullscreen", m.texts.Format("fullscreen.failed", struct{ Error error }{err}), Warning)
	}
}

// toggleFullscreen
type toggleFullscreen Model

func (m *Model) ToggleFullscreen() Action { return MakeAction((*toggleFullscreen)(m)) }
func (m *toggleFullscreen) Enabled() bool { return m.fullscreener != nil }
func (m *toggleFullscreen) Do()           { (*Model)(m).Fullscreen().Toggle() }

// ExactPatternOctave controls whether the octave must match in the pattern
// modes. It takes effect from the next key press.
func (m *Model) ExactPatternOctave() Bool { return MakeBoolFromPtr(&m.prefs.ExactPatternOctave) }
