package trainer

import (
	"iter"
	"time"
)

type (
	// Alerts holds the short notifications shown on top of the game, e.g.
	// when fullscreen could not be entered or a MIDI device failed to open.
	Alerts struct {
		alerts []Alert
	}

	Alert struct {
		Name      string
		Priority  AlertPriority
		Message   string
		Duration  time.Duration
		FadeLevel float64
	}

	AlertPriority int
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

const (
	defaultAlertDuration = 3 * time.Second
	alertFadeTime        = 150 * time.Millisecond
)

// Add shows a new alert with the default duration.
func (m *Alerts) Add(message string, priority AlertPriority) {
	m.AddAlert(Alert{
		Priority: priority,
		Message:  message,
		Duration: defaultAlertDuration,
	})
}

// AddNamed replaces the alert with the same name, if there is one.
func (m *Alerts) AddNamed(name, message string, priority AlertPriority) {
	m.AddAlert(Alert{
		Name:     name,
		Priority: priority,
		Message:  message,
		Duration: defaultAlertDuration,
	})
}

func (m *Alerts) AddAlert(a Alert) {
	if a.Name != "" {
		for i := range m.alerts {
			if m.alerts[i].Name == a.Name {
				a.FadeLevel = m.alerts[i].FadeLevel
				m.alerts[i] = a
				return
			}
		}
	}
	m.alerts = append(m.alerts, a)
}

// Update advances the alerts by dt. It returns true while some alert is still
// fading in or out, i.e. the GUI should redraw soon.
func (m *Alerts) Update(dt time.Duration) (animating bool) {
	fade := float64(dt) / float64(alertFadeTime)
	live := m.alerts[:0]
	for _, a := range m.alerts {
		if a.Duration > 0 {
			a.Duration -= dt
			if a.FadeLevel < 1 {
				a.FadeLevel = min(1, a.FadeLevel+fade)
				animating = true
			}
		} else {
			a.FadeLevel -= fade
			animating = true
		}
		if a.Duration > 0 || a.FadeLevel > 0 {
			live = append(live, a)
		}
	}
	clear(m.alerts[len(live):])
	m.alerts = live
	return animating
}

// Iterate yields the alerts that are currently visible, newest last.
func (m *Alerts) Iterate(yield func(index int, alert Alert) bool) {
	for i, a := range m.alerts {
		if !yield(i, a) {
			return
		}
	}
}

// Messages returns the messages of all current alerts.
func (m *Alerts) Messages() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, a := range m.alerts {
			if !yield(a.Message) {
				return
			}
		}
	}
}
