package trainer_test

import (
	"testing"
	"time"

	"github.com/vsariola/oido/trainer"
)

func TestAlertsExpire(t *testing.T) {
	var a trainer.Alerts
	a.Add("hello", trainer.Info)
	if !a.Update(10 * time.Millisecond) {
		t.Errorf("a new alert should be fading in")
	}
	a.Update(5 * time.Second)
	for range 10 {
		a.Update(50 * time.Millisecond)
	}
	for _, alert := range a.Iterate {
		t.Errorf("alert %q should have expired", alert.Message)
	}
}

func TestNamedAlertsAreReplaced(t *testing.T) {
	var a trainer.Alerts
	a.AddNamed("midi", "first", trainer.Warning)
	a.AddNamed("midi", "second", trainer.Error)
	a.Add("other", trainer.Info)
	var got []string
	for m := range a.Messages() {
		got = append(got, m)
	}
	if len(got) != 2 || got[0] != "second" || got[1] != "other" {
		t.Errorf("messages = %v, want [second other]", got)
	}
}

func TestDefaultPreferences(t *testing.T) {
	p := trainer.DefaultPreferences()
	if p.PatternLength != 3 || p.ChordRoots != 13 || p.ExactPatternOctave {
		t.Errorf("unexpected defaults %+v", p)
	}
	if p.Timing.LeadIn != 500*time.Millisecond || p.Timing.Chord != time.Second || p.Timing.Pressed != 200*time.Millisecond {
		t.Errorf("unexpected timing %+v", p.Timing)
	}
}
