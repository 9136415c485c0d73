package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vsariola/oido"
	"github.com/vsariola/oido/synth"
	"github.com/vsariola/oido/trainer"
)

func newDrillModel(t *testing.T) *trainer.Model {
	t.Helper()
	texts, err := trainer.LoadTexts("en")
	if err != nil {
		t.Fatalf("LoadTexts: %v", err)
	}
	broker := trainer.NewBroker()
	engine := synth.NewEngine(func() (oido.AudioContext, error) { return oido.NullAudioContext{}, nil })
	return trainer.NewModel(broker, engine, trainer.NewSequencer(broker, engine), trainer.DefaultPreferences(), texts)
}

func TestDrillAction(t *testing.T) {
	m := newDrillModel(t)
	m.SelectMode(oido.ChordAbsolute).Do()
	for _, tc := range []struct {
		line    string
		ok      bool
		enabled bool
	}{
		{"quit", true, true},
		{"  next ", true, false}, // not resolved yet
		{"c#4", true, true},
		{"F5", true, true},
		{"H4", false, false},
		{"pattern-absolute", true, true},
		{"menu", true, true},
		{"", false, false},
	} {
		action, ok := drillAction(m, tc.line)
		if ok != tc.ok {
			t.Errorf("drillAction(%q) ok = %v, want %v", tc.line, ok, tc.ok)
			continue
		}
		if action.Enabled() != tc.enabled {
			t.Errorf("drillAction(%q).Enabled() = %v, want %v", tc.line, action.Enabled(), tc.enabled)
		}
	}
}

func TestDrillQuitsOnEndOfInput(t *testing.T) {
	m := newDrillModel(t)
	var out bytes.Buffer
	if err := drill(m, strings.NewReader("bogus\nnext\n"), &out, oido.PatternReference); err != nil {
		t.Fatalf("drill: %v", err)
	}
	if !m.Quitted() {
		t.Error("model not quitted after end of input")
	}
	for _, want := range []string{"pattern-reference playback", "Score: 0 / 0", `unknown command "bogus"`, `"next" is not possible now`} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, out.String())
		}
	}
}
