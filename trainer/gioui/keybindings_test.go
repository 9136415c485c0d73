package gioui

import (
	"testing"

	"gioui.org/io/key"
	"github.com/vsariola/oido"
)

func TestDefaultKeyBindingsCoverPiano(t *testing.T) {
	m, err := parseKeyMap(defaultKeyBindings, nil)
	if err != nil {
		t.Fatalf("parseKeyMap: %v", err)
	}
	for _, n := range oido.Notes {
		if m.Hint("Note"+n.Name) == "" {
			t.Errorf("note %s has no key binding", n.Name)
		}
	}
	for _, a := range []string{"Replay", "NextRound", "VerifyChord", "PlaySelection", "BackToMenu", "ToggleFullscreen", "Quit"} {
		if m.Hint(a) == "" {
			t.Errorf("action %s has no key binding", a)
		}
	}
}

func TestUserKeyBindingsOverride(t *testing.T) {
	m, err := parseKeyMap(defaultKeyBindings, []KeyBinding{
		{Key: "Z", Action: ""}, // unbind
		{Key: "R", Ctrl: true, Action: "Replay"},
	})
	if err != nil {
		t.Fatalf("parseKeyMap: %v", err)
	}
	if a, ok := m.Action(key.Event{Name: "Z"}); ok {
		t.Errorf("Z still bound to %s", a)
	}
	if m.Hint("NoteC4") != "" {
		t.Errorf("hint of unbound NoteC4 = %q, want empty", m.Hint("NoteC4"))
	}
	if a, _ := m.Action(key.Event{Name: "R", Modifiers: key.ModCtrl, State: key.Press}); a != "Replay" {
		t.Errorf("Ctrl+R = %q, want Replay", a)
	}
	if got := m.Hint("Replay"); got != "Ctrl+R" {
		t.Errorf("Replay hint = %q, want Ctrl+R", got)
	}
}

func TestDefaultKeyBindingsRejectUnknownFields(t *testing.T) {
	if _, err := parseKeyMap([]byte(`- {key: "Z", acton: "NoteC4"}`), nil); err == nil {
		t.Error("expected an error for an unknown field")
	}
}
