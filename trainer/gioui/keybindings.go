package gioui

import (
	"bytes"
	_ "embed"
	"fmt"
	"log"
	"strings"

	"gioui.org/io/key"
	"github.com/vsariola/oido"
	"github.com/vsariola/oido/trainer"
	"gopkg.in/yaml.v3"
)

type (
	// KeyBinding binds a key with modifiers to an action name. Note actions
	// are "Note" followed by the note name, mode actions "Mode:" followed by
	// the mode name. An empty action unbinds the key.
	KeyBinding struct {
		Key                                        string
		Shortcut, Ctrl, Command, Shift, Alt, Super bool
		Action                                     string
	}

	keyMap struct {
		actions map[key.Event]string
		hints   map[string]string // action -> human readable key of its last binding
	}
)

//go:embed keybindings.yml
var defaultKeyBindings []byte

var keyBindings = func() keyMap {
	var user []KeyBinding
	exists, err := trainer.ReadCustomConfigYml("keybindings.yml", &user)
	if exists && err != nil {
		log.Printf("keybindings.yml: %v", err)
		user = nil
	}
	m, err := parseKeyMap(defaultKeyBindings, user)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal default keybindings: %w", err))
	}
	return m
}()

// parseKeyMap decodes the default bindings and applies the user bindings on
// top of them; later bindings of the same key win.
func parseKeyMap(defaults []byte, user []KeyBinding) (keyMap, error) {
	var bindings []KeyBinding
	dec := yaml.NewDecoder(bytes.NewReader(defaults))
	dec.KnownFields(true)
	if err := dec.Decode(&bindings); err != nil {
		return keyMap{}, err
	}
	m := keyMap{actions: map[key.Event]string{}, hints: map[string]string{}}
	for _, kb := range append(bindings, user...) {
		m.bind(kb)
	}
	return m, nil
}

func (m keyMap) bind(kb KeyBinding) {
	ev := key.Event{Name: key.Name(kb.Key), Modifiers: kb.modifiers(), State: key.Press}
	if old, ok := m.actions[ev]; ok && m.hints[old] == kb.text() {
		delete(m.hints, old)
	}
	if kb.Action == "" {
		delete(m.actions, ev)
		return
	}
	m.actions[ev] = kb.Action
	m.hints[kb.Action] = kb.text()
}

// Action returns the action bound to the key press.
func (m keyMap) Action(e key.Event) (string, bool) {
	a, ok := m.actions[key.Event{Name: e.Name, Modifiers: e.Modifiers, State: key.Press}]
	return a, ok
}

// Hint returns a short text like "Ctrl+Q" for the key bound to action.
func (m keyMap) Hint(action string) string { return m.hints[action] }

func (kb KeyBinding) modifiers() key.Modifiers {
	var mods key.Modifiers
	for _, f := range []struct {
		on  bool
		mod key.Modifiers
	}{
		{kb.Shortcut, key.ModShortcut},
		{kb.Ctrl, key.ModCtrl},
		{kb.Command, key.ModCommand},
		{kb.Shift, key.ModShift},
		{kb.Alt, key.ModAlt},
		{kb.Super, key.ModSuper},
	} {
		if f.on {
			mods |= f.mod
		}
	}
	return mods
}

func (kb KeyBinding) text() string {
	mods := strings.ReplaceAll(kb.modifiers().String(), "-", "+")
	if mods == "" {
		return kb.Key
	}
	return mods + "+" + kb.Key
}

// withHint appends the key bound to action to a button label.
func withHint(label, action string) string {
	if h := keyBindings.Hint(action); h != "" {
		return label + " (" + h + ")"
	}
	return label
}

// KeyEvent runs the action bound to the key event, if there is one.
func (t *Trainer) KeyEvent(e key.Event) {
	if e.State == key.Release {
		return
	}
	action, ok := keyBindings.Action(e)
	if !ok {
		return
	}
	switch action {
	case "Replay":
		t.Replay().Do()
	case "NextRound":
		t.NextRound().Do()
	case "VerifyChord":
		t.VerifyChord().Do()
	case "PlaySelection":
		t.PlaySelection().Do()
	case "BackToMenu":
		t.BackToMenu().Do()
	case "ToggleFullscreen":
		t.ToggleFullscreen().Do()
	case "ExactPatternOctaveToggle":
		t.ExactPatternOctave().Toggle()
	case "Quit":
		t.Quit().Do()
	default:
		if name, ok := strings.CutPrefix(action, "Note"); ok {
			t.PressKey(name).Do()
		} else if name, ok := strings.CutPrefix(action, "Mode:"); ok {
			if mode, err := oido.ParseMode(name); err == nil {
				t.SelectMode(mode).Do()
			}
		}
	}
}
