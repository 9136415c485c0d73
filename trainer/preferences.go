package trainer

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v2"
)

type (
	Preferences struct {
		Window             WindowPreferences
		Language           string `yaml:",omitempty"`
		PatternLength      int
		ChordRoots         int
		ExactPatternOctave bool
		MIDIInput          string `yaml:"midiinput,omitempty"`
		Timing             Timing

		YmlError error `yaml:"-"`
	}

	WindowPreferences struct {
		Width     int
		Height    int
		Maximized bool `yaml:",omitempty"`
	}

	// Timing holds every delay and tone length used when playing a round.
	// Gaps are measured from the start of the previous tone.
	Timing struct {
		LeadIn             time.Duration
		ReferenceTone      time.Duration
		ReferenceGap       time.Duration
		ChordReferenceTone time.Duration
		ChordReferenceGap  time.Duration
		Tone               time.Duration
		PatternNote        time.Duration
		PatternGap         time.Duration
		Chord              time.Duration
		Selection          time.Duration
		KeyTone            time.Duration
		Pressed            time.Duration
		Flash              time.Duration
	}
)

const configDirName = "oido"

//go:embed preferences.yml
var defaultPreferencesYaml []byte

// DefaultPreferences returns the preferences embedded in the binary.
func DefaultPreferences() Preferences {
	var preferences Preferences
	err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

// ReadCustomConfigYml modifies the target argument, i.e. needs a pointer
func ReadCustomConfigYml(filename string, target interface{}) (exists bool, err error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return false, err
	}
	path := filepath.Join(configDir, configDirName, filename)
	bytes, err2 := os.ReadFile(path)
	if err2 != nil {
		return false, err2
	}
	err = yaml.Unmarshal(bytes, target)
	return true, err
}

// MakePreferences loads the defaults and overlays the user's
// preferences.yml, if there is one. A broken user file is reported in
// YmlError; the values that could be read are still used.
func MakePreferences() Preferences {
	preferences := DefaultPreferences()
	exists, err := ReadCustomConfigYml("preferences.yml", &preferences)
	if exists {
		preferences.YmlError = err
	}
	preferences.sanitize()
	return preferences
}

func (p *Preferences) sanitize() {
	p.PatternLength = max(p.PatternLength, 1)
	if p.ChordRoots < 1 || p.ChordRoots > numNotes {
		p.ChordRoots = numNotes
	}
}
