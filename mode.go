package oido

import (
	"fmt"
	"strings"
)

type (
	// Mode is one of the six game modes: what is played (Kind) crossed with
	// whether a reference tone is sounded before it.
	Mode int

	Kind int
)

const (
	SingleNoteReference Mode = iota
	SingleNoteAbsolute
	PatternReference
	PatternAbsolute
	ChordReference
	ChordAbsolute
)

const (
	SingleNote Kind = iota
	Pattern
	Chord
)

// Modes lists the modes in menu order.
var Modes = []Mode{
	SingleNoteReference, SingleNoteAbsolute,
	PatternReference, PatternAbsolute,
	ChordReference, ChordAbsolute,
}

var modeNames = [...]string{
	"single-note-reference",
	"single-note-absolute",
	"pattern-reference",
	"pattern-absolute",
	"chord-reference",
	"chord-absolute",
}

var kindNames = [...]string{"single-note", "pattern", "chord"}

func MakeMode(kind Kind, reference bool) Mode {
	m := Mode(kind) * 2
	if !reference {
		m++
	}
	return m
}

func (m Mode) Kind() Kind      { return Kind(m / 2) }
func (m Mode) Reference() bool { return m%2 == 0 }

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseMode parses the string form of a mode, e.g. "chord-absolute".
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (valid modes: %s)", s, strings.Join(modeNames[:], ", "))
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Set and Type make *Mode usable as a command line flag value.
func (m *Mode) Set(s string) error { return m.UnmarshalText([]byte(s)) }
func (m *Mode) Type() string       { return "mode" }
