package trainer_test

import (
	"testing"

	"github.com/vsariola/oido/trainer"
	"golang.org/x/text/language"
)

func TestMatchLanguage(t *testing.T) {
	cases := []struct {
		preferred []string
		want      language.Tag
	}{
		{nil, language.Spanish},
		{[]string{""}, language.Spanish},
		{[]string{"en"}, language.English},
		{[]string{"en_US.UTF-8"}, language.English},
		{[]string{"es-AR"}, language.Spanish},
		{[]string{"fi"}, language.Spanish},
		{[]string{"", "en_GB"}, language.English},
		{[]string{"C"}, language.Spanish},
	}
	for _, c := range cases {
		if got := trainer.MatchLanguage(c.preferred...); got != c.want {
			t.Errorf("MatchLanguage(%q) = %v, want %v", c.preferred, got, c.want)
		}
	}
}

func TestTexts(t *testing.T) {
	es, err := trainer.LoadTexts("es")
	if err != nil {
		t.Fatalf("LoadTexts: %v", err)
	}
	cases := []struct {
		key  string
		data any
		want string
	}{
		{"correct", nil, "¡Correcto!"},
		{"incorrect.pattern", struct{ Pattern []string }{[]string{"D", "F", "A"}}, "Incorrecto. El patrón era D - F - A."},
		{"incorrect.single-note", struct{ Note string }{"G4"}, "Incorrecto. La nota era G4."},
		{"score", struct{ Correct, Total int }{1, 2}, "Puntuación: 1 / 2"},
		{"listen.chord", struct{ Reference bool }{true}, "Escucha: Referencia y luego el acorde..."},
		{"listen.chord", struct{ Reference bool }{false}, "Escucha el acorde..."},
		{"no.such.key", nil, "no.such.key"},
	}
	for _, c := range cases {
		if got := es.Format(c.key, c.data); got != c.want {
			t.Errorf("Format(%q) = %q, want %q", c.key, got, c.want)
		}
	}
}

func TestTranslationsHaveAllKeys(t *testing.T) {
	en, err := trainer.LoadTexts("en")
	if err != nil {
		t.Fatalf("LoadTexts(en): %v", err)
	}
	if en.Text("correct") != "Correct!" {
		t.Errorf("english text = %q", en.Text("correct"))
	}
	if m := en.Missing(); len(m) > 0 {
		t.Errorf("english texts are missing %v", m)
	}
}
