package trainer

import (
	"bytes"
	"embed"
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type (
	// Texts holds every user-facing string as a text/template, with the sprig
	// functions available. Keys missing from a translation fall back to the
	// default (Spanish) bundle.
	Texts struct {
		Language  language.Tag
		templates map[string]*template.Template
		missing   []string
	}

	textBundle struct {
		Language string            `yaml:"language"`
		Texts    map[string]string `yaml:"texts"`
	}
)

//go:embed texts/*.yml
var textFiles embed.FS

// bundles lists the available translations, the first one being the default.
var bundles = []language.Tag{language.Spanish, language.English}

var bundleMatcher = language.NewMatcher(bundles)

// MatchLanguage picks the best available translation for the given locale
// strings, e.g. "en", "es-AR" or "en_US.UTF-8". Empty strings are skipped.
func MatchLanguage(preferred ...string) language.Tag {
	var tags []language.Tag
	for _, p := range preferred {
		p, _, _ = strings.Cut(p, ".")
		p = strings.ReplaceAll(p, "_", "-")
		if p == "" || p == "C" || p == "POSIX" {
			continue
		}
		if t, err := language.Parse(p); err == nil {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return bundles[0]
	}
	_, index, _ := bundleMatcher.Match(tags...)
	return bundles[index]
}

// LoadTexts loads the translation best matching the preferred locales.
func LoadTexts(preferred ...string) (*Texts, error) {
	t := &Texts{Language: MatchLanguage(preferred...), templates: map[string]*template.Template{}}
	if err := t.load(bundles[0]); err != nil {
		return nil, err
	}
	if t.Language != bundles[0] {
		defaults := maps.Clone(t.templates)
		if err := t.load(t.Language); err != nil {
			return t, err
		}
		for key := range defaults {
			if defaults[key] == t.templates[key] {
				t.missing = append(t.missing, key)
			}
		}
		slices.Sort(t.missing)
	}
	return t, nil
}

// Missing lists the keys the chosen translation does not define; the default
// texts are used for them.
func (t *Texts) Missing() []string {
	return t.missing
}

func (t *Texts) load(tag language.Tag) error {
	base, _ := tag.Base()
	name := "texts/" + base.String() + ".yml"
	data, err := textFiles.ReadFile(name)
	if err != nil {
		return fmt.Errorf("no texts for %v: %w", tag, err)
	}
	var bundle textBundle
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&bundle); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	for key, src := range bundle.Texts {
		tmpl, err := template.New(key).Funcs(sprig.TxtFuncMap()).Parse(src)
		if err != nil {
			return fmt.Errorf("%s: text %q: %w", name, key, err)
		}
		t.templates[key] = tmpl
	}
	return nil
}

// Format executes the template under key. Missing keys and failing templates
// return the key itself, so a broken translation is visible but harmless.
func (t *Texts) Format(key string, data any) string {
	tmpl, ok := t.templates[key]
	if !ok {
		return key
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return key
	}
	return sb.String()
}

// Text returns a text that takes no parameters.
func (t *Texts) Text(key string) string {
	return t.Format(key, nil)
}
