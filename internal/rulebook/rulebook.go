// Package rulebook reads a whole language (phonology guides, declension
// paradigms and a word list) from a single YAML file so rules can be
// exercised without a database.
package rulebook

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/conlang-backend/internal/domain"
)

// Rulebook is the YAML document.
type Rulebook struct {
	Name          string         `yaml:"name"`
	IgnoreCase    bool           `yaml:"ignore_case"`
	DisableRegex  bool           `yaml:"disable_regex"`
	Pronunciation Guide          `yaml:"pronunciation"`
	Romanization  *Guide         `yaml:"romanization,omitempty"`
	Classes       []Class        `yaml:"classes"`
	PartsOfSpeech []PartOfSpeech `yaml:"parts_of_speech"`
	Words         []Word         `yaml:"words"`
}

// Guide is one ordered list of phoneme rules with its options. Rule order
// in the file is the priority order.
type Guide struct {
	Recursive           bool          `yaml:"recursive"`
	SyllableComposition bool          `yaml:"syllable_composition"`
	Syllables           []string      `yaml:"syllables"`
	Rules               []PhonemeRule `yaml:"rules"`
}

type PhonemeRule struct {
	ID      int64  `yaml:"id"`
	Pattern string `yaml:"pattern"`
	Phoneme string `yaml:"phoneme"`
}

type Class struct {
	ID       int64        `yaml:"id"`
	Name     string       `yaml:"name"`
	FreeText bool         `yaml:"free_text"`
	Types    []int64      `yaml:"types"`
	Values   []ClassValue `yaml:"values"`
}

type ClassValue struct {
	ID    int64  `yaml:"id"`
	Value string `yaml:"value"`
}

type PartOfSpeech struct {
	ID        int64      `yaml:"id"`
	Name      string     `yaml:"name"`
	Templates []Template `yaml:"templates"`
	// Suppressed lists combination ids excluded from the paradigm.
	Suppressed []string `yaml:"suppressed"`
	// Rules in file order; the first matching rule of a combination wins.
	Rules []Rule `yaml:"rules"`
}

type Template struct {
	ID        int64  `yaml:"id"`
	Name      string `yaml:"name"`
	Notes     string `yaml:"notes"`
	Mandatory bool   `yaml:"mandatory"`
	Singleton bool   `yaml:"singleton"`
	// Key overrides the combination id of a singleton template.
	Key        string      `yaml:"key"`
	Dimensions []Dimension `yaml:"dimensions"`
}

type Dimension struct {
	ID        int64  `yaml:"id"`
	Name      string `yaml:"name"`
	Mandatory bool   `yaml:"mandatory"`
}

type Rule struct {
	ID                int64           `yaml:"id"`
	Name              string          `yaml:"name"`
	Combination       string          `yaml:"combination"`
	Pattern           string          `yaml:"pattern"`
	ApplyToAllClasses bool            `yaml:"apply_to_all_classes"`
	Classes           map[int64]int64 `yaml:"classes"`
	Transforms        []Transform     `yaml:"transforms"`
}

type Transform struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

type Word struct {
	ID      int64           `yaml:"id"`
	Value   string          `yaml:"value"`
	Type    *int64          `yaml:"type"`
	Classes map[int64]int64 `yaml:"classes"`
	// Forms are overrides keyed by combination id.
	Forms map[string]string `yaml:"forms"`
}

// Load reads and validates a rulebook file.
func Load(path string) (*Rulebook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rulebook: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a rulebook. Unknown keys are rejected so a
// misspelled option does not silently fall back to its default.
func Parse(data []byte) (*Rulebook, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var rb Rulebook
	if err := dec.Decode(&rb); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewValidationError("rulebook", "empty document")
		}
		return nil, fmt.Errorf("parse rulebook: %w", err)
	}
	if err := rb.Validate(); err != nil {
		return nil, err
	}
	return &rb, nil
}

// Validate checks references and id uniqueness. Pattern syntax is left to
// the engines, which report every bad rule at once.
func (rb *Rulebook) Validate() error {
	var errs domain.FieldErrors

	if rb.Name == "" {
		errs.Add("name", "required")
	}

	// Every entity shares one id space per language.
	ids := make(map[int64]string)
	claim := func(field string, id int64) {
		if id < 1 {
			errs.Add(field, "id must be >= 1")
			return
		}
		if prev, ok := ids[id]; ok {
			errs.Add(field, fmt.Sprintf("id %d already used by %s", id, prev))
			return
		}
		ids[id] = field
	}

	for i, r := range rb.Pronunciation.Rules {
		claim(fmt.Sprintf("pronunciation.rules[%d]", i), r.ID)
	}
	if rb.Romanization != nil {
		for i, r := range rb.Romanization.Rules {
			claim(fmt.Sprintf("romanization.rules[%d]", i), r.ID)
		}
	}

	classValues := make(map[int64]map[int64]bool)
	for i, c := range rb.Classes {
		field := fmt.Sprintf("classes[%d]", i)
		claim(field, c.ID)
		if c.Name == "" {
			errs.Add(field+".name", "required")
		}
		classValues[c.ID] = make(map[int64]bool)
		for j, v := range c.Values {
			claim(fmt.Sprintf("%s.values[%d]", field, j), v.ID)
			classValues[c.ID][v.ID] = true
		}
	}
	checkClasses := func(field string, m map[int64]int64) {
		for classID, valueID := range m {
			values, ok := classValues[classID]
			switch {
			case !ok:
				errs.Add(field, fmt.Sprintf("unknown class %d", classID))
			case !values[valueID]:
				errs.Add(field, fmt.Sprintf("class %d has no value %d", classID, valueID))
			}
		}
	}

	types := make(map[int64]bool)
	for i, p := range rb.PartsOfSpeech {
		field := fmt.Sprintf("parts_of_speech[%d]", i)
		claim(field, p.ID)
		types[p.ID] = true
		if p.Name == "" {
			errs.Add(field+".name", "required")
		}
		for j, t := range p.Templates {
			tf := fmt.Sprintf("%s.templates[%d]", field, j)
			claim(tf, t.ID)
			if t.Singleton && len(t.Dimensions) > 0 {
				errs.Add(tf, "singleton template cannot have dimensions")
			}
			for k, d := range t.Dimensions {
				claim(fmt.Sprintf("%s.dimensions[%d]", tf, k), d.ID)
			}
		}
		for j, r := range p.Rules {
			rf := fmt.Sprintf("%s.rules[%d]", field, j)
			claim(rf, r.ID)
			if r.Combination == "" {
				errs.Add(rf+".combination", "required")
			}
			checkClasses(rf+".classes", r.Classes)
		}
	}

	for i, c := range rb.Classes {
		for _, t := range c.Types {
			if !types[t] {
				errs.Add(fmt.Sprintf("classes[%d].types", i), fmt.Sprintf("unknown part of speech %d", t))
			}
		}
	}

	for i, w := range rb.Words {
		field := fmt.Sprintf("words[%d]", i)
		claim(field, w.ID)
		if w.Value == "" {
			errs.Add(field+".value", "required")
		}
		if w.Type != nil && !types[*w.Type] {
			errs.Add(field+".type", fmt.Sprintf("unknown part of speech %d", *w.Type))
		}
		checkClasses(field+".classes", w.Classes)
	}

	return errs.Err()
}
