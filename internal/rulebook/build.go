package rulebook

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/config"
	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/declension"
	"github.com/heartmarshall/conlang-backend/internal/engine/pronunciation"
)

// languageNamespace seeds the name-based language id, so the same rulebook
// always maps to the same language.
var languageNamespace = uuid.MustParse("5d3c1a8e-7b0f-4f2e-9a61-2c4d8e0b7f13")

// Language returns the rulebook as a domain language.
func (rb *Rulebook) Language() domain.Language {
	return domain.Language{
		ID:   uuid.NewSHA1(languageNamespace, []byte(rb.Name)),
		Name: rb.Name,
		Settings: domain.LanguageSettings{
			IgnoreCase:   rb.IgnoreCase,
			DisableRegex: rb.DisableRegex,
		},
	}
}

func (rb *Rulebook) guide(kind domain.GuideKind) (*Guide, bool) {
	switch kind {
	case domain.GuideKindPronunciation:
		return &rb.Pronunciation, true
	case domain.GuideKindRomanization:
		return rb.Romanization, rb.Romanization != nil
	}
	return nil, false
}

// PhonologyGuide returns the options of one guide. Romanization is enabled
// only when the rulebook defines it.
func (rb *Rulebook) PhonologyGuide(kind domain.GuideKind) domain.PhonologyGuide {
	langID := rb.Language().ID
	g, ok := rb.guide(kind)
	if !ok {
		return domain.DefaultGuide(langID, kind)
	}
	return domain.PhonologyGuide{
		LanguageID:          langID,
		Kind:                kind,
		Recursive:           g.Recursive,
		SyllableComposition: g.SyllableComposition,
		Enabled:             true,
		Syllables:           g.Syllables,
	}
}

// PronunciationRules returns the rules of one guide in file order.
func (rb *Rulebook) PronunciationRules(kind domain.GuideKind) []domain.PronunciationRule {
	g, ok := rb.guide(kind)
	if !ok {
		return nil
	}
	langID := rb.Language().ID
	out := make([]domain.PronunciationRule, len(g.Rules))
	for i, r := range g.Rules {
		out[i] = domain.PronunciationRule{
			ID:         r.ID,
			LanguageID: langID,
			Kind:       kind,
			Position:   i + 1,
			Pattern:    r.Pattern,
			Phoneme:    r.Phoneme,
		}
	}
	return out
}

// PronunciationEngine compiles one guide. Asking for romanization when the
// rulebook has none is a validation error.
func (rb *Rulebook) PronunciationEngine(kind domain.GuideKind, cfg config.EngineConfig) (*pronunciation.Engine, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be PRONUNCIATION or ROMANIZATION")
	}
	if _, ok := rb.guide(kind); !ok {
		return nil, domain.NewValidationError("kind", fmt.Sprintf("%s is not defined in %q", kind, rb.Name))
	}

	lang := rb.Language()
	guide := rb.PhonologyGuide(kind)
	engine, err := pronunciation.New(rb.PronunciationRules(kind), pronunciation.Config{
		Mode:                pronunciation.ModeFor(lang.Settings, guide),
		IgnoreCase:          lang.Settings.IgnoreCase,
		MaxDepth:            cfg.MaxRecursionDepth,
		Timeout:             cfg.RegexTimeout,
		SyllableComposition: guide.SyllableComposition,
		Syllables:           guide.Syllables,
	})
	if err != nil {
		return nil, fmt.Errorf("build %s engine: %w", kind, err)
	}
	return engine, nil
}

// WordClasses returns the classes with their values.
func (rb *Rulebook) WordClasses() []domain.WordClass {
	langID := rb.Language().ID
	out := make([]domain.WordClass, len(rb.Classes))
	for i, c := range rb.Classes {
		wc := domain.WordClass{
			ID:         c.ID,
			LanguageID: langID,
			Name:       c.Name,
			FreeText:   c.FreeText,
			TypeIDs:    c.Types,
		}
		for _, v := range c.Values {
			wc.Values = append(wc.Values, domain.WordClassValue{ID: v.ID, ClassID: c.ID, Value: v.Value})
		}
		out[i] = wc
	}
	return out
}

func (rb *Rulebook) partOfSpeech(typeID int64) (*PartOfSpeech, bool) {
	for i := range rb.PartsOfSpeech {
		if rb.PartsOfSpeech[i].ID == typeID {
			return &rb.PartsOfSpeech[i], true
		}
	}
	return nil, false
}

// PartOfSpeechByName finds a part of speech by its display name.
func (rb *Rulebook) PartOfSpeechByName(name string) (domain.PartOfSpeech, bool) {
	for _, p := range rb.PartsOfSpeech {
		if p.Name == name {
			return domain.PartOfSpeech{ID: p.ID, LanguageID: rb.Language().ID, Name: p.Name}, true
		}
	}
	return domain.PartOfSpeech{}, false
}

// Paradigm converts one part of speech to the engine input.
func (rb *Rulebook) Paradigm(typeID int64) (declension.Paradigm, error) {
	p, ok := rb.partOfSpeech(typeID)
	if !ok {
		return declension.Paradigm{}, fmt.Errorf("part of speech %d: %w", typeID, domain.ErrNotFound)
	}
	langID := rb.Language().ID

	out := declension.Paradigm{
		TypeID:         p.ID,
		TypeHasClasses: domain.TypeHasClasses(rb.WordClasses(), p.ID),
	}
	for i, t := range p.Templates {
		tpl := domain.DeclensionTemplate{
			ID:         t.ID,
			LanguageID: langID,
			TypeID:     p.ID,
			Name:       t.Name,
			Notes:      t.Notes,
			Mandatory:  t.Mandatory,
			Position:   i + 1,
			Singleton:  t.Singleton,
		}
		if t.Singleton && t.Key != "" {
			tpl.CombinationID = domain.ParseCombinationID(t.Key)
		}
		for j, d := range t.Dimensions {
			tpl.Dimensions = append(tpl.Dimensions, domain.DeclensionDimension{
				ID:         d.ID,
				TemplateID: t.ID,
				Name:       d.Name,
				Mandatory:  d.Mandatory,
				Position:   j + 1,
			})
		}
		out.Templates = append(out.Templates, tpl)
	}
	for i, r := range p.Rules {
		out.Rules = append(out.Rules, r.toDomain(langID, p.ID, i+1))
	}
	for _, s := range p.Suppressed {
		out.Settings = append(out.Settings, domain.CombinationSetting{
			TypeID:        p.ID,
			CombinationID: domain.ParseCombinationID(s),
			Suppressed:    true,
		})
	}
	return out, nil
}

func (r Rule) toDomain(langID uuid.UUID, typeID int64, position int) domain.DeclensionRule {
	out := domain.DeclensionRule{
		ID:                r.ID,
		LanguageID:        langID,
		TypeID:            typeID,
		CombinationID:     domain.ParseCombinationID(r.Combination),
		Name:              r.Name,
		Pattern:           r.Pattern,
		Position:          position,
		ApplyToAllClasses: r.ApplyToAllClasses,
	}
	for classID, valueID := range r.Classes {
		out.ClassFilters = append(out.ClassFilters, domain.ClassFilter{ClassID: classID, ValueID: valueID})
	}
	slices.SortFunc(out.ClassFilters, func(a, b domain.ClassFilter) int { return cmp.Compare(a.ClassID, b.ClassID) })
	for _, t := range r.Transforms {
		out.Transforms = append(out.Transforms, domain.Transform{Pattern: t.Pattern, Replacement: t.Replacement})
	}
	return out
}

// DeclensionEngine compiles the paradigm of one part of speech. typeID 0
// yields the empty paradigm used for untyped words.
func (rb *Rulebook) DeclensionEngine(typeID int64, cfg config.EngineConfig) (*declension.Engine, error) {
	var p declension.Paradigm
	if typeID != 0 {
		var err error
		if p, err = rb.Paradigm(typeID); err != nil {
			return nil, err
		}
	}
	engine, err := declension.New(p, declension.Config{Timeout: cfg.RegexTimeout})
	if err != nil {
		return nil, fmt.Errorf("build paradigm %d: %w", typeID, err)
	}
	return engine, nil
}

// DomainWords returns every word in file order.
func (rb *Rulebook) DomainWords() []domain.Word {
	langID := rb.Language().ID
	out := make([]domain.Word, len(rb.Words))
	for i, w := range rb.Words {
		out[i] = w.toDomain(langID)
	}
	return out
}

func (w Word) toDomain(langID uuid.UUID) domain.Word {
	out := domain.Word{ID: w.ID, LanguageID: langID, Value: w.Value, Classes: map[int64]int64{}}
	if w.Type != nil {
		typeID := *w.Type
		out.TypeID = &typeID
	}
	for classID, valueID := range w.Classes {
		out.Classes[classID] = valueID
	}
	return out
}

// Forms returns the overrides stored for a word, ordered by combination id.
func (rb *Rulebook) Forms(wordID int64) domain.WordForms {
	for _, w := range rb.Words {
		if w.ID != wordID {
			continue
		}
		out := make(domain.WordForms, 0, len(w.Forms))
		for key, value := range w.Forms {
			out = append(out, domain.DeclensionNode{
				WordID:        w.ID,
				CombinationID: domain.ParseCombinationID(key),
				Value:         value,
			})
		}
		slices.SortFunc(out, func(a, b domain.DeclensionNode) int {
			return cmp.Compare(a.CombinationID, b.CombinationID)
		})
		return out
	}
	return nil
}

// FindWord looks a word up by its value. The first match in file order wins.
func (rb *Rulebook) FindWord(value string) (domain.Word, domain.WordForms, bool) {
	for _, w := range rb.Words {
		if w.Value == value {
			return w.toDomain(rb.Language().ID), rb.Forms(w.ID), true
		}
	}
	return domain.Word{}, nil, false
}
