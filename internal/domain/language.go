package domain

import (
	"time"

	"github.com/google/uuid"
)

// Language is one constructed language document. Every rule, word and
// template id inside it is scoped to the language.
type Language struct {
	ID        uuid.UUID
	Name      string
	Settings  LanguageSettings
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LanguageSettings are language-wide authoring choices consulted by the
// pronunciation engine. They apply to every rule, never to a single one.
type LanguageSettings struct {
	// IgnoreCase makes literal pattern comparison case-insensitive.
	IgnoreCase bool
	// DisableRegex switches pronunciation rules to literal prefix matching.
	DisableRegex bool
}

// GuideKind distinguishes the two ordered rule lists a language carries.
type GuideKind string

const (
	GuideKindPronunciation GuideKind = "PRONUNCIATION"
	GuideKindRomanization  GuideKind = "ROMANIZATION"
)

func (k GuideKind) String() string { return string(k) }

func (k GuideKind) IsValid() bool {
	switch k {
	case GuideKindPronunciation, GuideKindRomanization:
		return true
	}
	return false
}

// PhonologyGuide holds the per-guide options of a language.
type PhonologyGuide struct {
	LanguageID uuid.UUID
	Kind       GuideKind
	// Recursive applies every rule as a replace-all over the whole word
	// instead of prefix matching.
	Recursive bool
	// SyllableComposition marks syllable boundaries in pronounced output.
	SyllableComposition bool
	// Enabled is only meaningful for romanization; pronunciation is always on.
	Enabled   bool
	Syllables []string
}

// DefaultGuide returns the guide used when a language has never stored one.
func DefaultGuide(languageID uuid.UUID, kind GuideKind) PhonologyGuide {
	return PhonologyGuide{
		LanguageID: languageID,
		Kind:       kind,
		Enabled:    kind == GuideKindPronunciation,
	}
}
