package domain

import (
	"regexp"

	"github.com/google/uuid"
)

// PronunciationRule maps an orthographic pattern to its phonemic (or
// romanized) output. Priority is Position: lower positions are tried first.
type PronunciationRule struct {
	ID         int64
	LanguageID uuid.UUID
	Kind       GuideKind
	Position   int
	Pattern    string
	Phoneme    string
}

// AnchoredToStart reports whether the pattern may only match at the start
// of a word.
func (r PronunciationRule) AnchoredToStart() bool {
	return len(r.Pattern) > 0 && r.Pattern[0] == '^'
}

// PhonemeMatch is one token of a pronounced word: the slice of the word
// that was consumed and the phoneme produced for it.
type PhonemeMatch struct {
	Matched string
	Phoneme string
	RuleID  int64
}

// PronunciationOutcome classifies how a pronunciation attempt ended.
type PronunciationOutcome string

const (
	// OutcomeMatched means the rules consumed the whole word.
	OutcomeMatched PronunciationOutcome = "MATCHED"
	// OutcomeEmpty means the input was blank or no rules are defined.
	OutcomeEmpty PronunciationOutcome = "EMPTY"
	// OutcomeNoMatch means the word is unparseable with the current rules.
	OutcomeNoMatch PronunciationOutcome = "NO_MATCH"
	// OutcomeDepthExceeded means the recursion ceiling was hit.
	OutcomeDepthExceeded PronunciationOutcome = "DEPTH_EXCEEDED"
	// OutcomeTimeout means a rule pattern exceeded its match time budget.
	OutcomeTimeout PronunciationOutcome = "TIMEOUT"
)

func (o PronunciationOutcome) String() string { return string(o) }

// Unparseable is true for every outcome that leaves a non-blank word
// without a pronunciation.
func (o PronunciationOutcome) Unparseable() bool {
	switch o {
	case OutcomeNoMatch, OutcomeDepthExceeded, OutcomeTimeout:
		return true
	}
	return false
}

var lookaroundRe = regexp.MustCompile(`\((\?=|\?!|\?<=|\?<!).+?\)`)

// IsLookaround reports whether a pattern uses lookahead or lookbehind.
// Such patterns behave differently once the engine slices the word, so the
// editor warns about them.
func IsLookaround(pattern string) bool {
	return lookaroundRe.MatchString(pattern)
}
