package phonology

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/pronunciation"
)

// WordResult is the rendering of one word of a pronounced text.
type WordResult struct {
	Word     string
	Phoneme  string
	Elements []domain.PhonemeMatch
	Outcome  domain.PronunciationOutcome
}

// PronounceResult is the rendering of a whole text.
type PronounceResult struct {
	Text    string
	Phoneme string
	Words   []WordResult
}

// Unparseable counts the words the rules could not consume.
func (r PronounceResult) Unparseable() int {
	n := 0
	for _, w := range r.Words {
		if w.Outcome.Unparseable() {
			n++
		}
	}
	return n
}

// BuildEngine compiles a snapshot of one guide. The engine is immutable and
// may be shared between goroutines.
func (s *Service) BuildEngine(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) (*pronunciation.Engine, domain.PhonologyGuide, error) {
	if !kind.IsValid() {
		return nil, domain.PhonologyGuide{}, domain.NewValidationError("kind", "must be PRONUNCIATION or ROMANIZATION")
	}

	lang, err := s.languages.GetByID(ctx, langID)
	if err != nil {
		return nil, domain.PhonologyGuide{}, fmt.Errorf("get language: %w", err)
	}
	guide, err := s.languages.GetGuide(ctx, langID, kind)
	if err != nil {
		return nil, domain.PhonologyGuide{}, fmt.Errorf("get guide: %w", err)
	}
	rules, err := s.rules.List(ctx, langID, kind)
	if err != nil {
		return nil, domain.PhonologyGuide{}, fmt.Errorf("list rules: %w", err)
	}

	engine, err := pronunciation.New(rules, pronunciation.Config{
		Mode:                pronunciation.ModeFor(lang.Settings, guide),
		IgnoreCase:          lang.Settings.IgnoreCase,
		MaxDepth:            s.cfg.MaxRecursionDepth,
		Timeout:             s.cfg.RegexTimeout,
		SyllableComposition: guide.SyllableComposition,
		Syllables:           guide.Syllables,
	})
	if err != nil {
		return nil, domain.PhonologyGuide{}, fmt.Errorf("build %s engine: %w", kind, err)
	}
	return engine, guide, nil
}

// Pronounce renders text with one guide. Words the rules cannot consume are
// reported per word and never fail the call.
func (s *Service) Pronounce(ctx context.Context, input PronounceInput) (PronounceResult, error) {
	if err := input.Validate(); err != nil {
		return PronounceResult{}, err
	}

	engine, guide, err := s.BuildEngine(ctx, input.LanguageID, input.Kind)
	if err != nil {
		return PronounceResult{}, err
	}
	if !guide.Enabled {
		return PronounceResult{}, domain.NewValidationError("kind", fmt.Sprintf("%s is disabled for this language", input.Kind))
	}

	phoneme, results := engine.Pronounce(input.Text)
	out := PronounceResult{Text: input.Text, Phoneme: phoneme, Words: make([]WordResult, 0, len(results))}
	words := strings.Fields(input.Text)
	for i, res := range results {
		s.metrics.RecordPronunciation(input.Kind, res.Outcome)
		if res.Outcome.Unparseable() {
			s.log.DebugContext(ctx, "word not pronounceable",
				slog.String("language_id", input.LanguageID.String()),
				slog.String("kind", input.Kind.String()),
				slog.String("word", words[i]),
				slog.String("outcome", res.Outcome.String()),
			)
		}
		out.Words = append(out.Words, WordResult{
			Word:     words[i],
			Phoneme:  res.Phoneme(),
			Elements: res.Elements,
			Outcome:  res.Outcome,
		})
	}
	return out, nil
}
