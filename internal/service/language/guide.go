package language

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/pronunciation"
)

// GetGuide returns the options of one guide of a language.
func (s *Service) GetGuide(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) (domain.PhonologyGuide, error) {
	if !kind.IsValid() {
		return domain.PhonologyGuide{}, domain.NewValidationError("kind", "must be PRONUNCIATION or ROMANIZATION")
	}
	if _, err := s.languages.GetByID(ctx, langID); err != nil {
		return domain.PhonologyGuide{}, fmt.Errorf("get language: %w", err)
	}

	g, err := s.languages.GetGuide(ctx, langID, kind)
	if err != nil {
		return domain.PhonologyGuide{}, fmt.Errorf("get guide: %w", err)
	}
	return g, nil
}

// UpdateGuide changes the options of one guide. Toggling Recursive switches
// the matching mode, so it is refused while a stored rule would not compile
// in the new mode.
func (s *Service) UpdateGuide(ctx context.Context, input UpdateGuideInput) (domain.PhonologyGuide, error) {
	if err := input.Validate(); err != nil {
		return domain.PhonologyGuide{}, err
	}

	var g domain.PhonologyGuide
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		lang, err := s.languages.GetByID(txCtx, input.LanguageID)
		if err != nil {
			return fmt.Errorf("get language: %w", err)
		}
		if g, err = s.languages.GetGuide(txCtx, input.LanguageID, input.Kind); err != nil {
			return fmt.Errorf("get guide: %w", err)
		}
		before := pronunciation.ModeFor(lang.Settings, g)

		if input.Recursive != nil {
			g.Recursive = *input.Recursive
		}
		if input.SyllableComposition != nil {
			g.SyllableComposition = *input.SyllableComposition
		}
		if input.Enabled != nil {
			g.Enabled = *input.Enabled
		}
		if input.Syllables != nil {
			g.Syllables = make([]string, 0, len(*input.Syllables))
			for _, syl := range *input.Syllables {
				g.Syllables = append(g.Syllables, strings.TrimSpace(syl))
			}
		}

		if mode := pronunciation.ModeFor(lang.Settings, g); mode != before {
			if err := s.checkRules(txCtx, input.LanguageID, g, mode, "recursive"); err != nil {
				return err
			}
		}

		if err := s.languages.UpsertGuide(txCtx, g); err != nil {
			return fmt.Errorf("update guide: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.PhonologyGuide{}, err
	}

	s.log.InfoContext(ctx, "guide updated",
		slog.String("language_id", input.LanguageID.String()),
		slog.String("kind", input.Kind.String()),
		slog.Bool("recursive", g.Recursive),
		slog.Int("syllables", len(g.Syllables)),
	)
	return g, nil
}
