package language

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/pronunciation"
	"github.com/heartmarshall/conlang-backend/pkg/ctxutil"
)

// CreateLanguage stores a new language together with its default
// pronunciation and romanization guides.
func (s *Service) CreateLanguage(ctx context.Context, input CreateLanguageInput) (*domain.Language, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var lang *domain.Language
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		lang, err = s.languages.Create(txCtx, domain.Language{
			ID:   uuid.New(),
			Name: strings.TrimSpace(input.Name),
			Settings: domain.LanguageSettings{
				IgnoreCase:   input.IgnoreCase,
				DisableRegex: input.DisableRegex,
			},
		})
		if err != nil {
			return fmt.Errorf("create language: %w", err)
		}

		for _, kind := range []domain.GuideKind{domain.GuideKindPronunciation, domain.GuideKindRomanization} {
			if err := s.languages.UpsertGuide(txCtx, domain.DefaultGuide(lang.ID, kind)); err != nil {
				return fmt.Errorf("create %s guide: %w", kind, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "language created",
		slog.String("language_id", lang.ID.String()),
		slog.String("name", lang.Name),
	)
	return lang, nil
}

// GetLanguage returns a language by id.
func (s *Service) GetLanguage(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	lang, err := s.languages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}
	return lang, nil
}

// ListLanguages returns every language ordered by name.
func (s *Service) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	langs, err := s.languages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	return langs, nil
}

// UpdateLanguage renames a language or changes its settings. Switching
// DisableRegex is refused while a stored rule of either guide would not
// compile in the resulting mode.
func (s *Service) UpdateLanguage(ctx context.Context, input UpdateLanguageInput) (*domain.Language, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Language
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.languages.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get language: %w", err)
		}

		next := *current
		if input.Name != nil {
			next.Name = strings.TrimSpace(*input.Name)
		}
		if input.IgnoreCase != nil {
			next.Settings.IgnoreCase = *input.IgnoreCase
		}
		if input.DisableRegex != nil {
			next.Settings.DisableRegex = *input.DisableRegex
		}

		if next.Settings.DisableRegex != current.Settings.DisableRegex {
			for _, kind := range []domain.GuideKind{domain.GuideKindPronunciation, domain.GuideKindRomanization} {
				g, err := s.languages.GetGuide(txCtx, input.ID, kind)
				if err != nil {
					return fmt.Errorf("get %s guide: %w", kind, err)
				}
				mode := pronunciation.ModeFor(next.Settings, g)
				if mode == pronunciation.ModeFor(current.Settings, g) {
					continue
				}
				if err := s.checkRules(txCtx, input.ID, g, mode, "disableRegex"); err != nil {
					return err
				}
			}
		}

		if updated, err = s.languages.Update(txCtx, next); err != nil {
			return fmt.Errorf("update language: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "language updated",
		slog.String("language_id", updated.ID.String()),
		slog.Bool("ignore_case", updated.Settings.IgnoreCase),
		slog.Bool("disable_regex", updated.Settings.DisableRegex),
	)
	return updated, nil
}

// DeleteLanguage removes a language and everything in it. Admin only.
func (s *Service) DeleteLanguage(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.languages.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete language: %w", err)
	}

	s.log.InfoContext(ctx, "language deleted", slog.String("language_id", id.String()))
	return nil
}
