package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
)

// DeleteTypeResult reports what a part of speech deletion touched besides
// the type itself.
type DeleteTypeResult struct {
	WordsDetached int64
	FormsDeleted  int64
}

// CreatePartOfSpeech adds a part of speech with a freshly allocated id.
func (s *Service) CreatePartOfSpeech(ctx context.Context, input CreatePartOfSpeechInput) (domain.PartOfSpeech, error) {
	if err := input.Validate(); err != nil {
		return domain.PartOfSpeech{}, err
	}

	var pos domain.PartOfSpeech
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		id, err := s.nextID(txCtx, input.LanguageID)
		if err != nil {
			return err
		}
		pos = domain.PartOfSpeech{
			ID:         id,
			LanguageID: input.LanguageID,
			Name:       strings.TrimSpace(input.Name),
			Notes:      input.Notes,
		}
		if err := s.lexicon.CreatePartOfSpeech(txCtx, pos); err != nil {
			return fmt.Errorf("create part of speech: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.PartOfSpeech{}, err
	}

	s.log.InfoContext(ctx, "part of speech created",
		slog.String("language_id", input.LanguageID.String()),
		slog.Int64("type_id", pos.ID),
		slog.String("name", pos.Name),
	)
	return pos, nil
}

// GetPartOfSpeech returns one part of speech.
func (s *Service) GetPartOfSpeech(ctx context.Context, langID uuid.UUID, id int64) (domain.PartOfSpeech, error) {
	pos, err := s.lexicon.GetPartOfSpeech(ctx, langID, id)
	if err != nil {
		return domain.PartOfSpeech{}, fmt.Errorf("get part of speech: %w", err)
	}
	return pos, nil
}

// ListPartsOfSpeech returns every part of speech of a language.
func (s *Service) ListPartsOfSpeech(ctx context.Context, langID uuid.UUID) ([]domain.PartOfSpeech, error) {
	if _, err := s.languages.GetByID(ctx, langID); err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}
	out, err := s.lexicon.ListPartsOfSpeech(ctx, langID)
	if err != nil {
		return nil, fmt.Errorf("list parts of speech: %w", err)
	}
	return out, nil
}

// UpdatePartOfSpeech renames a part of speech or edits its notes.
func (s *Service) UpdatePartOfSpeech(ctx context.Context, input UpdatePartOfSpeechInput) (domain.PartOfSpeech, error) {
	if err := input.Validate(); err != nil {
		return domain.PartOfSpeech{}, err
	}

	pos, err := s.lexicon.GetPartOfSpeech(ctx, input.LanguageID, input.ID)
	if err != nil {
		return domain.PartOfSpeech{}, fmt.Errorf("get part of speech: %w", err)
	}
	if input.Name != nil {
		pos.Name = strings.TrimSpace(*input.Name)
	}
	if input.Notes != nil {
		pos.Notes = *input.Notes
	}
	if err := s.lexicon.UpdatePartOfSpeech(ctx, pos); err != nil {
		return domain.PartOfSpeech{}, fmt.Errorf("update part of speech: %w", err)
	}
	return pos, nil
}

// DeletePartOfSpeech removes a part of speech. Its templates, dimensions,
// rules and combination settings go with it, as do the overrides stored on
// its words. The words themselves are kept without a type.
func (s *Service) DeletePartOfSpeech(ctx context.Context, langID uuid.UUID, id int64) (DeleteTypeResult, error) {
	var res DeleteTypeResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.lexicon.GetPartOfSpeech(txCtx, langID, id); err != nil {
			return fmt.Errorf("get part of speech: %w", err)
		}

		var err error
		if res.FormsDeleted, err = s.forms.DeleteFormsByType(txCtx, langID, id); err != nil {
			return fmt.Errorf("delete forms: %w", err)
		}
		if res.WordsDetached, err = s.lexicon.ClearWordType(txCtx, langID, id); err != nil {
			return fmt.Errorf("detach words: %w", err)
		}
		if err := s.lexicon.DeletePartOfSpeech(txCtx, langID, id); err != nil {
			return fmt.Errorf("delete part of speech: %w", err)
		}
		return nil
	})
	if err != nil {
		return DeleteTypeResult{}, err
	}

	s.log.InfoContext(ctx, "part of speech deleted",
		slog.String("language_id", langID.String()),
		slog.Int64("type_id", id),
		slog.Int64("words_detached", res.WordsDetached),
		slog.Int64("forms_deleted", res.FormsDeleted),
	)
	return res, nil
}
