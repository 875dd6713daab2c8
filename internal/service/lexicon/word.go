package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
)

// CreateWord adds a word, optionally typed and classified.
func (s *Service) CreateWord(ctx context.Context, input CreateWordInput) (domain.Word, error) {
	if err := input.Validate(); err != nil {
		return domain.Word{}, err
	}

	var word domain.Word
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.TypeID != nil {
			if _, err := s.lexicon.GetPartOfSpeech(txCtx, input.LanguageID, *input.TypeID); err != nil {
				return fmt.Errorf("get part of speech: %w", err)
			}
		}
		if len(input.Classes) > 0 {
			classes, err := s.lexicon.ListClasses(txCtx, input.LanguageID)
			if err != nil {
				return fmt.Errorf("list classes: %w", err)
			}
			for _, classID := range slices.Sorted(maps.Keys(input.Classes)) {
				if err := checkAssignment(classes, input.TypeID, classID, input.Classes[classID]); err != nil {
					return err
				}
			}
		}

		id, err := s.nextID(txCtx, input.LanguageID)
		if err != nil {
			return err
		}
		word = domain.Word{
			ID:         id,
			LanguageID: input.LanguageID,
			Value:      strings.TrimSpace(input.Value),
			TypeID:     input.TypeID,
			Classes:    maps.Clone(input.Classes),
		}
		if word.Classes == nil {
			word.Classes = map[int64]int64{}
		}
		if err := s.lexicon.CreateWord(txCtx, word); err != nil {
			return fmt.Errorf("create word: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Word{}, err
	}

	s.log.InfoContext(ctx, "word created",
		slog.String("language_id", input.LanguageID.String()),
		slog.Int64("word_id", word.ID),
	)
	return word, nil
}

// GetWord returns one word with its class assignments.
func (s *Service) GetWord(ctx context.Context, langID uuid.UUID, id int64) (domain.Word, error) {
	w, err := s.lexicon.GetWord(ctx, langID, id)
	if err != nil {
		return domain.Word{}, fmt.Errorf("get word: %w", err)
	}
	return w, nil
}

// ListWords returns a page of words ordered by value.
func (s *Service) ListWords(ctx context.Context, input ListWordsInput) ([]domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	words, err := s.lexicon.ListWords(ctx, input.LanguageID, domain.WordFilter{
		TypeID: input.TypeID,
		Prefix: strings.TrimSpace(input.Prefix),
		Limit:  uint64(limit),
		Offset: uint64(input.Offset),
	})
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

// UpdateWord changes the value or part of speech of a word. Class
// assignments are kept as they are.
func (s *Service) UpdateWord(ctx context.Context, input UpdateWordInput) (domain.Word, error) {
	if err := input.Validate(); err != nil {
		return domain.Word{}, err
	}

	var word domain.Word
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if word, err = s.lexicon.GetWord(txCtx, input.LanguageID, input.ID); err != nil {
			return fmt.Errorf("get word: %w", err)
		}

		if input.Value != nil {
			word.Value = strings.TrimSpace(*input.Value)
		}
		switch {
		case input.ClearType:
			word.TypeID = nil
		case input.TypeID != nil:
			if _, err := s.lexicon.GetPartOfSpeech(txCtx, input.LanguageID, *input.TypeID); err != nil {
				return fmt.Errorf("get part of speech: %w", err)
			}
			word.TypeID = input.TypeID
		}

		if err := s.lexicon.UpdateWord(txCtx, word); err != nil {
			return fmt.Errorf("update word: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Word{}, err
	}
	return word, nil
}

// DeleteWord removes a word with its overrides and class assignments.
func (s *Service) DeleteWord(ctx context.Context, langID uuid.UUID, id int64) error {
	if err := s.lexicon.DeleteWord(ctx, langID, id); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	s.log.InfoContext(ctx, "word deleted",
		slog.String("language_id", langID.String()),
		slog.Int64("word_id", id),
	)
	return nil
}

// SetWordClass assigns a class value to a word, replacing any previous one.
func (s *Service) SetWordClass(ctx context.Context, langID uuid.UUID, wordID, classID, valueID int64) (domain.Word, error) {
	var word domain.Word
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if word, err = s.lexicon.GetWord(txCtx, langID, wordID); err != nil {
			return fmt.Errorf("get word: %w", err)
		}
		classes, err := s.lexicon.ListClasses(txCtx, langID)
		if err != nil {
			return fmt.Errorf("list classes: %w", err)
		}
		if err := checkAssignment(classes, word.TypeID, classID, valueID); err != nil {
			return err
		}
		if err := s.lexicon.SetWordClass(txCtx, langID, wordID, classID, valueID); err != nil {
			return fmt.Errorf("set word class: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Word{}, err
	}

	if word.Classes == nil {
		word.Classes = map[int64]int64{}
	}
	word.Classes[classID] = valueID
	return word, nil
}

// RemoveWordClass clears a class assignment of a word.
func (s *Service) RemoveWordClass(ctx context.Context, langID uuid.UUID, wordID, classID int64) error {
	if _, err := s.lexicon.GetWord(ctx, langID, wordID); err != nil {
		return fmt.Errorf("get word: %w", err)
	}
	if err := s.lexicon.RemoveWordClass(ctx, langID, wordID, classID); err != nil {
		return fmt.Errorf("remove word class: %w", err)
	}
	return nil
}
