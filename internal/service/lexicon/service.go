package lexicon

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
)

type lexiconRepo interface {
	CreatePartOfSpeech(ctx context.Context, p domain.PartOfSpeech) error
	GetPartOfSpeech(ctx context.Context, langID uuid.UUID, id int64) (domain.PartOfSpeech, error)
	ListPartsOfSpeech(ctx context.Context, langID uuid.UUID) ([]domain.PartOfSpeech, error)
	UpdatePartOfSpeech(ctx context.Context, p domain.PartOfSpeech) error
	DeletePartOfSpeech(ctx context.Context, langID uuid.UUID, id int64) error

	CreateClass(ctx context.Context, c domain.WordClass) error
	AddClassValue(ctx context.Context, langID uuid.UUID, v domain.WordClassValue) error
	ListClasses(ctx context.Context, langID uuid.UUID) ([]domain.WordClass, error)
	DeleteClass(ctx context.Context, langID uuid.UUID, id int64) error
	DeleteClassValue(ctx context.Context, langID uuid.UUID, valueID int64) error

	CreateWord(ctx context.Context, w domain.Word) error
	GetWord(ctx context.Context, langID uuid.UUID, id int64) (domain.Word, error)
	ListWords(ctx context.Context, langID uuid.UUID, f domain.WordFilter) ([]domain.Word, error)
	UpdateWord(ctx context.Context, w domain.Word) error
	DeleteWord(ctx context.Context, langID uuid.UUID, id int64) error
	ClearWordType(ctx context.Context, langID uuid.UUID, typeID int64) (int64, error)
	SetWordClass(ctx context.Context, langID uuid.UUID, wordID, classID, valueID int64) error
	RemoveWordClass(ctx context.Context, langID uuid.UUID, wordID, classID int64) error
}

type formRepo interface {
	DeleteFormsByType(ctx context.Context, langID uuid.UUID, typeID int64) (int64, error)
}

type languageRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	NextID(ctx context.Context, langID uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxNameLength  = 100
	MaxNotesLength = 2000
	MaxWordLength  = 200
	DefaultLimit   = 100
	MaxLimit       = 1000
)

// Service manages parts of speech, word classes and words.
type Service struct {
	lexicon   lexiconRepo
	forms     formRepo
	languages languageRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Lexicon service.
func NewService(
	log *slog.Logger,
	lexicon lexiconRepo,
	forms formRepo,
	languages languageRepo,
	tx txManager,
) *Service {
	return &Service{
		lexicon:   lexicon,
		forms:     forms,
		languages: languages,
		tx:        tx,
		log:       log.With("service", "lexicon"),
	}
}

func (s *Service) nextID(ctx context.Context, langID uuid.UUID) (int64, error) {
	id, err := s.languages.NextID(ctx, langID)
	if err != nil {
		return 0, fmt.Errorf("allocate id: %w", err)
	}
	return id, nil
}
