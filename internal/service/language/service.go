package language

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/pronunciation"
)

type languageRepo interface {
	Create(ctx context.Context, lang domain.Language) (*domain.Language, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	List(ctx context.Context) ([]domain.Language, error)
	Update(ctx context.Context, lang domain.Language) (*domain.Language, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetGuide(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) (domain.PhonologyGuide, error)
	UpsertGuide(ctx context.Context, g domain.PhonologyGuide) error
}

type ruleRepo interface {
	List(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) ([]domain.PronunciationRule, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxNameLength = 100
	MaxSyllables  = 500
)

// Service manages languages and their phonology guide options.
type Service struct {
	languages languageRepo
	rules     ruleRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Language service.
func NewService(log *slog.Logger, languages languageRepo, rules ruleRepo, tx txManager) *Service {
	return &Service{
		languages: languages,
		rules:     rules,
		tx:        tx,
		log:       log.With("service", "language"),
	}
}

// checkRules rejects a mode change under which the stored rules of a guide
// would stop compiling, such as enabling regex over literal patterns.
func (s *Service) checkRules(ctx context.Context, langID uuid.UUID, guide domain.PhonologyGuide, mode pronunciation.Mode, field string) error {
	rules, err := s.rules.List(ctx, langID, guide.Kind)
	if err != nil {
		return fmt.Errorf("list %s rules: %w", guide.Kind, err)
	}
	if _, err := pronunciation.New(rules, pronunciation.Config{Mode: mode}); err != nil {
		return domain.NewValidationError(field, fmt.Sprintf("%s rules do not compile in %s mode: %v", guide.Kind, mode, err))
	}
	return nil
}
