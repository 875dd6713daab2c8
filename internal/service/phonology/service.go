package phonology

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/config"
	"github.com/heartmarshall/conlang-backend/internal/domain"
)

type ruleRepo interface {
	List(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) ([]domain.PronunciationRule, error)
	Get(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, id int64) (domain.PronunciationRule, error)
	Create(ctx context.Context, rule domain.PronunciationRule) error
	Update(ctx context.Context, rule domain.PronunciationRule) error
	Delete(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, id int64) error
	SetPositions(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, ids []int64) error
}

type languageRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	GetGuide(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) (domain.PhonologyGuide, error)
	NextID(ctx context.Context, langID uuid.UUID) (int64, error)
	ReserveID(ctx context.Context, langID uuid.UUID, id int64) error
}

type outcomeRecorder interface {
	RecordPronunciation(kind domain.GuideKind, outcome domain.PronunciationOutcome)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages pronunciation and romanization rules and pronounces text
// against them.
type Service struct {
	rules     ruleRepo
	languages languageRepo
	metrics   outcomeRecorder
	tx        txManager
	cfg       config.EngineConfig
	log       *slog.Logger
}

// NewService creates a new Phonology service.
func NewService(
	log *slog.Logger,
	rules ruleRepo,
	languages languageRepo,
	metrics outcomeRecorder,
	tx txManager,
	cfg config.EngineConfig,
) *Service {
	return &Service{
		rules:     rules,
		languages: languages,
		metrics:   metrics,
		tx:        tx,
		cfg:       cfg,
		log:       log.With("service", "phonology"),
	}
}

func ruleIDs(rules []domain.PronunciationRule) []int64 {
	ids := make([]int64, len(rules))
	for i, r := range rules {
		ids[i] = r.ID
	}
	return ids
}

func indexOf(rules []domain.PronunciationRule, id int64) int {
	for i, r := range rules {
		if r.ID == id {
			return i
		}
	}
	return -1
}
