package grammar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/config"
	"github.com/heartmarshall/conlang-backend/internal/domain"
)

type grammarRepo interface {
	CreateTemplate(ctx context.Context, t domain.DeclensionTemplate) error
	AddDimension(ctx context.Context, langID uuid.UUID, d domain.DeclensionDimension) error
	ListTemplates(ctx context.Context, langID uuid.UUID, typeID int64) ([]domain.DeclensionTemplate, error)
	UpdateTemplate(ctx context.Context, t domain.DeclensionTemplate) error
	DeleteTemplate(ctx context.Context, langID uuid.UUID, id int64) error
	DeleteDimension(ctx context.Context, langID uuid.UUID, id int64) error
	SetTemplatePositions(ctx context.Context, langID uuid.UUID, ids []int64) error

	ListRules(ctx context.Context, langID uuid.UUID, typeID *int64) ([]domain.DeclensionRule, error)
	GetRule(ctx context.Context, langID uuid.UUID, id int64) (domain.DeclensionRule, error)
	CreateRule(ctx context.Context, rule domain.DeclensionRule) error
	UpdateRule(ctx context.Context, rule domain.DeclensionRule) error
	DeleteRule(ctx context.Context, langID uuid.UUID, id int64) error
	SetRulePositions(ctx context.Context, langID uuid.UUID, ids []int64) error

	ListSettings(ctx context.Context, langID uuid.UUID, typeID int64) ([]domain.CombinationSetting, error)
	UpsertSetting(ctx context.Context, langID uuid.UUID, s domain.CombinationSetting) error

	ListForms(ctx context.Context, langID uuid.UUID, wordID int64) (domain.WordForms, error)
	UpsertForm(ctx context.Context, langID uuid.UUID, n domain.DeclensionNode) error
	DeleteForm(ctx context.Context, langID uuid.UUID, wordID int64, id domain.CombinationID) error
}

type lexiconRepo interface {
	GetPartOfSpeech(ctx context.Context, langID uuid.UUID, id int64) (domain.PartOfSpeech, error)
	GetWord(ctx context.Context, langID uuid.UUID, id int64) (domain.Word, error)
	ListClasses(ctx context.Context, langID uuid.UUID) ([]domain.WordClass, error)
}

type languageRepo interface {
	NextID(ctx context.Context, langID uuid.UUID) (int64, error)
	ReserveID(ctx context.Context, langID uuid.UUID, id int64) error
}

type formRecorder interface {
	RecordDeclension(source domain.FormSource)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxNameLength  = 100
	MaxNotesLength = 2000
	MaxTransforms  = 50
)

// Service manages declension templates, rules and per-word overrides, and
// declines words against them.
type Service struct {
	grammar   grammarRepo
	lexicon   lexiconRepo
	languages languageRepo
	metrics   formRecorder
	tx        txManager
	cfg       config.EngineConfig
	log       *slog.Logger
}

// NewService creates a new Grammar service.
func NewService(
	log *slog.Logger,
	grammar grammarRepo,
	lexicon lexiconRepo,
	languages languageRepo,
	metrics formRecorder,
	tx txManager,
	cfg config.EngineConfig,
) *Service {
	return &Service{
		grammar:   grammar,
		lexicon:   lexicon,
		languages: languages,
		metrics:   metrics,
		tx:        tx,
		cfg:       cfg,
		log:       log.With("service", "grammar"),
	}
}

func (s *Service) nextID(ctx context.Context, langID uuid.UUID) (int64, error) {
	id, err := s.languages.NextID(ctx, langID)
	if err != nil {
		return 0, fmt.Errorf("allocate id: %w", err)
	}
	return id, nil
}

// requireType fails with ErrNotFound when the part of speech does not exist.
func (s *Service) requireType(ctx context.Context, langID uuid.UUID, typeID int64) error {
	if _, err := s.lexicon.GetPartOfSpeech(ctx, langID, typeID); err != nil {
		return fmt.Errorf("get part of speech: %w", err)
	}
	return nil
}
