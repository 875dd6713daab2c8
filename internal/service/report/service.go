// Package report builds whole-lexicon reports: the pronunciation and
// romanization of every word together with its paradigm. Rule sets are
// read once, compiled, and shared read-only between workers.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/config"
	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/declension"
	"github.com/heartmarshall/conlang-backend/internal/engine/pronunciation"
)

type languageRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	GetGuide(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) (domain.PhonologyGuide, error)
}

type lexiconRepo interface {
	ListPartsOfSpeech(ctx context.Context, langID uuid.UUID) ([]domain.PartOfSpeech, error)
	ListWords(ctx context.Context, langID uuid.UUID, f domain.WordFilter) ([]domain.Word, error)
}

type formRepo interface {
	ListFormsByWords(ctx context.Context, langID uuid.UUID, wordIDs []int64) (map[int64]domain.WordForms, error)
}

type phonologyEngines interface {
	BuildEngine(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) (*pronunciation.Engine, domain.PhonologyGuide, error)
}

type declensionEngines interface {
	BuildEngine(ctx context.Context, langID uuid.UUID, typeID int64) (*declension.Engine, error)
}

type reportRecorder interface {
	RecordPronunciation(kind domain.GuideKind, outcome domain.PronunciationOutcome)
	ObserveReport(words int, d time.Duration)
}

type snapshotter interface {
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

// PageSize is the number of words read per query while loading the lexicon.
const PageSize = 1000

// Service generates reports.
type Service struct {
	languages  languageRepo
	lexicon    lexiconRepo
	forms      formRepo
	phonology  phonologyEngines
	declension declensionEngines
	metrics    reportRecorder
	tx         snapshotter
	cfg        config.EngineConfig
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new Report service.
func NewService(
	log *slog.Logger,
	languages languageRepo,
	lexicon lexiconRepo,
	forms formRepo,
	phonology phonologyEngines,
	declension declensionEngines,
	metrics reportRecorder,
	tx snapshotter,
	cfg config.EngineConfig,
) *Service {
	return &Service{
		languages:  languages,
		lexicon:    lexicon,
		forms:      forms,
		phonology:  phonology,
		declension: declension,
		metrics:    metrics,
		tx:         tx,
		cfg:        cfg,
		log:        log.With("service", "report"),
		now:        time.Now,
	}
}
