package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/declension"
	"github.com/heartmarshall/conlang-backend/internal/engine/pronunciation"
)

// WordReport is one row of a report. Pronunciation and Romanization are
// blank when the word cannot be parsed or the guide is disabled.
type WordReport struct {
	WordID              int64
	Value               string
	TypeID              *int64
	Pronunciation       string
	PronunciationStatus domain.PronunciationOutcome
	Romanization        string
	RomanizationStatus  domain.PronunciationOutcome
	Forms               []declension.Cell
	Violations          []domain.Violation
}

// Stats summarises a report.
type Stats struct {
	Words                    int
	UnparseablePronunciation int
	UnparseableRomanization  int
	Violations               int
}

// Report is a read-only rendering of a whole lexicon.
type Report struct {
	LanguageID   uuid.UUID
	LanguageName string
	GeneratedAt  time.Time
	Words        []WordReport
	Stats        Stats
}

// snapshot is everything a report needs, read in one transaction.
type snapshot struct {
	lang          *domain.Language
	words         []domain.Word
	forms         map[int64]domain.WordForms
	pronunciation *pronunciation.Engine
	romanization  *pronunciation.Engine
	paradigms     map[int64]*declension.Engine
	untyped       *declension.Engine
}

// Generate renders every word of a language. A word the rules cannot parse
// leaves blank cells and is counted; it never fails the report.
func (s *Service) Generate(ctx context.Context, langID uuid.UUID) (Report, error) {
	start := s.now()

	snap, err := s.load(ctx, langID)
	if err != nil {
		return Report{}, err
	}

	rows := make([]WordReport, len(snap.words))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.cfg.ReportConcurrency, 1))
	for i, w := range snap.words {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i] = s.renderWord(snap, w)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("render report: %w", err)
	}

	out := Report{
		LanguageID:   langID,
		LanguageName: snap.lang.Name,
		GeneratedAt:  start.UTC(),
		Words:        rows,
		Stats:        Stats{Words: len(rows)},
	}
	for _, r := range rows {
		if r.PronunciationStatus.Unparseable() {
			out.Stats.UnparseablePronunciation++
		}
		if r.RomanizationStatus.Unparseable() {
			out.Stats.UnparseableRomanization++
		}
		out.Stats.Violations += len(r.Violations)
	}

	elapsed := s.now().Sub(start)
	s.metrics.ObserveReport(len(rows), elapsed)
	s.log.InfoContext(ctx, "report generated",
		slog.String("language_id", langID.String()),
		slog.Int("words", out.Stats.Words),
		slog.Int("unparseable", out.Stats.UnparseablePronunciation),
		slog.Int("violations", out.Stats.Violations),
		slog.Duration("elapsed", elapsed),
	)
	return out, nil
}

func (s *Service) load(ctx context.Context, langID uuid.UUID) (*snapshot, error) {
	snap := &snapshot{paradigms: make(map[int64]*declension.Engine)}
	err := s.tx.RunInSnapshot(ctx, func(txCtx context.Context) error {
		var err error
		if snap.lang, err = s.languages.GetByID(txCtx, langID); err != nil {
			return fmt.Errorf("get language: %w", err)
		}

		if snap.pronunciation, _, err = s.phonology.BuildEngine(txCtx, langID, domain.GuideKindPronunciation); err != nil {
			return err
		}
		// A disabled romanization guide is never compiled, so its rules
		// cannot fail the report.
		roman, err := s.languages.GetGuide(txCtx, langID, domain.GuideKindRomanization)
		if err != nil {
			return fmt.Errorf("get romanization guide: %w", err)
		}
		if roman.Enabled {
			if snap.romanization, _, err = s.phonology.BuildEngine(txCtx, langID, domain.GuideKindRomanization); err != nil {
				return err
			}
		}

		types, err := s.lexicon.ListPartsOfSpeech(txCtx, langID)
		if err != nil {
			return fmt.Errorf("list parts of speech: %w", err)
		}
		for _, t := range types {
			engine, err := s.declension.BuildEngine(txCtx, langID, t.ID)
			if err != nil {
				return fmt.Errorf("paradigm of %q: %w", t.Name, err)
			}
			snap.paradigms[t.ID] = engine
		}
		if snap.untyped, err = declension.New(declension.Paradigm{}, declension.Config{Timeout: s.cfg.RegexTimeout}); err != nil {
			return err
		}

		if snap.words, err = s.allWords(txCtx, langID); err != nil {
			return err
		}
		ids := make([]int64, len(snap.words))
		for i, w := range snap.words {
			ids[i] = w.ID
		}
		if snap.forms, err = s.forms.ListFormsByWords(txCtx, langID, ids); err != nil {
			return fmt.Errorf("list forms: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *Service) allWords(ctx context.Context, langID uuid.UUID) ([]domain.Word, error) {
	var out []domain.Word
	for offset := uint64(0); ; offset += PageSize {
		page, err := s.lexicon.ListWords(ctx, langID, domain.WordFilter{Limit: PageSize, Offset: offset})
		if err != nil {
			return nil, fmt.Errorf("list words: %w", err)
		}
		out = append(out, page...)
		if len(page) < PageSize {
			return out, nil
		}
	}
}

// renderWord only reads the snapshot, so it is safe to run concurrently.
func (s *Service) renderWord(snap *snapshot, w domain.Word) WordReport {
	row := WordReport{WordID: w.ID, Value: w.Value, TypeID: w.TypeID}

	row.Pronunciation, row.PronunciationStatus = s.pronounce(snap.pronunciation, domain.GuideKindPronunciation, w.Value)
	if snap.romanization != nil {
		row.Romanization, row.RomanizationStatus = s.pronounce(snap.romanization, domain.GuideKindRomanization, w.Value)
	}

	engine := snap.untyped
	if w.TypeID != nil {
		if e, ok := snap.paradigms[*w.TypeID]; ok {
			engine = e
		}
	}
	forms := snap.forms[w.ID]
	row.Forms = engine.Paradigm(w, forms)
	row.Violations = engine.RequirementsMet(w, forms)
	return row
}

// pronounce renders a word or phrase. The first unparseable part blanks the
// whole cell.
func (s *Service) pronounce(engine *pronunciation.Engine, kind domain.GuideKind, value string) (string, domain.PronunciationOutcome) {
	phoneme, results := engine.Pronounce(value)
	outcome := domain.OutcomeEmpty
	for _, res := range results {
		s.metrics.RecordPronunciation(kind, res.Outcome)
		if res.Outcome.Unparseable() {
			return "", res.Outcome
		}
		if res.Outcome == domain.OutcomeMatched {
			outcome = domain.OutcomeMatched
		}
	}
	return phoneme, outcome
}
