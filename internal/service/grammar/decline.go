package grammar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/declension"
)

// BuildEngine compiles a snapshot of one part of speech. The engine is
// immutable and may be shared between goroutines.
func (s *Service) BuildEngine(ctx context.Context, langID uuid.UUID, typeID int64) (*declension.Engine, error) {
	if err := s.requireType(ctx, langID, typeID); err != nil {
		return nil, err
	}

	templates, err := s.grammar.ListTemplates(ctx, langID, typeID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	rules, err := s.grammar.ListRules(ctx, langID, &typeID)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	settings, err := s.grammar.ListSettings(ctx, langID, typeID)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	classes, err := s.lexicon.ListClasses(ctx, langID)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	engine, err := declension.New(declension.Paradigm{
		TypeID:         typeID,
		Templates:      templates,
		Rules:          rules,
		Settings:       settings,
		TypeHasClasses: domain.TypeHasClasses(classes, typeID),
	}, declension.Config{Timeout: s.cfg.RegexTimeout})
	if err != nil {
		return nil, fmt.Errorf("build declension engine: %w", err)
	}
	return engine, nil
}

// wordEngine loads a word with its overrides and the engine for its part
// of speech. Untyped words get an engine with an empty paradigm.
func (s *Service) wordEngine(ctx context.Context, langID uuid.UUID, wordID int64) (domain.Word, domain.WordForms, *declension.Engine, error) {
	word, err := s.lexicon.GetWord(ctx, langID, wordID)
	if err != nil {
		return domain.Word{}, nil, nil, fmt.Errorf("get word: %w", err)
	}
	forms, err := s.grammar.ListForms(ctx, langID, wordID)
	if err != nil {
		return domain.Word{}, nil, nil, fmt.Errorf("list forms: %w", err)
	}

	var engine *declension.Engine
	if word.TypeID == nil {
		engine, err = declension.New(declension.Paradigm{}, declension.Config{Timeout: s.cfg.RegexTimeout})
	} else {
		engine, err = s.BuildEngine(ctx, langID, *word.TypeID)
	}
	if err != nil {
		return domain.Word{}, nil, nil, err
	}
	return word, forms, engine, nil
}

// Decline resolves one form of a word. A word without a part of speech,
// such as one orphaned by DeletePartOfSpeech, declines to itself for any
// combination.
func (s *Service) Decline(ctx context.Context, langID uuid.UUID, wordID int64, id domain.CombinationID) (domain.Form, error) {
	word, forms, engine, err := s.wordEngine(ctx, langID, wordID)
	if err != nil {
		return domain.Form{}, err
	}
	if _, ok := forms.Get(id); !ok && word.TypeID != nil && !knownCombination(engine, id) {
		return domain.Form{}, fmt.Errorf("combination %s: %w", id, domain.ErrNotFound)
	}

	form := engine.Decline(word, forms, id)
	s.metrics.RecordDeclension(form.Source)
	return form, nil
}

// Paradigm resolves every visible form of a word.
func (s *Service) Paradigm(ctx context.Context, langID uuid.UUID, wordID int64) ([]declension.Cell, error) {
	word, forms, engine, err := s.wordEngine(ctx, langID, wordID)
	if err != nil {
		return nil, err
	}

	cells := engine.Paradigm(word, forms)
	for _, c := range cells {
		s.metrics.RecordDeclension(c.Form.Source)
	}
	return cells, nil
}

// RequirementsMet lists the mandatory combinations the word leaves empty.
func (s *Service) RequirementsMet(ctx context.Context, langID uuid.UUID, wordID int64) ([]domain.Violation, error) {
	word, forms, engine, err := s.wordEngine(ctx, langID, wordID)
	if err != nil {
		return nil, err
	}
	out := engine.RequirementsMet(word, forms)
	if out == nil {
		out = []domain.Violation{}
	}
	return out, nil
}

// DeprecatedForms lists the overrides of a word whose combination the
// templates no longer produce.
func (s *Service) DeprecatedForms(ctx context.Context, langID uuid.UUID, wordID int64) (domain.WordForms, error) {
	_, forms, engine, err := s.wordEngine(ctx, langID, wordID)
	if err != nil {
		return nil, err
	}
	out := engine.DeprecatedForms(forms)
	if out == nil {
		out = domain.WordForms{}
	}
	return out, nil
}

// SetOverride stores a hand-written form that wins over every rule.
func (s *Service) SetOverride(ctx context.Context, input SetOverrideInput) (domain.DeclensionNode, error) {
	if err := input.Validate(); err != nil {
		return domain.DeclensionNode{}, err
	}

	node := domain.DeclensionNode{
		WordID:        input.WordID,
		CombinationID: input.CombinationID,
		Value:         input.Value,
		Notes:         input.Notes,
	}
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, _, engine, err := s.wordEngine(txCtx, input.LanguageID, input.WordID)
		if err != nil {
			return err
		}
		if !knownCombination(engine, input.CombinationID) {
			return domain.NewValidationError("combination_id", fmt.Sprintf("unknown combination %s", input.CombinationID))
		}
		if err := s.grammar.UpsertForm(txCtx, input.LanguageID, node); err != nil {
			return fmt.Errorf("store override: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.DeclensionNode{}, err
	}

	s.log.InfoContext(ctx, "override stored",
		slog.String("language_id", input.LanguageID.String()),
		slog.Int64("word_id", input.WordID),
		slog.String("combination_id", input.CombinationID.String()),
	)
	return node, nil
}

// ClearOverride drops a hand-written form so rules apply again.
func (s *Service) ClearOverride(ctx context.Context, langID uuid.UUID, wordID int64, id domain.CombinationID) error {
	if err := s.grammar.DeleteForm(ctx, langID, wordID, id); err != nil {
		return fmt.Errorf("clear override: %w", err)
	}
	return nil
}

func knownCombination(engine *declension.Engine, id domain.CombinationID) bool {
	for _, c := range engine.Combinations() {
		if c.ID == id {
			return true
		}
	}
	return false
}
