package phonology

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/pattern"
	"github.com/heartmarshall/conlang-backend/internal/engine/pronunciation"
)

// ListRules returns the rules of a guide in priority order.
func (s *Service) ListRules(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) ([]domain.PronunciationRule, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be PRONUNCIATION or ROMANIZATION")
	}
	if _, err := s.languages.GetByID(ctx, langID); err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}

	rules, err := s.rules.List(ctx, langID, kind)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	return rules, nil
}

// AddRule inserts a rule into a guide and renumbers the guide so positions
// stay 1..n.
func (s *Service) AddRule(ctx context.Context, input AddRuleInput) (domain.PronunciationRule, error) {
	if err := input.Validate(); err != nil {
		return domain.PronunciationRule{}, err
	}

	var rule domain.PronunciationRule
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		lang, err := s.languages.GetByID(txCtx, input.LanguageID)
		if err != nil {
			return fmt.Errorf("get language: %w", err)
		}
		guide, err := s.languages.GetGuide(txCtx, input.LanguageID, input.Kind)
		if err != nil {
			return fmt.Errorf("get guide: %w", err)
		}
		if err := validateRule(pronunciation.ModeFor(lang.Settings, guide), input.Pattern, input.Phoneme); err != nil {
			return err
		}

		existing, err := s.rules.List(txCtx, input.LanguageID, input.Kind)
		if err != nil {
			return fmt.Errorf("list rules: %w", err)
		}

		id, err := s.allocateID(txCtx, input.LanguageID, input.ID, ruleIDs(existing))
		if err != nil {
			return err
		}

		at := len(existing)
		if input.Position != nil {
			at = *input.Position - 1
		}
		rule = domain.PronunciationRule{
			ID:         id,
			LanguageID: input.LanguageID,
			Kind:       input.Kind,
			Pattern:    input.Pattern,
			Phoneme:    input.Phoneme,
		}
		ordered := domain.InsertOrdered(existing, at, rule)
		domain.Renumber(ordered, func(r *domain.PronunciationRule, pos int) { r.Position = pos })
		rule.Position = ordered[indexOf(ordered, id)].Position

		if err := s.rules.Create(txCtx, rule); err != nil {
			return fmt.Errorf("create rule: %w", err)
		}
		if err := s.rules.SetPositions(txCtx, input.LanguageID, input.Kind, ruleIDs(ordered)); err != nil {
			return fmt.Errorf("renumber rules: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.PronunciationRule{}, err
	}

	s.log.InfoContext(ctx, "rule added",
		slog.String("language_id", input.LanguageID.String()),
		slog.String("kind", input.Kind.String()),
		slog.Int64("rule_id", rule.ID),
		slog.Int("position", rule.Position),
	)
	return rule, nil
}

func (s *Service) allocateID(ctx context.Context, langID uuid.UUID, explicit *int64, existing []int64) (int64, error) {
	if explicit == nil {
		id, err := s.languages.NextID(ctx, langID)
		if err != nil {
			return 0, fmt.Errorf("allocate id: %w", err)
		}
		return id, nil
	}
	if err := domain.CheckID(*explicit, existing); err != nil {
		return 0, err
	}
	if err := s.languages.ReserveID(ctx, langID, *explicit); err != nil {
		return 0, fmt.Errorf("reserve id: %w", err)
	}
	return *explicit, nil
}

// UpdateRule changes the pattern or phoneme of a rule. Its position is kept.
func (s *Service) UpdateRule(ctx context.Context, input UpdateRuleInput) (domain.PronunciationRule, error) {
	if err := input.Validate(); err != nil {
		return domain.PronunciationRule{}, err
	}

	lang, err := s.languages.GetByID(ctx, input.LanguageID)
	if err != nil {
		return domain.PronunciationRule{}, fmt.Errorf("get language: %w", err)
	}
	guide, err := s.languages.GetGuide(ctx, input.LanguageID, input.Kind)
	if err != nil {
		return domain.PronunciationRule{}, fmt.Errorf("get guide: %w", err)
	}
	rule, err := s.rules.Get(ctx, input.LanguageID, input.Kind, input.ID)
	if err != nil {
		return domain.PronunciationRule{}, fmt.Errorf("get rule: %w", err)
	}

	if input.Pattern != nil {
		rule.Pattern = *input.Pattern
	}
	if input.Phoneme != nil {
		rule.Phoneme = *input.Phoneme
	}
	if err := validateRule(pronunciation.ModeFor(lang.Settings, guide), rule.Pattern, rule.Phoneme); err != nil {
		return domain.PronunciationRule{}, err
	}

	if err := s.rules.Update(ctx, rule); err != nil {
		return domain.PronunciationRule{}, fmt.Errorf("update rule: %w", err)
	}

	s.log.InfoContext(ctx, "rule updated",
		slog.String("language_id", input.LanguageID.String()),
		slog.String("kind", input.Kind.String()),
		slog.Int64("rule_id", rule.ID),
	)
	return rule, nil
}

// DeleteRule removes a rule and closes the gap it leaves.
func (s *Service) DeleteRule(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, id int64) error {
	if !kind.IsValid() {
		return domain.NewValidationError("kind", "must be PRONUNCIATION or ROMANIZATION")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.rules.Delete(txCtx, langID, kind, id); err != nil {
			return fmt.Errorf("delete rule: %w", err)
		}
		rest, err := s.rules.List(txCtx, langID, kind)
		if err != nil {
			return fmt.Errorf("list rules: %w", err)
		}
		if err := s.rules.SetPositions(txCtx, langID, kind, ruleIDs(rest)); err != nil {
			return fmt.Errorf("renumber rules: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "rule deleted",
		slog.String("language_id", langID.String()),
		slog.String("kind", kind.String()),
		slog.Int64("rule_id", id),
	)
	return nil
}

// MoveRule swaps a rule with its neighbour. Moving past either end is a
// no-op. The reordered guide is returned.
func (s *Service) MoveRule(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, id int64, dir domain.Direction) ([]domain.PronunciationRule, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be PRONUNCIATION or ROMANIZATION")
	}
	if !dir.IsValid() {
		return nil, domain.NewValidationError("direction", "must be up or down")
	}

	var rules []domain.PronunciationRule
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if rules, err = s.rules.List(txCtx, langID, kind); err != nil {
			return fmt.Errorf("list rules: %w", err)
		}
		i := indexOf(rules, id)
		if i < 0 {
			return fmt.Errorf("pronunciation_rule %d: %w", id, domain.ErrNotFound)
		}

		var moved bool
		if dir == domain.DirectionUp {
			moved = domain.MoveUp(rules, i)
		} else {
			moved = domain.MoveDown(rules, i)
		}
		if !moved {
			return nil
		}

		domain.Renumber(rules, func(r *domain.PronunciationRule, pos int) { r.Position = pos })
		if err := s.rules.SetPositions(txCtx, langID, kind, ruleIDs(rules)); err != nil {
			return fmt.Errorf("renumber rules: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// Lookarounds returns the rules whose patterns use lookahead or
// lookbehind. Prefix matching slices the word, so such rules rarely do
// what their author expects.
func (s *Service) Lookarounds(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) ([]domain.PronunciationRule, error) {
	rules, err := s.ListRules(ctx, langID, kind)
	if err != nil {
		return nil, err
	}

	out := []domain.PronunciationRule{}
	for _, r := range rules {
		if domain.IsLookaround(r.Pattern) {
			out = append(out, r)
		}
	}
	return out, nil
}

// validateRule rejects a rule the guide's engine could not compile. Literal
// mode compares plain prefixes, so any pattern passes there. Recursive mode
// wins over DisableRegex and still compiles patterns as regular expressions.
func validateRule(mode pronunciation.Mode, expr, phoneme string) error {
	if mode == pronunciation.ModeLiteral {
		return nil
	}
	if err := pattern.Validate(expr); err != nil {
		return domain.NewValidationError("pattern", err.Error())
	}
	if _, err := pattern.TranslateReplacement(phoneme); err != nil {
		return domain.NewValidationError("phoneme", err.Error())
	}
	return nil
}
