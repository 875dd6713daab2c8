package grammar

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/declension"
	"github.com/heartmarshall/conlang-backend/internal/engine/pattern"
)

// EvolveResult is the outcome of a bulk transform substitution.
type EvolveResult struct {
	RulesChanged int
	Evolutions   []declension.Evolution
}

// ListRules returns the rules of a part of speech in priority order.
func (s *Service) ListRules(ctx context.Context, langID uuid.UUID, typeID int64) ([]domain.DeclensionRule, error) {
	if err := s.requireType(ctx, langID, typeID); err != nil {
		return nil, err
	}
	rules, err := s.grammar.ListRules(ctx, langID, &typeID)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	return rules, nil
}

// AddRule appends a rule to a part of speech. The rule must target a
// combination the templates currently produce.
func (s *Service) AddRule(ctx context.Context, input AddRuleInput) (domain.DeclensionRule, error) {
	if err := input.Validate(); err != nil {
		return domain.DeclensionRule{}, err
	}

	var rule domain.DeclensionRule
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireCombination(txCtx, input.LanguageID, input.TypeID, input.CombinationID); err != nil {
			return err
		}
		all, err := s.grammar.ListRules(txCtx, input.LanguageID, nil)
		if err != nil {
			return fmt.Errorf("list rules: %w", err)
		}

		id, err := s.allocateRuleID(txCtx, input.LanguageID, input.ID, all)
		if err != nil {
			return err
		}
		last := 0
		for _, r := range all {
			if r.TypeID == input.TypeID {
				last = max(last, r.Position)
			}
		}

		rule = domain.DeclensionRule{
			ID:            id,
			LanguageID:    input.LanguageID,
			TypeID:        input.TypeID,
			CombinationID: input.CombinationID,
			Name:          strings.TrimSpace(input.Name),
			Pattern:       input.Pattern,
			Position:      last + 1,
			Transforms:    slices.Clone(input.Transforms),
		}
		rule.SetApplyToAllClasses(input.ApplyToAllClasses)
		for _, f := range input.ClassFilters {
			rule.SetClassFilter(f.ClassID, f.ValueID)
		}
		if err := s.checkRule(txCtx, rule); err != nil {
			return err
		}

		if err := s.grammar.CreateRule(txCtx, rule); err != nil {
			return fmt.Errorf("create rule: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.DeclensionRule{}, err
	}

	s.log.InfoContext(ctx, "declension rule added",
		slog.String("language_id", input.LanguageID.String()),
		slog.Int64("type_id", input.TypeID),
		slog.Int64("rule_id", rule.ID),
		slog.String("combination_id", rule.CombinationID.String()),
	)
	return rule, nil
}

func (s *Service) allocateRuleID(ctx context.Context, langID uuid.UUID, explicit *int64, existing []domain.DeclensionRule) (int64, error) {
	if explicit == nil {
		return s.nextID(ctx, langID)
	}
	ids := make([]int64, len(existing))
	for i, r := range existing {
		ids[i] = r.ID
	}
	if err := domain.CheckID(*explicit, ids); err != nil {
		return 0, err
	}
	if err := s.languages.ReserveID(ctx, langID, *explicit); err != nil {
		return 0, fmt.Errorf("reserve id: %w", err)
	}
	return *explicit, nil
}

// UpdateRule edits the combination, name or match pattern of a rule.
func (s *Service) UpdateRule(ctx context.Context, input UpdateRuleInput) (domain.DeclensionRule, error) {
	if err := input.Validate(); err != nil {
		return domain.DeclensionRule{}, err
	}
	if input.CombinationID != nil {
		if err := s.requireCombination(ctx, input.LanguageID, input.TypeID, *input.CombinationID); err != nil {
			return domain.DeclensionRule{}, err
		}
	}

	return s.mutateRule(ctx, input.LanguageID, input.TypeID, input.ID, func(r *domain.DeclensionRule) error {
		if input.CombinationID != nil {
			r.CombinationID = *input.CombinationID
		}
		if input.Name != nil {
			r.Name = strings.TrimSpace(*input.Name)
		}
		if input.Pattern != nil {
			r.Pattern = *input.Pattern
		}
		return nil
	})
}

// DeleteRule removes a rule and closes the gap it leaves.
func (s *Service) DeleteRule(ctx context.Context, langID uuid.UUID, typeID, id int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.getRule(txCtx, langID, typeID, id); err != nil {
			return err
		}
		if err := s.grammar.DeleteRule(txCtx, langID, id); err != nil {
			return fmt.Errorf("delete rule: %w", err)
		}
		rest, err := s.grammar.ListRules(txCtx, langID, &typeID)
		if err != nil {
			return fmt.Errorf("list rules: %w", err)
		}
		if err := s.grammar.SetRulePositions(txCtx, langID, ruleIDs(rest)); err != nil {
			return fmt.Errorf("renumber rules: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "declension rule deleted",
		slog.String("language_id", langID.String()),
		slog.Int64("type_id", typeID),
		slog.Int64("rule_id", id),
	)
	return nil
}

// MoveRule swaps a rule with the nearest rule of the same combination, which
// is the only order the engine observes. Moving past either end is a no-op.
func (s *Service) MoveRule(ctx context.Context, langID uuid.UUID, typeID, id int64, dir domain.Direction) ([]domain.DeclensionRule, error) {
	if !dir.IsValid() {
		return nil, domain.NewValidationError("direction", "must be up or down")
	}

	var rules []domain.DeclensionRule
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if rules, err = s.grammar.ListRules(txCtx, langID, &typeID); err != nil {
			return fmt.Errorf("list rules: %w", err)
		}
		i := slices.IndexFunc(rules, func(r domain.DeclensionRule) bool { return r.ID == id })
		if i < 0 {
			return fmt.Errorf("declension_rule %d: %w", id, domain.ErrNotFound)
		}

		j := neighbour(rules, i, dir)
		if j < 0 {
			return nil
		}
		rules[i], rules[j] = rules[j], rules[i]
		domain.Renumber(rules, func(r *domain.DeclensionRule, pos int) { r.Position = pos })
		if err := s.grammar.SetRulePositions(txCtx, langID, ruleIDs(rules)); err != nil {
			return fmt.Errorf("renumber rules: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func neighbour(rules []domain.DeclensionRule, i int, dir domain.Direction) int {
	step := 1
	if dir == domain.DirectionUp {
		step = -1
	}
	for j := i + step; j >= 0 && j < len(rules); j += step {
		if rules[j].CombinationID == rules[i].CombinationID {
			return j
		}
	}
	return -1
}

// AddTransform appends a transform to a rule.
func (s *Service) AddTransform(ctx context.Context, langID uuid.UUID, typeID, ruleID int64, t domain.Transform) (domain.DeclensionRule, error) {
	return s.mutateRule(ctx, langID, typeID, ruleID, func(r *domain.DeclensionRule) error {
		if len(r.Transforms) >= MaxTransforms {
			return domain.NewValidationError("transforms", fmt.Sprintf("max %d transforms", MaxTransforms))
		}
		r.AddTransform(t)
		return nil
	})
}

// UpdateTransform replaces the transform at index i.
func (s *Service) UpdateTransform(ctx context.Context, langID uuid.UUID, typeID, ruleID int64, i int, t domain.Transform) (domain.DeclensionRule, error) {
	return s.mutateRule(ctx, langID, typeID, ruleID, func(r *domain.DeclensionRule) error {
		return r.UpdateTransform(i, t)
	})
}

// DeleteTransform removes the transform at index i.
func (s *Service) DeleteTransform(ctx context.Context, langID uuid.UUID, typeID, ruleID int64, i int) (domain.DeclensionRule, error) {
	return s.mutateRule(ctx, langID, typeID, ruleID, func(r *domain.DeclensionRule) error {
		return r.DeleteTransform(i)
	})
}

// MoveTransform moves the transform at index i one step.
func (s *Service) MoveTransform(ctx context.Context, langID uuid.UUID, typeID, ruleID int64, i int, dir domain.Direction) (domain.DeclensionRule, error) {
	if !dir.IsValid() {
		return domain.DeclensionRule{}, domain.NewValidationError("direction", "must be up or down")
	}
	return s.mutateRule(ctx, langID, typeID, ruleID, func(r *domain.DeclensionRule) error {
		if i < 0 || i >= len(r.Transforms) {
			return fmt.Errorf("transform %d: %w", i, domain.ErrNotFound)
		}
		r.MoveTransform(i, dir)
		return nil
	})
}

// SetApplyToAllClasses toggles the class wildcard of a rule.
func (s *Service) SetApplyToAllClasses(ctx context.Context, langID uuid.UUID, typeID, ruleID int64, all bool) (domain.DeclensionRule, error) {
	return s.mutateRule(ctx, langID, typeID, ruleID, func(r *domain.DeclensionRule) error {
		r.SetApplyToAllClasses(all)
		return nil
	})
}

// SetClassFilter restricts a rule to words carrying valueID for classID.
func (s *Service) SetClassFilter(ctx context.Context, langID uuid.UUID, typeID, ruleID, classID, valueID int64) (domain.DeclensionRule, error) {
	return s.mutateRule(ctx, langID, typeID, ruleID, func(r *domain.DeclensionRule) error {
		r.SetClassFilter(classID, valueID)
		return nil
	})
}

// RemoveClassFilter lifts the restriction on classID.
func (s *Service) RemoveClassFilter(ctx context.Context, langID uuid.UUID, typeID, ruleID, classID int64) (domain.DeclensionRule, error) {
	return s.mutateRule(ctx, langID, typeID, ruleID, func(r *domain.DeclensionRule) error {
		r.RemoveClassFilter(classID)
		return nil
	})
}

// mutateRule loads a rule, applies fn, checks the result and stores it, all
// in one transaction. A rule that fails the checks is never written.
func (s *Service) mutateRule(ctx context.Context, langID uuid.UUID, typeID, ruleID int64, fn func(r *domain.DeclensionRule) error) (domain.DeclensionRule, error) {
	var rule domain.DeclensionRule
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if rule, err = s.getRule(txCtx, langID, typeID, ruleID); err != nil {
			return err
		}
		if err := fn(&rule); err != nil {
			return err
		}
		if err := s.checkRule(txCtx, rule); err != nil {
			return err
		}
		if err := s.grammar.UpdateRule(txCtx, rule); err != nil {
			return fmt.Errorf("update rule: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.DeclensionRule{}, err
	}
	return rule, nil
}

// EvolveRules substitutes find with replace in every transform of a part
// of speech. Transforms that would end up blank or invalid are kept and
// reported.
func (s *Service) EvolveRules(ctx context.Context, input EvolveInput) (EvolveResult, error) {
	if err := input.Validate(); err != nil {
		return EvolveResult{}, err
	}

	var res EvolveResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rules, err := s.ListRules(txCtx, input.LanguageID, input.TypeID)
		if err != nil {
			return err
		}
		changed, report := declension.Evolve(rules, input.Find, input.Replace)
		for _, r := range changed {
			if err := s.grammar.UpdateRule(txCtx, r); err != nil {
				return fmt.Errorf("update rule %d: %w", r.ID, err)
			}
		}
		res = EvolveResult{RulesChanged: len(changed), Evolutions: report}
		return nil
	})
	if err != nil {
		return EvolveResult{}, err
	}

	s.log.InfoContext(ctx, "declension rules evolved",
		slog.String("language_id", input.LanguageID.String()),
		slog.Int64("type_id", input.TypeID),
		slog.Int("rules_changed", res.RulesChanged),
		slog.Int("transforms_touched", len(res.Evolutions)),
	)
	return res, nil
}

// DeprecatedRules lists rules whose combination the templates no longer
// produce.
func (s *Service) DeprecatedRules(ctx context.Context, langID uuid.UUID, typeID int64) ([]domain.DeclensionRule, error) {
	engine, err := s.BuildEngine(ctx, langID, typeID)
	if err != nil {
		return nil, err
	}
	out := engine.DeprecatedRules()
	if out == nil {
		out = []domain.DeclensionRule{}
	}
	return out, nil
}

func (s *Service) getRule(ctx context.Context, langID uuid.UUID, typeID, id int64) (domain.DeclensionRule, error) {
	rule, err := s.grammar.GetRule(ctx, langID, id)
	if err != nil {
		return domain.DeclensionRule{}, fmt.Errorf("get rule: %w", err)
	}
	if rule.TypeID != typeID {
		return domain.DeclensionRule{}, fmt.Errorf("declension_rule %d: %w", id, domain.ErrNotFound)
	}
	return rule, nil
}

func (s *Service) requireCombination(ctx context.Context, langID uuid.UUID, typeID int64, id domain.CombinationID) error {
	if err := s.requireType(ctx, langID, typeID); err != nil {
		return err
	}
	templates, err := s.grammar.ListTemplates(ctx, langID, typeID)
	if err != nil {
		return fmt.Errorf("list templates: %w", err)
	}
	if !slices.ContainsFunc(declension.Combinations(templates), func(c domain.Combination) bool { return c.ID == id }) {
		return domain.NewValidationError("combination_id", fmt.Sprintf("unknown combination %s", id))
	}
	return nil
}

// checkRule validates structure, regex syntax and class filters.
func (s *Service) checkRule(ctx context.Context, r domain.DeclensionRule) error {
	if err := r.Validate(); err != nil {
		return err
	}

	var errs domain.FieldErrors
	opts := pattern.Options{Timeout: s.cfg.RegexTimeout}
	if err := pattern.Validate(r.Pattern); err != nil {
		errs.Add("pattern", err.Error())
	}
	for i, t := range r.Transforms {
		if _, err := pattern.NewReplacer(t.Pattern, t.Replacement, opts); err != nil {
			errs.Add(fmt.Sprintf("transforms[%d]", i), err.Error())
		}
	}

	if len(r.ClassFilters) > 0 {
		classes, err := s.lexicon.ListClasses(ctx, r.LanguageID)
		if err != nil {
			return fmt.Errorf("list classes: %w", err)
		}
		for _, f := range r.ClassFilters {
			field := fmt.Sprintf("class_filters[%d]", f.ClassID)
			i := slices.IndexFunc(classes, func(c domain.WordClass) bool { return c.ID == f.ClassID })
			switch {
			case i < 0:
				errs.Add(field, "unknown class")
			case !classes[i].HasValue(f.ValueID):
				errs.Add(field, fmt.Sprintf("value %d does not belong to class %q", f.ValueID, classes[i].Name))
			}
		}
	}
	return errs.Err()
}

func ruleIDs(rules []domain.DeclensionRule) []int64 {
	ids := make([]int64, len(rules))
	for i, r := range rules {
		ids[i] = r.ID
	}
	return ids
}
