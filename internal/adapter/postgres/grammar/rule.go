package grammar

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/conlang-backend/internal/adapter/postgres"
	"github.com/heartmarshall/conlang-backend/internal/domain"
)

const ruleColumns = `id, language_id, type_id, combination_id, name, pattern, position, apply_to_all_classes`

const insertRuleSQL = `
INSERT INTO declension_rules (` + ruleColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const insertTransformSQL = `
INSERT INTO declension_transforms (language_id, rule_id, position, pattern, replacement)
VALUES ($1, $2, $3, $4, $5)`

const insertFilterSQL = `
INSERT INTO declension_class_filters (language_id, rule_id, class_id, value_id)
VALUES ($1, $2, $3, $4)`

const listTransformsSQL = `
SELECT rule_id, pattern, replacement
FROM declension_transforms
WHERE language_id = $1 AND rule_id = ANY($2::bigint[])
ORDER BY rule_id, position`

const listFiltersSQL = `
SELECT rule_id, class_id, value_id
FROM declension_class_filters
WHERE language_id = $1 AND rule_id = ANY($2::bigint[])
ORDER BY rule_id, class_id`

const setRulePositionSQL = `
UPDATE declension_rules SET position = $3
WHERE language_id = $1 AND id = $2`

// ListRules returns the rules of one part of speech in position order with
// transforms and class filters. A nil typeID lists every rule of the language.
func (r *Repo) ListRules(ctx context.Context, langID uuid.UUID, typeID *int64) ([]domain.DeclensionRule, error) {
	b := postgres.Builder().
		Select(ruleColumns).
		From("declension_rules").
		Where(sq.Eq{"language_id": langID}).
		OrderBy("type_id", "position", "id")
	if typeID != nil {
		b = b.Where(sq.Eq{"type_id": *typeID})
	}
	return r.queryRules(ctx, langID, b)
}

// GetRule returns one rule with its children.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetRule(ctx context.Context, langID uuid.UUID, id int64) (domain.DeclensionRule, error) {
	rules, err := r.queryRules(ctx, langID, postgres.Builder().
		Select(ruleColumns).
		From("declension_rules").
		Where(sq.Eq{"language_id": langID, "id": id}))
	if err != nil {
		return domain.DeclensionRule{}, err
	}
	if len(rules) == 0 {
		return domain.DeclensionRule{}, fmt.Errorf("declension_rule %d: %w", id, domain.ErrNotFound)
	}
	return rules[0], nil
}

func (r *Repo) queryRules(ctx context.Context, langID uuid.UUID, b sq.SelectBuilder) ([]domain.DeclensionRule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list rules: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list declension rules: %w", err)
	}
	defer rows.Close()

	out := []domain.DeclensionRule{}
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan declension rule: %w", err)
		}
		out = append(out, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list declension rules: %w", err)
	}
	if len(out) == 0 {
		return out, nil
	}

	ids := make([]int64, len(out))
	index := make(map[int64]int, len(out))
	for i, rule := range out {
		ids[i] = rule.ID
		index[rule.ID] = i
	}

	trows, err := q.Query(ctx, listTransformsSQL, langID, ids)
	if err != nil {
		return nil, fmt.Errorf("list declension transforms: %w", err)
	}
	defer trows.Close()
	for trows.Next() {
		var (
			ruleID int64
			t      domain.Transform
		)
		if err := trows.Scan(&ruleID, &t.Pattern, &t.Replacement); err != nil {
			return nil, fmt.Errorf("scan declension transform: %w", err)
		}
		out[index[ruleID]].Transforms = append(out[index[ruleID]].Transforms, t)
	}
	if err := trows.Err(); err != nil {
		return nil, fmt.Errorf("list declension transforms: %w", err)
	}

	frows, err := q.Query(ctx, listFiltersSQL, langID, ids)
	if err != nil {
		return nil, fmt.Errorf("list declension class filters: %w", err)
	}
	defer frows.Close()
	for frows.Next() {
		var (
			ruleID int64
			f      domain.ClassFilter
		)
		if err := frows.Scan(&ruleID, &f.ClassID, &f.ValueID); err != nil {
			return nil, fmt.Errorf("scan declension class filter: %w", err)
		}
		out[index[ruleID]].ClassFilters = append(out[index[ruleID]].ClassFilters, f)
	}
	return out, frows.Err()
}

// CreateRule inserts a rule with its transforms and class filters.
func (r *Repo) CreateRule(ctx context.Context, rule domain.DeclensionRule) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertRuleSQL,
		rule.ID, rule.LanguageID, rule.TypeID, string(rule.CombinationID), rule.Name, rule.Pattern, rule.Position, rule.ApplyToAllClasses)
	if err != nil {
		return postgres.MapError(err, "declension_rule", rule.ID)
	}
	return r.insertChildren(ctx, q, rule)
}

// UpdateRule stores a rule and replaces its transforms and class filters.
// Position is changed only through SetRulePositions.
func (r *Repo) UpdateRule(ctx context.Context, rule domain.DeclensionRule) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Update("declension_rules").
		Set("combination_id", string(rule.CombinationID)).
		Set("name", rule.Name).
		Set("pattern", rule.Pattern).
		Set("apply_to_all_classes", rule.ApplyToAllClasses).
		Where(sq.Eq{"language_id": rule.LanguageID, "id": rule.ID}))
	if err != nil {
		return postgres.MapError(err, "declension_rule", rule.ID)
	}
	if n == 0 {
		return fmt.Errorf("declension_rule %d: %w", rule.ID, domain.ErrNotFound)
	}

	for _, table := range []string{"declension_transforms", "declension_class_filters"} {
		if _, err := postgres.Exec(ctx, q, postgres.Builder().
			Delete(table).
			Where(sq.Eq{"language_id": rule.LanguageID, "rule_id": rule.ID})); err != nil {
			return postgres.MapError(err, "declension_rule", rule.ID)
		}
	}
	return r.insertChildren(ctx, q, rule)
}

func (r *Repo) insertChildren(ctx context.Context, q postgres.Querier, rule domain.DeclensionRule) error {
	if len(rule.Transforms) == 0 && len(rule.ClassFilters) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, t := range rule.Transforms {
		batch.Queue(insertTransformSQL, rule.LanguageID, rule.ID, i+1, t.Pattern, t.Replacement)
	}
	for _, f := range rule.ClassFilters {
		batch.Queue(insertFilterSQL, rule.LanguageID, rule.ID, f.ClassID, f.ValueID)
	}

	return postgres.ExecBatch(ctx, q, batch, func(_ int, err error) error {
		return postgres.MapError(err, "declension_rule", rule.ID)
	})
}

// DeleteRule removes a rule and its children.
func (r *Repo) DeleteRule(ctx context.Context, langID uuid.UUID, id int64) error {
	return r.deleteOne(ctx, "declension_rules", "declension_rule", langID, id)
}

// SetRulePositions renumbers rules so that ids[i] gets position i+1.
func (r *Repo) SetRulePositions(ctx context.Context, langID uuid.UUID, ids []int64) error {
	return r.setPositions(ctx, setRulePositionSQL, "declension_rule", langID, ids)
}

func scanRule(row pgx.Row) (domain.DeclensionRule, error) {
	var (
		rule domain.DeclensionRule
		comb string
	)
	err := row.Scan(&rule.ID, &rule.LanguageID, &rule.TypeID, &comb, &rule.Name, &rule.Pattern, &rule.Position, &rule.ApplyToAllClasses)
	rule.CombinationID = domain.CombinationID(comb)
	return rule, err
}
