// Package phonology implements the pronunciation and romanization rule
// repository using PostgreSQL. Both guides share one table keyed by kind.
package phonology

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/conlang-backend/internal/adapter/postgres"
	"github.com/heartmarshall/conlang-backend/internal/domain"
)

// Repo provides pronunciation rule persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new phonology repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const ruleColumns = `id, language_id, kind, position, pattern, phoneme`

const listSQL = `
SELECT ` + ruleColumns + `
FROM pronunciation_rules
WHERE language_id = $1 AND kind = $2
ORDER BY position, id`

const getSQL = `
SELECT ` + ruleColumns + `
FROM pronunciation_rules
WHERE language_id = $1 AND kind = $2 AND id = $3`

const insertSQL = `
INSERT INTO pronunciation_rules (language_id, kind, id, position, pattern, phoneme)
VALUES ($1, $2, $3, $4, $5, $6)`

const setPositionSQL = `
UPDATE pronunciation_rules SET position = $4
WHERE language_id = $1 AND kind = $2 AND id = $3`

// List returns the rules of one guide in priority order.
// Returns an empty slice (not nil) when the guide has no rules.
func (r *Repo) List(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) ([]domain.PronunciationRule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL, langID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list pronunciation rules: %w", err)
	}
	defer rows.Close()

	out := []domain.PronunciationRule{}
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pronunciation rule: %w", err)
		}
		out = append(out, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pronunciation rules: %w", err)
	}
	return out, nil
}

// Get returns one rule. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Get(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, id int64) (domain.PronunciationRule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rule, err := scanRule(q.QueryRow(ctx, getSQL, langID, string(kind), id))
	if err != nil {
		return domain.PronunciationRule{}, postgres.MapError(err, "pronunciation_rule", id)
	}
	return rule, nil
}

// Create inserts a rule. Returns domain.ErrAlreadyExists on a duplicate id.
func (r *Repo) Create(ctx context.Context, rule domain.PronunciationRule) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertSQL, rule.LanguageID, string(rule.Kind), rule.ID, rule.Position, rule.Pattern, rule.Phoneme)
	if err != nil {
		return postgres.MapError(err, "pronunciation_rule", rule.ID)
	}
	return nil
}

// Update stores the pattern and phoneme of a rule. Position is changed only
// through SetPositions.
func (r *Repo) Update(ctx context.Context, rule domain.PronunciationRule) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Update("pronunciation_rules").
		Set("pattern", rule.Pattern).
		Set("phoneme", rule.Phoneme).
		Where(sq.Eq{"language_id": rule.LanguageID, "kind": string(rule.Kind), "id": rule.ID}))
	if err != nil {
		return postgres.MapError(err, "pronunciation_rule", rule.ID)
	}
	if n == 0 {
		return fmt.Errorf("pronunciation_rule %d: %w", rule.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a rule. Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("pronunciation_rules").
		Where(sq.Eq{"language_id": langID, "kind": string(kind), "id": id}))
	if err != nil {
		return postgres.MapError(err, "pronunciation_rule", id)
	}
	if n == 0 {
		return fmt.Errorf("pronunciation_rule %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetPositions renumbers the guide so that ids[i] gets position i+1.
// Sent as a single batch.
func (r *Repo) SetPositions(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for i, id := range ids {
		batch.Queue(setPositionSQL, langID, string(kind), id, i+1)
	}

	return postgres.ExecBatch(ctx, q, batch, func(i int, err error) error {
		return postgres.MapError(err, "pronunciation_rule", ids[i])
	})
}

func scanRule(row pgx.Row) (domain.PronunciationRule, error) {
	var (
		rule domain.PronunciationRule
		kind string
	)
	err := row.Scan(&rule.ID, &rule.LanguageID, &kind, &rule.Position, &rule.Pattern, &rule.Phoneme)
	rule.Kind = domain.GuideKind(kind)
	return rule, err
}
