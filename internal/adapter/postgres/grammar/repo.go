// Package grammar implements the declension repository using PostgreSQL:
// templates and their dimensions, rules with transforms and class filters,
// combination settings and per-word overrides.
package grammar

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

// Repo provides declension persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new grammar repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Templates
// ---------------------------------------------------------------------------

const insertTemplateSQL = `
INSERT INTO declension_templates (language_id, id, type_id, name, notes, mandatory, position, singleton, combination_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const insertDimensionSQL = `
INSERT INTO declension_dimensions (language_id, id, template_id, name, mandatory, position)
VALUES ($1, $2, $3, $4, $5, $6)`

const listTemplatesSQL = `
SELECT id, language_id, type_id, name, notes, mandatory, position, singleton, combination_id
FROM declension_templates
WHERE language_id = $1 AND type_id = $2
ORDER BY position, id`

const listDimensionsSQL = `
SELECT d.id, d.template_id, d.name, d.mandatory, d.position
FROM declension_dimensions d
JOIN declension_templates t ON t.language_id = d.language_id AND t.id = d.template_id
WHERE d.language_id = $1 AND t.type_id = $2
ORDER BY d.template_id, d.position, d.id`

const setTemplatePositionSQL = `
UPDATE declension_templates SET position = $3
WHERE language_id = $1 AND id = $2`

// CreateTemplate inserts a template and its dimensions.
func (r *Repo) CreateTemplate(ctx context.Context, t domain.DeclensionTemplate) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertTemplateSQL,
		t.LanguageID, t.ID, t.TypeID, t.Name, t.Notes, t.Mandatory, t.Position, t.Singleton, string(t.CombinationID))
	if err != nil {
		return postgres.MapError(err, "declension_template", t.ID)
	}
	for _, d := range t.Dimensions {
		d.TemplateID = t.ID
		if err := r.AddDimension(ctx, t.LanguageID, d); err != nil {
			return err
		}
	}
	return nil
}

// AddDimension inserts one dimension of an existing template.
func (r *Repo) AddDimension(ctx context.Context, langID uuid.UUID, d domain.DeclensionDimension) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, insertDimensionSQL, langID, d.ID, d.TemplateID, d.Name, d.Mandatory, d.Position); err != nil {
		return postgres.MapError(err, "declension_dimension", d.ID)
	}
	return nil
}

// ListTemplates returns the templates of one part of speech in position
// order, each with its dimensions in position order.
func (r *Repo) ListTemplates(ctx context.Context, langID uuid.UUID, typeID int64) ([]domain.DeclensionTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listTemplatesSQL, langID, typeID)
	if err != nil {
		return nil, fmt.Errorf("list declension templates: %w", err)
	}
	defer rows.Close()

	out := []domain.DeclensionTemplate{}
	index := make(map[int64]int)
	for rows.Next() {
		var (
			t    domain.DeclensionTemplate
			comb string
		)
		if err := rows.Scan(&t.ID, &t.LanguageID, &t.TypeID, &t.Name, &t.Notes, &t.Mandatory, &t.Position, &t.Singleton, &comb); err != nil {
			return nil, fmt.Errorf("scan declension template: %w", err)
		}
		t.CombinationID = domain.CombinationID(comb)
		index[t.ID] = len(out)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list declension templates: %w", err)
	}

	drows, err := q.Query(ctx, listDimensionsSQL, langID, typeID)
	if err != nil {
		return nil, fmt.Errorf("list declension dimensions: %w", err)
	}
	defer drows.Close()

	for drows.Next() {
		var d domain.DeclensionDimension
		if err := drows.Scan(&d.ID, &d.TemplateID, &d.Name, &d.Mandatory, &d.Position); err != nil {
			return nil, fmt.Errorf("scan declension dimension: %w", err)
		}
		if i, ok := index[d.TemplateID]; ok {
			out[i].Dimensions = append(out[i].Dimensions, d)
		}
	}
	return out, drows.Err()
}

// UpdateTemplate stores name, notes and the mandatory flag.
func (r *Repo) UpdateTemplate(ctx context.Context, t domain.DeclensionTemplate) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Update("declension_templates").
		Set("name", t.Name).
		Set("notes", t.Notes).
		Set("mandatory", t.Mandatory).
		Where(sq.Eq{"language_id": t.LanguageID, "id": t.ID}))
	if err != nil {
		return postgres.MapError(err, "declension_template", t.ID)
	}
	if n == 0 {
		return fmt.Errorf("declension_template %d: %w", t.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteTemplate removes a template and its dimensions.
func (r *Repo) DeleteTemplate(ctx context.Context, langID uuid.UUID, id int64) error {
	return r.deleteOne(ctx, "declension_templates", "declension_template", langID, id)
}

// DeleteDimension removes one dimension.
func (r *Repo) DeleteDimension(ctx context.Context, langID uuid.UUID, id int64) error {
	return r.deleteOne(ctx, "declension_dimensions", "declension_dimension", langID, id)
}

// SetTemplatePositions renumbers templates so that ids[i] gets position i+1.
func (r *Repo) SetTemplatePositions(ctx context.Context, langID uuid.UUID, ids []int64) error {
	return r.setPositions(ctx, setTemplatePositionSQL, "declension_template", langID, ids)
}

func (r *Repo) deleteOne(ctx context.Context, table, entity string, langID uuid.UUID, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete(table).
		Where(sq.Eq{"language_id": langID, "id": id}))
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) setPositions(ctx context.Context, sql, entity string, langID uuid.UUID, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for i, id := range ids {
		batch.Queue(sql, langID, id, i+1)
	}

	return postgres.ExecBatch(ctx, q, batch, func(i int, err error) error {
		return postgres.MapError(err, entity, ids[i])
	})
}
