// Package language implements the Language repository using PostgreSQL.
// It owns the languages table, the per-language id allocator and the
// phonology guide options.
package language

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

// Repo provides language persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new language repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const languageColumns = `id, name, ignore_case, disable_regex, created_at, updated_at`

const insertSQL = `
INSERT INTO languages (id, name, ignore_case, disable_regex)
VALUES ($1, $2, $3, $4)
RETURNING ` + languageColumns

const getByIDSQL = `SELECT ` + languageColumns + ` FROM languages WHERE id = $1`

const listSQL = `SELECT ` + languageColumns + ` FROM languages ORDER BY lower(name), id`

const nextIDSQL = `
UPDATE languages SET next_id = next_id + 1
WHERE id = $1
RETURNING next_id - 1`

const reserveIDSQL = `
UPDATE languages SET next_id = GREATEST(next_id, $2 + 1)
WHERE id = $1`

// ---------------------------------------------------------------------------
// Languages
// ---------------------------------------------------------------------------

// Create inserts a language and returns it with server timestamps.
// Returns domain.ErrAlreadyExists if the name is taken (case-insensitive).
func (r *Repo) Create(ctx context.Context, lang domain.Language) (*domain.Language, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, insertSQL, lang.ID, lang.Name, lang.Settings.IgnoreCase, lang.Settings.DisableRegex)
	out, err := scanLanguage(row)
	if err != nil {
		return nil, postgres.MapError(err, "language", lang.ID)
	}
	return out, nil
}

// GetByID returns a language by primary key.
// Returns domain.ErrNotFound if the language does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanLanguage(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "language", id)
	}
	return out, nil
}

// List returns every language ordered by name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]domain.Language, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	defer rows.Close()

	out := []domain.Language{}
	for rows.Next() {
		l, err := scanLanguage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan language: %w", err)
		}
		out = append(out, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	return out, nil
}

// Update stores the name and settings of a language.
func (r *Repo) Update(ctx context.Context, lang domain.Language) (*domain.Language, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Update("languages").
		Set("name", lang.Name).
		Set("ignore_case", lang.Settings.IgnoreCase).
		Set("disable_regex", lang.Settings.DisableRegex).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": lang.ID}).
		Suffix("RETURNING " + languageColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update language: %w", err)
	}

	out, err := scanLanguage(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "language", lang.ID)
	}
	return out, nil
}

// Delete removes a language and, through foreign keys, everything in it.
// Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete("languages").Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "language", id)
	}
	if n == 0 {
		return fmt.Errorf("language %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Id allocator
// ---------------------------------------------------------------------------

// NextID hands out the next free entity id inside a language. Ids are never
// reused, even after deletes.
func (r *Repo) NextID(ctx context.Context, langID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var id int64
	if err := q.QueryRow(ctx, nextIDSQL, langID).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "language", langID)
	}
	return id, nil
}

// ReserveID moves the allocator past an explicitly chosen id so later
// NextID calls never hand it out.
func (r *Repo) ReserveID(ctx context.Context, langID uuid.UUID, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, reserveIDSQL, langID, id)
	if err != nil {
		return postgres.MapError(err, "language", langID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("language %s: %w", langID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanLanguage(row pgx.Row) (*domain.Language, error) {
	var l domain.Language
	err := row.Scan(&l.ID, &l.Name, &l.Settings.IgnoreCase, &l.Settings.DisableRegex, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
