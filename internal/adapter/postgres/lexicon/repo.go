// Package lexicon implements the parts-of-speech, word-class and word
// repository using PostgreSQL.
package lexicon

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

// Repo provides lexicon persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lexicon repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Parts of speech
// ---------------------------------------------------------------------------

const posColumns = `id, language_id, name, notes`

const insertPOSSQL = `
INSERT INTO parts_of_speech (language_id, id, name, notes)
VALUES ($1, $2, $3, $4)`

const getPOSSQL = `SELECT ` + posColumns + ` FROM parts_of_speech WHERE language_id = $1 AND id = $2`

const listPOSSQL = `SELECT ` + posColumns + ` FROM parts_of_speech WHERE language_id = $1 ORDER BY id`

// CreatePartOfSpeech inserts a part of speech.
// Returns domain.ErrAlreadyExists on a duplicate id.
func (r *Repo) CreatePartOfSpeech(ctx context.Context, p domain.PartOfSpeech) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, insertPOSSQL, p.LanguageID, p.ID, p.Name, p.Notes); err != nil {
		return postgres.MapError(err, "part_of_speech", p.ID)
	}
	return nil
}

// GetPartOfSpeech returns one part of speech.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetPartOfSpeech(ctx context.Context, langID uuid.UUID, id int64) (domain.PartOfSpeech, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPOS(q.QueryRow(ctx, getPOSSQL, langID, id))
	if err != nil {
		return domain.PartOfSpeech{}, postgres.MapError(err, "part_of_speech", id)
	}
	return p, nil
}

// ListPartsOfSpeech returns every part of speech of a language ordered by id.
func (r *Repo) ListPartsOfSpeech(ctx context.Context, langID uuid.UUID) ([]domain.PartOfSpeech, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listPOSSQL, langID)
	if err != nil {
		return nil, fmt.Errorf("list parts of speech: %w", err)
	}
	defer rows.Close()

	out := []domain.PartOfSpeech{}
	for rows.Next() {
		p, err := scanPOS(rows)
		if err != nil {
			return nil, fmt.Errorf("scan part of speech: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdatePartOfSpeech stores name and notes.
func (r *Repo) UpdatePartOfSpeech(ctx context.Context, p domain.PartOfSpeech) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Update("parts_of_speech").
		Set("name", p.Name).
		Set("notes", p.Notes).
		Where(sq.Eq{"language_id": p.LanguageID, "id": p.ID}))
	if err != nil {
		return postgres.MapError(err, "part_of_speech", p.ID)
	}
	if n == 0 {
		return fmt.Errorf("part_of_speech %d: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// DeletePartOfSpeech removes a part of speech. Templates, dimensions, rules
// and combination settings go with it through foreign keys; words and their
// overrides are the caller's business.
func (r *Repo) DeletePartOfSpeech(ctx context.Context, langID uuid.UUID, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("parts_of_speech").
		Where(sq.Eq{"language_id": langID, "id": id}))
	if err != nil {
		return postgres.MapError(err, "part_of_speech", id)
	}
	if n == 0 {
		return fmt.Errorf("part_of_speech %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanPOS(row pgx.Row) (domain.PartOfSpeech, error) {
	var p domain.PartOfSpeech
	err := row.Scan(&p.ID, &p.LanguageID, &p.Name, &p.Notes)
	return p, err
}
