package lexicon

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/conlang-backend/internal/adapter/postgres"
	"github.com/heartmarshall/conlang-backend/internal/domain"
)

const insertWordSQL = `
INSERT INTO words (language_id, id, value, type_id)
VALUES ($1, $2, $3, $4)`

const getWordSQL = `SELECT id, language_id, value, type_id FROM words WHERE language_id = $1 AND id = $2`

const listAssignmentsSQL = `
SELECT word_id, class_id, value_id
FROM word_class_assignments
WHERE language_id = $1 AND word_id = ANY($2::bigint[])`

const upsertAssignmentSQL = `
INSERT INTO word_class_assignments (language_id, word_id, class_id, value_id)
VALUES ($1, $2, $3, $4)
ON CONFLICT (language_id, word_id, class_id) DO UPDATE SET value_id = EXCLUDED.value_id`

// CreateWord inserts a word and its class assignments.
func (r *Repo) CreateWord(ctx context.Context, w domain.Word) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, insertWordSQL, w.LanguageID, w.ID, w.Value, w.TypeID); err != nil {
		return postgres.MapError(err, "word", w.ID)
	}
	for classID, valueID := range w.Classes {
		if err := r.SetWordClass(ctx, w.LanguageID, w.ID, classID, valueID); err != nil {
			return err
		}
	}
	return nil
}

// GetWord returns one word with its class assignments.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetWord(ctx context.Context, langID uuid.UUID, id int64) (domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var w domain.Word
	if err := q.QueryRow(ctx, getWordSQL, langID, id).Scan(&w.ID, &w.LanguageID, &w.Value, &w.TypeID); err != nil {
		return domain.Word{}, postgres.MapError(err, "word", id)
	}

	words := []domain.Word{w}
	if err := r.attachClasses(ctx, langID, words); err != nil {
		return domain.Word{}, err
	}
	return words[0], nil
}

// ListWords returns words ordered by id, with class assignments.
func (r *Repo) ListWords(ctx context.Context, langID uuid.UUID, f domain.WordFilter) ([]domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().
		Select("id", "language_id", "value", "type_id").
		From("words").
		Where(sq.Eq{"language_id": langID}).
		OrderBy("id")
	if f.TypeID != nil {
		b = b.Where(sq.Eq{"type_id": *f.TypeID})
	}
	if f.Prefix != "" {
		b = b.Where(sq.ILike{"value": escapeLike(f.Prefix) + "%"})
	}
	if f.Limit > 0 {
		b = b.Limit(f.Limit)
	}
	if f.Offset > 0 {
		b = b.Offset(f.Offset)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	out := []domain.Word{}
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.LanguageID, &w.Value, &w.TypeID); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	if err := r.attachClasses(ctx, langID, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) attachClasses(ctx context.Context, langID uuid.UUID, words []domain.Word) error {
	if len(words) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ids := make([]int64, len(words))
	index := make(map[int64]int, len(words))
	for i, w := range words {
		ids[i] = w.ID
		index[w.ID] = i
		words[i].Classes = map[int64]int64{}
	}

	rows, err := q.Query(ctx, listAssignmentsSQL, langID, ids)
	if err != nil {
		return fmt.Errorf("list word classes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var wordID, classID, valueID int64
		if err := rows.Scan(&wordID, &classID, &valueID); err != nil {
			return fmt.Errorf("scan word class: %w", err)
		}
		words[index[wordID]].Classes[classID] = valueID
	}
	return rows.Err()
}

// UpdateWord stores value and type of a word. Class assignments are changed
// through SetWordClass and RemoveWordClass.
func (r *Repo) UpdateWord(ctx context.Context, w domain.Word) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Update("words").
		Set("value", w.Value).
		Set("type_id", w.TypeID).
		Where(sq.Eq{"language_id": w.LanguageID, "id": w.ID}))
	if err != nil {
		return postgres.MapError(err, "word", w.ID)
	}
	if n == 0 {
		return fmt.Errorf("word %d: %w", w.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteWord removes a word; overrides and class assignments cascade.
func (r *Repo) DeleteWord(ctx context.Context, langID uuid.UUID, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("words").
		Where(sq.Eq{"language_id": langID, "id": id}))
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if n == 0 {
		return fmt.Errorf("word %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ClearWordType detaches every word of typeID from it. Returns the number
// of words touched.
func (r *Repo) ClearWordType(ctx context.Context, langID uuid.UUID, typeID int64) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Update("words").
		Set("type_id", nil).
		Where(sq.Eq{"language_id": langID, "type_id": typeID}))
	if err != nil {
		return 0, postgres.MapError(err, "part_of_speech", typeID)
	}
	return n, nil
}

// SetWordClass assigns valueID of classID to a word, replacing any previous value.
func (r *Repo) SetWordClass(ctx context.Context, langID uuid.UUID, wordID, classID, valueID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, upsertAssignmentSQL, langID, wordID, classID, valueID); err != nil {
		return postgres.MapError(err, "word", wordID)
	}
	return nil
}

// RemoveWordClass drops a class assignment. Missing assignments are ignored.
func (r *Repo) RemoveWordClass(ctx context.Context, langID uuid.UUID, wordID, classID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("word_class_assignments").
		Where(sq.Eq{"language_id": langID, "word_id": wordID, "class_id": classID}))
	if err != nil {
		return postgres.MapError(err, "word", wordID)
	}
	return nil
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
