package lexicon

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/conlang-backend/internal/adapter/postgres"
	"github.com/heartmarshall/conlang-backend/internal/domain"
)

const insertClassSQL = `
INSERT INTO word_classes (language_id, id, name, free_text, type_ids)
VALUES ($1, $2, $3, $4, $5)`

const insertClassValueSQL = `
INSERT INTO word_class_values (language_id, class_id, id, value)
VALUES ($1, $2, $3, $4)`

const listClassesSQL = `
SELECT id, language_id, name, free_text, type_ids
FROM word_classes
WHERE language_id = $1
ORDER BY id`

const listClassValuesSQL = `
SELECT id, class_id, value
FROM word_class_values
WHERE language_id = $1
ORDER BY class_id, id`

// CreateClass inserts a word class together with its values.
// Returns domain.ErrAlreadyExists on a duplicate class or value id.
func (r *Repo) CreateClass(ctx context.Context, c domain.WordClass) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	typeIDs := c.TypeIDs
	if typeIDs == nil {
		typeIDs = []int64{}
	}
	if _, err := q.Exec(ctx, insertClassSQL, c.LanguageID, c.ID, c.Name, c.FreeText, typeIDs); err != nil {
		return postgres.MapError(err, "word_class", c.ID)
	}
	for _, v := range c.Values {
		if err := r.AddClassValue(ctx, c.LanguageID, domain.WordClassValue{ID: v.ID, ClassID: c.ID, Value: v.Value}); err != nil {
			return err
		}
	}
	return nil
}

// AddClassValue inserts one enumerated value of a class.
func (r *Repo) AddClassValue(ctx context.Context, langID uuid.UUID, v domain.WordClassValue) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, insertClassValueSQL, langID, v.ClassID, v.ID, v.Value); err != nil {
		return postgres.MapError(err, "word_class_value", v.ID)
	}
	return nil
}

// ListClasses returns every class of a language with its values.
func (r *Repo) ListClasses(ctx context.Context, langID uuid.UUID) ([]domain.WordClass, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listClassesSQL, langID)
	if err != nil {
		return nil, fmt.Errorf("list word classes: %w", err)
	}
	defer rows.Close()

	out := []domain.WordClass{}
	index := make(map[int64]int)
	for rows.Next() {
		var c domain.WordClass
		if err := rows.Scan(&c.ID, &c.LanguageID, &c.Name, &c.FreeText, &c.TypeIDs); err != nil {
			return nil, fmt.Errorf("scan word class: %w", err)
		}
		index[c.ID] = len(out)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list word classes: %w", err)
	}

	vrows, err := q.Query(ctx, listClassValuesSQL, langID)
	if err != nil {
		return nil, fmt.Errorf("list word class values: %w", err)
	}
	defer vrows.Close()

	for vrows.Next() {
		var v domain.WordClassValue
		if err := vrows.Scan(&v.ID, &v.ClassID, &v.Value); err != nil {
			return nil, fmt.Errorf("scan word class value: %w", err)
		}
		if i, ok := index[v.ClassID]; ok {
			out[i].Values = append(out[i].Values, v)
		}
	}
	return out, vrows.Err()
}

// DeleteClass removes a class, its values, every word assignment of it and
// the declension rule filters that name it.
func (r *Repo) DeleteClass(ctx context.Context, langID uuid.UUID, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("declension_class_filters").
		Where(sq.Eq{"language_id": langID, "class_id": id})); err != nil {
		return postgres.MapError(err, "word_class", id)
	}

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("word_classes").
		Where(sq.Eq{"language_id": langID, "id": id}))
	if err != nil {
		return postgres.MapError(err, "word_class", id)
	}
	if n == 0 {
		return fmt.Errorf("word_class %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteClassValue removes one value together with the word assignments and
// declension rule filters that used it.
func (r *Repo) DeleteClassValue(ctx context.Context, langID uuid.UUID, valueID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("declension_class_filters").
		Where(sq.Eq{"language_id": langID, "value_id": valueID})); err != nil {
		return postgres.MapError(err, "word_class_value", valueID)
	}

	if _, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("word_class_assignments").
		Where(sq.Eq{"language_id": langID, "value_id": valueID})); err != nil {
		return postgres.MapError(err, "word_class_value", valueID)
	}

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("word_class_values").
		Where(sq.Eq{"language_id": langID, "id": valueID}))
	if err != nil {
		return postgres.MapError(err, "word_class_value", valueID)
	}
	if n == 0 {
		return fmt.Errorf("word_class_value %d: %w", valueID, domain.ErrNotFound)
	}
	return nil
}
