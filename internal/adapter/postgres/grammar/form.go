package grammar

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/conlang-backend/internal/adapter/postgres"
	"github.com/heartmarshall/conlang-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Combination settings
// ---------------------------------------------------------------------------

const listSettingsSQL = `
SELECT type_id, combination_id, suppressed
FROM combination_settings
WHERE language_id = $1 AND type_id = $2
ORDER BY combination_id`

const upsertSettingSQL = `
INSERT INTO combination_settings (language_id, type_id, combination_id, suppressed)
VALUES ($1, $2, $3, $4)
ON CONFLICT (language_id, type_id, combination_id) DO UPDATE SET suppressed = EXCLUDED.suppressed`

// ListSettings returns the stored combination settings of a part of speech.
func (r *Repo) ListSettings(ctx context.Context, langID uuid.UUID, typeID int64) ([]domain.CombinationSetting, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSettingsSQL, langID, typeID)
	if err != nil {
		return nil, fmt.Errorf("list combination settings: %w", err)
	}
	defer rows.Close()

	out := []domain.CombinationSetting{}
	for rows.Next() {
		var (
			s    domain.CombinationSetting
			comb string
		)
		if err := rows.Scan(&s.TypeID, &comb, &s.Suppressed); err != nil {
			return nil, fmt.Errorf("scan combination setting: %w", err)
		}
		s.CombinationID = domain.CombinationID(comb)
		out = append(out, s)
	}
	return out, rows.Err()
}

// UpsertSetting stores one combination setting.
func (r *Repo) UpsertSetting(ctx context.Context, langID uuid.UUID, s domain.CombinationSetting) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, upsertSettingSQL, langID, s.TypeID, string(s.CombinationID), s.Suppressed); err != nil {
		return postgres.MapError(err, "combination_setting", s.CombinationID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Overrides
// ---------------------------------------------------------------------------

const listFormsSQL = `
SELECT word_id, combination_id, value, notes
FROM declension_forms
WHERE language_id = $1 AND word_id = ANY($2::bigint[])
ORDER BY word_id, combination_id`

const upsertFormSQL = `
INSERT INTO declension_forms (language_id, word_id, combination_id, value, notes)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (language_id, word_id, combination_id) DO UPDATE SET
    value = EXCLUDED.value,
    notes = EXCLUDED.notes`

const deleteFormsByTypeSQL = `
DELETE FROM declension_forms f
USING words w
WHERE f.language_id = $1
  AND w.language_id = f.language_id
  AND w.id = f.word_id
  AND w.type_id = $2`

// ListForms returns the overrides of one word.
func (r *Repo) ListForms(ctx context.Context, langID uuid.UUID, wordID int64) (domain.WordForms, error) {
	byWord, err := r.ListFormsByWords(ctx, langID, []int64{wordID})
	if err != nil {
		return nil, err
	}
	return byWord[wordID], nil
}

// ListFormsByWords returns overrides for many words, grouped by word id.
// Words without overrides are absent from the map.
func (r *Repo) ListFormsByWords(ctx context.Context, langID uuid.UUID, wordIDs []int64) (map[int64]domain.WordForms, error) {
	out := make(map[int64]domain.WordForms)
	if len(wordIDs) == 0 {
		return out, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listFormsSQL, langID, wordIDs)
	if err != nil {
		return nil, fmt.Errorf("list declension forms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			n    domain.DeclensionNode
			comb string
		)
		if err := rows.Scan(&n.WordID, &comb, &n.Value, &n.Notes); err != nil {
			return nil, fmt.Errorf("scan declension form: %w", err)
		}
		n.CombinationID = domain.CombinationID(comb)
		out[n.WordID] = append(out[n.WordID], n)
	}
	return out, rows.Err()
}

// UpsertForm stores an override for one combination of a word.
func (r *Repo) UpsertForm(ctx context.Context, langID uuid.UUID, n domain.DeclensionNode) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, upsertFormSQL, langID, n.WordID, string(n.CombinationID), n.Value, n.Notes); err != nil {
		return postgres.MapError(err, "word", n.WordID)
	}
	return nil
}

// DeleteForm clears one override. Returns domain.ErrNotFound if there was none.
func (r *Repo) DeleteForm(ctx context.Context, langID uuid.UUID, wordID int64, id domain.CombinationID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("declension_forms").
		Where(sq.Eq{"language_id": langID, "word_id": wordID, "combination_id": string(id)}))
	if err != nil {
		return postgres.MapError(err, "declension_form", id)
	}
	if n == 0 {
		return fmt.Errorf("declension_form %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteFormsByType clears every override of words carrying typeID.
// Returns the number of overrides removed.
func (r *Repo) DeleteFormsByType(ctx context.Context, langID uuid.UUID, typeID int64) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteFormsByTypeSQL, langID, typeID)
	if err != nil {
		return 0, postgres.MapError(err, "part_of_speech", typeID)
	}
	return tag.RowsAffected(), nil
}
