package language

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/conlang-backend/internal/adapter/postgres"
	"github.com/heartmarshall/conlang-backend/internal/domain"
)

var errUnknownKind = errors.New("unknown guide kind")

const getGuideSQL = `
SELECT recursive, syllable_composition, enabled, syllables
FROM phonology_guides
WHERE language_id = $1 AND kind = $2`

const upsertGuideSQL = `
INSERT INTO phonology_guides (language_id, kind, recursive, syllable_composition, enabled, syllables)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (language_id, kind) DO UPDATE SET
    recursive            = EXCLUDED.recursive,
    syllable_composition = EXCLUDED.syllable_composition,
    enabled              = EXCLUDED.enabled,
    syllables            = EXCLUDED.syllables`

// GetGuide returns the options of one phonology guide. A language that never
// stored the guide gets domain.DefaultGuide.
func (r *Repo) GetGuide(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) (domain.PhonologyGuide, error) {
	if !kind.IsValid() {
		return domain.PhonologyGuide{}, fmt.Errorf("guide %q: %w", kind, errUnknownKind)
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	g := domain.PhonologyGuide{LanguageID: langID, Kind: kind}
	err := q.QueryRow(ctx, getGuideSQL, langID, string(kind)).
		Scan(&g.Recursive, &g.SyllableComposition, &g.Enabled, &g.Syllables)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.DefaultGuide(langID, kind), nil
	}
	if err != nil {
		return domain.PhonologyGuide{}, postgres.MapError(err, "phonology_guide", kind)
	}
	return g, nil
}

// UpsertGuide stores the options of one phonology guide.
func (r *Repo) UpsertGuide(ctx context.Context, g domain.PhonologyGuide) error {
	if !g.Kind.IsValid() {
		return fmt.Errorf("guide %q: %w", g.Kind, errUnknownKind)
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	syllables := g.Syllables
	if syllables == nil {
		syllables = []string{}
	}
	_, err := q.Exec(ctx, upsertGuideSQL, g.LanguageID, string(g.Kind), g.Recursive, g.SyllableComposition, g.Enabled, syllables)
	if err != nil {
		return postgres.MapError(err, "phonology_guide", g.Kind)
	}
	return nil
}
