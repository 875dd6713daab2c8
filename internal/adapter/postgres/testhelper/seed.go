package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/conlang-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedLanguage creates an empty language with default settings and both
// phonology guides. Its id allocator starts at 1000 so seeded rows with
// small explicit ids never collide with allocated ones.
func SeedLanguage(t *testing.T, pool *pgxpool.Pool) domain.Language {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	lang := domain.Language{
		ID:        uuid.New(),
		Name:      "Testlang " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO languages (id, name, next_id, created_at, updated_at) VALUES ($1, $2, 1000, $3, $4)`,
		lang.ID, lang.Name, lang.CreatedAt, lang.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLanguage insert language: %v", err)
	}

	for _, kind := range []domain.GuideKind{domain.GuideKindPronunciation, domain.GuideKindRomanization} {
		g := domain.DefaultGuide(lang.ID, kind)
		_, err = pool.Exec(ctx,
			`INSERT INTO phonology_guides (language_id, kind, enabled) VALUES ($1, $2, $3)`,
			g.LanguageID, string(g.Kind), g.Enabled,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedLanguage insert guide: %v", err)
		}
	}

	return lang
}

// SeedPartOfSpeech creates a part of speech with the given id.
func SeedPartOfSpeech(t *testing.T, pool *pgxpool.Pool, langID uuid.UUID, id int64, name string) domain.PartOfSpeech {
	t.Helper()

	pos := domain.PartOfSpeech{ID: id, LanguageID: langID, Name: name}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO parts_of_speech (language_id, id, name) VALUES ($1, $2, $3)`,
		pos.LanguageID, pos.ID, pos.Name,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPartOfSpeech: %v", err)
	}
	return pos
}

// SeedWord creates a word, optionally typed.
func SeedWord(t *testing.T, pool *pgxpool.Pool, langID uuid.UUID, id int64, value string, typeID *int64) domain.Word {
	t.Helper()

	w := domain.Word{ID: id, LanguageID: langID, Value: value, TypeID: typeID}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO words (language_id, id, value, type_id) VALUES ($1, $2, $3, $4)`,
		w.LanguageID, w.ID, w.Value, w.TypeID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord: %v", err)
	}
	return w
}
