package services

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"homeservices-backend/internal/database"
	"homeservices-backend/internal/models"
	"homeservices-backend/internal/repository"
	"homeservices-backend/internal/translate"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testDB(t *testing.T) *database.Database {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(gdb))
	require.NoError(t, database.SeedLanguages(gdb))

	db := database.New(gdb, 5*time.Second)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testRegistry(t *testing.T, db *database.Database) *LanguageRegistry {
	t.Helper()

	registry, err := NewLanguageRegistry(context.Background(), repository.NewLanguageRepository(db))
	require.NoError(t, err)
	return registry
}

func buildService(slug string) func(lang models.Language, content translate.Content) models.Service {
	return func(lang models.Language, content translate.Content) models.Service {
		return models.Service{
			Slug:       slug,
			LanguageID: lang.ID,
			Name:       content["name"],
			Title:      content["title"],
			IsActive:   true,
			SortOrder:  1,
		}
	}
}

func TestReplicatorCreate(t *testing.T) {
	db := testDB(t)
	registry := testRegistry(t, db)
	repo := repository.NewReplicatedRepository[models.Service](db, "slug")
	translator := translate.Static{ByLanguage: map[string]translate.Content{
		"ar": {"name": "تنظيف عميق", "title": "خدمة سريعة"},
		"de": {"name": "Tiefenreinigung", "title": "Schneller Service"},
	}}
	rep := NewReplicator(repo, registry, translator, testLogger(), "service")
	ctx := context.Background()

	source := translate.Content{"name": "Deep Cleaning", "title": "Fast Service"}
	created, err := rep.Create(ctx, "deep-cleaning", source, buildService("deep-cleaning"))
	require.NoError(t, err)

	// One row per registered language.
	require.Len(t, created, len(registry.All()))

	byCode := make(map[string]models.Service)
	for _, row := range created {
		byCode[registry.CodeForID(row.LanguageID)] = row
	}

	// Source language keeps the authored text.
	assert.Equal(t, "Deep Cleaning", byCode["en"].Name)
	// Translated languages get the gateway output.
	assert.Equal(t, "تنظيف عميق", byCode["ar"].Name)
	assert.Equal(t, "Tiefenreinigung", byCode["de"].Name)
	// Languages the gateway failed for fall back to source text.
	assert.Equal(t, "Deep Cleaning", byCode["fr"].Name)
	assert.Equal(t, "Deep Cleaning", byCode["zh"].Name)

	// Shared fields are identical on every row.
	for code, row := range byCode {
		assert.Equal(t, "deep-cleaning", row.Slug, "slug for %s", code)
		assert.True(t, row.IsActive, "isActive for %s", code)
		assert.Equal(t, 1, row.SortOrder, "sortOrder for %s", code)
	}
}

func TestReplicatorCreateDuplicateKeyFails(t *testing.T) {
	db := testDB(t)
	registry := testRegistry(t, db)
	repo := repository.NewReplicatedRepository[models.Service](db, "slug")
	rep := NewReplicator(repo, registry, translate.Static{}, testLogger(), "service")
	ctx := context.Background()

	source := translate.Content{"name": "Plumbing"}
	_, err := rep.Create(ctx, "plumbing", source, buildService("plumbing"))
	require.NoError(t, err)

	// The source-language row collides on (slug, language), which aborts.
	_, err = rep.Create(ctx, "plumbing", source, buildService("plumbing"))
	assert.Error(t, err)
}

func TestReplicatorUpdate(t *testing.T) {
	db := testDB(t)
	registry := testRegistry(t, db)
	repo := repository.NewReplicatedRepository[models.Service](db, "slug")
	translator := translate.Static{ByLanguage: map[string]translate.Content{
		"ar": {"name": "سباكة"},
	}}
	rep := NewReplicator(repo, registry, translator, testLogger(), "service")
	ctx := context.Background()

	_, err := rep.Create(ctx, "plumbing", translate.Content{"name": "Plumbing"}, buildService("plumbing"))
	require.NoError(t, err)

	t.Run("translated fields re-translate per language", func(t *testing.T) {
		rows, err := rep.Update(ctx, "plumbing", translate.Content{"name": "Emergency Plumbing"}, func(row *models.Service, content translate.Content) {
			if v, ok := content["name"]; ok {
				row.Name = v
			}
		})
		require.NoError(t, err)
		require.Len(t, rows, len(registry.All()))

		for _, row := range rows {
			switch registry.CodeForID(row.LanguageID) {
			case "en":
				assert.Equal(t, "Emergency Plumbing", row.Name)
			case "ar":
				assert.Equal(t, "سباكة", row.Name)
			default:
				assert.Equal(t, "Emergency Plumbing", row.Name)
			}
		}
	})

	t.Run("shared-only update touches every row identically", func(t *testing.T) {
		rows, err := rep.Update(ctx, "plumbing", nil, func(row *models.Service, _ translate.Content) {
			row.IsActive = false
		})
		require.NoError(t, err)

		persisted, err := rep.Rows(ctx, "plumbing")
		require.NoError(t, err)
		require.Len(t, persisted, len(rows))
		for _, row := range persisted {
			assert.False(t, row.IsActive)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := rep.Update(ctx, "missing", nil, func(*models.Service, translate.Content) {})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReplicatorDelete(t *testing.T) {
	db := testDB(t)
	registry := testRegistry(t, db)
	repo := repository.NewReplicatedRepository[models.Service](db, "slug")
	rep := NewReplicator(repo, registry, translate.Static{}, testLogger(), "service")
	ctx := context.Background()

	_, err := rep.Create(ctx, "painting", translate.Content{"name": "Painting"}, buildService("painting"))
	require.NoError(t, err)

	require.NoError(t, rep.Delete(ctx, "painting"))

	rows, err := rep.Rows(ctx, "painting")
	require.NoError(t, err)
	assert.Empty(t, rows, "delete must remove every language row")

	assert.ErrorIs(t, rep.Delete(ctx, "painting"), ErrNotFound)
}

func TestReplicatorGet(t *testing.T) {
	db := testDB(t)
	registry := testRegistry(t, db)
	repo := repository.NewReplicatedRepository[models.Service](db, "slug")
	translator := translate.Static{ByLanguage: map[string]translate.Content{
		"pt": {"name": "Limpeza"},
	}}
	rep := NewReplicator(repo, registry, translator, testLogger(), "service")
	ctx := context.Background()

	_, err := rep.Create(ctx, "cleaning", translate.Content{"name": "Cleaning"}, buildService("cleaning"))
	require.NoError(t, err)

	row, err := rep.Get(ctx, "cleaning", "pt")
	require.NoError(t, err)
	assert.Equal(t, "Limpeza", row.Name)
	require.NotNil(t, row.Language)
	assert.Equal(t, "pt", row.Language.Code)

	_, err = rep.Get(ctx, "cleaning", "xx")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = rep.Get(ctx, "missing", "en")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReplicatorReorder(t *testing.T) {
	db := testDB(t)
	registry := testRegistry(t, db)
	repo := repository.NewReplicatedRepository[models.Service](db, "slug")
	rep := NewReplicator(repo, registry, translate.Static{}, testLogger(), "service")
	ctx := context.Background()

	// Two items deliberately sharing the same sort position.
	for _, slug := range []string{"cleaning", "plumbing"} {
		_, err := rep.Create(ctx, slug, translate.Content{"name": slug}, buildService(slug))
		require.NoError(t, err)
	}

	require.NoError(t, rep.Reorder(ctx, "cleaning", 5))

	moved, err := rep.Rows(ctx, "cleaning")
	require.NoError(t, err)
	for _, row := range moved {
		assert.Equal(t, 5, row.SortOrder)
	}

	// The other item with the same original position is untouched.
	untouched, err := rep.Rows(ctx, "plumbing")
	require.NoError(t, err)
	for _, row := range untouched {
		assert.Equal(t, 1, row.SortOrder)
	}

	assert.ErrorIs(t, rep.Reorder(ctx, "missing", 2), ErrNotFound)
}

func TestReplicatorAllGrouped(t *testing.T) {
	db := testDB(t)
	registry := testRegistry(t, db)
	repo := repository.NewReplicatedRepository[models.Service](db, "slug")
	rep := NewReplicator(repo, registry, translate.Static{}, testLogger(), "service")
	ctx := context.Background()

	for _, slug := range []string{"cleaning", "plumbing"} {
		_, err := rep.Create(ctx, slug, translate.Content{"name": slug}, buildService(slug))
		require.NoError(t, err)
	}

	grouped, err := rep.AllGrouped(ctx, repository.ListOptions{OrderBy: "slug ASC, language_id ASC"})
	require.NoError(t, err)
	require.Len(t, grouped, 2)

	assert.Equal(t, "cleaning", grouped[0].Key)
	assert.Equal(t, "plumbing", grouped[1].Key)
	for _, item := range grouped {
		assert.Len(t, item.Translations, len(registry.All()))
		for _, lang := range registry.All() {
			row, ok := item.Translations[lang.Code]
			require.True(t, ok, "missing %s row for %s", lang.Code, item.Key)
			assert.Equal(t, item.Key, row.Slug)
		}
	}
}

func TestReplicatorList(t *testing.T) {
	db := testDB(t)
	registry := testRegistry(t, db)
	repo := repository.NewReplicatedRepository[models.Service](db, "slug")
	rep := NewReplicator(repo, registry, translate.Static{}, testLogger(), "service")
	ctx := context.Background()

	for _, slug := range []string{"cleaning", "plumbing", "painting"} {
		_, err := rep.Create(ctx, slug, translate.Content{"name": slug}, buildService(slug))
		require.NoError(t, err)
	}

	rows, total, err := rep.List(ctx, "ar", repository.ListOptions{OrderBy: "slug ASC", Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, rows, 2)

	// Only rows of the requested language come back.
	ar, _ := registry.ByCode("ar")
	for _, row := range rows {
		assert.Equal(t, ar.ID, row.LanguageID)
	}

	_, _, err = rep.List(ctx, "xx", repository.ListOptions{})
	assert.ErrorIs(t, err, ErrNotFound)
}
