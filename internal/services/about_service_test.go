package services

import (
	"context"
	"testing"

	"homeservices-backend/internal/models"
	"homeservices-backend/internal/repository"
	"homeservices-backend/internal/translate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAboutService(t *testing.T) (AboutService, *fakeStore, *LanguageRegistry) {
	t.Helper()

	db := testDB(t)
	registry := testRegistry(t, db)
	repo := repository.NewReplicatedRepository[models.AboutUs](db, "about_key")
	translator := translate.Static{ByLanguage: map[string]translate.Content{
		"ar": {"title": "من نحن", "description": "", "mission": "", "vision": ""},
	}}
	store := &fakeStore{}
	svc := NewAboutService(NewReplicator(repo, registry, translator, testLogger(), "about"), store, testLogger())
	return svc, store, registry
}

func TestAboutUpsert(t *testing.T) {
	svc, store, registry := newAboutService(t)
	ctx := context.Background()

	t.Run("missing before first save", func(t *testing.T) {
		_, err := svc.Get(ctx, "en")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	oldImage := "https://cdn.example.com/team-old.jpg"
	created, err := svc.Upsert(ctx, AboutInput{Title: "About Us", Description: "Who we are", ImageURL: &oldImage})
	require.NoError(t, err)
	require.Len(t, created, len(registry.All()))
	for _, row := range created {
		assert.Equal(t, models.AboutKey, row.Key)
		assert.Equal(t, oldImage, row.ImageURL)
	}

	ar, err := svc.Get(ctx, "ar")
	require.NoError(t, err)
	assert.Equal(t, "من نحن", ar.Title)

	// Second save updates in place, replacing the image exactly once.
	newImage := "https://cdn.example.com/team-new.jpg"
	updated, err := svc.Upsert(ctx, AboutInput{Title: "About Our Company", Description: "Who we are", ImageURL: &newImage})
	require.NoError(t, err)
	require.Len(t, updated, len(registry.All()))
	assert.Equal(t, []string{oldImage}, store.deleted)

	en, err := svc.Get(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, "About Our Company", en.Title)

	grouped, err := svc.AllGrouped(ctx)
	require.NoError(t, err)
	require.Len(t, grouped, 1, "about stays a singleton across saves")
	assert.Len(t, grouped[0].Translations, len(registry.All()))
}
