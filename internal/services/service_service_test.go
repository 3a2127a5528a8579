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

// fakeStore records deletions instead of talking to object storage.
type fakeStore struct {
	deleted []string
}

func (f *fakeStore) DeleteFile(objectPath string) error {
	f.deleted = append(f.deleted, objectPath)
	return nil
}

func newServiceService(t *testing.T) (ServiceService, *fakeStore, *LanguageRegistry) {
	t.Helper()

	db := testDB(t)
	registry := testRegistry(t, db)
	repo := repository.NewReplicatedRepository[models.Service](db, "slug")
	translator := translate.Static{ByLanguage: map[string]translate.Content{
		"ar": {"name": "تنظيف", "title": "", "subtitle": "", "shortDescription": "", "description": ""},
	}}
	store := &fakeStore{}
	svc := NewServiceService(repo, NewReplicator(repo, registry, translator, testLogger(), "service"), store, testLogger())
	return svc, store, registry
}

func TestServiceCreate(t *testing.T) {
	svc, _, registry := newServiceService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, ServiceInput{Name: "Deep Cleaning", Title: "Spotless homes"})
	require.NoError(t, err)
	require.Len(t, created, len(registry.All()))

	for _, row := range created {
		assert.Equal(t, "deep-cleaning", row.Slug)
		assert.True(t, row.IsActive, "isActive defaults to true")
		assert.Equal(t, 0, row.SortOrder)
	}

	t.Run("name is required", func(t *testing.T) {
		_, err := svc.Create(ctx, ServiceInput{})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("slug collisions get numeric suffixes", func(t *testing.T) {
		second, err := svc.Create(ctx, ServiceInput{Name: "Deep Cleaning"})
		require.NoError(t, err)
		assert.Equal(t, "deep-cleaning-1", second[0].Slug)

		third, err := svc.Create(ctx, ServiceInput{Name: "Deep Cleaning"})
		require.NoError(t, err)
		assert.Equal(t, "deep-cleaning-2", third[0].Slug)
	})
}

func TestServiceUpdateReplacesImageOnce(t *testing.T) {
	svc, store, _ := newServiceService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, ServiceInput{Name: "Painting", ImageURL: "https://cdn.example.com/old.jpg"})
	require.NoError(t, err)

	newURL := "https://cdn.example.com/new.jpg"
	rows, err := svc.Update(ctx, "painting", ServiceUpdateInput{ImageURL: &newURL})
	require.NoError(t, err)

	for _, row := range rows {
		assert.Equal(t, newURL, row.ImageURL)
	}

	// The replaced object is deleted exactly once, not once per language.
	assert.Equal(t, []string{"https://cdn.example.com/old.jpg"}, store.deleted)
}

func TestServiceDelete(t *testing.T) {
	svc, store, _ := newServiceService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, ServiceInput{Name: "Pest Control", ImageURL: "https://cdn.example.com/pest.jpg"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "pest-control"))

	_, err = svc.Get(ctx, "pest-control", "en")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{"https://cdn.example.com/pest.jpg"}, store.deleted)

	assert.ErrorIs(t, svc.Delete(ctx, "pest-control"), ErrNotFound)
}

func TestServiceListFiltersInactive(t *testing.T) {
	svc, _, _ := newServiceService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, ServiceInput{Name: "Cleaning"})
	require.NoError(t, err)

	inactive := false
	_, err = svc.Create(ctx, ServiceInput{Name: "Plumbing", IsActive: &inactive})
	require.NoError(t, err)

	rows, total, err := svc.List(ctx, "en", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "cleaning", rows[0].Slug)

	// The admin grouped view still includes the inactive item.
	grouped, err := svc.AllGrouped(ctx)
	require.NoError(t, err)
	assert.Len(t, grouped, 2)
}
