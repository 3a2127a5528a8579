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

func newContactService(t *testing.T) (ContactService, *LanguageRegistry) {
	t.Helper()

	db := testDB(t)
	registry := testRegistry(t, db)
	repo := repository.NewReplicatedRepository[models.ContactSubmission](db, "contact_id")
	svc := NewContactService(NewReplicator(repo, registry, translate.Static{}, testLogger(), "contact"), testLogger())
	return svc, registry
}

func TestContactCreate(t *testing.T) {
	svc, registry := newContactService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, ContactInput{
		Name:    "Sara",
		Email:   "sara@example.com",
		Subject: "AC not cooling",
		Message: "The unit stopped working yesterday.",
	})
	require.NoError(t, err)
	require.Len(t, created, len(registry.All()))

	for _, row := range created {
		assert.Equal(t, created[0].ContactID, row.ContactID)
		assert.Equal(t, "sara@example.com", row.Email)
		assert.False(t, row.IsRead)
	}

	tests := []struct {
		name string
		in   ContactInput
	}{
		{"missing name", ContactInput{Email: "a@b.co", Message: "hi"}},
		{"missing message", ContactInput{Name: "Sara", Email: "a@b.co"}},
		{"bad email", ContactInput{Name: "Sara", Email: "not-an-email", Message: "hi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestContactMarkReadFansOut(t *testing.T) {
	svc, registry := newContactService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, ContactInput{
		Name: "Omar", Email: "omar@example.com", Message: "Need a quote",
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(ctx, created[0].ContactID, true))

	grouped, err := svc.AllGrouped(ctx)
	require.NoError(t, err)
	require.Len(t, grouped, 1)
	require.Len(t, grouped[0].Translations, len(registry.All()))
	for _, row := range grouped[0].Translations {
		assert.True(t, row.IsRead)
	}

	assert.ErrorIs(t, svc.MarkRead(ctx, "missing", true), ErrNotFound)
}

func TestContactListUnreadOnly(t *testing.T) {
	svc, _ := newContactService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, ContactInput{Name: "A", Email: "a@example.com", Message: "one"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, ContactInput{Name: "B", Email: "b@example.com", Message: "two"})
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(ctx, first[0].ContactID, true))

	unread, total, err := svc.List(ctx, "en", 1, 20, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, unread, 1)
	assert.Equal(t, "two", unread[0].Message)

	all, total, err := svc.List(ctx, "en", 1, 20, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)
}
