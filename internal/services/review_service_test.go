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

func newReviewService(t *testing.T) (ReviewService, *LanguageRegistry) {
	t.Helper()

	db := testDB(t)
	registry := testRegistry(t, db)
	repo := repository.NewReplicatedRepository[models.Review](db, "review_id")
	svc := NewReviewService(NewReplicator(repo, registry, translate.Static{}, testLogger(), "review"), testLogger())
	return svc, registry
}

func TestReviewCreateValidation(t *testing.T) {
	svc, registry := newReviewService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, ReviewInput{AuthorName: "Sara", Text: "Excellent work", Rating: 5})
	require.NoError(t, err)
	require.Len(t, created, len(registry.All()))
	for _, row := range created {
		assert.Equal(t, 5, row.Rating)
		assert.Equal(t, "Sara", row.AuthorName)
	}

	tests := []struct {
		name string
		in   ReviewInput
	}{
		{"missing author", ReviewInput{Text: "Great", Rating: 5}},
		{"missing text", ReviewInput{AuthorName: "Sara", Rating: 5}},
		{"rating too low", ReviewInput{AuthorName: "Sara", Text: "Great", Rating: 0}},
		{"rating too high", ReviewInput{AuthorName: "Sara", Text: "Great", Rating: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestReviewUpdateRating(t *testing.T) {
	svc, _ := newReviewService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, ReviewInput{AuthorName: "Omar", Text: "Good", Rating: 3})
	require.NoError(t, err)

	rating := 4
	rows, err := svc.Update(ctx, created[0].ReviewID, ReviewUpdateInput{Rating: &rating})
	require.NoError(t, err)
	for _, row := range rows {
		assert.Equal(t, 4, row.Rating)
	}

	bad := 9
	_, err = svc.Update(ctx, created[0].ReviewID, ReviewUpdateInput{Rating: &bad})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(ctx, "missing", ReviewUpdateInput{Rating: &rating})
	assert.ErrorIs(t, err, ErrNotFound)
}
