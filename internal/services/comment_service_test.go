package services

import (
	"context"
	"testing"

	"homeservices-backend/internal/database"
	"homeservices-backend/internal/models"
	"homeservices-backend/internal/repository"
	"homeservices-backend/internal/translate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentFixture(t *testing.T) (CommentService, BlogService, *database.Database, *LanguageRegistry) {
	t.Helper()

	db := testDB(t)
	registry := testRegistry(t, db)
	blogRepo := repository.NewReplicatedRepository[models.Blog](db, "slug")
	commentRepo := repository.NewReplicatedRepository[models.Comment](db, "comment_id")

	blogSvc := NewBlogService(
		blogRepo, commentRepo,
		NewReplicator(blogRepo, registry, translate.Static{}, testLogger(), "blog"),
		&fakeStore{}, testLogger(),
	)
	commentSvc := NewCommentService(
		commentRepo, blogRepo,
		NewReplicator(commentRepo, registry, translate.Static{}, testLogger(), "comment"),
		testLogger(),
	)
	return commentSvc, blogSvc, db, registry
}

func TestCommentCreate(t *testing.T) {
	comments, blogs, _, registry := newCommentFixture(t)
	ctx := context.Background()

	_, err := blogs.Create(ctx, BlogInput{Title: "Summer Maintenance Tips", Content: "Keep your home cool."})
	require.NoError(t, err)

	created, err := comments.Create(ctx, "summer-maintenance-tips", CommentInput{
		AuthorName: "Sara",
		Text:       "Very helpful, thanks!",
	})
	require.NoError(t, err)
	require.Len(t, created, len(registry.All()))

	for _, row := range created {
		assert.Equal(t, created[0].CommentID, row.CommentID)
		assert.Equal(t, "summer-maintenance-tips", row.BlogSlug)
		assert.Equal(t, "Sara", row.AuthorName, "author name is not translated")
		assert.False(t, row.IsApproved, "comments start unapproved")
	}

	t.Run("unknown blog", func(t *testing.T) {
		_, err := comments.Create(ctx, "missing", CommentInput{AuthorName: "Sara", Text: "hi"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := comments.Create(ctx, "summer-maintenance-tips", CommentInput{Text: "hi"})
		assert.ErrorIs(t, err, ErrValidation)

		_, err = comments.Create(ctx, "summer-maintenance-tips", CommentInput{AuthorName: "Sara"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestCommentApproveFansOut(t *testing.T) {
	comments, blogs, _, registry := newCommentFixture(t)
	ctx := context.Background()

	_, err := blogs.Create(ctx, BlogInput{Title: "Choosing a Contractor", Content: "Check references first."})
	require.NoError(t, err)

	created, err := comments.Create(ctx, "choosing-a-contractor", CommentInput{AuthorName: "Omar", Text: "Great read"})
	require.NoError(t, err)

	// Approving any single row flips the shared flag on all siblings.
	require.NoError(t, comments.Approve(ctx, created[2].ID, true))

	grouped, err := comments.AllGrouped(ctx, "choosing-a-contractor")
	require.NoError(t, err)
	require.Len(t, grouped, 1)
	require.Len(t, grouped[0].Translations, len(registry.All()))
	for code, row := range grouped[0].Translations {
		assert.True(t, row.IsApproved, "row %s not approved", code)
	}

	assert.ErrorIs(t, comments.Approve(ctx, 99999, true), ErrNotFound)
}

func TestCommentListApprovedOnly(t *testing.T) {
	comments, blogs, _, _ := newCommentFixture(t)
	ctx := context.Background()

	_, err := blogs.Create(ctx, BlogInput{Title: "Water Heater Care", Content: "Flush the tank yearly."})
	require.NoError(t, err)

	first, err := comments.Create(ctx, "water-heater-care", CommentInput{AuthorName: "A", Text: "one"})
	require.NoError(t, err)
	_, err = comments.Create(ctx, "water-heater-care", CommentInput{AuthorName: "B", Text: "two"})
	require.NoError(t, err)

	require.NoError(t, comments.Approve(ctx, first[0].ID, true))

	public, err := comments.ListForBlog(ctx, "water-heater-care", "en", true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "one", public[0].Text)

	all, err := comments.ListForBlog(ctx, "water-heater-care", "en", false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBlogDeleteRemovesComments(t *testing.T) {
	comments, blogs, db, _ := newCommentFixture(t)
	ctx := context.Background()

	_, err := blogs.Create(ctx, BlogInput{Title: "Roof Inspection", Content: "Inspect shingles every spring."})
	require.NoError(t, err)
	_, err = comments.Create(ctx, "roof-inspection", CommentInput{AuthorName: "C", Text: "nice"})
	require.NoError(t, err)

	require.NoError(t, blogs.Delete(ctx, "roof-inspection"))

	var count int64
	require.NoError(t, db.WithContext(ctx).Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count, "deleting a blog drops its comments")
}
