package services

import (
	"context"
	"fmt"

	"homeservices-backend/internal/models"
	"homeservices-backend/internal/repository"
	"homeservices-backend/internal/translate"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CommentInput struct {
	AuthorName string
	Text       string
}

type CommentService interface {
	Create(ctx context.Context, blogSlug string, in CommentInput) ([]models.Comment, error)
	ListForBlog(ctx context.Context, blogSlug, lang string, approvedOnly bool) ([]models.Comment, error)
	Approve(ctx context.Context, rowID uint, approved bool) error
	Delete(ctx context.Context, commentID string) error
	AllGrouped(ctx context.Context, blogSlug string) ([]Localized[models.Comment], error)
}

type commentService struct {
	repo     repository.ReplicatedRepository[models.Comment]
	blogRepo repository.ReplicatedRepository[models.Blog]
	rep      *Replicator[models.Comment]
	logger   *logrus.Logger
}

func NewCommentService(
	repo repository.ReplicatedRepository[models.Comment],
	blogRepo repository.ReplicatedRepository[models.Blog],
	rep *Replicator[models.Comment],
	logger *logrus.Logger,
) CommentService {
	return &commentService{repo: repo, blogRepo: blogRepo, rep: rep, logger: logger}
}

// Create stores a visitor comment, unapproved, replicated across all languages
// so moderators can read it in any dashboard language.
func (s *commentService) Create(ctx context.Context, blogSlug string, in CommentInput) ([]models.Comment, error) {
	if in.AuthorName == "" {
		return nil, fmt.Errorf("author name is required: %w", ErrValidation)
	}
	if in.Text == "" {
		return nil, fmt.Errorf("text is required: %w", ErrValidation)
	}

	exists, err := s.blogRepo.KeyExists(ctx, blogSlug)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("blog %q: %w", blogSlug, ErrNotFound)
	}

	commentID := uuid.NewString()
	source := translate.Content{"text": in.Text}

	return s.rep.Create(ctx, commentID, source, func(lang models.Language, content translate.Content) models.Comment {
		return models.Comment{
			CommentID:  commentID,
			BlogSlug:   blogSlug,
			LanguageID: lang.ID,
			AuthorName: in.AuthorName,
			Text:       content["text"],
			IsApproved: false,
		}
	})
}

func (s *commentService) ListForBlog(ctx context.Context, blogSlug, lang string, approvedOnly bool) ([]models.Comment, error) {
	filters := map[string]any{"blog_slug": blogSlug}
	if approvedOnly {
		filters["is_approved"] = true
	}
	rows, _, err := s.rep.List(ctx, lang, repository.ListOptions{
		Filters: filters,
		OrderBy: "created_at DESC",
	})
	return rows, err
}

// Approve flips the shared approval flag on every language row of the comment
// the given row belongs to.
func (s *commentService) Approve(ctx context.Context, rowID uint, approved bool) error {
	row, err := s.repo.FindByID(ctx, rowID)
	if err != nil {
		return err
	}
	if row == nil {
		return fmt.Errorf("comment row %d: %w", rowID, ErrNotFound)
	}

	return s.rep.SetShared(ctx, row.CommentID, map[string]any{"is_approved": approved})
}

func (s *commentService) Delete(ctx context.Context, commentID string) error {
	return s.rep.Delete(ctx, commentID)
}

func (s *commentService) AllGrouped(ctx context.Context, blogSlug string) ([]Localized[models.Comment], error) {
	opts := repository.ListOptions{OrderBy: "created_at DESC, language_id ASC"}
	if blogSlug != "" {
		opts.Filters = map[string]any{"blog_slug": blogSlug}
	}
	return s.rep.AllGrouped(ctx, opts)
}
