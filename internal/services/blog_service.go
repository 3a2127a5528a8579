package services

import (
	"context"
	"fmt"
	"time"

	"homeservices-backend/internal/models"
	"homeservices-backend/internal/repository"
	"homeservices-backend/internal/translate"
	"homeservices-backend/internal/utils"

	"github.com/sirupsen/logrus"
)

type BlogInput struct {
	Title       string
	Excerpt     string
	Content     string
	ImageURL    string
	IsActive    *bool
	PublishedAt *time.Time
}

type BlogUpdateInput struct {
	Title       *string
	Excerpt     *string
	Content     *string
	ImageURL    *string
	IsActive    *bool
	PublishedAt *time.Time
}

type BlogService interface {
	Create(ctx context.Context, in BlogInput) ([]models.Blog, error)
	Update(ctx context.Context, slug string, in BlogUpdateInput) ([]models.Blog, error)
	Delete(ctx context.Context, slug string) error
	Get(ctx context.Context, slug, lang string) (*models.Blog, error)
	List(ctx context.Context, lang string, page, limit int) ([]models.Blog, int64, error)
	AllGrouped(ctx context.Context) ([]Localized[models.Blog], error)
}

type blogService struct {
	repo        repository.ReplicatedRepository[models.Blog]
	commentRepo repository.ReplicatedRepository[models.Comment]
	rep         *Replicator[models.Blog]
	store       ObjectStore
	logger      *logrus.Logger
}

func NewBlogService(
	repo repository.ReplicatedRepository[models.Blog],
	commentRepo repository.ReplicatedRepository[models.Comment],
	rep *Replicator[models.Blog],
	store ObjectStore,
	logger *logrus.Logger,
) BlogService {
	return &blogService{repo: repo, commentRepo: commentRepo, rep: rep, store: store, logger: logger}
}

func (s *blogService) Create(ctx context.Context, in BlogInput) ([]models.Blog, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("title is required: %w", ErrValidation)
	}
	if in.Content == "" {
		return nil, fmt.Errorf("content is required: %w", ErrValidation)
	}

	slug, err := utils.UniqueSlug(ctx, in.Title, s.repo.KeyExists)
	if err != nil {
		return nil, err
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	publishedAt := time.Now().UTC()
	if in.PublishedAt != nil {
		publishedAt = *in.PublishedAt
	}

	source := translate.Content{
		"title":   in.Title,
		"excerpt": in.Excerpt,
		"content": in.Content,
	}

	return s.rep.Create(ctx, slug, source, func(lang models.Language, content translate.Content) models.Blog {
		return models.Blog{
			Slug:        slug,
			LanguageID:  lang.ID,
			Title:       content["title"],
			Excerpt:     content["excerpt"],
			Content:     content["content"],
			ImageURL:    in.ImageURL,
			IsActive:    isActive,
			PublishedAt: publishedAt,
		}
	})
}

func (s *blogService) Update(ctx context.Context, slug string, in BlogUpdateInput) ([]models.Blog, error) {
	source := translate.Content{}
	if in.Title != nil {
		source["title"] = *in.Title
	}
	if in.Excerpt != nil {
		source["excerpt"] = *in.Excerpt
	}
	if in.Content != nil {
		source["content"] = *in.Content
	}

	if in.ImageURL != nil {
		s.cleanupReplacedImage(ctx, slug, *in.ImageURL)
	}

	return s.rep.Update(ctx, slug, source, func(row *models.Blog, content translate.Content) {
		if v, ok := content["title"]; ok {
			row.Title = v
		}
		if v, ok := content["excerpt"]; ok {
			row.Excerpt = v
		}
		if v, ok := content["content"]; ok {
			row.Content = v
		}
		if in.ImageURL != nil {
			row.ImageURL = *in.ImageURL
		}
		if in.IsActive != nil {
			row.IsActive = *in.IsActive
		}
		if in.PublishedAt != nil {
			row.PublishedAt = *in.PublishedAt
		}
	})
}

func (s *blogService) cleanupReplacedImage(ctx context.Context, slug, newURL string) {
	rows, err := s.rep.Rows(ctx, slug)
	if err != nil {
		s.logger.WithError(err).WithField("slug", slug).Warn("Failed to load rows for image cleanup")
		return
	}
	for _, url := range distinctImageURLs(rows, func(b models.Blog) string { return b.ImageURL }) {
		if url == newURL {
			continue
		}
		if err := s.store.DeleteFile(url); err != nil {
			s.logger.WithError(err).WithField("url", url).Warn("Failed to delete old blog image")
		}
	}
}

// Delete removes all language rows of the post, its stored images (once per
// distinct URL) and every comment attached to it.
func (s *blogService) Delete(ctx context.Context, slug string) error {
	rows, err := s.rep.Rows(ctx, slug)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("blog %q: %w", slug, ErrNotFound)
	}

	for _, url := range distinctImageURLs(rows, func(b models.Blog) string { return b.ImageURL }) {
		if err := s.store.DeleteFile(url); err != nil {
			s.logger.WithError(err).WithField("url", url).Warn("Failed to delete blog image")
		}
	}

	if _, err := s.commentRepo.DeleteWhere(ctx, "blog_slug", slug); err != nil {
		s.logger.WithError(err).WithField("slug", slug).Warn("Failed to delete blog comments")
	}

	return s.rep.Delete(ctx, slug)
}

func (s *blogService) Get(ctx context.Context, slug, lang string) (*models.Blog, error) {
	return s.rep.Get(ctx, slug, lang)
}

func (s *blogService) List(ctx context.Context, lang string, page, limit int) ([]models.Blog, int64, error) {
	page, limit = normalizePaging(page, limit)
	return s.rep.List(ctx, lang, repository.ListOptions{
		Filters: map[string]any{"is_active": true},
		OrderBy: "published_at DESC",
		Page:    page,
		Limit:   limit,
	})
}

func (s *blogService) AllGrouped(ctx context.Context) ([]Localized[models.Blog], error) {
	return s.rep.AllGrouped(ctx, repository.ListOptions{
		OrderBy: "published_at DESC, language_id ASC",
	})
}
