package services

import (
	"context"
	"fmt"

	"homeservices-backend/internal/models"
	"homeservices-backend/internal/repository"
	"homeservices-backend/internal/translate"
	"homeservices-backend/internal/utils"

	"github.com/sirupsen/logrus"
)

// ServiceInput is the source-language payload for creating an offered service.
type ServiceInput struct {
	Name             string
	Title            string
	Subtitle         string
	ShortDescription string
	Description      string
	ImageURL         string
	IsActive         *bool
	SortOrder        *int
}

// ServiceUpdateInput carries only the fields being changed.
type ServiceUpdateInput struct {
	Name             *string
	Title            *string
	Subtitle         *string
	ShortDescription *string
	Description      *string
	ImageURL         *string
	IsActive         *bool
	SortOrder        *int
}

type ServiceService interface {
	Create(ctx context.Context, in ServiceInput) ([]models.Service, error)
	Update(ctx context.Context, slug string, in ServiceUpdateInput) ([]models.Service, error)
	Delete(ctx context.Context, slug string) error
	Get(ctx context.Context, slug, lang string) (*models.Service, error)
	List(ctx context.Context, lang string, page, limit int) ([]models.Service, int64, error)
	AllGrouped(ctx context.Context) ([]Localized[models.Service], error)
	Reorder(ctx context.Context, slug string, position int) error
}

type serviceService struct {
	repo   repository.ReplicatedRepository[models.Service]
	rep    *Replicator[models.Service]
	store  ObjectStore
	logger *logrus.Logger
}

func NewServiceService(repo repository.ReplicatedRepository[models.Service], rep *Replicator[models.Service], store ObjectStore, logger *logrus.Logger) ServiceService {
	return &serviceService{repo: repo, rep: rep, store: store, logger: logger}
}

func (s *serviceService) Create(ctx context.Context, in ServiceInput) ([]models.Service, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}

	slug, err := utils.UniqueSlug(ctx, in.Name, s.repo.KeyExists)
	if err != nil {
		return nil, err
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	sortOrder := 0
	if in.SortOrder != nil {
		sortOrder = *in.SortOrder
	}

	source := translate.Content{
		"name":             in.Name,
		"title":            in.Title,
		"subtitle":         in.Subtitle,
		"shortDescription": in.ShortDescription,
		"description":      in.Description,
	}

	return s.rep.Create(ctx, slug, source, func(lang models.Language, content translate.Content) models.Service {
		return models.Service{
			Slug:             slug,
			LanguageID:       lang.ID,
			Name:             content["name"],
			Title:            content["title"],
			Subtitle:         content["subtitle"],
			ShortDescription: content["shortDescription"],
			Description:      content["description"],
			ImageURL:         in.ImageURL,
			IsActive:         isActive,
			SortOrder:        sortOrder,
		}
	})
}

func (s *serviceService) Update(ctx context.Context, slug string, in ServiceUpdateInput) ([]models.Service, error) {
	source := translate.Content{}
	if in.Name != nil {
		source["name"] = *in.Name
	}
	if in.Title != nil {
		source["title"] = *in.Title
	}
	if in.Subtitle != nil {
		source["subtitle"] = *in.Subtitle
	}
	if in.ShortDescription != nil {
		source["shortDescription"] = *in.ShortDescription
	}
	if in.Description != nil {
		source["description"] = *in.Description
	}

	// Replacing the image drops the old object, once, before the row updates.
	if in.ImageURL != nil {
		s.cleanupReplacedImage(ctx, slug, *in.ImageURL)
	}

	return s.rep.Update(ctx, slug, source, func(row *models.Service, content translate.Content) {
		if v, ok := content["name"]; ok {
			row.Name = v
		}
		if v, ok := content["title"]; ok {
			row.Title = v
		}
		if v, ok := content["subtitle"]; ok {
			row.Subtitle = v
		}
		if v, ok := content["shortDescription"]; ok {
			row.ShortDescription = v
		}
		if v, ok := content["description"]; ok {
			row.Description = v
		}
		if in.ImageURL != nil {
			row.ImageURL = *in.ImageURL
		}
		if in.IsActive != nil {
			row.IsActive = *in.IsActive
		}
		if in.SortOrder != nil {
			row.SortOrder = *in.SortOrder
		}
	})
}

func (s *serviceService) cleanupReplacedImage(ctx context.Context, slug, newURL string) {
	rows, err := s.rep.Rows(ctx, slug)
	if err != nil {
		s.logger.WithError(err).WithField("slug", slug).Warn("Failed to load rows for image cleanup")
		return
	}
	for _, url := range distinctImageURLs(rows, func(r models.Service) string { return r.ImageURL }) {
		if url == newURL {
			continue
		}
		if err := s.store.DeleteFile(url); err != nil {
			s.logger.WithError(err).WithField("url", url).Warn("Failed to delete old service image")
		}
	}
}

func (s *serviceService) Delete(ctx context.Context, slug string) error {
	rows, err := s.rep.Rows(ctx, slug)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("service %q: %w", slug, ErrNotFound)
	}

	for _, url := range distinctImageURLs(rows, func(r models.Service) string { return r.ImageURL }) {
		if err := s.store.DeleteFile(url); err != nil {
			s.logger.WithError(err).WithField("url", url).Warn("Failed to delete service image")
		}
	}

	return s.rep.Delete(ctx, slug)
}

func (s *serviceService) Get(ctx context.Context, slug, lang string) (*models.Service, error) {
	return s.rep.Get(ctx, slug, lang)
}

func (s *serviceService) List(ctx context.Context, lang string, page, limit int) ([]models.Service, int64, error) {
	page, limit = normalizePaging(page, limit)
	return s.rep.List(ctx, lang, repository.ListOptions{
		Filters: map[string]any{"is_active": true},
		OrderBy: "sort_order ASC, id ASC",
		Page:    page,
		Limit:   limit,
	})
}

func (s *serviceService) AllGrouped(ctx context.Context) ([]Localized[models.Service], error) {
	return s.rep.AllGrouped(ctx, repository.ListOptions{
		OrderBy: "sort_order ASC, language_id ASC",
	})
}

func (s *serviceService) Reorder(ctx context.Context, slug string, position int) error {
	return s.rep.Reorder(ctx, slug, position)
}

// distinctImageURLs collects the unique non-empty image URLs across sibling
// rows, so cleanup hits storage once per object rather than once per language.
func distinctImageURLs[T any](rows []T, url func(T) string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, 1)
	for _, row := range rows {
		u := url(row)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}

func normalizePaging(page, limit int) (int, int) {
	return utils.NormalizePaging(page, limit)
}
