package services

import (
	"context"

	"homeservices-backend/internal/models"
	"homeservices-backend/internal/repository"
	"homeservices-backend/internal/translate"

	"github.com/sirupsen/logrus"
)

// AboutInput is the full source-language about page; PUT is an upsert.
type AboutInput struct {
	Title       string
	Description string
	Mission     string
	Vision      string
	ImageURL    *string
}

type AboutService interface {
	Get(ctx context.Context, lang string) (*models.AboutUs, error)
	AllGrouped(ctx context.Context) ([]Localized[models.AboutUs], error)
	Upsert(ctx context.Context, in AboutInput) ([]models.AboutUs, error)
}

type aboutService struct {
	rep    *Replicator[models.AboutUs]
	store  ObjectStore
	logger *logrus.Logger
}

func NewAboutService(rep *Replicator[models.AboutUs], store ObjectStore, logger *logrus.Logger) AboutService {
	return &aboutService{rep: rep, store: store, logger: logger}
}

func (s *aboutService) Get(ctx context.Context, lang string) (*models.AboutUs, error) {
	return s.rep.Get(ctx, models.AboutKey, lang)
}

func (s *aboutService) AllGrouped(ctx context.Context) ([]Localized[models.AboutUs], error) {
	return s.rep.AllGrouped(ctx, repository.ListOptions{OrderBy: "language_id ASC"})
}

// Upsert creates the singleton about item on first save and fans the new text
// out across all languages on every later save.
func (s *aboutService) Upsert(ctx context.Context, in AboutInput) ([]models.AboutUs, error) {
	source := translate.Content{
		"title":       in.Title,
		"description": in.Description,
		"mission":     in.Mission,
		"vision":      in.Vision,
	}

	rows, err := s.rep.Rows(ctx, models.AboutKey)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		imageURL := ""
		if in.ImageURL != nil {
			imageURL = *in.ImageURL
		}
		return s.rep.Create(ctx, models.AboutKey, source, func(lang models.Language, content translate.Content) models.AboutUs {
			return models.AboutUs{
				Key:         models.AboutKey,
				LanguageID:  lang.ID,
				Title:       content["title"],
				Description: content["description"],
				Mission:     content["mission"],
				Vision:      content["vision"],
				ImageURL:    imageURL,
			}
		})
	}

	if in.ImageURL != nil {
		for _, url := range distinctImageURLs(rows, func(a models.AboutUs) string { return a.ImageURL }) {
			if url == *in.ImageURL {
				continue
			}
			if err := s.store.DeleteFile(url); err != nil {
				s.logger.WithError(err).WithField("url", url).Warn("Failed to delete old about image")
			}
		}
	}

	return s.rep.Update(ctx, models.AboutKey, source, func(row *models.AboutUs, content translate.Content) {
		if v, ok := content["title"]; ok {
			row.Title = v
		}
		if v, ok := content["description"]; ok {
			row.Description = v
		}
		if v, ok := content["mission"]; ok {
			row.Mission = v
		}
		if v, ok := content["vision"]; ok {
			row.Vision = v
		}
		if in.ImageURL != nil {
			row.ImageURL = *in.ImageURL
		}
	})
}
