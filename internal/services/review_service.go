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

type ReviewInput struct {
	AuthorName string
	Text       string
	Rating     int
	IsActive   *bool
	SortOrder  *int
}

type ReviewUpdateInput struct {
	AuthorName *string
	Text       *string
	Rating     *int
	IsActive   *bool
	SortOrder  *int
}

type ReviewService interface {
	Create(ctx context.Context, in ReviewInput) ([]models.Review, error)
	Update(ctx context.Context, reviewID string, in ReviewUpdateInput) ([]models.Review, error)
	Delete(ctx context.Context, reviewID string) error
	List(ctx context.Context, lang string, page, limit int) ([]models.Review, int64, error)
	AllGrouped(ctx context.Context) ([]Localized[models.Review], error)
	Reorder(ctx context.Context, reviewID string, position int) error
}

type reviewService struct {
	rep    *Replicator[models.Review]
	logger *logrus.Logger
}

func NewReviewService(rep *Replicator[models.Review], logger *logrus.Logger) ReviewService {
	return &reviewService{rep: rep, logger: logger}
}

func validRating(r int) bool { return r >= 1 && r <= 5 }

func (s *reviewService) Create(ctx context.Context, in ReviewInput) ([]models.Review, error) {
	if in.AuthorName == "" {
		return nil, fmt.Errorf("author name is required: %w", ErrValidation)
	}
	if in.Text == "" {
		return nil, fmt.Errorf("text is required: %w", ErrValidation)
	}
	if !validRating(in.Rating) {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", ErrValidation)
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	sortOrder := 0
	if in.SortOrder != nil {
		sortOrder = *in.SortOrder
	}

	reviewID := uuid.NewString()
	source := translate.Content{"text": in.Text}

	return s.rep.Create(ctx, reviewID, source, func(lang models.Language, content translate.Content) models.Review {
		return models.Review{
			ReviewID:   reviewID,
			LanguageID: lang.ID,
			AuthorName: in.AuthorName,
			Text:       content["text"],
			Rating:     in.Rating,
			IsActive:   isActive,
			SortOrder:  sortOrder,
		}
	})
}

func (s *reviewService) Update(ctx context.Context, reviewID string, in ReviewUpdateInput) ([]models.Review, error) {
	if in.Rating != nil && !validRating(*in.Rating) {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", ErrValidation)
	}

	source := translate.Content{}
	if in.Text != nil {
		source["text"] = *in.Text
	}

	return s.rep.Update(ctx, reviewID, source, func(row *models.Review, content translate.Content) {
		if v, ok := content["text"]; ok {
			row.Text = v
		}
		if in.AuthorName != nil {
			row.AuthorName = *in.AuthorName
		}
		if in.Rating != nil {
			row.Rating = *in.Rating
		}
		if in.IsActive != nil {
			row.IsActive = *in.IsActive
		}
		if in.SortOrder != nil {
			row.SortOrder = *in.SortOrder
		}
	})
}

func (s *reviewService) Delete(ctx context.Context, reviewID string) error {
	return s.rep.Delete(ctx, reviewID)
}

func (s *reviewService) List(ctx context.Context, lang string, page, limit int) ([]models.Review, int64, error) {
	page, limit = normalizePaging(page, limit)
	return s.rep.List(ctx, lang, repository.ListOptions{
		Filters: map[string]any{"is_active": true},
		OrderBy: "sort_order ASC, id ASC",
		Page:    page,
		Limit:   limit,
	})
}

func (s *reviewService) AllGrouped(ctx context.Context) ([]Localized[models.Review], error) {
	return s.rep.AllGrouped(ctx, repository.ListOptions{
		OrderBy: "sort_order ASC, language_id ASC",
	})
}

func (s *reviewService) Reorder(ctx context.Context, reviewID string, position int) error {
	return s.rep.Reorder(ctx, reviewID, position)
}
