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

type FAQInput struct {
	Question  string
	Answer    string
	IsActive  *bool
	SortOrder *int
}

type FAQUpdateInput struct {
	Question  *string
	Answer    *string
	IsActive  *bool
	SortOrder *int
}

type FAQService interface {
	Create(ctx context.Context, in FAQInput) ([]models.FAQ, error)
	Update(ctx context.Context, faqID string, in FAQUpdateInput) ([]models.FAQ, error)
	Delete(ctx context.Context, faqID string) error
	List(ctx context.Context, lang string) ([]models.FAQ, error)
	AllGrouped(ctx context.Context) ([]Localized[models.FAQ], error)
	Reorder(ctx context.Context, faqID string, position int) error
}

type faqService struct {
	rep    *Replicator[models.FAQ]
	logger *logrus.Logger
}

func NewFAQService(rep *Replicator[models.FAQ], logger *logrus.Logger) FAQService {
	return &faqService{rep: rep, logger: logger}
}

func (s *faqService) Create(ctx context.Context, in FAQInput) ([]models.FAQ, error) {
	if in.Question == "" {
		return nil, fmt.Errorf("question is required: %w", ErrValidation)
	}
	if in.Answer == "" {
		return nil, fmt.Errorf("answer is required: %w", ErrValidation)
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	sortOrder := 0
	if in.SortOrder != nil {
		sortOrder = *in.SortOrder
	}

	faqID := uuid.NewString()
	source := translate.Content{
		"question": in.Question,
		"answer":   in.Answer,
	}

	return s.rep.Create(ctx, faqID, source, func(lang models.Language, content translate.Content) models.FAQ {
		return models.FAQ{
			FAQID:      faqID,
			LanguageID: lang.ID,
			Question:   content["question"],
			Answer:     content["answer"],
			IsActive:   isActive,
			SortOrder:  sortOrder,
		}
	})
}

func (s *faqService) Update(ctx context.Context, faqID string, in FAQUpdateInput) ([]models.FAQ, error) {
	source := translate.Content{}
	if in.Question != nil {
		source["question"] = *in.Question
	}
	if in.Answer != nil {
		source["answer"] = *in.Answer
	}

	return s.rep.Update(ctx, faqID, source, func(row *models.FAQ, content translate.Content) {
		if v, ok := content["question"]; ok {
			row.Question = v
		}
		if v, ok := content["answer"]; ok {
			row.Answer = v
		}
		if in.IsActive != nil {
			row.IsActive = *in.IsActive
		}
		if in.SortOrder != nil {
			row.SortOrder = *in.SortOrder
		}
	})
}

func (s *faqService) Delete(ctx context.Context, faqID string) error {
	return s.rep.Delete(ctx, faqID)
}

func (s *faqService) List(ctx context.Context, lang string) ([]models.FAQ, error) {
	rows, _, err := s.rep.List(ctx, lang, repository.ListOptions{
		Filters: map[string]any{"is_active": true},
		OrderBy: "sort_order ASC, id ASC",
	})
	return rows, err
}

func (s *faqService) AllGrouped(ctx context.Context) ([]Localized[models.FAQ], error) {
	return s.rep.AllGrouped(ctx, repository.ListOptions{
		OrderBy: "sort_order ASC, language_id ASC",
	})
}

func (s *faqService) Reorder(ctx context.Context, faqID string, position int) error {
	return s.rep.Reorder(ctx, faqID, position)
}
