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

type StatInput struct {
	Label     string
	Value     int
	Icon      string
	IsActive  *bool
	SortOrder *int
}

type StatUpdateInput struct {
	Label     *string
	Value     *int
	Icon      *string
	IsActive  *bool
	SortOrder *int
}

type StatService interface {
	Create(ctx context.Context, in StatInput) ([]models.Stat, error)
	Update(ctx context.Context, statID string, in StatUpdateInput) ([]models.Stat, error)
	Delete(ctx context.Context, statID string) error
	List(ctx context.Context, lang string) ([]models.Stat, error)
	AllGrouped(ctx context.Context) ([]Localized[models.Stat], error)
	Reorder(ctx context.Context, statID string, position int) error
}

type statService struct {
	rep    *Replicator[models.Stat]
	logger *logrus.Logger
}

func NewStatService(rep *Replicator[models.Stat], logger *logrus.Logger) StatService {
	return &statService{rep: rep, logger: logger}
}

func (s *statService) Create(ctx context.Context, in StatInput) ([]models.Stat, error) {
	if in.Label == "" {
		return nil, fmt.Errorf("label is required: %w", ErrValidation)
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	sortOrder := 0
	if in.SortOrder != nil {
		sortOrder = *in.SortOrder
	}

	statID := uuid.NewString()
	source := translate.Content{"label": in.Label}

	return s.rep.Create(ctx, statID, source, func(lang models.Language, content translate.Content) models.Stat {
		return models.Stat{
			StatID:     statID,
			LanguageID: lang.ID,
			Label:      content["label"],
			Value:      in.Value,
			Icon:       in.Icon,
			IsActive:   isActive,
			SortOrder:  sortOrder,
		}
	})
}

func (s *statService) Update(ctx context.Context, statID string, in StatUpdateInput) ([]models.Stat, error) {
	source := translate.Content{}
	if in.Label != nil {
		source["label"] = *in.Label
	}

	return s.rep.Update(ctx, statID, source, func(row *models.Stat, content translate.Content) {
		if v, ok := content["label"]; ok {
			row.Label = v
		}
		if in.Value != nil {
			row.Value = *in.Value
		}
		if in.Icon != nil {
			row.Icon = *in.Icon
		}
		if in.IsActive != nil {
			row.IsActive = *in.IsActive
		}
		if in.SortOrder != nil {
			row.SortOrder = *in.SortOrder
		}
	})
}

func (s *statService) Delete(ctx context.Context, statID string) error {
	return s.rep.Delete(ctx, statID)
}

func (s *statService) List(ctx context.Context, lang string) ([]models.Stat, error) {
	rows, _, err := s.rep.List(ctx, lang, repository.ListOptions{
		Filters: map[string]any{"is_active": true},
		OrderBy: "sort_order ASC, id ASC",
	})
	return rows, err
}

func (s *statService) AllGrouped(ctx context.Context) ([]Localized[models.Stat], error) {
	return s.rep.AllGrouped(ctx, repository.ListOptions{
		OrderBy: "sort_order ASC, language_id ASC",
	})
}

func (s *statService) Reorder(ctx context.Context, statID string, position int) error {
	return s.rep.Reorder(ctx, statID, position)
}
