package repository

import (
	"context"
	"errors"
	"time"

	"homeservices-backend/internal/database"
	"homeservices-backend/internal/models"

	"gorm.io/gorm"
)

type LanguageRepository interface {
	FindByCode(ctx context.Context, code string) (*models.Language, error)
	FindAll(ctx context.Context) ([]models.Language, error)
}

type languageRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewLanguageRepository(db *database.Database) LanguageRepository {
	return &languageRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *languageRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *languageRepository) FindByCode(ctx context.Context, code string) (*models.Language, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var language models.Language
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&language).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &language, nil
}

func (r *languageRepository) FindAll(ctx context.Context) ([]models.Language, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var languages []models.Language
	err := r.db.WithContext(ctx).Order("id ASC").Find(&languages).Error
	return languages, err
}
