package repository

import (
	"context"
	"errors"
	"time"

	"homeservices-backend/internal/database"
	"homeservices-backend/internal/models"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id uint) (*models.AdminUser, error)
	Count(ctx context.Context) (int64, error)
}

type adminRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewAdminRepository(db *database.Database) AdminRepository {
	return &adminRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *adminRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *adminRepository) Create(ctx context.Context, user *models.AdminUser) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(user).Error
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var user models.AdminUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *adminRepository) FindByID(ctx context.Context, id uint) (*models.AdminUser, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var user models.AdminUser
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.AdminUser{}).Count(&count).Error
	return count, err
}
