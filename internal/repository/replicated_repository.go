package repository

import (
	"context"
	"errors"
	"time"

	"homeservices-backend/internal/database"
	"homeservices-backend/internal/models"

	"gorm.io/gorm"
)

// ListOptions controls filtered list queries. A zero Limit disables pagination.
type ListOptions struct {
	Filters map[string]any
	OrderBy string
	Page    int
	Limit   int
}

// ReplicatedRepository is the row store behind a language-replicated content
// type. All lookups are by logical key, never by a single row's own id, except
// FindByID which exists for row-scoped admin actions (e.g. comment approval).
type ReplicatedRepository[T models.Translated] interface {
	CreateRow(ctx context.Context, row *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	FindByKey(ctx context.Context, key string) ([]T, error)
	FindOne(ctx context.Context, key string, langID uint) (*T, error)
	FindAll(ctx context.Context, opts ListOptions) ([]T, int64, error)
	UpdateRow(ctx context.Context, row *T) error
	UpdateShared(ctx context.Context, key string, changes map[string]any) (int64, error)
	DeleteByKey(ctx context.Context, key string) (int64, error)
	DeleteWhere(ctx context.Context, column string, value any) (int64, error)
	KeyExists(ctx context.Context, key string) (bool, error)
}

type replicatedRepository[T models.Translated] struct {
	db        *database.Database
	keyColumn string
	timeout   time.Duration
}

// NewReplicatedRepository builds a row store for model T with the given logical
// key column (e.g. "slug", "faq_id").
func NewReplicatedRepository[T models.Translated](db *database.Database, keyColumn string) ReplicatedRepository[T] {
	return &replicatedRepository[T]{
		db:        db,
		keyColumn: keyColumn,
		timeout:   db.GetQueryTimeout(),
	}
}

func (r *replicatedRepository[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *replicatedRepository[T]) CreateRow(ctx context.Context, row *T) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(row).Error
}

func (r *replicatedRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var row T
	err := r.db.WithContext(ctx).Preload("Language").First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *replicatedRepository[T]) FindByKey(ctx context.Context, key string) ([]T, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []T
	err := r.db.WithContext(ctx).
		Preload("Language").
		Where(r.keyColumn+" = ?", key).
		Order("language_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *replicatedRepository[T]) FindOne(ctx context.Context, key string, langID uint) (*T, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var row T
	err := r.db.WithContext(ctx).
		Preload("Language").
		Where(r.keyColumn+" = ? AND language_id = ?", key, langID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *replicatedRepository[T]) FindAll(ctx context.Context, opts ListOptions) ([]T, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []T
	var total int64
	var model T

	query := r.db.WithContext(ctx).Model(&model)
	if len(opts.Filters) > 0 {
		query = query.Where(opts.Filters)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if opts.OrderBy != "" {
		query = query.Order(opts.OrderBy)
	}
	if opts.Limit > 0 {
		offset := (opts.Page - 1) * opts.Limit
		query = query.Offset(offset).Limit(opts.Limit)
	}

	if err := query.Preload("Language").Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *replicatedRepository[T]) UpdateRow(ctx context.Context, row *T) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(row).Error
}

// UpdateShared applies the same column changes to every row of the logical key.
func (r *replicatedRepository[T]) UpdateShared(ctx context.Context, key string, changes map[string]any) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var model T
	res := r.db.WithContext(ctx).Model(&model).
		Where(r.keyColumn+" = ?", key).
		Updates(changes)
	return res.RowsAffected, res.Error
}

func (r *replicatedRepository[T]) DeleteByKey(ctx context.Context, key string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var model T
	res := r.db.WithContext(ctx).
		Where(r.keyColumn+" = ?", key).
		Delete(&model)
	return res.RowsAffected, res.Error
}

func (r *replicatedRepository[T]) DeleteWhere(ctx context.Context, column string, value any) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var model T
	res := r.db.WithContext(ctx).
		Where(column+" = ?", value).
		Delete(&model)
	return res.RowsAffected, res.Error
}

func (r *replicatedRepository[T]) KeyExists(ctx context.Context, key string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var model T
	var count int64
	err := r.db.WithContext(ctx).Model(&model).
		Where(r.keyColumn+" = ?", key).
		Count(&count).Error
	return count > 0, err
}
