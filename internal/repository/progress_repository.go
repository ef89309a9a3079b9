package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HakimZ78/devhakim-api/internal/models"
	appErr "github.com/HakimZ78/devhakim-api/pkg/errors"
)

// ProgressCategoryRepository preloads items and exposes the rollup write used
// by the worker.
type ProgressCategoryRepository interface {
	BaseRepository[models.ProgressCategory]
	SetPercent(ctx context.Context, categoryID uuid.UUID, percent int) error
}

type progressCategoryRepository struct {
	BaseRepository[models.ProgressCategory]
	db *gorm.DB
}

func NewProgressCategoryRepository(db *gorm.DB) ProgressCategoryRepository {
	return &progressCategoryRepository{BaseRepository: NewBaseRepository[models.ProgressCategory](db), db: db}
}

func (r *progressCategoryRepository) List(ctx context.Context) ([]models.ProgressCategory, error) {
	var out []models.ProgressCategory
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, created_at ASC")
		}).
		Order("order_index ASC, created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list progress categories failed")
	}
	return out, nil
}

func (r *progressCategoryRepository) SetPercent(ctx context.Context, categoryID uuid.UUID, percent int) error {
	res := r.db.WithContext(ctx).Model(&models.ProgressCategory{}).
		Where("id = ?", categoryID).
		Update("percent", percent)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "set category percent failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "progress category not found")
	}
	return nil
}

// ProgressItemRepository adds the category_id filter used by the items
// endpoint.
type ProgressItemRepository interface {
	BaseRepository[models.ProgressItem]
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.ProgressItem, error)
}

type progressItemRepository struct {
	BaseRepository[models.ProgressItem]
	db *gorm.DB
}

func NewProgressItemRepository(db *gorm.DB) ProgressItemRepository {
	return &progressItemRepository{BaseRepository: NewBaseRepository[models.ProgressItem](db), db: db}
}

func (r *progressItemRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.ProgressItem, error) {
	var out []models.ProgressItem
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("order_index ASC, created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list progress items failed")
	}
	return out, nil
}
