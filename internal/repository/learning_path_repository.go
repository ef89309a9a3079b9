package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HakimZ78/devhakim-api/internal/models"
	appErr "github.com/HakimZ78/devhakim-api/pkg/errors"
)

// LearningPathRepository adds step preloading and the derived-progress write
// on top of the generic CRUD surface.
type LearningPathRepository interface {
	BaseRepository[models.LearningPath]
	ListSteps(ctx context.Context, pathID uuid.UUID) ([]models.PathStep, error)
	SetProgress(ctx context.Context, pathID uuid.UUID, percent int, status string) error
}

type learningPathRepository struct {
	BaseRepository[models.LearningPath]
	db *gorm.DB
}

func NewLearningPathRepository(db *gorm.DB) LearningPathRepository {
	return &learningPathRepository{BaseRepository: NewBaseRepository[models.LearningPath](db), db: db}
}

// List overrides the generic listing to preload each path's steps in step
// order.
func (r *learningPathRepository) List(ctx context.Context) ([]models.LearningPath, error) {
	var out []models.LearningPath
	err := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, created_at ASC")
		}).
		Order("order_index ASC, created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list learning paths failed")
	}
	return out, nil
}

func (r *learningPathRepository) GetByID(ctx context.Context, id any, dest *models.LearningPath) error {
	err := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, created_at ASC")
		}).
		First(dest, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.New(appErr.CodeNotFound, "learning path not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get learning path failed")
	}
	return nil
}

func (r *learningPathRepository) ListSteps(ctx context.Context, pathID uuid.UUID) ([]models.PathStep, error) {
	var out []models.PathStep
	err := r.db.WithContext(ctx).
		Where("path_id = ?", pathID).
		Order("order_index ASC, created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list path steps failed")
	}
	return out, nil
}

func (r *learningPathRepository) SetProgress(ctx context.Context, pathID uuid.UUID, percent int, status string) error {
	res := r.db.WithContext(ctx).Model(&models.LearningPath{}).
		Where("id = ?", pathID).
		Updates(map[string]any{"progress": percent, "status": status})
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "set path progress failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "learning path not found")
	}
	return nil
}
