package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/HakimZ78/devhakim-api/internal/models"
	appErr "github.com/HakimZ78/devhakim-api/pkg/errors"
)

type ProjectRepository interface {
	BaseRepository[models.Project]
	ListFeatured(ctx context.Context) ([]models.Project, error)
}

type projectRepository struct {
	BaseRepository[models.Project]
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{BaseRepository: NewBaseRepository[models.Project](db), db: db}
}

func (r *projectRepository) ListFeatured(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	err := r.db.WithContext(ctx).
		Where("featured = true").
		Order("order_index ASC, created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list featured projects failed")
	}
	return out, nil
}
