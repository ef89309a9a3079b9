package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/HakimZ78/devhakim-api/internal/models"
	appErr "github.com/HakimZ78/devhakim-api/pkg/errors"
)

// CommandRepository adds the reference-table search used by the commands
// endpoint.
type CommandRepository interface {
	BaseRepository[models.Command]
	Search(ctx context.Context, category, query string) ([]models.Command, error)
}

type commandRepository struct {
	BaseRepository[models.Command]
	db *gorm.DB
}

func NewCommandRepository(db *gorm.DB) CommandRepository {
	return &commandRepository{BaseRepository: NewBaseRepository[models.Command](db), db: db}
}

func (r *commandRepository) Search(ctx context.Context, category, query string) ([]models.Command, error) {
	q := r.db.WithContext(ctx).Model(&models.Command{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(command) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	var out []models.Command
	if err := q.Order("order_index ASC, created_at ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "search commands failed")
	}
	return out, nil
}
