package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Template is a reusable snippet or document template.
type Template struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string                      `gorm:"not null" json:"name" validate:"required"`
	Description string                      `gorm:"type:text" json:"description"`
	Category    string                      `gorm:"type:varchar(64);index" json:"category"`
	Content     string                      `gorm:"type:text" json:"content"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	Order       int                         `gorm:"column:order_index;not null;default:0;index" json:"order_index"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

func (t *Template) PrimaryKey() uuid.UUID { return t.ID }
func (t *Template) SetPrimaryKey(id uuid.UUID) { t.ID = id }
func (t *Template) OrderIndex() int { return t.Order }
func (t *Template) SetOrderIndex(i int) { t.Order = i }
