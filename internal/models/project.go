package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project is one portfolio project card.
type Project struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string                      `gorm:"not null" json:"title" validate:"required"`
	Description string                      `gorm:"type:text;not null" json:"description" validate:"required"`
	Tech        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tech"`
	Highlights  datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"highlights"`
	LiveURL     string                      `gorm:"type:varchar(512)" json:"live_url" validate:"omitempty,url"`
	SourceURL   string                      `gorm:"type:varchar(512)" json:"source_url" validate:"omitempty,url"`
	Status      string                      `gorm:"type:varchar(32);index;default:in_progress" json:"status" validate:"omitempty,oneof=completed in_progress planned"`
	Featured    bool                        `gorm:"not null;default:false;index" json:"featured"`
	Order       int                         `gorm:"column:order_index;not null;default:0;index" json:"order_index"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

func (p *Project) PrimaryKey() uuid.UUID { return p.ID }
func (p *Project) SetPrimaryKey(id uuid.UUID) { p.ID = id }
func (p *Project) OrderIndex() int { return p.Order }
func (p *Project) SetOrderIndex(i int) { p.Order = i }
