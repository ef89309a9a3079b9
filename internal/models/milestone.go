package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Milestone is one entry on the journey timeline.
type Milestone struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string                      `gorm:"not null" json:"title" validate:"required"`
	Description string                      `gorm:"type:text;not null" json:"description" validate:"required"`
	Date        string                      `gorm:"type:varchar(32)" json:"date"`
	Status      string                      `gorm:"type:varchar(32);index;default:planned" json:"status" validate:"omitempty,oneof=completed in_progress planned"`
	Category    string                      `gorm:"type:varchar(64);index" json:"category"`
	Details     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"details"`
	Order       int                         `gorm:"column:order_index;not null;default:0;index" json:"order_index"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

func (m *Milestone) PrimaryKey() uuid.UUID { return m.ID }
func (m *Milestone) SetPrimaryKey(id uuid.UUID) { m.ID = id }
func (m *Milestone) OrderIndex() int { return m.Order }
func (m *Milestone) SetOrderIndex(i int) { m.Order = i }
