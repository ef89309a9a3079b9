package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Certification is one entry on the certifications journey page.
//
// CompletionDate and ExpectedDate are both kept on the record regardless of
// status: switching status away from completed must not discard a previously
// entered completion date. Only the date matching the current status is
// rendered.
type Certification struct {
	ID             uuid.UUID                    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title          string                       `gorm:"not null" json:"title" validate:"required"`
	Provider       string                       `gorm:"not null" json:"provider" validate:"required"`
	Description    string                       `gorm:"type:text" json:"description"`
	Status         string                       `gorm:"type:varchar(32);index;default:planned" json:"status" validate:"omitempty,oneof=completed in_progress planned"`
	CompletionDate string                       `gorm:"type:varchar(32)" json:"completion_date"`
	ExpectedDate   string                       `gorm:"type:varchar(32)" json:"expected_date"`
	Progress       int                          `gorm:"not null;default:0" json:"progress" validate:"gte=0,lte=100"`
	Skills         datatypes.JSONSlice[string]  `gorm:"type:jsonb" json:"skills"`
	Evidence       datatypes.JSONSlice[string]  `gorm:"type:jsonb" json:"evidence"`
	Order          int                          `gorm:"column:order_index;not null;default:0;index" json:"order_index"`
	CreatedAt      time.Time                    `json:"created_at"`
	UpdatedAt      time.Time                    `json:"updated_at"`
}

func (c *Certification) PrimaryKey() uuid.UUID { return c.ID }
func (c *Certification) SetPrimaryKey(id uuid.UUID) { c.ID = id }
func (c *Certification) OrderIndex() int { return c.Order }
func (c *Certification) SetOrderIndex(i int) { c.Order = i }

// BeforeSave clamps the progress percentage server-side; the editing UI clamps
// at the input boundary as well.
func (c *Certification) BeforeSave(tx *gorm.DB) error {
	c.Progress = clampPercent(c.Progress)
	return nil
}
