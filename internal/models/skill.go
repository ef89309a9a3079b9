package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SkillCategory is a named group of skills shown on the homepage skills grid.
type SkillCategory struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string                      `gorm:"not null" json:"name" validate:"required"`
	Icon      string                      `gorm:"type:varchar(64)" json:"icon"`
	Color     string                      `gorm:"type:varchar(32)" json:"color"`
	Skills    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"skills"`
	Order     int                         `gorm:"column:order_index;not null;default:0;index" json:"order_index"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

func (c *SkillCategory) PrimaryKey() uuid.UUID { return c.ID }
func (c *SkillCategory) SetPrimaryKey(id uuid.UUID) { c.ID = id }
func (c *SkillCategory) OrderIndex() int { return c.Order }
func (c *SkillCategory) SetOrderIndex(i int) { c.Order = i }

// SkillFocus is a current-focus area with a proficiency level.
type SkillFocus struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Area        string    `gorm:"not null" json:"area" validate:"required"`
	Description string    `gorm:"type:text" json:"description"`
	Level       int       `gorm:"not null;default:0" json:"level" validate:"gte=0,lte=100"`
	Order       int       `gorm:"column:order_index;not null;default:0;index" json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (f *SkillFocus) PrimaryKey() uuid.UUID { return f.ID }
func (f *SkillFocus) SetPrimaryKey(id uuid.UUID) { f.ID = id }
func (f *SkillFocus) OrderIndex() int { return f.Order }
func (f *SkillFocus) SetOrderIndex(i int) { f.Order = i }

func (f *SkillFocus) BeforeSave(tx *gorm.DB) error {
	f.Level = clampPercent(f.Level)
	return nil
}
