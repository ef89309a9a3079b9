package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LearningPath owns an ordered list of steps. Progress is derived from step
// completion by the worker, not set directly by clients.
type LearningPath struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string     `gorm:"not null" json:"title" validate:"required"`
	Description string     `gorm:"type:text;not null" json:"description" validate:"required"`
	Icon        string     `gorm:"type:varchar(64)" json:"icon"`
	Color       string     `gorm:"type:varchar(32)" json:"color"`
	Status      string     `gorm:"type:varchar(32);index;default:planned" json:"status" validate:"omitempty,oneof=completed in_progress planned"`
	Progress    int        `gorm:"not null;default:0" json:"progress" validate:"gte=0,lte=100"`
	Steps       []PathStep `gorm:"foreignKey:PathID;constraint:OnDelete:CASCADE" json:"steps"`
	Order       int        `gorm:"column:order_index;not null;default:0;index" json:"order_index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (p *LearningPath) PrimaryKey() uuid.UUID { return p.ID }
func (p *LearningPath) SetPrimaryKey(id uuid.UUID) { p.ID = id }
func (p *LearningPath) OrderIndex() int { return p.Order }
func (p *LearningPath) SetOrderIndex(i int) { p.Order = i }

func (p *LearningPath) BeforeSave(tx *gorm.DB) error {
	p.Progress = clampPercent(p.Progress)
	return nil
}

// PathStep is one step within a learning path.
type PathStep struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PathID      uuid.UUID `gorm:"type:uuid;index;not null" json:"path_id" validate:"required"`
	Title       string    `gorm:"not null" json:"title" validate:"required"`
	Description string    `gorm:"type:text" json:"description"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	Order       int       `gorm:"column:order_index;not null;default:0;index" json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *PathStep) PrimaryKey() uuid.UUID { return s.ID }
func (s *PathStep) SetPrimaryKey(id uuid.UUID) { s.ID = id }
func (s *PathStep) OrderIndex() int { return s.Order }
func (s *PathStep) SetOrderIndex(i int) { s.Order = i }
