package models

import (
	"time"

	"github.com/google/uuid"
)

// TimelineEvent is one entry on the public timeline.
type TimelineEvent struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"not null" json:"title" validate:"required"`
	Description string    `gorm:"type:text;not null" json:"description" validate:"required"`
	Date        string    `gorm:"type:varchar(32);not null" json:"date" validate:"required"`
	Type        string    `gorm:"type:varchar(64);index" json:"type"`
	Icon        string    `gorm:"type:varchar(64)" json:"icon"`
	Order       int       `gorm:"column:order_index;not null;default:0;index" json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e *TimelineEvent) PrimaryKey() uuid.UUID { return e.ID }
func (e *TimelineEvent) SetPrimaryKey(id uuid.UUID) { e.ID = id }
func (e *TimelineEvent) OrderIndex() int { return e.Order }
func (e *TimelineEvent) SetOrderIndex(i int) { e.Order = i }
