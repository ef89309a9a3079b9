package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressCategory groups related progress items. Percent is the rollup of its
// items, recomputed by the worker whenever an item changes.
type ProgressCategory struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string         `gorm:"not null" json:"title" validate:"required"`
	Description string         `gorm:"type:text" json:"description"`
	Color       string         `gorm:"type:varchar(32)" json:"color"`
	Percent     int            `gorm:"not null;default:0" json:"percent" validate:"gte=0,lte=100"`
	Items       []ProgressItem `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"items"`
	Order       int            `gorm:"column:order_index;not null;default:0;index" json:"order_index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (c *ProgressCategory) PrimaryKey() uuid.UUID { return c.ID }
func (c *ProgressCategory) SetPrimaryKey(id uuid.UUID) { c.ID = id }
func (c *ProgressCategory) OrderIndex() int { return c.Order }
func (c *ProgressCategory) SetOrderIndex(i int) { c.Order = i }

func (c *ProgressCategory) BeforeSave(tx *gorm.DB) error {
	c.Percent = clampPercent(c.Percent)
	return nil
}

// ProgressItem is one tracked skill within a progress category.
type ProgressItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CategoryID uuid.UUID `gorm:"type:uuid;index;not null" json:"category_id" validate:"required"`
	Label      string    `gorm:"not null" json:"label" validate:"required"`
	Percent    int       `gorm:"not null;default:0" json:"percent" validate:"gte=0,lte=100"`
	Order      int       `gorm:"column:order_index;not null;default:0;index" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (i *ProgressItem) PrimaryKey() uuid.UUID { return i.ID }
func (i *ProgressItem) SetPrimaryKey(id uuid.UUID) { i.ID = id }
func (i *ProgressItem) OrderIndex() int { return i.Order }
func (i *ProgressItem) SetOrderIndex(n int) { i.Order = n }

func (i *ProgressItem) BeforeSave(tx *gorm.DB) error {
	i.Percent = clampPercent(i.Percent)
	return nil
}
