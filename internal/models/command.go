package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Command is one entry in the commands reference table.
type Command struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Command     string                      `gorm:"not null" json:"command" validate:"required"`
	Description string                      `gorm:"type:text;not null" json:"description" validate:"required"`
	Category    string                      `gorm:"type:varchar(64);index" json:"category"`
	Example     string                      `gorm:"type:text" json:"example"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	Order       int                         `gorm:"column:order_index;not null;default:0;index" json:"order_index"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

func (c *Command) PrimaryKey() uuid.UUID { return c.ID }
func (c *Command) SetPrimaryKey(id uuid.UUID) { c.ID = id }
func (c *Command) OrderIndex() int { return c.Order }
func (c *Command) SetOrderIndex(i int) { c.Order = i }
