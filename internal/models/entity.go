package models

import "github.com/google/uuid"

// Keyed is implemented by every persisted entity. Identity presence is the
// create-vs-update discriminant throughout the API and the admin workflow.
type Keyed interface {
	PrimaryKey() uuid.UUID
	SetPrimaryKey(uuid.UUID)
}

// Ordered is implemented by entities whose display order is controlled by an
// order_index column. Values need not be contiguous; they only define a total
// order within the collection.
type Ordered interface {
	OrderIndex() int
	SetOrderIndex(int)
}

// clampPercent bounds a progress value to [0, 100].
func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
