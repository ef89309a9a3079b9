package collection

import "github.com/HakimZ78/devhakim-api/internal/models"

// ClampPercent bounds a progress value to [0, 100] at the input boundary.
func ClampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ActiveDate selects which of the two date fields a form renders for the
// given status. Both dates stay on the draft regardless of status, so
// switching status back and forth never discards a previously entered date.
func ActiveDate(status, completionDate, expectedDate string) string {
	if status == models.StatusCompleted {
		return completionDate
	}
	return expectedDate
}
