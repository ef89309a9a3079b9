package models

// Status values shared by certifications, learning paths, milestones and
// timeline entries.
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in_progress"
	StatusPlanned    = "planned"
)
