package collection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HakimZ78/devhakim-api/internal/models"
)

func TestClampPercent(t *testing.T) {
	require.Equal(t, 0, ClampPercent(-10))
	require.Equal(t, 0, ClampPercent(0))
	require.Equal(t, 55, ClampPercent(55))
	require.Equal(t, 100, ClampPercent(100))
	require.Equal(t, 100, ClampPercent(250))
}

// Switching status back and forth must never lose a previously entered date:
// both stay on the draft and the form just renders the relevant one.
func TestActiveDateFollowsStatus(t *testing.T) {
	draft := models.Certification{
		Status:         models.StatusCompleted,
		CompletionDate: "2025-01-01",
		ExpectedDate:   "2026-06-01",
	}

	require.Equal(t, "2025-01-01", ActiveDate(draft.Status, draft.CompletionDate, draft.ExpectedDate))

	draft.Status = models.StatusPlanned
	require.Equal(t, "2026-06-01", ActiveDate(draft.Status, draft.CompletionDate, draft.ExpectedDate))

	draft.Status = models.StatusCompleted
	require.Equal(t, "2025-01-01", ActiveDate(draft.Status, draft.CompletionDate, draft.ExpectedDate))
}
