package seed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HakimZ78/devhakim-api/internal/models"
)

func TestDecodeYAMLUsesAPIFieldNames(t *testing.T) {
	raw := []byte(`
- title: AWS SAA
  provider: AWS
  status: in_progress
  expected_date: "2026-03-01"
  progress: 45
  skills: [EC2, S3]
  order_index: 2
`)
	var certs []models.Certification
	require.NoError(t, DecodeYAML(raw, &certs))
	require.Len(t, certs, 1)

	c := certs[0]
	require.Equal(t, "AWS SAA", c.Title)
	require.Equal(t, models.StatusInProgress, c.Status)
	require.Equal(t, "2026-03-01", c.ExpectedDate)
	require.Equal(t, 45, c.Progress)
	require.Equal(t, []string{"EC2", "S3"}, []string(c.Skills))
	require.Equal(t, 2, c.Order)
}

func TestDecodeYAMLNestedChildren(t *testing.T) {
	raw := []byte(`
- title: Backend
  description: Server-side work
  steps:
    - title: Fundamentals
      completed: true
      order_index: 1
    - title: Services
      order_index: 2
`)
	var paths []models.LearningPath
	require.NoError(t, DecodeYAML(raw, &paths))
	require.Len(t, paths, 1)
	require.Len(t, paths[0].Steps, 2)
	require.True(t, paths[0].Steps[0].Completed)
	require.Equal(t, "Services", paths[0].Steps[1].Title)
}

func TestDecodeYAMLAcceptsJSON(t *testing.T) {
	raw := []byte(`[{"command":"ls","description":"list files","order_index":1}]`)
	var cmds []models.Command
	require.NoError(t, DecodeYAML(raw, &cmds))
	require.Len(t, cmds, 1)
	require.Equal(t, "ls", cmds[0].Command)
}

func TestDecodeYAMLRejectsMalformedInput(t *testing.T) {
	var certs []models.Certification
	require.Error(t, DecodeYAML([]byte("{:"), &certs))
}
