package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/HakimZ78/devhakim-api/internal/models"
	appErr "github.com/HakimZ78/devhakim-api/pkg/errors"
)

func TestListAcceptsEnvelopeAndBareArray(t *testing.T) {
	id := uuid.New()
	payload := []models.SkillFocus{{ID: id, Area: "API design", Level: 65}}

	cases := map[string]func(w http.ResponseWriter){
		"envelope": func(w http.ResponseWriter) {
			json.NewEncoder(w).Encode(map[string]any{"success": true, "data": payload})
		},
		"bare array": func(w http.ResponseWriter) {
			json.NewEncoder(w).Encode(payload)
		},
	}

	for name, write := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/v1/skills/focus", r.URL.Path)
				write(w)
			}))
			defer srv.Close()

			c := New[models.SkillFocus](srv.URL, "skills/focus")
			items, err := c.List(context.Background())
			require.NoError(t, err)
			require.Len(t, items, 1)
			require.Equal(t, id, items[0].ID)
			require.Equal(t, "API design", items[0].Area)
		})
	}
}

func TestListReturnsEmptySliceOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   map[string]string{"code": "internal", "message": "boom"},
		})
	}))
	defer srv.Close()

	c := New[models.SkillFocus](srv.URL, "skills/focus")
	items, err := c.List(context.Background())
	require.Error(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestStoreErrorMessageSurfacesVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   map[string]string{"code": "invalid", "message": "title is required"},
		})
	}))
	defer srv.Close()

	c := New[models.Milestone](srv.URL, "journey/milestones")
	_, err := c.Create(context.Background(), models.Milestone{})
	require.Error(t, err)
	require.Equal(t, "title is required", appErr.Message(err))
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}

func TestTransportFailureYieldsGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New[models.Milestone](srv.URL, "journey/milestones")
	_, err := c.Create(context.Background(), models.Milestone{Title: "x", Description: "y"})
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeUnavailable))
	require.Contains(t, err.Error(), "failed to create journey/milestones")
}

func TestMutationsCarryBearerToken(t *testing.T) {
	var gotAuth, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotMethod = r.Method
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": models.Command{Command: "ls"}})
	}))
	defer srv.Close()

	c := New[models.Command](srv.URL, "commands", WithToken("tok-123"))
	_, err := c.Update(context.Background(), models.Command{Command: "ls", Description: "list"})
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.Equal(t, http.MethodPut, gotMethod)
}

func TestRemoveSendsIDQuery(t *testing.T) {
	var gotQuery, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("id")
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	c := New[models.Command](srv.URL, "commands")
	require.NoError(t, c.Remove(context.Background(), "abc123"))
	require.Equal(t, "abc123", gotQuery)
	require.Equal(t, "/api/v1/commands", gotPath)
}

func TestSwapOrderPostsBothIDs(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/projects/reorder", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	c := New[models.Project](srv.URL, "projects")
	require.NoError(t, c.SwapOrder(context.Background(), "id-a", "id-b"))
	require.Equal(t, "id-a", got["a"])
	require.Equal(t, "id-b", got["b"])
}
