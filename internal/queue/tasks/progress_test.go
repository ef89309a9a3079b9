package tasks

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/HakimZ78/devhakim-api/internal/models"
	"github.com/HakimZ78/devhakim-api/internal/services"
	"github.com/HakimZ78/devhakim-api/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests (required by tasks)
	_, err := logger.Init("info", "json")
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

// Mock implementations

type mockPathRepo struct {
	mock.Mock
}

func (m *mockPathRepo) Create(ctx context.Context, obj *models.LearningPath) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockPathRepo) GetByID(ctx context.Context, id any, dest *models.LearningPath) error {
	args := m.Called(ctx, id, dest)
	return args.Error(0)
}

func (m *mockPathRepo) Update(ctx context.Context, obj *models.LearningPath) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockPathRepo) Delete(ctx context.Context, id any) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPathRepo) List(ctx context.Context) ([]models.LearningPath, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.LearningPath), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPathRepo) SwapOrder(ctx context.Context, a, b any) error {
	args := m.Called(ctx, a, b)
	return args.Error(0)
}

func (m *mockPathRepo) ListSteps(ctx context.Context, pathID uuid.UUID) ([]models.PathStep, error) {
	args := m.Called(ctx, pathID)
	if v := args.Get(0); v != nil {
		return v.([]models.PathStep), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPathRepo) SetProgress(ctx context.Context, pathID uuid.UUID, percent int, status string) error {
	args := m.Called(ctx, pathID, percent, status)
	return args.Error(0)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) Create(ctx context.Context, obj *models.ProgressCategory) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id any, dest *models.ProgressCategory) error {
	args := m.Called(ctx, id, dest)
	return args.Error(0)
}

func (m *mockCategoryRepo) Update(ctx context.Context, obj *models.ProgressCategory) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id any) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]models.ProgressCategory, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.ProgressCategory), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) SwapOrder(ctx context.Context, a, b any) error {
	args := m.Called(ctx, a, b)
	return args.Error(0)
}

func (m *mockCategoryRepo) SetPercent(ctx context.Context, categoryID uuid.UUID, percent int) error {
	args := m.Called(ctx, categoryID, percent)
	return args.Error(0)
}

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) Create(ctx context.Context, obj *models.ProgressItem) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id any, dest *models.ProgressItem) error {
	args := m.Called(ctx, id, dest)
	return args.Error(0)
}

func (m *mockItemRepo) Update(ctx context.Context, obj *models.ProgressItem) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockItemRepo) Delete(ctx context.Context, id any) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockItemRepo) List(ctx context.Context) ([]models.ProgressItem, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.ProgressItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) SwapOrder(ctx context.Context, a, b any) error {
	args := m.Called(ctx, a, b)
	return args.Error(0)
}

func (m *mockItemRepo) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.ProgressItem, error) {
	args := m.Called(ctx, categoryID)
	if v := args.Get(0); v != nil {
		return v.([]models.ProgressItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func newHandler(paths *mockPathRepo, categories *mockCategoryRepo, items *mockItemRepo) *ProgressTaskHandler {
	return NewProgressTaskHandler(services.NewProgressService(paths, categories, items))
}

func recalcPathTask(t *testing.T, pathID uuid.UUID) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(RecalcPathPayload{PathID: pathID.String()})
	require.NoError(t, err)
	return asynq.NewTask(TypeRecalcPath, payload)
}

func steps(completed ...bool) []models.PathStep {
	out := make([]models.PathStep, 0, len(completed))
	for i, done := range completed {
		out = append(out, models.PathStep{ID: uuid.New(), Title: "step", Completed: done, Order: i + 1})
	}
	return out
}

func TestHandleRecalcPath(t *testing.T) {
	cases := []struct {
		name       string
		steps      []models.PathStep
		wantPct    int
		wantStatus string
	}{
		{"all steps done", steps(true, true, true), 100, models.StatusCompleted},
		{"one of three done", steps(true, false, false), 33, models.StatusInProgress},
		{"nothing done", steps(false, false), 0, models.StatusPlanned},
		{"no steps yet", nil, 0, models.StatusPlanned},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			paths := new(mockPathRepo)
			pathID := uuid.New()

			paths.On("ListSteps", mock.Anything, pathID).Return(tc.steps, nil).Once()
			paths.On("SetProgress", mock.Anything, pathID, tc.wantPct, tc.wantStatus).Return(nil).Once()

			h := newHandler(paths, new(mockCategoryRepo), new(mockItemRepo))
			require.NoError(t, h.HandleRecalcPath(context.Background(), recalcPathTask(t, pathID)))
			paths.AssertExpectations(t)
		})
	}
}

func TestHandleRecalcCategoryAveragesItems(t *testing.T) {
	categories := new(mockCategoryRepo)
	items := new(mockItemRepo)
	categoryID := uuid.New()

	items.On("ListByCategory", mock.Anything, categoryID).Return([]models.ProgressItem{
		{ID: uuid.New(), CategoryID: categoryID, Label: "Go", Percent: 40},
		{ID: uuid.New(), CategoryID: categoryID, Label: "SQL", Percent: 60},
	}, nil).Once()
	categories.On("SetPercent", mock.Anything, categoryID, 50).Return(nil).Once()

	h := newHandler(new(mockPathRepo), categories, items)
	payload, err := json.Marshal(RecalcCategoryPayload{CategoryID: categoryID.String()})
	require.NoError(t, err)
	require.NoError(t, h.HandleRecalcCategory(context.Background(), asynq.NewTask(TypeRecalcCategory, payload)))

	categories.AssertExpectations(t)
	items.AssertExpectations(t)
}

func TestHandleRecalcCategoryEmptyIsZero(t *testing.T) {
	categories := new(mockCategoryRepo)
	items := new(mockItemRepo)
	categoryID := uuid.New()

	items.On("ListByCategory", mock.Anything, categoryID).Return([]models.ProgressItem{}, nil).Once()
	categories.On("SetPercent", mock.Anything, categoryID, 0).Return(nil).Once()

	h := newHandler(new(mockPathRepo), categories, items)
	payload, _ := json.Marshal(RecalcCategoryPayload{CategoryID: categoryID.String()})
	require.NoError(t, h.HandleRecalcCategory(context.Background(), asynq.NewTask(TypeRecalcCategory, payload)))

	categories.AssertExpectations(t)
}

func TestHandleRecalcPathRejectsBadPayload(t *testing.T) {
	h := newHandler(new(mockPathRepo), new(mockCategoryRepo), new(mockItemRepo))
	require.Error(t, h.HandleRecalcPath(context.Background(), asynq.NewTask(TypeRecalcPath, []byte("{"))))
	require.Error(t, h.HandleRecalcPath(context.Background(), asynq.NewTask(TypeRecalcPath, []byte(`{"path_id":"nope"}`))))
}
