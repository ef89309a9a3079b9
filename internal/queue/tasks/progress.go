package tasks

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/HakimZ78/devhakim-api/internal/services"
	"github.com/HakimZ78/devhakim-api/pkg/logger"
)

const (
	TypeRecalcPath     = "journey:recalc_path"
	TypeRecalcCategory = "journey:recalc_category"
)

type RecalcPathPayload struct {
	PathID string `json:"path_id"`
}

type RecalcCategoryPayload struct {
	CategoryID string `json:"category_id"`
}

// Enqueuer submits recalculation tasks after step/item mutations. Enqueue
// failures are logged, not surfaced: the write that triggered them already
// succeeded, and the rollup self-heals on the next mutation.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer wraps an asynq client. A nil client disables enqueueing.
func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) RecalcPath(ctx context.Context, pathID uuid.UUID) {
	if e == nil || e.client == nil {
		return
	}
	payload, _ := json.Marshal(RecalcPathPayload{PathID: pathID.String()})
	if _, err := e.client.EnqueueContext(ctx, asynq.NewTask(TypeRecalcPath, payload)); err != nil {
		logger.L().Error("enqueue recalc path failed", zap.String("path_id", pathID.String()), zap.Error(err))
	}
}

func (e *Enqueuer) RecalcCategory(ctx context.Context, categoryID uuid.UUID) {
	if e == nil || e.client == nil {
		return
	}
	payload, _ := json.Marshal(RecalcCategoryPayload{CategoryID: categoryID.String()})
	if _, err := e.client.EnqueueContext(ctx, asynq.NewTask(TypeRecalcCategory, payload)); err != nil {
		logger.L().Error("enqueue recalc category failed", zap.String("category_id", categoryID.String()), zap.Error(err))
	}
}

// ProgressTaskHandler consumes recalculation tasks in the worker process.
type ProgressTaskHandler struct {
	svc services.ProgressService
}

func NewProgressTaskHandler(svc services.ProgressService) *ProgressTaskHandler {
	return &ProgressTaskHandler{svc: svc}
}

func (h *ProgressTaskHandler) HandleRecalcPath(ctx context.Context, t *asynq.Task) error {
	var payload RecalcPathPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}
	pathID, err := uuid.Parse(payload.PathID)
	if err != nil {
		return err
	}
	if err := h.svc.RecalcPath(ctx, pathID); err != nil {
		logger.L().Error("recalc path failed", zap.String("path_id", payload.PathID), zap.Error(err))
		return err
	}
	logger.L().Info("recalc path done", zap.String("path_id", payload.PathID))
	return nil
}

func (h *ProgressTaskHandler) HandleRecalcCategory(ctx context.Context, t *asynq.Task) error {
	var payload RecalcCategoryPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}
	categoryID, err := uuid.Parse(payload.CategoryID)
	if err != nil {
		return err
	}
	if err := h.svc.RecalcCategory(ctx, categoryID); err != nil {
		logger.L().Error("recalc category failed", zap.String("category_id", payload.CategoryID), zap.Error(err))
		return err
	}
	logger.L().Info("recalc category done", zap.String("category_id", payload.CategoryID))
	return nil
}
