package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/HakimZ78/devhakim-api/internal/models"
	"github.com/HakimZ78/devhakim-api/internal/repository"
)

// ProgressService recomputes derived progress values: a learning path's
// percent-complete from its steps, and a progress category's rollup from its
// items. Clients never write these fields directly; the worker calls this
// after step/item mutations.
type ProgressService interface {
	RecalcPath(ctx context.Context, pathID uuid.UUID) error
	RecalcCategory(ctx context.Context, categoryID uuid.UUID) error
}

type progressService struct {
	paths      repository.LearningPathRepository
	categories repository.ProgressCategoryRepository
	items      repository.ProgressItemRepository
}

func NewProgressService(
	paths repository.LearningPathRepository,
	categories repository.ProgressCategoryRepository,
	items repository.ProgressItemRepository,
) ProgressService {
	return &progressService{paths: paths, categories: categories, items: items}
}

func (s *progressService) RecalcPath(ctx context.Context, pathID uuid.UUID) error {
	steps, err := s.paths.ListSteps(ctx, pathID)
	if err != nil {
		return err
	}

	done := 0
	for _, st := range steps {
		if st.Completed {
			done++
		}
	}

	percent := 0
	if len(steps) > 0 {
		percent = done * 100 / len(steps)
	}

	status := models.StatusPlanned
	switch {
	case len(steps) > 0 && done == len(steps):
		status = models.StatusCompleted
	case done > 0:
		status = models.StatusInProgress
	}

	return s.paths.SetProgress(ctx, pathID, percent, status)
}

func (s *progressService) RecalcCategory(ctx context.Context, categoryID uuid.UUID) error {
	items, err := s.items.ListByCategory(ctx, categoryID)
	if err != nil {
		return err
	}

	percent := 0
	if len(items) > 0 {
		sum := 0
		for _, it := range items {
			sum += it.Percent
		}
		percent = sum / len(items)
	}

	return s.categories.SetPercent(ctx, categoryID, percent)
}
