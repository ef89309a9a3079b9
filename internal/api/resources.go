package api

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HakimZ78/devhakim-api/internal/api/handlers"
	"github.com/HakimZ78/devhakim-api/internal/cache"
	"github.com/HakimZ78/devhakim-api/internal/models"
	"github.com/HakimZ78/devhakim-api/internal/queue/tasks"
	"github.com/HakimZ78/devhakim-api/internal/repository"
)

// NewResourceRoutes wires every collection to a ResourceHandler instance.
// This is the single place a new content type gets registered.
func NewResourceRoutes(db *gorm.DB, lc *cache.ListCache, enq *tasks.Enqueuer) []ResourceRoute {
	certRepo := repository.NewBaseRepository[models.Certification](db)
	pathRepo := repository.NewLearningPathRepository(db)
	stepRepo := repository.NewBaseRepository[models.PathStep](db)
	milestoneRepo := repository.NewBaseRepository[models.Milestone](db)
	categoryRepo := repository.NewProgressCategoryRepository(db)
	itemRepo := repository.NewProgressItemRepository(db)
	commandRepo := repository.NewCommandRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	templateRepo := repository.NewBaseRepository[models.Template](db)
	skillCatRepo := repository.NewBaseRepository[models.SkillCategory](db)
	skillFocusRepo := repository.NewBaseRepository[models.SkillFocus](db)
	timelineRepo := repository.NewBaseRepository[models.TimelineEvent](db)

	return []ResourceRoute{
		{
			Path:    "journey/certifications",
			Handler: handlers.NewResourceHandler[models.Certification, *models.Certification]("journey/certifications", certRepo, lc),
		},
		{
			Path:    "journey/learning-paths",
			Handler: handlers.NewResourceHandler[models.LearningPath, *models.LearningPath]("journey/learning-paths", pathRepo, lc),
		},
		{
			Path: "journey/learning-paths/steps",
			Handler: handlers.NewResourceHandler[models.PathStep, *models.PathStep]("journey/learning-paths/steps", stepRepo, lc,
				handlers.WithListFn[models.PathStep, *models.PathStep](func(ctx context.Context, q url.Values) ([]models.PathStep, error) {
					if pidStr := q.Get("path_id"); pidStr != "" {
						pid, err := uuid.Parse(pidStr)
						if err != nil {
							return nil, invalidQueryParam("path_id")
						}
						return pathRepo.ListSteps(ctx, pid)
					}
					return stepRepo.List(ctx)
				}),
				handlers.WithAfterMutate[models.PathStep, *models.PathStep](func(ctx context.Context, step *models.PathStep) {
					// Step completion changed; the parent path's derived
					// progress is now stale.
					enq.RecalcPath(ctx, step.PathID)
					lc.Invalidate(ctx, "journey/learning-paths")
				}),
			),
		},
		{
			Path:    "journey/milestones",
			Handler: handlers.NewResourceHandler[models.Milestone, *models.Milestone]("journey/milestones", milestoneRepo, lc),
		},
		{
			Path:    "journey/progress",
			Handler: handlers.NewResourceHandler[models.ProgressCategory, *models.ProgressCategory]("journey/progress", categoryRepo, lc),
		},
		{
			Path: "journey/progress/items",
			Handler: handlers.NewResourceHandler[models.ProgressItem, *models.ProgressItem]("journey/progress/items", itemRepo, lc,
				handlers.WithListFn[models.ProgressItem, *models.ProgressItem](func(ctx context.Context, q url.Values) ([]models.ProgressItem, error) {
					if cidStr := q.Get("category_id"); cidStr != "" {
						cid, err := uuid.Parse(cidStr)
						if err != nil {
							return nil, invalidQueryParam("category_id")
						}
						return itemRepo.ListByCategory(ctx, cid)
					}
					return itemRepo.List(ctx)
				}),
				handlers.WithAfterMutate[models.ProgressItem, *models.ProgressItem](func(ctx context.Context, item *models.ProgressItem) {
					enq.RecalcCategory(ctx, item.CategoryID)
					lc.Invalidate(ctx, "journey/progress")
				}),
			),
		},
		{
			Path: "commands",
			Handler: handlers.NewResourceHandler[models.Command, *models.Command]("commands", commandRepo, lc,
				handlers.WithListFn[models.Command, *models.Command](func(ctx context.Context, q url.Values) ([]models.Command, error) {
					return commandRepo.Search(ctx, q.Get("category"), q.Get("q"))
				}),
			),
		},
		{
			Path: "projects",
			Handler: handlers.NewResourceHandler[models.Project, *models.Project]("projects", projectRepo, lc,
				handlers.WithListFn[models.Project, *models.Project](func(ctx context.Context, q url.Values) ([]models.Project, error) {
					if q.Get("featured") == "true" {
						return projectRepo.ListFeatured(ctx)
					}
					return projectRepo.List(ctx)
				}),
			),
		},
		{
			Path:    "templates",
			Handler: handlers.NewResourceHandler[models.Template, *models.Template]("templates", templateRepo, lc),
		},
		{
			Path:    "skills/categories",
			Handler: handlers.NewResourceHandler[models.SkillCategory, *models.SkillCategory]("skills/categories", skillCatRepo, lc),
		},
		{
			Path:    "skills/focus",
			Handler: handlers.NewResourceHandler[models.SkillFocus, *models.SkillFocus]("skills/focus", skillFocusRepo, lc),
		},
		{
			Path:    "timeline-events",
			Handler: handlers.NewResourceHandler[models.TimelineEvent, *models.TimelineEvent]("timeline-events", timelineRepo, lc),
		},
	}
}
