package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/HakimZ78/devhakim-api/internal/client"
	"github.com/HakimZ78/devhakim-api/internal/collection"
	"github.com/HakimZ78/devhakim-api/internal/seed"
)

// runner is the type-erased face of one collection workflow, so cobra
// commands can dispatch on a resource name chosen at run time.
type runner interface {
	list(ctx context.Context) error
	create(ctx context.Context, file string) error
	update(ctx context.Context, id, file string) error
	remove(ctx context.Context, id string) error
	reorder(ctx context.Context, i, j int) error
}

var resources = map[string]func() (runner, error){
	"certifications":   newRunner("journey/certifications", collection.Certifications()),
	"learning-paths":   newRunner("journey/learning-paths", collection.LearningPaths()),
	"path-steps":       newRunner("journey/learning-paths/steps", collection.PathSteps()),
	"milestones":       newRunner("journey/milestones", collection.Milestones()),
	"progress":         newRunner("journey/progress", collection.ProgressCategories()),
	"progress-items":   newRunner("journey/progress/items", collection.ProgressItems()),
	"commands":         newRunner("commands", collection.Commands()),
	"projects":         newRunner("projects", collection.Projects()),
	"templates":        newRunner("templates", collection.Templates()),
	"skill-categories": newRunner("skills/categories", collection.SkillCategories()),
	"skill-focus":      newRunner("skills/focus", collection.SkillFocusAreas()),
	"timeline-events":  newRunner("timeline-events", collection.TimelineEvents()),
}

func newRunner[T any](path string, desc collection.Descriptor[T]) func() (runner, error) {
	return func() (runner, error) {
		api := client.New[T](apiURL, path, client.WithToken(token))
		ctrl, err := collection.NewController[T](api, desc)
		if err != nil {
			return nil, err
		}
		return &typedRunner[T]{ctrl: ctrl, desc: desc}, nil
	}
}

type typedRunner[T any] struct {
	ctrl *collection.Controller[T]
	desc collection.Descriptor[T]
}

func (r *typedRunner[T]) list(ctx context.Context) error {
	if err := r.ctrl.Load(ctx); err != nil {
		return err
	}
	for _, it := range r.ctrl.Items() {
		line, err := json.Marshal(it)
		if err != nil {
			return err
		}
		fmt.Printf("%-38s %3d  %s\n", r.desc.ID(it), r.desc.OrderIndex(it), line)
	}
	return nil
}

func (r *typedRunner[T]) create(ctx context.Context, file string) error {
	raw, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	if err := r.ctrl.Load(ctx); err != nil {
		return err
	}
	draft := r.ctrl.StartCreate()
	if err := seed.DecodeYAML(raw, draft); err != nil {
		r.ctrl.CancelEdit()
		return fmt.Errorf("parse %s: %w", file, err)
	}
	if err := r.ctrl.Save(ctx); err != nil {
		return err
	}
	saved := r.ctrl.Items()
	fmt.Println("created", r.desc.ID(saved[len(saved)-1]))
	return nil
}

func (r *typedRunner[T]) update(ctx context.Context, id, file string) error {
	raw, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	if err := r.ctrl.Load(ctx); err != nil {
		return err
	}
	var found bool
	for _, it := range r.ctrl.Items() {
		if r.desc.ID(it) == id {
			draft := r.ctrl.StartEdit(it)
			if err := seed.DecodeYAML(raw, draft); err != nil {
				r.ctrl.CancelEdit()
				return fmt.Errorf("parse %s: %w", file, err)
			}
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no entry with id %s", id)
	}
	if err := r.ctrl.Save(ctx); err != nil {
		return err
	}
	fmt.Println("saved", id)
	return nil
}

func (r *typedRunner[T]) remove(ctx context.Context, id string) error {
	if err := r.ctrl.Load(ctx); err != nil {
		return err
	}
	r.ctrl.ConfirmDelete(id)
	if err := r.ctrl.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Println("deleted", id)
	return nil
}

func (r *typedRunner[T]) reorder(ctx context.Context, i, j int) error {
	if err := r.ctrl.Load(ctx); err != nil {
		return err
	}
	if err := r.ctrl.Reorder(ctx, i, j); err != nil {
		return err
	}
	fmt.Printf("swapped positions %d and %d\n", i, j)
	return nil
}
