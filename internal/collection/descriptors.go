package collection

import (
	"github.com/google/uuid"

	"github.com/HakimZ78/devhakim-api/internal/models"
	appErr "github.com/HakimZ78/devhakim-api/pkg/errors"
)

// Descriptors for every content type. Each binds the entity's empty
// template, identity and order accessors, and required-field checks into the
// generic workflow; this file is the entire per-entity surface that the admin
// pages used to copy-paste.

func idString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func required(field, value string) error {
	if value == "" {
		return appErr.Newf(appErr.CodeInvalid, "%s is required", field)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func Certifications() Descriptor[models.Certification] {
	return Descriptor[models.Certification]{
		Empty:         func() models.Certification { return models.Certification{Status: models.StatusPlanned} },
		ID:            func(c models.Certification) string { return idString(c.ID) },
		OrderIndex:    func(c models.Certification) int { return c.Order },
		SetOrderIndex: func(c *models.Certification, i int) { c.Order = i },
		Validate: func(c models.Certification) error {
			return firstErr(required("title", c.Title), required("provider", c.Provider))
		},
	}
}

func LearningPaths() Descriptor[models.LearningPath] {
	return Descriptor[models.LearningPath]{
		Empty:         func() models.LearningPath { return models.LearningPath{Status: models.StatusPlanned} },
		ID:            func(p models.LearningPath) string { return idString(p.ID) },
		OrderIndex:    func(p models.LearningPath) int { return p.Order },
		SetOrderIndex: func(p *models.LearningPath, i int) { p.Order = i },
		Validate: func(p models.LearningPath) error {
			return firstErr(required("title", p.Title), required("description", p.Description))
		},
	}
}

func PathSteps() Descriptor[models.PathStep] {
	return Descriptor[models.PathStep]{
		Empty:         func() models.PathStep { return models.PathStep{} },
		ID:            func(s models.PathStep) string { return idString(s.ID) },
		OrderIndex:    func(s models.PathStep) int { return s.Order },
		SetOrderIndex: func(s *models.PathStep, i int) { s.Order = i },
		Validate: func(s models.PathStep) error {
			if s.PathID == uuid.Nil {
				return appErr.New(appErr.CodeInvalid, "path_id is required")
			}
			return required("title", s.Title)
		},
	}
}

func Milestones() Descriptor[models.Milestone] {
	return Descriptor[models.Milestone]{
		Empty:         func() models.Milestone { return models.Milestone{Status: models.StatusPlanned} },
		ID:            func(m models.Milestone) string { return idString(m.ID) },
		OrderIndex:    func(m models.Milestone) int { return m.Order },
		SetOrderIndex: func(m *models.Milestone, i int) { m.Order = i },
		Validate: func(m models.Milestone) error {
			return firstErr(required("title", m.Title), required("description", m.Description))
		},
	}
}

func ProgressCategories() Descriptor[models.ProgressCategory] {
	return Descriptor[models.ProgressCategory]{
		Empty:         func() models.ProgressCategory { return models.ProgressCategory{} },
		ID:            func(c models.ProgressCategory) string { return idString(c.ID) },
		OrderIndex:    func(c models.ProgressCategory) int { return c.Order },
		SetOrderIndex: func(c *models.ProgressCategory, i int) { c.Order = i },
		Validate: func(c models.ProgressCategory) error {
			return required("title", c.Title)
		},
	}
}

func ProgressItems() Descriptor[models.ProgressItem] {
	return Descriptor[models.ProgressItem]{
		Empty:         func() models.ProgressItem { return models.ProgressItem{} },
		ID:            func(i models.ProgressItem) string { return idString(i.ID) },
		OrderIndex:    func(i models.ProgressItem) int { return i.Order },
		SetOrderIndex: func(i *models.ProgressItem, n int) { i.Order = n },
		Validate: func(i models.ProgressItem) error {
			if i.CategoryID == uuid.Nil {
				return appErr.New(appErr.CodeInvalid, "category_id is required")
			}
			return required("label", i.Label)
		},
	}
}

func Commands() Descriptor[models.Command] {
	return Descriptor[models.Command]{
		Empty:         func() models.Command { return models.Command{} },
		ID:            func(c models.Command) string { return idString(c.ID) },
		OrderIndex:    func(c models.Command) int { return c.Order },
		SetOrderIndex: func(c *models.Command, i int) { c.Order = i },
		Validate: func(c models.Command) error {
			return firstErr(required("command", c.Command), required("description", c.Description))
		},
	}
}

func Projects() Descriptor[models.Project] {
	return Descriptor[models.Project]{
		Empty:         func() models.Project { return models.Project{Status: models.StatusInProgress} },
		ID:            func(p models.Project) string { return idString(p.ID) },
		OrderIndex:    func(p models.Project) int { return p.Order },
		SetOrderIndex: func(p *models.Project, i int) { p.Order = i },
		Validate: func(p models.Project) error {
			return firstErr(required("title", p.Title), required("description", p.Description))
		},
	}
}

func Templates() Descriptor[models.Template] {
	return Descriptor[models.Template]{
		Empty:         func() models.Template { return models.Template{} },
		ID:            func(t models.Template) string { return idString(t.ID) },
		OrderIndex:    func(t models.Template) int { return t.Order },
		SetOrderIndex: func(t *models.Template, i int) { t.Order = i },
		Validate: func(t models.Template) error {
			return required("name", t.Name)
		},
	}
}

func SkillCategories() Descriptor[models.SkillCategory] {
	return Descriptor[models.SkillCategory]{
		Empty:         func() models.SkillCategory { return models.SkillCategory{} },
		ID:            func(c models.SkillCategory) string { return idString(c.ID) },
		OrderIndex:    func(c models.SkillCategory) int { return c.Order },
		SetOrderIndex: func(c *models.SkillCategory, i int) { c.Order = i },
		Validate: func(c models.SkillCategory) error {
			return required("name", c.Name)
		},
	}
}

func SkillFocusAreas() Descriptor[models.SkillFocus] {
	return Descriptor[models.SkillFocus]{
		Empty:         func() models.SkillFocus { return models.SkillFocus{} },
		ID:            func(f models.SkillFocus) string { return idString(f.ID) },
		OrderIndex:    func(f models.SkillFocus) int { return f.Order },
		SetOrderIndex: func(f *models.SkillFocus, i int) { f.Order = i },
		Validate: func(f models.SkillFocus) error {
			return required("area", f.Area)
		},
	}
}

func TimelineEvents() Descriptor[models.TimelineEvent] {
	return Descriptor[models.TimelineEvent]{
		Empty:         func() models.TimelineEvent { return models.TimelineEvent{} },
		ID:            func(e models.TimelineEvent) string { return idString(e.ID) },
		OrderIndex:    func(e models.TimelineEvent) int { return e.Order },
		SetOrderIndex: func(e *models.TimelineEvent, i int) { e.Order = i },
		Validate: func(e models.TimelineEvent) error {
			return firstErr(required("title", e.Title), required("description", e.Description), required("date", e.Date))
		},
	}
}
