package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestBeforeSaveClampsPercentFields(t *testing.T) {
	c := &Certification{Title: "t", Provider: "p", Progress: 130}
	if err := c.BeforeSave(nil); err != nil {
		t.Fatalf("before save: %v", err)
	}
	if c.Progress != 100 {
		t.Fatalf("expected progress clamped to 100, got %d", c.Progress)
	}

	p := &LearningPath{Title: "t", Description: "d", Progress: -20}
	if err := p.BeforeSave(nil); err != nil {
		t.Fatalf("before save: %v", err)
	}
	if p.Progress != 0 {
		t.Fatalf("expected progress clamped to 0, got %d", p.Progress)
	}

	f := &SkillFocus{Area: "a", Level: 250}
	if err := f.BeforeSave(nil); err != nil {
		t.Fatalf("before save: %v", err)
	}
	if f.Level != 100 {
		t.Fatalf("expected level clamped to 100, got %d", f.Level)
	}
}

func TestKeyedRoundTrip(t *testing.T) {
	var m Milestone
	if m.PrimaryKey() != uuid.Nil {
		t.Fatal("fresh entity must have no identity")
	}
	id := uuid.New()
	m.SetPrimaryKey(id)
	if m.PrimaryKey() != id {
		t.Fatalf("expected %s, got %s", id, m.PrimaryKey())
	}
}
