package store

import (
	"context"
	"strings"
	"testing"

	"tms/apperr"
	"tms/dao/model"
)

func TestCreateProject(t *testing.T) {
	s := newTestStore(t)

	project, err := s.CreateProject(context.Background(), "web-app", "Web App", "frontend strings")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if project.ID == "" {
		t.Fatal("expected generated id")
	}
	if project.Slug != "web-app" || project.Name != "Web App" || project.Description != "frontend strings" {
		t.Fatalf("unexpected project fields: %+v", project)
	}
	if project.CreatedAt.IsZero() || project.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
}

func TestCreateProjectInvalidSlug(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name string
		slug string
	}{
		{"empty", ""},
		{"spaces", "my project"},
		{"non ascii", "café"},
		{"slash", "a/b"},
		{"too long", strings.Repeat("a", 101)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateProject(context.Background(), tt.slug, "Name", "")
			if !apperr.Is(err, apperr.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateProjectRequiresName(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateProject(context.Background(), "p1", "", "")
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateProjectDuplicateSlug(t *testing.T) {
	s := newTestStore(t)
	newTestProject(t, s, "p1")

	_, err := s.CreateProject(context.Background(), "p1", "Other", "")
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestUpdateProjectPartial(t *testing.T) {
	s := newTestStore(t)
	project := newTestProject(t, s, "p1")

	name := "Renamed"
	updated, err := s.UpdateProject(context.Background(), project.ID, ProjectUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update project: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("expected renamed project, got %q", updated.Name)
	}

	reloaded, err := s.GetProject(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if reloaded.Name != "Renamed" {
		t.Fatalf("expected persisted rename, got %q", reloaded.Name)
	}
	if reloaded.Slug != "p1" {
		t.Fatalf("slug should be untouched, got %q", reloaded.Slug)
	}
}

func TestUpdateProjectNoFieldsIsNoop(t *testing.T) {
	s := newTestStore(t)
	project := newTestProject(t, s, "p1")

	updated, err := s.UpdateProject(context.Background(), project.ID, ProjectUpdate{})
	if err != nil {
		t.Fatalf("update project: %v", err)
	}

	reloaded, err := s.GetProject(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if !reloaded.UpdatedAt.Equal(updated.UpdatedAt) {
		t.Fatal("no-op update must not write")
	}
}

func TestUpdateProjectSlugValidation(t *testing.T) {
	s := newTestStore(t)
	project := newTestProject(t, s, "p1")
	newTestProject(t, s, "p2")

	bad := "not a slug"
	if _, err := s.UpdateProject(context.Background(), project.ID, ProjectUpdate{Slug: &bad}); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	taken := "p2"
	if _, err := s.UpdateProject(context.Background(), project.ID, ProjectUpdate{Slug: &taken}); !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestUpdateProjectNotFound(t *testing.T) {
	s := newTestStore(t)

	name := "x"
	_, err := s.UpdateProject(context.Background(), "missing", ProjectUpdate{Name: &name})
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	project := newTestProject(t, s, "p1")

	if _, err := s.AddLanguage(ctx, project.ID, "en", true); err != nil {
		t.Fatalf("add language: %v", err)
	}
	if _, err := s.AddLanguage(ctx, project.ID, "fr", false); err != nil {
		t.Fatalf("add language: %v", err)
	}
	key, err := s.CreateKey(ctx, project.ID, "home.title", "")
	if err != nil {
		t.Fatalf("create key: %v", err)
	}
	if _, err := s.CreateValue(ctx, key.ID, "en", "Home"); err != nil {
		t.Fatalf("create value: %v", err)
	}

	if err := s.DeleteProject(ctx, project.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}

	if n := countRows[model.Project](t, s, ""); n != 0 {
		t.Fatalf("expected no projects, got %d", n)
	}
	if n := countRows[model.ProjectLanguage](t, s, ""); n != 0 {
		t.Fatalf("expected no project languages, got %d", n)
	}
	if n := countRows[model.TranslationKey](t, s, ""); n != 0 {
		t.Fatalf("expected no keys, got %d", n)
	}
	if n := countRows[model.TranslationValue](t, s, ""); n != 0 {
		t.Fatalf("expected no values, got %d", n)
	}
}

func TestDeleteProjectNotFound(t *testing.T) {
	s := newTestStore(t)

	if err := s.DeleteProject(context.Background(), "missing"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetProjectBySlug(t *testing.T) {
	s := newTestStore(t)
	project := newTestProject(t, s, "p1")

	got, err := s.GetProjectBySlug(context.Background(), "p1")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if got.ID != project.ID {
		t.Fatalf("expected project %q, got %q", project.ID, got.ID)
	}

	if _, err := s.GetProjectBySlug(context.Background(), "nope"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBaseLanguageOfEmptyProject(t *testing.T) {
	s := newTestStore(t)
	project := newTestProject(t, s, "p1")

	base, err := s.BaseLanguage(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("base language: %v", err)
	}
	if base != nil {
		t.Fatalf("expected nil base for empty project, got %+v", base)
	}
}

func TestListProjectsOrderedByName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	if _, err := s.CreateProject(ctx, "b", "Beta", ""); err != nil {
		t.Fatalf("create project: %v", err)
	}
	if _, err := s.CreateProject(ctx, "a", "Alpha", ""); err != nil {
		t.Fatalf("create project: %v", err)
	}

	projects, err := s.ListProjects(ctx)
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(projects) != 2 || projects[0].Name != "Alpha" || projects[1].Name != "Beta" {
		t.Fatalf("expected projects ordered by name, got %+v", projects)
	}
}
