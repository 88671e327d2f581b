package store

import (
	"context"
	"testing"

	"tms/dao/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens a private in-memory database per test. The pool is
// capped at one connection because every sqlite :memory: connection is
// its own database.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Project{},
		&model.ProjectLanguage{},
		&model.TranslationKey{},
		&model.TranslationValue{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func newTestProject(t *testing.T, s *Store, slug string) *model.Project {
	t.Helper()
	project, err := s.CreateProject(context.Background(), slug, "Project "+slug, "")
	if err != nil {
		t.Fatalf("create project %q: %v", slug, err)
	}
	return project
}

// assertSingleBase fails unless the project has exactly one base
// language row, and returns it.
func assertSingleBase(t *testing.T, s *Store, projectID string) model.ProjectLanguage {
	t.Helper()
	var rows []model.ProjectLanguage
	err := s.db.Where("project_id = ? AND is_base_language = ?", projectID, true).Find(&rows).Error
	if err != nil {
		t.Fatalf("query base rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly one base language, got %d", len(rows))
	}
	return rows[0]
}

func countRows[T any](t *testing.T, s *Store, query string, args ...any) int64 {
	t.Helper()
	var entity T
	var count int64
	tx := s.db.Model(&entity)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}
