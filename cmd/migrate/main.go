// Migration script for the translation schema
package main

import (
	"fmt"

	"tms/dao/model"
	"tms/dao/query"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func main() {
	if err := query.InitDB(); err != nil {
		panic(fmt.Errorf("connect to postgres: %w", err))
	}
	db := query.DB

	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			// partial unique index: at most one base language row per project
			ID: "2026021015300",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(
					`CREATE UNIQUE INDEX IF NOT EXISTS uniq_base_language_per_project
					 ON project_languages (project_id) WHERE is_base_language`,
				).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec(`DROP INDEX IF EXISTS uniq_base_language_per_project`).Error
			},
		},
	})

	m.InitSchema(func(tx *gorm.DB) error {
		err := tx.AutoMigrate(
			&model.Project{},
			&model.ProjectLanguage{},
			&model.TranslationKey{},
			&model.TranslationValue{},
		)
		if err != nil {
			return err
		}

		return tx.Exec(
			`CREATE UNIQUE INDEX IF NOT EXISTS uniq_base_language_per_project
			 ON project_languages (project_id) WHERE is_base_language`,
		).Error
	})

	if err := m.Migrate(); err != nil {
		panic(fmt.Errorf("could not migrate: %w", err))
	}
}
