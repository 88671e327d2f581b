package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"tms/apperr"
	"tms/dao/model"

	"gorm.io/gorm"
)

// Same character set as a Django SlugField.
var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

const (
	maxSlugLen = 100
	maxNameLen = 255
)

func validateSlug(slug string) error {
	if slug == "" {
		return apperr.New(apperr.KindValidation, "slug is required")
	}
	if len(slug) > maxSlugLen {
		return apperr.Newf(apperr.KindValidation, "slug must be at most %d characters", maxSlugLen)
	}
	if !slugPattern.MatchString(slug) {
		return apperr.New(apperr.KindValidation,
			"slug may only contain letters, digits, hyphens and underscores")
	}
	return nil
}

// CreateProject creates a new project with a unique, URL-safe slug.
func (s *Store) CreateProject(ctx context.Context, slug, name, description string) (*model.Project, error) {
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperr.New(apperr.KindValidation, "name is required")
	}
	if len(name) > maxNameLen {
		return nil, apperr.Newf(apperr.KindValidation, "name must be at most %d characters", maxNameLen)
	}

	project := &model.Project{Slug: slug, Name: name, Description: description}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Project{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return fmt.Errorf("check slug uniqueness: %w", err)
		}
		if count > 0 {
			return apperr.Newf(apperr.KindConflict, "project with slug %q already exists", slug)
		}
		return tx.Create(project).Error
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// ProjectUpdate carries the fields of a partial project update. Nil
// fields are left untouched.
type ProjectUpdate struct {
	Slug        *string
	Name        *string
	Description *string
}

// UpdateProject applies a partial update. When every field is nil the
// project is returned unchanged without touching the database.
func (s *Store) UpdateProject(ctx context.Context, id string, update ProjectUpdate) (*model.Project, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if update.Slug != nil {
		if err := validateSlug(*update.Slug); err != nil {
			return nil, err
		}
		fields["slug"] = *update.Slug
	}
	if update.Name != nil {
		if *update.Name == "" {
			return nil, apperr.New(apperr.KindValidation, "name is required")
		}
		if len(*update.Name) > maxNameLen {
			return nil, apperr.Newf(apperr.KindValidation, "name must be at most %d characters", maxNameLen)
		}
		fields["name"] = *update.Name
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if len(fields) == 0 {
		return project, nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if update.Slug != nil && *update.Slug != project.Slug {
			var count int64
			if err := tx.Model(&model.Project{}).
				Where("slug = ? AND id <> ?", *update.Slug, id).
				Count(&count).Error; err != nil {
				return fmt.Errorf("check slug uniqueness: %w", err)
			}
			if count > 0 {
				return apperr.Newf(apperr.KindConflict, "project with slug %q already exists", *update.Slug)
			}
		}
		return tx.Model(project).Updates(fields).Error
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject deletes a project together with its languages, keys and
// values. The cascade is explicit so it behaves identically on every
// supported dialect.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project, err := getProject(tx, id)
		if err != nil {
			return err
		}

		var keyIDs []string
		if err := tx.Model(&model.TranslationKey{}).
			Where("project_id = ?", id).
			Pluck("id", &keyIDs).Error; err != nil {
			return fmt.Errorf("collect translation keys: %w", err)
		}
		if len(keyIDs) > 0 {
			if err := tx.Where("translation_key_id IN ?", keyIDs).
				Delete(&model.TranslationValue{}).Error; err != nil {
				return fmt.Errorf("delete translation values: %w", err)
			}
			if err := tx.Where("project_id = ?", id).
				Delete(&model.TranslationKey{}).Error; err != nil {
				return fmt.Errorf("delete translation keys: %w", err)
			}
		}
		if err := tx.Where("project_id = ?", id).
			Delete(&model.ProjectLanguage{}).Error; err != nil {
			return fmt.Errorf("delete project languages: %w", err)
		}
		return tx.Delete(project).Error
	})
}

func getProject(tx *gorm.DB, id string) (*model.Project, error) {
	var project model.Project
	err := tx.Where("id = ?", id).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.KindNotFound, "project not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	return &project, nil
}

func (s *Store) GetProject(ctx context.Context, id string) (*model.Project, error) {
	return getProject(s.db.WithContext(ctx), id)
}

func (s *Store) GetProjectBySlug(ctx context.Context, slug string) (*model.Project, error) {
	var project model.Project
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.KindNotFound, "project not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	return &project, nil
}

func (s *Store) ListProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := s.db.WithContext(ctx).Order("name").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// BaseLanguage returns the project's base language row, or nil when the
// project has no languages yet.
func (s *Store) BaseLanguage(ctx context.Context, projectID string) (*model.ProjectLanguage, error) {
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	var lang model.ProjectLanguage
	err := s.db.WithContext(ctx).
		Where("project_id = ? AND is_base_language = ?", projectID, true).
		First(&lang).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load base language: %w", err)
	}
	return &lang, nil
}
