package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"tms/apperr"
	"tms/dao/model"

	"gorm.io/gorm"
)

// AddLanguage adds a language to a project. The first language of a
// project always becomes base, whatever the caller asked for; when
// asBase is set, the current base row is demoted in the same
// transaction. The project's language rows are locked for the whole
// read-check-write sequence so two concurrent base additions cannot
// both observe "no current base".
func (s *Store) AddLanguage(ctx context.Context, projectID, code string, asBase bool) (*model.ProjectLanguage, error) {
	if !model.ValidLanguage(code) {
		return nil, apperr.Newf(apperr.KindValidation, "unknown language code %q", code).
			WithExtra("language", code)
	}

	row := &model.ProjectLanguage{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getProject(tx, projectID); err != nil {
			return err
		}

		var existing []model.ProjectLanguage
		if err := forUpdate(tx).Where("project_id = ?", projectID).Find(&existing).Error; err != nil {
			return fmt.Errorf("lock project languages: %w", err)
		}
		for _, lang := range existing {
			if lang.Language == code {
				return apperr.Newf(apperr.KindConflict,
					"language %q is already added to this project", code)
			}
		}

		// A project may never be left without a base once it has any
		// language.
		if len(existing) == 0 {
			asBase = true
		}
		if asBase {
			if err := demoteBase(tx, projectID); err != nil {
				return err
			}
		}

		*row = model.ProjectLanguage{
			ProjectID:      projectID,
			Language:       code,
			IsBaseLanguage: asBase,
		}
		return tx.Create(row).Error
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// RemoveLanguage removes a language from a project. The base language
// and the last remaining language cannot be removed.
func (s *Store) RemoveLanguage(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lang, err := getLanguage(tx, id)
		if err != nil {
			return err
		}
		if lang.IsBaseLanguage {
			return apperr.New(apperr.KindProject,
				"cannot delete the base language; first set another language as base")
		}

		var rest []model.ProjectLanguage
		if err := forUpdate(tx).
			Where("project_id = ? AND id <> ?", lang.ProjectID, lang.ID).
			Find(&rest).Error; err != nil {
			return fmt.Errorf("lock project languages: %w", err)
		}
		if len(rest) == 0 {
			return apperr.New(apperr.KindProject,
				"cannot delete the last language of a project")
		}
		return tx.Delete(lang).Error
	})
}

// SetBaseLanguage promotes a language to be its project's base,
// demoting the current base in the same transaction. No-op when the
// row is already base.
func (s *Store) SetBaseLanguage(ctx context.Context, id string) (*model.ProjectLanguage, error) {
	row := &model.ProjectLanguage{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lang, err := getLanguageLocked(tx, id)
		if err != nil {
			return err
		}
		if lang.IsBaseLanguage {
			*row = *lang
			return nil
		}

		// Lock the sibling rows too so a concurrent promotion on the
		// same project serializes behind this one.
		var siblings []model.ProjectLanguage
		if err := forUpdate(tx).
			Where("project_id = ?", lang.ProjectID).
			Find(&siblings).Error; err != nil {
			return fmt.Errorf("lock project languages: %w", err)
		}
		if err := demoteBase(tx, lang.ProjectID); err != nil {
			return err
		}
		if err := tx.Model(&model.ProjectLanguage{}).
			Where("id = ?", lang.ID).
			Update("is_base_language", true).Error; err != nil {
			return fmt.Errorf("promote base language: %w", err)
		}

		refreshed, err := getLanguage(tx, id)
		if err != nil {
			return err
		}
		*row = *refreshed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// LanguageInput is one entry of a bulk language add.
type LanguageInput struct {
	Language       string `json:"language" binding:"required"`
	IsBaseLanguage bool   `json:"isBaseLanguage"`
}

// BulkAddLanguages adds several languages to a project atomically. At
// most one entry may be marked base; when the project is empty and no
// entry asks for base, the first entry is promoted. Any failure rolls
// back the whole batch.
func (s *Store) BulkAddLanguages(ctx context.Context, projectID string, items []LanguageInput) ([]model.ProjectLanguage, error) {
	if len(items) == 0 {
		return nil, apperr.New(apperr.KindValidation, "at least one language is required")
	}
	baseCount := 0
	for _, item := range items {
		if !model.ValidLanguage(item.Language) {
			return nil, apperr.Newf(apperr.KindValidation, "unknown language code %q", item.Language).
				WithExtra("language", item.Language)
		}
		if item.IsBaseLanguage {
			baseCount++
		}
	}
	if baseCount > 1 {
		return nil, apperr.New(apperr.KindProject, "only one language can be set as base")
	}

	// Work on a copy so promoting the first entry does not mutate the
	// caller's slice.
	batch := make([]LanguageInput, len(items))
	copy(batch, items)

	created := make([]model.ProjectLanguage, 0, len(batch))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getProject(tx, projectID); err != nil {
			return err
		}

		var existing []model.ProjectLanguage
		if err := forUpdate(tx).Where("project_id = ?", projectID).Find(&existing).Error; err != nil {
			return fmt.Errorf("lock project languages: %w", err)
		}
		seen := make(map[string]bool, len(existing)+len(batch))
		for _, lang := range existing {
			seen[lang.Language] = true
		}

		hasNewBase := baseCount == 1
		if len(existing) == 0 && !hasNewBase {
			batch[0].IsBaseLanguage = true
			hasNewBase = true
		}
		if hasNewBase {
			if err := demoteBase(tx, projectID); err != nil {
				return err
			}
		}

		for _, item := range batch {
			if seen[item.Language] {
				return apperr.Newf(apperr.KindConflict,
					"language %q is already added to this project", item.Language)
			}
			seen[item.Language] = true

			row := model.ProjectLanguage{
				ProjectID:      projectID,
				Language:       item.Language,
				IsBaseLanguage: item.IsBaseLanguage,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			created = append(created, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListLanguages returns a project's languages sorted by code.
func (s *Store) ListLanguages(ctx context.Context, projectID string) ([]model.ProjectLanguage, error) {
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	var langs []model.ProjectLanguage
	if err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Find(&langs).Error; err != nil {
		return nil, fmt.Errorf("list project languages: %w", err)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].Language < langs[j].Language })
	return langs, nil
}

// GetLanguage returns one project-language row by id.
func (s *Store) GetLanguage(ctx context.Context, id string) (*model.ProjectLanguage, error) {
	return getLanguage(s.db.WithContext(ctx), id)
}

func getLanguage(tx *gorm.DB, id string) (*model.ProjectLanguage, error) {
	var lang model.ProjectLanguage
	err := tx.Where("id = ?", id).First(&lang).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.KindNotFound, "project language not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load project language: %w", err)
	}
	return &lang, nil
}

func getLanguageLocked(tx *gorm.DB, id string) (*model.ProjectLanguage, error) {
	var lang model.ProjectLanguage
	err := forUpdate(tx).Where("id = ?", id).First(&lang).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.KindNotFound, "project language not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load project language: %w", err)
	}
	return &lang, nil
}

// demoteBase clears the base flag on the project's current base row, if
// any. Callers must hold the project's language row lock.
func demoteBase(tx *gorm.DB, projectID string) error {
	err := tx.Model(&model.ProjectLanguage{}).
		Where("project_id = ? AND is_base_language = ?", projectID, true).
		Update("is_base_language", false).Error
	if err != nil {
		return fmt.Errorf("demote base language: %w", err)
	}
	return nil
}
