package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"tms/apperr"
	"tms/dao/model"

	"gorm.io/gorm"
)

// Lowercase letters and digits separated by "." or "_", at least two
// segments (e.g. api.v1.endpoint, form.submit_button).
var keyPattern = regexp.MustCompile(`^[a-z0-9]+(?:[._][a-z0-9]+)+$`)

const maxKeyLen = 255

func validateKey(key string) error {
	if key == "" {
		return apperr.New(apperr.KindValidation, "key is required")
	}
	if len(key) > maxKeyLen {
		return apperr.Newf(apperr.KindValidation, "key must be at most %d characters", maxKeyLen)
	}
	if !keyPattern.MatchString(key) {
		return apperr.New(apperr.KindValidation,
			`key must be lowercase letters and digits in at least two segments separated by "." or "_" (e.g. api.v1.endpoint)`)
	}
	return nil
}

// CreateKey creates a translation key within a project. The key text is
// lower-cased before validation and storage.
func (s *Store) CreateKey(ctx context.Context, projectID, key, description string) (*model.TranslationKey, error) {
	row := &model.TranslationKey{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, err := createKey(tx, projectID, key, description)
		if err != nil {
			return err
		}
		*row = *created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func createKey(tx *gorm.DB, projectID, key, description string) (*model.TranslationKey, error) {
	key = strings.ToLower(key)
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if _, err := getProject(tx, projectID); err != nil {
		return nil, err
	}

	var count int64
	if err := tx.Model(&model.TranslationKey{}).
		Where("project_id = ? AND key = ?", projectID, key).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check key uniqueness: %w", err)
	}
	if count > 0 {
		return nil, apperr.Newf(apperr.KindConflict, "key %q already exists in this project", key)
	}

	row := &model.TranslationKey{ProjectID: projectID, Key: key, Description: description}
	if err := tx.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// KeyUpdate carries the fields of a partial translation-key update.
type KeyUpdate struct {
	Key         *string
	Description *string
}

// UpdateKey applies a partial update; a changed key text is re-validated
// like on create.
func (s *Store) UpdateKey(ctx context.Context, id string, update KeyUpdate) (*model.TranslationKey, error) {
	row, err := s.GetKey(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if update.Key != nil {
		newKey := strings.ToLower(*update.Key)
		if err := validateKey(newKey); err != nil {
			return nil, err
		}
		fields["key"] = newKey
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if len(fields) == 0 {
		return row, nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if newKey, ok := fields["key"].(string); ok && newKey != row.Key {
			var count int64
			if err := tx.Model(&model.TranslationKey{}).
				Where("project_id = ? AND key = ? AND id <> ?", row.ProjectID, newKey, id).
				Count(&count).Error; err != nil {
				return fmt.Errorf("check key uniqueness: %w", err)
			}
			if count > 0 {
				return apperr.Newf(apperr.KindConflict, "key %q already exists in this project", newKey)
			}
		}
		return tx.Model(row).Updates(fields).Error
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// DeleteKey deletes a translation key together with its values.
func (s *Store) DeleteKey(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		key, err := getKey(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Where("translation_key_id = ?", id).
			Delete(&model.TranslationValue{}).Error; err != nil {
			return fmt.Errorf("delete translation values: %w", err)
		}
		return tx.Delete(key).Error
	})
}

func getKey(tx *gorm.DB, id string) (*model.TranslationKey, error) {
	var key model.TranslationKey
	err := tx.Where("id = ?", id).First(&key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.KindNotFound, "translation key not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load translation key: %w", err)
	}
	return &key, nil
}

func (s *Store) GetKey(ctx context.Context, id string) (*model.TranslationKey, error) {
	return getKey(s.db.WithContext(ctx), id)
}

func (s *Store) ListKeys(ctx context.Context, projectID string) ([]model.TranslationKey, error) {
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	var keys []model.TranslationKey
	if err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("key").
		Find(&keys).Error; err != nil {
		return nil, fmt.Errorf("list translation keys: %w", err)
	}
	return keys, nil
}

// CreateValue creates the translated text for one (key, language) pair.
// The language must currently be configured on the key's project.
func (s *Store) CreateValue(ctx context.Context, keyID, language, value string) (*model.TranslationValue, error) {
	row := &model.TranslationValue{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		key, err := getKey(tx, keyID)
		if err != nil {
			return err
		}
		if err := checkLanguageConfigured(tx, key, language); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.TranslationValue{}).
			Where("translation_key_id = ? AND language = ?", keyID, language).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check value uniqueness: %w", err)
		}
		if count > 0 {
			return apperr.Newf(apperr.KindConflict,
				"a value for language %q already exists on this key", language)
		}

		*row = model.TranslationValue{TranslationKeyID: keyID, Language: language, Value: value}
		return tx.Create(row).Error
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// UpdateValue replaces the translated text. Language membership is not
// re-checked: the row already exists and may legitimately outlive its
// project language.
func (s *Store) UpdateValue(ctx context.Context, id, value string) (*model.TranslationValue, error) {
	row, err := s.GetValue(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(row).Update("value", value).Error; err != nil {
		return nil, fmt.Errorf("update translation value: %w", err)
	}
	return row, nil
}

func (s *Store) DeleteValue(ctx context.Context, id string) error {
	row, err := s.GetValue(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(row).Error
}

func (s *Store) GetValue(ctx context.Context, id string) (*model.TranslationValue, error) {
	var value model.TranslationValue
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&value).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.KindNotFound, "translation value not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load translation value: %w", err)
	}
	return &value, nil
}

func (s *Store) ListValues(ctx context.Context, keyID string) ([]model.TranslationValue, error) {
	if _, err := s.GetKey(ctx, keyID); err != nil {
		return nil, err
	}
	var values []model.TranslationValue
	if err := s.db.WithContext(ctx).
		Where("translation_key_id = ?", keyID).
		Order("language").
		Find(&values).Error; err != nil {
		return nil, fmt.Errorf("list translation values: %w", err)
	}
	return values, nil
}

// ValueInput is one entry of a bulk value upsert.
type ValueInput struct {
	Language string `json:"language" binding:"required"`
	Value    string `json:"value"`
}

// BulkUpsertResult reports which rows a bulk upsert created and which
// it updated.
type BulkUpsertResult struct {
	Created []model.TranslationValue `json:"created"`
	Updated []model.TranslationValue `json:"updated"`
}

// BulkUpsertValues creates or updates the values for several languages
// of one key in a single transaction. Every requested language must be
// configured on the key's project; otherwise nothing is written and the
// error lists the offending codes.
func (s *Store) BulkUpsertValues(ctx context.Context, keyID string, items []ValueInput) (*BulkUpsertResult, error) {
	result := &BulkUpsertResult{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		key, err := getKey(tx, keyID)
		if err != nil {
			return err
		}
		res, err := bulkUpsertValues(tx, key, items)
		if err != nil {
			return err
		}
		*result = *res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func bulkUpsertValues(tx *gorm.DB, key *model.TranslationKey, items []ValueInput) (*BulkUpsertResult, error) {
	languages := make([]string, 0, len(items))
	for _, item := range items {
		languages = append(languages, item.Language)
	}

	var configured []string
	if err := tx.Model(&model.ProjectLanguage{}).
		Where("project_id = ? AND language IN ?", key.ProjectID, languages).
		Pluck("language", &configured).Error; err != nil {
		return nil, fmt.Errorf("load project languages: %w", err)
	}
	configuredSet := make(map[string]bool, len(configured))
	for _, code := range configured {
		configuredSet[code] = true
	}

	invalidSet := make(map[string]bool)
	for _, code := range languages {
		if !configuredSet[code] {
			invalidSet[code] = true
		}
	}
	if len(invalidSet) > 0 {
		invalid := make([]string, 0, len(invalidSet))
		for code := range invalidSet {
			invalid = append(invalid, code)
		}
		sort.Strings(invalid)
		return nil, apperr.New(apperr.KindTranslation,
			"some languages are not configured for this project").
			WithExtra("invalid_languages", invalid)
	}

	var existingRows []model.TranslationValue
	if err := tx.Where("translation_key_id = ? AND language IN ?", key.ID, languages).
		Find(&existingRows).Error; err != nil {
		return nil, fmt.Errorf("load existing values: %w", err)
	}
	existing := make(map[string]*model.TranslationValue, len(existingRows))
	for i := range existingRows {
		existing[existingRows[i].Language] = &existingRows[i]
	}

	result := &BulkUpsertResult{}
	for _, item := range items {
		if row, ok := existing[item.Language]; ok {
			if err := tx.Model(row).Update("value", item.Value).Error; err != nil {
				return nil, fmt.Errorf("update value for %q: %w", item.Language, err)
			}
			result.Updated = append(result.Updated, *row)
			continue
		}
		row := model.TranslationValue{
			TranslationKeyID: key.ID,
			Language:         item.Language,
			Value:            item.Value,
		}
		if err := tx.Create(&row).Error; err != nil {
			return nil, err
		}
		existing[item.Language] = &row
		result.Created = append(result.Created, row)
	}
	return result, nil
}

// KeyWithValues is the result of CreateKeyWithValues.
type KeyWithValues struct {
	TranslationKey model.TranslationKey     `json:"translationKey"`
	Values         []model.TranslationValue `json:"values"`
}

// CreateKeyWithValues creates a key and its initial values in one
// transaction; a failing value validation rolls back the key too.
func (s *Store) CreateKeyWithValues(ctx context.Context, projectID, key, description string, items []ValueInput) (*KeyWithValues, error) {
	result := &KeyWithValues{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, err := createKey(tx, projectID, key, description)
		if err != nil {
			return err
		}
		result.TranslationKey = *created

		if len(items) == 0 {
			return nil
		}
		res, err := bulkUpsertValues(tx, created, items)
		if err != nil {
			return err
		}
		result.Values = res.Created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// checkLanguageConfigured asserts that language is currently enabled on
// the key's project.
func checkLanguageConfigured(tx *gorm.DB, key *model.TranslationKey, language string) error {
	var count int64
	err := tx.Model(&model.ProjectLanguage{}).
		Where("project_id = ? AND language = ?", key.ProjectID, language).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("check project language: %w", err)
	}
	if count == 0 {
		return apperr.Newf(apperr.KindTranslation,
			"language %q is not configured for this project", language).
			WithExtra("language", language)
	}
	return nil
}
