package model

// TranslationKey is a namespaced identifier (e.g. api.v1.endpoint) that
// groups the per-language values of one translatable string. Keys are
// stored lower-cased and unique within their project.
type TranslationKey struct {
	Base
	ProjectID   string `gorm:"type:uuid;not null;uniqueIndex:uniq_project_key;comment:owning project" json:"projectId"`
	Key         string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_project_key;comment:dot/underscore separated identifier" json:"key"`
	Description string `gorm:"type:text;comment:optional description" json:"description"`

	Values []TranslationValue `gorm:"foreignKey:TranslationKeyID;constraint:OnDelete:CASCADE" json:"values,omitempty"`
}

// TranslationValue is the translated text for one (key, language) pair.
//
// Language is a bare code, not a foreign key to ProjectLanguage: membership
// in the project's language set is checked by the store at write time only,
// so a value survives the later removal of its project language. Tightening
// this to a real FK would cascade-delete translations we want to keep for
// display and audit.
type TranslationValue struct {
	Base
	TranslationKeyID string `gorm:"type:uuid;not null;uniqueIndex:uniq_key_language;comment:owning translation key" json:"translationKeyId"`
	Language         string `gorm:"type:varchar(5);not null;uniqueIndex:uniq_key_language;comment:language code (ISO 639-1)" json:"language"`
	Value            string `gorm:"type:text;not null;comment:translated text" json:"value"`
}
