package model

// Project groups translation keys and the set of languages they are
// translated into.
type Project struct {
	Base
	Slug        string `gorm:"uniqueIndex;type:varchar(100);not null;comment:URL-safe unique identifier" json:"slug"`
	Name        string `gorm:"type:varchar(255);not null;comment:human-readable name" json:"name"`
	Description string `gorm:"type:text;comment:optional description" json:"description"`

	Languages []ProjectLanguage `gorm:"constraint:OnDelete:CASCADE" json:"languages,omitempty"`
}

// ProjectLanguage is one language enabled for a project. Exactly one row
// per project carries IsBaseLanguage once the project has any languages;
// store.Store guards the flag, and the migration adds a partial unique
// index on (project_id) WHERE is_base_language as a backstop.
type ProjectLanguage struct {
	Base
	ProjectID      string `gorm:"type:uuid;not null;uniqueIndex:uniq_project_language;comment:owning project" json:"projectId"`
	Language       string `gorm:"type:varchar(5);not null;uniqueIndex:uniq_project_language;comment:language code (ISO 639-1)" json:"language"`
	IsBaseLanguage bool   `gorm:"not null;default:false;comment:authoritative source language of the project" json:"isBaseLanguage"`
}
