// Package store implements the consistency core of the translation
// backend: project, project-language, translation-key and
// translation-value operations, including the single-base-language
// invariant. Handlers in the service package stay thin and call into
// this package.
package store

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// forUpdate adds a FOR UPDATE row lock. sqlite rejects the clause and
// already serializes writers with a database-level lock inside a
// transaction, so it is skipped there.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
