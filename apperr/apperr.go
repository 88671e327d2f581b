// Package apperr defines the error kinds shared by the store and the HTTP
// layer. Every domain failure is an *Error so callers can branch on Kind
// without string matching.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindValidation marks malformed input: bad slug or key format,
	// unknown language code, empty required field.
	KindValidation Kind = iota + 1
	// KindConflict marks a uniqueness violation on an otherwise valid input.
	KindConflict
	// KindNotFound marks a lookup of a row that does not exist.
	KindNotFound
	// KindProject marks a project business-rule violation
	// (base/last language removal, duplicate base in a batch).
	KindProject
	// KindTranslation marks a translation business-rule violation
	// (language not configured for the project).
	KindTranslation
)

// Error carries a human-readable message plus optional structured detail,
// e.g. the list of invalid language codes in a bulk upsert.
type Error struct {
	Kind    Kind
	Message string
	Extra   map[string]any
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithExtra attaches one structured detail entry and returns the error.
func (e *Error) WithExtra(key string, value any) *Error {
	if e.Extra == nil {
		e.Extra = make(map[string]any)
	}
	e.Extra[key] = value
	return e
}

// KindOf returns the kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
