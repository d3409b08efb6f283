// Package apperr holds sentinel errors shared across the application.
package apperr

import "errors"

var (
	// ErrSheetNotFound means the configured worksheet title does not exist
	// in the destination spreadsheet.
	ErrSheetNotFound = errors.New("sheet not found")
)
