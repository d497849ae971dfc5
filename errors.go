package reportdoc

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptySource    = errors.New("source document cannot be empty")
	ErrSourceNotFound = errors.New("source document not found")
	ErrReadSource     = errors.New("failed to read source document")
	ErrWriteOutput    = errors.New("failed to write output document")
)
