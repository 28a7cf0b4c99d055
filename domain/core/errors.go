package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Source errors
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrNoWorkbook        = fmt.Errorf("%w: no workbook found", ErrSourceUnavailable)
	ErrNoData            = errors.New("no data retrieved")

	// Extraction errors
	ErrSheetNotFound   = errors.New("sheet not found")
	ErrSheetUnparsable = errors.New("sheet unparsable")

	// Validation errors
	ErrInvalidDateRange = errors.New("invalid date range")
)

// NewSheetError wraps a sheet-level failure with the sheet name
func NewSheetError(sheetName string, err error) error {
	return fmt.Errorf("%w: sheet %q: %v", ErrSheetUnparsable, sheetName, err)
}

// IsSourceError reports whether err is a source-availability failure,
// which the pipeline treats as non-fatal
func IsSourceError(err error) bool {
	return errors.Is(err, ErrSourceUnavailable) || errors.Is(err, ErrNoData)
}

// IsSheetError reports whether err is a per-sheet extraction failure
func IsSheetError(err error) bool {
	return errors.Is(err, ErrSheetNotFound) || errors.Is(err, ErrSheetUnparsable)
}
