package xlsximport

import (
	"errors"
	"fmt"
)

// Import error codes
const (
	ErrCodeImportUnknown       = "ERR_IMPORT_UNKNOWN"
	ErrCodeImportInvalidFile   = "ERR_IMPORT_INVALID_FILE"
	ErrCodeImportEmptyFile     = "ERR_IMPORT_EMPTY_FILE"
	ErrCodeImportFileTooLarge  = "ERR_IMPORT_FILE_TOO_LARGE"
	ErrCodeImportMissingHeader = "ERR_IMPORT_MISSING_HEADER"
	ErrCodeImportRequiredField = "ERR_IMPORT_REQUIRED_FIELD"
	ErrCodeImportPersistence   = "ERR_IMPORT_PERSISTENCE"
)

// Common import errors
var (
	// ErrEmptyFile is returned when the workbook has no rows
	ErrEmptyFile = errors.New("workbook is empty")

	// ErrMissingHeader is returned when no recognizable header row exists
	ErrMissingHeader = errors.New("workbook missing header row")

	// ErrNoDataRows is returned when the workbook has headers but no data
	ErrNoDataRows = errors.New("workbook contains no data rows")

	// ErrFileTooLarge is returned when the file exceeds maximum size
	ErrFileTooLarge = errors.New("file exceeds maximum allowed size")

	// ErrUnsupportedFormat is returned for non-spreadsheet file extensions
	ErrUnsupportedFormat = errors.New("unsupported file format, expected an Excel workbook")
)

// RowError represents an error in a specific row
type RowError struct {
	Row     int    `json:"row"`
	Column  string `json:"column"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// Error implements the error interface
func (e RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("row %d, column '%s': %s", e.Row, e.Column, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// NewRowError creates a new RowError
func NewRowError(row int, column, code, message string) RowError {
	return RowError{
		Row:     row,
		Column:  column,
		Code:    code,
		Message: message,
	}
}

// ErrorCollection accumulates row errors up to a fixed limit while still
// counting everything past it.
type ErrorCollection struct {
	errors     []RowError
	maxErrors  int
	totalCount int
}

// NewErrorCollection creates an ErrorCollection with a maximum error limit
func NewErrorCollection(maxErrors int) *ErrorCollection {
	if maxErrors <= 0 {
		maxErrors = 10
	}
	return &ErrorCollection{
		errors:    make([]RowError, 0, maxErrors),
		maxErrors: maxErrors,
	}
}

// Add records an error, keeping only the first maxErrors entries
func (ec *ErrorCollection) Add(err RowError) {
	ec.totalCount++
	if len(ec.errors) < ec.maxErrors {
		ec.errors = append(ec.errors, err)
	}
}

// Errors returns the retained errors
func (ec *ErrorCollection) Errors() []RowError {
	return ec.errors
}

// Messages returns the retained error messages as plain strings
func (ec *ErrorCollection) Messages() []string {
	messages := make([]string, 0, len(ec.errors))
	for _, e := range ec.errors {
		messages = append(messages, e.Error())
	}
	return messages
}

// TotalCount returns the number of errors seen, including dropped ones
func (ec *ErrorCollection) TotalCount() int {
	return ec.totalCount
}

// HasErrors reports whether any error was recorded
func (ec *ErrorCollection) HasErrors() bool {
	return ec.totalCount > 0
}
