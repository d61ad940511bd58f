package exchart

import (
	"fmt"

	"github.com/ukaji3/exchart-go/pkg/exchart/parser"
)

// Load failures, re-exported from the parser so callers need one import.
var (
	ErrFileNotFound      = parser.ErrFileNotFound
	ErrUnsupportedFormat = parser.ErrUnsupportedFormat
	ErrEmptySheet        = parser.ErrEmptySheet
	ErrSheetNotFound     = parser.ErrSheetNotFound
	ErrInvalidWorkbook   = parser.ErrInvalidWorkbook
)

// LoadError is returned when the workbook cannot be opened or read.
type LoadError = parser.LoadError

// Row processing stages reported by RowError.
const (
	StagePlot  = "plot"
	StageWrite = "write"
)

// RowError represents a failure while rendering or writing one row.
type RowError struct {
	Row   int
	ID    string
	Stage string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (ID %s) %s: %v", e.Row, e.ID, e.Stage, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// NewRowError creates a new RowError.
func NewRowError(row int, id, stage string, err error) *RowError {
	return &RowError{
		Row:   row,
		ID:    id,
		Stage: stage,
		Err:   err,
	}
}

// ConfigError represents an invalid or unreadable configuration.
type ConfigError struct {
	Source string // file path, "environment" or "validation"
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error (%s): %v", e.Source, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(source string, err error) *ConfigError {
	return &ConfigError{
		Source: source,
		Err:    err,
	}
}
