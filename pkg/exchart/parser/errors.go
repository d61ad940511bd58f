package parser

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates no reader engine handles the file extension.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// ErrEmptySheet indicates the sheet has no header row.
var ErrEmptySheet = errors.New("sheet has no header row")

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidWorkbook indicates the file is not a readable workbook.
var ErrInvalidWorkbook = errors.New("workbook could not be read")

// LoadError represents an error while reading a workbook.
type LoadError struct {
	Path   string
	Engine string // "xlsx", "xls"
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in %q (%s): %v", e.Path, e.Engine, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, engine string, err error) *LoadError {
	return &LoadError{
		Path:   path,
		Engine: engine,
		Err:    err,
	}
}
