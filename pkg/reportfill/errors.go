package reportfill

import (
	"errors"
	"fmt"
)

// ErrTemplateNotFound indicates the template file does not exist.
var ErrTemplateNotFound = errors.New("template not found")

// ErrSheetNotFound indicates the workbook has no usable sheet.
var ErrSheetNotFound = errors.New("sheet not found")

// FillError represents a failure to write one submitted cell.
type FillError struct {
	Row int
	Col int
	Err error
}

func (e *FillError) Error() string {
	return fmt.Sprintf("write failed r%d c%d: %v", e.Row, e.Col, e.Err)
}

func (e *FillError) Unwrap() error {
	return e.Err
}

// NewFillError creates a new FillError.
func NewFillError(row, col int, err error) *FillError {
	return &FillError{
		Row: row,
		Col: col,
		Err: err,
	}
}

// ExtractionError represents an error while reading the template sheet.
type ExtractionError struct {
	SheetName string
	Component string // "cells", "merges", "columns", "rows"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
