// Package parsererror defines the typed errors shared across the pipeline.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrNoData is returned when no input row matched any category. No output
// workbook is written in that case.
var ErrNoData = errors.New("no insurance data found")

// ParseError is a value that could not be read from an input cell.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError is a rejected configuration or option value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidFormatError is an input file the workbook reader cannot handle.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
	Err            error
}

func (e *InvalidFormatError) Error() string {
	msg := fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// SheetError is a failure confined to one output sheet.
type SheetError struct {
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet '%s': %v", e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
