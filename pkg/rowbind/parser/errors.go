package parser

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file could not be parsed as its container format.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// ErrUnsupportedFormat indicates the input file extension has no source implementation.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidRange indicates a range reference or defined name could not be resolved.
var ErrInvalidRange = errors.New("invalid range")

// SourceError represents a failure to open or read a tabular source.
type SourceError struct {
	Path string
	Op   string // "open", "sheet", "range", "read", "close"
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %q (%s): %v", e.Path, e.Op, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError.
func NewSourceError(path, op string, err error) *SourceError {
	return &SourceError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}
