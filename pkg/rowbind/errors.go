package rowbind

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ukaji3/rowbind-go/pkg/rowbind/models"
	"github.com/ukaji3/rowbind-go/pkg/rowbind/parser"
)

// Source open failures. Returned wrapped in a *SourceError.
var (
	ErrFileNotFound      = parser.ErrFileNotFound
	ErrInvalidFormat     = parser.ErrInvalidFormat
	ErrUnsupportedFormat = parser.ErrUnsupportedFormat
	ErrSheetNotFound     = parser.ErrSheetNotFound
	ErrInvalidRange      = parser.ErrInvalidRange
)

// ErrIncompatibleCell indicates a cell's stored representation does not match
// the accessor implied by the field kind.
var ErrIncompatibleCell = models.ErrIncompatibleCell

// ErrOverflow indicates a numeric cell does not fit the destination integer type.
var ErrOverflow = errors.New("value out of range")

// ErrNotStruct indicates Describe was called with a non-struct type.
var ErrNotStruct = errors.New("target type is not a struct")

// ErrDecodePanic indicates a factory or setter panicked while decoding a row.
var ErrDecodePanic = errors.New("panic while decoding row")

// SourceError represents a failure to open or read a tabular source.
type SourceError = parser.SourceError

// RowError represents a failure to decode a single row. The row produces no record.
type RowError struct {
	// Row is the 0-based row index; the header is row 0.
	Row int
	// Column is the 0-based column index of the failing cell, or -1.
	Column int
	// Field is the name of the failing field, if any.
	Field string
	Err   error
}

func (e *RowError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d column %d (%s): %v", e.Row, e.Column, e.Field, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// MarshalJSON renders the error message as a string.
func (e *RowError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Row    int    `json:"row"`
		Column int    `json:"column"`
		Field  string `json:"field,omitempty"`
		Error  string `json:"error"`
	}{e.Row, e.Column, e.Field, e.Err.Error()})
}
