// Package models defines data structures for spreadsheet rows and cells.
package models

import (
	"errors"
	"fmt"
)

// ErrIncompatibleCell indicates a cell was read through an accessor that does not
// match its stored representation.
var ErrIncompatibleCell = errors.New("incompatible cell value")

// CellKind is the stored representation of a cell value.
type CellKind int

const (
	// KindText is a string cell.
	KindText CellKind = iota
	// KindNumber is a numeric cell.
	KindNumber
	// KindBool is a boolean cell.
	KindBool
	// KindError is a cell holding a spreadsheet error such as #DIV/0!.
	KindError
)

func (k CellKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("CellKind(%d)", int(k))
	}
}

// Cell is a single present cell. Only the value matching Kind is meaningful.
type Cell struct {
	// Kind is the stored representation.
	Kind CellKind `json:"kind"`
	// Text holds the value of text cells and the code of error cells.
	Text string `json:"text,omitempty"`
	// Number holds the value of numeric cells.
	Number float64 `json:"number,omitempty"`
	// Bool holds the value of boolean cells.
	Bool bool `json:"bool,omitempty"`
}

// TextCell returns a text cell.
func TextCell(s string) *Cell { return &Cell{Kind: KindText, Text: s} }

// NumberCell returns a numeric cell.
func NumberCell(f float64) *Cell { return &Cell{Kind: KindNumber, Number: f} }

// BoolCell returns a boolean cell.
func BoolCell(b bool) *Cell { return &Cell{Kind: KindBool, Bool: b} }

// ErrorCell returns a cell holding a spreadsheet error code.
func ErrorCell(code string) *Cell { return &Cell{Kind: KindError, Text: code} }

// StringValue returns the textual value of a text cell.
func (c *Cell) StringValue() (string, error) {
	if c.Kind != KindText {
		return "", c.incompatible("text")
	}
	return c.Text, nil
}

// NumericValue returns the value of a numeric cell.
func (c *Cell) NumericValue() (float64, error) {
	if c.Kind != KindNumber {
		return 0, c.incompatible("numeric")
	}
	return c.Number, nil
}

// BoolValue returns the value of a boolean cell.
func (c *Cell) BoolValue() (bool, error) {
	if c.Kind != KindBool {
		return false, c.incompatible("boolean")
	}
	return c.Bool, nil
}

func (c *Cell) incompatible(want string) error {
	if c.Kind == KindError {
		return fmt.Errorf("%w: cannot read %s value from error cell %s", ErrIncompatibleCell, want, c.Text)
	}
	return fmt.Errorf("%w: cannot read %s value from %s cell", ErrIncompatibleCell, want, c.Kind)
}
