// Package rowbind decodes spreadsheet rows into Go values by matching column
// position to field declaration order.
package rowbind

import (
	"fmt"
	"log/slog"
)

// Mode represents how columns are matched to fields.
type Mode string

const (
	// ModePositional maps column i to field i.
	ModePositional Mode = "positional"
	// ModeHeader maps fields to columns by matching field names against the
	// header row, ignoring case and surrounding space.
	ModeHeader Mode = "header"
)

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModePositional:
		return ModePositional, nil
	case ModeHeader:
		return ModeHeader, nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be positional or header)", s)
	}
}

// Options configures decoding behavior.
type Options struct {
	// Sheet is the worksheet to read. Empty selects the first sheet.
	Sheet string
	// Range restricts decoding to a cell range or workbook defined name.
	// The first row of the range is the header.
	Range string
	// Mode specifies the column matching mode (positional, header).
	Mode Mode
	// SkipBlankRows specifies whether rows without any cell are ignored.
	// If nil, defaults to true.
	SkipBlankRows *bool
	// StrictRows aborts the decode on the first row failure instead of
	// skipping the row.
	StrictRows bool
	// Logger receives row failures and decode summaries.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default decoding options.
func DefaultOptions() Options {
	return Options{
		Mode: ModePositional,
	}
}

// ShouldSkipBlankRows returns whether blank rows are ignored.
func (o Options) ShouldSkipBlankRows() bool {
	if o.SkipBlankRows != nil {
		return *o.SkipBlankRows
	}
	return true
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
