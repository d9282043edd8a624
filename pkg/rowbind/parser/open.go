package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/rowbind-go/pkg/rowbind/models"
)

// OpenOptions selects the part of a file to read.
type OpenOptions struct {
	// Sheet is the worksheet name. Empty selects the first sheet.
	Sheet string
	// Range is an optional cell range or workbook defined name.
	Range string
}

// Open opens a Source for path, choosing the reader by file extension.
func Open(path string, opts OpenOptions) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return openXLSXWithRange(path, opts)
	case ".csv":
		return openCSVWithRange(path, opts)
	default:
		return nil, NewSourceError(path, "open", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path)))
	}
}

func openXLSXWithRange(path string, opts OpenOptions) (Source, error) {
	if opts.Range == "" {
		src, err := OpenXLSX(path, opts.Sheet)
		if err != nil {
			return nil, err
		}
		return src, nil
	}

	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}

	ref := opts.Range
	if resolved, ok := ResolveDefinedName(f, opts.Range, opts.Sheet); ok {
		ref = resolved
	}
	rangeSheet, area, err := ParseRange(ref)
	if err != nil {
		f.Close()
		return nil, NewSourceError(path, "range", err)
	}

	sheet := opts.Sheet
	switch {
	case sheet == "":
		sheet = rangeSheet
	case rangeSheet != "" && rangeSheet != sheet:
		f.Close()
		return nil, NewSourceError(path, "range",
			fmt.Errorf("%w: %q refers to sheet %q, not %q", ErrInvalidRange, opts.Range, rangeSheet, sheet))
	}

	src, err := newXLSXSource(path, f, sheet)
	if err != nil {
		return nil, err
	}
	return WithArea(src, area), nil
}

func openCSVWithRange(path string, opts OpenOptions) (Source, error) {
	var area *models.Area
	if opts.Range != "" {
		sheet, a, err := ParseRange(opts.Range)
		if err != nil {
			return nil, NewSourceError(path, "range", err)
		}
		if sheet != "" {
			return nil, NewSourceError(path, "range",
				fmt.Errorf("%w: csv files have no sheet %q", ErrInvalidRange, sheet))
		}
		area = &a
	}

	src, err := OpenCSV(path)
	if err != nil {
		return nil, err
	}
	if area != nil {
		return WithArea(src, *area), nil
	}
	return src, nil
}
