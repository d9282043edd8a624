package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/rowbind-go/pkg/rowbind/models"
	"github.com/xuri/excelize/v2"
)

// XLSXSource streams the rows of one worksheet of an xlsx workbook.
type XLSXSource struct {
	path   string
	sheet  string
	f      *excelize.File
	rows   *excelize.Rows
	cur    models.Row
	rowIdx int
	err    error
	closed bool
}

// OpenXLSX opens the workbook at path and positions a row iterator on sheet.
// An empty sheet selects the first sheet of the workbook.
func OpenXLSX(path, sheet string) (*XLSXSource, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	return newXLSXSource(path, f, sheet)
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewSourceError(path, "open", ErrFileNotFound)
		}
		return nil, NewSourceError(path, "open", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewSourceError(path, "open", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	return f, nil
}

func newXLSXSource(path string, f *excelize.File, sheet string) (*XLSXSource, error) {
	name, err := resolveSheet(f, sheet)
	if err != nil {
		f.Close()
		return nil, NewSourceError(path, "sheet", err)
	}

	rows, err := f.Rows(name)
	if err != nil {
		f.Close()
		return nil, NewSourceError(path, "sheet", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}

	return &XLSXSource{
		path:   path,
		sheet:  name,
		f:      f,
		rows:   rows,
		rowIdx: -1,
	}, nil
}

// resolveSheet returns the sheet to read. Additional sheets are ignored.
func resolveSheet(f *excelize.File, sheet string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrSheetNotFound
	}
	if sheet == "" {
		return sheets[0], nil
	}
	for _, name := range sheets {
		if name == sheet {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
}

// Sheet returns the name of the sheet being read.
func (s *XLSXSource) Sheet() string {
	return s.sheet
}

// Next implements Source.
func (s *XLSXSource) Next() bool {
	if s.err != nil || s.closed {
		return false
	}
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			s.err = NewSourceError(s.path, "read", err)
		}
		return false
	}
	s.rowIdx++

	cols, err := s.rows.Columns(excelize.Options{RawCellValue: true})
	if err != nil {
		s.err = NewSourceError(s.path, "read", err)
		return false
	}

	cells := make([]*models.Cell, len(cols))
	for colIdx, raw := range cols {
		if raw == "" {
			continue
		}
		cellName, err := excelize.CoordinatesToCellName(colIdx+1, s.rowIdx+1)
		if err != nil {
			s.err = NewSourceError(s.path, "read", err)
			return false
		}
		ct, err := s.f.GetCellType(s.sheet, cellName)
		if err != nil {
			s.err = NewSourceError(s.path, "read", err)
			return false
		}
		cells[colIdx] = classifyCell(ct, raw)
	}

	s.cur = models.Row{Index: s.rowIdx, Cells: cells}
	return true
}

// Row implements Source.
func (s *XLSXSource) Row() models.Row {
	return s.cur
}

// Err implements Source.
func (s *XLSXSource) Err() error {
	return s.err
}

// Close releases the row iterator and the workbook. Subsequent calls are no-ops.
func (s *XLSXSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return errors.Join(s.rows.Close(), s.f.Close())
}
