// Package parser provides tabular sources over spreadsheet and CSV files.
package parser

import "github.com/ukaji3/rowbind-go/pkg/rowbind/models"

// Source yields rows in a stable forward order. Callers iterate with Next and
// Row, check Err once Next returns false, and Close the source exactly once.
type Source interface {
	// Next advances to the next row. It returns false at the end of the
	// source or on a read failure.
	Next() bool
	// Row returns the current row.
	Row() models.Row
	// Err returns the read failure that stopped iteration, if any.
	Err() error
	// Close releases the underlying resources.
	Close() error
}

// SliceSource is an in-memory Source.
type SliceSource struct {
	rows []models.Row
	pos  int
}

// NewSliceSource returns a Source over rows. Row indexes are assigned from
// slice position.
func NewSliceSource(rows []models.Row) *SliceSource {
	return &SliceSource{rows: rows, pos: -1}
}

// Next implements Source.
func (s *SliceSource) Next() bool {
	if s.pos+1 >= len(s.rows) {
		s.pos = len(s.rows)
		return false
	}
	s.pos++
	return true
}

// Row implements Source.
func (s *SliceSource) Row() models.Row {
	r := s.rows[s.pos]
	r.Index = s.pos
	return r
}

// Err implements Source.
func (s *SliceSource) Err() error { return nil }

// Close implements Source.
func (s *SliceSource) Close() error { return nil }

// areaSource restricts another source to a rectangular area. The first area
// row becomes row 0 and the first area column becomes column 0.
type areaSource struct {
	Source
	area models.Area
	cur  models.Row
	done bool
}

// WithArea returns a Source that only yields the rows and columns of area.
func WithArea(src Source, area models.Area) Source {
	return &areaSource{Source: src, area: area}
}

func (s *areaSource) Next() bool {
	if s.done {
		return false
	}
	for s.Source.Next() {
		row := s.Source.Row()
		sheetRow := row.Index + 1
		if sheetRow < s.area.R1 {
			continue
		}
		if sheetRow > s.area.R2 {
			s.done = true
			return false
		}
		cells := make([]*models.Cell, s.area.Width())
		for i := range cells {
			cells[i] = row.CellAt(s.area.C1 - 1 + i)
		}
		s.cur = models.Row{Index: sheetRow - s.area.R1, Cells: cells}
		return true
	}
	s.done = true
	return false
}

func (s *areaSource) Row() models.Row {
	return s.cur
}
