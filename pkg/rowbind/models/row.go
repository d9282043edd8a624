package models

// Row is an ordered, sparse sequence of cells.
type Row struct {
	// Index is the 0-based row index within the consumed area.
	Index int `json:"index"`
	// Cells holds one entry per column; nil entries are absent cells.
	Cells []*Cell `json:"cells"`
}

// CellAt returns the cell at column i, or nil if the cell is absent.
func (r Row) CellAt(i int) *Cell {
	if i < 0 || i >= len(r.Cells) {
		return nil
	}
	return r.Cells[i]
}

// IsBlank reports whether the row has no present cell.
func (r Row) IsBlank() bool {
	for _, c := range r.Cells {
		if c != nil {
			return false
		}
	}
	return true
}
