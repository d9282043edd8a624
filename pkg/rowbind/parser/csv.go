package parser

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/ukaji3/rowbind-go/pkg/rowbind/models"
)

// CSVSource reads rows from comma-separated text, inferring a cell kind for
// every non-empty field.
type CSVSource struct {
	path   string
	r      *csv.Reader
	c      io.Closer
	cur    models.Row
	rowIdx int
	err    error
	closed bool
}

// OpenCSV opens the CSV file at path.
func OpenCSV(path string) (*CSVSource, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewSourceError(path, "open", ErrFileNotFound)
		}
		return nil, NewSourceError(path, "open", err)
	}
	src := NewCSVSource(file)
	src.path = path
	return src, nil
}

// NewCSVSource returns a Source reading CSV from r. If r is an io.Closer it is
// closed by Close.
func NewCSVSource(r io.Reader) *CSVSource {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	src := &CSVSource{r: cr, rowIdx: -1}
	if c, ok := r.(io.Closer); ok {
		src.c = c
	}
	return src
}

// Next implements Source.
func (s *CSVSource) Next() bool {
	if s.err != nil || s.closed {
		return false
	}
	record, err := s.r.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		s.err = NewSourceError(s.path, "read", err)
		return false
	}
	s.rowIdx++

	if s.rowIdx == 0 && len(record) > 0 {
		record[0] = strings.TrimPrefix(record[0], "\ufeff")
	}

	cells := make([]*models.Cell, len(record))
	for i, field := range record {
		cells[i] = parseValue(field)
	}
	s.cur = models.Row{Index: s.rowIdx, Cells: cells}
	return true
}

// Row implements Source.
func (s *CSVSource) Row() models.Row {
	return s.cur
}

// Err implements Source.
func (s *CSVSource) Err() error {
	return s.err
}

// Close implements Source. Subsequent calls are no-ops.
func (s *CSVSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.c != nil {
		return s.c.Close()
	}
	return nil
}
