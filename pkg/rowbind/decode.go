package rowbind

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ukaji3/rowbind-go/internal/logging"
	"github.com/ukaji3/rowbind-go/pkg/rowbind/models"
	"github.com/ukaji3/rowbind-go/pkg/rowbind/parser"
)

// Source is a forward-only provider of rows.
type Source = parser.Source

// Result holds the outcome of decoding a table.
type Result[T any] struct {
	// Records contains the decoded values in row order.
	Records []T `json:"records"`
	// Skipped contains one error per row that produced no record.
	Skipped []*RowError `json:"skipped"`
	// Rows is the number of data rows passed to the row decoder.
	Rows int `json:"rows"`
}

// DecodeRow decodes one row positionally: field i is read from column i.
// Absent cells leave their field at the value produced by the descriptor's
// factory. Any coercion failure discards the value and returns a *RowError.
func DecodeRow[T any](row models.Row, d *Descriptor[T]) (T, error) {
	return decodeRow(row, d, nil)
}

// decodeRow decodes row with an optional field-to-column mapping; a column of
// -1 marks a field with no column.
func decodeRow[T any](row models.Row, d *Descriptor[T], cols []int) (v T, err error) {
	var field Field[T]
	col := -1
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v = zero
			err = &RowError{Row: row.Index, Column: col, Field: field.Name, Err: fmt.Errorf("%w: %v", ErrDecodePanic, r)}
		}
	}()

	v = d.newValue()
	for i := range d.fields {
		field = d.fields[i]
		col = i
		if cols != nil {
			col = cols[i]
		}
		c := row.CellAt(col)
		if c == nil || field.set == nil {
			continue
		}
		if err := field.set(&v, c); err != nil {
			var zero T
			return zero, &RowError{Row: row.Index, Column: col, Field: field.Name, Err: err}
		}
	}
	return v, nil
}

// Decode reads every row of src and decodes rows after the header into
// values of T. Row 0 is the header and is never decoded. Rows that fail to
// decode are logged and recorded in Result.Skipped unless opts.StrictRows is
// set, in which case the first failure is returned. A read failure of src
// aborts the decode. The caller owns src and must close it.
func Decode[T any](src Source, d *Descriptor[T], opts Options) (*Result[T], error) {
	return decode(src, d, opts, logging.ForDecode(opts.logger(), ""))
}

// Load opens path, decodes its rows as Decode does and closes the source on
// every path. Sheet and Range in opts select the cells to read.
func Load[T any](path string, d *Descriptor[T], opts Options) (res *Result[T], err error) {
	src, err := parser.Open(path, parser.OpenOptions{Sheet: opts.Sheet, Range: opts.Range})
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			res = nil
			err = errors.Join(err, parser.NewSourceError(path, "close", cerr))
		}
	}()

	return decode(src, d, opts, logging.ForDecode(opts.logger(), path))
}

// ReadFile decodes the first sheet of path into values of struct type T
// using positional mapping. Failed rows are dropped.
func ReadFile[T any](path string) ([]T, error) {
	d, err := Describe[T]()
	if err != nil {
		return nil, err
	}
	res, err := Load(path, d, DefaultOptions())
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

func decode[T any](src Source, d *Descriptor[T], opts Options, logger *slog.Logger) (*Result[T], error) {
	if opts.Mode != "" && opts.Mode != ModePositional && opts.Mode != ModeHeader {
		return nil, fmt.Errorf("invalid mode: %s", opts.Mode)
	}

	var cols []int
	if opts.Mode == ModeHeader {
		cols = unmapped(d.Len())
	}

	res := &Result[T]{Records: []T{}, Skipped: []*RowError{}}
	for src.Next() {
		row := src.Row()
		if row.Index == 0 {
			if opts.Mode == ModeHeader {
				cols = headerColumns(row, d)
				logger.Debug("header mapped", "columns", cols)
			}
			continue
		}
		if opts.ShouldSkipBlankRows() && row.IsBlank() {
			continue
		}

		res.Rows++
		v, err := decodeRow(row, d, cols)
		if err != nil {
			var rowErr *RowError
			errors.As(err, &rowErr)
			if opts.StrictRows {
				return nil, err
			}
			logger.Warn("row decode failed",
				"row", rowErr.Row,
				"column", rowErr.Column,
				"field", rowErr.Field,
				"error", rowErr.Err,
			)
			res.Skipped = append(res.Skipped, rowErr)
			continue
		}
		res.Records = append(res.Records, v)
	}

	if err := src.Err(); err != nil {
		return nil, err
	}

	logger.Info("decode complete",
		"rows", res.Rows,
		"records", len(res.Records),
		"skipped", len(res.Skipped),
	)
	return res, nil
}

func unmapped(n int) []int {
	cols := make([]int, n)
	for i := range cols {
		cols[i] = -1
	}
	return cols
}

// headerColumns maps each field to the first header column whose text equals
// the field name, ignoring case and surrounding space.
func headerColumns[T any](header models.Row, d *Descriptor[T]) []int {
	index := make(map[string]int, len(header.Cells))
	for i, c := range header.Cells {
		if c == nil {
			continue
		}
		key := normalizeName(headerText(c))
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	cols := unmapped(d.Len())
	for i, f := range d.fields {
		if col, ok := index[normalizeName(f.Name)]; ok {
			cols[i] = col
		}
	}
	return cols
}

func headerText(c *models.Cell) string {
	switch c.Kind {
	case models.KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case models.KindBool:
		return strconv.FormatBool(c.Bool)
	default:
		return c.Text
	}
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
