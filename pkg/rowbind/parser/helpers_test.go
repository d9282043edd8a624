package parser

import (
	"path/filepath"
	"testing"

	"github.com/ukaji3/rowbind-go/pkg/rowbind/models"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves rows to Sheet1 of a new workbook in a temp dir.
// nil values leave the cell empty.
func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName failed: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatalf("SetCellValue(%s) failed: %v", cell, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func collect(t *testing.T, src Source) []rowSnapshot {
	t.Helper()

	var out []rowSnapshot
	for src.Next() {
		row := src.Row()
		snap := rowSnapshot{Index: row.Index}
		for _, c := range row.Cells {
			if c == nil {
				snap.Values = append(snap.Values, nil)
				continue
			}
			switch c.Kind {
			case models.KindText:
				snap.Values = append(snap.Values, c.Text)
			case models.KindNumber:
				snap.Values = append(snap.Values, c.Number)
			case models.KindBool:
				snap.Values = append(snap.Values, c.Bool)
			default:
				snap.Values = append(snap.Values, "ERR:"+c.Text)
			}
		}
		out = append(out, snap)
	}
	if err := src.Err(); err != nil {
		t.Fatalf("source error: %v", err)
	}
	return out
}

type rowSnapshot struct {
	Index  int
	Values []any
}
