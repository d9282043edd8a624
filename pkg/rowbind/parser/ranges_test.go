package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ukaji3/rowbind-go/pkg/rowbind/models"
	"github.com/xuri/excelize/v2"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		ref       string
		wantSheet string
		wantArea  models.Area
		wantErr   bool
	}{
		{"A1:D10", "", models.Area{R1: 1, C1: 1, R2: 10, C2: 4}, false},
		{"$B$2:$C$5", "", models.Area{R1: 2, C1: 2, R2: 5, C2: 3}, false},
		{"Sheet1!$A$1:$D$10", "Sheet1", models.Area{R1: 1, C1: 1, R2: 10, C2: 4}, false},
		{"'My Sheet'!B2:C3", "My Sheet", models.Area{R1: 2, C1: 2, R2: 3, C2: 3}, false},
		{"D10:A1", "", models.Area{R1: 1, C1: 1, R2: 10, C2: 4}, false},
		{"A1:B2,C3:D4", "", models.Area{R1: 1, C1: 1, R2: 2, C2: 2}, false},
		{"A1", "", models.Area{}, true},
		{"", "", models.Area{}, true},
		{"A1:ZZZZ9", "", models.Area{}, true},
	}

	for _, tt := range tests {
		sheet, area, err := ParseRange(tt.ref)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("ParseRange(%q) error = %v, want ErrInvalidRange", tt.ref, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRange(%q) unexpected error: %v", tt.ref, err)
			continue
		}
		if sheet != tt.wantSheet || area != tt.wantArea {
			t.Errorf("ParseRange(%q) = %q, %+v, want %q, %+v", tt.ref, sheet, area, tt.wantSheet, tt.wantArea)
		}
	}
}

func TestResolveDefinedName(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "People",
		RefersTo: "Sheet1!$B$2:$D$5",
	}); err != nil {
		t.Fatalf("SetDefinedName failed: %v", err)
	}

	ref, ok := ResolveDefinedName(f, "people", "")
	if !ok || ref != "Sheet1!$B$2:$D$5" {
		t.Errorf("ResolveDefinedName = %q, %v", ref, ok)
	}
	if _, ok := ResolveDefinedName(f, "Missing", ""); ok {
		t.Error("Expected Missing not to resolve")
	}
}

func TestOpenRangeByDefinedName(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{
		{"title row"},
		{nil, "Name", "Age"},
		{nil, "Ann", 30},
		{nil, "Cid", 41},
		{"footer"},
	}
	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := f.SetDefinedName(&excelize.DefinedName{Name: "People", RefersTo: "Sheet1!$B$2:$C$4"}); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "named.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	src, err := Open(path, OpenOptions{Range: "People"})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	got := collect(t, src)
	if len(got) != 3 {
		t.Fatalf("Expected 3 rows, got %d: %+v", len(got), got)
	}
	if got[0].Values[0] != "Name" || got[2].Values[1] != float64(41) {
		t.Errorf("Unexpected rows: %+v", got)
	}
}
