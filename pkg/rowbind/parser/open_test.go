package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenByExtension(t *testing.T) {
	xlsxPath := writeWorkbook(t, [][]any{{"Name"}, {"Ann"}})
	csvPath := filepath.Join(t.TempDir(), "people.CSV")
	if err := os.WriteFile(csvPath, []byte("Name\nAnn\n"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{xlsxPath, csvPath} {
		src, err := Open(path, OpenOptions{})
		if err != nil {
			t.Fatalf("Open(%s) failed: %v", path, err)
		}
		if got := len(collect(t, src)); got != 2 {
			t.Errorf("Open(%s): expected 2 rows, got %d", path, got)
		}
		if err := src.Close(); err != nil {
			t.Errorf("Close(%s) failed: %v", path, err)
		}
	}
}

func TestOpenUnsupported(t *testing.T) {
	_, err := Open("report.ods", OpenOptions{})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestOpenRangeErrors(t *testing.T) {
	path := writeWorkbook(t, [][]any{{"Name"}, {"Ann"}})
	csvPath := filepath.Join(t.TempDir(), "people.csv")
	if err := os.WriteFile(csvPath, []byte("Name\nAnn\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		opts OpenOptions
		want error
	}{
		{"bad reference", path, OpenOptions{Range: "nonsense"}, ErrInvalidRange},
		{"sheet mismatch", path, OpenOptions{Sheet: "Sheet1", Range: "Other!A1:B2"}, ErrInvalidRange},
		{"unknown range sheet", path, OpenOptions{Range: "Other!A1:B2"}, ErrSheetNotFound},
		{"csv sheet prefix", csvPath, OpenOptions{Range: "Sheet1!A1:B2"}, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := Open(tt.path, tt.opts)
			if err == nil {
				src.Close()
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Open error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOpenCSVRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.csv")
	if err := os.WriteFile(path, []byte("x,x,x\nx,Name,Age\nx,Ann,30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := Open(path, OpenOptions{Range: "B2:C3"})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	got := collect(t, src)
	if len(got) != 2 || got[0].Values[0] != "Name" || got[1].Values[1] != float64(30) {
		t.Errorf("Unexpected rows: %+v", got)
	}
}
