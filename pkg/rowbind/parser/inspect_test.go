package parser

import (
	"reflect"
	"testing"
)

func TestDetectTables(t *testing.T) {
	rows := [][]string{
		{},
		{"", "Name", "Age"},
		{"", "Ann", "30"},
		{"", "Cid", ""},
	}

	got, err := DetectTables(rows, DefaultTableParams())
	if err != nil {
		t.Fatalf("DetectTables failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"B2:C4"}) {
		t.Errorf("DetectTables = %v, want [B2:C4]", got)
	}

	got, err = DetectTables([][]string{{"only"}}, DefaultTableParams())
	if err != nil || got != nil {
		t.Errorf("DetectTables with too few cells = %v, %v; want nil", got, err)
	}
}

func TestInspect(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{" Name ", "Age"},
		{"Ann", 30},
		nil,
		{"Cid", 41},
	})

	info, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if info.BookName != "test.xlsx" {
		t.Errorf("BookName = %q, want test.xlsx", info.BookName)
	}
	if len(info.Sheets) != 1 {
		t.Fatalf("Expected 1 sheet, got %d", len(info.Sheets))
	}

	sheet := info.Sheets[0]
	if !reflect.DeepEqual(sheet.Header, []string{"Name", "Age"}) {
		t.Errorf("Header = %q", sheet.Header)
	}
	if sheet.DataRows != 2 {
		t.Errorf("DataRows = %d, want 2", sheet.DataRows)
	}
	if !reflect.DeepEqual(sheet.TableCandidates, []string{"A1:B4"}) {
		t.Errorf("TableCandidates = %v, want [A1:B4]", sheet.TableCandidates)
	}
}
