package output

import (
	"strings"
	"testing"

	"github.com/ukaji3/rowbind-go/pkg/rowbind/models"
)

func TestRecordMarshalJSON(t *testing.T) {
	keys := []string{"name", "age", "active", "note"}
	rec := NewRecord(keys, []any{"", int64(0), false, nil})
	rec.Values[0] = "Ann"
	rec.Values[1] = int64(30)
	rec.Values[2] = true

	got, err := ToJSON(rec, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	want := `{"name":"Ann","age":30,"active":true,"note":null}`
	if string(got) != want {
		t.Errorf("ToJSON = %s, want %s", got, want)
	}
}

func TestNewRecordCopiesDefaults(t *testing.T) {
	defaults := []any{"", int64(0)}
	a := NewRecord([]string{"a", "b"}, defaults)
	a.Values[0] = "changed"

	if defaults[0] != "" {
		t.Errorf("defaults modified through record: %v", defaults)
	}
}

func TestToJSONPretty(t *testing.T) {
	got, err := ToJSON(map[string]int{"rows": 2}, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(got), "\n  \"rows\": 2") {
		t.Errorf("Expected indented output, got %s", got)
	}
}

func TestWorkbookInfoToJSON(t *testing.T) {
	info := &models.WorkbookInfo{
		BookName: "people.xlsx",
		Sheets: []models.SheetInfo{
			{Name: "Sheet1", Header: []string{"Name", "Age"}, DataRows: 2},
		},
	}

	got, err := WorkbookInfoToJSON(info, false)
	if err != nil {
		t.Fatalf("WorkbookInfoToJSON failed: %v", err)
	}
	want := `{"book_name":"people.xlsx","sheets":[{"name":"Sheet1","header":["Name","Age"],"data_rows":2}]}`
	if string(got) != want {
		t.Errorf("WorkbookInfoToJSON = %s, want %s", got, want)
	}
}
