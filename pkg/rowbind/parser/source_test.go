package parser

import (
	"reflect"
	"testing"

	"github.com/ukaji3/rowbind-go/pkg/rowbind/models"
)

func TestSliceSource(t *testing.T) {
	src := NewSliceSource([]models.Row{
		{Index: 7, Cells: []*models.Cell{models.TextCell("h")}},
		{Cells: []*models.Cell{models.NumberCell(1)}},
	})

	rows := collect(t, src)
	want := []rowSnapshot{
		{Index: 0, Values: []any{"h"}},
		{Index: 1, Values: []any{float64(1)}},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %#v, want %#v", rows, want)
	}
	if src.Next() {
		t.Error("Next after end returned true")
	}
}

func TestWithArea(t *testing.T) {
	var rows []models.Row
	for r := 0; r < 6; r++ {
		var cells []*models.Cell
		for c := 0; c < 5; c++ {
			cells = append(cells, models.NumberCell(float64(r*10+c)))
		}
		rows = append(rows, models.Row{Cells: cells})
	}

	// B2:C4 covers rows 1..3 and columns 1..2 (0-based).
	src := WithArea(NewSliceSource(rows), models.Area{R1: 2, C1: 2, R2: 4, C2: 3})

	got := collect(t, src)
	want := []rowSnapshot{
		{Index: 0, Values: []any{float64(11), float64(12)}},
		{Index: 1, Values: []any{float64(21), float64(22)}},
		{Index: 2, Values: []any{float64(31), float64(32)}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %#v, want %#v", got, want)
	}
	if src.Next() {
		t.Error("Next after area end returned true")
	}
}

func TestWithAreaPadsShortRows(t *testing.T) {
	src := WithArea(NewSliceSource([]models.Row{
		{Cells: []*models.Cell{models.TextCell("a")}},
	}), models.Area{R1: 1, C1: 1, R2: 1, C2: 3})

	got := collect(t, src)
	want := []rowSnapshot{{Index: 0, Values: []any{"a", nil, nil}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %#v, want %#v", got, want)
	}
}
