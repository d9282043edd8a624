package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/rowbind-go/pkg/rowbind/models"
	"github.com/xuri/excelize/v2"
)

// ResolveDefinedName looks up a workbook defined name and returns its reference.
// Names scoped to sheet take precedence over workbook-scoped ones.
func ResolveDefinedName(f *excelize.File, name, sheet string) (string, bool) {
	var found string
	var ok bool
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, name) {
			continue
		}
		if sheet != "" && dn.Scope == sheet {
			return dn.RefersTo, true
		}
		if !ok {
			found, ok = dn.RefersTo, true
		}
	}
	return found, ok
}

// ParseRange parses a range reference.
// Format: 'SheetName'!$A$1:$D$10, SheetName!A1:D10 or A1:D10.
// Only the first area of a comma-separated reference is used.
func ParseRange(ref string) (string, models.Area, error) {
	part := strings.TrimSpace(ref)
	if i := strings.Index(part, ","); i >= 0 {
		part = strings.TrimSpace(part[:i])
	}
	if part == "" {
		return "", models.Area{}, fmt.Errorf("%w: empty reference", ErrInvalidRange)
	}

	var sheetName string
	// Split by ! to separate sheet name and range
	if idx := strings.LastIndex(part, "!"); idx >= 0 {
		sheetName = strings.Trim(part[:idx], "'=")
		part = part[idx+1:]
	}

	area := parseRangeToArea(part)
	if area == nil {
		return "", models.Area{}, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}
	return sheetName, *area, nil
}

// parseRangeToArea parses a range string like $A$1:$D$10 to an Area.
func parseRangeToArea(rangeStr string) *models.Area {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	// Split by :
	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return &models.Area{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
