package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/rowbind-go/pkg/rowbind/models"
	"github.com/xuri/excelize/v2"
)

// classifyCell builds a cell from an xlsx raw value and its stored type.
// An empty raw value is treated as an absent cell.
func classifyCell(ct excelize.CellType, raw string) *models.Cell {
	if raw == "" {
		return nil
	}

	switch ct {
	case excelize.CellTypeBool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return models.BoolCell(b)
		}
		return models.TextCell(raw)
	case excelize.CellTypeError:
		return models.ErrorCell(raw)
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeDate:
		return models.TextCell(raw)
	default:
		// Numbers are stored without a type attribute.
		if f, ok := parseNumber(raw); ok {
			return models.NumberCell(f)
		}
		return models.TextCell(raw)
	}
}

// parseValue infers a typed cell from untyped text.
// Integers and decimals become numeric cells, true/false become boolean cells,
// anything else stays text. An empty string is an absent cell.
func parseValue(s string) *models.Cell {
	if s == "" {
		return nil
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.NumberCell(float64(i))
	}
	// Try float
	if f, ok := parseNumber(s); ok {
		return models.NumberCell(f)
	}
	switch {
	case strings.EqualFold(s, "true"):
		return models.BoolCell(true)
	case strings.EqualFold(s, "false"):
		return models.BoolCell(false)
	}
	return models.TextCell(s)
}

// parseNumber parses a finite decimal number. NaN and infinities are rejected
// so that text such as "NaN" or "Inf" stays text.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
