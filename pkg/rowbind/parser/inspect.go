package parser

import (
	"path/filepath"
	"strings"

	"github.com/ukaji3/rowbind-go/pkg/rowbind/models"
)

// Inspect summarizes the sheets of the xlsx workbook at path: header text,
// data row count and detected table ranges. Sheets that cannot be read are
// reported without rows.
func Inspect(path string) (*models.WorkbookInfo, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info := &models.WorkbookInfo{
		BookName: filepath.Base(path),
	}

	for _, sheetName := range f.GetSheetList() {
		sheet := models.SheetInfo{Name: sheetName}

		rows, err := f.GetRows(sheetName)
		if err != nil {
			info.Sheets = append(info.Sheets, sheet)
			continue
		}

		headerIdx := -1
		for rowIdx, row := range rows {
			if isEmptyRow(row) {
				continue
			}
			if headerIdx < 0 {
				headerIdx = rowIdx
				sheet.Header = trimRow(row)
				continue
			}
			sheet.DataRows++
		}

		if tables, err := DetectTables(rows, DefaultTableParams()); err == nil {
			sheet.TableCandidates = tables
		}

		info.Sheets = append(info.Sheets, sheet)
	}

	for _, dn := range f.GetDefinedName() {
		if strings.HasPrefix(dn.Name, "_xlnm.") {
			continue
		}
		if info.DefinedNames == nil {
			info.DefinedNames = make(map[string]string)
		}
		info.DefinedNames[dn.Name] = dn.RefersTo
	}

	return info, nil
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}

func trimRow(row []string) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
