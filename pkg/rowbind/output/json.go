// Package output serializes decode results and workbook summaries.
package output

import (
	"encoding/json"

	"github.com/ukaji3/rowbind-go/pkg/rowbind/models"
)

// ToJSON serializes v to JSON, indented when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WorkbookInfoToJSON serializes a workbook summary.
func WorkbookInfoToJSON(info *models.WorkbookInfo, pretty bool) ([]byte, error) {
	return ToJSON(info, pretty)
}
