package models

// SheetInfo summarizes one sheet of a workbook.
type SheetInfo struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Header contains the text of the first non-empty row.
	Header []string `json:"header,omitempty"`
	// DataRows is the number of non-empty rows after the header.
	DataRows int `json:"data_rows"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
}
