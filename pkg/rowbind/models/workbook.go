package models

// WorkbookInfo represents a workbook-level summary with per-sheet data.
type WorkbookInfo struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists sheet summaries in workbook order.
	Sheets []SheetInfo `json:"sheets"`
	// DefinedNames maps workbook defined names to their references.
	DefinedNames map[string]string `json:"defined_names,omitempty"`
}
