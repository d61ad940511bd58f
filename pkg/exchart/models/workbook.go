package models

// Result summarizes one run over a workbook.
type Result struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the charts were built from.
	SheetName string `json:"sheet_name"`
	// OutputDir is the directory holding the per-row images.
	OutputDir string `json:"output_dir"`
	// Document is the path of the combined multi-page document.
	Document string `json:"document"`
	// Images lists written image paths in row order. A path appears more than
	// once when two rows sanitize to the same identifier.
	Images []string `json:"images"`
	// Pages is the number of pages in the combined document.
	Pages int `json:"pages"`
	// Rows is the number of data rows read from the sheet.
	Rows int `json:"rows"`
	// Skipped is the number of rows that had no usable values.
	Skipped int `json:"skipped"`
}
