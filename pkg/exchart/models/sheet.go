package models

// Column is one header of the loaded sheet.
type Column struct {
	// Name is the unique column name used for lookups.
	Name string `json:"name"`
	// Header is the typed header cell the name was derived from.
	Header Cell `json:"-"`
}

// Row is one data record of the sheet.
type Row struct {
	// R is the spreadsheet row index (1-based, header is row 1).
	R int `json:"r"`
	// Cells holds one value per column, in column order.
	Cells []Cell `json:"-"`
}

// Get returns the cell at column index i, or a missing cell when the row is
// shorter than the header or i is negative.
func (r Row) Get(i int) Cell {
	if i < 0 || i >= len(r.Cells) {
		return Missing()
	}
	return r.Cells[i]
}

// Table is the in-memory copy of one sheet: ordered columns and ordered rows.
type Table struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the name of the sheet that was read.
	SheetName string `json:"sheet_name"`
	// Columns lists the header columns in sheet order.
	Columns []Column `json:"columns"`
	// Rows lists the data rows in sheet order.
	Rows []Row `json:"rows,omitempty"`
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c.Name == name {
			return i, true
		}
	}
	return -1, false
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}
