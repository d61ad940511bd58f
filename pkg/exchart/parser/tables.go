package parser

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// BuildTable turns a typed cell grid into a Table: the first row is the
// header, the remaining non-blank rows are data rows.
//
// Columns past the last one holding any value are dropped. A missing header
// is named "Unnamed: <index>" and repeated names get ".1", ".2", ... suffixes,
// so every column name is unique.
func BuildTable(bookName, sheetName string, grid [][]models.Cell) (*models.Table, error) {
	_, maxCol := findDataBounds(grid)
	if len(grid) == 0 || maxCol < 0 || isBlankRow(grid[0]) {
		return nil, ErrEmptySheet
	}
	width := maxCol + 1

	header := grid[0]
	columns := make([]models.Column, width)
	seen := make(map[string]bool, width)
	for i := 0; i < width; i++ {
		var h models.Cell
		if i < len(header) {
			h = header[i]
		}
		name := h.String()
		if h.IsMissing() {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		columns[i] = models.Column{Name: uniqueName(name, seen), Header: h}
	}

	var rows []models.Row
	for rowIdx := 1; rowIdx < len(grid); rowIdx++ {
		if isBlankRow(grid[rowIdx]) {
			continue
		}
		cells := make([]models.Cell, width)
		copy(cells, grid[rowIdx])
		rows = append(rows, models.Row{R: rowIdx + 1, Cells: cells})
	}

	return &models.Table{
		BookName:  bookName,
		SheetName: sheetName,
		Columns:   columns,
		Rows:      rows,
	}, nil
}

// uniqueName returns name, or name with the first free ".N" suffix, and
// records the result in seen.
func uniqueName(name string, seen map[string]bool) string {
	candidate := name
	for n := 1; seen[candidate]; n++ {
		candidate = name + "." + strconv.Itoa(n)
	}
	seen[candidate] = true
	return candidate
}

// findDataBounds finds the last row and column holding a non-missing cell.
// Both are -1 for an empty grid.
func findDataBounds(grid [][]models.Cell) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1

	for rowIdx, row := range grid {
		for colIdx, cell := range row {
			if !cell.IsMissing() {
				maxRow = rowIdx
				if colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// isBlankRow reports whether every cell of the row is missing.
func isBlankRow(row []models.Cell) bool {
	for _, cell := range row {
		if !cell.IsMissing() {
			return false
		}
	}
	return true
}
