package parser

import (
	"fmt"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/xuri/excelize/v2"
)

// readXLSX reads the named sheet (or the first one) of an Office Open XML
// workbook.
func readXLSX(path, sheetName string) (string, [][]models.Cell, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	sheet, err := pickSheet(f.GetSheetList(), sheetName)
	if err != nil {
		return "", nil, err
	}

	grid, err := ExtractCells(f, sheet)
	if err != nil {
		return "", nil, err
	}
	return sheet, grid, nil
}

// pickSheet returns sheetName if the workbook has it, or the first sheet
// when sheetName is empty.
func pickSheet(sheets []string, sheetName string) (string, error) {
	if len(sheets) == 0 {
		return "", ErrEmptySheet
	}
	if sheetName == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == sheetName {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
}
