package parser

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/shakinm/xlsReader/xls"
	"github.com/shakinm/xlsReader/xls/record"
	"github.com/shakinm/xlsReader/xls/structure"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/xuri/excelize/v2"
)

// readXLS reads the named sheet (or the first one) of a legacy BIFF workbook.
// Cells keep their raw numeric values and are typed from their XF number
// format; formulas contribute their cached results.
func readXLS(path, sheetName string) (sheet string, grid [][]models.Cell, err error) {
	// the container and record parsers index without bounds checks on
	// malformed files
	defer func() {
		if r := recover(); r != nil {
			sheet, grid = "", nil
			err = fmt.Errorf("%w: %v", ErrInvalidWorkbook, r)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	stream, err := workbookStream(data)
	if err != nil {
		return "", nil, err
	}
	globals, err := readGlobals(stream)
	if err != nil {
		return "", nil, err
	}

	wb, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	if wb.GetNumberSheets() == 0 {
		return "", nil, fmt.Errorf("%w: no worksheets", ErrInvalidWorkbook)
	}

	sheets := wb.GetSheets()
	names := make([]string, len(sheets))
	for i := range sheets {
		names[i] = sheets[i].GetName()
	}
	sheet, err = pickSheet(names, sheetName)
	if err != nil {
		return "", nil, err
	}
	idx := slices.Index(names, sheet)
	ws, err := wb.GetSheet(idx)
	if err != nil {
		return "", nil, err
	}

	var formulas map[cellPos]formulaCell
	if idx < len(globals.sheets) {
		formulas, err = readFormulas(stream, globals.sheets[idx], globals.biff8)
		if err != nil {
			return "", nil, err
		}
	}

	r := newXLSCellReader(workbookFormats{wb: &wb}, globals.date1904)
	grid = make([][]models.Cell, ws.GetNumberRows())
	for rowIdx := range grid {
		row, err := ws.GetRow(rowIdx)
		if err != nil {
			return "", nil, err
		}
		cols := row.GetCols()
		cells := make([]models.Cell, len(cols))
		for colIdx, c := range cols {
			cells[colIdx] = r.typed(c)
		}
		grid[rowIdx] = cells
	}

	for pos, fc := range formulas {
		for len(grid) <= pos.row {
			grid = append(grid, nil)
		}
		row := grid[pos.row]
		if len(row) <= pos.col {
			row = append(row, make([]models.Cell, pos.col+1-len(row))...)
		}
		row[pos.col] = r.formula(fc)
		grid[pos.row] = row
	}

	return sheet, grid, nil
}

// numberFormats resolves the number format behind an XF index.
type numberFormats interface {
	numFmt(xf int) (id int, code string)
}

// workbookFormats reads number formats from the XF and FORMAT records.
type workbookFormats struct {
	wb *xls.Workbook
}

func (f workbookFormats) numFmt(xf int) (id int, code string) {
	// short XF tables make GetXFbyIndex panic
	defer func() {
		if recover() != nil {
			id, code = 0, ""
		}
	}()

	ext := f.wb.GetXFbyIndex(xf)
	id = ext.GetFormatIndex()
	format := f.wb.GetFormatByIndex(id)
	return id, format.String()
}

// xlsCellReader types the cells of one BIFF sheet.
type xlsCellReader struct {
	formats  numberFormats
	date1904 bool
	// dateXFs caches whether an XF index carries a date number format.
	dateXFs map[int]bool
}

func newXLSCellReader(formats numberFormats, date1904 bool) *xlsCellReader {
	return &xlsCellReader{
		formats:  formats,
		date1904: date1904,
		dateXFs:  make(map[int]bool),
	}
}

// typed converts one cell record into a Cell.
func (r *xlsCellReader) typed(c structure.CellData) models.Cell {
	switch c.(type) {
	case *record.Number, *record.Rk:
		return r.number(c.GetFloat64(), c.GetXFIndex())
	case *record.LabelSSt, *record.LabelBIFF8, *record.LabelBIFF5:
		return textCell(c.GetString())
	case *record.BoolErr:
		switch c.GetString() {
		case "TRUE":
			return models.Integer(1)
		case "FALSE":
			return models.Integer(0)
		}
		// error values such as #DIV/0!
		return models.Missing()
	}
	return models.Missing()
}

// formula converts a cached formula result into a Cell.
func (r *xlsCellReader) formula(fc formulaCell) models.Cell {
	switch fc.kind {
	case formulaNumber:
		return r.number(fc.num, fc.xf)
	case formulaText:
		return textCell(fc.text)
	case formulaBool:
		return models.Integer(int64(fc.num))
	}
	return models.Missing()
}

// number types a raw numeric value: a datetime when its XF carries a date
// format, otherwise an integer or a float.
func (r *xlsCellReader) number(v float64, xf int) models.Cell {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return models.Missing()
	}
	if r.isDateXF(xf) {
		if t, err := excelize.ExcelDateToTime(v, r.date1904); err == nil {
			return models.DateTime(t.Round(time.Second))
		}
	}
	return parseValue(strconv.FormatFloat(v, 'f', -1, 64))
}

// isDateXF reports whether the XF's number format renders a date or time.
func (r *xlsCellReader) isDateXF(xf int) bool {
	if isDate, ok := r.dateXFs[xf]; ok {
		return isDate
	}

	id, code := r.formats.numFmt(xf)
	isDate := IsBuiltInDateFormat(id)
	if code != "" {
		isDate = IsDateFormatCode(code)
	}
	r.dateXFs[xf] = isDate
	return isDate
}

func textCell(s string) models.Cell {
	if s == "" {
		return models.Missing()
	}
	return models.Text(s)
}
