package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/xuri/excelize/v2"
)

// cellReader types the cells of one xlsx sheet.
type cellReader struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	// dateStyles caches whether a style index carries a date number format.
	dateStyles map[int]bool
}

func newCellReader(f *excelize.File, sheet string) *cellReader {
	r := &cellReader{
		f:          f,
		sheet:      sheet,
		dateStyles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	return r
}

// ExtractCells reads the sheet into a grid of typed cells.
// Raw (unformatted) values are used so numbers keep full precision.
func ExtractCells(f *excelize.File, sheetName string) ([][]models.Cell, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	r := newCellReader(f, sheetName)
	grid := make([][]models.Cell, len(rows))
	for rowIdx, row := range rows {
		cells := make([]models.Cell, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cells[colIdx] = r.typed(cellName, raw)
		}
		grid[rowIdx] = cells
	}

	return grid, nil
}

// typed converts a raw cell value into a Cell using the cell's stored type
// and number format.
func (r *cellReader) typed(cellName, raw string) models.Cell {
	typ, err := r.f.GetCellType(r.sheet, cellName)
	if err != nil {
		return parseValue(raw)
	}

	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.Text(raw)
	case excelize.CellTypeError:
		return models.Missing()
	case excelize.CellTypeBool:
		if raw == "1" || strings.EqualFold(raw, "true") {
			return models.Integer(1)
		}
		return models.Integer(0)
	case excelize.CellTypeDate:
		// ISO 8601 value stored with t="d"
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly} {
			if t, err := time.Parse(layout, raw); err == nil {
				return models.DateTime(t)
			}
		}
		return models.Text(raw)
	}

	v := parseValue(raw)
	if v.Kind != models.KindInteger && v.Kind != models.KindFloat {
		return v
	}
	if !r.isDateCell(cellName) {
		return v
	}
	serial := v.Float
	if v.Kind == models.KindInteger {
		serial = float64(v.Int)
	}
	t, err := excelize.ExcelDateToTime(serial, r.date1904)
	if err != nil {
		return v
	}
	return models.DateTime(t.Round(time.Second))
}

// isDateCell reports whether the cell's number format renders a date or time.
func (r *cellReader) isDateCell(cellName string) bool {
	styleIdx, err := r.f.GetCellStyle(r.sheet, cellName)
	if err != nil {
		return false
	}
	if isDate, ok := r.dateStyles[styleIdx]; ok {
		return isDate
	}

	isDate := false
	if style, err := r.f.GetStyle(styleIdx); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = IsDateFormatCode(*style.CustomNumFmt)
		} else {
			isDate = IsBuiltInDateFormat(style.NumFmt)
		}
	}
	r.dateStyles[styleIdx] = isDate
	return isDate
}

// parseValue attempts to parse a string value as a number.
// Returns an Integer cell for integers, a Float cell for finite decimals,
// a Missing cell for the empty string, or a Text cell otherwise.
func parseValue(s string) models.Cell {
	if s == "" {
		return models.Missing()
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Integer(i)
	}
	// Try float; NaN and Inf spellings stay text
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return models.Float(f)
	}
	// Return as string
	return models.Text(s)
}
