package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	header := time.Date(2024, 7, 1, 12, 30, 0, 0, time.UTC)
	f.SetCellValue(sheetName, "A1", "ID")
	f.SetCellValue(sheetName, "B1", header)
	f.SetCellValue(sheetName, "C1", "10-May")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "C2", "Text")
	f.SetCellValue(sheetName, "A3", true)

	// Save to temp file
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	// Open and extract
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	grid, err := ExtractCells(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	if len(grid) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(grid))
	}

	// Header row
	if got := grid[0][0]; got != models.Text("ID") {
		t.Errorf("Expected Text(ID), got %+v", got)
	}
	if got := grid[0][1]; got.Kind != models.KindDateTime || !got.Time.Equal(header) {
		t.Errorf("Expected DateTime(%v), got %+v", header, got)
	}
	if got := grid[0][2]; got != models.Text("10-May") {
		t.Errorf("Expected Text(10-May), got %+v", got)
	}

	// Numeric values
	if got := grid[1][0]; got != models.Integer(100) {
		t.Errorf("Expected Integer(100), got %+v", got)
	}
	if got := grid[1][1]; got != models.Float(200.5) {
		t.Errorf("Expected Float(200.5), got %+v", got)
	}
	if got := grid[1][2]; got != models.Text("Text") {
		t.Errorf("Expected Text(Text), got %+v", got)
	}

	// Booleans read as 0/1
	if got := grid[2][0]; got != models.Integer(1) {
		t.Errorf("Expected Integer(1), got %+v", got)
	}
}

func TestExtractCellsCustomDateFormat(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	code := "dd.mm.yyyy"
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &code})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	percent, err := f.NewStyle(&excelize.Style{NumFmt: 10})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	// 45474 is 2024-07-01 in the 1900 date system
	f.SetCellValue(sheetName, "A1", 45474)
	f.SetCellStyle(sheetName, "A1", "A1", style)
	f.SetCellValue(sheetName, "B1", 0.055)
	f.SetCellStyle(sheetName, "B1", "B1", percent)

	tmpFile := filepath.Join(t.TempDir(), "custom.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	grid, err := ExtractCells(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	want := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	if got := grid[0][0]; got.Kind != models.KindDateTime || !got.Time.Equal(want) {
		t.Errorf("Expected DateTime(%v), got %+v", want, got)
	}
	if got := grid[0][1]; got != models.Float(0.055) {
		t.Errorf("Expected Float(0.055) for percent format, got %+v", got)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Cell
	}{
		{"123", models.Integer(123)},
		{"123.45", models.Float(123.45)},
		{"-100", models.Integer(-100)},
		{"hello", models.Text("hello")},
		{"NaN", models.Text("NaN")},
		{"Inf", models.Text("Inf")},
		{"", models.Missing()},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}
