package series

import (
	"reflect"
	"testing"
	"time"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		header   models.Cell
		expected string
	}{
		{models.DateTime(time.Date(2024, 7, 1, 12, 30, 0, 0, time.UTC)), "2024-07-01"},
		{models.Text("2024-07-01 12:30:00"), "2024-07-01"},
		{models.Text("10-May 14:05"), "10-May"},
		{models.Text("01.07.2024 12:30"), "2024-07-01"},
		{models.Text("2024-07-01T12:30:00"), "2024-07-01"},
		{models.Text("  5-may "), "05-May"},
		{models.Text("07/15/2024"), "2024-07-15"},
		{models.Text("15/07/2024"), "2024-07-15"},
		{models.Text("03/04/2024"), "2024-03-04"},
		{models.Text("10-May-2024"), "2024-05-10"},
		{models.Text("May-10-2024"), "2024-05-10"},
		{models.Text("10.May.2024"), "2024-05-10"},
		{models.Text("31-Feb"), "31-Feb"},
		{models.Text("Week 1"), "Week"},
		{models.Text("Total"), "Total"},
		{models.Integer(2024), "2024"},
		{models.Float(45474.5), "45474.5"},
		{models.Missing(), ""},
	}

	for _, tt := range tests {
		result := Label(tt.header)
		if result != tt.expected {
			t.Errorf("Label(%+v) = %q, expected %q", tt.header, result, tt.expected)
		}
		if again := LabelString(result); again != result {
			t.Errorf("LabelString(%q) = %q, expected the label to be stable", result, again)
		}
		if second := Label(tt.header); second != result {
			t.Errorf("Label(%+v) not deterministic: %q then %q", tt.header, result, second)
		}
	}
}

func TestDateFormatsOrder(t *testing.T) {
	names := make([]string, len(DateFormats))
	for i, df := range DateFormats {
		names[i] = df.Name
	}
	expected := []string{
		"YYYY-MM-DD", "DD.MM.YYYY", "MM/DD/YYYY", "DD/MM/YYYY",
		"DD-Mon", "DD-Mon-YYYY", "Mon-DD-YYYY", "DD.Mon.YYYY",
	}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("DateFormats = %q, expected %q", names, expected)
	}
}

func TestDateFormatsParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"YYYY-MM-DD", "2024-07-01"},
		{"DD.MM.YYYY", "01.07.2024"},
		{"MM/DD/YYYY", "07/01/2024"},
		{"DD/MM/YYYY", "31/01/2024"},
		{"DD-Mon", "10-May"},
		{"DD-Mon-YYYY", "10-May-2024"},
		{"Mon-DD-YYYY", "May-10-2024"},
		{"DD.Mon.YYYY", "10.May.2024"},
	}

	for _, tt := range tests {
		var matched string
		for _, df := range DateFormats {
			if _, err := time.Parse(df.Layout, tt.input); err == nil {
				matched = df.Name
				break
			}
		}
		if matched != tt.name {
			t.Errorf("%q matched %q, expected %q", tt.input, matched, tt.name)
		}
	}
}

func TestColumnLabel(t *testing.T) {
	tests := []struct {
		col      models.Column
		expected string
	}{
		{models.Column{Name: "2024-07-01 00:00:00", Header: models.DateTime(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))}, "2024-07-01"},
		{models.Column{Name: "10-May", Header: models.Text("10-May")}, "10-May"},
		{models.Column{Name: "10-May.1", Header: models.Text("10-May")}, "10-May.1"},
		{models.Column{Name: "Unnamed: 3"}, "Unnamed:"},
	}

	for _, tt := range tests {
		result := ColumnLabel(tt.col)
		if result != tt.expected {
			t.Errorf("ColumnLabel(%q) = %q, expected %q", tt.col.Name, result, tt.expected)
		}
	}
}

func TestLabels(t *testing.T) {
	columns := []models.Column{
		{Name: "ID", Header: models.Text("ID")},
		{Name: "10-May 14:05", Header: models.Text("10-May 14:05")},
		{Name: "PL_maydon", Header: models.Text("PL_maydon")},
		{Name: "2024-07-01 12:30:00", Header: models.Text("2024-07-01 12:30:00")},
	}

	result := Labels(columns, []int{1, 3})
	expected := []string{"10-May", "2024-07-01"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Labels() = %q, expected %q", result, expected)
	}
}
