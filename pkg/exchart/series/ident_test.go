package series

import (
	"math"
	"testing"
	"time"
	"unicode"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

func TestSanitizeID(t *testing.T) {
	tests := []struct {
		input    models.Cell
		expected string
	}{
		{models.Float(8.0), "8"},
		{models.Float(8.5), "8_5"},
		{models.Float(-3.25), "-3_25"},
		{models.Float(1e20), "100000000000000000000"},
		{models.Float(math.NaN()), "unknown"},
		{models.Float(math.Inf(1)), "inf"},
		{models.Float(math.Inf(-1)), "-inf"},
		{models.Integer(42), "42"},
		{models.Integer(-7), "-7"},
		{models.Missing(), "unknown"},
		{models.Text("Plot #12 "), "Plot_12"},
		{models.Text("  A-7  "), "A-7"},
		{models.Text("a/b\\c:d"), "abcd"},
		{models.Text("   "), "unknown"},
		{models.Text("###"), "unknown"},
		{models.Text("Dala 3 (yangi)"), "Dala_3_yangi"},
		{models.DateTime(time.Date(2024, 7, 1, 9, 5, 0, 0, time.UTC)), "2024-07-01_090500"},
	}

	for _, tt := range tests {
		result := SanitizeID(tt.input)
		if result != tt.expected {
			t.Errorf("SanitizeID(%+v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestSanitizeIDNormalizesUnicode(t *testing.T) {
	composed := SanitizeID(models.Text("Jos\u00e9"))
	decomposed := SanitizeID(models.Text("Jose\u0301"))
	if composed != decomposed {
		t.Errorf("SanitizeID: composed %q != decomposed %q", composed, decomposed)
	}
	if composed != "Jos\u00e9" {
		t.Errorf("SanitizeID(José) = %q, expected %q", composed, "Jos\u00e9")
	}
}

func TestSanitizeIDIsSafe(t *testing.T) {
	inputs := []models.Cell{
		models.Missing(),
		models.Text(""),
		models.Text("\t\n"),
		models.Text("../../etc/passwd"),
		models.Text("a b\tc"),
		models.Text("100%"),
		models.Text("日本 語"),
		models.Float(0.1),
		models.Float(-0.0001),
		models.Integer(math.MinInt64),
		models.DateTime(time.Time{}),
	}

	for _, in := range inputs {
		result := SanitizeID(in)
		if result == "" {
			t.Errorf("SanitizeID(%+v) returned an empty string", in)
			continue
		}
		for _, r := range result {
			if !isSafeRune(r) {
				t.Errorf("SanitizeID(%+v) = %q contains unsafe rune %q", in, result, r)
			}
		}
	}
}

func isSafeRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}
