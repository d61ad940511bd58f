package series

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// Coerce returns the numeric value of a cell. Text is parsed after trimming;
// missing cells, datetimes, unparsable text and non-finite numbers report
// false.
func Coerce(c models.Cell) (float64, bool) {
	var v float64
	switch c.Kind {
	case models.KindInteger:
		v = float64(c.Int)
	case models.KindFloat:
		v = c.Float
	case models.KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return 0, false
		}
		v = f
	default:
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Points pairs every value column of the row with its label, in column order,
// keeping only cells that coerce to a number. labels must be aligned with
// cls.ValueIndexes.
func Points(row models.Row, cls Classification, labels []string) []models.Point {
	var points []models.Point
	for i, idx := range cls.ValueIndexes {
		v, ok := Coerce(row.Get(idx))
		if !ok {
			continue
		}
		points = append(points, models.Point{Label: labels[i], Value: v})
	}
	return points
}

// RowID returns the sanitized identifier of the row, or UnknownID when the
// identifier column is absent.
func RowID(row models.Row, cls Classification) string {
	if !cls.HasID() {
		return UnknownID
	}
	return SanitizeID(row.Get(cls.IDIndex))
}
