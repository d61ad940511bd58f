package series

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// DateFormat is one accepted spelling of a column date.
type DateFormat struct {
	// Name is the human-readable pattern.
	Name string
	// Layout is the Go reference layout. Day and month accept one or two
	// digits; month names match case-insensitively.
	Layout string
	// HasYear reports whether the pattern carries a year.
	HasYear bool
}

// DateFormats are tried in order; the first successful parse wins.
var DateFormats = []DateFormat{
	{Name: "YYYY-MM-DD", Layout: "2006-1-2", HasYear: true},
	{Name: "DD.MM.YYYY", Layout: "2.1.2006", HasYear: true},
	{Name: "MM/DD/YYYY", Layout: "1/2/2006", HasYear: true},
	{Name: "DD/MM/YYYY", Layout: "2/1/2006", HasYear: true},
	{Name: "DD-Mon", Layout: "2-Jan", HasYear: false},
	{Name: "DD-Mon-YYYY", Layout: "2-Jan-2006", HasYear: true},
	{Name: "Mon-DD-YYYY", Layout: "Jan-2-2006", HasYear: true},
	{Name: "DD.Mon.YYYY", Layout: "2.Jan.2006", HasYear: true},
}

const (
	// canonicalLayout is the label of a date with a year.
	canonicalLayout = "2006-01-02"
	// compactLayout is the label of a date without a year.
	compactLayout = "02-Jan"
)

// Label returns the display label of a column header with any time of day
// removed. It never fails: unrecognized headers come back trimmed and
// truncated at the time separator.
func Label(c models.Cell) string {
	if c.Kind == models.KindDateTime {
		return c.Time.Format(canonicalLayout)
	}
	return LabelString(c.String())
}

// LabelString is Label for a header already rendered as text.
func LabelString(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	} else if i := strings.IndexByte(s, 'T'); i >= 0 && utf8.RuneCountInString(s) > 10 {
		s = s[:i]
	}

	for _, df := range DateFormats {
		t, err := time.Parse(df.Layout, s)
		if err != nil {
			continue
		}
		if df.HasYear {
			return t.Format(canonicalLayout)
		}
		return t.Format(compactLayout)
	}
	return s
}

// ColumnLabel returns the label of a table column. Datetime headers use
// their value; every other column uses its name, which differs from the
// header text only for unnamed or repeated headers.
func ColumnLabel(col models.Column) string {
	if col.Header.Kind == models.KindDateTime {
		return Label(col.Header)
	}
	return LabelString(col.Name)
}

// Labels returns the labels of the columns at the given positions.
func Labels(columns []models.Column, indexes []int) []string {
	labels := make([]string, len(indexes))
	for i, idx := range indexes {
		labels[i] = ColumnLabel(columns[idx])
	}
	return labels
}
