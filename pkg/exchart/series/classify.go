// Package series turns table rows into chart series: it picks the value
// columns, derives their date labels, sanitizes row identifiers and extracts
// the numeric points of each row.
package series

// Classification partitions the columns of a table.
type Classification struct {
	// IDIndex is the position of the identifier column, or -1 when the table
	// has no such column.
	IDIndex int
	// ValueIndexes are the positions of the value columns in table order.
	ValueIndexes []int
	// ValueNames are the names of the value columns in table order.
	ValueNames []string
}

// HasID reports whether the identifier column was found.
func (c Classification) HasID() bool { return c.IDIndex >= 0 }

// Classify splits columns into the identifier column, the skipped columns and
// the value columns. Value columns keep their source order, which becomes the
// X-axis order of every chart.
func Classify(columns []string, idColumn string, skip []string) Classification {
	skipped := make(map[string]bool, len(skip)+1)
	for _, name := range skip {
		skipped[name] = true
	}
	skipped[idColumn] = true

	c := Classification{IDIndex: -1}
	for i, name := range columns {
		if name == idColumn && c.IDIndex < 0 {
			c.IDIndex = i
		}
		if skipped[name] {
			continue
		}
		c.ValueIndexes = append(c.ValueIndexes, i)
		c.ValueNames = append(c.ValueNames, name)
	}
	return c
}
