package models

// Point is one sample on a chart: a column label and its value.
type Point struct {
	// Label is the normalized column label shown on the X axis.
	Label string `json:"label"`
	// Value is the numeric percentage.
	Value float64 `json:"value"`
}

// Chart describes the line chart rendered for one row.
type Chart struct {
	// ID is the sanitized row identifier.
	ID string `json:"id"`
	// Row is the spreadsheet row index the chart was built from.
	Row int `json:"row"`
	// Title is the chart title.
	Title string `json:"title"`
	// XAxisTitle is the X-axis title.
	XAxisTitle string `json:"x_axis_title"`
	// YAxisTitle is the Y-axis title.
	YAxisTitle string `json:"y_axis_title"`
	// Legend is the legend entry naming the series.
	Legend string `json:"legend"`
	// Points are the samples in column order.
	Points []Point `json:"points"`
}

// Labels returns the X-axis labels of the chart in order.
func (c *Chart) Labels() []string {
	labels := make([]string, len(c.Points))
	for i, p := range c.Points {
		labels[i] = p.Label
	}
	return labels
}

// Values returns the Y values of the chart in order.
func (c *Chart) Values() []float64 {
	values := make([]float64, len(c.Points))
	for i, p := range c.Points {
		values[i] = p.Value
	}
	return values
}
