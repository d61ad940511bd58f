package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoPoints indicates a chart without samples.
var ErrNoPoints = errors.New("chart has no points")

// rotateAfter is the label count above which X tick labels are slanted.
const rotateAfter = 8

var (
	seriesColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	gridColor   = color.RGBA{R: 128, G: 128, B: 128, A: 90}
)

// Plot builds the line chart of c: one point per sample on a nominal X axis,
// circle markers, each point annotated with its value as a percentage, a light
// grid and a legend entry.
func Plot(c *models.Chart) (*plot.Plot, error) {
	if len(c.Points) == 0 {
		return nil, ErrNoPoints
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.Title.TextStyle.Font.Size = vg.Points(13)
	p.X.Label.Text = c.XAxisTitle
	p.Y.Label.Text = c.YAxisTitle

	xys := make(plotter.XYs, len(c.Points))
	annotations := make([]string, len(c.Points))
	for i, pt := range c.Points {
		xys[i].X = float64(i)
		xys[i].Y = pt.Value
		annotations[i] = fmt.Sprintf("%.2f%%", pt.Value)
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, err
	}
	line.Color = seriesColor
	line.Width = vg.Points(1.5)
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Color = seriesColor
	points.GlyphStyle.Radius = vg.Points(3)
	p.Add(line, points)

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: annotations})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(8)
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
	}
	labels.Offset = vg.Point{Y: vg.Points(4)}
	p.Add(labels)

	p.Legend.Add(c.Legend, line, points)
	p.Legend.Top = true

	p.NominalX(c.Labels()...)
	if len(c.Points) > rotateAfter {
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}
	p.X.Min = -0.5
	p.X.Max = float64(len(c.Points)) - 0.5
	p.Y.Min, p.Y.Max = valueRange(c.Values())

	return p, nil
}

// valueRange pads the data range so annotations above the highest point stay
// inside the plot area.
func valueRange(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.1, 1)
	}
	return lo - pad, hi + 1.5*pad
}
