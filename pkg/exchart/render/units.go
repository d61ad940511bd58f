// Package render draws charts with gonum/plot and writes them out as images
// and as pages of a combined PDF document.
package render

import "gonum.org/v1/plot/vg"

// Size is the pixel size and resolution of a rendered chart.
// 1 inch = 72 points, and at DPI dots per inch a pixel is 72/DPI points,
// so a W×H pixel image at DPI prints at W/DPI × H/DPI inches.
type Size struct {
	// Width is the image width in pixels.
	Width int
	// Height is the image height in pixels.
	Height int
	// DPI is the image resolution in dots per inch.
	DPI int
}

// PixelsToLength converts a pixel count at the given resolution to a vg
// length.
func PixelsToLength(px, dpi int) vg.Length {
	return vg.Length(px) / vg.Length(dpi) * vg.Inch
}

// W returns the chart width as a vg length.
func (s Size) W() vg.Length { return PixelsToLength(s.Width, s.DPI) }

// H returns the chart height as a vg length.
func (s Size) H() vg.Length { return PixelsToLength(s.Height, s.DPI) }
