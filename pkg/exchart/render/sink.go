package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

// Supported image formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpg"
	FormatTIFF = "tiff"
)

// ErrUnsupportedImageFormat is returned for an image format other than the
// supported ones.
var ErrUnsupportedImageFormat = errors.New("unsupported image format")

// NormalizeFormat maps an image format name onto one of the supported
// formats.
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "", "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedImageFormat, format)
}

// ImageName returns the file name of the chart image for id.
func ImageName(id, format string) string {
	return "chart_ID_" + id + "." + format
}

// Sink writes each chart as a standalone image and appends it as a page of a
// single PDF document. The document is written by Close.
type Sink struct {
	dir     string
	format  string
	size    Size
	docPath string
	doc     *vgpdf.Canvas
	file    *os.File
	charts  int
	closed  bool
}

// NewSink creates the output directory and the document file.
func NewSink(dir, docPath, format string, size Size) (*Sink, error) {
	format, err := NormalizeFormat(format)
	if err != nil {
		return nil, err
	}
	if size.Width <= 0 || size.Height <= 0 || size.DPI <= 0 {
		return nil, fmt.Errorf("invalid chart size %dx%d at %d dpi", size.Width, size.Height, size.DPI)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	if parent := filepath.Dir(docPath); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return nil, fmt.Errorf("create document directory: %w", err)
		}
	}
	f, err := os.Create(docPath)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	return &Sink{
		dir:     dir,
		format:  format,
		size:    size,
		docPath: docPath,
		doc:     vgpdf.New(size.W(), size.H()),
		file:    f,
	}, nil
}

// Write renders p into the image for id and onto a new page of the document.
// An existing image with the same name is overwritten. It returns the image
// path.
func (s *Sink) Write(id string, p *plot.Plot) (string, error) {
	if s.closed {
		return "", errors.New("sink is closed")
	}

	img := vgimg.NewWith(vgimg.UseWH(s.size.W(), s.size.H()), vgimg.UseDPI(s.size.DPI))
	p.Draw(draw.New(img))

	path := filepath.Join(s.dir, ImageName(id, s.format))
	if err := writeImage(path, s.format, img); err != nil {
		return "", err
	}

	if s.charts > 0 {
		s.doc.NextPage()
	}
	p.Draw(draw.New(s.doc))
	s.charts++

	return path, nil
}

func writeImage(path, format string, img *vgimg.Canvas) (err error) {
	var w io.WriterTo
	switch format {
	case FormatJPEG:
		w = vgimg.JpegCanvas{Canvas: img}
	case FormatTIFF:
		w = vgimg.TiffCanvas{Canvas: img}
	default:
		w = vgimg.PngCanvas{Canvas: img}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close image: %w", cerr)
		}
	}()

	if _, err := w.WriteTo(f); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}

// Charts returns the number of charts written so far.
func (s *Sink) Charts() int {
	return s.charts
}

// Pages returns the number of pages the document holds. A PDF has at least
// one page, so the document is a single blank page until a chart is written.
func (s *Sink) Pages() int {
	return max(s.charts, 1)
}

// Path returns the document path.
func (s *Sink) Path() string {
	return s.docPath
}

// Close writes the document and closes its file. It is safe to call more than
// once; later calls are no-ops.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	_, werr := s.doc.WriteTo(s.file)
	if werr != nil {
		werr = fmt.Errorf("write document: %w", werr)
	}
	cerr := s.file.Close()
	if cerr != nil {
		cerr = fmt.Errorf("close document: %w", cerr)
	}
	return errors.Join(werr, cerr)
}
