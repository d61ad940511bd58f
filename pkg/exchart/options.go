// Package exchart turns a spreadsheet of per-entity percentages recorded in
// date-labeled columns into one line chart per row, written as individual
// images and as pages of a combined PDF document.
package exchart

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/ukaji3/exchart-go/pkg/exchart/render"
)

// EnvPrefix is the prefix of environment variables read by ApplyEnv.
const EnvPrefix = "EXCHART"

// IDPlaceholder is replaced by the sanitized row identifier in Title.
const IDPlaceholder = "{id}"

// ProgressFunc is called after each data row with the number of rows handled
// so far and the total number of rows.
type ProgressFunc func(done, total int)

// Options configures chart generation.
type Options struct {
	// Input is the path of the .xls or .xlsx workbook.
	Input string `toml:"input" validate:"required"`
	// Sheet selects the sheet by name. Empty means the first sheet.
	Sheet string `toml:"sheet"`
	// IDColumn is the header of the column holding row identifiers.
	IDColumn string `toml:"id_column" split_words:"true" validate:"required"`
	// SkipColumns lists metadata columns that are never plotted.
	SkipColumns []string `toml:"skip_columns" split_words:"true"`
	// OutputDir receives one image per rendered row.
	OutputDir string `toml:"output_dir" split_words:"true" validate:"required"`
	// Document is the path of the combined multi-page PDF.
	Document string `toml:"document" validate:"required"`
	// ImageFormat is png, jpg or tiff.
	ImageFormat string `toml:"image_format" split_words:"true" validate:"oneof=png jpg jpeg tif tiff"`
	// Width and Height are the chart size in pixels at DPI.
	Width  int `toml:"width" validate:"gt=0,lte=20000"`
	Height int `toml:"height" validate:"gt=0,lte=20000"`
	DPI    int `toml:"dpi" validate:"gt=0,lte=2400"`
	// Title is the chart title; IDPlaceholder is replaced by the row identifier.
	Title      string `toml:"title" validate:"required"`
	XAxisTitle string `toml:"x_axis_title" split_words:"true"`
	YAxisTitle string `toml:"y_axis_title" split_words:"true"`

	// Logger receives diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger `toml:"-" ignored:"true" validate:"-"`
	// Progress, if set, is called once per data row.
	Progress ProgressFunc `toml:"-" ignored:"true" validate:"-"`
}

// DefaultOptions returns the default generation options.
func DefaultOptions() Options {
	return Options{
		Input:       "Exelll.xls",
		IDColumn:    "ID",
		SkipColumns: []string{"PL_maydon"},
		OutputDir:   "charts",
		Document:    "all_charts.pdf",
		ImageFormat: render.FormatPNG,
		Width:       1170,
		Height:      650,
		DPI:         130,
		Title:       "Chiziqli Diagramma: ID " + IDPlaceholder,
		XAxisTitle:  "Sana",
		YAxisTitle:  "Foiz",
	}
}

var validate = validator.New()

// Validate checks the options and normalizes the image format.
func (o *Options) Validate() error {
	o.ImageFormat = strings.ToLower(strings.TrimPrefix(o.ImageFormat, "."))
	if err := validate.Struct(o); err != nil {
		return NewConfigError("validation", err)
	}
	format, err := render.NormalizeFormat(o.ImageFormat)
	if err != nil {
		return NewConfigError("validation", err)
	}
	o.ImageFormat = format
	return nil
}

// LoadFile overlays the keys present in the TOML file at path onto o. A
// missing file is not an error; unknown keys are.
func (o *Options) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return NewConfigError(path, err)
	}
	md, err := toml.DecodeFile(path, o)
	if err != nil {
		return NewConfigError(path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return NewConfigError(path, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", ")))
	}
	return nil
}

// ApplyEnv overlays EXCHART_* environment variables onto o. Unset variables
// leave the current values untouched.
func (o *Options) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, o); err != nil {
		return NewConfigError("environment", err)
	}
	return nil
}

// ChartTitle returns the title for the row identified by id.
func (o Options) ChartTitle(id string) string {
	return strings.ReplaceAll(o.Title, IDPlaceholder, id)
}

func (o Options) size() render.Size {
	return render.Size{Width: o.Width, Height: o.Height, DPI: o.DPI}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
