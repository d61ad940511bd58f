package main

import (
	"github.com/spf13/cobra"
	"github.com/ukaji3/exchart-go/pkg/exchart"
)

// resolveOptions layers the configuration sources: defaults, the TOML file,
// EXCHART_* variables, explicitly set flags and finally the positional input.
func resolveOptions(cmd *cobra.Command, f *cliFlags, args []string) (exchart.Options, error) {
	opts := exchart.DefaultOptions()
	if err := opts.LoadFile(f.config); err != nil {
		return exchart.Options{}, err
	}
	if err := opts.ApplyEnv(); err != nil {
		return exchart.Options{}, err
	}

	applyFlag(cmd, "sheet", &opts.Sheet, f.sheet)
	applyFlag(cmd, "id-column", &opts.IDColumn, f.idColumn)
	applyFlag(cmd, "skip", &opts.SkipColumns, f.skip)
	applyFlag(cmd, "output-dir", &opts.OutputDir, f.outputDir)
	applyFlag(cmd, "pdf", &opts.Document, f.document)
	applyFlag(cmd, "format", &opts.ImageFormat, f.format)
	applyFlag(cmd, "width", &opts.Width, f.width)
	applyFlag(cmd, "height", &opts.Height, f.height)
	applyFlag(cmd, "dpi", &opts.DPI, f.dpi)
	applyFlag(cmd, "title", &opts.Title, f.title)
	applyFlag(cmd, "x-title", &opts.XAxisTitle, f.xTitle)
	applyFlag(cmd, "y-title", &opts.YAxisTitle, f.yTitle)

	if len(args) == 1 {
		opts.Input = args[0]
	}
	return opts, nil
}

func applyFlag[T any](cmd *cobra.Command, name string, target *T, value T) {
	if !cmd.Flags().Changed(name) {
		return
	}
	*target = value
}
