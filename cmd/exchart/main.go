// Package main provides the CLI entry point for exchart.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exchart-go/pkg/exchart"
)

const defaultConfigFile = "exchart.toml"

// cliFlags holds the raw flag values of one invocation.
type cliFlags struct {
	config     string
	sheet      string
	idColumn   string
	skip       []string
	outputDir  string
	document   string
	format     string
	width      int
	height     int
	dpi        int
	title      string
	xTitle     string
	yTitle     string
	logLevel   string
	logFormat  string
	noProgress bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &cliFlags{}
	defaults := exchart.DefaultOptions()

	rootCmd := &cobra.Command{
		Use:   "exchart [input.xls|input.xlsx]",
		Short: "Render one line chart per spreadsheet row",
		Long: `exchart reads a sheet whose rows are entities and whose columns hold
percentages recorded on different dates. Every row with at least one numeric
value becomes a line chart, saved as an image and as a page of one combined PDF.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	bindFlags(rootCmd, f, defaults)

	return rootCmd
}

func bindFlags(cmd *cobra.Command, f *cliFlags, defaults exchart.Options) {
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", defaultConfigFile, "TOML config file (ignored if missing)")
	fl.StringVarP(&f.sheet, "sheet", "s", "", "sheet name (default: first sheet)")
	fl.StringVar(&f.idColumn, "id-column", defaults.IDColumn, "header of the identifier column")
	fl.StringSliceVar(&f.skip, "skip", defaults.SkipColumns, "columns never plotted (comma separated)")
	fl.StringVarP(&f.outputDir, "output-dir", "o", defaults.OutputDir, "directory for per-row images")
	fl.StringVar(&f.document, "pdf", defaults.Document, "path of the combined PDF")
	fl.StringVar(&f.format, "format", defaults.ImageFormat, "image format: png, jpg, tiff")
	fl.IntVar(&f.width, "width", defaults.Width, "chart width in pixels")
	fl.IntVar(&f.height, "height", defaults.Height, "chart height in pixels")
	fl.IntVar(&f.dpi, "dpi", defaults.DPI, "chart resolution in dots per inch")
	fl.StringVar(&f.title, "title", defaults.Title, "chart title, "+exchart.IDPlaceholder+" is replaced by the row ID")
	fl.StringVar(&f.xTitle, "x-title", defaults.XAxisTitle, "X axis title")
	fl.StringVar(&f.yTitle, "y-title", defaults.YAxisTitle, "Y axis title")
	fl.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	fl.StringVar(&f.logFormat, "log-format", "text", "log format: text, json")
	fl.BoolVar(&f.noProgress, "no-progress", false, "disable the progress indicator")
}

func run(cmd *cobra.Command, f *cliFlags, args []string) error {
	logger, err := newLogger(f.logLevel, f.logFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	opts, err := resolveOptions(cmd, f, args)
	if err != nil {
		return err
	}
	opts.Logger = logger

	rep := newReporter(cmd.ErrOrStderr(), !f.noProgress)
	opts.Progress = rep.Update

	res, err := exchart.Generate(cmd.Context(), opts)
	rep.Done()
	if err != nil {
		return fmt.Errorf("chart generation failed: %w", err)
	}

	printSummary(cmd.OutOrStdout(), res)
	return nil
}
