package exchart

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/ukaji3/exchart-go/pkg/exchart/parser"
	"github.com/ukaji3/exchart-go/pkg/exchart/render"
	"github.com/ukaji3/exchart-go/pkg/exchart/series"
)

// Generate reads the workbook named by opts.Input and renders one chart per
// data row that has at least one numeric value. Rows are processed in order;
// ctx is checked between rows. The combined document is finalized on every
// return path, holding the pages written so far.
func Generate(ctx context.Context, opts Options) (res *models.Result, err error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger()

	table, err := parser.Load(opts.Input, opts.Sheet)
	if err != nil {
		return nil, err
	}

	cls := series.Classify(table.ColumnNames(), opts.IDColumn, opts.SkipColumns)
	labels := series.Labels(table.Columns, cls.ValueIndexes)
	if !cls.HasID() {
		log.Warn("Identifier column not found, rows will be labeled unknown",
			slog.String("column", opts.IDColumn))
	}
	log.Info("Workbook loaded",
		slog.String("book", table.BookName),
		slog.String("sheet", table.SheetName),
		slog.Int("rows", len(table.Rows)),
		slog.Int("value_columns", len(cls.ValueIndexes)))

	sink, err := render.NewSink(opts.OutputDir, opts.Document, opts.ImageFormat, opts.size())
	if err != nil {
		return nil, err
	}

	res = &models.Result{
		BookName:  table.BookName,
		SheetName: table.SheetName,
		OutputDir: opts.OutputDir,
		Document:  opts.Document,
		Rows:      len(table.Rows),
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
		res.Pages = sink.Pages()
	}()

	total := len(table.Rows)
	for i, row := range table.Rows {
		if err := ctx.Err(); err != nil {
			log.Warn("Generation interrupted",
				slog.Int("rows_done", i),
				slog.Int("rows", total))
			return res, err
		}

		path, err := renderRow(row, cls, labels, opts, sink)
		if err != nil {
			return res, err
		}
		if path == "" {
			res.Skipped++
		} else {
			res.Images = append(res.Images, path)
		}

		if opts.Progress != nil {
			opts.Progress(i+1, total)
		}
	}

	log.Info("Charts generated",
		slog.Int("images", len(res.Images)),
		slog.Int("skipped", res.Skipped),
		slog.String("document", opts.Document))
	return res, nil
}

// renderRow writes the chart of one row. It returns an empty path when the row
// has no usable values.
func renderRow(row models.Row, cls series.Classification, labels []string, opts Options, sink *render.Sink) (string, error) {
	id := series.RowID(row, cls)
	points := series.Points(row, cls, labels)
	if len(points) == 0 {
		opts.logger().Debug("Row skipped, no numeric values",
			slog.Int("row", row.R),
			slog.String("id", id))
		return "", nil
	}

	chart := &models.Chart{
		ID:         id,
		Row:        row.R,
		Title:      opts.ChartTitle(id),
		XAxisTitle: opts.XAxisTitle,
		YAxisTitle: opts.YAxisTitle,
		Legend:     "ID: " + id,
		Points:     points,
	}

	p, err := render.Plot(chart)
	if err != nil {
		return "", NewRowError(row.R, id, StagePlot, err)
	}
	path, err := sink.Write(id, p)
	if err != nil {
		return "", NewRowError(row.R, id, StageWrite, err)
	}

	opts.logger().Debug("Chart written",
		slog.Int("row", row.R),
		slog.String("id", id),
		slog.Int("points", len(points)),
		slog.String("path", path))
	return path, nil
}
