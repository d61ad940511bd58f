package exchart

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves rows into Sheet1 of a new xlsx file. nil cells are left
// empty.
func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func testOptions(t *testing.T, input string) Options {
	t.Helper()
	out := t.TempDir()
	opts := DefaultOptions()
	opts.Input = input
	opts.OutputDir = filepath.Join(out, "charts")
	opts.Document = filepath.Join(out, "all_charts.pdf")
	opts.Width = 390
	opts.Height = 260
	return opts
}

func requirePDF(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestGenerate(t *testing.T) {
	input := writeWorkbook(t, [][]interface{}{
		{"ID", "PL_maydon", "10-May", "11-May", "12-May"},
		{1, "north", 5.5, nil, "bad"},
		{2, "south", nil, nil, nil},
		{3, "east", 1, 2.25, "3"},
	})
	opts := testOptions(t, input)

	var calls []int
	opts.Progress = func(done, total int) {
		assert.Equal(t, 3, total)
		calls = append(calls, done)
	}

	res, err := Generate(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "input.xlsx", res.BookName)
	assert.Equal(t, "Sheet1", res.SheetName)
	assert.Equal(t, 3, res.Rows)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, []string{
		filepath.Join(opts.OutputDir, "chart_ID_1.png"),
		filepath.Join(opts.OutputDir, "chart_ID_3.png"),
	}, res.Images)
	assert.Equal(t, []int{1, 2, 3}, calls)

	for _, img := range res.Images {
		assert.FileExists(t, img)
	}
	assert.NoFileExists(t, filepath.Join(opts.OutputDir, "chart_ID_2.png"))
	requirePDF(t, opts.Document)
}

func TestGenerateIdentifierCollision(t *testing.T) {
	input := writeWorkbook(t, [][]interface{}{
		{"ID", "2024-07-01", "2024-07-02"},
		{"A 1", 10, 20},
		{"A_1", 30, 40},
	})
	opts := testOptions(t, input)

	res, err := Generate(context.Background(), opts)
	require.NoError(t, err)

	image := filepath.Join(opts.OutputDir, "chart_ID_A_1.png")
	assert.Equal(t, []string{image, image}, res.Images)
	assert.Equal(t, 2, res.Pages)

	entries, err := os.ReadDir(opts.OutputDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGenerateMissingIdentifierColumn(t *testing.T) {
	input := writeWorkbook(t, [][]interface{}{
		{"Code", "10-May"},
		{"x", 5},
	})
	opts := testOptions(t, input)
	opts.IDColumn = "ID"

	res, err := Generate(context.Background(), opts)
	require.NoError(t, err)

	// Code is not excluded, so it is a value column whose text fails coercion.
	assert.Equal(t, []string{filepath.Join(opts.OutputDir, "chart_ID_unknown.png")}, res.Images)
}

func TestGenerateWithoutCharts(t *testing.T) {
	input := writeWorkbook(t, [][]interface{}{
		{"ID", "10-May", "11-May"},
		{1, nil, "n/a"},
		{2, "-", nil},
	})
	opts := testOptions(t, input)

	res, err := Generate(context.Background(), opts)
	require.NoError(t, err)

	assert.Empty(t, res.Images)
	assert.Equal(t, 2, res.Skipped)
	// the document still holds the single blank page every PDF has
	assert.Equal(t, 1, res.Pages)
	data, err := os.ReadFile(opts.Document)
	require.NoError(t, err)
	assert.Equal(t, res.Pages, bytes.Count(data, []byte("<</Type /Page\n")))
}

func TestGenerateXLS(t *testing.T) {
	opts := testOptions(t, filepath.Join("parser", "testdata", "rates.xls"))

	res, err := Generate(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "rates.xls", res.BookName)
	assert.Equal(t, "Rates", res.SheetName)
	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, 0, res.Skipped)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, []string{
		filepath.Join(opts.OutputDir, "chart_ID_8.png"),
		filepath.Join(opts.OutputDir, "chart_ID_9.png"),
	}, res.Images)
	requirePDF(t, opts.Document)
}

func TestGenerateCancelled(t *testing.T) {
	input := writeWorkbook(t, [][]interface{}{
		{"ID", "10-May"},
		{1, 5},
		{2, 6},
	})
	opts := testOptions(t, input)

	ctx, cancel := context.WithCancel(context.Background())
	done := 0
	opts.Progress = func(int, int) {
		done++
		cancel()
	}

	res, err := Generate(ctx, opts)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)

	assert.Equal(t, 1, done)
	assert.Equal(t, 1, res.Pages)
	assert.Len(t, res.Images, 1)
	requirePDF(t, opts.Document)
}

func TestGenerateLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		opts := testOptions(t, filepath.Join(t.TempDir(), "Exelll.xls"))
		_, err := Generate(context.Background(), opts)
		require.ErrorIs(t, err, ErrFileNotFound)
		assert.NoDirExists(t, opts.OutputDir)
		assert.NoFileExists(t, opts.Document)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.ods")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		opts := testOptions(t, path)
		_, err := Generate(context.Background(), opts)
		require.ErrorIs(t, err, ErrUnsupportedFormat)
		assert.NoFileExists(t, opts.Document)
	})

	t.Run("invalid options", func(t *testing.T) {
		opts := testOptions(t, "in.xlsx")
		opts.DPI = 0
		_, err := Generate(context.Background(), opts)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "validation", cfgErr.Source)
	})
}
