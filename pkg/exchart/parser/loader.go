package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// Engine names.
const (
	EngineXLSX = "xlsx"
	EngineXLS  = "xls"
)

// engines maps lowercase file extensions to the engine reading them.
var engines = map[string]string{
	".xlsx": EngineXLSX,
	".xlsm": EngineXLSX,
	".xltx": EngineXLSX,
	".xltm": EngineXLSX,
	".xls":  EngineXLS,
}

// EngineFor returns the engine that reads the file at path, chosen by its
// extension.
func EngineFor(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	engine, ok := engines[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return engine, nil
}

// Load reads one sheet of the workbook at path into a Table. An empty
// sheetName selects the first sheet.
func Load(path, sheetName string) (*models.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, NewLoadError(path, "", err)
	}

	engine, err := EngineFor(path)
	if err != nil {
		return nil, err
	}

	var (
		sheet string
		grid  [][]models.Cell
	)
	switch engine {
	case EngineXLSX:
		sheet, grid, err = readXLSX(path, sheetName)
	case EngineXLS:
		sheet, grid, err = readXLS(path, sheetName)
	}
	if err != nil {
		return nil, NewLoadError(path, engine, err)
	}

	table, err := BuildTable(filepath.Base(path), sheet, grid)
	if err != nil {
		return nil, NewLoadError(path, engine, err)
	}
	return table, nil
}
