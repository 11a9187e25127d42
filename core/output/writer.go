// Package output handles file naming and writing for dokdo outputs.
// Commands hand it a table and a filename; the writer takes care of the
// output directory and the delimiter.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"

	"github.com/JetbluejetYJ/dokdo/core/table"
)

// Writer writes rendered tables to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// WriteTSV writes the table as tab-separated values under the output
// directory and returns the full path.
func (w *Writer) WriteTSV(name string, df dataframe.DataFrame) (string, error) {
	return w.write(name, df, table.WriteTSV)
}

// WriteCSV writes the table as comma-separated values under the output
// directory and returns the full path.
func (w *Writer) WriteCSV(name string, df dataframe.DataFrame) (string, error) {
	return w.write(name, df, table.WriteCSV)
}

func (w *Writer) write(name string, df dataframe.DataFrame, enc func(dataframe.DataFrame, io.Writer) error) (string, error) {
	path := filepath.Join(w.OutputDir, name)

	// Ensure parent directories exist for names with subpaths.
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file %s: %w", path, err)
	}
	defer f.Close()

	if err := enc(df, f); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing file %s: %w", path, err)
	}
	return path, nil
}
