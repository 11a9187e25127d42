// Package cmd — add-metadata command.
// Appends the columns of a second file to an existing sample-metadata
// file, joining on every column name the two files share.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JetbluejetYJ/dokdo/core/meta"
	"github.com/JetbluejetYJ/dokdo/core/output"
	"github.com/JetbluejetYJ/dokdo/core/table"
)

var addMetadataCmd = &cobra.Command{
	Use:   "add-metadata <metadata> <columns> <output>",
	Short: "Add new columns to an existing sample-metadata file",
	Long: `Add-metadata reads a sample-metadata file and a columns file and joins
them on their overlapping column names (at least one is required). Every
metadata row is kept; rows of the columns file with no matching key are
dropped silently.

Example:
  dokdo add-metadata sample-metadata.tsv new-columns.tsv augmented.tsv`,
	Args: cobra.ExactArgs(3),
	RunE: runAddMetadata,
}

func init() {
	rootCmd.AddCommand(addMetadataCmd)
}

func runAddMetadata(cmd *cobra.Command, args []string) error {
	base, err := table.LoadFile(args[0])
	if err != nil {
		return err
	}
	cols, err := table.LoadFile(args[1])
	if err != nil {
		return err
	}

	shared := table.SharedColumns(base, cols)
	logger.Debug("joining metadata", zap.Strings("keys", shared))

	augmented, err := meta.Augment(base, cols)
	if err != nil {
		return err
	}

	dir, name := filepath.Split(args[2])
	writer, err := output.New(dir)
	if err != nil {
		return err
	}
	path, err := writer.WriteTSV(name, augmented)
	if err != nil {
		return err
	}

	logger.Info("augmented metadata",
		zap.Int("samples", augmented.Nrow()),
		zap.Int("added_columns", augmented.Ncol()-base.Ncol()),
		zap.String("output", path))
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}
