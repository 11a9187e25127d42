// Package cmd — merge command.
// Performs a union-of-rows, union-of-columns merge of two or more
// sample-metadata files keyed on the identifier column. Inputs that
// disagree on a shared cell fail the merge.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JetbluejetYJ/dokdo/core/meta"
	"github.com/JetbluejetYJ/dokdo/core/output"
	"github.com/JetbluejetYJ/dokdo/core/table"
)

var flagMergeIDColumn string

var mergeCmd = &cobra.Command{
	Use:   "merge <metadata>... <output>",
	Short: "Merge two or more sample-metadata files into one",
	Long: `Merge reads two or more tab-separated sample-metadata files sharing an
identifier column and writes their union: union of samples, union of
columns. A sample missing from one input gets empty cells for that
input's exclusive columns; inputs disagreeing on a shared cell fail.

Examples:
  dokdo merge a.tsv b.tsv merged.tsv
  dokdo merge --id_column "#SampleID" a.tsv b.tsv c.tsv merged.tsv`,
	Args: cobra.MinimumNArgs(3),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVar(&flagMergeIDColumn, "id_column", "", "Identifier column name (default from config: sample-id)")
}

func runMerge(cmd *cobra.Command, args []string) error {
	inputs, outPath := args[:len(args)-1], args[len(args)-1]

	idCol := flagMergeIDColumn
	if idCol == "" {
		idCol = cfg.Metadata.IDColumn
	}

	frames := make([]dataframe.DataFrame, 0, len(inputs))
	for _, p := range inputs {
		df, err := table.LoadFile(p)
		if err != nil {
			return err
		}
		logger.Debug("loaded metadata",
			zap.String("path", p),
			zap.Int("rows", df.Nrow()),
			zap.Int("columns", df.Ncol()))
		frames = append(frames, df)
	}

	merged, err := meta.Merge(frames, idCol)
	if err != nil {
		return err
	}

	dir, name := filepath.Split(outPath)
	writer, err := output.New(dir)
	if err != nil {
		return err
	}
	path, err := writer.WriteTSV(name, merged)
	if err != nil {
		return err
	}

	logger.Info("merged metadata",
		zap.Int("inputs", len(inputs)),
		zap.Int("samples", merged.Nrow()),
		zap.String("output", path))
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}
