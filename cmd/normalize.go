// Package cmd — normalize command.
// Normalizes the abundance counts of a feature table.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JetbluejetYJ/dokdo/core/norm"
	"github.com/JetbluejetYJ/dokdo/core/output"
	"github.com/JetbluejetYJ/dokdo/core/table"
)

var flagNormMethod string

var normalizeCmd = &cobra.Command{
	Use:   "normalize <table> <output>",
	Short: "Normalize the abundance counts of a feature table",
	Long: `Normalize reads a feature table (rows are features, columns are samples)
and writes a transformed copy. Methods:

  log10   log10(x+1) on every cell
  clr     centre log ratio per sample, with a pseudocount of 1
  zscore  zero mean and unit standard deviation per sample

Example:
  dokdo normalize table.tsv normalized.tsv --method clr`,
	Args: cobra.ExactArgs(2),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().StringVar(&flagNormMethod, "method", string(norm.MethodLog10), "Normalization method: log10, clr, or zscore")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	features, err := table.LoadFile(args[0])
	if err != nil {
		return err
	}

	normalized, err := norm.Normalize(features, norm.Method(flagNormMethod))
	if err != nil {
		return err
	}

	dir, name := filepath.Split(args[1])
	writer, err := output.New(dir)
	if err != nil {
		return err
	}
	path, err := writer.WriteTSV(name, normalized)
	if err != nil {
		return err
	}

	logger.Info("normalized feature table",
		zap.String("method", flagNormMethod),
		zap.Int("features", normalized.Nrow()),
		zap.String("output", path))
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}
