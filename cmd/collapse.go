// Package cmd — collapse command.
// Creates seven collapsed feature tables, one per taxonomic level.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JetbluejetYJ/dokdo/core/output"
	"github.com/JetbluejetYJ/dokdo/core/table"
	"github.com/JetbluejetYJ/dokdo/core/taxa"
)

var flagCollapseOutputDir string

var collapseCmd = &cobra.Command{
	Use:   "collapse <table> <taxonomy>",
	Short: "Collapse a feature table at each of the seven taxonomic levels",
	Long: `Collapse reads a feature table (rows are features, columns are samples)
and a taxonomy file mapping each feature to its semicolon-delimited
lineage, then sums feature abundances sharing the same lineage label at
each of the seven taxonomic levels. The output files (level-1.csv
through level-7.csv) are created in the output directory. Features with
no taxonomic assignment are grouped under "Unassigned".

Example:
  dokdo collapse table.tsv taxonomy.tsv --output_dir ./collapsed`,
	Args: cobra.ExactArgs(2),
	RunE: runCollapse,
}

func init() {
	rootCmd.AddCommand(collapseCmd)

	collapseCmd.Flags().StringVar(&flagCollapseOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

func runCollapse(cmd *cobra.Command, args []string) error {
	features, err := table.LoadFile(args[0])
	if err != nil {
		return err
	}
	taxTable, err := table.LoadFile(args[1])
	if err != nil {
		return err
	}
	taxonomy, err := taxa.LoadTaxonomy(taxTable)
	if err != nil {
		return err
	}

	writer, err := output.New(flagCollapseOutputDir)
	if err != nil {
		return err
	}

	for level := 1; level <= len(taxa.Ranks); level++ {
		collapsed, err := taxa.Collapse(features, taxonomy, level)
		if err != nil {
			return fmt.Errorf("collapsing at level %d (%s): %w", level, taxa.Ranks[level-1], err)
		}

		path, err := writer.WriteCSV(fmt.Sprintf("level-%d.csv", level), collapsed)
		if err != nil {
			return err
		}

		logger.Debug("collapsed table",
			zap.Int("level", level),
			zap.String("rank", taxa.Ranks[level-1]),
			zap.Int("groups", collapsed.Nrow()))
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	}

	logger.Info("collapse complete",
		zap.Int("features", features.Nrow()),
		zap.String("output_dir", writer.OutputDir))
	return nil
}
