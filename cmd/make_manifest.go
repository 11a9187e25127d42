// Package cmd — make-manifest command.
// Builds a manifest file from a directory of FASTQ files.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JetbluejetYJ/dokdo/core/manifest"
	"github.com/JetbluejetYJ/dokdo/core/output"
)

// Flag variables.
var (
	flagForwardMarker string
	flagReverseMarker string
)

var makeManifestCmd = &cobra.Command{
	Use:   "make-manifest <fastq-dir> <output>",
	Short: "Create a manifest file from a directory of FASTQ files",
	Long: `Make-manifest scans a directory for FASTQ files and writes a manifest
table pairing each sample's forward and reverse reads. Filenames must
carry a read-direction marker (by default '_R1_001.fastq' or
'_R2_001.fastq'); the part before the first underscore becomes the
sample identifier (e.g. 'EXAMPLE' in EXAMPLE_S1_R1_001.fastq.gz). A
FASTQ file that violates the convention fails the run.

Example:
  dokdo make-manifest ./fastq manifest.tsv`,
	Args: cobra.ExactArgs(2),
	RunE: runMakeManifest,
}

func init() {
	rootCmd.AddCommand(makeManifestCmd)

	makeManifestCmd.Flags().StringVar(&flagForwardMarker, "forward_marker", "", "Forward-read filename marker (default from config: _R1_001.fastq)")
	makeManifestCmd.Flags().StringVar(&flagReverseMarker, "reverse_marker", "", "Reverse-read filename marker (default from config: _R2_001.fastq)")
}

func runMakeManifest(cmd *cobra.Command, args []string) error {
	opts := manifest.Options{
		ForwardMarker: cfg.Manifest.ForwardMarker,
		ReverseMarker: cfg.Manifest.ReverseMarker,
	}
	if flagForwardMarker != "" {
		opts.ForwardMarker = flagForwardMarker
	}
	if flagReverseMarker != "" {
		opts.ReverseMarker = flagReverseMarker
	}

	df, err := manifest.Generate(args[0], opts)
	if err != nil {
		return err
	}

	dir, name := filepath.Split(args[1])
	writer, err := output.New(dir)
	if err != nil {
		return err
	}
	path, err := writer.WriteTSV(name, df)
	if err != nil {
		return err
	}

	logger.Info("manifest generated",
		zap.String("fastq_dir", args[0]),
		zap.Int("samples", df.Nrow()),
		zap.String("output", path))
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}
