// Package manifest scans a directory of FASTQ files and builds the
// manifest table mapping each sample to its forward and reverse reads.
package manifest

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"github.com/JetbluejetYJ/dokdo/core"
	"github.com/JetbluejetYJ/dokdo/core/table"
)

// Manifest column names, matching the importer's paired-end format.
const (
	sampleIDColumn = "sample-id"
	forwardColumn  = "forward-absolute-filepath"
	reverseColumn  = "reverse-absolute-filepath"
)

// Options control the filename convention a FASTQ directory is expected
// to follow. The sample identifier is the filename part before the first
// underscore (e.g. "EXAMPLE" in EXAMPLE_S1_R1_001.fastq.gz).
type Options struct {
	ForwardMarker string
	ReverseMarker string
}

// DefaultOptions returns the conventional Illumina read-direction markers.
func DefaultOptions() Options {
	return Options{
		ForwardMarker: "_R1_001.fastq",
		ReverseMarker: "_R2_001.fastq",
	}
}

// Generate walks dir recursively and pairs forward/reverse FASTQ files by
// sample identifier. A FASTQ file without a read-direction marker, without
// a sample prefix, or duplicating an already-seen direction fails with a
// NamingError. Files that are not FASTQ are ignored. Rows come out sorted
// by sample id with absolute file paths.
func Generate(dir string, opts Options) (dataframe.DataFrame, error) {
	type pair struct {
		forward string
		reverse string
	}
	pairs := make(map[string]*pair)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isFastq(d.Name()) {
			return nil
		}

		name := d.Name()
		var forward bool
		switch {
		case strings.Contains(name, opts.ForwardMarker):
			forward = true
		case strings.Contains(name, opts.ReverseMarker):
			forward = false
		default:
			return &core.NamingError{File: name, Reason: fmt.Sprintf("expected %q or %q in filename", opts.ForwardMarker, opts.ReverseMarker)}
		}

		sample := name
		if i := strings.Index(name, "_"); i >= 0 {
			sample = name[:i]
		}
		if sample == "" {
			return &core.NamingError{File: name, Reason: "empty sample identifier before first underscore"}
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", path, err)
		}

		p := pairs[sample]
		if p == nil {
			p = &pair{}
			pairs[sample] = p
		}
		if forward {
			if p.forward != "" {
				return &core.NamingError{File: name, Reason: fmt.Sprintf("duplicate forward read for sample %q", sample)}
			}
			p.forward = abs
		} else {
			if p.reverse != "" {
				return &core.NamingError{File: name, Reason: fmt.Sprintf("duplicate reverse read for sample %q", sample)}
			}
			p.reverse = abs
		}
		return nil
	})
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	if len(pairs) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("no FASTQ files found under %s", dir)
	}

	samples := make([]string, 0, len(pairs))
	for s := range pairs {
		samples = append(samples, s)
	}
	sort.Strings(samples)

	records := make([][]string, 0, len(samples)+1)
	records = append(records, []string{sampleIDColumn, forwardColumn, reverseColumn})
	for _, s := range samples {
		records = append(records, []string{s, pairs[s].forward, pairs[s].reverse})
	}
	return table.FromRecords(records)
}

func isFastq(name string) bool {
	return strings.HasSuffix(name, ".fastq") || strings.HasSuffix(name, ".fastq.gz")
}
