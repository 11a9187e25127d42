// Package seqs reads representative-sequence FASTA files and maps
// sequence variants to their taxonomic classifications.
package seqs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is a single FASTA record: a feature identifier and its sequence.
type Record struct {
	ID       string
	Sequence string
}

// ReadFasta parses FASTA records from r. Lines beginning with '>' start a
// new record; sequence lines are concatenated.
func ReadFasta(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var records []Record
	var current Record
	open := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if open {
				records = append(records, current)
			}
			current = Record{ID: strings.TrimSpace(line[1:])}
			open = true
			continue
		}
		if !open {
			return nil, fmt.Errorf("sequence data before first header")
		}
		current.Sequence += line
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading fasta: %w", err)
	}
	if open {
		records = append(records, current)
	}
	return records, nil
}

// LoadFasta reads FASTA records from disk.
func LoadFasta(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadFasta(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}
