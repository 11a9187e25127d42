// Package table handles reading and writing the tab-separated tables dokdo
// works with. Tables are held as gota dataframes with every column kept as
// a string series, so metadata values round-trip byte-for-byte and joins
// never coerce types behind the caller's back.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/JetbluejetYJ/dokdo/core"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ReadTSV parses a tab-separated table with a header row.
func ReadTSV(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter('\t'),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return df, fmt.Errorf("parsing table: %w", df.Err)
	}
	return df, nil
}

// LoadFile reads a tab-separated table from disk.
func LoadFile(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	df, err := ReadTSV(f)
	if err != nil {
		return df, fmt.Errorf("reading %s: %w", path, err)
	}
	return df, nil
}

// FromRecords builds a string-typed dataframe from raw records.
// The first record is the header row.
func FromRecords(records [][]string) (dataframe.DataFrame, error) {
	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return df, fmt.Errorf("loading records: %w", df.Err)
	}
	return df, nil
}

// WriteTSV writes the table as tab-separated values with a header row.
// Missing cells (gota's NaN) are written as empty fields.
func WriteTSV(df dataframe.DataFrame, w io.Writer) error {
	return writeDelim(df, w, '\t')
}

// WriteCSV writes the table as comma-separated values with a header row.
func WriteCSV(df dataframe.DataFrame, w io.Writer) error {
	return writeDelim(df, w, ',')
}

func writeDelim(df dataframe.DataFrame, w io.Writer, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	for i, rec := range df.Records() {
		if i > 0 {
			for j, v := range rec {
				if v == "NaN" {
					rec[j] = ""
				}
			}
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// HasColumn reports whether the table has a column with the given name.
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// SharedColumns returns the column names present in both tables, in the
// order they appear in a.
func SharedColumns(a, b dataframe.DataFrame) []string {
	inB := make(map[string]bool, b.Ncol())
	for _, n := range b.Names() {
		inB[n] = true
	}
	var shared []string
	for _, n := range a.Names() {
		if inB[n] {
			shared = append(shared, n)
		}
	}
	return shared
}

// CheckUnique verifies that the named column exists and holds no
// duplicate values. Merge keys must satisfy this before any join.
func CheckUnique(df dataframe.DataFrame, col string) error {
	if !HasColumn(df, col) {
		return &core.SchemaError{Reason: fmt.Sprintf("missing column %q", col)}
	}
	seen := make(map[string]bool, df.Nrow())
	for _, v := range df.Col(col).Records() {
		if seen[v] {
			return &core.SchemaError{Reason: fmt.Sprintf("duplicate value %q in column %q", v, col)}
		}
		seen[v] = true
	}
	return nil
}
