package seqs

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"github.com/JetbluejetYJ/dokdo/core/table"
)

const featureIDColumn = "Feature ID"

// MapToSequences joins a taxonomy table with representative sequences on
// the feature identifier. The result holds the union of feature ids from
// both inputs: taxonomy ids first in table order, then sequence-only ids
// in FASTA order. A feature present in only one input gets empty cells
// for the other side. Taxonomy columns are carried through unchanged and
// a Sequence column is appended.
func MapToSequences(tax dataframe.DataFrame, seqs []Record) (dataframe.DataFrame, error) {
	if err := table.CheckUnique(tax, featureIDColumn); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("taxonomy table: %w", err)
	}

	var extra []string
	for _, n := range tax.Names() {
		if n != featureIDColumn {
			extra = append(extra, n)
		}
	}

	rows := make(map[string][]string)
	ids := tax.Col(featureIDColumn).Records()
	for _, id := range ids {
		rows[id] = make([]string, len(extra)+1)
	}
	for j, name := range extra {
		vals := tax.Col(name).Records()
		for i, id := range ids {
			rows[id][j] = vals[i]
		}
	}

	order := append([]string{}, ids...)
	for _, rec := range seqs {
		row, ok := rows[rec.ID]
		if !ok {
			row = make([]string, len(extra)+1)
			rows[rec.ID] = row
			order = append(order, rec.ID)
		}
		row[len(extra)] = rec.Sequence
	}

	header := append([]string{featureIDColumn}, extra...)
	header = append(header, "Sequence")

	records := make([][]string, 0, len(order)+1)
	records = append(records, header)
	for _, id := range order {
		records = append(records, append([]string{id}, rows[id]...))
	}
	return table.FromRecords(records)
}
