package taxa

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"

	"github.com/JetbluejetYJ/dokdo/core/table"
)

// Collapse aggregates a feature table up to the given taxonomic level
// (1-7). The first column of features holds feature identifiers and the
// remaining columns hold per-sample abundance counts. Features sharing a
// lineage label at the level are summed; features absent from the
// taxonomy map are grouped under Unassigned. Rows of the result are
// sorted by label, so repeated runs are byte-identical.
func Collapse(features dataframe.DataFrame, taxonomy map[string]string, level int) (dataframe.DataFrame, error) {
	if level < 1 || level > len(Ranks) {
		return dataframe.DataFrame{}, fmt.Errorf("level must be between 1 and %d, got %d", len(Ranks), level)
	}
	names := features.Names()
	if len(names) < 2 {
		return dataframe.DataFrame{}, fmt.Errorf("feature table needs an identifier column and at least one sample column")
	}
	samples := names[1:]
	ids := features.Col(names[0]).Records()

	// Parse the abundance matrix up front so a malformed cell fails the
	// whole collapse rather than a single level.
	counts := make([][]float64, len(samples))
	for j, s := range samples {
		recs := features.Col(s).Records()
		counts[j] = make([]float64, len(recs))
		for i, v := range recs {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return dataframe.DataFrame{}, fmt.Errorf("sample %q row %q: invalid count %q", s, ids[i], v)
			}
			counts[j][i] = f
		}
	}

	sums := make(map[string][]float64)
	for i, id := range ids {
		label := LabelAtLevel(taxonomy[id], level)
		row, ok := sums[label]
		if !ok {
			row = make([]float64, len(samples))
			sums[label] = row
		}
		for j := range samples {
			row[j] += counts[j][i]
		}
	}

	labels := make([]string, 0, len(sums))
	for label := range sums {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	records := make([][]string, 0, len(labels)+1)
	records = append(records, append([]string{taxonColumn}, samples...))
	for _, label := range labels {
		row := make([]string, 0, len(samples)+1)
		row = append(row, label)
		for j := range samples {
			row = append(row, strconv.FormatFloat(sums[label][j], 'f', -1, 64))
		}
		records = append(records, row)
	}
	return table.FromRecords(records)
}
