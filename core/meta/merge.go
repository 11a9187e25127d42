// Package meta implements the sample-metadata transforms: merging several
// metadata tables into one, and augmenting a table with extra columns.
package meta

import (
	"fmt"
	"sort"

	"github.com/JetbluejetYJ/dokdo/core"
	"github.com/JetbluejetYJ/dokdo/core/table"
	"github.com/go-gota/gota/dataframe"
)

// Merge performs a union-of-rows, union-of-columns merge of two or more
// metadata tables keyed on idCol. Every input must contain idCol with
// unique values. Inputs that disagree on a shared cell fail with a
// ConflictError; an empty cell never conflicts with a value. The result
// has idCol first, the remaining columns in first-seen input order, and
// rows sorted by identifier.
func Merge(frames []dataframe.DataFrame, idCol string) (dataframe.DataFrame, error) {
	if len(frames) < 2 {
		return dataframe.DataFrame{}, fmt.Errorf("merge needs at least two tables, got %d", len(frames))
	}
	for _, df := range frames {
		if err := table.CheckUnique(df, idCol); err != nil {
			return dataframe.DataFrame{}, err
		}
	}

	// Union of columns, identifier first.
	cols := []string{idCol}
	seenCol := map[string]bool{idCol: true}
	for _, df := range frames {
		for _, n := range df.Names() {
			if !seenCol[n] {
				seenCol[n] = true
				cols = append(cols, n)
			}
		}
	}

	// Union of rows, checking every shared cell for agreement.
	cells := make(map[string]map[string]string)
	for _, df := range frames {
		ids := df.Col(idCol).Records()
		for _, id := range ids {
			if cells[id] == nil {
				cells[id] = make(map[string]string)
			}
		}
		for _, name := range df.Names() {
			if name == idCol {
				continue
			}
			vals := df.Col(name).Records()
			for i, id := range ids {
				if err := setCell(cells[id], id, name, vals[i]); err != nil {
					return dataframe.DataFrame{}, err
				}
			}
		}
	}

	ids := make([]string, 0, len(cells))
	for id := range cells {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	records := make([][]string, 0, len(ids)+1)
	records = append(records, cols)
	for _, id := range ids {
		row := make([]string, len(cols))
		row[0] = id
		for j, name := range cols[1:] {
			row[j+1] = cells[id][name]
		}
		records = append(records, row)
	}
	return table.FromRecords(records)
}

// setCell records a value for (id, column), rejecting disagreement
// between inputs. Missing cells are represented as "".
func setCell(row map[string]string, id, column, value string) error {
	if value == "NaN" {
		value = ""
	}
	if value == "" {
		return nil
	}
	if prev, ok := row[column]; ok && prev != "" && prev != value {
		return &core.ConflictError{ID: id, Column: column, A: prev, B: value}
	}
	row[column] = value
	return nil
}
