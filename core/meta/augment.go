package meta

import (
	"fmt"

	"github.com/JetbluejetYJ/dokdo/core"
	"github.com/go-gota/gota/dataframe"

	"github.com/JetbluejetYJ/dokdo/core/table"
)

// Augment appends the columns of cols to base, joining on every column
// name the two tables share. At least one shared column is required.
// Every base row is retained in its original position; rows of cols with
// no matching key are dropped silently, and base rows with no match get
// empty cells in the appended columns.
func Augment(base, cols dataframe.DataFrame) (dataframe.DataFrame, error) {
	shared := table.SharedColumns(base, cols)
	if len(shared) == 0 {
		return dataframe.DataFrame{}, &core.SchemaError{Reason: "no overlapping column to join on"}
	}

	joined := base.LeftJoin(cols, shared...)
	if joined.Err != nil {
		return joined, fmt.Errorf("joining tables: %w", joined.Err)
	}

	// LeftJoin moves the key columns to the front; restore the base
	// column order and append the new columns in their file order.
	isShared := make(map[string]bool, len(shared))
	for _, n := range shared {
		isShared[n] = true
	}
	order := append([]string{}, base.Names()...)
	for _, n := range cols.Names() {
		if !isShared[n] {
			order = append(order, n)
		}
	}

	out := joined.Select(order)
	if out.Err != nil {
		return out, fmt.Errorf("reordering columns: %w", out.Err)
	}
	return out, nil
}
