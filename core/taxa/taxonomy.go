// Package taxa handles taxonomic lineage strings and the collapsing of
// feature tables up to each taxonomic level.
package taxa

import (
	"fmt"
	"strings"

	"github.com/JetbluejetYJ/dokdo/core"
	"github.com/go-gota/gota/dataframe"

	"github.com/JetbluejetYJ/dokdo/core/table"
)

// Ranks lists the seven canonical taxonomic levels, from the most to the
// least inclusive. Level N in a collapse corresponds to Ranks[N-1].
var Ranks = []string{"domain", "phylum", "class", "order", "family", "genus", "species"}

// Unassigned is the label grouping features with no taxonomic assignment.
const Unassigned = "Unassigned"

// Taxonomy table column names, as written by the upstream classifier.
const (
	featureIDColumn = "Feature ID"
	taxonColumn     = "Taxon"
)

// ParseLineage splits a semicolon-delimited lineage string into its rank
// fields, trimming surrounding whitespace from each.
func ParseLineage(s string) []string {
	parts := strings.Split(s, ";")
	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = strings.TrimSpace(p)
	}
	return fields
}

// LabelAtLevel returns the collapse label for a lineage at the given
// level (1-7): the first level rank fields joined by semicolons.
// Lineages with fewer fields than the level are padded with "__", and
// unassigned lineages collapse to Unassigned at every level.
func LabelAtLevel(lineage string, level int) string {
	if lineage == "" || lineage == Unassigned {
		return Unassigned
	}
	fields := ParseLineage(lineage)
	for len(fields) < level {
		fields = append(fields, "__")
	}
	return strings.Join(fields[:level], ";")
}

// LoadTaxonomy extracts the feature-to-lineage mapping from a taxonomy
// table. The table must carry "Feature ID" and "Taxon" columns.
func LoadTaxonomy(df dataframe.DataFrame) (map[string]string, error) {
	for _, col := range []string{featureIDColumn, taxonColumn} {
		if !table.HasColumn(df, col) {
			return nil, &core.SchemaError{Reason: fmt.Sprintf("taxonomy table missing column %q", col)}
		}
	}
	ids := df.Col(featureIDColumn).Records()
	taxons := df.Col(taxonColumn).Records()

	m := make(map[string]string, len(ids))
	for i, id := range ids {
		m[id] = taxons[i]
	}
	return m, nil
}
