package seqs

import (
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JetbluejetYJ/dokdo/core/table"
)

// emptied maps gota's NaN placeholder to the empty string it is
// written out as.
func emptied(v string) string {
	if v == "NaN" {
		return ""
	}
	return v
}

func taxonomyTable(t *testing.T) dataframe.DataFrame {
	t.Helper()
	df, err := table.ReadTSV(strings.NewReader(
		"Feature ID\tTaxon\tConfidence\n" +
			"f1\td__Bacteria; p__Firmicutes\t0.99\n" +
			"f2\td__Bacteria; p__Bacteroidota\t0.87\n"))
	require.NoError(t, err)
	return df
}

func TestMapToSequences(t *testing.T) {
	tax := taxonomyTable(t)

	t.Run("joins taxonomy with sequences", func(t *testing.T) {
		out, err := MapToSequences(tax, []Record{
			{ID: "f1", Sequence: "ACGT"},
			{ID: "f2", Sequence: "TTAA"},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"Feature ID", "Taxon", "Confidence", "Sequence"}, out.Names())
		assert.Equal(t, []string{"f1", "f2"}, out.Col("Feature ID").Records())
		assert.Equal(t, []string{"ACGT", "TTAA"}, out.Col("Sequence").Records())
	})

	t.Run("keeps the union of feature ids", func(t *testing.T) {
		out, err := MapToSequences(tax, []Record{
			{ID: "f2", Sequence: "TTAA"},
			{ID: "f9", Sequence: "GGGG"},
		})
		require.NoError(t, err)

		// Taxonomy ids first in table order, then sequence-only ids.
		assert.Equal(t, []string{"f1", "f2", "f9"}, out.Col("Feature ID").Records())

		seqs := out.Col("Sequence").Records()
		assert.Empty(t, emptied(seqs[0])) // f1 has no sequence
		assert.Equal(t, "GGGG", seqs[2])

		taxons := out.Col("Taxon").Records()
		assert.Empty(t, emptied(taxons[2])) // f9 has no taxonomy
	})

	t.Run("taxonomy without feature id column fails", func(t *testing.T) {
		bad, err := table.ReadTSV(strings.NewReader("id\tTaxon\nf1\tx\n"))
		require.NoError(t, err)
		_, err = MapToSequences(bad, nil)
		assert.Error(t, err)
	})
}
