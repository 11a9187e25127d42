package taxa

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JetbluejetYJ/dokdo/core"
	"github.com/JetbluejetYJ/dokdo/core/table"
)

func TestParseLineage(t *testing.T) {
	assert.Equal(t,
		[]string{"d__Bacteria", "p__Firmicutes", "c__Bacilli"},
		ParseLineage("d__Bacteria; p__Firmicutes; c__Bacilli"))
	assert.Equal(t, []string{"d__Bacteria"}, ParseLineage("d__Bacteria"))
}

func TestLabelAtLevel(t *testing.T) {
	lineage := "d__Bacteria; p__Firmicutes; c__Bacilli"

	t.Run("prefix at each level", func(t *testing.T) {
		assert.Equal(t, "d__Bacteria", LabelAtLevel(lineage, 1))
		assert.Equal(t, "d__Bacteria;p__Firmicutes", LabelAtLevel(lineage, 2))
		assert.Equal(t, "d__Bacteria;p__Firmicutes;c__Bacilli", LabelAtLevel(lineage, 3))
	})

	t.Run("short lineages are padded", func(t *testing.T) {
		assert.Equal(t, "d__Bacteria;p__Firmicutes;c__Bacilli;__;__;__;__",
			LabelAtLevel(lineage, 7))
	})

	t.Run("unassigned stays unassigned at every level", func(t *testing.T) {
		for level := 1; level <= 7; level++ {
			assert.Equal(t, Unassigned, LabelAtLevel("", level))
			assert.Equal(t, Unassigned, LabelAtLevel(Unassigned, level))
		}
	})
}

func TestLoadTaxonomy(t *testing.T) {
	t.Run("maps feature to lineage", func(t *testing.T) {
		df, err := table.ReadTSV(strings.NewReader(
			"Feature ID\tTaxon\tConfidence\n" +
				"f1\td__Bacteria; p__Firmicutes\t0.99\n" +
				"f2\td__Bacteria; p__Bacteroidota\t0.87\n"))
		require.NoError(t, err)

		m, err := LoadTaxonomy(df)
		require.NoError(t, err)
		assert.Len(t, m, 2)
		assert.Equal(t, "d__Bacteria; p__Firmicutes", m["f1"])
	})

	t.Run("missing taxon column fails with schema error", func(t *testing.T) {
		df, err := table.ReadTSV(strings.NewReader("Feature ID\tLineage\nf1\tx\n"))
		require.NoError(t, err)

		_, err = LoadTaxonomy(df)
		var schemaErr *core.SchemaError
		assert.True(t, errors.As(err, &schemaErr))
	})
}
