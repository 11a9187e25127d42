package meta

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JetbluejetYJ/dokdo/core"
	"github.com/JetbluejetYJ/dokdo/core/table"
)

func read(t *testing.T, tsv string) dataframe.DataFrame {
	t.Helper()
	df, err := table.ReadTSV(strings.NewReader(tsv))
	require.NoError(t, err)
	return df
}

func TestMerge(t *testing.T) {
	a := read(t, "sample-id\tbody-site\n"+
		"s1\tgut\n"+
		"s2\ttongue\n")
	b := read(t, "sample-id\tsubject\n"+
		"s2\tB\n"+
		"s3\tC\n")

	t.Run("union of rows and columns", func(t *testing.T) {
		merged, err := Merge([]dataframe.DataFrame{a, b}, "sample-id")
		require.NoError(t, err)

		assert.Equal(t, []string{"sample-id", "body-site", "subject"}, merged.Names())
		assert.Equal(t, []string{"s1", "s2", "s3"}, merged.Col("sample-id").Records())

		// s1 has no subject, s3 has no body-site, s2 has both.
		assert.Equal(t, []string{"gut", "tongue", ""}, cells(t, merged, "body-site"))
		assert.Equal(t, []string{"", "B", "C"}, cells(t, merged, "subject"))
	})

	t.Run("agreeing shared cells merge cleanly", func(t *testing.T) {
		c := read(t, "sample-id\tbody-site\tsubject\n"+
			"s2\ttongue\tB\n")
		merged, err := Merge([]dataframe.DataFrame{a, c}, "sample-id")
		require.NoError(t, err)
		assert.Equal(t, 2, merged.Nrow())
	})

	t.Run("disagreeing shared cell fails with conflict error", func(t *testing.T) {
		c := read(t, "sample-id\tbody-site\n"+
			"s2\tpalm\n")
		_, err := Merge([]dataframe.DataFrame{a, c}, "sample-id")

		var conflict *core.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, "s2", conflict.ID)
		assert.Equal(t, "body-site", conflict.Column)
	})

	t.Run("empty cell never conflicts", func(t *testing.T) {
		c := read(t, "sample-id\tbody-site\n"+
			"s2\t\n")
		merged, err := Merge([]dataframe.DataFrame{a, c}, "sample-id")
		require.NoError(t, err)
		assert.Equal(t, []string{"gut", "tongue"}, cells(t, merged, "body-site"))
	})

	t.Run("duplicate identifier fails with schema error", func(t *testing.T) {
		c := read(t, "sample-id\tsubject\n"+
			"s2\tB\n"+
			"s2\tC\n")
		_, err := Merge([]dataframe.DataFrame{a, c}, "sample-id")

		var schemaErr *core.SchemaError
		assert.True(t, errors.As(err, &schemaErr))
	})

	t.Run("missing identifier column fails with schema error", func(t *testing.T) {
		c := read(t, "id\tsubject\ns2\tB\n")
		_, err := Merge([]dataframe.DataFrame{a, c}, "sample-id")

		var schemaErr *core.SchemaError
		assert.True(t, errors.As(err, &schemaErr))
	})

	t.Run("fewer than two tables is rejected", func(t *testing.T) {
		_, err := Merge([]dataframe.DataFrame{a}, "sample-id")
		assert.Error(t, err)
	})
}

// cells returns a column with NaN placeholders mapped to empty strings,
// as they are written out.
func cells(t *testing.T, df dataframe.DataFrame, col string) []string {
	t.Helper()
	recs := df.Col(col).Records()
	out := make([]string, len(recs))
	for i, v := range recs {
		if v == "NaN" {
			v = ""
		}
		out[i] = v
	}
	return out
}
