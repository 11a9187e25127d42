package table

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JetbluejetYJ/dokdo/core"
)

const sampleTSV = "sample-id\tbody-site\tsubject\n" +
	"s1\tgut\tA\n" +
	"s2\ttongue\tB\n"

func TestReadWriteTSV(t *testing.T) {
	t.Run("round trip preserves bytes", func(t *testing.T) {
		df, err := ReadTSV(strings.NewReader(sampleTSV))
		require.NoError(t, err)
		assert.Equal(t, 2, df.Nrow())
		assert.Equal(t, []string{"sample-id", "body-site", "subject"}, df.Names())

		var buf bytes.Buffer
		require.NoError(t, WriteTSV(df, &buf))
		assert.Equal(t, sampleTSV, buf.String())
	})

	t.Run("empty cells survive", func(t *testing.T) {
		in := "sample-id\tbody-site\n" + "s1\t\n"
		df, err := ReadTSV(strings.NewReader(in))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, WriteTSV(df, &buf))
		assert.Equal(t, in, buf.String())
	})

	t.Run("ragged rows are rejected", func(t *testing.T) {
		_, err := ReadTSV(strings.NewReader("a\tb\nonly-one\n"))
		assert.Error(t, err)
	})

	t.Run("csv output", func(t *testing.T) {
		df, err := ReadTSV(strings.NewReader(sampleTSV))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, WriteCSV(df, &buf))
		assert.True(t, strings.HasPrefix(buf.String(), "sample-id,body-site,subject\n"))
	})
}

func TestColumnHelpers(t *testing.T) {
	a, err := ReadTSV(strings.NewReader(sampleTSV))
	require.NoError(t, err)
	b, err := ReadTSV(strings.NewReader("sample-id\tdiet\ns1\tveg\n"))
	require.NoError(t, err)

	t.Run("has column", func(t *testing.T) {
		assert.True(t, HasColumn(a, "body-site"))
		assert.False(t, HasColumn(a, "diet"))
	})

	t.Run("shared columns in left order", func(t *testing.T) {
		assert.Equal(t, []string{"sample-id"}, SharedColumns(a, b))
		assert.Nil(t, SharedColumns(b, mustRead(t, "x\ty\n1\t2\n")))
	})
}

func TestCheckUnique(t *testing.T) {
	t.Run("unique passes", func(t *testing.T) {
		df := mustRead(t, sampleTSV)
		assert.NoError(t, CheckUnique(df, "sample-id"))
	})

	t.Run("duplicate fails with schema error", func(t *testing.T) {
		df := mustRead(t, "sample-id\tv\ns1\t1\ns1\t2\n")
		err := CheckUnique(df, "sample-id")
		var schemaErr *core.SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Contains(t, schemaErr.Reason, "duplicate")
	})

	t.Run("missing column fails with schema error", func(t *testing.T) {
		df := mustRead(t, sampleTSV)
		err := CheckUnique(df, "nope")
		var schemaErr *core.SchemaError
		assert.True(t, errors.As(err, &schemaErr))
	})
}

func mustRead(t *testing.T, tsv string) dataframe.DataFrame {
	t.Helper()
	out, err := ReadTSV(strings.NewReader(tsv))
	require.NoError(t, err)
	return out
}
