// Package norm normalizes feature-table abundance counts. Each method
// works on the raw counts of a single invocation; nothing is fitted or
// persisted.
package norm

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/stat"

	"github.com/JetbluejetYJ/dokdo/core/table"
)

// Method selects a normalization.
type Method string

const (
	// MethodLog10 applies log10(x+1) to every cell.
	MethodLog10 Method = "log10"
	// MethodCLR applies the centre log ratio transform with a
	// pseudocount of 1, per sample column.
	MethodCLR Method = "clr"
	// MethodZScore standardizes each sample column to zero mean and
	// unit population standard deviation.
	MethodZScore Method = "zscore"
)

// Methods lists the accepted normalization names.
func Methods() []Method {
	return []Method{MethodLog10, MethodCLR, MethodZScore}
}

// Normalize transforms a feature table with the given method. The first
// column holds feature identifiers and is carried through untouched; the
// remaining columns are per-sample counts.
func Normalize(features dataframe.DataFrame, method Method) (dataframe.DataFrame, error) {
	names := features.Names()
	if len(names) < 2 {
		return dataframe.DataFrame{}, fmt.Errorf("feature table needs an identifier column and at least one sample column")
	}
	ids := features.Col(names[0]).Records()
	samples := names[1:]

	cols := make([][]float64, len(samples))
	for j, s := range samples {
		recs := features.Col(s).Records()
		cols[j] = make([]float64, len(recs))
		for i, v := range recs {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return dataframe.DataFrame{}, fmt.Errorf("sample %q row %q: invalid count %q", s, ids[i], v)
			}
			cols[j][i] = f
		}
	}

	for j, col := range cols {
		if err := normalizeColumn(col, method); err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("sample %q: %w", samples[j], err)
		}
	}

	records := make([][]string, 0, len(ids)+1)
	records = append(records, names)
	for i, id := range ids {
		row := make([]string, 0, len(samples)+1)
		row = append(row, id)
		for j := range samples {
			row = append(row, strconv.FormatFloat(cols[j][i], 'g', -1, 64))
		}
		records = append(records, row)
	}
	return table.FromRecords(records)
}

// normalizeColumn transforms one sample column in place.
func normalizeColumn(col []float64, method Method) error {
	switch method {
	case MethodLog10:
		for i, v := range col {
			col[i] = math.Log10(v + 1)
		}
	case MethodCLR:
		logs := make([]float64, len(col))
		for i, v := range col {
			logs[i] = math.Log(v + 1)
		}
		center := stat.Mean(logs, nil)
		for i := range col {
			col[i] = logs[i] - center
		}
	case MethodZScore:
		mean := stat.Mean(col, nil)
		std := stat.PopStdDev(col, nil)
		if std == 0 {
			return fmt.Errorf("zero variance, cannot z-score")
		}
		for i, v := range col {
			col[i] = (v - mean) / std
		}
	default:
		return fmt.Errorf("unknown normalization method %q", method)
	}
	return nil
}
