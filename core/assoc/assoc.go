// Package assoc computes cross-association tables between a feature
// table and a target table: pairwise correlations over shared samples,
// with two-sided p-values and Benjamini-Hochberg adjustment.
package assoc

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/JetbluejetYJ/dokdo/core"
	"github.com/JetbluejetYJ/dokdo/core/table"
)

// Method selects the correlation statistic.
type Method string

const (
	// MethodSpearman is Pearson correlation on average-tied ranks.
	MethodSpearman Method = "spearman"
	// MethodPearson is plain Pearson correlation.
	MethodPearson Method = "pearson"
)

// Options control the association computation.
type Options struct {
	Method Method
	Alpha  float64 // significance threshold on adjusted p-values
	NSig   int     // min significant partners to keep a taxon or target
}

// Pair is one row of the long-format association table.
type Pair struct {
	Taxon  string
	Target string
	Corr   float64
	Pval   float64
	AdjP   float64
}

// Table correlates every feature row against every target row over the
// sample columns the two tables share. Both inputs have variables as
// rows (identifier in the first column) and samples as columns. The
// result is sorted by p-value.
func Table(features, target dataframe.DataFrame, opts Options) ([]Pair, error) {
	if opts.Method != MethodSpearman && opts.Method != MethodPearson {
		return nil, fmt.Errorf("unknown association method %q", opts.Method)
	}

	shared := sharedSamples(features, target)
	if len(shared) == 0 {
		return nil, &core.SchemaError{Reason: "feature and target tables share no sample column"}
	}
	if len(shared) < 3 {
		return nil, fmt.Errorf("need at least 3 shared samples, got %d", len(shared))
	}

	taxa, feats, err := matrix(features, shared)
	if err != nil {
		return nil, fmt.Errorf("feature table: %w", err)
	}
	targets, targs, err := matrix(target, shared)
	if err != nil {
		return nil, fmt.Errorf("target table: %w", err)
	}

	if opts.Method == MethodSpearman {
		for i := range feats {
			feats[i] = ranks(feats[i])
		}
		for i := range targs {
			targs[i] = ranks(targs[i])
		}
	}

	n := len(shared)
	pairs := make([]Pair, 0, len(taxa)*len(targets))
	pvals := make([]float64, 0, len(taxa)*len(targets))
	for i, taxon := range taxa {
		for j, tg := range targets {
			r := stat.Correlation(feats[i], targs[j], nil)
			p := pValue(r, n)
			pairs = append(pairs, Pair{Taxon: taxon, Target: tg, Corr: r, Pval: p})
			pvals = append(pvals, p)
		}
	}

	adj := AdjustBH(pvals)
	for i := range pairs {
		pairs[i].AdjP = adj[i]
	}

	if opts.NSig > 0 {
		pairs = filterNSig(pairs, opts.Alpha, opts.NSig)
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].Pval != pairs[j].Pval {
			return pairs[i].Pval < pairs[j].Pval
		}
		if pairs[i].Taxon != pairs[j].Taxon {
			return pairs[i].Taxon < pairs[j].Taxon
		}
		return pairs[i].Target < pairs[j].Target
	})
	return pairs, nil
}

// Frame converts an association table to a dataframe for writing.
func Frame(pairs []Pair) (dataframe.DataFrame, error) {
	records := make([][]string, 0, len(pairs)+1)
	records = append(records, []string{"taxon", "target", "corr", "pval", "adjp"})
	for _, p := range pairs {
		records = append(records, []string{
			p.Taxon,
			p.Target,
			strconv.FormatFloat(p.Corr, 'g', -1, 64),
			strconv.FormatFloat(p.Pval, 'g', -1, 64),
			strconv.FormatFloat(p.AdjP, 'g', -1, 64),
		})
	}
	return table.FromRecords(records)
}

// AdjustBH applies the Benjamini-Hochberg step-up procedure, returning
// adjusted p-values in the input order.
func AdjustBH(p []float64) []float64 {
	n := len(p)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return p[order[a]] < p[order[b]] })

	adj := make([]float64, n)
	min := math.Inf(1)
	for k := n - 1; k >= 0; k-- {
		idx := order[k]
		v := p[idx] * float64(n) / float64(k+1)
		if v < min {
			min = v
		}
		if min > 1 {
			adj[idx] = 1
		} else {
			adj[idx] = min
		}
	}
	return adj
}

// sharedSamples returns the sample columns present in both tables, in
// the feature-table order. The first column of each table is its row
// identifier, not a sample.
func sharedSamples(a, b dataframe.DataFrame) []string {
	bNames := b.Names()
	inB := make(map[string]bool, len(bNames))
	for _, n := range bNames[1:] {
		inB[n] = true
	}
	var shared []string
	for _, n := range a.Names()[1:] {
		if inB[n] {
			shared = append(shared, n)
		}
	}
	return shared
}

// matrix extracts the row identifiers and the per-row value vectors over
// the given sample columns.
func matrix(df dataframe.DataFrame, samples []string) ([]string, [][]float64, error) {
	ids := df.Col(df.Names()[0]).Records()
	rows := make([][]float64, len(ids))
	for i := range rows {
		rows[i] = make([]float64, len(samples))
	}
	for j, s := range samples {
		recs := df.Col(s).Records()
		for i, v := range recs {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("sample %q row %q: invalid value %q", s, ids[i], v)
			}
			rows[i][j] = f
		}
	}
	return ids, rows, nil
}

// ranks returns 1-based ranks with ties assigned their average rank.
func ranks(x []float64) []float64 {
	n := len(x)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return x[order[a]] < x[order[b]] })

	r := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && x[order[j+1]] == x[order[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			r[order[k]] = avg
		}
		i = j + 1
	}
	return r
}

// pValue is the two-sided p-value for a correlation r over n samples,
// from the t distribution with n-2 degrees of freedom.
func pValue(r float64, n int) float64 {
	denom := 1 - r*r
	if denom <= 0 {
		return 0
	}
	t := r * math.Sqrt(float64(n-2)/denom)
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
	return 2 * dist.CDF(-math.Abs(t))
}

// filterNSig keeps only pairs whose taxon and target each have at least
// nsig partners significant at alpha (on adjusted p-values).
func filterNSig(pairs []Pair, alpha float64, nsig int) []Pair {
	taxonSig := make(map[string]int)
	targetSig := make(map[string]int)
	for _, p := range pairs {
		if p.AdjP <= alpha {
			taxonSig[p.Taxon]++
			targetSig[p.Target]++
		}
	}
	var kept []Pair
	for _, p := range pairs {
		if taxonSig[p.Taxon] >= nsig && targetSig[p.Target] >= nsig {
			kept = append(kept, p)
		}
	}
	return kept
}
