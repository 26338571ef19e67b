// Package stats computes descriptive statistics, percentiles and ranks
// for a metric across the reference corpus. All functions degrade to a
// nil/neutral result on insufficient data instead of returning errors:
// an omitted insight is preferred over a wrong one.
package stats

import (
	"math"
	"sort"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

// MinSampleSize is the smallest non-missing count for which statistics
// are defined.
const MinSampleSize = 2

// rankTolerance absorbs floating-point noise when matching a value
// against the sorted reference list.
const rankTolerance = 0.01

// FieldStats describes one metric across a corpus subset. Values and
// Titles are parallel: Titles[i] names the exhibition that contributed
// Values[i]. Count == len(Values) == len(Titles) always holds.
type FieldStats struct {
	Field  model.Field
	Count  int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	Std    float64
	Q25    float64
	Q75    float64
	Values []float64
	Titles []string
}

// Compute builds FieldStats from the non-missing values of a column.
// Returns nil when fewer than MinSampleSize values are present; callers
// must treat nil as "statistics unavailable".
func Compute(field model.Field, values []float64, titles []string) *FieldStats {
	if len(values) < MinSampleSize || len(values) != len(titles) {
		return nil
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	// Sample standard deviation (n-1), matching the reference dataset
	// tooling this replaces.
	var sqSum float64
	for _, v := range values {
		d := v - mean
		sqSum += d * d
	}
	std := math.Sqrt(sqSum / float64(len(values)-1))

	return &FieldStats{
		Field:  field,
		Count:  len(values),
		Mean:   mean,
		Median: quantile(sorted, 0.5),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Std:    std,
		Q25:    quantile(sorted, 0.25),
		Q75:    quantile(sorted, 0.75),
		Values: values,
		Titles: titles,
	}
}

// quantile interpolates linearly between closest ranks, matching the
// default behavior of the tooling the reference data came from.
// sorted must be ascending and non-empty.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Percentile places value within the reference distribution on a 0-100
// scale using the midpoint convention: ties split their percentile mass
// evenly instead of biasing toward either extreme. Returns the neutral
// default 50 when s is nil — not a computed quantity.
func Percentile(s *FieldStats, value float64) int {
	if s == nil || s.Count == 0 {
		return 50
	}
	var below, equal int
	for _, v := range s.Values {
		switch {
		case v < value:
			below++
		case v == value:
			equal++
		}
	}
	pct := (float64(below) + float64(equal)*0.5) / float64(s.Count) * 100
	return int(math.Round(pct))
}

// Rank returns the 1-based position of value in the reference list,
// sorted descending (rank 1 = highest) or ascending when ascending is
// true (rank 1 = lowest; used for cost-like metrics). A near-exact
// match (|diff| < 0.01) claims the best rank at its sorted position.
// Absent values rank at their strict-order insertion position, or
// count+1 beyond every existing value. Returns 0 when s is nil.
//
// When floating-point noise ties several neighbors at once the first
// rule match in iteration order wins; this is documented behavior.
func Rank(s *FieldStats, value float64, ascending bool) int {
	if s == nil || s.Count == 0 {
		return 0
	}
	sorted := append([]float64(nil), s.Values...)
	if ascending {
		sort.Float64s(sorted)
	} else {
		sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	}

	for i, v := range sorted {
		if math.Abs(v-value) < rankTolerance || v == value {
			return i + 1
		}
	}
	for i, v := range sorted {
		if (!ascending && value > v) || (ascending && value < v) {
			return i + 1
		}
	}
	return len(sorted) + 1
}
