// Package similar ranks historical exhibitions by weighted distance to
// the record under evaluation.
package similar

import (
	"math"
	"sort"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/config"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/corpus"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

// ComparisonFields is the fixed metric subset shown in the side-by-side
// comparison table.
var ComparisonFields = []model.Field{
	model.FieldVisitorsTotal,
	model.FieldVisitorsDaily,
	model.FieldBudgetTotal,
	model.FieldProgramCount,
	model.FieldPressCount,
	model.FieldArtworksTotal,
}

type weightedField struct {
	field  model.Field
	weight float64
}

func weightedFields(cfg config.SimilarityConfig) []weightedField {
	return []weightedField{
		{model.FieldBudgetTotal, cfg.WeightBudget},
		{model.FieldDays, cfg.WeightDays},
		{model.FieldVisitorsTotal, cfg.WeightVisitors},
		{model.FieldArtistsTotal, cfg.WeightArtists},
	}
}

// Find returns the top-n historical exhibitions most similar to current,
// scored in [0,1] where 1 is most similar.
//
// For each weighted field the normalized absolute difference to the
// current value is computed over the column's value range; rows missing
// the field take the maximum difference. Fields that cannot be evaluated
// for the whole corpus (current value missing or zero, fewer than two
// valid non-zero entries, zero range) drop out of the weighting
// uniformly. When no field can be evaluated at all, the first top-n rows
// in table order are returned unscored.
func Find(t *corpus.Table, current model.Record, cfg config.SimilarityConfig) []model.SimilarRow {
	topN := cfg.TopN
	if topN <= 0 {
		topN = 5
	}
	if t == nil || t.Len() == 0 {
		return nil
	}

	scores := make([]float64, t.Len())
	totalWeight := 0.0

	for _, wf := range weightedFields(cfg) {
		cur := current.Metric(wf.field)
		if cur == nil || *cur == 0 {
			continue
		}

		min, max, valid := columnRange(t, wf.field)
		if valid < 2 || max-min == 0 {
			continue
		}
		colRange := max - min

		for i := range t.Records {
			v := t.Records[i].Metric(wf.field)
			diff := 1.0 // missing data takes the maximum difference
			if v != nil {
				diff = math.Min(math.Abs(*v-*cur)/colRange, 1.0)
			}
			scores[i] += diff * wf.weight
		}
		totalWeight += wf.weight
	}

	if totalWeight == 0 {
		rows := make([]model.SimilarRow, 0, topN)
		for i := 0; i < t.Len() && i < topN; i++ {
			rows = append(rows, buildRow(t.Records[i], 0))
		}
		return rows
	}

	idx := make([]int, t.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] < scores[idx[b]]
	})

	rows := make([]model.SimilarRow, 0, topN)
	for _, i := range idx {
		if len(rows) == topN {
			break
		}
		rows = append(rows, buildRow(t.Records[i], 1-scores[i]/totalWeight))
	}
	return rows
}

// columnRange scans a column for its min/max over non-missing, non-zero
// entries and counts them.
func columnRange(t *corpus.Table, f model.Field) (min, max float64, valid int) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for i := range t.Records {
		v := t.Records[i].Metric(f)
		if v == nil || *v == 0 {
			continue
		}
		valid++
		if *v < min {
			min = *v
		}
		if *v > max {
			max = *v
		}
	}
	return min, max, valid
}

func buildRow(rec model.Record, score float64) model.SimilarRow {
	metrics := make(map[model.Field]float64)
	for _, f := range ComparisonFields {
		if v := rec.Metric(f); v != nil {
			metrics[f] = *v
		}
	}
	return model.SimilarRow{Title: rec.Title, Similarity: score, Metrics: metrics}
}
