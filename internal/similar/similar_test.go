package similar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/config"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/corpus"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

func f(v float64) *float64 { return &v }

func testWeights() config.SimilarityConfig {
	return config.SimilarityConfig{
		TopN:           5,
		WeightBudget:   0.35,
		WeightDays:     0.25,
		WeightVisitors: 0.25,
		WeightArtists:  0.15,
	}
}

func record(title string, budget, days, visitors, artists *float64) model.Record {
	return model.Record{
		Title:         title,
		BudgetTotal:   budget,
		Days:          days,
		VisitorsTotal: visitors,
		ArtistsTotal:  artists,
	}
}

func TestFind_ExactMatchRanksFirst(t *testing.T) {
	table := &corpus.Table{Records: []model.Record{
		record("far", f(90_000_000), f(90), f(30000), f(40)),
		record("twin", f(50_000_000), f(30), f(10000), f(10)),
		record("near", f(55_000_000), f(35), f(11000), f(12)),
	}}
	current := record("현재", f(50_000_000), f(30), f(10000), f(10))

	rows := Find(table, current, testWeights())
	require.Len(t, rows, 3)
	assert.Equal(t, "twin", rows[0].Title)
	assert.InDelta(t, 1.0, rows[0].Similarity, 1e-9)
	assert.Equal(t, "near", rows[1].Title)
	assert.Equal(t, "far", rows[2].Title)

	for _, row := range rows {
		assert.GreaterOrEqual(t, row.Similarity, 0.0)
		assert.LessOrEqual(t, row.Similarity, 1.0)
	}
}

func TestFind_MissingFieldPenalized(t *testing.T) {
	table := &corpus.Table{Records: []model.Record{
		record("complete", f(60_000_000), f(40), f(12000), f(15)),
		record("gappy", nil, f(40), f(12000), f(15)),
		record("anchor", f(10_000_000), f(10), f(1000), f(2)),
	}}
	current := record("현재", f(60_000_000), f(40), f(12000), f(15))

	rows := Find(table, current, testWeights())
	require.Len(t, rows, 3)
	assert.Equal(t, "complete", rows[0].Title)
	// The missing budget cell costs the full field weight.
	assert.Equal(t, "gappy", rows[1].Title)
	assert.Greater(t, rows[0].Similarity, rows[1].Similarity)
}

func TestFind_DegenerateFallback(t *testing.T) {
	// No current values at all: no field can be evaluated.
	table := &corpus.Table{Records: []model.Record{
		record("a", f(1), f(1), f(1), f(1)),
		record("b", f(2), f(2), f(2), f(2)),
		record("c", f(3), f(3), f(3), f(3)),
	}}
	cfg := testWeights()
	cfg.TopN = 2

	rows := Find(table, model.Record{Title: "현재"}, cfg)
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].Title)
	assert.Equal(t, "b", rows[1].Title)
	assert.Zero(t, rows[0].Similarity)
}

func TestFind_SkipsDegenerateColumns(t *testing.T) {
	// Budget column has a single valid entry and days are constant:
	// only visitors and artists participate in the weighting.
	table := &corpus.Table{Records: []model.Record{
		record("a", f(5_000_000), f(30), f(10000), f(10)),
		record("b", nil, f(30), f(20000), f(20)),
		record("c", nil, f(30), f(30000), f(30)),
	}}
	current := record("현재", f(5_000_000), f(30), f(10000), f(10))

	rows := Find(table, current, testWeights())
	require.Len(t, rows, 3)
	// "a" matches on the two live fields exactly; a budget penalty on
	// b/c would be visible only if the degenerate column were scored.
	assert.Equal(t, "a", rows[0].Title)
	assert.InDelta(t, 1.0, rows[0].Similarity, 1e-9)
}

func TestFind_TruncatesToTopN(t *testing.T) {
	var recs []model.Record
	for i := 0; i < 10; i++ {
		v := float64(1000 * (i + 1))
		recs = append(recs, record("r", f(v), f(v), f(v), f(v)))
	}
	table := &corpus.Table{Records: recs}
	cfg := testWeights()
	cfg.TopN = 4

	rows := Find(table, record("현재", f(1000), f(1000), f(1000), f(1000)), cfg)
	assert.Len(t, rows, 4)
}

func TestFind_EmptyTable(t *testing.T) {
	assert.Nil(t, Find(&corpus.Table{}, model.Record{}, testWeights()))
	assert.Nil(t, Find(nil, model.Record{}, testWeights()))
}

func TestFind_ComparisonMetrics(t *testing.T) {
	rec := record("a", f(5_000_000), f(30), f(10000), f(10))
	rec.PressCount = f(12)
	rec.ArtworksTotal = f(80)
	table := &corpus.Table{Records: []model.Record{rec}}

	rows := Find(table, record("현재", f(5_000_000), nil, nil, nil), testWeights())
	require.Len(t, rows, 1)
	m := rows[0].Metrics
	assert.InDelta(t, 10000, m[model.FieldVisitorsTotal], 1e-9)
	assert.InDelta(t, 5_000_000, m[model.FieldBudgetTotal], 1e-9)
	assert.InDelta(t, 12, m[model.FieldPressCount], 1e-9)
	assert.InDelta(t, 80, m[model.FieldArtworksTotal], 1e-9)
	_, ok := m[model.FieldVisitorsDaily]
	assert.False(t, ok)
}
