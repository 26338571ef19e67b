package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/config"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/corpus"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

func f(v float64) *float64 { return &v }

func testCfg() config.AnalysisConfig {
	return config.AnalysisConfig{
		MinSampleInsight: 3,
		Similarity: config.SimilarityConfig{
			TopN: 5, WeightBudget: 0.35, WeightDays: 0.25,
			WeightVisitors: 0.25, WeightArtists: 0.15,
		},
		Quality: config.QualityConfig{Excellent: 30, Good: 10},
		Draft: config.DraftConfig{
			Positive: 15, CostEfficient: -10, Negative: -15,
			CostOverrun: 15, Improvement: -20, Confidence: 0.8,
		},
		Cross: config.CrossConfig{
			BudgetBelow: -5, VisitorsAbove: 5,
			BudgetAbove: 10, VisitorsBelow: -5, PressBelow: -10,
		},
	}
}

func historical(title string, typ, budget, visitors float64) model.Record {
	return model.Record{
		Title: title, Type: f(typ),
		BudgetTotal:   f(budget),
		VisitorsTotal: f(visitors),
		Days:          f(30),
		ArtistsTotal:  f(10),
	}
}

func testTable() *corpus.Table {
	return &corpus.Table{Records: []model.Record{
		historical("특별전", 0, 999_000_000, 99999), // type 0: excluded
		historical("a", 1, 80_000_000, 8000),
		historical("b", 1, 100_000_000, 10000),
		historical("c", 1, 120_000_000, 12000),
		historical("d", 2, 50_000_000, 5000),
	}}
}

func TestAnalyze_MissingCorpusFatal(t *testing.T) {
	e := New(testCfg())
	_, err := e.Analyze(context.Background(), model.Record{}, nil, nil)
	require.Error(t, err)
	_, err = e.Analyze(context.Background(), model.Record{}, &corpus.Table{}, nil)
	require.Error(t, err)
}

func TestAnalyze_FullRun(t *testing.T) {
	e := New(testCfg())
	cur := model.Record{
		Title:         "이번 전시",
		BudgetTotal:   f(70_000_000),
		VisitorsTotal: f(11000),
		Days:          f(30),
		ArtistsTotal:  f(10),
	}

	res, err := e.Analyze(context.Background(), cur, testTable(), nil)
	require.NoError(t, err)

	assert.Equal(t, "역대", res.GroupLabel)
	require.NotEmpty(t, res.Insights)

	// Globally sorted by ascending priority.
	for i := 1; i < len(res.Insights); i++ {
		assert.LessOrEqual(t, res.Insights[i-1].Priority, res.Insights[i].Priority)
	}

	// Similarity runs over the comparable corpus; the type-0 row never
	// appears.
	require.NotEmpty(t, res.Similar)
	for _, row := range res.Similar {
		assert.NotEqual(t, "특별전", row.Title)
	}
}

func TestAnalyze_TypeGroupLabel(t *testing.T) {
	e := New(testCfg())
	cur := model.Record{BudgetTotal: f(90_000_000), VisitorsTotal: f(9000)}

	// Type 1 has three rows: the filtered group is used.
	res, err := e.Analyze(context.Background(), cur, testTable(), f(1))
	require.NoError(t, err)
	assert.Equal(t, "동일 유형(1유형)", res.GroupLabel)

	// Type 2 has one row: fall back to the whole comparable corpus.
	res, err = e.Analyze(context.Background(), cur, testTable(), f(2))
	require.NoError(t, err)
	assert.Equal(t, "역대", res.GroupLabel)
}

func TestAnalyze_SparseCurrentDegrades(t *testing.T) {
	e := New(testCfg())

	res, err := e.Analyze(context.Background(), model.Record{Title: "빈 전시"}, testTable(), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Insights)
	assert.Empty(t, res.Drafts)
	// Degenerate similarity fallback still returns rows in table order.
	assert.NotEmpty(t, res.Similar)
}

func TestAnalyze_DraftsFollowInsights(t *testing.T) {
	e := New(testCfg())
	// 30% below the budget mean of the type-1 group: the audience and
	// cost rules produce drafts.
	cur := model.Record{
		BudgetTotal:   f(70_000_000),
		VisitorsTotal: f(13000),
	}

	res, err := e.Analyze(context.Background(), cur, testTable(), f(1))
	require.NoError(t, err)
	require.NotEmpty(t, res.Drafts)

	byType := res.DraftsByType()
	assert.NotEmpty(t, byType[model.EvalPositive])
}
