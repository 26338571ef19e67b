package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

func titled(n int) []string {
	titles := make([]string, n)
	for i := range titles {
		titles[i] = "전시"
	}
	return titles
}

func TestCompute_InsufficientData(t *testing.T) {
	assert.Nil(t, Compute(model.FieldVisitorsTotal, nil, nil))
	assert.Nil(t, Compute(model.FieldVisitorsTotal, []float64{5}, []string{"a"}))
}

func TestCompute_MismatchedTitles(t *testing.T) {
	assert.Nil(t, Compute(model.FieldVisitorsTotal, []float64{1, 2}, []string{"a"}))
}

func TestCompute_Basic(t *testing.T) {
	values := []float64{100, 100, 120, 150, 150}
	s := Compute(model.FieldVisitorsTotal, values, titled(5))
	require.NotNil(t, s)

	assert.Equal(t, 5, s.Count)
	assert.Len(t, s.Values, s.Count)
	assert.Len(t, s.Titles, s.Count)
	assert.InDelta(t, 124.0, s.Mean, 1e-9)
	assert.InDelta(t, 120.0, s.Median, 1e-9)
	assert.InDelta(t, 100.0, s.Min, 1e-9)
	assert.InDelta(t, 150.0, s.Max, 1e-9)
	assert.InDelta(t, 100.0, s.Q25, 1e-9)
	assert.InDelta(t, 150.0, s.Q75, 1e-9)
	// sample std of {100,100,120,150,150}: variance = 2420/4 = 605
	assert.InDelta(t, 24.5967, s.Std, 1e-3)
}

func TestCompute_UnsortedInputPreserved(t *testing.T) {
	values := []float64{150, 100, 120}
	titles := []string{"c", "a", "b"}
	s := Compute(model.FieldBudgetTotal, values, titles)
	require.NotNil(t, s)
	// Values/Titles keep the table's row order.
	assert.Equal(t, values, s.Values)
	assert.Equal(t, titles, s.Titles)
	assert.InDelta(t, 100.0, s.Min, 1e-9)
	assert.InDelta(t, 150.0, s.Max, 1e-9)
}

func TestPercentile_WorkedExample(t *testing.T) {
	// corpus {100,100,120,150,150}, current 130:
	// (2 below + 0 equal*0.5)/5*100 = 40
	s := Compute(model.FieldVisitorsTotal, []float64{100, 100, 120, 150, 150}, titled(5))
	require.NotNil(t, s)
	assert.Equal(t, 40, Percentile(s, 130))
}

func TestPercentile_MidpointTies(t *testing.T) {
	s := Compute(model.FieldVisitorsTotal, []float64{100, 100, 120, 150, 150}, titled(5))
	require.NotNil(t, s)
	// value 100: 0 below, 2 equal -> (0 + 1)/5*100 = 20
	assert.Equal(t, 20, Percentile(s, 100))
	// value 150: 3 below, 2 equal -> (3 + 1)/5*100 = 80
	assert.Equal(t, 80, Percentile(s, 150))
}

func TestPercentile_Monotonic(t *testing.T) {
	s := Compute(model.FieldVisitorsTotal, []float64{10, 20, 30, 40, 50, 60}, titled(6))
	require.NotNil(t, s)
	prev := -1
	for _, v := range []float64{5, 15, 25, 35, 45, 55, 65} {
		p := Percentile(s, v)
		assert.GreaterOrEqual(t, p, prev)
		assert.GreaterOrEqual(t, p, 0)
		assert.LessOrEqual(t, p, 100)
		prev = p
	}
}

func TestPercentile_NilStats(t *testing.T) {
	assert.Equal(t, 50, Percentile(nil, 123))
}

func TestRank_WorkedExample(t *testing.T) {
	// sorted desc [150,150,120,100,100]; 130 absent, two values exceed
	// it, so insertion rank is 3.
	s := Compute(model.FieldVisitorsTotal, []float64{100, 100, 120, 150, 150}, titled(5))
	require.NotNil(t, s)
	assert.Equal(t, 3, Rank(s, 130, false))
}

func TestRank_ExtremesAreFirst(t *testing.T) {
	s := Compute(model.FieldVisitorsTotal, []float64{10, 30, 20, 50, 40}, titled(5))
	require.NotNil(t, s)
	assert.Equal(t, 1, Rank(s, 50, false)) // max is rank 1 descending
	assert.Equal(t, 1, Rank(s, 10, true))  // min is rank 1 ascending
}

func TestRank_TiesClaimBestPosition(t *testing.T) {
	s := Compute(model.FieldVisitorsTotal, []float64{100, 100, 120, 150, 150}, titled(5))
	require.NotNil(t, s)
	assert.Equal(t, 1, Rank(s, 150, false))
	assert.Equal(t, 1, Rank(s, 100, true))
}

func TestRank_NearMatchTolerance(t *testing.T) {
	s := Compute(model.FieldCostPerVisitor, []float64{10.0, 20.0, 30.0}, titled(3))
	require.NotNil(t, s)
	// 19.995 is within 0.01 of 20.0 and claims its position.
	assert.Equal(t, 2, Rank(s, 19.995, true))
}

func TestRank_BeyondAllValues(t *testing.T) {
	s := Compute(model.FieldVisitorsTotal, []float64{10, 20, 30}, titled(3))
	require.NotNil(t, s)
	assert.Equal(t, 4, Rank(s, 5, false))  // below every value descending
	assert.Equal(t, 4, Rank(s, 99, true))  // above every value ascending
	assert.Equal(t, 1, Rank(s, 99, false)) // above every value descending
}

func TestRank_NilStats(t *testing.T) {
	assert.Equal(t, 0, Rank(nil, 42, false))
}

func TestQuantile_Interpolation(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}
	assert.InDelta(t, 17.5, quantile(sorted, 0.25), 1e-9)
	assert.InDelta(t, 25.0, quantile(sorted, 0.5), 1e-9)
	assert.InDelta(t, 32.5, quantile(sorted, 0.75), 1e-9)
}
