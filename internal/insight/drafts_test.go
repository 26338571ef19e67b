package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

func ins(metric string, current, avg float64) model.Insight {
	return model.Insight{MetricName: metric, CurrentValue: &current, ReferenceAvg: &avg}
}

func TestSynthesizeDrafts_PositiveAudience(t *testing.T) {
	drafts := SynthesizeDrafts([]model.Insight{
		ins("총 관객수", 120, 100), // +20%
	}, testCfg().Draft)

	require.Len(t, drafts, 1)
	assert.Equal(t, model.EvalPositive, drafts[0].Type)
	assert.Equal(t, "총 관객수", drafts[0].SourceMetric)
	assert.Contains(t, drafts[0].Text, "20% 높은 우수한 성과")
	assert.InDelta(t, 0.8, drafts[0].Confidence, 1e-9)
	assert.True(t, drafts[0].Selected)
}

func TestSynthesizeDrafts_CostEfficientPositive(t *testing.T) {
	// 30% below the cost mean independently triggers the efficiency
	// positive, the worked case from the deviation rules.
	drafts := SynthesizeDrafts([]model.Insight{
		ins("관객당 비용", 7000, 10000), // -30%
	}, testCfg().Draft)

	require.Len(t, drafts, 1)
	assert.Equal(t, model.EvalPositive, drafts[0].Type)
	assert.Contains(t, drafts[0].Text, "30% 낮아 효율적인 예산 운영")
}

func TestSynthesizeDrafts_CostOverrunNegative(t *testing.T) {
	drafts := SynthesizeDrafts([]model.Insight{
		ins("관객당 비용", 13000, 10000), // +30%
	}, testCfg().Draft)

	// The audience keyword also matches 관객당 비용, so the audience
	// positive branch fires alongside the cost negative.
	byType := map[model.EvalType]model.EvalDraft{}
	for _, d := range drafts {
		byType[d.Type] = d
	}
	neg, ok := byType[model.EvalNegative]
	require.True(t, ok)
	assert.Contains(t, neg.Text, "예산 효율성 면에서 개선이 필요합니다")
}

func TestSynthesizeDrafts_NegativeAndImprovement(t *testing.T) {
	drafts := SynthesizeDrafts([]model.Insight{
		ins("총 관객수", 70, 100), // -30%: negative and improvement
	}, testCfg().Draft)

	require.Len(t, drafts, 2)
	assert.Equal(t, model.EvalNegative, drafts[0].Type)
	assert.Contains(t, drafts[0].Text, "30% 낮은 수치")
	assert.Equal(t, model.EvalImprovement, drafts[1].Type)
	assert.Contains(t, drafts[1].Text, "다채널 홍보 전략")
}

func TestSynthesizeDrafts_ParticipationBranches(t *testing.T) {
	pos := SynthesizeDrafts([]model.Insight{
		ins("프로그램 참여율", 0.24, 0.20), // +20%
	}, testCfg().Draft)
	require.Len(t, pos, 1)
	assert.Contains(t, pos[0].Text, "관객 경험 강화")

	neg := SynthesizeDrafts([]model.Insight{
		ins("프로그램 참여율", 0.15, 0.20), // -25%
	}, testCfg().Draft)
	require.Len(t, neg, 2)
	assert.Equal(t, model.EvalNegative, neg[0].Type)
	assert.Equal(t, model.EvalImprovement, neg[1].Type)
	assert.Contains(t, neg[1].Text, "사전 예약 시스템")
}

func TestSynthesizeDrafts_RecoveryAndPress(t *testing.T) {
	rec := SynthesizeDrafts([]model.Insight{
		ins("예산 회수율", 1.2, 1.0), // +20%
	}, testCfg().Draft)
	require.Len(t, rec, 1)
	assert.Contains(t, rec[0].Text, "예산 회수율이 120.0%로")

	press := SynthesizeDrafts([]model.Insight{
		ins("언론 보도 건수", 5, 10), // -50%
	}, testCfg().Draft)
	require.Len(t, press, 1)
	assert.Equal(t, model.EvalImprovement, press[0].Type)
	assert.Contains(t, press[0].Text, "보도자료 배포 시점")
}

func TestSynthesizeDrafts_SkipsUnusableInsights(t *testing.T) {
	zero := 0.0
	v := 100.0
	drafts := SynthesizeDrafts([]model.Insight{
		{MetricName: "총 관객수"},                                      // no values
		{MetricName: "총 관객수", CurrentValue: &v, ReferenceAvg: &zero}, // zero mean
	}, testCfg().Draft)
	assert.Empty(t, drafts)
}

func TestSynthesizeDrafts_DedupFirstWins(t *testing.T) {
	first := ins("총 관객수", 120, 100)
	second := ins("총 관객수", 150, 100)
	drafts := SynthesizeDrafts([]model.Insight{first, second}, testCfg().Draft)

	require.Len(t, drafts, 1)
	// +20% from the first insight, not +50% from the second.
	assert.Contains(t, drafts[0].Text, "20%")
}
