package insight

import (
	"fmt"
	"math"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/config"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/corpus"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/kotext"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/stats"
)

// Cross holds the conjunction rules combining two independent deviation
// signals: budget vs visitors, press vs visitors, and revenue recovery
// against the historical norm.
func Cross(cur model.Record, t *corpus.Table, groupLabel string, cfg config.AnalysisConfig) []model.Insight {
	var insights []model.Insight
	th := cfg.Cross

	bDiff := diffPct(cur.BudgetTotal, t.Stats(model.FieldBudgetTotal))
	vDiff := diffPct(cur.VisitorsTotal, t.Stats(model.FieldVisitorsTotal))

	// Budget vs visitors efficiency.
	if present(cur.BudgetTotal) && present(cur.VisitorsTotal) && *cur.VisitorsTotal > 0 &&
		bDiff != nil && vDiff != nil {
		cost := *cur.BudgetTotal / *cur.VisitorsTotal
		if cStats := t.Stats(model.FieldCostPerVisitor); cStats != nil && cStats.Count >= cfg.MinSampleInsight {
			cRank := stats.Rank(cStats, cost, true)
			switch {
			case *bDiff < th.BudgetBelow && *vDiff > th.VisitorsAbove:
				insights = append(insights, model.Insight{
					Category: model.CategoryCross, Section: model.SectionEvaluation,
					Title: "예산 대비 관객 효율",
					Text: fmt.Sprintf("총 사용 예산은 %s 평균 대비 %.0f%% 낮았으나, 총 관객수는 오히려 %.0f%% 높아 관객당 비용 %s으로 매우 효율적인 운영을 보였습니다 (%d개 전시 중 %d위).",
						groupLabel, math.Abs(*bDiff), math.Abs(*vDiff),
						kotext.FormatValue(cost, "원"), cStats.Count, cRank),
					MetricName:   "예산-관객 효율",
					CurrentValue: &cost,
					Priority:     1, Selected: true,
				})
			case *bDiff > th.BudgetAbove && *vDiff < th.VisitorsBelow:
				insights = append(insights, model.Insight{
					Category: model.CategoryCross, Section: model.SectionEvaluation,
					Title: "예산 대비 관객 효율",
					Text: fmt.Sprintf("총 사용 예산은 %s 평균 대비 %.0f%% 높았으나, 총 관객수는 %.0f%% 낮아 관객당 비용이 %s에 달했습니다. 향후 예산 효율 개선이 필요합니다.",
						groupLabel, math.Abs(*bDiff), math.Abs(*vDiff),
						kotext.FormatValue(cost, "원")),
					MetricName:   "예산-관객 비효율",
					CurrentValue: &cost,
					Priority:     1, Selected: true,
				})
			}
		}
	}

	// Press vs visitors: strong turnout despite weak coverage points at
	// other promotion channels.
	pDiff := diffPct(cur.PressCount, t.Stats(model.FieldPressCount))
	if present(cur.PressCount) && present(cur.VisitorsTotal) && pDiff != nil && vDiff != nil {
		if *pDiff < th.PressBelow && *vDiff > th.VisitorsAbove {
			insights = append(insights, model.Insight{
				Category: model.CategoryCross, Section: model.SectionEvaluation,
				Title: "홍보 채널 효과",
				Text: fmt.Sprintf("언론 보도는 %s 평균 대비 %.0f%% 적었으나 총 관객수는 %.0f%% 높아, 보도 외 채널(SNS, 구전 등)의 홍보 효과가 컸던 것으로 보입니다.",
					groupLabel, math.Abs(*pDiff), math.Abs(*vDiff)),
				MetricName: "보도-관객 관계",
				Priority:   2, Selected: true,
			})
		}
	}

	// Recovery overperformance: revenue beat the budget while the
	// corpus norm stays below break-even.
	if present(cur.RevenueTotal) && present(cur.BudgetTotal) && *cur.BudgetTotal > 0 {
		valid := validColumn(t, model.FieldRevenueBudget)
		if len(valid) >= cfg.MinSampleInsight {
			recovery := *cur.RevenueTotal / *cur.BudgetTotal
			avg := mean(valid)
			if recovery > 1.0 && avg < 1.0 {
				insights = append(insights, model.Insight{
					Category: model.CategoryCross, Section: model.SectionEvaluation,
					Title: "예산 회수율 초과",
					Text: fmt.Sprintf("총수입(%s)이 총예산(%s)을 초과하여 예산 회수율 %.1f%%를 달성했습니다 (%s 평균 %.1f%%).",
						kotext.FormatNumber(cur.RevenueTotal, "원"), kotext.FormatNumber(cur.BudgetTotal, "원"),
						recovery*100, groupLabel, avg*100),
					MetricName:   "예산 회수율",
					CurrentValue: &recovery, ReferenceAvg: &avg,
					Priority: 1, Selected: true,
				})
			}
		}
	}

	return insights
}
