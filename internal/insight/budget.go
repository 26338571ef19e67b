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

// Budget covers spend and efficiency: total budget, cost per visitor
// (lower is better), the direct-exhibition spend share, and the
// revenue-recovery ratio.
func Budget(cur model.Record, t *corpus.Table, groupLabel string, cfg config.AnalysisConfig) []model.Insight {
	var insights []model.Insight
	minSample := cfg.MinSampleInsight

	if ins := makeBasic(basicParams{
		category: model.CategoryBudget, section: model.SectionResults,
		title: "총 사용 예산", metric: "총 사용 예산",
		current: cur.BudgetTotal, stats: t.Stats(model.FieldBudgetTotal),
		unit: "원", priority: 2, group: groupLabel,
	}, minSample); ins != nil {
		insights = append(insights, *ins)
	}

	if present(cur.BudgetTotal) && present(cur.VisitorsTotal) && *cur.VisitorsTotal > 0 {
		valid := validColumn(t, model.FieldCostPerVisitor)
		if len(valid) >= minSample {
			cost := *cur.BudgetTotal / *cur.VisitorsTotal
			avg := mean(valid)
			diff := (cost - avg) / math.Abs(avg) * 100
			ins := model.Insight{
				Category: model.CategoryBudget, Section: model.SectionResults,
				Title: "관객당 비용",
				Text: fmt.Sprintf("관객당 비용은 %s으로, %s 평균(%s) 대비 %.1f%% %s (%s 수준).",
					kotext.FormatValue(cost, "원"), groupLabel, kotext.FormatValue(avg, "원"),
					math.Abs(diff), kotext.DirectionVerb(diff),
					qualityWord(diff, true, cfg.Quality)),
				MetricName:   "관객당 비용",
				CurrentValue: &cost, ReferenceAvg: &avg,
				Priority: 1, Selected: true,
			}
			if s := t.Stats(model.FieldCostPerVisitor); s != nil {
				rank := stats.Rank(s, cost, true)
				ins.Rank = &rank
			}
			insights = append(insights, ins)
		}
	}

	// Budget structure: where did the money go, direct exhibition costs
	// or ancillary programs.
	if present(cur.BudgetExhibition) && present(cur.BudgetTotal) && *cur.BudgetTotal > 0 {
		ratios := ratioColumn(t, model.FieldBudgetExhibition, model.FieldBudgetTotal)
		if len(ratios) >= minSample {
			exhRatio := *cur.BudgetExhibition / *cur.BudgetTotal
			avg := mean(ratios)
			structure := "부대 사업에 상대적으로 많이 배분한"
			if exhRatio > avg {
				structure = "전시 직접비에 집중 투자한"
			}
			insights = append(insights, model.Insight{
				Category: model.CategoryBudget, Section: model.SectionResults,
				Title: "예산 구조",
				Text: fmt.Sprintf("전시비 비율은 %.1f%%로, %s 평균(%.1f%%)과 비교됩니다. %s 구조입니다.",
					exhRatio*100, groupLabel, avg*100, structure),
				MetricName:   "전시비 비율",
				CurrentValue: &exhRatio, ReferenceAvg: &avg,
				Priority: 3, Selected: true,
			})
		}
	}

	if present(cur.BudgetTotal) && present(cur.RevenueTotal) && *cur.BudgetTotal > 0 {
		valid := validColumn(t, model.FieldRevenueBudget)
		if len(valid) >= minSample {
			ratio := *cur.RevenueTotal / *cur.BudgetTotal
			avg := mean(valid)
			direction := "하회"
			if ratio > avg {
				direction = "상회"
			}
			insights = append(insights, model.Insight{
				Category: model.CategoryBudget, Section: model.SectionResults,
				Title: "예산 회수율",
				Text: fmt.Sprintf("예산 대비 수입 비율은 %.1f%%로, %s 평균(%.1f%%)을 %s합니다.",
					ratio*100, groupLabel, avg*100, direction),
				MetricName:   "예산 회수율",
				CurrentValue: &ratio, ReferenceAvg: &avg,
				Priority: 1, Selected: true,
			})
		}
	}

	return insights
}
