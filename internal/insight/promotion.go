package insight

import (
	"fmt"
	"math"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/config"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/corpus"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/kotext"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

// Promotion covers outreach: press coverage, visitors drawn per press
// mention, and social-media activity.
func Promotion(cur model.Record, t *corpus.Table, groupLabel string, cfg config.AnalysisConfig) []model.Insight {
	var insights []model.Insight
	minSample := cfg.MinSampleInsight

	if ins := makeBasic(basicParams{
		category: model.CategoryPromotion, section: model.SectionPromotion,
		title: "언론 보도", metric: "언론 보도 건수",
		current: cur.PressCount, stats: t.Stats(model.FieldPressCount),
		unit: "건", priority: 2, group: groupLabel,
	}, minSample); ins != nil {
		insights = append(insights, *ins)
	}

	if present(cur.PressCount) && present(cur.VisitorsTotal) && *cur.PressCount > 0 {
		valid := validColumn(t, model.FieldVisitorsPerPress)
		if len(valid) >= minSample {
			vpc := *cur.VisitorsTotal / *cur.PressCount
			avg := mean(valid)
			diff := (vpc - avg) / math.Abs(avg) * 100
			insights = append(insights, model.Insight{
				Category: model.CategoryPromotion, Section: model.SectionPromotion,
				Title: "보도건당 관객",
				Text: fmt.Sprintf("보도 1건당 관객은 %s으로, %s 평균(%s) 대비 %.1f%% %s.",
					kotext.FormatValue(vpc, "명"), groupLabel, kotext.FormatValue(avg, "명"),
					math.Abs(diff), kotext.DirectionVerb(diff)),
				MetricName:   "보도건당 관객",
				CurrentValue: &vpc, ReferenceAvg: &avg,
				Priority: 1, Selected: true,
			})
		}
	}

	if ins := makeBasic(basicParams{
		category: model.CategoryPromotion, section: model.SectionPromotion,
		title: "SNS 활동", metric: "SNS 게시 건수",
		current: cur.SNSPosts, stats: t.Stats(model.FieldSNSPosts),
		unit: "건", priority: 3, group: groupLabel,
	}, minSample); ins != nil {
		insights = append(insights, *ins)
	}

	return insights
}
