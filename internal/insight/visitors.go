package insight

import (
	"fmt"
	"math"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/config"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/corpus"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

// Visitors covers audience volume and composition: total and daily
// visitor counts, the paid-admission ratio, and the student and art-pass
// segments.
func Visitors(cur model.Record, t *corpus.Table, groupLabel string, cfg config.AnalysisConfig) []model.Insight {
	var insights []model.Insight
	minSample := cfg.MinSampleInsight

	if ins := makeBasic(basicParams{
		category: model.CategoryAudience, section: model.SectionResults,
		title: "총 관객수", metric: "총 관객수",
		current: cur.VisitorsTotal, stats: t.Stats(model.FieldVisitorsTotal),
		unit: "명", priority: 1, group: groupLabel,
	}, minSample); ins != nil {
		insights = append(insights, *ins)
	}

	if ins := makeBasic(basicParams{
		category: model.CategoryAudience, section: model.SectionResults,
		title: "일평균 관객수", metric: "일평균 관객수",
		current: cur.VisitorsDaily, stats: t.Stats(model.FieldVisitorsDaily),
		unit: "명", priority: 2, group: groupLabel,
	}, minSample); ins != nil {
		insights = append(insights, *ins)
	}

	// Paid-admission ratio compares directly against the mean of the
	// derived ratio column rather than the percentile machinery.
	if present(cur.VisitorsPaid) && present(cur.VisitorsTotal) && *cur.VisitorsTotal > 0 {
		valid := validColumn(t, model.FieldPaidRatio)
		if len(valid) >= minSample {
			ratio := *cur.VisitorsPaid / *cur.VisitorsTotal
			avg := mean(valid)
			direction := "낮습니다"
			if ratio > avg {
				direction = "높습니다"
			}
			insights = append(insights, model.Insight{
				Category: model.CategoryAudience, Section: model.SectionResults,
				Title: "유료 관객 비율",
				Text: fmt.Sprintf("유료 관객 비율은 %.1f%%로, %s 평균(%.1f%%) 대비 %.1f%%p %s.",
					ratio*100, groupLabel, avg*100, math.Abs(ratio-avg)*100, direction),
				MetricName:   "유료 관객 비율",
				CurrentValue: &ratio, ReferenceAvg: &avg,
				Priority: 2, Selected: true,
			})
		}
	}

	if present(cur.VisitorsStudent) && present(cur.VisitorsTotal) && *cur.VisitorsTotal > 0 {
		if s := t.Stats(model.FieldVisitorsStudent); s != nil && s.Count >= minSample {
			if ins := makeBasic(basicParams{
				category: model.CategoryAudience, section: model.SectionResults,
				title: "학생 관객수", metric: "학생 관객수",
				current: cur.VisitorsStudent, stats: s,
				unit: "명", priority: 3, group: groupLabel,
			}, minSample); ins != nil {
				insights = append(insights, *ins)
			}
		}
	}

	if present(cur.VisitorsArtPass) && *cur.VisitorsArtPass > 0 {
		if s := t.Stats(model.FieldVisitorsArtPass); s != nil && s.Count >= minSample {
			if ins := makeBasic(basicParams{
				category: model.CategoryAudience, section: model.SectionResults,
				title: "예술인패스 관객", metric: "예술인패스 관객수",
				current: cur.VisitorsArtPass, stats: s,
				unit: "명", priority: 3, group: groupLabel,
			}, minSample); ins != nil {
				insights = append(insights, *ins)
			}
		}
	}

	return insights
}
