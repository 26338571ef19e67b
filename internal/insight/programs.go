package insight

import (
	"fmt"
	"math"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/config"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/corpus"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

// Programs covers the ancillary program offering: count, participant
// volume, and the participation rate against total visitors.
func Programs(cur model.Record, t *corpus.Table, groupLabel string, cfg config.AnalysisConfig) []model.Insight {
	var insights []model.Insight
	minSample := cfg.MinSampleInsight

	if ins := makeBasic(basicParams{
		category: model.CategoryProgram, section: model.SectionComposition,
		title: "프로그램 수", metric: "프로그램 수",
		current: cur.ProgramCount, stats: t.Stats(model.FieldProgramCount),
		unit: "개", priority: 2, group: groupLabel,
	}, minSample); ins != nil {
		insights = append(insights, *ins)
	}

	if ins := makeBasic(basicParams{
		category: model.CategoryProgram, section: model.SectionComposition,
		title: "프로그램 참여 인원", metric: "프로그램 참여 인원",
		current: cur.Participants, stats: t.Stats(model.FieldParticipants),
		unit: "명", priority: 2, group: groupLabel,
	}, minSample); ins != nil {
		insights = append(insights, *ins)
	}

	if present(cur.Participants) && present(cur.VisitorsTotal) && *cur.VisitorsTotal > 0 {
		valid := validColumn(t, model.FieldParticipationRate)
		if len(valid) >= minSample {
			rate := *cur.Participants / *cur.VisitorsTotal
			avg := mean(valid)
			direction := "낮습니다"
			if rate > avg {
				direction = "높습니다"
			}
			insights = append(insights, model.Insight{
				Category: model.CategoryProgram, Section: model.SectionComposition,
				Title: "프로그램 참여율",
				Text: fmt.Sprintf("프로그램 참여율(참여인원/총관객)은 %.1f%%로, %s 평균(%.1f%%) 대비 %.1f%%p %s.",
					rate*100, groupLabel, avg*100, math.Abs(rate-avg)*100, direction),
				MetricName:   "프로그램 참여율",
				CurrentValue: &rate, ReferenceAvg: &avg,
				Priority: 1, Selected: true,
			})
		}
	}

	return insights
}
