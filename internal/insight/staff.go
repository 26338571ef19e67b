package insight

import (
	"fmt"
	"math"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/config"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/corpus"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/kotext"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

// Staff covers operating workforce efficiency: visitors served per
// staff member against the historical ratio.
func Staff(cur model.Record, t *corpus.Table, groupLabel string, cfg config.AnalysisConfig) []model.Insight {
	if !present(cur.StaffTotal) || !present(cur.VisitorsTotal) || *cur.StaffTotal <= 0 {
		return nil
	}

	ratios := ratioColumn(t, model.FieldVisitorsTotal, model.FieldStaffTotal)
	if len(ratios) < cfg.MinSampleInsight {
		return nil
	}

	perStaff := *cur.VisitorsTotal / *cur.StaffTotal
	avg := mean(ratios)
	diff := (perStaff - avg) / math.Abs(avg) * 100

	return []model.Insight{{
		Category: model.CategoryStaff, Section: model.SectionComposition,
		Title: "인력당 관객",
		Text: fmt.Sprintf("운영인력 1인당 관객은 %s으로, %s 평균(%s) 대비 %.1f%% %s.",
			kotext.FormatValue(perStaff, "명"), groupLabel, kotext.FormatValue(avg, "명"),
			math.Abs(diff), kotext.DirectionVerb(diff)),
		MetricName:   "인력당 관객",
		CurrentValue: &perStaff, ReferenceAvg: &avg,
		Priority: 3, Selected: true,
	}}
}
