// Package insight turns statistics about the current exhibition into
// typed, human-readable findings and auto-drafted evaluation sentences.
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

// Generator produces the insights of one category. Generators are pure
// functions over the current record and the filtered corpus, safe to
// run concurrently.
type Generator func(cur model.Record, t *corpus.Table, groupLabel string, cfg config.AnalysisConfig) []model.Insight

// Generators in the fixed category order the orchestrator merges them.
var Generators = []Generator{
	Visitors, Budget, Programs, Artworks, Promotion, Staff, Cross,
}

type basicParams struct {
	category      model.Category
	section       model.Section
	title         string
	metric        string
	current       *float64
	stats         *stats.FieldStats
	unit          string
	lowerIsBetter bool
	priority      int
	group         string
}

// makeBasic builds the standard single-metric comparison sentence, or
// nil when the data cannot support one: missing or zero current value,
// unavailable stats, too small a sample, or a zero reference mean.
func makeBasic(p basicParams, minSample int) *model.Insight {
	if !present(p.current) || p.stats == nil || p.stats.Count < minSample {
		return nil
	}
	avg := p.stats.Mean
	if avg == 0 {
		return nil
	}
	cur := *p.current
	diff := (cur - avg) / math.Abs(avg) * 100
	pct := stats.Percentile(p.stats, cur)
	rank := stats.Rank(p.stats, cur, p.lowerIsBetter)
	curFmt := kotext.FormatValue(cur, p.unit)
	avgFmt := kotext.FormatValue(avg, p.unit)
	text := fmt.Sprintf(
		"이번 전시의 %s%s %s%s, %s 평균(%s) 대비 %.1f%% %s (%d개 전시 중 %d위).",
		p.metric, kotext.TopicParticle(p.metric),
		curFmt, kotext.InstrumentalParticle(curFmt),
		p.group, avgFmt, math.Abs(diff), kotext.DirectionVerb(diff),
		p.stats.Count, rank,
	)
	return &model.Insight{
		Category:     p.category,
		Section:      p.section,
		Title:        p.title,
		Text:         text,
		MetricName:   p.metric,
		CurrentValue: &cur,
		ReferenceAvg: &avg,
		Percentile:   &pct,
		Rank:         &rank,
		TotalCount:   &p.stats.Count,
		Priority:     p.priority,
		Selected:     true,
	}
}

// diffPct is the deviation of val from the reference mean in percent,
// nil when it cannot be computed.
func diffPct(val *float64, s *stats.FieldStats) *float64 {
	if val == nil || s == nil || s.Mean == 0 {
		return nil
	}
	d := (*val - s.Mean) / math.Abs(s.Mean) * 100
	return &d
}

// qualityWord classifies a deviation into one of five qualitative
// bands. The banding inverts for metrics where lower is better.
func qualityWord(diff float64, lowerIsBetter bool, q config.QualityConfig) string {
	if lowerIsBetter {
		switch {
		case diff < -q.Excellent:
			return "매우 효율적인"
		case diff < -q.Good:
			return "효율적인"
		case diff < q.Good:
			return "평균 수준의"
		case diff < q.Excellent:
			return "다소 높은"
		default:
			return "높은"
		}
	}
	switch {
	case diff > q.Excellent:
		return "매우 우수한"
	case diff > q.Good:
		return "양호한"
	case diff > -q.Good:
		return "평균 수준의"
	case diff > -q.Excellent:
		return "다소 저조한"
	default:
		return "저조한"
	}
}

func present(v *float64) bool { return v != nil && *v != 0 }

// ratioColumn computes numerator/denominator per row, skipping rows
// where either side is missing or the denominator is not positive.
func ratioColumn(t *corpus.Table, num, den model.Field) []float64 {
	var out []float64
	for i := range t.Records {
		n := t.Records[i].Metric(num)
		d := t.Records[i].Metric(den)
		if n == nil || d == nil || *d <= 0 {
			continue
		}
		out = append(out, *n / *d)
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// validColumn drops missing entries of a field, preserving row order.
func validColumn(t *corpus.Table, f model.Field) []float64 {
	values, _ := t.Column(f)
	return values
}
