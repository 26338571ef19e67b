package insight

import (
	"fmt"
	"strings"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/config"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/corpus"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

// mediumFields is the fixed medium taxonomy for the composition
// analysis, in display order.
var mediumFields = []struct {
	field model.Field
	label string
}{
	{model.FieldArtworksPainting, "회화"},
	{model.FieldArtworksSculpt, "조각"},
	{model.FieldArtworksPhoto, "사진"},
	{model.FieldArtworksInstall, "설치"},
	{model.FieldArtworksMedia, "미디어"},
	{model.FieldArtworksOther, "기타"},
}

// Artworks covers the exhibited works: total count plus a per-medium
// composition analysis that compares the dominant medium's share
// against the historical norm.
func Artworks(cur model.Record, t *corpus.Table, groupLabel string, cfg config.AnalysisConfig) []model.Insight {
	var insights []model.Insight
	minSample := cfg.MinSampleInsight

	if ins := makeBasic(basicParams{
		category: model.CategoryArtwork, section: model.SectionComposition,
		title: "출품 작품 수", metric: "출품 작품 수",
		current: cur.ArtworksTotal, stats: t.Stats(model.FieldArtworksTotal),
		unit: "점", priority: 2, group: groupLabel,
	}, minSample); ins != nil {
		insights = append(insights, *ins)
	}

	if !present(cur.ArtworksTotal) || *cur.ArtworksTotal <= 0 {
		return insights
	}
	total := *cur.ArtworksTotal

	// Per-medium counts of the current exhibition. The dominant medium
	// is the first maximum in taxonomy order.
	counts := make(map[string]float64)
	dominant := ""
	for _, mf := range mediumFields {
		v := cur.Metric(mf.field)
		if v == nil || *v <= 0 {
			continue
		}
		counts[mf.label] = *v
		if dominant == "" || *v > counts[dominant] {
			dominant = mf.label
		}
	}
	if dominant == "" {
		return insights
	}
	dominantPct := counts[dominant] / total * 100

	// Corpus average share per medium, each requiring a usable sample.
	refShares := make(map[string]float64)
	for _, mf := range mediumFields {
		ratios := ratioColumn(t, mf.field, model.FieldArtworksTotal)
		if len(ratios) >= minSample {
			refShares[mf.label] = mean(ratios) * 100
		}
	}
	if len(refShares) == 0 {
		return insights
	}
	refDominantPct := refShares[dominant]

	var parts []string
	for _, mf := range mediumFields {
		if c, ok := counts[mf.label]; ok {
			parts = append(parts, fmt.Sprintf("%s %.0f점(%.0f%%)", mf.label, c, c/total*100))
		}
	}

	text := fmt.Sprintf("출품 작품의 매체 구성은 %s입니다. ", strings.Join(parts, ", "))
	if refDominantPct > 0 {
		comparison := "낮은"
		if dominantPct > refDominantPct {
			comparison = "높은"
		}
		text += fmt.Sprintf("%s의 비중(%.0f%%)은 %s 평균(%.0f%%)과 비교하여 %s 편입니다.",
			dominant, dominantPct, groupLabel, refDominantPct, comparison)
	}

	insights = append(insights, model.Insight{
		Category: model.CategoryArtwork, Section: model.SectionComposition,
		Title: "매체별 작품 구성", Text: text,
		MetricName:   "매체별 작품 구성",
		CurrentValue: &dominantPct, ReferenceAvg: &refDominantPct,
		Priority: 2, Selected: true,
	})

	return insights
}
