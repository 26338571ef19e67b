// Package analysis sequences one full analysis run: corpus
// preparation, insight generation, evaluation drafts, and the
// similar-exhibition comparison.
package analysis

import (
	"context"
	"fmt"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/config"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/corpus"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/insight"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/similar"
)

// Engine runs the comparative analysis pipeline.
type Engine struct {
	cfg config.AnalysisConfig
}

// New creates an Engine with the given threshold configuration.
func New(cfg config.AnalysisConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Analyze compares current against the historical corpus and returns
// the ranked insights, deduplicated evaluation drafts, and the
// similar-exhibition rows. A missing or empty corpus is the one fatal
// precondition; insufficient data anywhere below degrades to omitted
// insights instead of errors.
//
// The comparison group is the corpus restricted to exhibitionType when
// that subset is large enough to be meaningful; similarity search
// always runs over the whole comparable corpus.
func (e *Engine) Analyze(ctx context.Context, current model.Record, table *corpus.Table, exhibitionType *float64) (*model.Result, error) {
	if table == nil || table.Len() == 0 {
		return nil, eris.New("analysis: historical corpus is missing or empty")
	}

	full := corpus.Derive(corpus.ExcludeSpecial(table))
	typed := corpus.FilterByType(full, exhibitionType)

	groupLabel := "역대"
	if typed.Len() < full.Len() {
		groupLabel = fmt.Sprintf("동일 유형(%s)", corpus.TypeLabel(exhibitionType))
	}

	// Generators are independent and read-only over the table: fan out,
	// then merge in the fixed category order.
	results := make([][]model.Insight, len(insight.Generators))
	g, _ := errgroup.WithContext(ctx)
	for i, gen := range insight.Generators {
		g.Go(func() error {
			results[i] = gen(current, typed, groupLabel, e.cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "analysis: generate insights")
	}

	var insights []model.Insight
	for _, r := range results {
		insights = append(insights, r...)
	}

	drafts := insight.SynthesizeDrafts(insights, e.cfg.Draft)
	similarRows := similar.Find(full, current, e.cfg.Similarity)

	sort.SliceStable(insights, func(a, b int) bool {
		return insights[a].Priority < insights[b].Priority
	})

	zap.L().Info("analysis complete",
		zap.String("group", groupLabel),
		zap.Int("corpus_rows", typed.Len()),
		zap.Int("insights", len(insights)),
		zap.Int("drafts", len(drafts)),
		zap.Int("similar", len(similarRows)))

	return &model.Result{
		Insights:   insights,
		Drafts:     drafts,
		Similar:    similarRows,
		GroupLabel: groupLabel,
	}, nil
}
