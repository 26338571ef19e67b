//go:build !integration

package main

import (
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/config"
)

func fptr(v float64) *float64 { return &v }

func testAnalysisCfg() config.AnalysisConfig {
	return config.AnalysisConfig{
		MinSampleInsight: 3,
		Similarity: config.SimilarityConfig{
			TopN: 5, WeightBudget: 0.35, WeightDays: 0.25,
			WeightVisitors: 0.25, WeightArtists: 0.15,
		},
		Quality: config.QualityConfig{Excellent: 30, Good: 10},
		Draft: config.DraftConfig{
			Positive: 15, CostEfficient: -10, Negative: -15,
			CostOverrun: 15, Improvement: -20, Confidence: 0.8,
		},
		Cross: config.CrossConfig{
			BudgetBelow: -5, VisitorsAbove: 5,
			BudgetAbove: 10, VisitorsBelow: -5, PressBelow: -10,
		},
	}
}
