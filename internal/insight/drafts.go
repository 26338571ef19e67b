package insight

import (
	"fmt"
	"math"
	"strings"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/config"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

// metric-name keywords steering the draft wording.
const (
	kwAudience      = "관객"
	kwCost          = "비용"
	kwParticipation = "참여"
	kwRecovery      = "회수"
	kwPress         = "보도"
)

// SynthesizeDrafts scans the generated insights and derives positive,
// negative, and improvement evaluation sentences from their deviation
// against the reference mean. One draft survives per (type, source
// metric) pair, first occurrence wins.
func SynthesizeDrafts(insights []model.Insight, cfg config.DraftConfig) []model.EvalDraft {
	var drafts []model.EvalDraft
	add := func(t model.EvalType, text, metric string) {
		drafts = append(drafts, model.EvalDraft{
			Type: t, Text: text, SourceMetric: metric,
			Confidence: cfg.Confidence, Selected: true,
		})
	}

	for _, ins := range insights {
		if ins.CurrentValue == nil || ins.ReferenceAvg == nil || *ins.ReferenceAvg == 0 {
			continue
		}
		name := ins.MetricName
		diff := (*ins.CurrentValue - *ins.ReferenceAvg) / math.Abs(*ins.ReferenceAvg) * 100

		if diff > cfg.Positive {
			switch {
			case strings.Contains(name, kwAudience):
				add(model.EvalPositive,
					fmt.Sprintf("%s이 역대 평균 대비 %.0f%% 높은 우수한 성과를 기록했습니다.", name, math.Abs(diff)),
					name)
			case strings.Contains(name, kwCost) && diff < 0:
				add(model.EvalPositive,
					"관객당 비용이 역대 평균보다 낮아 효율적인 예산 운영이 이루어졌습니다.",
					name)
			case strings.Contains(name, kwParticipation):
				add(model.EvalPositive,
					"프로그램 참여율이 역대 평균을 상회하여 관객 경험 강화에 효과적으로 기여했습니다.",
					name)
			case strings.Contains(name, kwRecovery):
				add(model.EvalPositive,
					fmt.Sprintf("예산 회수율이 %.1f%%로, 수입 확보 면에서 양호한 결과를 보였습니다.", *ins.CurrentValue*100),
					name)
			default:
				add(model.EvalPositive,
					fmt.Sprintf("%s이 역대 평균 대비 우수한 수준입니다.", name),
					name)
			}
		}

		// Low cost per visitor is a positive in its own right,
		// independent of the threshold above.
		if strings.Contains(name, kwCost) && diff < cfg.CostEfficient {
			add(model.EvalPositive,
				fmt.Sprintf("관객당 비용이 역대 평균보다 %.0f%% 낮아 효율적인 예산 운영이 이루어졌습니다.", math.Abs(diff)),
				name)
		}

		if diff < cfg.Negative {
			switch {
			case strings.Contains(name, kwAudience) && !strings.Contains(name, kwCost):
				add(model.EvalNegative,
					fmt.Sprintf("%s이 역대 평균 대비 %.0f%% 낮은 수치를 기록했습니다.", name, math.Abs(diff)),
					name)
			case strings.Contains(name, kwParticipation):
				add(model.EvalNegative,
					"프로그램 참여율이 역대 평균에 미치지 못하여, 프로그램 기획 및 홍보 전략 재검토가 필요합니다.",
					name)
			}
		}

		// High cost per visitor is a negative.
		if strings.Contains(name, kwCost) && diff > cfg.CostOverrun {
			add(model.EvalNegative,
				fmt.Sprintf("관객당 비용이 역대 평균보다 %.0f%% 높아, 예산 효율성 면에서 개선이 필요합니다.", math.Abs(diff)),
				name)
		}

		if diff < cfg.Improvement {
			switch {
			case strings.Contains(name, kwAudience) && !strings.Contains(name, kwCost):
				add(model.EvalImprovement,
					"관객 유치 확대를 위한 다채널 홍보 전략 및 타깃 마케팅 강화가 필요합니다.",
					name)
			case strings.Contains(name, kwParticipation):
				add(model.EvalImprovement,
					"프로그램 참여율 제고를 위해 사전 예약 시스템 도입이나 참여형 프로그램 확대를 검토할 수 있습니다.",
					name)
			case strings.Contains(name, kwPress):
				add(model.EvalImprovement,
					"언론 노출 확대를 위해 보도자료 배포 시점 및 매체 타깃팅 전략을 재검토할 필요가 있습니다.",
					name)
			}
		}
	}

	return dedupDrafts(drafts)
}

// dedupDrafts keeps the first draft per (type, source metric) pair.
func dedupDrafts(drafts []model.EvalDraft) []model.EvalDraft {
	type key struct {
		t      model.EvalType
		metric string
	}
	seen := make(map[key]struct{})
	unique := make([]model.EvalDraft, 0, len(drafts))
	for _, d := range drafts {
		k := key{d.Type, d.SourceMetric}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, d)
	}
	return unique
}
