package model

// Category classifies an insight by the aspect of the exhibition it
// concerns. Values are the Korean display strings used in reports.
type Category string

const (
	CategoryAudience  Category = "관객"
	CategoryBudget    Category = "예산"
	CategoryProgram   Category = "프로그램"
	CategoryArtwork   Category = "작품"
	CategoryPromotion Category = "홍보"
	CategoryStaff     Category = "인력"
	CategoryCross     Category = "교차분석"
)

// CategoryOrder is the fixed order in which generator outputs are
// concatenated before the global priority sort.
var CategoryOrder = []Category{
	CategoryAudience, CategoryBudget, CategoryProgram, CategoryArtwork,
	CategoryPromotion, CategoryStaff, CategoryCross,
}

// CategoryLabels maps categories to section headings for display.
var CategoryLabels = map[Category]string{
	CategoryAudience:  "관객 분석",
	CategoryBudget:    "예산 효율",
	CategoryProgram:   "프로그램 밀도",
	CategoryArtwork:   "작품 규모",
	CategoryPromotion: "홍보 효과",
	CategoryStaff:     "인력 효율",
	CategoryCross:     "교차 분석",
}

// Section is the coarse report placement tag for an insight.
type Section string

const (
	SectionResults     Section = "results"
	SectionComposition Section = "composition"
	SectionPromotion   Section = "promotion"
	SectionEvaluation  Section = "evaluation"
)

// SectionLabels maps placement tags to report section headings.
var SectionLabels = map[Section]string{
	SectionResults:     "IV. 전시 결과",
	SectionComposition: "III. 전시 구성",
	SectionPromotion:   "V. 홍보",
	SectionEvaluation:  "VI. 평가",
}

// DefaultPriority is the priority assigned when a generator does not
// override it. Lower means more important.
const DefaultPriority = 2

// Insight is one generated finding. Immutable after creation except for
// the caller's own priority re-sorting and text edits; the engine never
// re-derives text once generated.
type Insight struct {
	Category     Category `json:"category"`
	Section      Section  `json:"section"`
	Title        string   `json:"title"`
	Text         string   `json:"text"`
	MetricName   string   `json:"metric_name"`
	CurrentValue *float64 `json:"current_value,omitempty"`
	ReferenceAvg *float64 `json:"reference_avg,omitempty"`
	Percentile   *int     `json:"percentile,omitempty"`
	Rank         *int     `json:"rank,omitempty"`
	TotalCount   *int     `json:"total_count,omitempty"`
	Priority     int      `json:"priority"`
	Selected     bool     `json:"selected"`
}

// EvalType partitions evaluation drafts.
type EvalType string

const (
	EvalPositive    EvalType = "positive"
	EvalNegative    EvalType = "negative"
	EvalImprovement EvalType = "improvement"
)

// DefaultDraftConfidence is assigned to every synthesized draft.
const DefaultDraftConfidence = 0.8

// EvalDraft is an auto-drafted evaluation statement derived from the
// insight list. Drafts are deduplicated by (Type, SourceMetric), first
// occurrence wins.
type EvalDraft struct {
	Type         EvalType `json:"eval_type"`
	Text         string   `json:"text"`
	SourceMetric string   `json:"source_metric"`
	Confidence   float64  `json:"confidence"`
	Selected     bool     `json:"selected"`
}

// SimilarRow pairs a historical exhibition with its similarity score
// and the comparison metrics used in the side-by-side table.
type SimilarRow struct {
	Title      string            `json:"title"`
	Similarity float64           `json:"similarity"`
	Metrics    map[Field]float64 `json:"metrics,omitempty"`
}

// Result is the full output of one analysis run.
type Result struct {
	Insights   []Insight    `json:"insights"`
	Drafts     []EvalDraft  `json:"eval_drafts"`
	Similar    []SimilarRow `json:"similar_exhibitions"`
	GroupLabel string       `json:"group_label"` // comparison group the statistics were drawn from
}

// ByCategory groups insights preserving their sorted order.
func (r *Result) ByCategory() map[Category][]Insight {
	grouped := make(map[Category][]Insight)
	for _, ins := range r.Insights {
		grouped[ins.Category] = append(grouped[ins.Category], ins)
	}
	return grouped
}

// BySection groups insights by report placement tag.
func (r *Result) BySection() map[Section][]Insight {
	grouped := make(map[Section][]Insight)
	for _, ins := range r.Insights {
		grouped[ins.Section] = append(grouped[ins.Section], ins)
	}
	return grouped
}

// DraftsByType partitions evaluation drafts, preserving order.
func (r *Result) DraftsByType() map[EvalType][]EvalDraft {
	grouped := make(map[EvalType][]EvalDraft)
	for _, d := range r.Drafts {
		grouped[d.Type] = append(grouped[d.Type], d)
	}
	return grouped
}
