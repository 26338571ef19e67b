package corpus

import "github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"

// ratioSpec defines one derived ratio column: numerator ÷ denominator,
// written to target. The denominator must be present and positive or
// the target stays missing — no division by zero, no infinities.
type ratioSpec struct {
	target      model.Field
	numerator   model.Field
	denominator model.Field
}

var derivedRatios = []ratioSpec{
	{model.FieldCostPerVisitor, model.FieldBudgetTotal, model.FieldVisitorsTotal},
	{model.FieldRevenueBudget, model.FieldRevenueTotal, model.FieldBudgetTotal},
	{model.FieldPaidRatio, model.FieldVisitorsPaid, model.FieldVisitorsTotal},
	{model.FieldParticipationRate, model.FieldParticipants, model.FieldVisitorsTotal},
	{model.FieldVisitorsPerPress, model.FieldVisitorsTotal, model.FieldPressCount},
}

// Derive returns a fresh table with the five canonical ratio columns
// populated. Pure: the source table is never mutated, and the result is
// deterministic for a given input, so callers may cache it across runs.
func Derive(t *Table) *Table {
	out := t.clone()
	for i := range out.Records {
		for _, spec := range derivedRatios {
			applyRatio(&out.Records[i], spec)
		}
	}
	return &out
}

// DeriveRecord populates the derived ratio fields on a single record,
// used for the current exhibition before comparison.
func DeriveRecord(rec model.Record) model.Record {
	for _, spec := range derivedRatios {
		applyRatio(&rec, spec)
	}
	return rec
}

func applyRatio(rec *model.Record, spec ratioSpec) {
	num := rec.Metric(spec.numerator)
	den := rec.Metric(spec.denominator)
	if num == nil || den == nil || *den <= 0 {
		rec.ClearMetric(spec.target)
		return
	}
	rec.SetMetric(spec.target, *num / *den)
}
