// Package corpus loads and normalizes the historical exhibition
// reference data: spreadsheet ingestion, sentinel cleaning, numeric
// coercion, derived ratio columns and comparison-group filtering.
package corpus

import (
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/stats"
)

// Table is an ordered collection of historical records. Rows are
// read-only for the duration of an analysis run; transformations
// (Derive, filters) return fresh tables and never write back.
type Table struct {
	Records []model.Record
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Records) }

// Column extracts the non-missing values of field f in row order,
// together with the parallel list of exhibition titles.
func (t *Table) Column(f model.Field) (values []float64, titles []string) {
	for i := range t.Records {
		if v := t.Records[i].Metric(f); v != nil {
			values = append(values, *v)
			titles = append(titles, t.Records[i].Title)
		}
	}
	return values, titles
}

// Stats computes FieldStats for f over the table, or nil when the
// column is absent or has fewer than two values.
func (t *Table) Stats(f model.Field) *stats.FieldStats {
	values, titles := t.Column(f)
	return stats.Compute(f, values, titles)
}

// clone returns a deep-enough copy: the record slice is copied so that
// SetMetric on the clone never mutates the source rows.
func (t *Table) clone() Table {
	records := make([]model.Record, len(t.Records))
	copy(records, t.Records)
	return Table{Records: records}
}
