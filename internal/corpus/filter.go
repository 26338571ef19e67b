package corpus

import (
	"fmt"
	"math"
)

// ExcludedType marks special exhibitions that are never comparable.
const ExcludedType = 0

// MinComparable is the smallest comparison group for which same-type
// statistics are considered meaningful.
const MinComparable = 3

// ExcludeSpecial drops type-0 rows (special exhibitions reserved as
// non-comparable). Rows with an unparseable type are kept.
func ExcludeSpecial(t *Table) *Table {
	out := &Table{}
	for _, rec := range t.Records {
		if rec.Type != nil && *rec.Type == ExcludedType {
			continue
		}
		out.Records = append(out.Records, rec)
	}
	return out
}

// FilterByType restricts the table to exhibitions of the given type.
// Type 0 is always excluded first. When the same-type subset has fewer
// than MinComparable rows the full type-0-excluded set is returned
// instead — comparing against fewer than three peers is defined to be
// meaningless. A nil type means "whole corpus minus type 0".
func FilterByType(t *Table, exhibitionType *float64) *Table {
	base := ExcludeSpecial(t)
	if exhibitionType == nil {
		return base
	}
	filtered := &Table{}
	for _, rec := range base.Records {
		if rec.Type != nil && *rec.Type == *exhibitionType {
			filtered.Records = append(filtered.Records, rec)
		}
	}
	if filtered.Len() < MinComparable {
		return base
	}
	return filtered
}

// TypeLabel renders a type value for display: "전체" for nil, "N유형"
// otherwise.
func TypeLabel(exhibitionType *float64) string {
	if exhibitionType == nil {
		return "전체"
	}
	return fmt.Sprintf("%d유형", int(math.Trunc(*exhibitionType)))
}

// TypeCount returns how many rows of t carry the given type; nil counts
// everything.
func TypeCount(t *Table, exhibitionType *float64) int {
	if exhibitionType == nil {
		return t.Len()
	}
	n := 0
	for _, rec := range t.Records {
		if rec.Type != nil && *rec.Type == *exhibitionType {
			n++
		}
	}
	return n
}
