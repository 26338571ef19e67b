package corpus

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

// LoadCSV reads a corpus in CSV form. The header row uses field keys
// (see model.Field), not the spreadsheet's Korean headers. The same
// cleaning rules as Load apply: sentinel tokens and unparseable numbers
// become missing, rows without a title are dropped.
func LoadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		return nil, eris.Wrap(err, "corpus: read csv header")
	}
	// Normalize cell values before unmarshaling: no-data sentinels and
	// thousand separators would otherwise fail numeric parsing.
	dec.Map = func(field, col string, v any) string {
		if model.IsMissingToken(field) {
			return ""
		}
		if _, ok := v.(float64); ok {
			return strings.ReplaceAll(field, ",", "")
		}
		return field
	}

	table := &Table{}
	for {
		var rec model.Record
		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, eris.Wrap(err, "corpus: decode csv row")
		}
		rec.Title = strings.TrimSpace(rec.Title)
		if rec.Title == "" || model.IsMissingToken(rec.Title) {
			continue
		}
		table.Records = append(table.Records, rec)
	}
	return table, nil
}

// ExportCSV writes the table in the same CSV form LoadCSV accepts.
// Missing values are written as empty cells.
func ExportCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	for i := range t.Records {
		if err := enc.Encode(t.Records[i]); err != nil {
			return eris.Wrap(err, "corpus: encode csv row")
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "corpus: flush csv")
}
