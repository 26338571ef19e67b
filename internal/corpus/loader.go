package corpus

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

// Reference spreadsheet layout: row 1 is a merged category banner,
// row 2 carries the real column headers, data starts at row 3.
const (
	headerRowIndex = 1
	dataStartIndex = 2
)

// Load reads the reference spreadsheet and returns a cleaned table:
// rows without a title are dropped, no-data sentinels become missing,
// numeric columns are coerced (failures become missing, never errors)
// and the exhibition type column is parsed numerically.
//
// A missing file is the one fatal precondition of the whole analysis
// pipeline and is returned as an error.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, eris.Wrapf(err, "corpus: reference file %s", path)
	}
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "corpus: open spreadsheet")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Errorf("corpus: %s has no sheets", path)
	}
	sheet := f.Sheets[0]
	if len(sheet.Rows) <= dataStartIndex {
		return nil, eris.Errorf("corpus: %s has no data rows", path)
	}

	headers := rowStrings(sheet.Rows[headerRowIndex])
	titleCol, typeCol, fieldCols := mapColumns(headers)
	if titleCol < 0 {
		return nil, eris.Errorf("corpus: title column %q not found", model.TitleHeader)
	}

	table := &Table{}
	for _, row := range sheet.Rows[dataStartIndex:] {
		cells := rowStrings(row)
		rec, ok := buildRecord(cells, titleCol, typeCol, fieldCols)
		if !ok {
			continue
		}
		table.Records = append(table.Records, rec)
	}

	zap.L().Info("corpus: reference loaded",
		zap.String("path", path),
		zap.Int("rows", table.Len()),
		zap.Int("columns_mapped", len(fieldCols)),
	)
	return table, nil
}

// mapColumns resolves header cells to metric fields and locates the
// reserved title/type columns. Unknown headers are ignored.
func mapColumns(headers []string) (titleCol, typeCol int, fieldCols map[int]model.Field) {
	titleCol, typeCol = -1, -1
	fieldCols = make(map[int]model.Field)
	for i, h := range headers {
		h = strings.TrimSpace(h)
		switch h {
		case "":
			continue
		case model.TitleHeader:
			titleCol = i
		case model.TypeHeader:
			typeCol = i
		default:
			if f, ok := model.FieldByHeader(h); ok {
				fieldCols[i] = f
			}
		}
	}
	return titleCol, typeCol, fieldCols
}

// buildRecord converts one data row. Returns ok=false when the row has
// no title and must be dropped.
func buildRecord(cells []string, titleCol, typeCol int, fieldCols map[int]model.Field) (model.Record, bool) {
	var rec model.Record
	if titleCol >= len(cells) {
		return rec, false
	}
	title := strings.TrimSpace(cells[titleCol])
	if title == "" || model.IsMissingToken(title) {
		return rec, false
	}
	rec.Title = title

	if typeCol >= 0 && typeCol < len(cells) {
		rec.Type = model.CoerceNumber(cells[typeCol])
	}
	for col, f := range fieldCols {
		if col >= len(cells) {
			continue
		}
		if v := model.CoerceNumber(cells[col]); v != nil {
			rec.SetMetric(f, *v)
		}
	}
	return rec, true
}

func rowStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		cells[i] = cell.String()
	}
	return cells
}
