package corpus

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

// sequenceHeader is the running number column of the reference
// spreadsheet, maintained on append but ignored on load.
const sequenceHeader = "No."

// Append writes a finished exhibition into the reference spreadsheet as
// a new data row, so the next analysis can compare against it. Derived
// ratio fields are never written — they have no spreadsheet column.
func Append(path string, rec model.Record) error {
	if strings.TrimSpace(rec.Title) == "" {
		return eris.New("corpus: record has no title")
	}
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return eris.Wrap(err, "corpus: open spreadsheet")
	}
	if len(f.Sheets) == 0 {
		return eris.Errorf("corpus: %s has no sheets", path)
	}
	sheet := f.Sheets[0]
	if len(sheet.Rows) <= headerRowIndex {
		return eris.Errorf("corpus: %s has no header row", path)
	}

	headers := rowStrings(sheet.Rows[headerRowIndex])
	colOf := make(map[string]int, len(headers))
	for i, h := range headers {
		if h = strings.TrimSpace(h); h != "" {
			colOf[h] = i
		}
	}
	if _, ok := colOf[model.TitleHeader]; !ok {
		return eris.Errorf("corpus: title column %q not found", model.TitleHeader)
	}

	dataRows := 0
	for _, row := range sheet.Rows[dataStartIndex:] {
		cells := rowStrings(row)
		if c, ok := colOf[model.TitleHeader]; ok && c < len(cells) && strings.TrimSpace(cells[c]) != "" {
			dataRows++
		}
	}

	row := sheet.AddRow()
	cells := make([]*xlsx.Cell, len(headers))
	for i := range headers {
		cells[i] = row.AddCell()
	}

	if c, ok := colOf[sequenceHeader]; ok {
		cells[c].SetInt(dataRows + 1)
	}
	cells[colOf[model.TitleHeader]].SetString(rec.Title)
	if c, ok := colOf[model.TypeHeader]; ok && rec.Type != nil {
		cells[c].SetFloat(*rec.Type)
	}
	for _, field := range model.AllFields {
		header := field.Header()
		if header == "" {
			continue // derived field
		}
		c, ok := colOf[header]
		if !ok {
			continue
		}
		if v := rec.Metric(field); v != nil {
			cells[c].SetFloat(*v)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "corpus: save spreadsheet")
	}
	zap.L().Info("corpus: record appended",
		zap.String("path", path),
		zap.String("title", rec.Title),
		zap.Int("row", dataRows+1),
	)
	return nil
}
