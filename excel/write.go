package excel

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gripdash/gripdash/indication"
	"github.com/xuri/excelize/v2"
)

// DiscoveryFilename returns the download name of a discovery workbook
// generated at the given time.
func DiscoveryFilename(target string, at time.Time) string {
	return fmt.Sprintf("%s_indication_discovery_%s.xlsx", target, at.Format("20060102"))
}

// DiscoveryBook builds the discovery workbook: the frequency table on
// the Indications sheet in the reader column contract, aggregates on
// the Summary sheet. The caller owns the returned file.
func DiscoveryBook(target string, records []indication.Record) (*excelize.File, error) {
	for i, record := range records {
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %s", i, err.Error())
		}
	}

	book := excelize.NewFile()
	if err := book.SetSheetName("Sheet1", "Indications"); err != nil {
		book.Close()
		return nil, err
	}

	header := []interface{}{"indication_name", "therapeutic_area", "frequency_score", "relevancy"}
	for _, key := range indication.ApproachKeys() {
		header = append(header, key)
	}

	rows := [][]interface{}{header}
	for _, record := range records {
		row := []interface{}{record.Name, record.TherapeuticArea, record.FrequencyScore, string(record.Relevancy)}
		for _, key := range indication.ApproachKeys() {
			row = append(row, record.Evidence.Flag(key))
		}
		rows = append(rows, row)
	}
	if err := writeAll(book, "Indications", "A1", rows); err != nil {
		book.Close()
		return nil, err
	}

	summary := indication.Summarize(records)
	aggregates := [][]interface{}{
		{"Target", target},
		{"Total Indications", summary.Total},
		{"Validated", summary.Validated},
		{"Partial", summary.Partial},
		{"Limited", summary.Limited},
		{"Top Score", fmt.Sprintf("%d/%d", summary.MaxScore, indication.MaxFrequencyScore)},
		{"Avg Score", fmt.Sprintf("%s/%d", summary.MeanLabel(), indication.MaxFrequencyScore)},
	}
	if err := writeAll(book, "Summary", "A1", aggregates); err != nil {
		book.Close()
		return nil, err
	}
	return book, nil
}

// Discovery renders the discovery workbook to bytes.
func Discovery(target string, records []indication.Record) ([]byte, error) {
	book, err := DiscoveryBook(target, records)
	if err != nil {
		return nil, err
	}
	defer book.Close()

	var buf bytes.Buffer
	if err := book.Write(&buf); err != nil {
		return nil, fmt.Errorf("can't render workbook: %s", err.Error())
	}
	return buf.Bytes(), nil
}

// WriteDiscovery writes the discovery workbook to a file.
func WriteDiscovery(path string, target string, records []indication.Record) error {
	book, err := DiscoveryBook(target, records)
	if err != nil {
		return err
	}
	defer book.Close()

	if err := book.SaveAs(path); err != nil {
		return fmt.Errorf("can't write workbook %s: %s", path, err.Error())
	}
	return nil
}

// writeAll writes rows starting at the given cell, creating the sheet
// when it does not exist.
func writeAll(book *excelize.File, sheet string, cell string, rows [][]interface{}) error {
	idx, err := book.GetSheetIndex(sheet)
	if err != nil {
		return err
	}
	if idx == -1 {
		if _, err := book.NewSheet(sheet); err != nil {
			return err
		}
	}

	current := cell
	for _, row := range rows {
		if err := book.SetSheetRow(sheet, current, &row); err != nil {
			return err
		}

		col, line, err := excelize.CellNameToCoordinates(current)
		if err != nil {
			return err
		}
		current, err = excelize.CoordinatesToCellName(col, line+1)
		if err != nil {
			return err
		}
	}
	return nil
}
