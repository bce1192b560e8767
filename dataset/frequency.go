// Package dataset loads the analysis data files: the frequency table
// and the competitive landscape, both CSV exports of the GRIP platform.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gripdash/gripdash/indication"
	"github.com/spf13/cast"
)

// frequencyColumns are the required scalar columns of the frequency table.
var frequencyColumns = []string{"indication_name", "therapeutic_area", "frequency_score", "relevancy"}

// FrequencyPath returns the conventional frequency table location for a
// target, <root>/<target>_frequency_table.csv with the target lowercased.
func FrequencyPath(root string, target string) string {
	return filepath.Join(root, fmt.Sprintf("%s_frequency_table.csv", strings.ToLower(target)))
}

// ReadFrequency reads a frequency table CSV. Every row is validated
// against the data model, the first malformed row fails the read.
func ReadFrequency(path string) ([]indication.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't read frequency table %s: %s", path, err.Error())
	}
	defer file.Close()

	records, err := parseFrequency(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", path, err.Error())
	}
	return records, nil
}

// parseFrequency parses frequency table rows from a CSV stream.
func parseFrequency(reader io.Reader) ([]indication.Record, error) {
	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return FrequencyRows(rows)
}

// FrequencyRows builds records from a header row followed by data rows,
// the shape shared by the CSV and workbook readers. Short rows are
// padded to the header width, blank rows are skipped.
func FrequencyRows(rows [][]string) ([]indication.Record, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("can't read header: empty table")
	}

	columns := map[string]int{}
	for i, name := range rows[0] {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range frequencyColumns {
		if _, has := columns[name]; !has {
			return nil, fmt.Errorf("column %s is required", name)
		}
	}
	for _, key := range indication.ApproachKeys() {
		if _, has := columns[key]; !has {
			return nil, fmt.Errorf("column %s is required", key)
		}
	}

	records := []indication.Record{}
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		record, err := frequencyRecord(padRow(row, len(rows[0])), columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", i+2, err.Error())
		}
		records = append(records, record)
	}
	return records, nil
}

// blankRow reports whether every cell is empty.
func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// padRow extends a row to the header width. Workbook readers trim
// trailing empty cells.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

// frequencyRecord builds one validated record from a CSV row.
func frequencyRecord(row []string, columns map[string]int) (indication.Record, error) {
	record := indication.Record{
		Name:            strings.TrimSpace(row[columns["indication_name"]]),
		TherapeuticArea: strings.TrimSpace(row[columns["therapeutic_area"]]),
		Relevancy:       indication.Relevancy(strings.TrimSpace(row[columns["relevancy"]])),
	}

	score, err := cast.ToIntE(strings.TrimSpace(row[columns["frequency_score"]]))
	if err != nil {
		return record, fmt.Errorf("frequency_score '%s' is not an integer", row[columns["frequency_score"]])
	}
	record.FrequencyScore = score

	for _, key := range indication.ApproachKeys() {
		cell := strings.TrimSpace(row[columns[key]])
		if cell == "" {
			continue
		}
		flag, err := cast.ToBoolE(cell)
		if err != nil {
			return record, fmt.Errorf("%s '%s' is not a flag", key, cell)
		}
		record.Evidence.Set(key, flag)
	}

	if err := record.Validate(); err != nil {
		return record, err
	}
	return record, nil
}
