// Package excel reads and writes the workbook forms of the analysis
// datasets. Workbooks follow the same column contract as the CSV
// exports, the header on the first row of the first sheet.
package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gripdash/gripdash/dataset"
	"github.com/gripdash/gripdash/indication"
	"github.com/xuri/excelize/v2"
)

// FrequencyPath returns the conventional frequency workbook location
// for a target, <root>/<target>_frequency_table.xlsx.
func FrequencyPath(root string, target string) string {
	return filepath.Join(root, fmt.Sprintf("%s_frequency_table.xlsx", strings.ToLower(target)))
}

// CompetitivePath returns the conventional competitive landscape
// workbook location for a target.
func CompetitivePath(root string, target string) string {
	return filepath.Join(root, fmt.Sprintf("%s_competitive_landscape.xlsx", strings.ToLower(target)))
}

// ReadFrequency reads a frequency table workbook.
func ReadFrequency(path string) ([]indication.Record, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	records, err := dataset.FrequencyRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", path, err.Error())
	}
	return records, nil
}

// ReadPrograms reads a competitive landscape workbook.
func ReadPrograms(path string) ([]dataset.Program, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	programs, err := dataset.ProgramRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", path, err.Error())
	}
	return programs, nil
}

// readRows opens a workbook and returns the rows of its first sheet.
func readRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't read workbook %s: %s", path, err.Error())
	}
	defer file.Close()

	book, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("can't read workbook %s: %s", path, err.Error())
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("can't read workbook %s: %s", path, err.Error())
	}
	return rows, nil
}
