package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Program is one development programme from the competitive landscape.
type Program struct {
	Company    string `json:"company"`
	Drug       string `json:"drug_name"`
	Phase      string `json:"highest_phase"`
	Indication string `json:"indication"`
}

// ProgramGroup summarizes the programmes of one company.
type ProgramGroup struct {
	Company     string `json:"company"`
	Drugs       string `json:"drugs"`
	Phase       string `json:"highest_phase"`
	Indications string `json:"indications"`
}

var competitiveColumns = []string{"company", "drug_name", "highest_phase", "indication"}

// phaseRank orders development phases, unknown phases rank last.
func phaseRank(phase string) int {
	switch phase {
	case "Phase 2":
		return 3
	case "Phase 1":
		return 2
	case "Preclinical":
		return 1
	}
	return 0
}

// CompetitivePath returns the conventional competitive landscape location
// for a target, <root>/<target>_competitive_landscape.csv.
func CompetitivePath(root string, target string) string {
	return filepath.Join(root, fmt.Sprintf("%s_competitive_landscape.csv", strings.ToLower(target)))
}

// ReadPrograms reads a competitive landscape CSV.
func ReadPrograms(path string) ([]Program, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't read competitive landscape %s: %s", path, err.Error())
	}
	defer file.Close()

	programs, err := parsePrograms(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", path, err.Error())
	}
	return programs, nil
}

// parsePrograms parses programme rows from a CSV stream.
func parsePrograms(reader io.Reader) ([]Program, error) {
	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return ProgramRows(rows)
}

// ProgramRows builds programmes from a header row followed by data rows,
// the shape shared by the CSV and workbook readers.
func ProgramRows(rows [][]string) ([]Program, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("can't read header: empty table")
	}

	columns := map[string]int{}
	for i, name := range rows[0] {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range competitiveColumns {
		if _, has := columns[name]; !has {
			return nil, fmt.Errorf("column %s is required", name)
		}
	}

	programs := []Program{}
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		row = padRow(row, len(rows[0]))
		program := Program{
			Company:    strings.TrimSpace(row[columns["company"]]),
			Drug:       strings.TrimSpace(row[columns["drug_name"]]),
			Phase:      strings.TrimSpace(row[columns["highest_phase"]]),
			Indication: strings.TrimSpace(row[columns["indication"]]),
		}
		if program.Company == "" {
			return nil, fmt.Errorf("line %d: company is required", i+2)
		}
		programs = append(programs, program)
	}
	return programs, nil
}

// GroupPrograms folds programmes into one group per company: unique drugs
// joined with a comma, the first phase seen, and up to three unique
// indications with an ellipsis beyond that. Groups come back ordered by
// phase maturity, alphabetical within a phase.
func GroupPrograms(programs []Program) []ProgramGroup {
	companies := []string{}
	drugs := map[string][]string{}
	indications := map[string][]string{}
	phases := map[string]string{}

	for _, program := range programs {
		if _, has := phases[program.Company]; !has {
			companies = append(companies, program.Company)
			phases[program.Company] = program.Phase
		}
		drugs[program.Company] = appendUnique(drugs[program.Company], program.Drug)
		indications[program.Company] = appendUnique(indications[program.Company], program.Indication)
	}
	sort.Strings(companies)

	groups := make([]ProgramGroup, 0, len(companies))
	for _, company := range companies {
		names := indications[company]
		suffix := ""
		if len(names) > 3 {
			names = names[:3]
			suffix = "..."
		}
		groups = append(groups, ProgramGroup{
			Company:     company,
			Drugs:       strings.Join(drugs[company], ", "),
			Phase:       phases[company],
			Indications: strings.Join(names, ", ") + suffix,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return phaseRank(groups[i].Phase) > phaseRank(groups[j].Phase)
	})
	return groups
}

func appendUnique(values []string, value string) []string {
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}
