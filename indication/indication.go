// Package indication models the frequency table of an indication
// expansion analysis: candidate indications scored across nine
// scientific approaches, with filtering and summary aggregation.
package indication

import (
	"fmt"
	"sort"
)

// Valid reports whether the relevancy is one of the closed set.
func (r Relevancy) Valid() bool {
	switch r {
	case RelevancyYes, RelevancyPartial, RelevancyNo:
		return true
	}
	return false
}

// Display returns the validation status shown to users.
func (r Relevancy) Display() string {
	switch r {
	case RelevancyYes:
		return "Validated"
	case RelevancyPartial:
		return "Partial"
	default:
		return "Limited"
	}
}

// Validate checks the record against the data model. FrequencyScore and
// Evidence are independent fields, the count of set flags is not checked
// against the score.
func (record Record) Validate() error {
	if record.Name == "" {
		return fmt.Errorf("indication_name is required")
	}
	if record.TherapeuticArea == "" {
		return fmt.Errorf("therapeutic_area is required")
	}
	if record.FrequencyScore < 0 || record.FrequencyScore > MaxFrequencyScore {
		return fmt.Errorf("frequency_score %d out of range 0-%d", record.FrequencyScore, MaxFrequencyScore)
	}
	if !record.Relevancy.Valid() {
		return fmt.Errorf("relevancy '%s' is not one of Yes, Partial, No", record.Relevancy)
	}
	return nil
}

// ScoreLabel renders the frequency score as "n/9".
func (record Record) ScoreLabel() string {
	return fmt.Sprintf("%d/%d", record.FrequencyScore, MaxFrequencyScore)
}

// Flag returns the evidence flag for the given approach key.
func (ev Evidence) Flag(key string) bool {
	switch key {
	case "literature_mining":
		return ev.LiteratureMining
	case "clinical_trials":
		return ev.ClinicalTrials
	case "structure_similarity":
		return ev.StructureSimilarity
	case "adverse_events":
		return ev.AdverseEvents
	case "gene_expression":
		return ev.GeneExpression
	case "disease_gene_signature":
		return ev.DiseaseGeneSignature
	case "drug_disease_signature":
		return ev.DrugDiseaseSignature
	case "interactome":
		return ev.Interactome
	case "gwas":
		return ev.GWAS
	}
	return false
}

// Set assigns the evidence flag for the given approach key.
func (ev *Evidence) Set(key string, value bool) error {
	switch key {
	case "literature_mining":
		ev.LiteratureMining = value
	case "clinical_trials":
		ev.ClinicalTrials = value
	case "structure_similarity":
		ev.StructureSimilarity = value
	case "adverse_events":
		ev.AdverseEvents = value
	case "gene_expression":
		ev.GeneExpression = value
	case "disease_gene_signature":
		ev.DiseaseGeneSignature = value
	case "drug_disease_signature":
		ev.DrugDiseaseSignature = value
	case "interactome":
		ev.Interactome = value
	case "gwas":
		ev.GWAS = value
	default:
		return fmt.Errorf("unknown approach key '%s'", key)
	}
	return nil
}

// Count returns the number of set evidence flags.
func (ev Evidence) Count() int {
	count := 0
	for _, key := range ApproachKeys() {
		if ev.Flag(key) {
			count++
		}
	}
	return count
}

// Labels returns the labels of the approaches with a set flag, in
// column order.
func (ev Evidence) Labels() []string {
	labels := []string{}
	for _, a := range Approaches {
		if ev.Flag(a.Key) {
			labels = append(labels, a.Label)
		}
	}
	return labels
}

// Summarize aggregates the records. An empty input yields a zero
// summary, the mean of no scores is 0.
func Summarize(records []Record) Summary {
	summary := Summary{Total: len(records)}
	if len(records) == 0 {
		return summary
	}

	sum := 0
	for _, record := range records {
		switch record.Relevancy {
		case RelevancyYes:
			summary.Validated++
		case RelevancyPartial:
			summary.Partial++
		default:
			summary.Limited++
		}
		if record.FrequencyScore > summary.MaxScore {
			summary.MaxScore = record.FrequencyScore
		}
		sum += record.FrequencyScore
	}
	summary.MeanScore = float64(sum) / float64(len(records))
	return summary
}

// MeanLabel renders the mean score to one decimal.
func (s Summary) MeanLabel() string {
	return fmt.Sprintf("%.1f", s.MeanScore)
}

// Areas returns the distinct therapeutic areas sorted alphabetically.
func Areas(records []Record) []string {
	seen := map[string]bool{}
	areas := []string{}
	for _, record := range records {
		if !seen[record.TherapeuticArea] {
			seen[record.TherapeuticArea] = true
			areas = append(areas, record.TherapeuticArea)
		}
	}
	sort.Strings(areas)
	return areas
}
