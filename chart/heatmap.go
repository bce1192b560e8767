// Package chart shapes the analysis data for visualization: the
// evidence heatmap, the therapeutic area and score breakdowns, the
// dossier confidence radar and the biological network. All
// transformations are pure, rendering belongs to the consumer.
package chart

import "github.com/gripdash/gripdash/indication"

// Heatmap is the indication by approach evidence matrix. Rows keep the
// caller's order, Values[i][j] is 1 when approach j identified
// indication i.
type Heatmap struct {
	Indications []string `json:"indications"`
	Approaches  []string `json:"approaches"`
	Values      [][]int  `json:"values"`
	Scores      []int    `json:"scores"`
}

// BuildHeatmap shapes the records into the evidence matrix.
func BuildHeatmap(records []indication.Record) Heatmap {
	heatmap := Heatmap{
		Indications: make([]string, len(records)),
		Approaches:  indication.ApproachLabels(),
		Values:      make([][]int, len(records)),
		Scores:      make([]int, len(records)),
	}

	keys := indication.ApproachKeys()
	for i, record := range records {
		heatmap.Indications[i] = record.Name
		heatmap.Scores[i] = record.FrequencyScore

		row := make([]int, len(keys))
		for j, key := range keys {
			if record.Evidence.Flag(key) {
				row[j] = 1
			}
		}
		heatmap.Values[i] = row
	}
	return heatmap
}
