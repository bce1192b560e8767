package chart

import "github.com/gripdash/gripdash/dossier"

// RadarAxes are the six evidence axes of the dossier radar, short
// labels mapped to approach names by radarSources.
var RadarAxes = []string{"Literature", "Clinical", "Gene Expr.", "Disease Sig.", "GWAS", "Interactome"}

var radarSources = map[string]string{
	"Literature":   "Literature Mining",
	"Clinical":     "Clinical Trials",
	"Gene Expr.":   "Gene Expression",
	"Disease Sig.": "Disease-Gene Signature",
	"GWAS":         "GWAS",
	"Interactome":  "Interactome",
}

// Radar is a closed confidence polygon, the first axis repeats at the
// end. Scores range 1 to 3, an axis without a finding scores 1.
type Radar struct {
	Axes   []string `json:"axes"`
	Scores []int    `json:"scores"`
}

// confidenceScore maps a confidence level to a radar score.
func confidenceScore(level string) int {
	switch level {
	case "High":
		return 3
	case "Medium":
		return 2
	}
	return 1
}

// BuildRadar maps the dossier's evidence confidence onto the radar axes.
func BuildRadar(d *dossier.Dossier) Radar {
	radar := Radar{
		Axes:   make([]string, 0, len(RadarAxes)+1),
		Scores: make([]int, 0, len(RadarAxes)+1),
	}

	for _, axis := range RadarAxes {
		source := radarSources[axis]
		score := 1
		if level := d.Confidence(source); level != "" {
			score = confidenceScore(level)
		}
		radar.Axes = append(radar.Axes, axis)
		radar.Scores = append(radar.Scores, score)
	}

	// Close the polygon
	radar.Axes = append(radar.Axes, radar.Axes[0])
	radar.Scores = append(radar.Scores, radar.Scores[0])
	return radar
}
