package report

import (
	"fmt"
	"strings"

	"github.com/gripdash/gripdash/dossier"
)

const bannerLead = "Interested in a comprehensive analysis?"

const bannerBody = "Contact Excelra to commission a full indication dossier with primary literature review, KOL insights, and detailed competitive intelligence."

// DeepDive renders the single-indication dossier report for the
// target. The document fails fast on a nil or invalid dossier.
func DeepDive(target string, name string, d *dossier.Dossier, option *Option) ([]byte, error) {
	if d == nil {
		return nil, fmt.Errorf("dossier is required")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	style, logo, at := settings(option)
	canvas := NewCanvas(style, logo)
	canvas.AddPage()

	canvas.Centered(fmt.Sprintf("Indication Dossier: %s", name), 12, 16, true, style.DeepBlue)
	canvas.Centered(fmt.Sprintf("%s Inhibitor Expansion Opportunity", target), 6, 11, false, style.Violet)
	canvas.Centered(fmt.Sprintf("Generated: %s", at.Format("02 January 2006")), 5, 9, false, style.Violet)
	canvas.Ln(8)

	canvas.EnsureSpace(metricBoxHeight)
	y := canvas.Y()
	canvas.MetricBox("Evidence Score", d.ScoreLabel(), 10, y, 45)
	canvas.MetricBox("Validation", d.ValidationStatus, 60, y, 45)
	canvas.MetricBox("Unmet Need", d.UnmetNeed, 110, y, 45)
	canvas.MetricBox("Market Size", WrapMarketSize(d.MarketSize), 160, y, 45)
	canvas.Ln(30)

	canvas.SectionTitle("Biological Rationale")
	canvas.BodyText(CleanRationale(d.BiologicalRationale))

	canvas.AddPage()
	canvas.SectionTitle("Evidence Summary")
	for _, evidence := range d.KeyEvidence {
		canvas.SubsectionTitle(evidence.Source)
		canvas.BodyText(fmt.Sprintf("%s (Confidence: %s)", evidence.Finding, evidence.Confidence))
		canvas.Ln(2)
	}
	canvas.Ln(5)

	canvas.SectionTitle("Competitive Landscape")
	if len(d.CompetitiveContext) == 0 {
		canvas.BodyText("No direct competitors identified for this indication.")
	} else {
		rows := [][]string{}
		for _, competitor := range d.CompetitiveContext {
			rows = append(rows, []string{competitor.Company, competitor.Drug, competitor.Phase, competitor.Status})
		}
		canvas.Table(Table{
			Widths:       []float64{50, 50, 40, 50},
			Headers:      []string{"Company", "Drug", "Phase", "Status"},
			Aligns:       []string{"L", "L", "C", "L"},
			HeaderHeight: 7,
			RowHeight:    7,
			TextSize:     9,
			Rows:         rows,
		})
	}
	canvas.Ln(8)

	canvas.SectionTitle("Key Biomarkers")
	canvas.BodyText(strings.Join(d.KeyBiomarkers, ", "))
	canvas.Ln(5)

	canvas.SectionTitle("Recommended Actions")
	for i, action := range d.RecommendedActions {
		canvas.BodyText(fmt.Sprintf("%d. %s", i+1, action))
		canvas.Ln(2)
	}
	canvas.Ln(10)

	canvas.Banner(bannerLead, bannerBody)
	return canvas.Output()
}
