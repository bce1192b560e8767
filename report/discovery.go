package report

import (
	"fmt"
	"time"

	"github.com/gripdash/gripdash/indication"
)

// Option carries the optional knobs of a report generation. A nil
// Option means default style, no logo, current time.
type Option struct {
	Logo  string
	Style *Style
	Time  time.Time
}

// settings resolves an Option to its effective style, logo and
// timestamp.
func settings(option *Option) (Style, string, time.Time) {
	if option == nil {
		return DefaultStyle(), "", time.Now()
	}
	style := DefaultStyle()
	if option.Style != nil {
		style = *option.Style
	}
	at := option.Time
	if at.IsZero() {
		at = time.Now()
	}
	return style, option.Logo, at
}

const discoverySummary = "Using Excelra's multi-source approach, we have systematically identified %d potential indications for %s inhibitor expansion. Each indication has been scored across 9 scientific approaches and validated against published literature.\n\nOf the %d indications identified, %d show high-confidence validation with strong clinical or preclinical evidence, while %d show partial evidence requiring further validation."

const discoveryMethodology = "This analysis integrates evidence from nine complementary scientific approaches:\n\n1. Literature Mining - Systematic extraction of target-disease associations from published literature\n2. Clinical Trials - Analysis of clinical trial data for related compounds and mechanisms\n3. Structure Similarity - Identification of indications from structurally similar compounds\n4. Adverse Events - Mining of adverse event databases for therapeutic signal detection\n5. Gene Expression - Analysis of disease-specific gene expression signatures\n6. Disease-Gene Signatures - Matching of target biology to disease molecular profiles\n7. Drug-Disease Signatures - Connectivity mapping between drug and disease signatures\n8. Interactome Analysis - Network-based prediction using protein-protein interactions\n9. GWAS - Genetic association evidence from genome-wide studies\n\nEach indication receives a frequency score (1-9) based on the number of approaches providing supporting evidence."

const discoveryNextSteps = "1. Review the top-ranked indications with your research and business development teams\n\n2. Select 3-5 priority indications for deep-dive analysis including:\n   - Detailed biological rationale\n   - Competitive landscape assessment\n   - Clinical development considerations\n   - Commercial opportunity sizing\n\n3. Contact Excelra to commission comprehensive indication dossiers with primary literature review, KOL insights, and detailed competitive intelligence.\n\nFor more information, visit www.excelra.com or contact your Excelra representative."

// discoveryTableCap caps the ranked table at the leading records, the
// input order is preserved.
const discoveryTableCap = 10

// Discovery renders the indication discovery report for the target.
// Records render in the order given, the caller sorts beforehand.
// Malformed records fail the build before any drawing happens.
func Discovery(target string, records []indication.Record, option *Option) ([]byte, error) {
	for i, record := range records {
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %s", i, err.Error())
		}
	}

	style, logo, at := settings(option)
	canvas := NewCanvas(style, logo)
	canvas.AddPage()

	canvas.Centered(fmt.Sprintf("Indication Discovery Report: %s", target), 15, 18, true, style.DeepBlue)
	canvas.Centered(fmt.Sprintf("Generated: %s", at.Format("02 January 2006")), 5, 10, false, style.Violet)
	canvas.Ln(10)

	canvas.SectionTitle("Executive Summary")
	summary := indication.Summarize(records)
	canvas.BodyText(fmt.Sprintf(discoverySummary, summary.Total, target, summary.Total, summary.Validated, summary.Partial))
	canvas.Ln(5)

	canvas.EnsureSpace(metricBoxHeight)
	y := canvas.Y()
	canvas.MetricBox("Total Indications", fmt.Sprintf("%d", summary.Total), 10, y, 35)
	canvas.MetricBox("Validated", fmt.Sprintf("%d", summary.Validated), 50, y, 35)
	canvas.MetricBox("Partial", fmt.Sprintf("%d", summary.Partial), 90, y, 35)
	canvas.MetricBox("Top Score", fmt.Sprintf("%d/9", summary.MaxScore), 130, y, 35)
	canvas.MetricBox("Avg Score", fmt.Sprintf("%s/9", summary.MeanLabel()), 170, y, 35)
	canvas.Ln(30)

	canvas.SectionTitle("Top Ranked Indications")
	rows := [][]string{}
	for i, record := range records {
		if i >= discoveryTableCap {
			break
		}
		rows = append(rows, []string{
			Truncate(record.Name, 35),
			Truncate(record.TherapeuticArea, 25),
			record.ScoreLabel(),
			string(record.Relevancy),
			fmt.Sprintf("%d/9", record.Evidence.Count()),
		})
	}
	canvas.Table(Table{
		Widths:       []float64{60, 45, 25, 30, 30},
		Headers:      []string{"Indication", "Therapeutic Area", "Score", "Validation", "Evidence"},
		Aligns:       []string{"L", "L", "C", "C", "C"},
		HeaderHeight: 8,
		RowHeight:    7,
		TextSize:     8,
		Rows:         rows,
	})

	canvas.AddPage()
	canvas.SectionTitle("Methodology")
	canvas.BodyText(discoveryMethodology)
	canvas.Ln(10)

	canvas.SectionTitle("Recommended Next Steps")
	canvas.BodyText(discoveryNextSteps)

	return canvas.Output()
}
