package chart

import (
	"testing"

	"github.com/gripdash/gripdash/dossier"
	"github.com/gripdash/gripdash/indication"
	"github.com/stretchr/testify/assert"
)

func chartRecords() []indication.Record {
	records := []indication.Record{
		{Name: "Amyotrophic Lateral Sclerosis", TherapeuticArea: "Neurology", FrequencyScore: 8, Relevancy: indication.RelevancyYes},
		{Name: "Multiple Sclerosis", TherapeuticArea: "Neurology", FrequencyScore: 7, Relevancy: indication.RelevancyYes},
		{Name: "Ulcerative Colitis", TherapeuticArea: "Gastroenterology", FrequencyScore: 7, Relevancy: indication.RelevancyYes},
		{Name: "Parkinson's Disease", TherapeuticArea: "Neurology", FrequencyScore: 3, Relevancy: indication.RelevancyNo},
		{Name: "Psoriasis", TherapeuticArea: "Dermatology", FrequencyScore: 2, Relevancy: indication.RelevancyNo},
	}
	records[0].Evidence.Set("literature_mining", true)
	records[0].Evidence.Set("clinical_trials", true)
	records[0].Evidence.Set("gwas", true)
	records[1].Evidence.Set("literature_mining", true)
	return records
}

func alsDossier() *dossier.Dossier {
	return &dossier.Dossier{
		Name:             "Amyotrophic Lateral Sclerosis",
		TherapeuticArea:  "Neurology",
		FrequencyScore:   8,
		ValidationStatus: "Validated",
		KeyEvidence: []dossier.Evidence{
			{Source: "Literature Mining", Finding: "127 publications", Confidence: "High"},
			{Source: "Gene Expression", Finding: "RIPK1 upregulated 2.3-fold", Confidence: "High"},
			{Source: "Clinical Trials", Finding: "DNL747 completed Phase 1b", Confidence: "High"},
			{Source: "GWAS", Finding: "pathway genes enriched in risk loci", Confidence: "Medium"},
			{Source: "Interactome", Finding: "interacts with TDP-43 pathways", Confidence: "Medium"},
		},
		Pathways:   []string{"Necroptosis", "Neuroinflammation", "TNF Signalling", "TDP-43 Aggregation"},
		Mechanisms: []string{"Motor Neuron Death", "Microglial Activation", "Astrogliosis"},
	}
}

func TestBuildHeatmap(t *testing.T) {
	heatmap := BuildHeatmap(chartRecords())

	assert.Len(t, heatmap.Approaches, 9)
	assert.Equal(t, "Literature Mining", heatmap.Approaches[0])
	assert.Equal(t, "GWAS", heatmap.Approaches[8])

	assert.Len(t, heatmap.Indications, 5)
	assert.Equal(t, "Amyotrophic Lateral Sclerosis", heatmap.Indications[0])
	assert.Equal(t, []int{8, 7, 7, 3, 2}, heatmap.Scores)

	assert.Equal(t, []int{1, 1, 0, 0, 0, 0, 0, 0, 1}, heatmap.Values[0])
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0, 0, 0, 0}, heatmap.Values[1])
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 0, 0}, heatmap.Values[4])
}

func TestBuildHeatmapEmpty(t *testing.T) {
	heatmap := BuildHeatmap(nil)
	assert.Empty(t, heatmap.Indications)
	assert.Empty(t, heatmap.Values)
	assert.Len(t, heatmap.Approaches, 9)
}

func TestAreaBreakdown(t *testing.T) {
	breakdown := AreaBreakdown(chartRecords())

	assert.Len(t, breakdown, 3)
	assert.Equal(t, AreaCount{Area: "Neurology", Count: 3}, breakdown[0])

	// Ties come back alphabetical
	assert.Equal(t, AreaCount{Area: "Dermatology", Count: 1}, breakdown[1])
	assert.Equal(t, AreaCount{Area: "Gastroenterology", Count: 1}, breakdown[2])
}

func TestScoreDistribution(t *testing.T) {
	buckets := ScoreDistribution(chartRecords())

	assert.Len(t, buckets, 10)
	assert.Equal(t, ScoreBucket{Score: 0, Count: 0}, buckets[0])
	assert.Equal(t, ScoreBucket{Score: 2, Count: 1}, buckets[2])
	assert.Equal(t, ScoreBucket{Score: 3, Count: 1}, buckets[3])
	assert.Equal(t, ScoreBucket{Score: 7, Count: 2}, buckets[7])
	assert.Equal(t, ScoreBucket{Score: 8, Count: 1}, buckets[8])
	assert.Equal(t, ScoreBucket{Score: 9, Count: 0}, buckets[9])
}

func TestBuildRadar(t *testing.T) {
	radar := BuildRadar(alsDossier())

	// Closed polygon, first axis repeated
	assert.Len(t, radar.Axes, 7)
	assert.Len(t, radar.Scores, 7)
	assert.Equal(t, "Literature", radar.Axes[0])
	assert.Equal(t, "Literature", radar.Axes[6])

	// Disease Sig. has no finding and falls back to 1
	assert.Equal(t, []int{3, 3, 3, 1, 2, 2, 3}, radar.Scores)
}

func TestBuildRadarUnknownConfidence(t *testing.T) {
	d := &dossier.Dossier{
		Name: "Psoriasis",
		KeyEvidence: []dossier.Evidence{
			{Source: "Literature Mining", Finding: "sparse", Confidence: "Unrated"},
		},
	}
	radar := BuildRadar(d)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1}, radar.Scores)
}

func TestBuildNetwork(t *testing.T) {
	network := BuildNetwork("RIPK1", alsDossier())

	assert.Len(t, network.Nodes, 9)
	assert.Len(t, network.Edges, 10)

	target := network.Nodes[0]
	assert.Equal(t, "RIPK1", target.ID)
	assert.Equal(t, "target", target.Type)
	assert.Equal(t, 40, target.Size)
	assert.Equal(t, 0.0, target.X)
	assert.Equal(t, 0.0, target.Y)

	// First pathway sits at the bottom of the inner ring
	necroptosis := network.Nodes[1]
	assert.Equal(t, "Necroptosis", necroptosis.ID)
	assert.Equal(t, "pathway", necroptosis.Type)
	assert.InDelta(t, 0.0, necroptosis.X, 1e-9)
	assert.InDelta(t, -2.0, necroptosis.Y, 1e-9)

	// Second pathway a quarter turn on
	assert.InDelta(t, 2.0, network.Nodes[2].X, 1e-9)
	assert.InDelta(t, 0.0, network.Nodes[2].Y, 1e-9)

	// Mechanisms connect round-robin to pathways
	assert.Equal(t, Edge{From: "Necroptosis", To: "Motor Neuron Death"}, network.Edges[4])
	assert.Equal(t, Edge{From: "Neuroinflammation", To: "Microglial Activation"}, network.Edges[5])
	assert.Equal(t, Edge{From: "TNF Signalling", To: "Astrogliosis"}, network.Edges[6])

	last := network.Nodes[8]
	assert.Equal(t, "Amyotrophic Lateral Sclerosis", last.ID)
	assert.Equal(t, "indication", last.Type)
	assert.Equal(t, 4.5, last.Y)

	assert.Equal(t, Edge{From: "Motor Neuron Death", To: "Amyotrophic Lateral Sclerosis"}, network.Edges[7])
}

func TestBuildNetworkFallback(t *testing.T) {
	network := BuildNetwork("RIPK1", &dossier.Dossier{Name: "Sepsis"})

	// 1 target + 3 default pathways + 2 default mechanisms + 1 indication
	assert.Len(t, network.Nodes, 7)
	assert.Len(t, network.Edges, 7)
	assert.Equal(t, "Necroptosis", network.Nodes[1].ID)
	assert.Equal(t, "Target Mechanism 1", network.Nodes[4].ID)
	assert.Equal(t, "Sepsis", network.Nodes[6].ID)
}
