package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/gripdash/gripdash/indication"
	"github.com/stretchr/testify/assert"
)

func evidenceOf(count int) indication.Evidence {
	evidence := indication.Evidence{}
	for i, key := range indication.ApproachKeys() {
		if i >= count {
			break
		}
		evidence.Set(key, true)
	}
	return evidence
}

// discoveryRecords is a ranked frequency table of 12 indications,
// 3 validated, 4 partial, 5 limited, mean score 55/12.
func discoveryRecords() []indication.Record {
	rows := []struct {
		name  string
		area  string
		score int
		rel   indication.Relevancy
	}{
		{"Amyotrophic Lateral Sclerosis", "Neurology", 9, indication.RelevancyYes},
		{"Multiple Sclerosis", "Neurology", 8, indication.RelevancyYes},
		{"Alzheimer's Disease", "Neurology", 8, indication.RelevancyPartial},
		{"Ulcerative Colitis", "Gastroenterology", 7, indication.RelevancyYes},
		{"Rheumatoid Arthritis", "Autoimmune", 6, indication.RelevancyPartial},
		{"Crohn's Disease", "Gastroenterology", 5, indication.RelevancyPartial},
		{"Psoriasis", "Dermatology", 4, indication.RelevancyPartial},
		{"Parkinson's Disease", "Neurology", 3, indication.RelevancyNo},
		{"Sepsis", "Critical Care", 2, indication.RelevancyNo},
		{"Ischemic Stroke", "Neurology", 2, indication.RelevancyNo},
		{"Acute Pancreatitis", "Gastroenterology", 1, indication.RelevancyNo},
		{"Atopic Dermatitis", "Dermatology", 0, indication.RelevancyNo},
	}

	records := []indication.Record{}
	for _, row := range rows {
		records = append(records, indication.Record{
			Name:            row.name,
			TherapeuticArea: row.area,
			FrequencyScore:  row.score,
			Relevancy:       row.rel,
			Evidence:        evidenceOf(row.score),
		})
	}
	return records
}

func TestDiscovery(t *testing.T) {
	style := testStyle()
	data, err := Discovery("RIPK1", discoveryRecords(), &Option{Style: &style, Time: testTime()})
	if err != nil {
		t.Fatal(err)
	}

	text := string(data)
	assert.Contains(t, text, "Indication Discovery Report: RIPK1")
	assert.Contains(t, text, "Generated: 14 March 2025")
	assert.Contains(t, text, "Of the 12 indications identified")

	// metric boxes
	assert.Contains(t, text, "(12)")
	assert.Contains(t, text, "(3)")
	assert.Contains(t, text, "(4)")
	assert.Contains(t, text, "(9/9)")
	assert.Contains(t, text, "(4.6/9)")

	// the table carries the first 10 records only
	assert.Contains(t, text, "(Ischemic Stroke)")
	assert.NotContains(t, text, "Acute Pancreatitis")
	assert.NotContains(t, text, "Atopic Dermatitis")
	assert.Contains(t, text, "(Yes)")
	assert.Contains(t, text, "(Partial)")

	assert.Contains(t, text, "Interactome Analysis - Network-based prediction")
	assert.Contains(t, text, "Contact Excelra to commission comprehensive indication dossiers")

	// chrome lands exactly once per page
	assert.Equal(t, 2, bytes.Count(data, []byte("Powered by Excelra GRIP Platform")))
	assert.Equal(t, 2, bytes.Count(data, []byte("www.excelra.com | Where data means more")))
	assert.Contains(t, text, "(Page 2)")
	assert.NotContains(t, text, "(Page 3)")
}

func TestDiscoveryEmpty(t *testing.T) {
	style := testStyle()
	data, err := Discovery("RIPK1", nil, &Option{Style: &style, Time: testTime()})
	if err != nil {
		t.Fatal(err)
	}

	text := string(data)
	assert.Contains(t, text, "Of the 0 indications identified")
	assert.Contains(t, text, "(0/9)")
	assert.Contains(t, text, "(0.0/9)")
	assert.Equal(t, 2, bytes.Count(data, []byte("www.excelra.com | Where data means more")))
}

func TestDiscoveryOrderPreserved(t *testing.T) {
	records := []indication.Record{
		{Name: "Gamma Flare", TherapeuticArea: "Neurology", FrequencyScore: 2, Relevancy: indication.RelevancyNo},
		{Name: "Beta Flare", TherapeuticArea: "Neurology", FrequencyScore: 5, Relevancy: indication.RelevancyPartial},
		{Name: "Alpha Flare", TherapeuticArea: "Neurology", FrequencyScore: 9, Relevancy: indication.RelevancyYes},
	}

	style := testStyle()
	data, err := Discovery("RIPK1", records, &Option{Style: &style, Time: testTime()})
	if err != nil {
		t.Fatal(err)
	}

	gamma := bytes.Index(data, []byte("(Gamma Flare)"))
	beta := bytes.Index(data, []byte("(Beta Flare)"))
	alpha := bytes.Index(data, []byte("(Alpha Flare)"))
	assert.True(t, gamma >= 0 && beta >= 0 && alpha >= 0)
	assert.Less(t, gamma, beta)
	assert.Less(t, beta, alpha)
}

func TestDiscoveryMalformed(t *testing.T) {
	records := []indication.Record{
		{Name: "", TherapeuticArea: "Neurology", FrequencyScore: 3, Relevancy: indication.RelevancyNo},
	}

	style := testStyle()
	_, err := Discovery("RIPK1", records, &Option{Style: &style, Time: testTime()})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "record 0")
	assert.Contains(t, err.Error(), "indication_name is required")
}

func TestDiscoveryLogoMissing(t *testing.T) {
	style := testStyle()
	option := &Option{Style: &style, Time: testTime(), Logo: filepath.Join(t.TempDir(), "missing.png")}
	data, err := Discovery("RIPK1", discoveryRecords(), option)
	if err != nil {
		t.Fatal(err)
	}
	assert.NotContains(t, string(data), "/XObject")
}

func TestDiscoveryLogo(t *testing.T) {
	style := testStyle()
	option := &Option{Style: &style, Time: testTime(), Logo: writeLogo(t)}
	data, err := Discovery("RIPK1", discoveryRecords(), option)
	if err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, string(data), "/XObject")
}

func TestDiscoveryDefaults(t *testing.T) {
	data, err := Discovery("RIPK1", discoveryRecords(), nil)
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Contains(t, string(data), "%%EOF")
}
