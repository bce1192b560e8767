package indication

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArea(t *testing.T) {
	records := testRecords()

	matched := Filter{TherapeuticArea: "Neurology"}.Apply(records)
	assert.Len(t, matched, 5)
	for _, record := range matched {
		assert.Equal(t, "Neurology", record.TherapeuticArea)
	}

	matched = Filter{TherapeuticArea: "All"}.Apply(records)
	assert.Len(t, matched, 12)

	matched = Filter{TherapeuticArea: "Oncology"}.Apply(records)
	assert.Empty(t, matched)
}

func TestFilterRelevancy(t *testing.T) {
	records := testRecords()

	matched := Filter{Relevancy: RelevancyYes}.Apply(records)
	assert.Len(t, matched, 3)

	matched = Filter{Relevancy: RelevancyPartial}.Apply(records)
	assert.Len(t, matched, 4)

	matched = Filter{Relevancy: "All"}.Apply(records)
	assert.Len(t, matched, 12)
}

func TestFilterMinScore(t *testing.T) {
	records := testRecords()

	matched := Filter{MinScore: 7}.Apply(records)
	assert.Len(t, matched, 4)
	for _, record := range matched {
		assert.GreaterOrEqual(t, record.FrequencyScore, 7)
	}

	matched = Filter{MinScore: 10}.Apply(records)
	assert.Empty(t, matched)
}

func TestFilterSortScore(t *testing.T) {
	records := testRecords()

	// Default order is score descending, ties keep input order
	matched := Filter{}.Apply(records)
	assert.Equal(t, "Amyotrophic Lateral Sclerosis", matched[0].Name)
	assert.Equal(t, "Multiple Sclerosis", matched[1].Name)
	assert.Equal(t, "Alzheimer's Disease", matched[2].Name)
	assert.Equal(t, "Atopic Dermatitis", matched[11].Name)

	matched = Filter{Sort: SortScoreAsc}.Apply(records)
	assert.Equal(t, "Atopic Dermatitis", matched[0].Name)
	assert.Equal(t, "Amyotrophic Lateral Sclerosis", matched[11].Name)
}

func TestFilterSortName(t *testing.T) {
	matched := Filter{Sort: SortName}.Apply(testRecords())
	assert.Equal(t, "Acute Pancreatitis", matched[0].Name)
	assert.Equal(t, "Alzheimer's Disease", matched[1].Name)
	assert.Equal(t, "Ulcerative Colitis", matched[11].Name)
}

func TestFilterSortArea(t *testing.T) {
	matched := Filter{Sort: SortArea}.Apply(testRecords())
	assert.Equal(t, "Rheumatoid Arthritis", matched[0].Name)
	assert.Equal(t, "Sepsis", matched[1].Name)

	// Score descending within an area
	assert.Equal(t, "Ulcerative Colitis", matched[4].Name)
	assert.Equal(t, "Crohn's Disease", matched[5].Name)
	assert.Equal(t, "Acute Pancreatitis", matched[6].Name)
}

func TestFilterCombined(t *testing.T) {
	matched := Filter{
		TherapeuticArea: "Neurology",
		Relevancy:       RelevancyYes,
		MinScore:        8,
		Sort:            SortScoreDesc,
	}.Apply(testRecords())

	assert.Len(t, matched, 2)
	assert.Equal(t, "Amyotrophic Lateral Sclerosis", matched[0].Name)
	assert.Equal(t, "Multiple Sclerosis", matched[1].Name)
}

func TestFilterLeavesInputUntouched(t *testing.T) {
	records := testRecords()
	Filter{Sort: SortScoreAsc}.Apply(records)
	assert.Equal(t, "Amyotrophic Lateral Sclerosis", records[0].Name)
	assert.Equal(t, "Atopic Dermatitis", records[11].Name)
}

func TestValidSort(t *testing.T) {
	assert.True(t, ValidSort(""))
	assert.True(t, ValidSort(SortScoreDesc))
	assert.True(t, ValidSort(SortScoreAsc))
	assert.True(t, ValidSort(SortName))
	assert.True(t, ValidSort(SortArea))
	assert.False(t, ValidSort("score"))
}
