package chart

import (
	"sort"

	"github.com/gripdash/gripdash/indication"
)

// AreaCount is the number of indications in one therapeutic area.
type AreaCount struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}

// ScoreBucket is the number of indications with one frequency score.
type ScoreBucket struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

// AreaBreakdown counts records per therapeutic area, most populated
// first, name breaks ties.
func AreaBreakdown(records []indication.Record) []AreaCount {
	counts := map[string]int{}
	for _, record := range records {
		counts[record.TherapeuticArea]++
	}

	breakdown := make([]AreaCount, 0, len(counts))
	for area, count := range counts {
		breakdown = append(breakdown, AreaCount{Area: area, Count: count})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].Area < breakdown[j].Area
	})
	return breakdown
}

// ScoreDistribution counts records per frequency score with one bucket
// for every score from 0 to 9, empty buckets included.
func ScoreDistribution(records []indication.Record) []ScoreBucket {
	buckets := make([]ScoreBucket, indication.MaxFrequencyScore+1)
	for score := range buckets {
		buckets[score].Score = score
	}
	for _, record := range records {
		if record.FrequencyScore >= 0 && record.FrequencyScore <= indication.MaxFrequencyScore {
			buckets[record.FrequencyScore].Count++
		}
	}
	return buckets
}
