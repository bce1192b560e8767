package indication

import "sort"

// Sort orders accepted by Filter.
const (
	SortScoreDesc = "score_desc"
	SortScoreAsc  = "score_asc"
	SortName      = "name"
	SortArea      = "area"
)

// Filter narrows and orders a set of records. Zero values leave the
// matching dimension open, "All" is accepted as an alias for open.
type Filter struct {
	TherapeuticArea string    `json:"therapeutic_area,omitempty"`
	Relevancy       Relevancy `json:"relevancy,omitempty"`
	MinScore        int       `json:"min_score,omitempty"`
	Sort            string    `json:"sort,omitempty"`
}

// Apply returns the records matching the filter in the requested order.
// The input slice is left untouched.
func (filter Filter) Apply(records []Record) []Record {
	matched := []Record{}
	for _, record := range records {
		if filter.TherapeuticArea != "" && filter.TherapeuticArea != "All" &&
			record.TherapeuticArea != filter.TherapeuticArea {
			continue
		}
		if filter.Relevancy != "" && filter.Relevancy != "All" &&
			record.Relevancy != filter.Relevancy {
			continue
		}
		if record.FrequencyScore < filter.MinScore {
			continue
		}
		matched = append(matched, record)
	}

	switch filter.Sort {
	case SortScoreAsc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].FrequencyScore < matched[j].FrequencyScore
		})
	case SortName:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Name < matched[j].Name
		})
	case SortArea:
		// Area ascending, score descending within an area
		sort.SliceStable(matched, func(i, j int) bool {
			if matched[i].TherapeuticArea != matched[j].TherapeuticArea {
				return matched[i].TherapeuticArea < matched[j].TherapeuticArea
			}
			return matched[i].FrequencyScore > matched[j].FrequencyScore
		})
	default: // SortScoreDesc
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].FrequencyScore > matched[j].FrequencyScore
		})
	}
	return matched
}

// ValidSort reports whether the sort order is one of the accepted values.
// The empty string defaults to SortScoreDesc.
func ValidSort(order string) bool {
	switch order {
	case "", SortScoreDesc, SortScoreAsc, SortName, SortArea:
		return true
	}
	return false
}
