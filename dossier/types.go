package dossier

// Dossier is the deep-dive content of one high-priority indication.
// Pathways and Mechanisms feed the biological network, both may be empty.
type Dossier struct {
	Name                string       `json:"indication_name"      yaml:"indication_name"`
	TherapeuticArea     string       `json:"therapeutic_area"     yaml:"therapeutic_area"`
	FrequencyScore      int          `json:"frequency_score"      yaml:"frequency_score"`
	ValidationStatus    string       `json:"validation_status"    yaml:"validation_status"`
	UnmetNeed           string       `json:"unmet_need"           yaml:"unmet_need"`
	MarketSize          string       `json:"market_size"          yaml:"market_size"`
	BiologicalRationale string       `json:"biological_rationale" yaml:"biological_rationale"`
	KeyEvidence         []Evidence   `json:"key_evidence"         yaml:"key_evidence"`
	CompetitiveContext  []Competitor `json:"competitive_context"  yaml:"competitive_context"`
	RecommendedActions  []string     `json:"recommended_actions"  yaml:"recommended_actions"`
	KeyBiomarkers       []string     `json:"key_biomarkers"       yaml:"key_biomarkers"`
	Pathways            []string     `json:"pathways,omitempty"   yaml:"pathways,omitempty"`
	Mechanisms          []string     `json:"mechanisms,omitempty" yaml:"mechanisms,omitempty"`
	Priority            int          `json:"priority,omitempty"   yaml:"priority,omitempty"`
}

// Evidence is one finding of the dossier, attributed to a scientific
// approach with a confidence level.
type Evidence struct {
	Source     string `json:"source"     yaml:"source"`
	Finding    string `json:"finding"    yaml:"finding"`
	Confidence string `json:"confidence" yaml:"confidence"`
}

// Competitor is one entry of the dossier's competitive context.
type Competitor struct {
	Company string `json:"company" yaml:"company"`
	Drug    string `json:"drug"    yaml:"drug"`
	Phase   string `json:"phase"   yaml:"phase"`
	Status  string `json:"status"  yaml:"status"`
}
