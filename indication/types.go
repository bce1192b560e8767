package indication

// MaxFrequencyScore is the upper bound of a frequency score, one point
// per scientific approach.
const MaxFrequencyScore = 9

// Relevancy is the validation judgment assigned to an indication.
type Relevancy string

// Relevancy values form a closed set.
const (
	RelevancyYes     Relevancy = "Yes"
	RelevancyPartial Relevancy = "Partial"
	RelevancyNo      Relevancy = "No"
)

// Record is one candidate indication from the frequency table.
type Record struct {
	Name            string    `json:"indication_name"`
	TherapeuticArea string    `json:"therapeutic_area"`
	FrequencyScore  int       `json:"frequency_score"`
	Relevancy       Relevancy `json:"relevancy"`
	Evidence        Evidence  `json:"evidence"`
}

// Evidence holds the per-approach flags of a record. A set flag means the
// approach identified the indication. FrequencyScore is conventionally the
// count of set flags, but the two fields are independent and never
// cross-checked.
type Evidence struct {
	LiteratureMining     bool `json:"literature_mining"`
	ClinicalTrials       bool `json:"clinical_trials"`
	StructureSimilarity  bool `json:"structure_similarity"`
	AdverseEvents        bool `json:"adverse_events"`
	GeneExpression       bool `json:"gene_expression"`
	DiseaseGeneSignature bool `json:"disease_gene_signature"`
	DrugDiseaseSignature bool `json:"drug_disease_signature"`
	Interactome          bool `json:"interactome"`
	GWAS                 bool `json:"gwas"`
}

// Summary aggregates a set of records for the overview metrics.
type Summary struct {
	Total     int     `json:"total"`
	Validated int     `json:"validated"`
	Partial   int     `json:"partial"`
	Limited   int     `json:"limited"`
	MaxScore  int     `json:"max_score"`
	MeanScore float64 `json:"mean_score"`
}

// Approach describes one of the nine scientific approaches.
type Approach struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DataSource  string `json:"data_source"`
}
