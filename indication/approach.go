package indication

// Approaches lists the nine scientific approaches in table-column order.
// Label is the short column heading, Title the name used in methodology
// copy where the two differ.
var Approaches = []Approach{
	{
		Key:         "literature_mining",
		Label:       "Literature Mining",
		Title:       "Literature Mining",
		Description: "Systematic extraction of target-disease associations from published scientific literature using NLP and machine learning.",
		DataSource:  "PubMed, PMC, Patent literature",
	},
	{
		Key:         "clinical_trials",
		Label:       "Clinical Trials",
		Title:       "Clinical Trials",
		Description: "Analysis of clinical trial data for related compounds and mechanisms, including completed, ongoing, and terminated studies.",
		DataSource:  "ClinicalTrials.gov, EudraCT, CTOD",
	},
	{
		Key:         "structure_similarity",
		Label:       "Structure Similarity",
		Title:       "Structure Similarity",
		Description: "Identification of potential indications from structurally similar compounds with known therapeutic applications.",
		DataSource:  "GOSTAR, ChEMBL",
	},
	{
		Key:         "adverse_events",
		Label:       "Adverse Events",
		Title:       "Adverse Events",
		Description: "Mining of adverse event databases for therapeutic signal detection (drug repositioning from side effects).",
		DataSource:  "FAERS, VigiBase",
	},
	{
		Key:         "gene_expression",
		Label:       "Gene Expression",
		Title:       "Gene Expression",
		Description: "Analysis of disease-specific gene expression signatures to identify conditions where target modulation may be beneficial.",
		DataSource:  "GEO, ArrayExpress, TCGA",
	},
	{
		Key:         "disease_gene_signature",
		Label:       "Disease-Gene Signature",
		Title:       "Disease-Gene Signatures",
		Description: "Matching of target biology to disease molecular profiles using transcriptomic and proteomic data.",
		DataSource:  "DisGeNET, OMIM, proprietary datasets",
	},
	{
		Key:         "drug_disease_signature",
		Label:       "Drug-Disease Signature",
		Title:       "Drug-Disease Signatures",
		Description: "Connectivity mapping between drug perturbation signatures and disease expression profiles.",
		DataSource:  "CMap, LINCS L1000",
	},
	{
		Key:         "interactome",
		Label:       "Interactome",
		Title:       "Interactome Analysis",
		Description: "Network-based prediction using protein-protein interactions and pathway proximity to disease genes.",
		DataSource:  "STRING, BioGRID, proprietary interactome",
	},
	{
		Key:         "gwas",
		Label:       "GWAS",
		Title:       "GWAS",
		Description: "Genetic association evidence from genome-wide studies linking target or pathway to disease risk.",
		DataSource:  "GWAS Catalog, UK Biobank, FinnGen",
	},
}

// ApproachKeys returns the approach keys in column order.
func ApproachKeys() []string {
	keys := make([]string, len(Approaches))
	for i, a := range Approaches {
		keys[i] = a.Key
	}
	return keys
}

// ApproachLabels returns the short approach labels in column order.
func ApproachLabels() []string {
	labels := make([]string, len(Approaches))
	for i, a := range Approaches {
		labels[i] = a.Label
	}
	return labels
}

// ApproachOf returns the approach with the given key.
func ApproachOf(key string) (Approach, bool) {
	for _, a := range Approaches {
		if a.Key == key {
			return a, true
		}
	}
	return Approach{}, false
}
