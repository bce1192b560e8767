// Package dossier holds the indication deep-dive content and its
// YAML-backed store. One file per indication, ordered by priority.
package dossier

import (
	"fmt"

	"github.com/gripdash/gripdash/indication"
)

// Validate checks the dossier content. ValidationStatus, UnmetNeed and
// MarketSize are free text and stay unchecked.
func (dossier *Dossier) Validate() error {
	if dossier.Name == "" {
		return fmt.Errorf("indication_name is required")
	}
	if dossier.FrequencyScore < 0 || dossier.FrequencyScore > indication.MaxFrequencyScore {
		return fmt.Errorf("frequency_score %d out of range 0-%d", dossier.FrequencyScore, indication.MaxFrequencyScore)
	}
	for i, evidence := range dossier.KeyEvidence {
		if evidence.Source == "" {
			return fmt.Errorf("key_evidence[%d]: source is required", i)
		}
		if evidence.Finding == "" {
			return fmt.Errorf("key_evidence[%d]: finding is required", i)
		}
	}
	for i, competitor := range dossier.CompetitiveContext {
		if competitor.Company == "" {
			return fmt.Errorf("competitive_context[%d]: company is required", i)
		}
	}
	return nil
}

// ScoreLabel renders the evidence score as "n/9".
func (dossier *Dossier) ScoreLabel() string {
	return fmt.Sprintf("%d/%d", dossier.FrequencyScore, indication.MaxFrequencyScore)
}

// Confidence returns the confidence level the dossier assigns to an
// approach, or the empty string when the approach has no finding.
func (dossier *Dossier) Confidence(source string) string {
	for _, evidence := range dossier.KeyEvidence {
		if evidence.Source == source {
			return evidence.Confidence
		}
	}
	return ""
}
