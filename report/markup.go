package report

import "strings"

// CleanRationale strips the emphasis and bullet markers of dossier
// rationale text down to plain prose for the PDF body.
func CleanRationale(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "•", "-")
	return text
}

// Truncate caps text at limit characters. Text at or under the limit
// comes back unchanged, so truncation is idempotent.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

// WrapMarketSize breaks a market size phrase like "$2.1B by 2028"
// across two lines so it fits the metric box value zone.
func WrapMarketSize(value string) string {
	return strings.ReplaceAll(value, " by", "\n")
}
