package report

import (
	"fmt"
	"strings"
	"time"
)

// DiscoveryFilename returns the download name of a discovery report
// generated at the given time.
func DiscoveryFilename(target string, at time.Time) string {
	return fmt.Sprintf("%s_indication_discovery_%s.pdf", target, at.Format("20060102"))
}

// DossierFilename returns the download name of an indication dossier,
// spaces in the indication name become underscores.
func DossierFilename(target string, indication string, at time.Time) string {
	name := strings.ReplaceAll(indication, " ", "_")
	return fmt.Sprintf("%s_%s_dossier_%s.pdf", target, name, at.Format("20060102"))
}
