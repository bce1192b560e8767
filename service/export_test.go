package service

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCapability(t *testing.T) {
	service := testService(t)
	res := get(t, service, "/api/export/capability")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, true, body(t, res)["available"])
}

func TestExportDiscoveryPDF(t *testing.T) {
	service := testService(t)
	res := get(t, service, "/api/export/discovery.pdf")
	require.Equal(t, http.StatusOK, res.Code)

	assert.Equal(t, "application/pdf", res.Header().Get("Content-Type"))
	disposition := res.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "RIPK1_indication_discovery_")
	assert.Contains(t, disposition, ".pdf")
	assert.True(t, strings.HasPrefix(res.Body.String(), "%PDF-"))
}

func TestExportDiscoveryBook(t *testing.T) {
	service := testService(t)
	res := get(t, service, "/api/export/discovery.xlsx")
	require.Equal(t, http.StatusOK, res.Code)

	assert.Equal(t, mimeXLSX, res.Header().Get("Content-Type"))
	assert.Contains(t, res.Header().Get("Content-Disposition"), "RIPK1_indication_discovery_")
	// XLSX is a zip archive
	assert.True(t, strings.HasPrefix(res.Body.String(), "PK"))
}

func TestExportDossierPDF(t *testing.T) {
	service := testService(t)
	res := get(t, service, "/api/export/dossiers/Amyotrophic%20Lateral%20Sclerosis.pdf")
	require.Equal(t, http.StatusOK, res.Code)

	assert.Equal(t, "application/pdf", res.Header().Get("Content-Type"))
	assert.Contains(t, res.Header().Get("Content-Disposition"),
		"RIPK1_Amyotrophic_Lateral_Sclerosis_dossier_")
	assert.True(t, strings.HasPrefix(res.Body.String(), "%PDF-"))
}

func TestExportDossierUnknown(t *testing.T) {
	service := testService(t)
	res := get(t, service, "/api/export/dossiers/Parkinson.pdf")
	require.Equal(t, http.StatusNotFound, res.Code)

	content := body(t, res)
	assert.Equal(t, "not_found", content["code"])
	assert.Equal(t, "dossier 'Parkinson' not found", content["message"])
}

func TestExportDossierBadSuffix(t *testing.T) {
	service := testService(t)
	res := get(t, service, "/api/export/dossiers/Amyotrophic%20Lateral%20Sclerosis")
	require.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "not_found", body(t, res)["code"])
}
