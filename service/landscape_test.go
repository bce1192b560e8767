package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandscape(t *testing.T) {
	service := testService(t)
	res := get(t, service, "/api/landscape")
	require.Equal(t, http.StatusOK, res.Code)

	content := body(t, res)
	assert.Equal(t, float64(4), content["total"])

	groups := content["data"].([]interface{})
	require.Len(t, groups, 3)
	first := groups[0].(map[string]interface{})
	assert.Equal(t, "Denali Therapeutics", first["company"])
	assert.Equal(t, "DNL788, DNL758", first["drugs"])
	assert.Equal(t, "Phase 2", first["highest_phase"])
}

func TestLandscapePrograms(t *testing.T) {
	service := testService(t)
	res := get(t, service, "/api/landscape/programs")
	require.Equal(t, http.StatusOK, res.Code)

	content := body(t, res)
	assert.Equal(t, float64(4), content["total"])

	rows := content["data"].([]interface{})
	require.Len(t, rows, 4)
	first := rows[0].(map[string]interface{})
	assert.Equal(t, "Denali Therapeutics", first["company"])
	assert.Equal(t, "DNL788", first["drug_name"])
}
