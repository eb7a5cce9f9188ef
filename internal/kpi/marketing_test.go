package kpi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMarketingPreservesNulls(t *testing.T) {
	raw := `{
		"year": 2026,
		"ytd": {"mqlTarget": 120, "mqlActual": 95, "mqlAchievement": 79.2},
		"monthly": [
			{"month": "January", "mqlTarget": 10, "mqlActual": 12, "pipelineTarget": 50000, "pipelineActual": null},
			{"month": "February", "mqlTarget": 10, "mqlActual": null, "pipelineTarget": 50000, "pipelineActual": 61000}
		],
		"pipelineGap": [
			{"month": "January", "target": 50000, "actual": null}
		]
	}`
	path := filepath.Join(t.TempDir(), "marketing.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	data, err := LoadMarketing(path)
	require.NoError(t, err)

	assert.Equal(t, 2026, data.Year)
	assert.Equal(t, 120.0, data.YTD.MQLTarget)
	require.Len(t, data.Monthly, 2)
	require.NotNil(t, data.Monthly[0].MQLActual)
	assert.Equal(t, 12.0, *data.Monthly[0].MQLActual)
	assert.Nil(t, data.Monthly[0].PipelineActual, "null stays null, not zero")
	assert.Nil(t, data.Monthly[1].MQLActual)
	require.Len(t, data.PipelineGap, 1)
	assert.Nil(t, data.PipelineGap[0].Actual)
}

func TestLoadMarketingErrors(t *testing.T) {
	_, err := LoadMarketing(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadMarketing(path)
	assert.Error(t, err)
}
