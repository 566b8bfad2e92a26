package tools_test

import (
	"testing"

	"github.com/arkbc/abcdis/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmptyFileHasNoIssues(t *testing.T) {
	f, report, err := tools.Validate(buildEmptyFile())
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.False(t, report.HasErrors())
	assert.Empty(t, report.Issues)
}

func TestValidateMalformedHeaderReportsError(t *testing.T) {
	buf := []byte("not an abc file at all")
	f, report, err := tools.Validate(buf)
	assert.Error(t, err)
	assert.Nil(t, f)
	require.True(t, report.HasErrors())
	assert.Equal(t, "HEADER_INTEGRITY", report.Issues[0].Code)
}

func TestValidateOverlappingRegionsReportsError(t *testing.T) {
	_, report, err := tools.Validate(buildTwoOverlappingRegions())
	require.NoError(t, err)
	require.True(t, report.HasErrors())

	found := false
	for _, iss := range report.Issues {
		if iss.Code == "REGION_OVERLAP" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestReportString(t *testing.T) {
	_, report, err := tools.Validate(buildTwoOverlappingRegions())
	require.NoError(t, err)
	s := report.String()
	assert.Contains(t, s, "REGION_OVERLAP")
}
