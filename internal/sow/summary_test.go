// internal/sow/summary_test.go
package sow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sow-engine/internal/models"
)

func TestCalculateMaterials(t *testing.T) {
	m := CalculateMaterials(10000)

	assert.Equal(t, float64(10000), m.MembraneSquareFeet)
	assert.Equal(t, 45000, m.FastenersCount)
	assert.Equal(t, 45000, m.PlatesCount)
	assert.Equal(t, 100, m.AdhesiveGallons)
	assert.Equal(t, 12000, m.EstimatedWeightLbs)
}

func TestEstimateDuration(t *testing.T) {
	tests := []struct {
		area float64
		want string
	}{
		{0, "1 days"},
		{1999, "1 days"},
		{2000, "2 days"},
		{85000, "43 days"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateDuration(tt.area))
	}
}

func TestGenerateSummary(t *testing.T) {
	insp := createTestInspection()
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	summary := GenerateSummary(insp, now)

	assert.Equal(t, "Riverside Distribution Center", summary.ProjectInfo.Name)
	assert.Equal(t, "2026-03-14T15:00:00Z", summary.ProjectInfo.DateGenerated)
	assert.Equal(t, "TPO", summary.ProjectInfo.MembraneType)
	assert.Equal(t, "43 days", summary.EstimatedDuration)
	assert.Equal(t, "IBC 2021", summary.Compliance.BuildingCode)
	assert.False(t, summary.Compliance.HVHZRequired)

	require.Len(t, summary.Sections, 4)
	assert.Equal(t, "1.0 PROJECT OVERVIEW", summary.Sections[0].Section)
	assert.Contains(t, summary.Sections[0].Content, "TPO roofing system")
	assert.Contains(t, summary.Sections[0].Content, "85000 square feet")
	assert.Contains(t, summary.Sections[2].Content, "Mechanically Attached fastening pattern")
	assert.Equal(t, "4.0 TESTING", summary.Sections[3].Section)
}

func TestGenerateSummary_Defaults(t *testing.T) {
	insp := models.FieldInspection{
		ProjectName:    "Bare Minimum",
		ProjectAddress: "1 Main St, Tampa, FL",
		SquareFootage:  5000,
	}
	summary := GenerateSummary(insp, time.Now())

	assert.Equal(t, "TPO", summary.ProjectInfo.MembraneType)
	assert.Contains(t, summary.Sections[2].Content, "standard fastening pattern")
	assert.Equal(t, "IBC 2021", summary.Compliance.BuildingCode)
}
