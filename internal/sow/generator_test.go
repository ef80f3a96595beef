// internal/sow/generator_test.go
package sow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sow-engine/internal/models"
	"sow-engine/internal/sow/templates"
)

func createTestGenerator() *Generator {
	return NewGenerator(templates.NewSelector())
}

func createTestInspection() models.FieldInspection {
	return models.FieldInspection{
		ProjectName:         "Riverside Distribution Center",
		ProjectAddress:      "4200 Commerce Blvd, Orlando, FL 32810",
		CompanyName:         "Apex Roofing",
		State:               "FL",
		SquareFootage:       85000,
		BuildingHeight:      28,
		ProjectType:         "tearoff",
		DeckType:            "Steel",
		MembraneType:        "TPO",
		FasteningPattern:    "Mechanically Attached",
		InsulationType:      "Polyiso",
		InsulationThickness: 4.5,
		DrainagePrimaryType: "Deck Drains",
		NumberOfDrains:      12,
	}
}

func TestGenerateConfiguration_FullInspection(t *testing.T) {
	gen := createTestGenerator()
	insp := createTestInspection()

	config := gen.GenerateConfiguration(insp)

	assert.Equal(t, "T6", config.TemplateID)
	assert.Equal(t, "Riverside Distribution Center", config.ProjectInfo.ProjectName)
	assert.Equal(t, "tearoff", config.ProjectInfo.ProjectType)
	assert.Equal(t, "TPO", config.RoofAssembly.MembraneType)
	assert.Equal(t, DrainageDeckDrains, config.Drainage.PrimaryType)
	assert.Equal(t, 12, config.Drainage.DrainCount)
	assert.False(t, config.Drainage.OverflowRequired)
	assert.Empty(t, config.SpecialRequirements)
}

func TestGenerateConfiguration_InspectorValuesNotDefaulted(t *testing.T) {
	gen := createTestGenerator()

	insp := createTestInspection()
	insp.MembraneThickness = "80-mil"
	insp.CoverBoardType = "DensDeck"

	config := gen.GenerateConfiguration(insp)

	assert.Equal(t, "80-mil", config.RoofAssembly.MembraneThickness)
	assert.Equal(t, "DensDeck", config.RoofAssembly.CoverBoardType)

	inclusions := InclusionsFromConfiguration(config)
	assert.True(t, inclusions.CoverBoardInstallation)
}

func TestGenerateConfiguration_DefaultsApplied(t *testing.T) {
	gen := createTestGenerator()

	config := gen.GenerateConfiguration(models.FieldInspection{
		ProjectName:    "Bare Minimum",
		ProjectAddress: "1 Main St, Tampa, FL",
	})

	assert.Equal(t, "tearoff", config.ProjectInfo.ProjectType)
	assert.Equal(t, "TPO", config.RoofAssembly.MembraneType)
	assert.Equal(t, "60-mil", config.RoofAssembly.MembraneThickness)
	assert.Equal(t, "Polyiso", config.RoofAssembly.InsulationType)
	assert.Equal(t, 4.5, config.RoofAssembly.InsulationThickness)
	assert.Equal(t, DrainageDeckDrains, config.Drainage.PrimaryType)
	assert.Zero(t, config.Equipment.HVACUnits)
	assert.False(t, config.Penetrations.GasLines)
}

func TestGenerateConfiguration_CurbHeuristic(t *testing.T) {
	tests := []struct {
		name      string
		units     []models.HVACUnit
		wantCurbs bool
	}{
		{"rtu", []models.HVACUnit{{UnitType: "RTU", Count: 3}}, true},
		{"package unit", []models.HVACUnit{{UnitType: "Package Unit", Count: 1}}, true},
		{"makeup air", []models.HVACUnit{{UnitType: "Makeup Air Unit", Count: 2}}, true},
		{"exhaust fan only", []models.HVACUnit{{UnitType: "Exhaust Fan", Count: 4}}, false},
		{"no units", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insp := createTestInspection()
			insp.HVACUnits = tt.units

			config := createTestGenerator().GenerateConfiguration(insp)
			assert.Equal(t, tt.wantCurbs, config.Equipment.CurbsRequired)
		})
	}
}

func TestGenerateConfiguration_SpecialRequirements(t *testing.T) {
	insp := createTestInspection()
	insp.DrainagePrimaryType = DrainageScuppers
	insp.GasLinePenetrations = true
	insp.ConduitPenetrations = true
	insp.WalkwayPadRequested = true
	insp.HVHZZone = true
	insp.HVACUnits = []models.HVACUnit{{UnitType: "RTU", Count: 2}}

	config := createTestGenerator().GenerateConfiguration(insp)

	require.Len(t, config.SpecialRequirements, 6)
	assert.Contains(t, config.SpecialRequirements, "Scupper modifications and overflow provisions required")
	assert.Contains(t, config.SpecialRequirements, "High-velocity hurricane zone fastening requirements apply")
	assert.True(t, config.Drainage.OverflowRequired)
}

func TestGenerateConfiguration_Idempotent(t *testing.T) {
	gen := createTestGenerator()
	insp := createTestInspection()

	first := gen.GenerateConfiguration(insp)
	second := gen.GenerateConfiguration(insp)
	assert.Equal(t, first, second)
}

func TestGenerateSectionInclusions_Scuppers(t *testing.T) {
	insp := createTestInspection()
	insp.DrainagePrimaryType = DrainageScuppers
	insp.ScupperCount = 6

	inc := createTestGenerator().GenerateSectionInclusions(insp)

	assert.True(t, inc.ScupperWork)
	assert.True(t, inc.DrainageModifications)
	assert.False(t, inc.GutterWork)
}

func TestGenerateSectionInclusions_SafetyRequirements(t *testing.T) {
	insp := createTestInspection()
	insp.BuildingHeight = 45
	insp.HVACUnits = []models.HVACUnit{{UnitType: "RTU", Count: 1}}
	insp.GasLinePenetrations = true

	inc := createTestGenerator().GenerateSectionInclusions(insp)

	require.Len(t, inc.SafetyRequirements, 3)
	assert.Contains(t, inc.SafetyRequirements, "Fall protection required for building height over 30 feet")
	assert.Contains(t, inc.SafetyRequirements, "Equipment access walkways required around HVAC units")
	assert.Contains(t, inc.SafetyRequirements, "Gas line safety protocol required during tearoff and installation")
}

func TestGenerateSectionInclusions_HeightBoundary(t *testing.T) {
	insp := createTestInspection()
	insp.BuildingHeight = 30

	inc := createTestGenerator().GenerateSectionInclusions(insp)
	assert.Empty(t, inc.SafetyRequirements)
}

func TestGenerateSectionInclusions_BaseFlags(t *testing.T) {
	inc := createTestGenerator().GenerateSectionInclusions(createTestInspection())

	assert.True(t, inc.ProjectOverview)
	assert.True(t, inc.MembraneInstallation)
	assert.True(t, inc.TearoffRequirements)
	assert.True(t, inc.InsulationInstallation)
	assert.True(t, inc.DeckDrainWork)
	assert.False(t, inc.CoverBoardInstallation)
	assert.False(t, inc.SpecialRequirements)
}
