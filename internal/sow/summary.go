// internal/sow/summary.go
package sow

import (
	"fmt"
	"time"

	"sow-engine/internal/models"
)

// Material coverage rates used for the planning-level estimate.
const (
	fastenersPerSquareFoot = 4.5
	squareFeetPerGallon    = 100
	poundsPerSquareFoot    = 1.2
	squareFeetPerCrewDay   = 2000
)

// Materials is the planning-level material estimate for a project.
type Materials struct {
	MembraneSquareFeet float64 `json:"membrane_sq_ft"`
	FastenersCount     int     `json:"fasteners_count"`
	PlatesCount        int     `json:"plates_count"`
	AdhesiveGallons    int     `json:"adhesive_gallons"`
	EstimatedWeightLbs int     `json:"estimated_weight_lbs"`
}

// SummarySection is one rendered section of the summary document.
type SummarySection struct {
	Section string `json:"section"`
	Content string `json:"content"`
}

// Compliance carries the code context the document is generated under.
type Compliance struct {
	BuildingCode string `json:"building_code"`
	WindLoad     string `json:"wind_load"`
	HVHZRequired bool   `json:"hvhz_required"`
}

// SummaryProjectInfo is the header block of a summary.
type SummaryProjectInfo struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	DateGenerated string  `json:"date_generated"`
	RoofArea      float64 `json:"roof_area"`
	MembraneType  string  `json:"membrane_type"`
}

// Summary is the scope-of-work summary document.
type Summary struct {
	ProjectInfo       SummaryProjectInfo `json:"project_info"`
	Materials         Materials          `json:"materials"`
	Sections          []SummarySection   `json:"sections"`
	EstimatedDuration string             `json:"estimated_duration"`
	Compliance        Compliance         `json:"compliance"`
}

// CalculateMaterials estimates material quantities from the roof area.
func CalculateMaterials(roofArea float64) Materials {
	return Materials{
		MembraneSquareFeet: roofArea,
		FastenersCount:     int(roofArea * fastenersPerSquareFoot),
		PlatesCount:        int(roofArea * fastenersPerSquareFoot),
		AdhesiveGallons:    int(roofArea / squareFeetPerGallon),
		EstimatedWeightLbs: int(roofArea * poundsPerSquareFoot),
	}
}

// EstimateDuration converts a roof area into a crew-day estimate.
func EstimateDuration(roofArea float64) string {
	days := int(roofArea/squareFeetPerCrewDay) + 1
	return fmt.Sprintf("%d days", days)
}

// GenerateSummary builds the summary document for an inspection. Membrane
// and fastening defaults match the configuration derivation; building code
// defaults to IBC 2021 when the inspection does not record one.
func GenerateSummary(insp models.FieldInspection, now time.Time) Summary {
	membraneType := insp.MembraneType
	if membraneType == "" {
		membraneType = defaultMembraneType
	}
	fastening := insp.FasteningPattern
	if fastening == "" {
		fastening = "standard"
	}
	buildingCode := insp.BuildingCode
	if buildingCode == "" {
		buildingCode = "IBC 2021"
	}

	materials := CalculateMaterials(insp.SquareFootage)

	sections := []SummarySection{
		{
			Section: "1.0 PROJECT OVERVIEW",
			Content: fmt.Sprintf(
				"This project involves the installation of a %s roofing system at %s. Total roof area: %.0f square feet.",
				membraneType, insp.ProjectAddress, insp.SquareFootage),
		},
		{
			Section: "2.0 MATERIALS",
			Content: fmt.Sprintf(
				"Membrane: %.0f sq ft\nFasteners: %d units\nPlates: %d units\nAdhesive: %d gallons",
				materials.MembraneSquareFeet, materials.FastenersCount,
				materials.PlatesCount, materials.AdhesiveGallons),
		},
		{
			Section: "3.0 INSTALLATION",
			Content: fmt.Sprintf(
				"Installation shall follow manufacturer specifications for %s systems with %s fastening pattern.",
				membraneType, fastening),
		},
		{
			Section: "4.0 TESTING",
			Content: "All work shall be subject to pull tests and adhesion tests as required by local building codes and manufacturer specifications.",
		},
	}

	return Summary{
		ProjectInfo: SummaryProjectInfo{
			Name:          insp.ProjectName,
			Address:       insp.ProjectAddress,
			DateGenerated: now.UTC().Format(time.RFC3339),
			RoofArea:      insp.SquareFootage,
			MembraneType:  membraneType,
		},
		Materials:         materials,
		Sections:          sections,
		EstimatedDuration: EstimateDuration(insp.SquareFootage),
		Compliance: Compliance{
			BuildingCode: buildingCode,
			WindLoad:     "TBD",
			HVHZRequired: insp.HVHZZone,
		},
	}
}
