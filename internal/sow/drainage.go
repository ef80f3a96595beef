// internal/sow/drainage.go
package sow

import "sow-engine/internal/models"

// Primary drainage types as they appear on inspection forms.
const (
	DrainageDeckDrains = "Deck Drains"
	DrainageScuppers   = "Scuppers"
	DrainageGutters    = "Gutters"
)

// DeriveDrainage maps the inspection's drainage fields to a drainage
// configuration. An unrecorded primary type defaults to deck drains.
// Overflow provisions are required for scupper systems, which drain through
// the parapet and need secondary relief openings.
func DeriveDrainage(insp models.FieldInspection) DrainageConfig {
	primary := insp.DrainagePrimaryType
	if primary == "" {
		primary = DrainageDeckDrains
	}

	return DrainageConfig{
		PrimaryType:      primary,
		DrainCount:       insp.NumberOfDrains,
		ScupperCount:     insp.ScupperCount,
		GutterLinearFeet: insp.GutterLinearFeet,
		Downspouts:       insp.Downspouts,
		OverflowRequired: primary == DrainageScuppers,
	}
}
