// internal/sow/generator.go
package sow

import (
	"strings"

	"sow-engine/internal/models"
	"sow-engine/internal/sow/templates"
)

// Assembly defaults applied when the inspector left the field blank.
const (
	defaultMembraneType        = "TPO"
	defaultMembraneThickness   = "60-mil"
	defaultInsulationType      = "Polyiso"
	defaultInsulationThickness = 4.5
	defaultProjectType         = "tearoff"
)

// HVAC unit types that sit on curbs and need curb adaptation when the
// membrane height changes.
var curbMountedUnitTypes = []string{"RTU", "Package Unit", "Makeup Air"}

// Generator derives scope-of-work configurations from inspection records.
type Generator struct {
	selector *templates.Selector
}

func NewGenerator(selector *templates.Selector) *Generator {
	return &Generator{selector: selector}
}

// GenerateConfiguration produces a complete configuration from one
// inspection record. It never fails: missing optional fields fall back to
// zero values or the named defaults above. The output is a pure function of
// the input.
func (g *Generator) GenerateConfiguration(insp models.FieldInspection) Configuration {
	selection := g.selector.Select(insp)

	return Configuration{
		TemplateID:          selection.TemplateID,
		ProjectInfo:         deriveProjectInfo(insp),
		RoofAssembly:        deriveRoofAssembly(insp),
		Drainage:            DeriveDrainage(insp),
		Equipment:           deriveEquipment(insp),
		Penetrations:        derivePenetrations(insp),
		SpecialRequirements: deriveSpecialRequirements(insp),
	}
}

// GenerateSectionInclusions derives the renderer's flag set for an
// inspection. The configuration is recomputed rather than accepted as an
// argument so a caller holding a mutated inspection always gets flags that
// agree with a fresh derivation.
func (g *Generator) GenerateSectionInclusions(insp models.FieldInspection) SectionInclusions {
	config := g.GenerateConfiguration(insp)
	return InclusionsFromConfiguration(config)
}

func deriveProjectInfo(insp models.FieldInspection) ProjectInfo {
	projectType := insp.ProjectType
	if projectType == "" {
		projectType = defaultProjectType
	}
	return ProjectInfo{
		ProjectName:    insp.ProjectName,
		ProjectAddress: insp.ProjectAddress,
		CompanyName:    insp.CompanyName,
		County:         insp.County,
		State:          insp.State,
		SquareFootage:  insp.SquareFootage,
		BuildingHeight: insp.BuildingHeight,
		ProjectType:    projectType,
	}
}

func deriveRoofAssembly(insp models.FieldInspection) RoofAssemblyConfig {
	assembly := RoofAssemblyConfig{
		DeckType:            insp.DeckType,
		MembraneType:        insp.MembraneType,
		MembraneThickness:   insp.MembraneThickness,
		FasteningPattern:    insp.FasteningPattern,
		InsulationType:      insp.InsulationType,
		InsulationThickness: insp.InsulationThickness,
		CoverBoardType:      insp.CoverBoardType,
	}
	if assembly.MembraneType == "" {
		assembly.MembraneType = defaultMembraneType
	}
	if assembly.MembraneThickness == "" {
		assembly.MembraneThickness = defaultMembraneThickness
	}
	if assembly.InsulationType == "" {
		assembly.InsulationType = defaultInsulationType
	}
	if assembly.InsulationThickness == 0 {
		assembly.InsulationThickness = defaultInsulationThickness
	}
	return assembly
}

func deriveEquipment(insp models.FieldInspection) EquipmentSpecs {
	specs := EquipmentSpecs{
		Skylights:    insp.Skylights,
		RoofHatches:  insp.RoofHatches,
		HVACUnits:    insp.TotalHVACUnits(),
		AccessPoints: insp.RoofHatches + insp.Skylights,
		WalkwayPads:  insp.WalkwayPadRequested,
	}

	for _, unit := range insp.HVACUnits {
		for _, curbType := range curbMountedUnitTypes {
			if strings.Contains(unit.UnitType, curbType) {
				specs.CurbsRequired = true
			}
		}
	}

	return specs
}

func derivePenetrations(insp models.FieldInspection) PenetrationSpecs {
	return PenetrationSpecs{
		GasLines:     insp.GasLinePenetrations,
		GasLineCount: insp.GasLineCount,
		Conduit:      insp.ConduitPenetrations,
		ConduitCount: insp.ConduitCount,
	}
}

func deriveSpecialRequirements(insp models.FieldInspection) []string {
	reqs := []string{}

	if insp.DrainagePrimaryType == DrainageScuppers {
		reqs = append(reqs, "Scupper modifications and overflow provisions required")
	}
	if insp.GasLinePenetrations {
		reqs = append(reqs, "Gas line penetrations require licensed plumber coordination")
	}
	if insp.ConduitPenetrations {
		reqs = append(reqs, "Electrical conduit penetrations require licensed electrician coordination")
	}
	if deriveEquipment(insp).CurbsRequired {
		reqs = append(reqs, "HVAC curb adaptations required for new membrane height")
	}
	if insp.WalkwayPadRequested {
		reqs = append(reqs, "Walkway pads to be installed along equipment access paths")
	}
	if insp.HVHZZone {
		reqs = append(reqs, "High-velocity hurricane zone fastening requirements apply")
	}

	return reqs
}
