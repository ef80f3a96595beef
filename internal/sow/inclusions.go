// internal/sow/inclusions.go
package sow

// InclusionsFromConfiguration maps a configuration onto the renderer's
// section flags. Every flag is an independent predicate over the
// configuration; there is no cross-flag state.
func InclusionsFromConfiguration(c Configuration) SectionInclusions {
	inc := SectionInclusions{
		ProjectOverview:        true,
		TearoffRequirements:    c.ProjectInfo.ProjectType == "tearoff",
		MembraneInstallation:   true,
		InsulationInstallation: c.RoofAssembly.InsulationType != "",
		CoverBoardInstallation: c.RoofAssembly.CoverBoardType != "",
		DeckDrainWork:          c.Drainage.DrainCount > 0,
		ScupperWork:            c.Drainage.PrimaryType == DrainageScuppers,
		GutterWork:             c.Drainage.GutterLinearFeet > 0,
		DownspoutWork:          c.Drainage.Downspouts > 0,
		SkylightWork:           c.Equipment.Skylights > 0,
		RoofHatchWork:          c.Equipment.RoofHatches > 0,
		HVACCurbWork:           c.Equipment.CurbsRequired,
		WalkwayPads:            c.Equipment.WalkwayPads,
		GasLinePenetrations:    c.Penetrations.GasLines,
		ConduitPenetrations:    c.Penetrations.Conduit,
		SpecialRequirements:    len(c.SpecialRequirements) > 0,

		SafetyRequirements: deriveSafetyRequirements(c),
	}

	inc.DrainageModifications = inc.ScupperWork || inc.GutterWork || inc.DownspoutWork

	return inc
}

func deriveSafetyRequirements(c Configuration) []string {
	reqs := []string{}

	if c.ProjectInfo.BuildingHeight > 30 {
		reqs = append(reqs, "Fall protection required for building height over 30 feet")
	}
	if c.Equipment.HVACUnits > 0 {
		reqs = append(reqs, "Equipment access walkways required around HVAC units")
	}
	if c.Penetrations.GasLines {
		reqs = append(reqs, "Gas line safety protocol required during tearoff and installation")
	}

	return reqs
}
