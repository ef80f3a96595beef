// internal/sow/config.go

// Package sow derives structured scope-of-work configurations, section
// inclusion flags, and document summaries from field-inspection records.
package sow

// ProjectInfo carries the identity fields of a configuration.
type ProjectInfo struct {
	ProjectName    string  `json:"project_name"`
	ProjectAddress string  `json:"project_address"`
	CompanyName    string  `json:"company_name,omitempty"`
	County         string  `json:"county,omitempty"`
	State          string  `json:"state,omitempty"`
	SquareFootage  float64 `json:"square_footage"`
	BuildingHeight float64 `json:"building_height"`
	ProjectType    string  `json:"project_type"`
}

// RoofAssemblyConfig is the membrane system the document describes. Fields
// the inspector left blank carry named defaults, applied once here.
type RoofAssemblyConfig struct {
	DeckType            string  `json:"deck_type,omitempty"`
	MembraneType        string  `json:"membrane_type"`
	MembraneThickness   string  `json:"membrane_thickness"`
	FasteningPattern    string  `json:"fastening_pattern,omitempty"`
	InsulationType      string  `json:"insulation_type"`
	InsulationThickness float64 `json:"insulation_thickness"`
	CoverBoardType      string  `json:"cover_board_type,omitempty"`
}

// DrainageConfig captures the drainage system and its element counts.
type DrainageConfig struct {
	PrimaryType      string `json:"primary_type"`
	DrainCount       int    `json:"drain_count"`
	ScupperCount     int    `json:"scupper_count"`
	GutterLinearFeet int    `json:"gutter_linear_feet"`
	Downspouts       int    `json:"downspouts"`
	OverflowRequired bool   `json:"overflow_required"`
}

// EquipmentSpecs counts rooftop equipment the crew has to work around.
type EquipmentSpecs struct {
	Skylights     int  `json:"skylights"`
	RoofHatches   int  `json:"roof_hatches"`
	HVACUnits     int  `json:"hvac_units"`
	AccessPoints  int  `json:"access_points"`
	CurbsRequired bool `json:"curbs_required"`
	WalkwayPads   bool `json:"walkway_pads"`
}

// PenetrationSpecs reflects the penetration flags and counts.
type PenetrationSpecs struct {
	GasLines     bool `json:"gas_lines"`
	GasLineCount int  `json:"gas_line_count"`
	Conduit      bool `json:"conduit"`
	ConduitCount int  `json:"conduit_count"`
}

// Configuration is the aggregate scope-of-work configuration produced from
// one inspection record. It is created fresh on every generation call and
// has no persistence of its own.
type Configuration struct {
	TemplateID          string             `json:"template_id"`
	ProjectInfo         ProjectInfo        `json:"project_info"`
	RoofAssembly        RoofAssemblyConfig `json:"roof_assembly"`
	Drainage            DrainageConfig     `json:"drainage_config"`
	Equipment           EquipmentSpecs     `json:"equipment_specs"`
	Penetrations        PenetrationSpecs   `json:"penetration_specs"`
	SpecialRequirements []string           `json:"special_requirements"`
}

// SectionInclusions is the flat flag set the document renderer consumes to
// decide which contract sections to emit.
type SectionInclusions struct {
	ProjectOverview        bool `json:"projectOverview"`
	TearoffRequirements    bool `json:"tearoffRequirements"`
	MembraneInstallation   bool `json:"membraneInstallation"`
	InsulationInstallation bool `json:"insulationInstallation"`
	CoverBoardInstallation bool `json:"coverBoardInstallation"`
	DeckDrainWork          bool `json:"deckDrainWork"`
	ScupperWork            bool `json:"scupperWork"`
	GutterWork             bool `json:"gutterWork"`
	DownspoutWork          bool `json:"downspoutWork"`
	DrainageModifications  bool `json:"drainageModifications"`
	SkylightWork           bool `json:"skylightWork"`
	RoofHatchWork          bool `json:"roofHatchWork"`
	HVACCurbWork           bool `json:"hvacCurbWork"`
	WalkwayPads            bool `json:"walkwayPads"`
	GasLinePenetrations    bool `json:"gasLinePenetrations"`
	ConduitPenetrations    bool `json:"conduitPenetrations"`
	SpecialRequirements    bool `json:"specialRequirements"`

	SafetyRequirements []string `json:"safetyRequirements"`
}
