// internal/models/inspection.go
package models

// HVACUnit is one rooftop mechanical unit recorded during inspection.
type HVACUnit struct {
	UnitType string `json:"unit_type"`
	Count    int    `json:"count"`
}

// FieldInspection is the raw field-inspection record consumed by the SOW
// engine. It is read-only input: every optional field carries its zero value
// when the inspector left it blank, and defaults are applied by the
// derivation code, never written back here.
type FieldInspection struct {
	ID string `json:"id,omitempty"`

	// Project identity
	ProjectName    string `json:"project_name"`
	ProjectAddress string `json:"project_address"`
	CompanyName    string `json:"company_name,omitempty"`
	County         string `json:"county,omitempty"`
	State          string `json:"state,omitempty"`

	// Building
	SquareFootage  float64 `json:"square_footage,omitempty"`
	BuildingHeight float64 `json:"building_height,omitempty"`
	ProjectType    string  `json:"project_type,omitempty"` // tearoff | recover | new

	// Roof construction
	DeckType            string  `json:"deck_type,omitempty"`
	MembraneType        string  `json:"membrane_type,omitempty"`
	MembraneThickness   string  `json:"membrane_thickness,omitempty"`
	FasteningPattern    string  `json:"fastening_pattern,omitempty"`
	InsulationType      string  `json:"insulation_type,omitempty"`
	InsulationThickness float64 `json:"insulation_thickness,omitempty"`
	CoverBoardType      string  `json:"cover_board_type,omitempty"`

	// Drainage
	DrainagePrimaryType string `json:"drainage_primary_type,omitempty"` // Deck Drains | Scuppers | Gutters
	NumberOfDrains      int    `json:"number_of_drains,omitempty"`
	ScupperCount        int    `json:"scupper_count,omitempty"`
	GutterLinearFeet    int    `json:"gutter_linear_feet,omitempty"`
	Downspouts          int    `json:"downspouts,omitempty"`

	// Equipment
	Skylights           int        `json:"skylights,omitempty"`
	RoofHatches         int        `json:"roof_hatches,omitempty"`
	HVACUnits           []HVACUnit `json:"hvac_units,omitempty"`
	WalkwayPadRequested bool       `json:"walkway_pad_requested,omitempty"`

	// Penetrations
	GasLinePenetrations bool `json:"gas_line_penetrations,omitempty"`
	GasLineCount        int  `json:"gas_line_count,omitempty"`
	ConduitPenetrations bool `json:"conduit_penetrations,omitempty"`
	ConduitCount        int  `json:"conduit_count,omitempty"`

	// Regulatory
	WindZone     string `json:"wind_zone,omitempty"`
	HVHZZone     bool   `json:"hvhz_zone,omitempty"`
	BuildingCode string `json:"building_code,omitempty"`
	ASCEVersion  string `json:"asce_version,omitempty"`
}

// TotalHVACUnits sums the unit counts across the recorded HVAC inventory.
func (f *FieldInspection) TotalHVACUnits() int {
	total := 0
	for _, u := range f.HVACUnits {
		total += u.Count
	}
	return total
}
