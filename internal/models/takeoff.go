// internal/models/takeoff.go
package models

import (
	"encoding/json"
	"strings"
)

// Takeoff is the raw takeoff form submission. It stays a loose map so the
// validator can report unknown fields the way the intake form produced them;
// typed access happens through ToFieldInspection.
type Takeoff map[string]interface{}

// ParseTakeoff decodes a raw JSON payload into a Takeoff.
func ParseTakeoff(payload []byte) (Takeoff, error) {
	var t Takeoff
	if err := json.Unmarshal(payload, &t); err != nil {
		return nil, err
	}
	return t, nil
}

func (t Takeoff) str(key string) string {
	if v, ok := t[key].(string); ok {
		return v
	}
	return ""
}

func (t Takeoff) num(key string) float64 {
	switch v := t[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	}
	return 0
}

func (t Takeoff) flag(key string) bool {
	if v, ok := t[key].(bool); ok {
		return v
	}
	return false
}

// ToFieldInspection maps a validated takeoff to a FieldInspection record.
// This is the single place where form-level field names and defaults meet
// the typed inspection model; the derivation engines never look at the raw
// form again.
func (t Takeoff) ToFieldInspection() FieldInspection {
	insp := FieldInspection{
		ProjectName:         t.str("project_name"),
		ProjectAddress:      t.str("address"),
		CompanyName:         t.str("company_name"),
		County:              t.str("county"),
		State:               t.str("state"),
		SquareFootage:       t.num("roof_area"),
		BuildingHeight:      t.num("building_height"),
		ProjectType:         t.str("project_type"),
		DeckType:            t.str("deck_type"),
		MembraneType:        t.str("membrane_type"),
		MembraneThickness:   t.str("membrane_thickness"),
		FasteningPattern:    t.str("fastening_pattern"),
		InsulationType:      t.str("insulation_type"),
		InsulationThickness: t.num("insulation_thickness"),
		CoverBoardType:      t.str("cover_board_type"),
		DrainagePrimaryType: t.str("drainage_primary_type"),
		NumberOfDrains:      int(t.num("number_of_drains")),
		ScupperCount:        int(t.num("scupper_count")),
		GutterLinearFeet:    int(t.num("gutter_linear_feet")),
		Downspouts:          int(t.num("downspouts")),
		Skylights:           int(t.num("skylights")),
		RoofHatches:         int(t.num("roof_hatches")),
		WalkwayPadRequested: t.flag("walkway_pad_requested"),
		GasLinePenetrations: t.flag("gas_line_penetrations"),
		GasLineCount:        int(t.num("gas_line_count")),
		ConduitPenetrations: t.flag("conduit_penetrations"),
		ConduitCount:        int(t.num("conduit_count")),
		WindZone:            t.str("wind_zone"),
		HVHZZone:            t.flag("hvhz_zone"),
		BuildingCode:        t.str("building_code"),
		ASCEVersion:         t.str("asce_version"),
	}

	if units, ok := t["hvac_units"].([]interface{}); ok {
		for _, raw := range units {
			m, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			unit := HVACUnit{Count: 1}
			if s, ok := m["unit_type"].(string); ok {
				unit.UnitType = s
			}
			if n, ok := m["count"].(float64); ok && n > 0 {
				unit.Count = int(n)
			}
			insp.HVACUnits = append(insp.HVACUnits, unit)
		}
	} else if n := int(t.num("hvac_units")); n > 0 {
		// Legacy forms submit a bare count.
		insp.HVACUnits = []HVACUnit{{UnitType: "RTU", Count: n}}
	}

	if insp.ProjectType == "" {
		insp.ProjectType = "tearoff"
	}
	if insp.State != "" {
		insp.State = strings.ToUpper(insp.State)
	}

	return insp
}
