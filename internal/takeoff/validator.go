// internal/takeoff/validator.go

// Package takeoff validates raw takeoff form submissions before any
// derivation runs. Validation is rule-table driven: every field carries its
// constraints in one place, and business rules that span fields run after
// the per-field checks.
package takeoff

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"sow-engine/internal/common/logger"
	"sow-engine/internal/models"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindNumber
	kindBool
)

type fieldRule struct {
	kind        fieldKind
	description string

	minLength int
	maxLength int

	hasRange bool
	minValue float64
	maxValue float64

	allowed []string
	pattern *regexp.Regexp
}

var requiredFields = map[string]fieldRule{
	"project_name": {kind: kindString, description: "Project name", minLength: 1, maxLength: 100},
	"address":      {kind: kindString, description: "Project address", minLength: 10, maxLength: 200},
	"roof_area":    {kind: kindNumber, description: "Roof area in square feet", hasRange: true, minValue: 100, maxValue: 1000000},
	"membrane_type": {
		kind: kindString, description: "Membrane type",
		allowed: []string{"TPO", "EPDM", "PVC", "Modified Bitumen", "Built-Up"},
	},
	"fastening_pattern": {
		kind: kindString, description: "Fastening pattern",
		allowed: []string{"Mechanically Attached", "Fully Adhered", "Ballasted"},
	},
}

var optionalFields = map[string]fieldRule{
	"insulation_type": {
		kind: kindString, description: "Insulation type",
		allowed: []string{"Polyiso", "XPS", "EPS", "Mineral Wool", "None"},
	},
	"insulation_thickness": {kind: kindNumber, description: "Insulation thickness in inches", hasRange: true, minValue: 0, maxValue: 12},
	"deck_type": {
		kind: kindString, description: "Deck type",
		allowed: []string{"Steel", "Concrete", "Wood", "Gypsum", "Lightweight Concrete"},
	},
	"building_height": {kind: kindNumber, description: "Building height in feet", hasRange: true, minValue: 8, maxValue: 500},
	"wind_zone":       {kind: kindString, description: "Wind zone (I, II, III, or IV)", pattern: regexp.MustCompile(`^(I|II|III|IV)$`)},
	"hvhz_zone":       {kind: kindBool, description: "High Velocity Hurricane Zone flag"},
	"county":          {kind: kindString, description: "County name", minLength: 2, maxLength: 50},
	"state":           {kind: kindString, description: "State code (2 letters)", pattern: regexp.MustCompile(`^[A-Z]{2}$`)},
	"building_code": {
		kind: kindString, description: "Building code",
		allowed: []string{"IBC2021", "IBC2018", "FBC2020", "FBC2023"},
	},
	"asce_version": {
		kind: kindString, description: "ASCE version",
		allowed: []string{"7-16", "7-22", "7-10"},
	},
	"project_type":     {kind: kindString, description: "Work type"},
	"company_name":     {kind: kindString, description: "Company name", maxLength: 100},
	"membrane_thickness": {kind: kindString, description: "Membrane thickness"},
	"cover_board_type":   {kind: kindString, description: "Cover board type"},
	"fastening_density":  {kind: kindString, description: "Fastening density"},
	"drainage_primary_type": {
		kind: kindString, description: "Primary drainage type",
		allowed: []string{"Deck Drains", "Scuppers", "Gutters"},
	},
	"number_of_drains":      {kind: kindNumber, description: "Deck drain count", hasRange: true, minValue: 0, maxValue: 500},
	"scupper_count":         {kind: kindNumber, description: "Scupper count", hasRange: true, minValue: 0, maxValue: 500},
	"gutter_linear_feet":    {kind: kindNumber, description: "Gutter linear feet", hasRange: true, minValue: 0, maxValue: 10000},
	"downspouts":            {kind: kindNumber, description: "Downspout count", hasRange: true, minValue: 0, maxValue: 500},
	"skylights":             {kind: kindNumber, description: "Skylight count", hasRange: true, minValue: 0, maxValue: 500},
	"roof_hatches":          {kind: kindNumber, description: "Roof hatch count", hasRange: true, minValue: 0, maxValue: 100},
	"walkway_pad_requested": {kind: kindBool, description: "Walkway pad request flag"},
	"gas_line_penetrations": {kind: kindBool, description: "Gas line penetration flag"},
	"gas_line_count":        {kind: kindNumber, description: "Gas line count", hasRange: true, minValue: 0, maxValue: 100},
	"conduit_penetrations":  {kind: kindBool, description: "Conduit penetration flag"},
	"conduit_count":         {kind: kindNumber, description: "Conduit count", hasRange: true, minValue: 0, maxValue: 500},
}

// hvac_units is structurally validated by the document schema; its shape
// (list of units or a legacy bare count) does not fit the flat rule table.
var schemaOnlyFields = map[string]bool{
	"hvac_units": true,
}

// coastalStates are the states where an HVHZ designation is expected.
var coastalStates = map[string]bool{
	"FL": true, "TX": true, "LA": true, "MS": true, "AL": true,
}

// Result is the outcome of validating one takeoff submission. A submission
// is valid iff it produced no errors; warnings never block.
type Result struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validator validates takeoff submissions.
type Validator struct {
	logger logger.Logger
}

func NewValidator(log logger.Logger) *Validator {
	return &Validator{logger: log}
}

// Validate runs per-field rules, cross-field business rules, and the
// unknown-field scan over a parsed takeoff.
func (v *Validator) Validate(data models.Takeoff) Result {
	errors := []string{}
	warnings := []string{}

	for _, name := range sortedKeys(requiredFields) {
		rule := requiredFields[name]
		value, ok := data[name]
		if !ok {
			errors = append(errors, fmt.Sprintf("Missing required field: %s (%s)", name, rule.description))
			continue
		}
		errors = append(errors, checkField(name, value, rule)...)
	}

	for _, name := range sortedKeys(optionalFields) {
		if value, ok := data[name]; ok {
			errors = append(errors, checkField(name, value, optionalFields[name])...)
		}
	}

	bizErrors, bizWarnings := checkBusinessRules(data)
	errors = append(errors, bizErrors...)
	warnings = append(warnings, bizWarnings...)

	for _, name := range sortedMapKeys(data) {
		if _, ok := requiredFields[name]; ok {
			continue
		}
		if _, ok := optionalFields[name]; ok {
			continue
		}
		if schemaOnlyFields[name] {
			continue
		}
		warnings = append(warnings, "Unknown field: "+name)
	}

	result := Result{IsValid: len(errors) == 0, Errors: errors, Warnings: warnings}
	if !result.IsValid {
		v.logger.Debug("Takeoff validation failed", map[string]interface{}{
			"error_count":   len(errors),
			"warning_count": len(warnings),
		})
	}
	return result
}

func checkField(name string, value interface{}, rule fieldRule) []string {
	switch rule.kind {
	case kindString:
		s, ok := value.(string)
		if !ok {
			return []string{fmt.Sprintf("%s: Expected string, got %T", name, value)}
		}
		return checkString(name, s, rule)
	case kindNumber:
		n, ok := asNumber(value)
		if !ok {
			return []string{fmt.Sprintf("%s: Expected number, got %T", name, value)}
		}
		return checkNumber(name, n, rule)
	case kindBool:
		if _, ok := value.(bool); !ok {
			return []string{fmt.Sprintf("%s: Expected boolean, got %T", name, value)}
		}
	}
	return nil
}

func checkString(name, value string, rule fieldRule) []string {
	var errs []string
	if rule.minLength > 0 && len(value) < rule.minLength {
		errs = append(errs, fmt.Sprintf("%s: Minimum length is %d, got %d", name, rule.minLength, len(value)))
	}
	if rule.maxLength > 0 && len(value) > rule.maxLength {
		errs = append(errs, fmt.Sprintf("%s: Maximum length is %d, got %d", name, rule.maxLength, len(value)))
	}
	if rule.pattern != nil && !rule.pattern.MatchString(value) {
		errs = append(errs, fmt.Sprintf("%s: Does not match required pattern %s", name, rule.pattern.String()))
	}
	if len(rule.allowed) > 0 && !containsString(rule.allowed, value) {
		errs = append(errs, fmt.Sprintf("%s: Must be one of [%s], got %q", name, strings.Join(rule.allowed, ", "), value))
	}
	return errs
}

func checkNumber(name string, value float64, rule fieldRule) []string {
	var errs []string
	if rule.hasRange {
		if value < rule.minValue {
			errs = append(errs, fmt.Sprintf("%s: Minimum value is %g, got %g", name, rule.minValue, value))
		}
		if value > rule.maxValue {
			errs = append(errs, fmt.Sprintf("%s: Maximum value is %g, got %g", name, rule.maxValue, value))
		}
	}
	return errs
}

func checkBusinessRules(data models.Takeoff) (errors, warnings []string) {
	if hvhz, _ := data["hvhz_zone"].(bool); hvhz {
		state, _ := data["state"].(string)
		if !coastalStates[state] {
			warnings = append(warnings, "HVHZ zone is typically only required in coastal states")
		}
	}

	if insulation, _ := data["insulation_type"].(string); insulation == "None" {
		if thickness, ok := asNumber(data["insulation_thickness"]); ok && thickness > 0 {
			errors = append(errors, "Insulation thickness cannot be > 0 when insulation type is 'None'")
		}
	}

	if height, ok := asNumber(data["building_height"]); ok && height > 60 {
		if zone, _ := data["wind_zone"].(string); zone == "I" || zone == "II" {
			warnings = append(warnings, "Tall buildings typically require higher wind zones")
		}
	}

	if area, ok := asNumber(data["roof_area"]); ok && area > 100000 {
		warnings = append(warnings, "Very large roof area - please verify measurement")
	}

	return errors, warnings
}

func asNumber(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]fieldRule) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedMapKeys(m models.Takeoff) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
