// internal/takeoff/schema.go
package takeoff

import (
	"sow-engine/internal/common/errors"
	"sow-engine/internal/common/validation"
	"sow-engine/internal/models"
)

// documentSchema checks the structural shape of a submission before the
// rule table runs: field types only, no ranges or enums. Range and enum
// violations produce rule-table errors with friendlier messages.
const documentSchema = `{
	"type": "object",
	"properties": {
		"project_name": {"type": "string"},
		"address": {"type": "string"},
		"company_name": {"type": "string"},
		"roof_area": {"type": "number"},
		"building_height": {"type": "number"},
		"project_type": {"type": "string"},
		"membrane_type": {"type": "string"},
		"membrane_thickness": {"type": "string"},
		"fastening_pattern": {"type": "string"},
		"insulation_type": {"type": "string"},
		"insulation_thickness": {"type": "number"},
		"deck_type": {"type": "string"},
		"cover_board_type": {"type": "string"},
		"drainage_primary_type": {"type": "string"},
		"number_of_drains": {"type": "number"},
		"scupper_count": {"type": "number"},
		"gutter_linear_feet": {"type": "number"},
		"downspouts": {"type": "number"},
		"skylights": {"type": "number"},
		"roof_hatches": {"type": "number"},
		"hvac_units": {
			"anyOf": [
				{"type": "number"},
				{
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"unit_type": {"type": "string"},
							"count": {"type": "number"}
						}
					}
				}
			]
		},
		"walkway_pad_requested": {"type": "boolean"},
		"gas_line_penetrations": {"type": "boolean"},
		"gas_line_count": {"type": "number"},
		"conduit_penetrations": {"type": "boolean"},
		"conduit_count": {"type": "number"},
		"wind_zone": {"type": "string"},
		"hvhz_zone": {"type": "boolean"},
		"county": {"type": "string"},
		"state": {"type": "string"},
		"building_code": {"type": "string"},
		"asce_version": {"type": "string"}
	}
}`

// ValidatePayload parses a raw JSON submission, checks it against the
// document schema, and runs the rule-table validation. A parse failure
// returns a TakeoffParseFailed error; schema violations are folded into the
// result as errors rather than failing the call.
func (v *Validator) ValidatePayload(payload []byte) (models.Takeoff, Result, error) {
	data, err := models.ParseTakeoff(payload)
	if err != nil {
		return nil, Result{}, errors.NewTakeoffParseFailedError(err)
	}

	schemaResult, err := validation.ValidateRawJSON(payload, documentSchema)
	if err != nil {
		return nil, Result{}, errors.NewTakeoffParseFailedError(err)
	}

	result := v.Validate(data)
	if !schemaResult.Valid {
		for _, e := range schemaResult.Errors {
			result.Errors = append(result.Errors, e.Field+": "+e.Message)
		}
		result.IsValid = false
	}

	return data, result, nil
}
