// internal/takeoff/validator_test.go
package takeoff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sow-engine/internal/common/logger"
	"sow-engine/internal/models"
)

func createTestValidator(t *testing.T) *Validator {
	return NewValidator(logger.NewTestLogger(t))
}

func validTakeoff() models.Takeoff {
	return models.Takeoff{
		"project_name":      "Riverside Distribution Center",
		"address":           "4200 Commerce Blvd, Orlando, FL 32810",
		"roof_area":         float64(85000),
		"membrane_type":     "TPO",
		"fastening_pattern": "Mechanically Attached",
	}
}

func TestValidate_ValidSubmission(t *testing.T) {
	result := createTestValidator(t).Validate(validTakeoff())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	result := createTestValidator(t).Validate(models.Takeoff{})

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 5)
	assert.Contains(t, result.Errors, "Missing required field: project_name (Project name)")
	assert.Contains(t, result.Errors, "Missing required field: roof_area (Roof area in square feet)")
}

func TestValidate_FieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(models.Takeoff)
		wantErr string
	}{
		{
			name:    "short address",
			mutate:  func(d models.Takeoff) { d["address"] = "Main St" },
			wantErr: "address: Minimum length is 10, got 7",
		},
		{
			name:    "roof area below minimum",
			mutate:  func(d models.Takeoff) { d["roof_area"] = float64(50) },
			wantErr: "roof_area: Minimum value is 100, got 50",
		},
		{
			name:    "roof area above maximum",
			mutate:  func(d models.Takeoff) { d["roof_area"] = float64(2000000) },
			wantErr: "roof_area: Maximum value is 1e+06, got 2e+06",
		},
		{
			name:    "unknown membrane",
			mutate:  func(d models.Takeoff) { d["membrane_type"] = "Shingle" },
			wantErr: `membrane_type: Must be one of [TPO, EPDM, PVC, Modified Bitumen, Built-Up], got "Shingle"`,
		},
		{
			name:    "wrong type for roof area",
			mutate:  func(d models.Takeoff) { d["roof_area"] = "big" },
			wantErr: "roof_area: Expected number, got string",
		},
		{
			name:    "bad wind zone",
			mutate:  func(d models.Takeoff) { d["wind_zone"] = "V" },
			wantErr: "wind_zone: Does not match required pattern ^(I|II|III|IV)$",
		},
		{
			name:    "lowercase state",
			mutate:  func(d models.Takeoff) { d["state"] = "fl" },
			wantErr: "state: Does not match required pattern ^[A-Z]{2}$",
		},
		{
			name:    "insulation thickness out of range",
			mutate:  func(d models.Takeoff) { d["insulation_thickness"] = float64(15) },
			wantErr: "insulation_thickness: Maximum value is 12, got 15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validTakeoff()
			tt.mutate(data)

			result := createTestValidator(t).Validate(data)
			assert.False(t, result.IsValid)
			assert.Contains(t, result.Errors, tt.wantErr)
		})
	}
}

func TestValidate_BusinessRules(t *testing.T) {
	t.Run("hvhz outside coastal states warns", func(t *testing.T) {
		data := validTakeoff()
		data["hvhz_zone"] = true
		data["state"] = "OH"

		result := createTestValidator(t).Validate(data)
		assert.True(t, result.IsValid)
		assert.Contains(t, result.Warnings, "HVHZ zone is typically only required in coastal states")
	})

	t.Run("hvhz in florida does not warn", func(t *testing.T) {
		data := validTakeoff()
		data["hvhz_zone"] = true
		data["state"] = "FL"

		result := createTestValidator(t).Validate(data)
		assert.Empty(t, result.Warnings)
	})

	t.Run("insulation none with thickness errors", func(t *testing.T) {
		data := validTakeoff()
		data["insulation_type"] = "None"
		data["insulation_thickness"] = float64(2)

		result := createTestValidator(t).Validate(data)
		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "Insulation thickness cannot be > 0 when insulation type is 'None'")
	})

	t.Run("tall building with low wind zone warns", func(t *testing.T) {
		data := validTakeoff()
		data["building_height"] = float64(80)
		data["wind_zone"] = "II"

		result := createTestValidator(t).Validate(data)
		assert.True(t, result.IsValid)
		assert.Contains(t, result.Warnings, "Tall buildings typically require higher wind zones")
	})

	t.Run("very large roof area warns", func(t *testing.T) {
		data := validTakeoff()
		data["roof_area"] = float64(250000)

		result := createTestValidator(t).Validate(data)
		assert.True(t, result.IsValid)
		assert.Contains(t, result.Warnings, "Very large roof area - please verify measurement")
	})
}

func TestValidate_UnknownFieldsWarn(t *testing.T) {
	data := validTakeoff()
	data["roof_color"] = "white"

	result := createTestValidator(t).Validate(data)
	assert.True(t, result.IsValid)
	assert.Contains(t, result.Warnings, "Unknown field: roof_color")
}

func TestValidate_HVACUnitsAreKnown(t *testing.T) {
	data := validTakeoff()
	data["hvac_units"] = []interface{}{
		map[string]interface{}{"unit_type": "RTU", "count": float64(3)},
	}

	result := createTestValidator(t).Validate(data)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Warnings)
}

func TestValidatePayload(t *testing.T) {
	v := createTestValidator(t)

	t.Run("valid payload", func(t *testing.T) {
		payload := []byte(`{
			"project_name": "Riverside Distribution Center",
			"address": "4200 Commerce Blvd, Orlando, FL 32810",
			"roof_area": 85000,
			"membrane_type": "TPO",
			"fastening_pattern": "Mechanically Attached"
		}`)

		data, result, err := v.ValidatePayload(payload)
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Equal(t, "TPO", data["membrane_type"])
	})

	t.Run("malformed json", func(t *testing.T) {
		_, _, err := v.ValidatePayload([]byte(`{not json`))
		require.Error(t, err)
	})

	t.Run("schema violation becomes error", func(t *testing.T) {
		payload := []byte(`{
			"project_name": "Riverside Distribution Center",
			"address": "4200 Commerce Blvd, Orlando, FL 32810",
			"roof_area": 85000,
			"membrane_type": "TPO",
			"fastening_pattern": "Mechanically Attached",
			"hvhz_zone": "yes"
		}`)

		_, result, err := v.ValidatePayload(payload)
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.NotEmpty(t, result.Errors)
	})
}
