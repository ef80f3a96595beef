// internal/assembly/validate_test.go
package assembly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_EmptyAssembly(t *testing.T) {
	v := Validate([]RoofLayer{})

	assert.False(t, v.IsValid)
	assert.Contains(t, v.Errors, "Deck layer is required")
	assert.Contains(t, v.Errors, "Membrane layer is required")
}

func TestValidate_SingleMembraneLayer(t *testing.T) {
	v := Validate([]RoofLayer{membraneLayer("tpo", AttachmentMechanical)})

	assert.False(t, v.IsValid)
	assert.Contains(t, v.Errors, "Deck layer is required")
	// Ordering checks only apply to multi-layer lists; a lone membrane must
	// not be flagged for not starting with a deck.
	assert.NotContains(t, v.Warnings, "Assembly should start with the deck layer")
	assert.NotContains(t, v.Warnings, "Assembly should end with the membrane layer")
}

func TestValidate_OrderingWarnings(t *testing.T) {
	reversed := []RoofLayer{membraneLayer("tpo", AttachmentMechanical), deckLayer("steel")}
	v := Validate(reversed)

	assert.True(t, v.IsValid)
	assert.Contains(t, v.Warnings, "Assembly should start with the deck layer")
	assert.Contains(t, v.Warnings, "Assembly should end with the membrane layer")
}

func TestValidate_MissingInsulationWarning(t *testing.T) {
	v := Validate([]RoofLayer{deckLayer("steel"), membraneLayer("tpo", AttachmentMechanical)})

	assert.True(t, v.IsValid)
	assert.Contains(t, v.Warnings, "No insulation layer present, assembly may not meet energy code")
}

func TestValidate_GypsumAttachmentWarning(t *testing.T) {
	v := Validate([]RoofLayer{deckLayer("gypsum"), membraneLayer("tpo", AttachmentMechanical)})
	assert.Contains(t, v.Warnings, "Gypsum deck typically requires adhered membrane")

	adhered := Validate([]RoofLayer{deckLayer("gypsum"), membraneLayer("tpo", AttachmentAdhered)})
	assert.NotContains(t, adhered.Warnings, "Gypsum deck typically requires adhered membrane")
}

func TestValidate_EPDMSuggestion(t *testing.T) {
	v := Validate([]RoofLayer{deckLayer("steel"), membraneLayer("epdm", AttachmentMechanical)})
	assert.Contains(t, v.Suggestions, "Consider adhered attachment for EPDM membranes")
}

func TestValidate_CompleteAssemblyIsClean(t *testing.T) {
	layers := DeriveLayers(Request{MembraneType: "tpo", InsulationType: "polyiso", DeckType: "steel"})
	v := Validate(layers)

	assert.True(t, v.IsValid)
	assert.Empty(t, v.Errors)
	assert.Empty(t, v.Warnings)
}

func TestSuggestions(t *testing.T) {
	lowR := RoofLayer{Type: LayerInsulation, Thickness: `3.0" (R-18)`, Material: "eps"}
	highR := RoofLayer{Type: LayerInsulation, Thickness: `4.5" (R-25)`, Material: "polyiso"}
	board := RoofLayer{Type: LayerCoverBoard, Thickness: `1/4"`, Material: "gypsum"}

	tests := []struct {
		name   string
		layers []RoofLayer
		want   []string
	}{
		{
			name:   "low r-value",
			layers: []RoofLayer{deckLayer("steel"), lowR, membraneLayer("epdm", AttachmentAdhered)},
			want:   []string{"Consider increasing insulation to R-25 or higher for better energy performance"},
		},
		{
			name:   "tpo without cover board",
			layers: []RoofLayer{deckLayer("concrete"), highR, membraneLayer("tpo", AttachmentMechanical)},
			want:   []string{"Consider adding a cover board under the TPO membrane for puncture resistance"},
		},
		{
			name:   "tpo with cover board",
			layers: []RoofLayer{deckLayer("steel"), highR, board, membraneLayer("tpo", AttachmentMechanical)},
			want:   []string{},
		},
		{
			name:   "both rules fire",
			layers: []RoofLayer{deckLayer("concrete"), lowR, membraneLayer("tpo", AttachmentMechanical)},
			want: []string{
				"Consider increasing insulation to R-25 or higher for better energy performance",
				"Consider adding a cover board under the TPO membrane for puncture resistance",
			},
		},
		{
			name:   "nothing to suggest",
			layers: []RoofLayer{deckLayer("steel"), highR, membraneLayer("epdm", AttachmentAdhered)},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggestions(tt.layers)
			require.Equal(t, tt.want, got)
		})
	}
}
