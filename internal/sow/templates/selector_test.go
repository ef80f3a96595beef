// internal/sow/templates/selector_test.go
package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sow-engine/internal/models"
)

func testInspection(projectType, membrane, fastening, deck string) models.FieldInspection {
	return models.FieldInspection{
		ProjectName:      "Test Warehouse",
		ProjectAddress:   "100 Industrial Way, Tampa, FL",
		ProjectType:      projectType,
		MembraneType:     membrane,
		FasteningPattern: fastening,
		DeckType:         deck,
	}
}

func TestNormalizers(t *testing.T) {
	assert.Equal(t, "recover", NormalizeWorkType("Re-Cover Existing"))
	assert.Equal(t, "tearoff", NormalizeWorkType("Full Replacement"))
	assert.Equal(t, "recover", NormalizeWorkType("something else"))

	assert.Equal(t, "TPO_fleece", NormalizeMembraneType("TPO Fleeceback"))
	assert.Equal(t, "TPO", NormalizeMembraneType("tpo 60 mil"))
	assert.Equal(t, "EPDM", NormalizeMembraneType("EPDM Rubber"))
	assert.Equal(t, "TPO", NormalizeMembraneType("unknown"))

	assert.Equal(t, "mechanically_attached", NormalizeAttachmentMethod("Mechanically Attached"))
	assert.Equal(t, "fully_adhered", NormalizeAttachmentMethod("Fully Adhered"))
	assert.Equal(t, "rhino_bond", NormalizeAttachmentMethod("Rhino Bond"))
	assert.Equal(t, "ballasted", NormalizeAttachmentMethod("Ballasted"))
	assert.Equal(t, "mechanically_attached", NormalizeAttachmentMethod(""))

	assert.Equal(t, "steel", NormalizeDeckType("Steel Deck"))
	assert.Equal(t, "lightweight_concrete", NormalizeDeckType("Lightweight Concrete"))
	assert.Equal(t, "concrete", NormalizeDeckType("Structural Concrete"))
	assert.Equal(t, "gypsum", NormalizeDeckType("Gypsum"))
	assert.Equal(t, "structural_standing_seam", NormalizeDeckType("Standing Seam Metal"))
	assert.Equal(t, "", NormalizeDeckType(""))
	assert.Equal(t, "", NormalizeDeckType("tectum"))
}

func TestSelector_ExactMatches(t *testing.T) {
	selector := NewSelector()

	tests := []struct {
		name string
		insp models.FieldInspection
		want string
	}{
		{"recover tpo ma steel", testInspection("recover", "TPO", "Mechanically Attached", "Steel"), "T2"},
		{"recover fleece ma steel", testInspection("recover", "TPO Fleeceback", "Mechanically Attached", "Steel"), "T4"},
		{"recover rhino bond", testInspection("recover", "TPO", "Rhino Bond", "Steel"), "T5"},
		{"tearoff tpo ma steel", testInspection("tearoff", "TPO", "Mechanically Attached", "Steel"), "T6"},
		{"tearoff tpo ma lwc", testInspection("tearoff", "TPO", "Mechanically Attached", "Lightweight Concrete"), "T7"},
		{"tearoff tpo adhered gypsum", testInspection("tearoff", "TPO", "Fully Adhered", "Gypsum"), "T8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := selector.Select(tt.insp)
			assert.Equal(t, tt.want, sel.TemplateID)
			assert.Equal(t, "high", sel.Confidence)
			assert.Empty(t, sel.Notes)
			assert.NotEmpty(t, sel.Sections)
		})
	}
}

func TestSelector_PartialMatchAddsVerificationNote(t *testing.T) {
	selector := NewSelector()

	sel := selector.Select(testInspection("tearoff", "TPO", "Mechanically Attached", ""))
	assert.Equal(t, "T6", sel.TemplateID)
	assert.Equal(t, "high", sel.Confidence)
	require.Len(t, sel.Notes, 1)
	assert.Contains(t, sel.Notes[0], "Deck type needs verification")
}

func TestSelector_FallbackIsLowConfidence(t *testing.T) {
	selector := NewSelector()

	sel := selector.Select(testInspection("tearoff", "TPO", "Fully Adhered", "Steel"))
	assert.Equal(t, "T2", sel.TemplateID)
	assert.Equal(t, "low", sel.Confidence)
	assert.Equal(t, "requires_review", sel.Complexity)
	assert.Len(t, sel.Notes, 3)
}

func TestSelector_ValidateCompatibility(t *testing.T) {
	selector := NewSelector()

	t.Run("compatible", func(t *testing.T) {
		report := selector.ValidateCompatibility("T6", testInspection("tearoff", "TPO", "Mechanically Attached", "Steel"))
		assert.True(t, report.Compatible)
		assert.Equal(t, "high", report.Confidence)
	})

	t.Run("work type mismatch", func(t *testing.T) {
		report := selector.ValidateCompatibility("T6", testInspection("recover", "TPO", "Mechanically Attached", "Steel"))
		assert.False(t, report.Compatible)
		assert.Equal(t, "low", report.Confidence)
		require.Len(t, report.Errors, 1)
		assert.Contains(t, report.Errors[0], "Work type mismatch")
	})

	t.Run("deck mismatch is a warning", func(t *testing.T) {
		report := selector.ValidateCompatibility("T6", testInspection("tearoff", "TPO", "Mechanically Attached", "Gypsum"))
		assert.True(t, report.Compatible)
		assert.Equal(t, "medium", report.Confidence)
		require.Len(t, report.Warnings, 1)
	})

	t.Run("restriction surfaces as warning", func(t *testing.T) {
		report := selector.ValidateCompatibility("T4", testInspection("recover", "TPO Fleeceback", "Mechanically Attached", "Steel"))
		assert.True(t, report.Compatible)
		assert.Contains(t, report.Warnings, "Template restriction: Not approved for Prologis projects")
	})

	t.Run("unknown template", func(t *testing.T) {
		report := selector.ValidateCompatibility("T99", testInspection("tearoff", "TPO", "Mechanically Attached", "Steel"))
		assert.False(t, report.Compatible)
		assert.Contains(t, report.Errors[0], "not found")
	})
}

func TestSelector_List(t *testing.T) {
	selector := NewSelector()

	all := selector.List("", "")
	require.Len(t, all, 6)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].TemplateID, all[i].TemplateID)
	}

	tearoffs := selector.List("tearoff", "")
	require.Len(t, tearoffs, 3)
	for _, s := range tearoffs {
		assert.Equal(t, "tearoff", s.WorkType)
	}

	fleece := selector.List("", "TPO Fleeceback")
	require.Len(t, fleece, 1)
	assert.Equal(t, "T4", fleece[0].TemplateID)
}
