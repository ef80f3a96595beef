// internal/assembly/validate.go
package assembly

// Validate runs structural sanity checks over a layer list. Missing deck or
// membrane layers are hard errors; everything else is advisory. Callers
// decide whether an invalid result blocks document generation.
func Validate(layers []RoofLayer) Validation {
	v := Validation{
		IsValid:     true,
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	deck, hasDeck := findLayer(layers, LayerDeck)
	membrane, hasMembrane := findLayer(layers, LayerMembrane)

	if !hasDeck {
		v.IsValid = false
		v.Errors = append(v.Errors, "Deck layer is required")
	}
	if !hasMembrane {
		v.IsValid = false
		v.Errors = append(v.Errors, "Membrane layer is required")
	}

	if !hasLayer(layers, LayerInsulation) {
		v.Warnings = append(v.Warnings, "No insulation layer present, assembly may not meet energy code")
	}

	// Ordering is a convention, not a requirement. A single-layer list is
	// never flagged for it.
	if len(layers) > 1 {
		if layers[0].Type != LayerDeck {
			v.Warnings = append(v.Warnings, "Assembly should start with the deck layer")
		}
		if layers[len(layers)-1].Type != LayerMembrane {
			v.Warnings = append(v.Warnings, "Assembly should end with the membrane layer")
		}
	}

	if hasDeck && hasMembrane {
		if materialContains(deck, "gypsum") && membrane.Attachment != AttachmentAdhered {
			v.Warnings = append(v.Warnings, "Gypsum deck typically requires adhered membrane")
		}
		if materialContains(membrane, "epdm") && membrane.Attachment == AttachmentMechanical {
			v.Suggestions = append(v.Suggestions, "Consider adhered attachment for EPDM membranes")
		}
	}

	return v
}
