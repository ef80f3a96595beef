// internal/assembly/compat.go
package assembly

import "strings"

// Template identifiers referenced by the matching rules.
const (
	DefaultTemplate       = "T6-Tearoff-TPO(MA)-insul-steel"
	RecoverTemplate       = "T5-Recover-TPO(Rhino)-iso-EPS-flute-fill-SSR"
	GypsumAdheredTemplate = "T8-Tearoff-TPO(adhered)-insul(adhered)-gypsum"
	LightweightTemplate   = "T7-Tearoff-TPO(MA)-insul-lwc-steel"
	EPDMBallastedTemplate = "EPDM-Ballasted-System"
	EPDMAdheredTemplate   = "EPDM-Adhered-System"
	PVCTemplate           = "PVC-Mechanically-Attached"
)

// matchRule pairs a predicate over the located membrane and deck layers with
// the template it selects. Rules are evaluated top to bottom and the first
// hit wins, so precedence lives in the slice order, not in branch nesting.
type matchRule struct {
	matches  func(membrane, deck RoofLayer) bool
	template string
}

func materialContains(l RoofLayer, substr string) bool {
	return strings.Contains(strings.ToLower(l.Material), substr)
}

var matchRules = []matchRule{
	{
		matches: func(m, d RoofLayer) bool {
			return materialContains(m, "tpo") && materialContains(d, "gypsum") && m.Attachment == AttachmentAdhered
		},
		template: GypsumAdheredTemplate,
	},
	{
		matches: func(m, d RoofLayer) bool {
			return materialContains(m, "tpo") && (materialContains(d, "lightweight") || materialContains(d, "concrete"))
		},
		template: LightweightTemplate,
	},
	{
		matches: func(m, d RoofLayer) bool {
			return materialContains(m, "tpo")
		},
		template: DefaultTemplate,
	},
	{
		matches: func(m, d RoofLayer) bool {
			return materialContains(m, "epdm") && m.Attachment == AttachmentBallasted
		},
		template: EPDMBallastedTemplate,
	},
	{
		matches: func(m, d RoofLayer) bool {
			return materialContains(m, "epdm")
		},
		template: EPDMAdheredTemplate,
	},
	{
		matches: func(m, d RoofLayer) bool {
			return materialContains(m, "pvc")
		},
		template: PVCTemplate,
	},
}

// CompatibleTemplates infers which templates an assembly can be rendered
// against. Missing membrane or deck layers degrade to the default tearoff
// recommendation with no candidates rather than failing; data-quality
// anomalies only lower the confidence score and add warnings.
func CompatibleTemplates(layers []RoofLayer) TemplateCompatibility {
	membrane, hasMembrane := findLayer(layers, LayerMembrane)
	deck, hasDeck := findLayer(layers, LayerDeck)

	if !hasMembrane || !hasDeck {
		return TemplateCompatibility{
			RecommendedTemplate: DefaultTemplate,
			CompatibleTemplates: []string{},
			Warnings:            []string{"Assembly is missing a membrane or deck layer, defaulting to the standard TPO tearoff template"},
			Confidence:          50,
		}
	}

	recommended := DefaultTemplate
	for _, rule := range matchRules {
		if rule.matches(membrane, deck) {
			recommended = rule.template
			break
		}
	}

	// Penalties assign the score outright rather than subtracting, so the
	// EPDM rule overrides the gypsum one when both fire.
	confidence := 100
	warnings := []string{}
	if materialContains(deck, "gypsum") && membrane.Attachment != AttachmentAdhered {
		confidence = 75
		warnings = append(warnings, "Gypsum deck typically requires adhered membrane")
	}
	if materialContains(membrane, "epdm") && membrane.Attachment == AttachmentMechanical {
		confidence = 60
		warnings = append(warnings, "EPDM is typically adhered, not mechanically attached")
	}

	// The default tearoff and recover templates are always offered as
	// alternates, even when one of them is already the recommendation.
	return TemplateCompatibility{
		RecommendedTemplate: recommended,
		CompatibleTemplates: []string{recommended, DefaultTemplate, RecoverTemplate},
		Warnings:            warnings,
		Confidence:          confidence,
	}
}
