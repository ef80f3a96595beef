// internal/sow/templates/metadata.go
package templates

import "sow-engine/pkg/registry"

// Metadata describes one contract template: what kind of work it covers and
// which sections its document carries.
type Metadata struct {
	Name              string
	Description       string
	WorkType          string
	MembraneTypes     []string
	AttachmentMethods []string
	DeckTypes         []string
	Sections          []string
	Complexity        string
	EstimatedDuration string
	Restrictions      []string
}

// builtinMetadata is the shipped template catalog. A registry file, when
// configured, replaces it wholesale.
var builtinMetadata = map[string]Metadata{
	"T2": {
		Name:              "T2-Recover-TPO(MA)-cvr-bd-BUR-lwc-steel",
		Description:       "TPO recover over BUR on lightweight concrete and steel deck",
		WorkType:          "recover",
		MembraneTypes:     []string{"TPO"},
		AttachmentMethods: []string{"mechanically_attached"},
		DeckTypes:         []string{"steel", "concrete", "lightweight_concrete"},
		Sections: []string{
			"project_overview", "existing_conditions", "scope_of_work",
			"materials", "installation", "fastening_requirements",
			"flashing_details", "warranty",
		},
		Complexity:        "standard",
		EstimatedDuration: "5-7 days per 10,000 sf",
	},
	"T4": {
		Name:              "T4-Recover-TPOfleece(MA)-BUR-lwc-steel",
		Description:       "TPO fleeceback recover over BUR on steel",
		WorkType:          "recover",
		MembraneTypes:     []string{"TPO_fleece"},
		AttachmentMethods: []string{"mechanically_attached"},
		DeckTypes:         []string{"steel"},
		Sections: []string{
			"project_overview", "scope_of_work", "materials",
			"installation", "fleeceback_requirements",
		},
		Complexity:        "standard",
		EstimatedDuration: "4-6 days per 10,000 sf",
		Restrictions:      []string{"Not approved for Prologis projects"},
	},
	"T5": {
		Name:              "T5-Recover-TPO(Rhino)-iso-EPS-flute-fill-SSR",
		Description:       "TPO with Rhino Bond over structural standing seam roof",
		WorkType:          "recover",
		MembraneTypes:     []string{"TPO"},
		AttachmentMethods: []string{"rhino_bond", "induction_welded"},
		DeckTypes:         []string{"structural_standing_seam"},
		Sections: []string{
			"project_overview", "scope_of_work", "materials",
			"installation", "rhino_bond_requirements", "eps_flute_fill",
		},
		Complexity:        "complex",
		EstimatedDuration: "6-8 days per 10,000 sf",
	},
	"T6": {
		Name:              "T6-Tearoff-TPO(MA)-insul-steel",
		Description:       "TPO tearoff and replacement with insulation on steel deck",
		WorkType:          "tearoff",
		MembraneTypes:     []string{"TPO"},
		AttachmentMethods: []string{"mechanically_attached"},
		DeckTypes:         []string{"steel"},
		Sections: []string{
			"project_overview", "tearoff_requirements", "scope_of_work",
			"materials", "insulation", "installation", "fastening", "warranty",
		},
		Complexity:        "standard",
		EstimatedDuration: "7-10 days per 10,000 sf",
	},
	"T7": {
		Name:              "T7-Tearoff-TPO(MA)-insul-lwc-steel",
		Description:       "TPO tearoff over lightweight concrete on steel deck",
		WorkType:          "tearoff",
		MembraneTypes:     []string{"TPO"},
		AttachmentMethods: []string{"mechanically_attached"},
		DeckTypes:         []string{"lightweight_concrete", "steel"},
		Sections: []string{
			"project_overview", "tearoff_requirements", "scope_of_work",
			"materials", "insulation", "installation", "lwc_considerations",
		},
		Complexity:        "standard",
		EstimatedDuration: "8-11 days per 10,000 sf",
	},
	"T8": {
		Name:              "T8-Tearoff-TPO(adhered)-insul(adhered)-gypsum",
		Description:       "Fully adhered TPO tearoff and replacement on gypsum deck",
		WorkType:          "tearoff",
		MembraneTypes:     []string{"TPO"},
		AttachmentMethods: []string{"fully_adhered"},
		DeckTypes:         []string{"gypsum"},
		Sections: []string{
			"project_overview", "tearoff_requirements", "scope_of_work",
			"materials", "adhered_insulation", "adhered_membrane", "gypsum_requirements",
		},
		Complexity:        "complex",
		EstimatedDuration: "9-12 days per 10,000 sf",
	},
}

func metadataFromRegistry(reg *registry.TemplateRegistry) map[string]Metadata {
	meta := make(map[string]Metadata, len(reg.Templates))
	for _, t := range reg.Templates {
		meta[t.ID] = Metadata{
			Name:              t.Name,
			Description:       t.Description,
			WorkType:          t.WorkType,
			MembraneTypes:     t.MembraneTypes,
			AttachmentMethods: t.AttachmentMethods,
			DeckTypes:         t.DeckTypes,
			Sections:          t.Sections,
			Complexity:        t.Complexity,
			EstimatedDuration: t.EstimatedDuration,
			Restrictions:      t.Restrictions,
		}
	}
	return meta
}
