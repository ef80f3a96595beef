// internal/assembly/engine.go
package assembly

import (
	"fmt"

	"sow-engine/internal/catalog"
)

// Lookup rows for layer generation. Unknown slugs fall back to the default
// row for the layer kind while the caller's slug is kept as the material,
// so a misspelled product still yields a renderable assembly.

type deckRow struct {
	description string
	thickness   string
}

var deckRows = map[string]deckRow{
	"steel":    {"Steel Roof Deck", "22GA"},
	"concrete": {"Structural Concrete Deck", `4"`},
	"wood":     {"Wood Plank Deck", `5/8"`},
	"gypsum":   {"Gypsum Deck", `2"`},
}

const defaultDeckKey = "steel"

type insulationRow struct {
	description string
	thickness   string
}

var insulationRows = map[string]insulationRow{
	"polyiso":      {"Polyiso Insulation", `4.5" (R-25)`},
	"eps":          {"EPS Insulation", `5.0" (R-19)`},
	"xps":          {"XPS Insulation", `4.0" (R-20)`},
	"mineral-wool": {"Mineral Wool Insulation", `5.5" (R-23)`},
}

const defaultInsulationKey = "polyiso"

type membraneRow struct {
	description string
	thickness   string
	attachment  Attachment
}

var membraneRows = map[string]membraneRow{
	"tpo":              {"TPO Membrane", "60-mil", AttachmentMechanical},
	"epdm":             {"EPDM Membrane", "60-mil", AttachmentAdhered},
	"epdm-ballasted":   {"EPDM Ballasted Membrane", "60-mil", AttachmentBallasted},
	"pvc":              {"PVC Membrane", "60-mil", AttachmentMechanical},
	"modified-bitumen": {"Modified Bitumen Membrane", "2-ply", AttachmentWelded},
	"bur":              {"Built-Up Roof Membrane", "4-ply", AttachmentAdhered},
}

const defaultMembraneKey = "tpo"

// deckNeedsAdhesion reports whether fasteners do not hold reliably in the
// given deck, forcing adhered attachment for the layers above it.
func deckNeedsAdhesion(deckType string) bool {
	d, ok := catalog.Deck(deckType)
	return ok && !d.FastenerFriendly
}

// DeriveLayers produces the ordered layer stack (deck, insulation, optional
// cover board, membrane) for the selected component types. Absent components
// are simply omitted; nothing here returns an error. The function is pure
// and layer ids restart at layer_1 on every call.
func DeriveLayers(req Request) []RoofLayer {
	layers := make([]RoofLayer, 0, 4)
	nextID := func() string { return fmt.Sprintf("layer_%d", len(layers)+1) }

	if req.DeckType != "" {
		row, ok := deckRows[req.DeckType]
		if !ok {
			row = deckRows[defaultDeckKey]
		}
		layers = append(layers, RoofLayer{
			ID:          nextID(),
			Type:        LayerDeck,
			Description: row.description,
			Attachment:  AttachmentMechanical,
			Thickness:   row.thickness,
			Material:    req.DeckType,
		})
	}

	if req.InsulationType != "" {
		row, ok := insulationRows[req.InsulationType]
		if !ok {
			row = insulationRows[defaultInsulationKey]
		}
		attachment := AttachmentMechanical
		if deckNeedsAdhesion(req.DeckType) {
			attachment = AttachmentAdhered
		}
		layers = append(layers, RoofLayer{
			ID:          nextID(),
			Type:        LayerInsulation,
			Description: row.description,
			Attachment:  attachment,
			Thickness:   row.thickness,
			Material:    req.InsulationType,
		})
	}

	// Cover board is emitted for exactly one combination today: TPO over a
	// steel deck, where puncture resistance above the flutes matters most.
	if req.MembraneType == "tpo" && req.DeckType == "steel" {
		layers = append(layers, RoofLayer{
			ID:          nextID(),
			Type:        LayerCoverBoard,
			Description: "Gypsum Cover Board",
			Attachment:  AttachmentMechanical,
			Thickness:   `1/4"`,
			Material:    "gypsum",
		})
	}

	if req.MembraneType != "" {
		key := req.MembraneType
		if _, ok := membraneRows[key]; !ok {
			key = defaultMembraneKey
		}
		row := membraneRows[key]
		attachment := row.attachment
		if key == "tpo" && deckNeedsAdhesion(req.DeckType) {
			attachment = AttachmentAdhered
		}
		layers = append(layers, RoofLayer{
			ID:          nextID(),
			Type:        LayerMembrane,
			Description: row.description,
			Attachment:  attachment,
			Thickness:   row.thickness,
			Material:    req.MembraneType,
		})
	}

	return layers
}
