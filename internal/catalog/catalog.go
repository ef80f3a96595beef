// Package catalog holds static reference data for known roofing components.
// Entries are keyed by a lowercase slug and are immutable for the process
// lifetime; there is no mutation API.
package catalog

// MembraneType describes one known membrane product family.
type MembraneType struct {
	Value            string // lowercase slug, the catalog key
	Label            string
	TemplateCategory string // coarse bucket used for template grouping
	FireRating       string
	HeatWeldable     bool
	RequiresBallast  bool
}

// InsulationType describes one known insulation product family.
type InsulationType struct {
	Value             string
	Label             string
	RValuePerInch     float64
	MoistureResistant bool
	FireResistant     bool
}

// DeckType describes one known structural deck.
type DeckType struct {
	Value            string
	Label            string
	NominalThickness string
	FastenerFriendly bool // false means fasteners do not hold reliably
}

var membraneTypes = map[string]MembraneType{
	"tpo": {
		Value:            "tpo",
		Label:            "TPO (Thermoplastic Polyolefin)",
		TemplateCategory: "thermoplastic",
		FireRating:       "Class A",
		HeatWeldable:     true,
	},
	"epdm": {
		Value:            "epdm",
		Label:            "EPDM (Ethylene Propylene Diene Monomer)",
		TemplateCategory: "thermoset",
		FireRating:       "Class A",
	},
	"epdm-ballasted": {
		Value:            "epdm-ballasted",
		Label:            "EPDM Ballasted",
		TemplateCategory: "thermoset",
		FireRating:       "Class A",
		RequiresBallast:  true,
	},
	"pvc": {
		Value:            "pvc",
		Label:            "PVC (Polyvinyl Chloride)",
		TemplateCategory: "thermoplastic",
		FireRating:       "Class A",
		HeatWeldable:     true,
	},
	"modified-bitumen": {
		Value:            "modified-bitumen",
		Label:            "Modified Bitumen",
		TemplateCategory: "asphaltic",
		FireRating:       "Class B",
	},
	"bur": {
		Value:            "bur",
		Label:            "Built-Up Roof (BUR)",
		TemplateCategory: "asphaltic",
		FireRating:       "Class B",
	},
}

var insulationTypes = map[string]InsulationType{
	"polyiso": {
		Value:         "polyiso",
		Label:         "Polyisocyanurate (Polyiso)",
		RValuePerInch: 5.6,
		FireResistant: true,
	},
	"eps": {
		Value:             "eps",
		Label:             "Expanded Polystyrene (EPS)",
		RValuePerInch:     3.85,
		MoistureResistant: false,
	},
	"xps": {
		Value:             "xps",
		Label:             "Extruded Polystyrene (XPS)",
		RValuePerInch:     5.0,
		MoistureResistant: true,
	},
	"mineral-wool": {
		Value:             "mineral-wool",
		Label:             "Mineral Wool",
		RValuePerInch:     4.2,
		MoistureResistant: true,
		FireResistant:     true,
	},
}

var deckTypes = map[string]DeckType{
	"steel": {
		Value:            "steel",
		Label:            "Steel Deck",
		NominalThickness: "22GA",
		FastenerFriendly: true,
	},
	"concrete": {
		Value:            "concrete",
		Label:            "Structural Concrete Deck",
		NominalThickness: `4"`,
		FastenerFriendly: true,
	},
	"wood": {
		Value:            "wood",
		Label:            "Wood Plank Deck",
		NominalThickness: `5/8"`,
		FastenerFriendly: true,
	},
	"gypsum": {
		Value:            "gypsum",
		Label:            "Gypsum Deck",
		NominalThickness: `2"`,
		FastenerFriendly: false,
	},
}

// legacyNames maps product names from older inspection forms onto catalog slugs.
var legacyNames = map[string]string{
	"thermoplastic polyolefin": "tpo",
	"tpo 60 mil":               "tpo",
	"rubber":                   "epdm",
	"ballasted epdm":           "epdm-ballasted",
	"vinyl":                    "pvc",
	"mod bit":                  "modified-bitumen",
	"modbit":                   "modified-bitumen",
	"built-up":                 "bur",
	"built up roof":            "bur",
	"polyisocyanurate":         "polyiso",
	"iso":                      "polyiso",
	"mineral wool":             "mineral-wool",
	"rockwool":                 "mineral-wool",
	"lightweight concrete":     "concrete",
	"lwc":                      "concrete",
}

// Membrane looks up a membrane catalog entry by slug.
func Membrane(value string) (MembraneType, bool) {
	m, ok := membraneTypes[value]
	return m, ok
}

// Insulation looks up an insulation catalog entry by slug.
func Insulation(value string) (InsulationType, bool) {
	i, ok := insulationTypes[value]
	return i, ok
}

// Deck looks up a deck catalog entry by slug.
func Deck(value string) (DeckType, bool) {
	d, ok := deckTypes[value]
	return d, ok
}

// ResolveLegacyName maps a legacy product name onto its catalog slug.
// Unknown names pass through unchanged so callers can apply their own
// fallback rows.
func ResolveLegacyName(name string) string {
	if slug, ok := legacyNames[name]; ok {
		return slug
	}
	return name
}

// Membranes returns all membrane slugs known to the catalog.
func Membranes() []string {
	out := make([]string, 0, len(membraneTypes))
	for k := range membraneTypes {
		out = append(out, k)
	}
	return out
}

// Insulations returns all insulation slugs known to the catalog.
func Insulations() []string {
	out := make([]string, 0, len(insulationTypes))
	for k := range insulationTypes {
		out = append(out, k)
	}
	return out
}
