// internal/assembly/models.go
package assembly

// LayerType classifies one physical layer of a roof assembly.
type LayerType string

const (
	LayerMembrane   LayerType = "membrane"
	LayerInsulation LayerType = "insulation"
	LayerDeck       LayerType = "deck"
	LayerBarrier    LayerType = "barrier"
	LayerCoverBoard LayerType = "coverboard"
)

// Attachment is the method used to fasten a layer.
type Attachment string

const (
	AttachmentMechanical Attachment = "mechanically_attached"
	AttachmentAdhered    Attachment = "adhered"
	AttachmentBallasted  Attachment = "ballasted"
	AttachmentWelded     Attachment = "welded"
)

// RoofLayer is one physical layer of a roof assembly. IDs are assigned
// sequentially within one derivation call and carry no cross-call identity.
type RoofLayer struct {
	ID          string     `json:"id"`
	Type        LayerType  `json:"type"`
	Description string     `json:"description"`
	Attachment  Attachment `json:"attachment"`
	Thickness   string     `json:"thickness"`
	Material    string     `json:"material,omitempty"`
}

// Request selects the components for a forward derivation. Every field is
// optional; layers for absent components are simply omitted.
type Request struct {
	MembraneType   string `json:"membraneType"`
	InsulationType string `json:"insulationType"`
	DeckType       string `json:"deckType"`
	// ProjectType is accepted for forward compatibility with recover and
	// new-construction flows; it does not alter layer generation today.
	ProjectType string `json:"projectType"`
}

// TemplateCompatibility is the result of inferring templates from an assembly.
type TemplateCompatibility struct {
	RecommendedTemplate string   `json:"recommendedTemplate"`
	CompatibleTemplates []string `json:"compatibleTemplates"`
	Warnings            []string `json:"warnings"`
	Confidence          int      `json:"confidence"` // 0-100 heuristic score
}

// Validation is a structural sanity report over a layer list. IsValid is
// advisory: callers decide whether to block document generation on it.
type Validation struct {
	IsValid     bool     `json:"isValid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

func findLayer(layers []RoofLayer, t LayerType) (RoofLayer, bool) {
	for _, l := range layers {
		if l.Type == t {
			return l, true
		}
	}
	return RoofLayer{}, false
}

func hasLayer(layers []RoofLayer, t LayerType) bool {
	_, ok := findLayer(layers, t)
	return ok
}
