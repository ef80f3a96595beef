// internal/sow/templates/selector.go

// Package templates maps normalized project specifications onto named
// contract templates and exposes the template catalog for listing and
// compatibility checks.
package templates

import (
	"sort"
	"strings"

	"sow-engine/internal/models"
	"sow-engine/pkg/registry"
)

// Selection is the outcome of matching a project against the template
// catalog. Confidence is "high" on an exact or partial tuple match and
// "low" on the catch-all fallback.
type Selection struct {
	TemplateID        string         `json:"template_id"`
	TemplateName      string         `json:"template_name"`
	Description       string         `json:"description"`
	Confidence        string         `json:"confidence"`
	Notes             []string       `json:"notes"`
	EstimatedDuration string         `json:"estimated_duration"`
	Complexity        string         `json:"complexity"`
	Sections          []string       `json:"sections"`
	Logic             SelectionLogic `json:"selection_logic"`
}

// SelectionLogic records the normalized inputs the match was made on, so a
// reviewer can see why a template was chosen.
type SelectionLogic struct {
	WorkType         string `json:"work_type"`
	MembraneType     string `json:"membrane_type"`
	AttachmentMethod string `json:"attachment_method"`
	DeckType         string `json:"deck_type,omitempty"`
}

// CompatibilityReport is the result of checking a chosen template against
// project data.
type CompatibilityReport struct {
	Compatible      bool     `json:"compatible"`
	Errors          []string `json:"errors"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
	Confidence      string   `json:"confidence"`
}

// Summary is one row of a template listing.
type Summary struct {
	TemplateID        string   `json:"template_id"`
	TemplateName      string   `json:"template_name"`
	WorkType          string   `json:"work_type"`
	MembraneTypes     []string `json:"membrane_types"`
	AttachmentMethods []string `json:"attachment_methods"`
	DeckTypes         []string `json:"deck_types"`
	Complexity        string   `json:"complexity"`
	EstimatedDuration string   `json:"estimated_duration"`
}

// matchKey is the normalized (work, membrane, attachment, deck) tuple the
// mapping table is keyed by. An empty deck means "deck not determined" and
// is used for partial matches.
type matchKey struct {
	workType   string
	membrane   string
	attachment string
	deck       string
}

var templateMapping = map[matchKey]string{
	{"recover", "TPO", "mechanically_attached", "steel"}:             "T2",
	{"recover", "TPO", "mechanically_attached", "concrete"}:          "T2",
	{"recover", "TPO_fleece", "mechanically_attached", "steel"}:      "T4",
	{"recover", "TPO", "rhino_bond", "steel"}:                        "T5",
	{"tearoff", "TPO", "mechanically_attached", "steel"}:             "T6",
	{"tearoff", "TPO", "mechanically_attached", "lightweight_concrete"}: "T7",
	{"tearoff", "TPO", "fully_adhered", "gypsum"}:                    "T8",
}

// partialMapping resolves submissions whose deck type could not be
// determined. It is consulted only after the exact table misses, so a hit
// always carries the deck verification note.
var partialMapping = map[matchKey]string{
	{"recover", "TPO", "mechanically_attached", ""}: "T2",
	{"tearoff", "TPO", "mechanically_attached", ""}: "T6",
}

const fallbackTemplateID = "T2"

// Selector matches projects against a template catalog. The zero value is
// not usable; construct with NewSelector or NewSelectorFromRegistry.
type Selector struct {
	meta map[string]Metadata
}

// NewSelector returns a selector backed by the built-in template catalog.
func NewSelector() *Selector {
	return &Selector{meta: builtinMetadata}
}

// NewSelectorFromRegistry returns a selector backed by a loaded registry
// file instead of the built-in catalog.
func NewSelectorFromRegistry(reg *registry.TemplateRegistry) *Selector {
	return &Selector{meta: metadataFromRegistry(reg)}
}

// NormalizeWorkType collapses free-form work descriptions to the catalog's
// work types. Unrecognized input defaults to recover.
func NormalizeWorkType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(s, "recover") || strings.Contains(s, "re-cover"):
		return "recover"
	case strings.Contains(s, "tearoff") || strings.Contains(s, "tear-off") || strings.Contains(s, "replacement"):
		return "tearoff"
	default:
		return "recover"
	}
}

// NormalizeMembraneType collapses free-form membrane descriptions.
// Fleeceback takes precedence over plain TPO; unrecognized input defaults
// to TPO.
func NormalizeMembraneType(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.Contains(s, "FLEECE"):
		return "TPO_fleece"
	case strings.Contains(s, "TPO"):
		return "TPO"
	case strings.Contains(s, "EPDM"):
		return "EPDM"
	case strings.Contains(s, "PVC"):
		return "PVC"
	default:
		return "TPO"
	}
}

// NormalizeAttachmentMethod collapses free-form fastening descriptions.
// Unrecognized input defaults to mechanically attached.
func NormalizeAttachmentMethod(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(s, "mechanical") || strings.Contains(s, "attached"):
		return "mechanically_attached"
	case strings.Contains(s, "adhered") || strings.Contains(s, "fully"):
		return "fully_adhered"
	case strings.Contains(s, "rhino") || strings.Contains(s, "induction"):
		return "rhino_bond"
	case strings.Contains(s, "ballasted"):
		return "ballasted"
	default:
		return "mechanically_attached"
	}
}

// NormalizeDeckType collapses free-form deck descriptions. Unrecognized or
// empty input yields "", meaning the deck is undetermined.
func NormalizeDeckType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	switch {
	case strings.Contains(s, "steel"):
		return "steel"
	case strings.Contains(s, "concrete"):
		if strings.Contains(s, "lightweight") || strings.Contains(s, "lwc") {
			return "lightweight_concrete"
		}
		return "concrete"
	case strings.Contains(s, "gypsum"):
		return "gypsum"
	case strings.Contains(s, "wood"):
		return "wood"
	case strings.Contains(s, "standing") && strings.Contains(s, "seam"):
		return "structural_standing_seam"
	default:
		return ""
	}
}

// Select picks the best template for an inspection record. An exact tuple
// match wins; a deck-undetermined partial match adds a verification note;
// anything else falls back to the default recover template with low
// confidence and review notes.
func (s *Selector) Select(insp models.FieldInspection) Selection {
	logic := SelectionLogic{
		WorkType:         NormalizeWorkType(insp.ProjectType),
		MembraneType:     NormalizeMembraneType(insp.MembraneType),
		AttachmentMethod: NormalizeAttachmentMethod(insp.FasteningPattern),
		DeckType:         NormalizeDeckType(insp.DeckType),
	}

	key := matchKey{logic.WorkType, logic.MembraneType, logic.AttachmentMethod, logic.DeckType}
	if id, ok := templateMapping[key]; ok {
		return s.buildSelection(id, logic, nil)
	}

	key.deck = ""
	if id, ok := partialMapping[key]; ok {
		return s.buildSelection(id, logic, []string{
			"Deck type needs verification for optimal template selection",
		})
	}

	return s.buildFallback(logic)
}

func (s *Selector) buildSelection(id string, logic SelectionLogic, notes []string) Selection {
	meta := s.meta[id]
	if notes == nil {
		notes = []string{}
	}
	return Selection{
		TemplateID:        id,
		TemplateName:      meta.Name,
		Description:       meta.Description,
		Confidence:        "high",
		Notes:             notes,
		EstimatedDuration: meta.EstimatedDuration,
		Complexity:        meta.Complexity,
		Sections:          meta.Sections,
		Logic:             logic,
	}
}

func (s *Selector) buildFallback(logic SelectionLogic) Selection {
	meta := s.meta[fallbackTemplateID]
	return Selection{
		TemplateID:   fallbackTemplateID,
		TemplateName: meta.Name,
		Description:  "Default TPO template, requires manual review",
		Confidence:   "low",
		Notes: []string{
			"No exact template match found for specified parameters",
			"Using default TPO recover template",
			"Manual review recommended for template selection",
		},
		EstimatedDuration: "To be determined based on final specifications",
		Complexity:        "requires_review",
		Sections:          meta.Sections,
		Logic:             logic,
	}
}

// ValidateCompatibility checks whether a chosen template fits the project.
// Work-type and membrane mismatches are errors; deck mismatches and catalog
// restrictions are warnings.
func (s *Selector) ValidateCompatibility(templateID string, insp models.FieldInspection) CompatibilityReport {
	meta, ok := s.meta[templateID]
	if !ok {
		return CompatibilityReport{
			Compatible:      false,
			Errors:          []string{"Template " + templateID + " not found"},
			Warnings:        []string{},
			Recommendations: []string{"Please select a valid template"},
			Confidence:      "low",
		}
	}

	report := CompatibilityReport{
		Errors:          []string{},
		Warnings:        []string{},
		Recommendations: []string{},
	}

	workType := NormalizeWorkType(insp.ProjectType)
	if workType != meta.WorkType {
		report.Errors = append(report.Errors,
			"Work type mismatch: template is for "+meta.WorkType+", project is "+workType)
	}

	membrane := NormalizeMembraneType(insp.MembraneType)
	if !contains(meta.MembraneTypes, membrane) {
		report.Errors = append(report.Errors,
			"Membrane type "+membrane+" not supported by this template")
	}

	deck := NormalizeDeckType(insp.DeckType)
	if deck != "" && !contains(meta.DeckTypes, deck) {
		report.Warnings = append(report.Warnings,
			"Deck type "+deck+" may not be optimal for this template")
	}

	for _, r := range meta.Restrictions {
		report.Warnings = append(report.Warnings, "Template restriction: "+r)
	}

	report.Compatible = len(report.Errors) == 0
	switch {
	case report.Compatible && len(report.Warnings) == 0:
		report.Confidence = "high"
	case report.Compatible:
		report.Confidence = "medium"
	default:
		report.Confidence = "low"
	}
	return report
}

// List returns catalog summaries, optionally filtered by work type and
// membrane type, sorted by template id.
func (s *Selector) List(workType, membraneType string) []Summary {
	out := []Summary{}
	for id, meta := range s.meta {
		if workType != "" && meta.WorkType != NormalizeWorkType(workType) {
			continue
		}
		if membraneType != "" && !contains(meta.MembraneTypes, NormalizeMembraneType(membraneType)) {
			continue
		}
		out = append(out, Summary{
			TemplateID:        id,
			TemplateName:      meta.Name,
			WorkType:          meta.WorkType,
			MembraneTypes:     meta.MembraneTypes,
			AttachmentMethods: meta.AttachmentMethods,
			DeckTypes:         meta.DeckTypes,
			Complexity:        meta.Complexity,
			EstimatedDuration: meta.EstimatedDuration,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TemplateID < out[j].TemplateID })
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
