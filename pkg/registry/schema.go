// pkg/registry/schema.go
package registry

type TemplateRegistry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Templates   []Template `json:"templates"`
}

type Template struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	WorkType          string   `json:"workType"`
	MembraneTypes     []string `json:"membraneTypes"`
	AttachmentMethods []string `json:"attachmentMethods"`
	DeckTypes         []string `json:"deckTypes"`
	Sections          []string `json:"sections"`
	Complexity        string   `json:"complexity"`
	EstimatedDuration string   `json:"estimatedDuration"`
	Restrictions      []string `json:"restrictions,omitempty"`
}

// Get returns the template with the given id.
func (r *TemplateRegistry) Get(id string) (Template, bool) {
	for _, t := range r.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
