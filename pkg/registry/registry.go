// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

func LoadRegistry(path string) (*TemplateRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg TemplateRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, err
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Validate checks structural requirements on a loaded registry: ids present
// and unique, work types limited to the known set.
func (r *TemplateRegistry) Validate() error {
	seen := make(map[string]bool, len(r.Templates))
	for i, t := range r.Templates {
		if t.ID == "" {
			return fmt.Errorf("template %d: missing id", i)
		}
		if seen[t.ID] {
			return fmt.Errorf("template %s: duplicate id", t.ID)
		}
		seen[t.ID] = true
		switch t.WorkType {
		case "recover", "tearoff", "new":
		default:
			return fmt.Errorf("template %s: unknown work type %q", t.ID, t.WorkType)
		}
	}
	return nil
}
