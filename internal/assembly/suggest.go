// internal/assembly/suggest.go
package assembly

import (
	"regexp"
	"strconv"
	"strings"
)

var rValuePattern = regexp.MustCompile(`R-(\d+)`)

// Suggestions returns advisory improvement notes for an assembly. It never
// fails and an assembly with nothing to improve yields an empty list.
func Suggestions(layers []RoofLayer) []string {
	out := []string{}

	if insulation, ok := findLayer(layers, LayerInsulation); ok {
		if m := rValuePattern.FindStringSubmatch(insulation.Thickness); m != nil {
			if r, err := strconv.Atoi(m[1]); err == nil && r < 20 {
				out = append(out, "Consider increasing insulation to R-25 or higher for better energy performance")
			}
		}
	}

	if membrane, ok := findLayer(layers, LayerMembrane); ok {
		if strings.Contains(strings.ToLower(membrane.Material), "tpo") && !hasLayer(layers, LayerCoverBoard) {
			out = append(out, "Consider adding a cover board under the TPO membrane for puncture resistance")
		}
	}

	return out
}
