// cmd/tools/sow-generate/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"sow-engine/internal/models"
	"sow-engine/internal/sow"
	"sow-engine/internal/sow/templates"
	"sow-engine/pkg/registry"
)

// output bundles everything derived from one takeoff for offline review.
type output struct {
	Selection     templates.Selection   `json:"template_selection"`
	Configuration sow.Configuration     `json:"configuration"`
	Inclusions    sow.SectionInclusions `json:"section_inclusions"`
	Summary       sow.Summary           `json:"summary"`
}

func main() {
	registryPath := flag.String("registry", "", "Path to a template registry file (defaults to the built-in catalog)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: sow-generate [-registry <file>] <takeoff.json>")
		os.Exit(1)
	}

	payload, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	data, err := models.ParseTakeoff(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing takeoff: %v\n", err)
		os.Exit(1)
	}

	selector := templates.NewSelector()
	if *registryPath != "" {
		reg, err := registry.LoadRegistry(*registryPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading registry: %v\n", err)
			os.Exit(1)
		}
		selector = templates.NewSelectorFromRegistry(reg)
	}

	insp := data.ToFieldInspection()
	generator := sow.NewGenerator(selector)

	config := generator.GenerateConfiguration(insp)
	result := output{
		Selection:     selector.Select(insp),
		Configuration: config,
		Inclusions:    sow.InclusionsFromConfiguration(config),
		Summary:       sow.GenerateSummary(insp, time.Now()),
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
