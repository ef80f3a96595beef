// cmd/tools/takeoff-validate/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"sow-engine/internal/common/logger"
	"sow-engine/internal/takeoff"
)

func main() {
	asJSON := flag.Bool("json", false, "Print the validation result as JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: takeoff-validate [-json] <takeoff.json>")
		os.Exit(1)
	}

	payload, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	validator := takeoff.NewValidator(logger.NewNoOpLogger())
	_, result, err := validator.ValidatePayload(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing takeoff: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		printJSON(result)
	} else {
		printReport(result)
	}

	if !result.IsValid {
		os.Exit(1)
	}
}

func printReport(result takeoff.Result) {
	if result.IsValid {
		fmt.Println("Takeoff data is valid.")
	} else {
		fmt.Println("Takeoff data is INVALID.")
	}

	if len(result.Errors) > 0 {
		fmt.Printf("\nErrors (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}
	if len(result.Warnings) > 0 {
		fmt.Printf("\nWarnings (%d):\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}

func printJSON(result takeoff.Result) {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
