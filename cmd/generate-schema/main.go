// Command generate-schema writes the JSON Schema of the vfsemu
// configuration file:
//
//	go run ./cmd/generate-schema [output]
//
// The default output is config.schema.json.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/marmos91/vfsemu/pkg/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	outputFile := "config.schema.json"
	if len(args) > 0 {
		outputFile = args[0]
	}

	schemaJSON, err := config.MarshalSchema()
	if err != nil {
		fmt.Fprintf(stderr, "Error marshaling schema: %v\n", err) //nolint:errcheck // best-effort stderr
		return 1
	}

	if err := os.WriteFile(outputFile, schemaJSON, 0644); err != nil {
		fmt.Fprintf(stderr, "Error writing schema file: %v\n", err) //nolint:errcheck // best-effort stderr
		return 1
	}

	fmt.Fprintf(stdout, "JSON schema written to %s\n", outputFile) //nolint:errcheck // best-effort stdout
	return 0
}
