// gen-jsonschema writes the JSON Schema of the gha-cli configuration file.
//
//	go run ./cmd/gen-jsonschema [OUTPUT]
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gha-tools/gha-cli/pkg/config"
	"github.com/invopop/jsonschema"
)

const defaultOutput = "json-schema/gha-cli.json"

func main() {
	output := defaultOutput
	if len(os.Args) > 1 {
		output = os.Args[1]
	}
	if err := writeSchema(output); err != nil {
		log.Fatal(err)
	}
}

func configSchema() ([]byte, error) {
	r := &jsonschema.Reflector{}
	s := r.Reflect(&config.Config{})
	s.Version = "https://json-schema.org/draft/2020-12/schema"
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal the configuration schema: %w", err)
	}
	return append(b, '\n'), nil
}

func writeSchema(output string) error {
	b, err := configSchema()
	if err != nil {
		return err
	}
	if current, err := os.ReadFile(output); err == nil && bytes.Equal(current, b) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("create a directory for the schema: %w", err)
	}
	if err := os.WriteFile(output, b, 0o644); err != nil { //nolint:gosec,mnd
		return fmt.Errorf("write the configuration schema to %s: %w", output, err)
	}
	return nil
}
