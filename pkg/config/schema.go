package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GenerateSchema produces a JSON Schema for the configuration file, using
// the same key names viper decodes.
func GenerateSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:               "mapstructure",
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
		AllowAdditionalProperties:  false,
	}

	s := r.Reflect(&Config{})
	s.Title = "vfsemu Configuration"
	s.Description = "Schema for the vfsemu configuration file (YAML or TOML)."
	return s
}

// MarshalSchema returns the schema as indented JSON.
func MarshalSchema() ([]byte, error) {
	data, err := json.MarshalIndent(GenerateSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
