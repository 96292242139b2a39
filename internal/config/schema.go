package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaJSON constrains the configuration file shape before decoding, so a
// typo'd key or a string where an integer belongs fails loudly at startup
// instead of silently falling back to defaults.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "name_keywords": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    },
    "banks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "keywords": {"type": "array", "items": {"type": "string"}},
          "app_names": {"type": "array", "items": {"type": "string"}}
        },
        "additionalProperties": false
      }
    },
    "excluded_words": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    },
    "settings": {
      "type": "object",
      "properties": {
        "min_name_length": {"type": "integer", "minimum": 0},
        "max_name_words": {"type": "integer", "minimum": 1},
        "parallel_workers": {"type": "integer", "minimum": 1, "maximum": 32},
        "debug_mode": {"type": "boolean"}
      },
      "additionalProperties": false
    }
  },
  "additionalProperties": false
}`

var configSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("bank_config.schema.json", strings.NewReader(schemaJSON)); err != nil {
		panic(fmt.Sprintf("config: add schema resource: %v", err))
	}
	return compiler.MustCompile("bank_config.schema.json")
}

// ValidateJSON validates raw configuration bytes against the embedded schema.
func ValidateJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := configSchema.Validate(v); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}
