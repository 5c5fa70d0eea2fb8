package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
)

// fieldSpecSchema returns a JSON-Schema (draft 2020-12 subset) describing a
// field-spec override document. Validated locally before a spec set is
// accepted into the pipeline.
func fieldSpecSchema() map[string]any {
	strategyEnum := []string{
		extract.StrategyKeywordRegex,
		extract.StrategyLabelProximity,
		extract.StrategyPositional,
		extract.StrategyLineTable,
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"fields": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"name", "type", "strategies"},
					"properties": map[string]any{
						"name": map[string]any{"type": "string", "minLength": 1},
						"type": map[string]any{
							"type": "string",
							"enum": []string{
								string(extract.TypeString),
								string(extract.TypeDate),
								string(extract.TypeAmount),
								string(extract.TypeCurrency),
								string(extract.TypeLineItems),
							},
						},
						"mandatory": map[string]any{"type": "boolean"},
						"strategies": map[string]any{
							"type":     "array",
							"minItems": 1,
							"items":    map[string]any{"type": "string", "enum": strategyEnum},
						},
						"labels": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string", "minLength": 1},
						},
						"pattern": map[string]any{"type": "string"},
					},
				},
			},
		},
		"required":             []string{"fields"},
		"additionalProperties": false,
	}
}

// specDocument is the YAML shape of an override set.
type specDocument struct {
	Fields []extract.FieldSpec `yaml:"fields"`
}

// LoadFieldSpecs reads a YAML field-spec override set, validates it against
// the schema, and returns the specs in declaration order.
func LoadFieldSpecs(path string) ([]extract.FieldSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read field specs: %w", err)
	}
	return ParseFieldSpecs(raw)
}

// ParseFieldSpecs validates and decodes a YAML field-spec document.
func ParseFieldSpecs(raw []byte) ([]extract.FieldSpec, error) {
	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("parse field specs: %w", err)
	}
	if err := validateAgainstSchema(fieldSpecSchema(), generic); err != nil {
		return nil, fmt.Errorf("field specs do not match schema: %w", err)
	}

	var doc specDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode field specs: %w", err)
	}
	seen := make(map[string]bool, len(doc.Fields))
	for _, spec := range doc.Fields {
		if seen[spec.Name] {
			return nil, fmt.Errorf("duplicate field spec %q", spec.Name)
		}
		seen[spec.Name] = true
	}
	return doc.Fields, nil
}

// validateAgainstSchema validates a decoded document against schemaMap.
// The document round-trips through JSON so YAML scalar types line up with
// what the validator expects.
func validateAgainstSchema(schemaMap map[string]any, doc any) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	jb, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	var v any
	if err := json.Unmarshal(jb, &v); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}
	return schema.Validate(v)
}
