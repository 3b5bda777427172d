package manifest

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// manifestSchema is the JSON schema a lesson manifest must satisfy before
// decoding. Kept permissive where the authored format is: part custom bags
// and action payloads are open objects.
var manifestSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":    map[string]any{"type": "string", "minLength": 1},
		"title": map[string]any{"type": "string"},
		"initState": map[string]any{
			"type":  "array",
			"items": operationSchema,
		},
		"activities": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{"type": "string", "minLength": 1},
					"content": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"partsLayout": map[string]any{
								"type": "array",
								"items": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"id":     map[string]any{"type": "string", "minLength": 1},
										"type":   map[string]any{"type": "string"},
										"custom": map[string]any{"type": "object"},
									},
									"required": []any{"id"},
								},
							},
						},
					},
					"custom": map[string]any{"type": "object"},
					"rules": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":         map[string]any{"type": "string"},
								"name":       map[string]any{"type": "string"},
								"priority":   map[string]any{"type": "integer"},
								"correct":    map[string]any{"type": "boolean"},
								"default":    map[string]any{"type": "boolean"},
								"disabled":   map[string]any{"type": "boolean"},
								"conditions": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
								"actions":    map[string]any{"type": "array"},
							},
							"required": []any{"name"},
						},
					},
				},
				"required": []any{"id"},
			},
		},
	},
	"required": []any{"id", "activities"},
}

var operationSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"target":     map[string]any{"type": "string", "minLength": 1},
		"operator":   map[string]any{"type": "string"},
		"value":      map[string]any{},
		"targetType": map[string]any{"type": "string"},
	},
	"required": []any{"target", "operator"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validate checks raw lesson JSON against the manifest schema.
func validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compileOnce.Do(func() {
		defBytes, err := json.Marshal(manifestSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const schemaURL = "schema://lesson-manifest.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	if compileErr != nil {
		return fmt.Errorf("compile manifest schema: %w", compileErr)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("manifest validation failed: %w", err)
	}
	return nil
}
