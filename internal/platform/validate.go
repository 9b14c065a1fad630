package platform

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// optimizeResultSchema pins the shape the engine must return. The decode
// step fails loudly on schema drift instead of propagating unknown shapes.
var optimizeResultSchema = map[string]any{
	"type":     "object",
	"required": []any{"optimized_url", "storage_path"},
	"properties": map[string]any{
		"optimized_url": map[string]any{"type": "string", "minLength": 1},
		"storage_path":  map[string]any{"type": "string", "minLength": 1},
		"bytes_in":      map[string]any{"type": "integer", "minimum": 0},
		"bytes_out":     map[string]any{"type": "integer", "minimum": 0},
	},
	"additionalProperties": true,
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
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
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// DecodeOptimizeResult validates and decodes an engine response body.
func DecodeOptimizeResult(data []byte) (OptimizeResult, error) {
	if err := ValidateJSONAgainstSchema(optimizeResultSchema, data); err != nil {
		return OptimizeResult{}, err
	}
	var res OptimizeResult
	if err := json.Unmarshal(data, &res); err != nil {
		return OptimizeResult{}, fmt.Errorf("decode optimize result: %w", err)
	}
	return res, nil
}
