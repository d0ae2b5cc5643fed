// Package content builds the generation request, parses and validates the
// model's structured response, and drives the bounded-retry generation cycle.
package content

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-drafter/internal/sections"
)

// Schema returns the JSON Schema describing the required payload shape:
// a non-empty "name" string plus one array of exactly 3 strings per section,
// with no additional properties. It is derived from the fixed section set so
// the prompt schema and the validator cannot drift apart.
func Schema() map[string]any {
	properties := map[string]any{
		"name": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
	}

	for _, section := range sections.All() {
		properties[section] = map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"minItems": sections.BulletsPerSection,
			"maxItems": sections.BulletsPerSection,
		}
	}

	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             append([]string{"name"}, sections.All()...),
		"additionalProperties": false,
	}
}

// SchemaJSON returns the schema serialized as compact JSON for embedding in
// the generation prompt and for structural validation.
func SchemaJSON() string {
	data, err := json.Marshal(Schema())
	if err != nil {
		// The schema is built from static maps; marshaling cannot fail.
		panic(fmt.Sprintf("failed to marshal payload schema: %v", err))
	}
	return string(data)
}
