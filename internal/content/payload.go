package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-drafter/internal/sections"
)

// Payload is the validated resume content: the candidate name plus exactly
// 3 non-empty bullet strings per section. A Payload only exists in fully
// valid form; it is never mutated after construction.
type Payload struct {
	Name     string
	Sections map[string][]string
}

// Bullets returns the bullet strings for a section identifier.
func (p *Payload) Bullets(identifier string) []string {
	return p.Sections[identifier]
}

// ParsePayload parses raw response text into a validated Payload.
// Returns a ParseError if the text is not valid JSON and a ValidationError
// if the parsed document deviates from the required shape in any way.
func ParsePayload(raw string) (*Payload, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &ParseError{Message: "response is not valid JSON", Cause: err}
	}

	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	payload := &Payload{
		Name:     strings.TrimSpace(doc["name"].(string)),
		Sections: make(map[string][]string, sections.Count()),
	}
	for _, section := range sections.All() {
		items := doc[section].([]any)
		bullets := make([]string, len(items))
		for i, item := range items {
			bullets[i] = strings.TrimSpace(item.(string))
		}
		payload.Sections[section] = bullets
	}

	return payload, nil
}

// validateDocument checks the parsed document against the generation schema,
// then applies the whitespace rules JSON Schema cannot express.
func validateDocument(doc map[string]any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(SchemaJSON()),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return &ParseError{Message: "schema validation could not run", Cause: err}
	}

	if !result.Valid() {
		verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" || field == "(root)" {
				field = rootField(desc.Details())
			}
			verr.Errors = append(verr.Errors, FieldError{
				Field:   field,
				Message: desc.Description(),
			})
		}
		return verr
	}

	// Schema passed, so types and counts are right. Reject values that are
	// whitespace-only after trimming.
	var fieldErrs []FieldError
	if name, _ := doc["name"].(string); strings.TrimSpace(name) == "" {
		fieldErrs = append(fieldErrs, FieldError{Field: "name", Message: "must be a non-empty string"})
	}
	for _, section := range sections.All() {
		items, _ := doc[section].([]any)
		for i, item := range items {
			text, _ := item.(string)
			if strings.TrimSpace(text) == "" {
				fieldErrs = append(fieldErrs, FieldError{
					Field:   section,
					Message: fmt.Sprintf("bullet %d is empty", i+1),
				})
			}
		}
	}
	if len(fieldErrs) > 0 {
		return &ValidationError{Errors: fieldErrs}
	}

	return nil
}

// rootField recovers the offending property name for root-level schema
// violations (missing required field, additional property).
func rootField(details map[string]any) string {
	if property, ok := details["property"].(string); ok {
		return property
	}
	return "(root)"
}
