package content

import (
	"context"

	"github.com/jonathan/resume-drafter/internal/llm"
	"github.com/jonathan/resume-drafter/internal/prompts"
)

const (
	// maxAttempts bounds the generate/parse/validate cycle. A second attempt
	// with a stricter prompt is the only recovery; there is no third call.
	maxAttempts = 2
	// rawSnippetLimit bounds the raw-response excerpt included in the final
	// failure message.
	rawSnippetLimit = 200
)

// Params are the per-invocation generation parameters.
type Params struct {
	JobTitle  string
	Industry  string
	Seniority string
	Name      string
}

// Generator produces validated resume content from generation parameters.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a Generator backed by the given LLM client.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// BuildPrompt constructs the generation instruction: target role, seniority,
// industry, candidate name, the serialized payload schema, and the bullet
// formatting rules.
func BuildPrompt(p Params) string {
	template := prompts.MustGet("generation.json", "resume-content")
	return prompts.Format(template, map[string]string{
		"JobTitle":  p.JobTitle,
		"Industry":  p.Industry,
		"Seniority": p.Seniority,
		"Name":      p.Name,
		"Schema":    SchemaJSON(),
	})
}

// Generate runs the request/parse/validate cycle, retrying once with a
// stricter instruction on parse or validation failure.
//
// Connectivity and service errors abort immediately without consuming the
// retry: the service is not going to format its output better because we
// asked again. After the final attempt the parse/validation failure is
// wrapped with a truncated excerpt of the offending response.
func (g *Generator) Generate(ctx context.Context, p Params) (*Payload, error) {
	basePrompt := BuildPrompt(p)

	var lastErr error
	var lastRaw string
	for attempt := 0; attempt < maxAttempts; attempt++ {
		prompt := basePrompt
		if attempt > 0 {
			prompt += prompts.MustGet("generation.json", "strict-json-suffix")
		}

		raw, err := g.client.GenerateJSON(ctx, prompt)
		if err != nil {
			return nil, classifyCallError(err)
		}

		cleaned := llm.CleanJSONBlock(raw)

		payload, err := ParsePayload(cleaned)
		if err == nil {
			return payload, nil
		}
		lastErr = err
		lastRaw = cleaned
	}

	return nil, &ExhaustedError{
		Attempts:   maxAttempts,
		Cause:      lastErr,
		RawSnippet: truncate(lastRaw, rawSnippetLimit),
	}
}

// truncate bounds s to at most limit bytes.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
