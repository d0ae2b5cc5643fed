// Package llm provides centralized LLM configuration and client abstractions.
// This package keeps provider selection in one place for future multi-provider support.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic is the Anthropic/Claude provider (future)
	ProviderAnthropic Provider = "anthropic"
)

// DefaultModel is the model used when no model identifier is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds the generation settings for the application.
type Config struct {
	Provider Provider
	Model    string
	// Temperature controls output randomness. Near zero favors
	// reproducible content over creative variation.
	Temperature float32
	// MaxOutputTokens bounds the completion length for cost control.
	MaxOutputTokens int32
}

// DefaultConfig returns the default configuration (currently Gemini).
func DefaultConfig() *Config {
	return &Config{
		Provider:        ProviderGemini,
		Model:           DefaultModel,
		Temperature:     0.1,
		MaxOutputTokens: 700,
	}
}

// WithModel returns a copy of the config with a specific model identifier.
// An empty model keeps the current one.
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	if model != "" {
		newConfig.Model = model
	}
	return &newConfig
}

// GetModel returns the configured model name, falling back to the default.
func (c *Config) GetModel() string {
	if c.Model != "" {
		return c.Model
	}
	return DefaultModel
}
