// Package llm provides LLM configuration and chat client abstractions over the supported providers.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: short answers, classification
	TierLite ModelTier = "lite"
	// TierStandard is for general chat completions
	TierStandard ModelTier = "standard"
	// TierAdvanced is for longer reasoning
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderAzureOpenAI is an Azure OpenAI deployment
	ProviderAzureOpenAI Provider = "azure-openai"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application. For Azure OpenAI the model names
// are deployment names.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default configuration (Azure OpenAI)
func DefaultConfig() *Config {
	return DefaultAzureOpenAIConfig("o3-mini")
}

// DefaultAzureOpenAIConfig returns a configuration that sends every tier to one chat deployment.
func DefaultAzureOpenAIConfig(deployment string) *Config {
	return &Config{
		Provider: ProviderAzureOpenAI,
		Models: map[ModelTier]string{
			TierStandard: deployment,
		},
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string),
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
