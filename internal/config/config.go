// Package config loads the service configuration from an optional YAML file and the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the full service configuration.
type Config struct {
	Environment string `mapstructure:"environment" validate:"required"`
	Port        int    `mapstructure:"port" validate:"min=1,max=65535"`
	LogJSON     bool   `mapstructure:"log-json"`
	Debug       bool   `mapstructure:"debug"`
	CacheSize   int64  `mapstructure:"cache-size" validate:"gte=0"`
	LLMProvider string `mapstructure:"llm-provider" validate:"oneof=azure-openai gemini"`

	AzureOpenAI AzureOpenAIConfig `mapstructure:"azure-openai"`
	Search      SearchConfig      `mapstructure:"search"`
	Databricks  DatabricksConfig  `mapstructure:"databricks"`
	Gemini      GeminiConfig      `mapstructure:"gemini"`
}

// AzureOpenAIConfig configures the chat and embedding deployments.
type AzureOpenAIConfig struct {
	APIKey              string `mapstructure:"api-key"`
	Endpoint            string `mapstructure:"endpoint" validate:"omitempty,url"`
	ChatAPIVersion      string `mapstructure:"chat-api-version"`
	EmbeddingAPIVersion string `mapstructure:"embedding-api-version"`
	ChatModel           string `mapstructure:"chat-model"`
	EmbeddingModel      string `mapstructure:"embedding-model"`
}

// Configured reports whether the resource can be reached.
func (c AzureOpenAIConfig) Configured() bool {
	return c.APIKey != "" && c.Endpoint != ""
}

// SearchConfig configures the Azure AI Search index.
type SearchConfig struct {
	Endpoint   string `mapstructure:"endpoint" validate:"omitempty,url"`
	APIKey     string `mapstructure:"api-key"`
	IndexName  string `mapstructure:"index-name"`
	APIVersion string `mapstructure:"api-version"`
}

// Configured reports whether the index can be queried.
func (c SearchConfig) Configured() bool {
	return c.Endpoint != "" && c.APIKey != "" && c.IndexName != ""
}

// DatabricksConfig configures the SQL warehouse.
type DatabricksConfig struct {
	ServerHostname string `mapstructure:"server-hostname" validate:"omitempty,hostname"`
	HTTPPath       string `mapstructure:"http-path"`
	AccessToken    string `mapstructure:"access-token"`
}

// Configured reports whether the warehouse can be queried.
func (c DatabricksConfig) Configured() bool {
	return c.ServerHostname != "" && c.HTTPPath != "" && c.AccessToken != ""
}

// GeminiConfig configures the Gemini provider.
type GeminiConfig struct {
	APIKey string `mapstructure:"api-key"`
	Model  string `mapstructure:"model"`
}

// Configured reports whether the provider can be called.
func (c GeminiConfig) Configured() bool {
	return c.APIKey != ""
}

var defaults = map[string]any{
	"environment":                        "development",
	"port":                               3000,
	"log-json":                           false,
	"debug":                              false,
	"cache-size":                         10000,
	"llm-provider":                       "azure-openai",
	"azure-openai.chat-api-version":      "2025-01-01-preview",
	"azure-openai.embedding-api-version": "2023-05-15",
	"azure-openai.chat-model":            "o3-mini",
	"azure-openai.embedding-model":       "text-embedding-3-large",
	"search.index-name":                  "vector-skillmaster-csv",
	"search.api-version":                 "2023-11-01",
	"gemini.model":                       "gemini-2.5-flash",
}

var envBindings = map[string][]string{
	"environment":                        {"APP_ENV", "NODE_ENV"},
	"port":                               {"PORT"},
	"log-json":                           {"LOG_JSON"},
	"debug":                              {"DEBUG"},
	"cache-size":                         {"EVALUATION_CACHE_SIZE"},
	"llm-provider":                       {"LLM_PROVIDER"},
	"azure-openai.api-key":               {"AZURE_OPENAI_API_KEY"},
	"azure-openai.endpoint":              {"AZURE_OPENAI_ENDPOINT"},
	"azure-openai.chat-api-version":      {"AZURE_OPENAI_API_VERSION_CHAT"},
	"azure-openai.embedding-api-version": {"AZURE_OPENAI_API_VERSION_EMBEDDING"},
	"azure-openai.chat-model":            {"AZURE_OPENAI_CHAT_MODEL"},
	"azure-openai.embedding-model":       {"AZURE_OPENAI_EMBEDDING_MODEL"},
	"search.endpoint":                    {"AZURE_SEARCH_ENDPOINT"},
	"search.api-key":                     {"AZURE_SEARCH_API_KEY"},
	"search.index-name":                  {"AZURE_SEARCH_INDEX_NAME"},
	"search.api-version":                 {"AZURE_SEARCH_API_VERSION"},
	"databricks.server-hostname":         {"DATABRICKS_SERVER_HOSTNAME"},
	"databricks.http-path":               {"DATABRICKS_HTTP_PATH"},
	"databricks.access-token":            {"DATABRICKS_ACCESS_TOKEN"},
	"gemini.api-key":                     {"GEMINI_API_KEY"},
	"gemini.model":                       {"GEMINI_MODEL"},
}

// New returns a viper instance with defaults and environment bindings registered.
func New() (*viper.Viper, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("binding %s environment variable: %w", strings.Join(envs, "/"), err)
		}
	}
	return v, nil
}

// Load reads the configuration. path may be empty, in which case only defaults and the
// environment are used.
func Load(path string) (*Config, error) {
	v, err := New()
	if err != nil {
		return nil, err
	}
	return FromViper(v, path)
}

// FromViper reads an optional config file into v and decodes the result.
func FromViper(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values. Integrations that are not
// configured are allowed; they report themselves unavailable at request time.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
