// Package config provides the application's resolved settings.
//
// Configuration is layered: built-in defaults, then an optional TOML file
// (path taken from CONFIG_FILE), then environment variables, which always
// win. All LLM-related settings funnel through here.
//
// Example TOML configuration:
//
//	default_provider = "openai"
//	model_name = "gpt-4o-mini"
//	supported_providers = ["openai", "anthropic"]
//	request_timeout_seconds = 60
//
//	[credentials]
//	openai_api_key = "sk-..."
//	anthropic_api_key = "sk-ant-..."
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Supported LLM provider identifiers.
const (
	ProviderOpenAI      = "openai"
	ProviderGoogleGenAI = "google_genai"
	ProviderAnthropic   = "anthropic"
	ProviderGroq        = "groq"
)

// Config holds the application's resolved settings.
type Config struct {
	// Port is the HTTP listen port.
	Port string `toml:"port"`

	// DefaultProvider selects the adapter used when a request names none.
	DefaultProvider string `toml:"default_provider"`

	// ModelName is the default model identifier passed to every provider.
	ModelName string `toml:"model_name"`

	// SupportedProviders lists the providers to activate at startup.
	SupportedProviders []string `toml:"supported_providers"`

	// RequestTimeoutSeconds bounds each backend call. If <= 0 a default of
	// 60 seconds is used.
	RequestTimeoutSeconds int `toml:"request_timeout_seconds"`

	Credentials Credentials `toml:"credentials"`

	// LogLevel is one of DEBUG, INFO, WARN, ERROR.
	LogLevel string `toml:"log_level"`
}

// Credentials holds per-provider secrets and backend selectors.
type Credentials struct {
	OpenAIAPIKey  string `toml:"openai_api_key"`
	OpenAIBaseURL string `toml:"openai_base_url"`

	// Google Generative AI supports three auth modes resolved in priority
	// order: API key, service-account JSON + project, project alone (ADC).
	GoogleAPIKey       string `toml:"google_api_key"`
	ProjectID          string `toml:"project_id"`
	Location           string `toml:"location"`
	ServiceAccountJSON string `toml:"service_account_json"`

	AnthropicAPIKey string `toml:"anthropic_api_key"`

	GroqAPIKey string `toml:"groq_api_key"`
}

func defaultConfig() Config {
	return Config{
		Port:                  "3000",
		DefaultProvider:       ProviderOpenAI,
		ModelName:             "",
		SupportedProviders:    []string{ProviderOpenAI},
		RequestTimeoutSeconds: 60,
		Credentials: Credentials{
			OpenAIBaseURL: "https://api.openai.com/v1",
			Location:      "us-central1",
		},
		LogLevel: "INFO",
	}
}

// Load resolves the configuration: defaults, optional TOML file, then
// environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to decode TOML config file %s: %w", path, err)
		}
		if len(meta.Undecoded()) > 0 {
			fmt.Fprintf(os.Stderr, "Warning: unknown configuration keys in %s: %v\n", path, meta.Undecoded())
		}
	}

	applyEnv(&cfg)

	if len(cfg.SupportedProviders) == 0 {
		cfg.SupportedProviders = []string{cfg.DefaultProvider}
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Port, "PORT")
	setString(&cfg.DefaultProvider, "DEFAULT_LLM_PROVIDER", "MODEL_PROVIDER")
	setString(&cfg.ModelName, "MODEL_NAME", "OPENAI_MODEL")
	setString(&cfg.LogLevel, "LOG_LEVEL")

	if raw := os.Getenv("SUPPORTED_LLM_PROVIDERS"); raw != "" {
		if providers := parseJSONArray(raw); providers != nil {
			cfg.SupportedProviders = providers
		}
	}
	if raw := os.Getenv("REQUEST_TIMEOUT_SECONDS"); raw != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			cfg.RequestTimeoutSeconds = n
		}
	}

	setString(&cfg.Credentials.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&cfg.Credentials.OpenAIBaseURL, "OPENAI_BASE_URL")
	setString(&cfg.Credentials.GoogleAPIKey, "GOOGLE_API_KEY")
	setString(&cfg.Credentials.ProjectID, "MODEL_PROJECT_ID")
	setString(&cfg.Credentials.Location, "MODEL_LOCATION")
	setString(&cfg.Credentials.ServiceAccountJSON, "MODEL_SERVICE_ACCOUNT_JSON")
	setString(&cfg.Credentials.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	setString(&cfg.Credentials.GroqAPIKey, "GROQ_API_KEY")
}

// setString assigns the first set environment variable among keys.
func setString(dst *string, keys ...string) {
	for _, key := range keys {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			*dst = value
			return
		}
	}
}

// parseJSONArray reads a JSON string array, returning nil when the value
// is not one.
func parseJSONArray(raw string) []string {
	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil
	}
	return parsed
}

// placeholder reports whether a credential value is missing or one of the
// sample values people leave in .env templates.
func placeholder(v string) bool {
	return v == "" || v == "your-api-key-here" || v == "not-set"
}

// Validate checks that the default provider has usable credentials. It is
// independent of adapter construction, so callers can reject a request
// with a clear diagnostic before any network call is attempted.
func (c *Config) Validate() error {
	return c.ValidateProvider(c.DefaultProvider)
}

// ValidateProvider checks credentials for one provider by name.
func (c *Config) ValidateProvider(provider string) error {
	switch provider {
	case ProviderOpenAI:
		if placeholder(c.Credentials.OpenAIAPIKey) {
			return errors.New("OPENAI_API_KEY is not configured. Add it to your .env file")
		}
	case ProviderGoogleGenAI:
		hasAPIKey := !placeholder(c.Credentials.GoogleAPIKey)
		hasProjectID := strings.TrimSpace(c.Credentials.ProjectID) != ""
		if !hasAPIKey && !hasProjectID {
			return errors.New("Google GenAI requires GOOGLE_API_KEY or MODEL_PROJECT_ID (+ optional MODEL_SERVICE_ACCOUNT_JSON); on GCP only MODEL_PROJECT_ID is needed")
		}
	case ProviderAnthropic:
		if placeholder(c.Credentials.AnthropicAPIKey) {
			return errors.New("ANTHROPIC_API_KEY is not configured. Add it to your .env file")
		}
	case ProviderGroq:
		if placeholder(c.Credentials.GroqAPIKey) {
			return errors.New("GROQ_API_KEY is not configured. Add it to your .env file")
		}
	default:
		return fmt.Errorf("unknown LLM provider %q (supported: %s, %s, %s, %s)",
			provider, ProviderOpenAI, ProviderGoogleGenAI, ProviderAnthropic, ProviderGroq)
	}
	return nil
}

// IsDebug reports whether debug logging is enabled.
func (c *Config) IsDebug() bool {
	return strings.EqualFold(c.LogLevel, "DEBUG")
}
