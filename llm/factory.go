package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/vasu-2004/Reverse-Akinator-Game/config"
)

// InitializeGateway builds a gateway and registers an adapter for every
// configured supported provider. A provider whose adapter cannot be
// constructed is logged and skipped, so the system runs with partial
// provider availability rather than aborting startup.
func InitializeGateway(ctx context.Context, cfg *config.Config, logger *slog.Logger) *Gateway {
	gateway := NewGateway(cfg.DefaultProvider)

	timeout := time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	logger.Info("initializing LLM gateway",
		"default_provider", cfg.DefaultProvider,
		"default_model", cfg.ModelName,
		"supported", cfg.SupportedProviders)

	for _, provider := range cfg.SupportedProviders {
		adapter, err := buildAdapter(ctx, provider, cfg, timeout)
		if err != nil {
			logger.Error("failed to register LLM adapter", "provider", provider, "error", err)
			continue
		}
		if adapter == nil {
			logger.Warn("unknown LLM provider, skipping", "provider", provider)
			continue
		}
		gateway.RegisterAdapter(provider, adapter)
		logger.Info("registered LLM adapter", "provider", provider)
	}

	logger.Info("LLM gateway ready", "registered", gateway.RegisteredProviders())
	return gateway
}

// buildAdapter constructs the adapter for one provider name. A nil, nil
// return means the name is not recognized.
func buildAdapter(ctx context.Context, provider string, cfg *config.Config, timeout time.Duration) (Adapter, error) {
	creds := cfg.Credentials
	switch provider {
	case ProviderOpenAI:
		return NewOpenAIAdapter(OpenAIConfig{
			APIKey:  creds.OpenAIAPIKey,
			BaseURL: creds.OpenAIBaseURL,
			Model:   cfg.ModelName,
			Timeout: timeout,
		})
	case ProviderGoogleGenAI:
		return NewGoogleAdapter(ctx, GoogleConfig{
			APIKey:             creds.GoogleAPIKey,
			ProjectID:          creds.ProjectID,
			Location:           creds.Location,
			ServiceAccountJSON: creds.ServiceAccountJSON,
			Model:              cfg.ModelName,
			Timeout:            timeout,
		})
	case ProviderAnthropic:
		return NewAnthropicAdapter(AnthropicConfig{
			APIKey:  creds.AnthropicAPIKey,
			Model:   cfg.ModelName,
			Timeout: timeout,
		})
	case ProviderGroq:
		return NewGroqAdapter(GroqConfig{
			APIKey:  creds.GroqAPIKey,
			Model:   cfg.ModelName,
			Timeout: timeout,
		})
	default:
		return nil, nil
	}
}
