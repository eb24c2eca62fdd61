package llm

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/vasu-2004/Reverse-Akinator-Game/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInitializeGateway_RegistersConfiguredProviders(t *testing.T) {
	cfg := &config.Config{
		DefaultProvider:       ProviderOpenAI,
		SupportedProviders:    []string{ProviderOpenAI, ProviderGroq},
		RequestTimeoutSeconds: 30,
		Credentials: config.Credentials{
			OpenAIAPIKey: "test-openai-key",
			GroqAPIKey:   "test-groq-key",
		},
	}

	gw := InitializeGateway(context.Background(), cfg, discardLogger())

	registered := gw.RegisteredProviders()
	if len(registered) != 2 {
		t.Fatalf("Expected 2 registered providers, got %v", registered)
	}
	if registered[0] != ProviderGroq || registered[1] != ProviderOpenAI {
		t.Errorf("Expected [groq openai], got %v", registered)
	}
}

func TestInitializeGateway_PartialAvailability(t *testing.T) {
	// google_genai has no credentials at all, so its construction fails;
	// startup continues and the other provider stays registered.
	cfg := &config.Config{
		DefaultProvider:       ProviderGoogleGenAI,
		SupportedProviders:    []string{ProviderGoogleGenAI, ProviderOpenAI},
		RequestTimeoutSeconds: 30,
		Credentials: config.Credentials{
			OpenAIAPIKey: "test-openai-key",
		},
	}

	gw := InitializeGateway(context.Background(), cfg, discardLogger())

	registered := gw.RegisteredProviders()
	if len(registered) != 1 || registered[0] != ProviderOpenAI {
		t.Fatalf("Expected only [openai] registered, got %v", registered)
	}

	if _, err := gw.GetClient(ProviderGoogleGenAI); err == nil {
		t.Error("Expected unregistered provider error for google_genai")
	}
}

func TestInitializeGateway_UnknownProviderSkipped(t *testing.T) {
	cfg := &config.Config{
		DefaultProvider:    ProviderOpenAI,
		SupportedProviders: []string{"mystery", ProviderOpenAI},
		Credentials: config.Credentials{
			OpenAIAPIKey: "test-openai-key",
		},
	}

	gw := InitializeGateway(context.Background(), cfg, discardLogger())

	registered := gw.RegisteredProviders()
	if len(registered) != 1 || registered[0] != ProviderOpenAI {
		t.Fatalf("Expected only [openai] registered, got %v", registered)
	}
}

func TestBuildAdapter_Anthropic(t *testing.T) {
	cfg := &config.Config{
		ModelName:   "claude-test",
		Credentials: config.Credentials{AnthropicAPIKey: "test-key"},
	}

	adapter, err := buildAdapter(context.Background(), ProviderAnthropic, cfg, 0)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if adapter.Provider() != ProviderAnthropic {
		t.Errorf("Expected provider 'anthropic', got '%s'", adapter.Provider())
	}
}

func TestBuildAdapter_MissingCredentials(t *testing.T) {
	cfg := &config.Config{}

	for _, provider := range []string{ProviderOpenAI, ProviderAnthropic, ProviderGroq, ProviderGoogleGenAI} {
		if _, err := buildAdapter(context.Background(), provider, cfg, 0); err == nil {
			t.Errorf("Expected configuration error for %s without credentials", provider)
		}
	}
}
