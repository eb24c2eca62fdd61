package llm

import (
	"errors"
	"testing"
)

func TestNewAnthropicAdapter_EmptyAPIKey(t *testing.T) {
	_, err := NewAnthropicAdapter(AnthropicConfig{})
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("Expected ErrConfiguration, got: %v", err)
	}
}

func TestNewAnthropicAdapter_ModelOverride(t *testing.T) {
	adapter, err := NewAnthropicAdapter(AnthropicConfig{APIKey: "test-key", Model: "claude-test"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if adapter.defaultModel != "claude-test" {
		t.Errorf("Expected model 'claude-test', got '%s'", adapter.defaultModel)
	}
	if adapter.Provider() != ProviderAnthropic {
		t.Errorf("Expected provider 'anthropic', got '%s'", adapter.Provider())
	}
}

func TestAnthropicAdapter_Params_SystemExtraction(t *testing.T) {
	adapter, err := NewAnthropicAdapter(AnthropicConfig{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	params := adapter.params([]Message{
		{Role: RoleSystem, Content: "rule one"},
		{Role: RoleSystem, Content: "rule two"},
		{Role: RoleUser, Content: "question"},
		{Role: RoleAssistant, Content: "Yes."},
	}, "", 0, 0)

	// Anthropic takes the system instruction as a separate parameter,
	// merged from all system entries in order.
	if len(params.System) != 1 || params.System[0].Text != "rule one\nrule two" {
		t.Errorf("Expected merged system parameter, got %+v", params.System)
	}
	if len(params.Messages) != 2 {
		t.Fatalf("Expected 2 turn messages, got %d", len(params.Messages))
	}
	if params.MaxTokens != 0 {
		t.Errorf("Expected caller max tokens respected, got %d", params.MaxTokens)
	}
	if string(params.Model) != defaultAnthropicModel {
		t.Errorf("Expected default model '%s', got '%s'", defaultAnthropicModel, params.Model)
	}
}

func TestAnthropicAdapter_Params_NoSystem(t *testing.T) {
	adapter, err := NewAnthropicAdapter(AnthropicConfig{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	params := adapter.params([]Message{{Role: RoleUser, Content: "q"}}, "claude-other", 60, 0.1)
	if len(params.System) != 0 {
		t.Errorf("Expected no system parameter, got %+v", params.System)
	}
	if string(params.Model) != "claude-other" {
		t.Errorf("Expected model override, got '%s'", params.Model)
	}
	if params.MaxTokens != 60 {
		t.Errorf("Expected max tokens 60, got %d", params.MaxTokens)
	}
}
