package llm

import (
	"context"
	"errors"
	"testing"
)

func TestNewGoogleAdapter_NoCredentials(t *testing.T) {
	_, err := NewGoogleAdapter(context.Background(), GoogleConfig{})
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("Expected ErrConfiguration, got: %v", err)
	}
}

func TestGoogleAdapter_Request_Conversion(t *testing.T) {
	adapter := &GoogleAdapter{defaultModel: defaultGoogleModel}

	req := adapter.request([]Message{
		{Role: RoleSystem, Content: "rule one"},
		{Role: RoleSystem, Content: "rule two"},
		{Role: RoleUser, Content: "Is the character fictional?"},
		{Role: RoleAssistant, Content: "Yes."},
		{Role: RoleUser, Content: "Is the character British?"},
	}, "", 60, 0.1)

	if req.model != defaultGoogleModel {
		t.Errorf("Expected default model '%s', got '%s'", defaultGoogleModel, req.model)
	}
	if req.system != "rule one\nrule two" {
		t.Errorf("Expected merged system instruction, got '%s'", req.system)
	}

	// The newest turn is the live message; earlier turns become history with
	// the assistant role renamed to "model".
	if req.last != "Is the character British?" {
		t.Errorf("Expected newest turn as live message, got '%s'", req.last)
	}
	if len(req.history) != 2 {
		t.Fatalf("Expected 2 history turns, got %d", len(req.history))
	}
	if req.history[0].role != "user" || req.history[1].role != "model" {
		t.Errorf("Expected roles [user model], got [%s %s]", req.history[0].role, req.history[1].role)
	}
	if req.history[1].text != "Yes." {
		t.Errorf("Expected assistant turn text 'Yes.', got '%s'", req.history[1].text)
	}

	if req.maxTokens != 60 {
		t.Errorf("Expected max tokens 60, got %d", req.maxTokens)
	}
	if req.temperature != 0.1 {
		t.Errorf("Expected temperature 0.1, got %v", req.temperature)
	}
}

func TestGoogleAdapter_Request_SingleTurn(t *testing.T) {
	adapter := &GoogleAdapter{defaultModel: defaultGoogleModel}

	req := adapter.request([]Message{
		{Role: RoleUser, Content: "only question"},
	}, "gemini-override", 256, 0.1)

	if req.model != "gemini-override" {
		t.Errorf("Expected model override, got '%s'", req.model)
	}
	if req.system != "" {
		t.Errorf("Expected no system instruction, got '%s'", req.system)
	}
	if req.last != "only question" {
		t.Errorf("Expected the single turn as live message, got '%s'", req.last)
	}
	if len(req.history) != 0 {
		t.Errorf("Expected empty history, got %+v", req.history)
	}
}

func TestGoogleAdapter_Provider(t *testing.T) {
	adapter := &GoogleAdapter{}
	if adapter.Provider() != ProviderGoogleGenAI {
		t.Errorf("Expected provider 'google_genai', got '%s'", adapter.Provider())
	}
}
