package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultGroqModel = "llama-3.1-8b-instant"
	groqAPIEndpoint  = "https://api.groq.com/openai/v1/chat/completions"
)

// GroqAdapter talks to Groq's OpenAI-compatible chat completions endpoint
// over plain HTTP. It has no streaming path.
type GroqAdapter struct {
	httpClient   *http.Client
	apiKey       string
	defaultModel string
	endpoint     string
}

// GroqConfig configures a GroqAdapter.
type GroqConfig struct {
	APIKey  string
	Model   string        // optional default model override
	Timeout time.Duration // optional per-request bound
}

// NewGroqAdapter creates an adapter for Groq chat completions.
func NewGroqAdapter(cfg GroqConfig) (*GroqAdapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: Groq API key is required", ErrConfiguration)
	}
	model := cfg.Model
	if model == "" {
		model = defaultGroqModel
	}
	return &GroqAdapter{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		apiKey:       cfg.APIKey,
		defaultModel: model,
		endpoint:     groqAPIEndpoint,
	}, nil
}

type groqChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqChatRequest struct {
	Messages    []groqChatMessage `json:"messages"`
	Model       string            `json:"model"`
	MaxTokens   int               `json:"max_tokens"`
	Temperature float64           `json:"temperature"`
	Stream      bool              `json:"stream"`
}

type groqUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type groqChatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message      groqChatMessage `json:"message"`
		FinishReason string          `json:"finish_reason"`
	} `json:"choices"`
	Usage groqUsage `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code,omitempty"`
	} `json:"error,omitempty"`
}

// Provider returns the provider identifier.
func (a *GroqAdapter) Provider() string { return ProviderGroq }

// Invoke sends a single-attempt chat completion request.
func (a *GroqAdapter) Invoke(ctx context.Context, messages []Message, opts Options) (*Response, error) {
	model := opts.Model
	if model == "" {
		model = a.defaultModel
	}
	maxTokens, temperature := invokeDefaults(opts)

	apiMessages := make([]groqChatMessage, len(messages))
	for i, m := range messages {
		apiMessages[i] = groqChatMessage{Role: m.Role, Content: m.Content}
	}

	payload, err := json.Marshal(groqChatRequest{
		Messages:    apiMessages,
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: groq: marshal request: %v", ErrProvider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: groq: %v", ErrProvider, err)
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: groq: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: groq: read response: %v", ErrProvider, err)
	}

	var groqResp groqChatResponse
	if err := json.Unmarshal(body, &groqResp); err != nil {
		return nil, fmt.Errorf("%w: groq: unmarshal response (status %s): %v", ErrProvider, resp.Status, err)
	}
	// The API may carry an error object in the body; it is more specific
	// than the HTTP status.
	if groqResp.Error != nil {
		return nil, fmt.Errorf("%w: groq: %s (type %s)", ErrProvider, groqResp.Error.Message, groqResp.Error.Type)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: groq: request failed with status %s", ErrProvider, resp.Status)
	}
	if len(groqResp.Choices) == 0 {
		return nil, fmt.Errorf("%w: groq: response contained no choices", ErrProvider)
	}

	return &Response{
		Content:  strings.TrimSpace(groqResp.Choices[0].Message.Content),
		Provider: ProviderGroq,
		Model:    model,
		Metadata: map[string]any{
			"usage": map[string]int{
				"promptTokens":     groqResp.Usage.PromptTokens,
				"completionTokens": groqResp.Usage.CompletionTokens,
				"totalTokens":      groqResp.Usage.TotalTokens,
			},
			"finishReason": groqResp.Choices[0].FinishReason,
		},
	}, nil
}

// Stream reports that Groq has no streaming path in this adapter.
func (a *GroqAdapter) Stream(ctx context.Context, messages []Message, opts Options) (<-chan Chunk, error) {
	return nil, fmt.Errorf("%w: groq", ErrUnsupported)
}
