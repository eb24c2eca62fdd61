package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-sonnet-4-20250514"

// AnthropicAdapter wraps the official Anthropic SDK. Anthropic takes the
// system instruction as a separate parameter, so system-role messages are
// extracted from the conversation before the call.
type AnthropicAdapter struct {
	client       anthropic.Client
	defaultModel string
	timeout      time.Duration
}

// AnthropicConfig configures an AnthropicAdapter.
type AnthropicConfig struct {
	APIKey  string
	Model   string        // optional default model override
	Timeout time.Duration // optional per-invoke bound
}

// NewAnthropicAdapter creates an adapter for Anthropic messages.
func NewAnthropicAdapter(cfg AnthropicConfig) (*AnthropicAdapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: Anthropic API key is required", ErrConfiguration)
	}
	model := cfg.Model
	if model == "" {
		model = defaultAnthropicModel
	}
	return &AnthropicAdapter{
		client:       anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		defaultModel: model,
		timeout:      cfg.Timeout,
	}, nil
}

// Provider returns the provider identifier.
func (a *AnthropicAdapter) Provider() string { return ProviderAnthropic }

// Invoke sends the conversation and concatenates the reply's text blocks.
func (a *AnthropicAdapter) Invoke(ctx context.Context, messages []Message, opts Options) (*Response, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	maxTokens, temperature := invokeDefaults(opts)
	params := a.params(messages, opts.Model, maxTokens, temperature)

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: anthropic: %v", ErrProvider, err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return &Response{
		Content:  strings.TrimSpace(text.String()),
		Provider: ProviderAnthropic,
		Model:    string(params.Model),
		Metadata: map[string]any{
			"usage": map[string]int64{
				"inputTokens":  resp.Usage.InputTokens,
				"outputTokens": resp.Usage.OutputTokens,
			},
			"stopReason": string(resp.StopReason),
		},
	}, nil
}

// Stream forwards text deltas from the event stream in production order.
func (a *AnthropicAdapter) Stream(ctx context.Context, messages []Message, opts Options) (<-chan Chunk, error) {
	maxTokens, temperature := streamDefaults(opts)
	params := a.params(messages, opts.Model, maxTokens, temperature)

	stream := a.client.Messages.NewStreaming(ctx, params)

	out := make(chan Chunk)
	go func() {
		defer close(out)
		defer stream.Close()
		for stream.Next() {
			event := stream.Current()
			deltaEvent, ok := event.AsAny().(anthropic.ContentBlockDeltaEvent)
			if !ok {
				continue
			}
			textDelta, ok := deltaEvent.Delta.AsAny().(anthropic.TextDelta)
			if !ok || textDelta.Text == "" {
				continue
			}
			select {
			case out <- Chunk{Text: textDelta.Text}:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil {
			select {
			case out <- Chunk{Err: fmt.Errorf("%w: anthropic: %v", ErrProvider, err)}:
			case <-ctx.Done():
			}
		}
	}()
	return out, nil
}

func (a *AnthropicAdapter) params(messages []Message, model string, maxTokens int, temperature float64) anthropic.MessageNewParams {
	if model == "" {
		model = a.defaultModel
	}
	system, rest := mergeSystem(messages)

	apiMessages := make([]anthropic.MessageParam, 0, len(rest))
	for _, m := range rest {
		if m.Role == RoleAssistant {
			apiMessages = append(apiMessages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		} else {
			apiMessages = append(apiMessages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(temperature),
		Messages:    apiMessages,
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	return params
}
