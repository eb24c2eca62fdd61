package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIAdapter wraps the official OpenAI SDK. Any OpenAI-compatible
// endpoint can be reached via the base URL override.
type OpenAIAdapter struct {
	client       openai.Client
	defaultModel string
	timeout      time.Duration
}

// OpenAIConfig configures an OpenAIAdapter.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string        // optional, defaults to the public OpenAI API
	Model   string        // optional default model override
	Timeout time.Duration // optional per-invoke bound
}

// NewOpenAIAdapter creates an adapter for OpenAI chat completions.
func NewOpenAIAdapter(cfg OpenAIConfig) (*OpenAIAdapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: OpenAI API key is required", ErrConfiguration)
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIAdapter{
		client:       openai.NewClient(opts...),
		defaultModel: model,
		timeout:      cfg.Timeout,
	}, nil
}

// Provider returns the provider identifier.
func (a *OpenAIAdapter) Provider() string { return ProviderOpenAI }

// Invoke sends the conversation as a flat message array and returns the
// first choice's content, trimmed.
func (a *OpenAIAdapter) Invoke(ctx context.Context, messages []Message, opts Options) (*Response, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	maxTokens, temperature := invokeDefaults(opts)
	params := a.params(messages, opts.Model, maxTokens, temperature)

	completion, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: openai: %v", ErrProvider, err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: openai: response contained no choices", ErrProvider)
	}

	choice := completion.Choices[0]
	return &Response{
		Content:  strings.TrimSpace(choice.Message.Content),
		Provider: ProviderOpenAI,
		Model:    string(params.Model),
		Metadata: map[string]any{
			"usage": map[string]int64{
				"promptTokens":     completion.Usage.PromptTokens,
				"completionTokens": completion.Usage.CompletionTokens,
				"totalTokens":      completion.Usage.TotalTokens,
			},
			"finishReason": choice.FinishReason,
		},
	}, nil
}

// Stream sends the request with streaming enabled and forwards content
// deltas in production order.
func (a *OpenAIAdapter) Stream(ctx context.Context, messages []Message, opts Options) (<-chan Chunk, error) {
	maxTokens, temperature := streamDefaults(opts)
	params := a.params(messages, opts.Model, maxTokens, temperature)

	stream := a.client.Chat.Completions.NewStreaming(ctx, params)

	out := make(chan Chunk)
	go func() {
		defer close(out)
		defer stream.Close()
		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
				continue
			}
			select {
			case out <- Chunk{Text: chunk.Choices[0].Delta.Content}:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil {
			select {
			case out <- Chunk{Err: fmt.Errorf("%w: openai: %v", ErrProvider, err)}:
			case <-ctx.Done():
			}
		}
	}()
	return out, nil
}

func (a *OpenAIAdapter) params(messages []Message, model string, maxTokens int, temperature float64) openai.ChatCompletionNewParams {
	if model == "" {
		model = a.defaultModel
	}
	apiMessages := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			apiMessages = append(apiMessages, openai.SystemMessage(m.Content))
		case RoleAssistant:
			apiMessages = append(apiMessages, openai.AssistantMessage(m.Content))
		default:
			apiMessages = append(apiMessages, openai.UserMessage(m.Content))
		}
	}
	return openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(model),
		Messages:    apiMessages,
		MaxTokens:   openai.Int(int64(maxTokens)),
		Temperature: openai.Float(temperature),
	}
}
