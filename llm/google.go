package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	vertexai "cloud.google.com/go/vertexai/genai"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const (
	defaultGoogleModel    = "gemini-2.0-flash"
	defaultGoogleLocation = "us-central1"
)

// GoogleAdapter talks to Google's Gemini models. Two mutually exclusive
// backends are selected at construction by which credentials are present,
// in this priority order:
//
//  1. API key → Generative Language API
//  2. Service-account JSON + project id → Vertex AI with explicit credentials
//  3. Project id alone → Vertex AI with ambient credential resolution (ADC)
//
// Changing the order changes which backend environment a deployment needs,
// so it is fixed.
type GoogleAdapter struct {
	backend      googleBackend
	defaultModel string
	timeout      time.Duration
}

// GoogleConfig configures a GoogleAdapter.
type GoogleConfig struct {
	APIKey             string
	ProjectID          string
	Location           string // optional, defaults to us-central1
	ServiceAccountJSON string
	Model              string        // optional default model override
	Timeout            time.Duration // optional per-invoke bound
}

// NewGoogleAdapter creates an adapter for Google Generative AI, resolving
// the auth mode from cfg. It fails with ErrConfiguration when neither an
// API key nor a project id is available.
func NewGoogleAdapter(ctx context.Context, cfg GoogleConfig) (*GoogleAdapter, error) {
	model := cfg.Model
	if model == "" {
		model = defaultGoogleModel
	}
	location := strings.TrimSpace(cfg.Location)
	if location == "" {
		location = defaultGoogleLocation
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	saJSON := strings.TrimSpace(cfg.ServiceAccountJSON)
	projectID := strings.TrimSpace(cfg.ProjectID)

	var backend googleBackend
	switch {
	case apiKey != "":
		client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
		if err != nil {
			return nil, fmt.Errorf("%w: google_genai: %v", ErrConfiguration, err)
		}
		backend = &genaiBackend{client: client}

	case saJSON != "" && projectID != "":
		client, err := vertexai.NewClient(ctx, projectID, location,
			option.WithCredentialsJSON([]byte(saJSON)))
		if err != nil {
			return nil, fmt.Errorf("%w: google_genai: vertex: %v", ErrConfiguration, err)
		}
		backend = &vertexBackend{client: client}

	case projectID != "":
		// Ambient credential resolution: GCE metadata, workload identity,
		// or a local application-default login.
		client, err := vertexai.NewClient(ctx, projectID, location)
		if err != nil {
			return nil, fmt.Errorf("%w: google_genai: vertex: %v", ErrConfiguration, err)
		}
		backend = &vertexBackend{client: client}

	default:
		return nil, fmt.Errorf("%w: google_genai requires an API key, or a project id with optional service-account JSON", ErrConfiguration)
	}

	return &GoogleAdapter{backend: backend, defaultModel: model, timeout: cfg.Timeout}, nil
}

// Provider returns the provider identifier.
func (a *GoogleAdapter) Provider() string { return ProviderGoogleGenAI }

// Close releases the underlying client connection.
func (a *GoogleAdapter) Close() error { return a.backend.close() }

// Invoke sends the conversation as system instruction + chat history with
// the most recent turn as the live call.
func (a *GoogleAdapter) Invoke(ctx context.Context, messages []Message, opts Options) (*Response, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	maxTokens, temperature := invokeDefaults(opts)
	req := a.request(messages, opts.Model, maxTokens, temperature)

	content, metadata, err := a.backend.invoke(ctx, req)
	if err != nil {
		return nil, err
	}
	return &Response{
		Content:  strings.TrimSpace(content),
		Provider: ProviderGoogleGenAI,
		Model:    req.model,
		Metadata: metadata,
	}, nil
}

// Stream forwards text fragments from the model in production order.
func (a *GoogleAdapter) Stream(ctx context.Context, messages []Message, opts Options) (<-chan Chunk, error) {
	maxTokens, temperature := streamDefaults(opts)
	req := a.request(messages, opts.Model, maxTokens, temperature)
	return a.backend.stream(ctx, req), nil
}

// googleTurn is one conversation turn in Google's role vocabulary, where
// the assistant role is named "model".
type googleTurn struct {
	role string
	text string
}

type googleRequest struct {
	model       string
	system      string
	history     []googleTurn
	last        string
	maxTokens   int32
	temperature float32
}

func (a *GoogleAdapter) request(messages []Message, model string, maxTokens int, temperature float64) googleRequest {
	if model == "" {
		model = a.defaultModel
	}
	system, rest := mergeSystem(messages)

	history := make([]googleTurn, 0, len(rest))
	for _, m := range rest {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		history = append(history, googleTurn{role: role, text: m.Content})
	}

	// The newest turn is sent as the live message; earlier turns ride along
	// as chat history.
	last := ""
	if n := len(history); n > 0 {
		last = history[n-1].text
		history = history[:n-1]
	}

	return googleRequest{
		model:       model,
		system:      system,
		history:     history,
		last:        last,
		maxTokens:   int32(maxTokens),
		temperature: float32(temperature),
	}
}

// googleBackend abstracts over the two Google SDKs, which expose the same
// chat surface through distinct types.
type googleBackend interface {
	invoke(ctx context.Context, req googleRequest) (string, map[string]any, error)
	stream(ctx context.Context, req googleRequest) <-chan Chunk
	close() error
}

// genaiBackend is the API-key path via the Generative Language API.
type genaiBackend struct {
	client *genai.Client
}

func (b *genaiBackend) close() error { return b.client.Close() }

func (b *genaiBackend) session(req googleRequest) *genai.ChatSession {
	model := b.client.GenerativeModel(req.model)
	if req.system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.system)}}
	}
	model.SetMaxOutputTokens(req.maxTokens)
	model.SetTemperature(req.temperature)

	cs := model.StartChat()
	for _, turn := range req.history {
		cs.History = append(cs.History, &genai.Content{
			Role:  turn.role,
			Parts: []genai.Part{genai.Text(turn.text)},
		})
	}
	return cs
}

func (b *genaiBackend) invoke(ctx context.Context, req googleRequest) (string, map[string]any, error) {
	resp, err := b.session(req).SendMessage(ctx, genai.Text(req.last))
	if err != nil {
		return "", nil, fmt.Errorf("%w: google_genai: %v", ErrProvider, err)
	}

	text := genaiResponseText(resp)
	if text == "" {
		return "", nil, fmt.Errorf("%w: google_genai: response contained no usable text", ErrProvider)
	}

	metadata := map[string]any{}
	if resp.UsageMetadata != nil {
		metadata["usage"] = map[string]int32{
			"promptTokens":    resp.UsageMetadata.PromptTokenCount,
			"candidateTokens": resp.UsageMetadata.CandidatesTokenCount,
			"totalTokens":     resp.UsageMetadata.TotalTokenCount,
		}
	}
	return text, metadata, nil
}

func (b *genaiBackend) stream(ctx context.Context, req googleRequest) <-chan Chunk {
	out := make(chan Chunk)
	go func() {
		defer close(out)
		iter := b.session(req).SendMessageStream(ctx, genai.Text(req.last))
		for {
			resp, err := iter.Next()
			if err == iterator.Done {
				return
			}
			if err != nil {
				select {
				case out <- Chunk{Err: fmt.Errorf("%w: google_genai: %v", ErrProvider, err)}:
				case <-ctx.Done():
				}
				return
			}
			if text := genaiResponseText(resp); text != "" {
				select {
				case out <- Chunk{Text: text}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

func genaiResponseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return text.String()
}

// vertexBackend is the service-account / ambient-credential path via
// Vertex AI.
type vertexBackend struct {
	client *vertexai.Client
}

func (b *vertexBackend) close() error { return b.client.Close() }

func (b *vertexBackend) session(req googleRequest) *vertexai.ChatSession {
	model := b.client.GenerativeModel(req.model)
	if req.system != "" {
		model.SystemInstruction = &vertexai.Content{Parts: []vertexai.Part{vertexai.Text(req.system)}}
	}
	model.SetMaxOutputTokens(req.maxTokens)
	model.SetTemperature(req.temperature)

	cs := model.StartChat()
	for _, turn := range req.history {
		cs.History = append(cs.History, &vertexai.Content{
			Role:  turn.role,
			Parts: []vertexai.Part{vertexai.Text(turn.text)},
		})
	}
	return cs
}

func (b *vertexBackend) invoke(ctx context.Context, req googleRequest) (string, map[string]any, error) {
	resp, err := b.session(req).SendMessage(ctx, vertexai.Text(req.last))
	if err != nil {
		return "", nil, fmt.Errorf("%w: google_genai: vertex: %v", ErrProvider, err)
	}

	text := vertexResponseText(resp)
	if text == "" {
		return "", nil, fmt.Errorf("%w: google_genai: vertex: response contained no usable text", ErrProvider)
	}

	metadata := map[string]any{}
	if resp.UsageMetadata != nil {
		metadata["usage"] = map[string]int32{
			"promptTokens":    resp.UsageMetadata.PromptTokenCount,
			"candidateTokens": resp.UsageMetadata.CandidatesTokenCount,
			"totalTokens":     resp.UsageMetadata.TotalTokenCount,
		}
	}
	return text, metadata, nil
}

func (b *vertexBackend) stream(ctx context.Context, req googleRequest) <-chan Chunk {
	out := make(chan Chunk)
	go func() {
		defer close(out)
		iter := b.session(req).SendMessageStream(ctx, vertexai.Text(req.last))
		for {
			resp, err := iter.Next()
			if err == iterator.Done {
				return
			}
			if err != nil {
				select {
				case out <- Chunk{Err: fmt.Errorf("%w: google_genai: vertex: %v", ErrProvider, err)}:
				case <-ctx.Done():
				}
				return
			}
			if text := vertexResponseText(resp); text != "" {
				select {
				case out <- Chunk{Text: text}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

func vertexResponseText(resp *vertexai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(vertexai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return text.String()
}
