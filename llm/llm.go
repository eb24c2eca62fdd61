// Package llm provides a unified gateway over multiple chat-completion
// providers.
//
// The package defines a provider-neutral message and response shape, an
// Adapter interface that every backend implements, and a Gateway that routes
// requests to the adapter registered for a provider name. Applications talk
// to the Gateway only; which backend answers is a matter of configuration.
//
// Supported backends:
//   - OpenAI (and any OpenAI-compatible endpoint via base URL override)
//   - Google Generative AI (API key, service account, or ambient credentials)
//   - Anthropic
//   - Groq (invoke only)
//
// Example usage:
//
//	gw := llm.NewGateway(llm.ProviderOpenAI)
//	gw.RegisterAdapter(llm.ProviderOpenAI, adapter)
//
//	resp, err := gw.Invoke(ctx, []llm.Message{
//		{Role: llm.RoleSystem, Content: "You answer in one word."},
//		{Role: llm.RoleUser, Content: "Is the sky blue?"},
//	}, llm.Options{})
package llm

import "context"

// Provider identifiers. These match the configuration keys used to select
// and credential each backend.
const (
	ProviderOpenAI      = "openai"
	ProviderGoogleGenAI = "google_genai"
	ProviderAnthropic   = "anthropic"
	ProviderGroq        = "groq"
)

// Message roles. Adapters translate these to whatever role vocabulary their
// backend expects (e.g. Google renames "assistant" to "model").
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Default sampling parameters. Invoke is used for terse one-word game
// answers; Stream is reserved for richer interactions and gets a larger
// token budget.
const (
	DefaultInvokeMaxTokens = 60
	DefaultStreamMaxTokens = 256
	DefaultTemperature     = 0.1
)

// Message is a single provider-neutral conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options configures a single Invoke or Stream call. All fields are
// optional; adapters fill unset fields with their own defaults.
type Options struct {
	// Provider overrides the gateway's default adapter selection.
	Provider string
	// Model overrides the adapter's default model identifier.
	Model string
	// MaxTokens bounds the number of generated tokens. Zero means the
	// adapter default (DefaultInvokeMaxTokens / DefaultStreamMaxTokens).
	MaxTokens int
	// Temperature is the sampling temperature. Zero means the adapter
	// default (DefaultTemperature).
	Temperature float64
}

// Response is the provider-neutral reply to an Invoke call. Content is
// always trimmed and may be empty; Metadata carries opaque backend
// diagnostics such as token usage and the stop reason.
type Response struct {
	Content  string
	Provider string
	Model    string
	Metadata map[string]any
}

// Chunk is one fragment of a streamed response. A chunk with a non-nil Err
// reports a mid-stream failure and is the last chunk delivered; the channel
// is closed when the stream ends for any reason.
type Chunk struct {
	Text string
	Err  error
}

// Adapter translates neutral chat requests to and from one specific
// backend's protocol. Implementations must be safe for concurrent use.
//
// Every adapter merges multiple system-role messages into a single
// instruction (newline-separated, order preserved), applies the default
// token and temperature bounds when the caller leaves them unset, and
// surfaces backend usage metadata without interpreting it.
type Adapter interface {
	// Provider returns the stable lowercase provider identifier.
	Provider() string

	// Invoke sends a chat-completion request and returns the full reply.
	// Backend failures, including timeouts, are wrapped in ErrProvider.
	Invoke(ctx context.Context, messages []Message, opts Options) (*Response, error)

	// Stream sends a chat-completion request and returns a channel of text
	// fragments in production order. The channel is closed on completion.
	// A consumer abandoning the stream early must cancel ctx so the
	// underlying connection is released. Adapters without a streaming path
	// return ErrUnsupported.
	Stream(ctx context.Context, messages []Message, opts Options) (<-chan Chunk, error)
}

// mergeSystem splits messages into a single system instruction (multiple
// system entries concatenated with newlines, order preserved) and the
// remaining conversation turns.
func mergeSystem(messages []Message) (system string, rest []Message) {
	rest = make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == RoleSystem {
			if system != "" {
				system += "\n"
			}
			system += m.Content
			continue
		}
		rest = append(rest, m)
	}
	return system, rest
}

// invokeDefaults resolves unset option fields against the invoke defaults.
func invokeDefaults(opts Options) (maxTokens int, temperature float64) {
	return fillDefaults(opts, DefaultInvokeMaxTokens)
}

// streamDefaults resolves unset option fields against the stream defaults.
func streamDefaults(opts Options) (maxTokens int, temperature float64) {
	return fillDefaults(opts, DefaultStreamMaxTokens)
}

func fillDefaults(opts Options, defaultMaxTokens int) (int, float64) {
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	temperature := opts.Temperature
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	return maxTokens, temperature
}
