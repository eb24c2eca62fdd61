package llm

import (
	"context"
	"sort"
)

// Gateway routes chat requests to the adapter registered for a provider
// name. It performs no retry, no fallback across providers, and no request
// transformation.
//
// The registry is built once at startup via RegisterAdapter and is
// read-only during request handling; concurrent Invoke and Stream calls
// need no coordination.
type Gateway struct {
	defaultProvider string
	adapters        map[string]Adapter
}

// NewGateway creates a gateway whose empty-provider requests resolve to
// defaultProvider.
func NewGateway(defaultProvider string) *Gateway {
	return &Gateway{
		defaultProvider: defaultProvider,
		adapters:        make(map[string]Adapter),
	}
}

// RegisterAdapter binds an adapter to a provider name, replacing any
// existing registration for that name.
func (g *Gateway) RegisterAdapter(provider string, adapter Adapter) {
	g.adapters[provider] = adapter
}

// DefaultProvider returns the provider name used when a request does not
// name one.
func (g *Gateway) DefaultProvider() string {
	return g.defaultProvider
}

// RegisteredProviders returns the sorted names of all registered adapters.
func (g *Gateway) RegisteredProviders() []string {
	names := make([]string, 0, len(g.adapters))
	for name := range g.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetClient resolves the adapter for provider, or for the gateway default
// when provider is empty. An unknown name yields *UnregisteredProviderError.
func (g *Gateway) GetClient(provider string) (Adapter, error) {
	key := provider
	if key == "" {
		key = g.defaultProvider
	}
	adapter, ok := g.adapters[key]
	if !ok {
		return nil, &UnregisteredProviderError{Provider: key, Registered: g.RegisteredProviders()}
	}
	return adapter, nil
}

// Invoke resolves the adapter via GetClient(opts.Provider) and delegates,
// passing options through unchanged.
func (g *Gateway) Invoke(ctx context.Context, messages []Message, opts Options) (*Response, error) {
	adapter, err := g.GetClient(opts.Provider)
	if err != nil {
		return nil, err
	}
	return adapter.Invoke(ctx, messages, opts)
}

// Stream resolves the adapter via GetClient(opts.Provider) and delegates.
func (g *Gateway) Stream(ctx context.Context, messages []Message, opts Options) (<-chan Chunk, error) {
	adapter, err := g.GetClient(opts.Provider)
	if err != nil {
		return nil, err
	}
	return adapter.Stream(ctx, messages, opts)
}
