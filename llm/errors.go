package llm

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the gateway and adapter layer. Callers match them
// with errors.Is; adapters wrap backend detail around them with %w.
var (
	// ErrConfiguration reports a missing or unusable credential at adapter
	// construction time. It is fatal to that provider's registration only.
	ErrConfiguration = errors.New("llm: provider configuration invalid")

	// ErrProvider reports a failed backend call: network error,
	// backend-side error, timeout, or a reply with no usable content.
	ErrProvider = errors.New("llm: provider call failed")

	// ErrUnsupported reports that streaming was requested on an adapter
	// with no streaming path.
	ErrUnsupported = errors.New("llm: streaming not supported")
)

// UnregisteredProviderError reports a request for a provider id with no
// live adapter. It names the requested id and the currently registered ids.
type UnregisteredProviderError struct {
	Provider   string
	Registered []string
}

func (e *UnregisteredProviderError) Error() string {
	return fmt.Sprintf("llm: no adapter registered for provider %q (registered: [%s])",
		e.Provider, strings.Join(e.Registered, ", "))
}
