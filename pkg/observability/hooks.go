// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries emit events through the registered hooks; the defaults are
// no-ops, so nothing is recorded unless a consumer registers its own
// implementation at startup:
//
//	func main() {
//	    observability.SetServiceHooks(&myServiceHooks{})
//	    // ... run application
//	}
//
// The ipath client reports each request it makes:
//
//	observability.Service().OnRequest(ctx, endpoint)
//	observability.Service().OnResponse(ctx, endpoint, status, size, duration)
//
// and the selection builder reports each selection it renders:
//
//	observability.Selection().OnBuilt(rows, attrs)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Hook Interfaces
// =============================================================================

// ServiceHooks receives events from requests to the iPath service.
type ServiceHooks interface {
	// OnRequest records an outgoing request to endpoint.
	OnRequest(ctx context.Context, endpoint string)

	// OnResponse records a response. size is the declared Content-Length,
	// -1 when unknown.
	OnResponse(ctx context.Context, endpoint string, statusCode, size int, duration time.Duration)

	// OnError records a request that produced no response.
	OnError(ctx context.Context, endpoint string, err error)
}

// SelectionHooks receives events from the selection builder.
type SelectionHooks interface {
	// OnBuilt records a selection of rows lines, each carrying the named
	// attributes (color, width, opacity).
	OnBuilt(rows int, attrs []string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopServiceHooks is a no-op implementation of ServiceHooks.
type NoopServiceHooks struct{}

func (NoopServiceHooks) OnRequest(context.Context, string)                          {}
func (NoopServiceHooks) OnResponse(context.Context, string, int, int, time.Duration) {}
func (NoopServiceHooks) OnError(context.Context, string, error)                     {}

// NoopSelectionHooks is a no-op implementation of SelectionHooks.
type NoopSelectionHooks struct{}

func (NoopSelectionHooks) OnBuilt(int, []string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	serviceHooks   ServiceHooks   = NoopServiceHooks{}
	selectionHooks SelectionHooks = NoopSelectionHooks{}
	hooksMu        sync.RWMutex
)

// SetServiceHooks registers custom service hooks. A nil h is ignored.
func SetServiceHooks(h ServiceHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serviceHooks = h
	}
}

// SetSelectionHooks registers custom selection hooks. A nil h is ignored.
func SetSelectionHooks(h SelectionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		selectionHooks = h
	}
}

// Service returns the registered service hooks.
func Service() ServiceHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serviceHooks
}

// Selection returns the registered selection hooks.
func Selection() SelectionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return selectionHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	serviceHooks = NoopServiceHooks{}
	selectionHooks = NoopSelectionHooks{}
}
