// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about render passes and overlay
// interaction.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This keeps the chart and overlay packages free of logging or metrics
// imports; main (or the CLI) decides what to do with the events.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    observability.SetOverlayHooks(&myOverlayHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnEncodeStart(ctx, "svg")
//	// ... encode ...
//	observability.Render().OnEncodeComplete(ctx, "svg", len(out), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from output encoding (SVG/PNG sinks).
type RenderHooks interface {
	OnEncodeStart(ctx context.Context, format string)
	OnEncodeComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// NoopRenderHooks is the default RenderHooks implementation.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnEncodeStart(context.Context, string) {}
func (NoopRenderHooks) OnEncodeComplete(context.Context, string, int, time.Duration, error) {
}

// =============================================================================
// Overlay Hooks
// =============================================================================

// OverlayHooks receives events from annotation overlays. These run on
// the embedder's UI loop, so there is no context parameter.
type OverlayHooks interface {
	// OnRender fires after a marker rebuild: matched of targets markers
	// were placed.
	OnRender(overlay string, matched, targets int)
	// OnStateChange fires when a marker transitions visual state
	// ("normal", "active", "selected").
	OnStateChange(overlay, marker, state string)
}

// NoopOverlayHooks is the default OverlayHooks implementation.
type NoopOverlayHooks struct{}

func (NoopOverlayHooks) OnRender(string, int, int)            {}
func (NoopOverlayHooks) OnStateChange(string, string, string) {}

// =============================================================================
// Global Registry
// =============================================================================

var (
	mu           sync.RWMutex
	renderHooks  RenderHooks  = NoopRenderHooks{}
	overlayHooks OverlayHooks = NoopOverlayHooks{}
)

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopRenderHooks{}
	}
	renderHooks = h
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	mu.RLock()
	defer mu.RUnlock()
	return renderHooks
}

// SetOverlayHooks registers custom overlay hooks.
func SetOverlayHooks(h OverlayHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopOverlayHooks{}
	}
	overlayHooks = h
}

// Overlay returns the registered overlay hooks.
func Overlay() OverlayHooks {
	mu.RLock()
	defer mu.RUnlock()
	return overlayHooks
}

// Reset restores all hooks to their no-op defaults. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	renderHooks = NoopRenderHooks{}
	overlayHooks = NoopOverlayHooks{}
}
