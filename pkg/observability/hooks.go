// Package observability provides hooks for progress reporting and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on a terminal UI or logging framework inside the generation
// engine. The CLI registers hooks at startup to receive events about
// platform recipes and written artifacts; library consumers embedding the
// engine can register their own or leave the no-op defaults in place.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGenerationHooks(&myHooks{})
//	    // ... run generation
//	}
//
// The engine calls hooks as it works:
//
//	observability.Generation().OnPlatformStart(ctx, "ios")
//	observability.Generation().OnArtifact(ctx, "ios", "ios/AppIcon-60x60@2x.png")
package observability

import (
	"context"
	"sync"
	"time"
)

// GenerationHooks receives events from the icon generation pipeline.
type GenerationHooks interface {
	// OnPlatformStart records that a platform recipe began.
	OnPlatformStart(ctx context.Context, platform string)

	// OnArtifact records one written output file, path relative to the
	// output root.
	OnArtifact(ctx context.Context, platform, path string)

	// OnPlatformComplete records that a platform recipe finished.
	OnPlatformComplete(ctx context.Context, platform string, artifacts int, duration time.Duration, err error)
}

// NoopGenerationHooks is a no-op implementation of GenerationHooks.
type NoopGenerationHooks struct{}

func (NoopGenerationHooks) OnPlatformStart(context.Context, string)                {}
func (NoopGenerationHooks) OnArtifact(context.Context, string, string)             {}
func (NoopGenerationHooks) OnPlatformComplete(context.Context, string, int, time.Duration, error) {
}

var (
	generationHooks GenerationHooks = NoopGenerationHooks{}
	hooksMu         sync.RWMutex
)

// SetGenerationHooks registers custom generation hooks.
// This should be called once at application startup before any generation.
func SetGenerationHooks(h GenerationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generationHooks = h
	}
}

// Generation returns the registered generation hooks.
func Generation() GenerationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generationHooks
}

// Reset restores the no-op defaults. Primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generationHooks = NoopGenerationHooks{}
}
