package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-hero/engine/choreographer"
	"github.com/Carmen-Shannon/oxy-hero/engine/config"
	"github.com/Carmen-Shannon/oxy-hero/engine/input"
	"github.com/Carmen-Shannon/oxy-hero/engine/renderer"
	"github.com/Carmen-Shannon/oxy-hero/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window the engine takes input from and runs its loop on.
// Without one the engine can only be stepped with Frame.
//
// Parameters:
//   - w: an open Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer frames are presented with.
//
// Parameters:
//   - r: a Renderer configured for the engine's window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithChoreographer sets the choreographer that owns the scene's animation.
//
// Parameters:
//   - c: the Choreographer to drive
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithChoreographer(c choreographer.Choreographer) EngineBuilderOption {
	return func(e *engine) {
		e.choreographer = c
	}
}

// WithColorHop sets the keycap colour hop and the variants key presses select between.
//
// Parameters:
//   - h: the ColorHop to drive
//   - variants: the selectable variants, in key order
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithColorHop(h choreographer.ColorHop, variants ...config.Variant) EngineBuilderOption {
	return func(e *engine) {
		e.hop = h
		e.variants = variants
	}
}

// WithScrollTracker sets the tracker wheel input accumulates in. Defaults to a new
// input.NewScrollTracker.
//
// Parameters:
//   - st: the ScrollTracker to use
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScrollTracker(st input.ScrollTracker) EngineBuilderOption {
	return func(e *engine) {
		e.tracker = st
	}
}

// WithAmbient sets the fraction of the variant colour visible before the key light comes up.
// Values are clamped to [0, 1]; the default is 0.25.
//
// Parameters:
//   - ambient: the ambient floor
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithAmbient(ambient float64) EngineBuilderOption {
	return func(e *engine) {
		e.ambient = min(max(ambient, 0), 1)
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}
