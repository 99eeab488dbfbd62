package choreographer

// ColorHopBuilderOption is a functional option for configuring a ColorHop.
type ColorHopBuilderOption func(*colorHop)

// WithHopReducedMotion makes variant changes swap instantly without moving the keyboard.
//
// Parameters:
//   - reduced: true to skip the hop
//
// Returns:
//   - ColorHopBuilderOption: functional option to set the flag
func WithHopReducedMotion(reduced bool) ColorHopBuilderOption {
	return func(h *colorHop) {
		h.reducedMotion = reduced
	}
}

// WithOnSwap sets the function called when the visible variant changes.
//
// Parameters:
//   - fn: receives the new visible variant
//
// Returns:
//   - ColorHopBuilderOption: functional option to set the swap callback
func WithOnSwap(fn func(variant string)) ColorHopBuilderOption {
	return func(h *colorHop) {
		h.onSwap = fn
	}
}

// WithOnHopComplete sets the function called when a change has fully finished.
//
// Parameters:
//   - fn: receives the visible variant
//
// Returns:
//   - ColorHopBuilderOption: functional option to set the completion callback
func WithOnHopComplete(fn func(variant string)) ColorHopBuilderOption {
	return func(h *colorHop) {
		h.onComplete = fn
	}
}
