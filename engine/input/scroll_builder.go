package input

// ScrollTrackerBuilderOption is a functional option for configuring a ScrollTracker.
type ScrollTrackerBuilderOption func(*scrollTracker)

// WithSteps sets how many wheel notches scroll the whole page. Values below 1 are ignored.
//
// Parameters:
//   - steps: notches per full page
//
// Returns:
//   - ScrollTrackerBuilderOption: functional option to set the step count
func WithSteps(steps int) ScrollTrackerBuilderOption {
	return func(st *scrollTracker) {
		if steps >= 1 {
			st.steps = float32(steps)
		}
	}
}

// WithInitialProgress sets the starting page position, clamped to [0, 1].
//
// Parameters:
//   - progress: normalized page position
//
// Returns:
//   - ScrollTrackerBuilderOption: functional option to set the initial progress
func WithInitialProgress(progress float32) ScrollTrackerBuilderOption {
	return func(st *scrollTracker) {
		st.set(progress)
		st.dirty = false
	}
}
