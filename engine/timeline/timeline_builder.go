package timeline

// TimelineBuilderOption is a functional option for configuring a Timeline.
type TimelineBuilderOption func(*timeline)

// WithName sets the label the timeline reports in logs.
//
// Parameters:
//   - name: the timeline label
//
// Returns:
//   - TimelineBuilderOption: functional option to set the name
func WithName(name string) TimelineBuilderOption {
	return func(tl *timeline) {
		tl.name = name
	}
}

// WithOnComplete registers a callback fired once when an autonomous playhead first
// reaches the total duration. Scrubbed timelines never fire it.
//
// Parameters:
//   - fn: the completion callback
//
// Returns:
//   - TimelineBuilderOption: functional option to set the completion callback
func WithOnComplete(fn func()) TimelineBuilderOption {
	return func(tl *timeline) {
		tl.onComplete = fn
	}
}
