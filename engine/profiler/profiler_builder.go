package profiler

import "time"

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithInterval sets how often a sample is logged. Non-positive values keep the default.
//
// Parameters:
//   - interval: time between samples
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithInterval(interval time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithStatus appends the returned text to every sample, e.g. the animation phase.
//
// Parameters:
//   - status: called once per logged sample
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithStatus(status func() string) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.status = status
	}
}

// WithClock replaces time.Now as the profiler's time source.
//
// Parameters:
//   - now: the clock to read
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithClock(now func() time.Time) ProfilerBuilderOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}
