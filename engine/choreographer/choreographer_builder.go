package choreographer

import (
	"github.com/Carmen-Shannon/oxy-hero/engine/camera"
	"github.com/Carmen-Shannon/oxy-hero/engine/layout"
	"github.com/Carmen-Shannon/oxy-hero/engine/wave"
)

// ChoreographerBuilderOption is a functional option for configuring a Choreographer.
type ChoreographerBuilderOption func(*choreographer)

// WithReducedMotion sets the reduced-motion flag, read once at mount.
//
// Parameters:
//   - reduced: true to keep the scene static
//
// Returns:
//   - ChoreographerBuilderOption: functional option to set the flag
func WithReducedMotion(reduced bool) ChoreographerBuilderOption {
	return func(c *choreographer) {
		c.reducedMotion = reduced
	}
}

// WithScrubLag sets the time constant, in seconds, with which the scroll timeline catches
// up to the scroll progress. Zero or less scrubs directly.
//
// Parameters:
//   - seconds: lag time constant (default 1)
//
// Returns:
//   - ChoreographerBuilderOption: functional option to set the scrub lag
func WithScrubLag(seconds float32) ChoreographerBuilderOption {
	return func(c *choreographer) {
		c.scrubLag = seconds
	}
}

// WithScrollLock sets the hook told when page scrolling should be locked during the intro
// and released when it ends.
//
// Parameters:
//   - hook: receives true to lock and false to release
//
// Returns:
//   - ChoreographerBuilderOption: functional option to set the scroll lock hook
func WithScrollLock(hook func(locked bool)) ChoreographerBuilderOption {
	return func(c *choreographer) {
		c.onScrollLock = hook
	}
}

// WithFollower sets the camera follower. A default camera.NewFollower is used otherwise.
//
// Parameters:
//   - f: the camera follower
//
// Returns:
//   - ChoreographerBuilderOption: functional option to set the follower
func WithFollower(f camera.Follower) ChoreographerBuilderOption {
	return func(c *choreographer) {
		c.follower = f
	}
}

// WithPartitioner sets the column partitioner used for the wave.
//
// Parameters:
//   - p: the column partitioner
//
// Returns:
//   - ChoreographerBuilderOption: functional option to set the partitioner
func WithPartitioner(p layout.ColumnPartitioner) ChoreographerBuilderOption {
	return func(c *choreographer) {
		if p != nil {
			c.partitioner = p
		}
	}
}

// WithWave sets the wave choreographer appending the ripple to the scroll timeline.
//
// Parameters:
//   - w: the wave choreographer
//
// Returns:
//   - ChoreographerBuilderOption: functional option to set the wave choreographer
func WithWave(w wave.Choreographer) ChoreographerBuilderOption {
	return func(c *choreographer) {
		if w != nil {
			c.waver = w
		}
	}
}
