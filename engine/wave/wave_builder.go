package wave

import "github.com/Carmen-Shannon/oxy-hero/engine/node"

// ChoreographerBuilderOption is a functional option for configuring a Choreographer.
type ChoreographerBuilderOption func(*choreographer)

// WithLiftAxes sets the position components the wave lifts along. A zero mask is ignored.
//
// Parameters:
//   - axes: the axes to lift along (default y)
//
// Returns:
//   - ChoreographerBuilderOption: functional option to set the lift axes
func WithLiftAxes(axes node.Axes) ChoreographerBuilderOption {
	return func(c *choreographer) {
		if axes != 0 {
			c.axes = axes
		}
	}
}

// WithNamePrefix sets the prefix of generated entry names, so several waves can share a timeline.
//
// Parameters:
//   - prefix: the entry name prefix (default "wave")
//
// Returns:
//   - ChoreographerBuilderOption: functional option to set the name prefix
func WithNamePrefix(prefix string) ChoreographerBuilderOption {
	return func(c *choreographer) {
		c.prefix = prefix
	}
}
