// package wave appends a traveling lift-and-settle ripple across partitioned columns
// to a Timeline.
package wave

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-hero/engine/easing"
	"github.com/Carmen-Shannon/oxy-hero/engine/layout"
	"github.com/Carmen-Shannon/oxy-hero/engine/node"
	"github.com/Carmen-Shannon/oxy-hero/engine/timeline"
	"github.com/go-gl/mathgl/mgl32"
)

// Config controls the shape and timing of the wave.
type Config struct {
	// LiftAmount is how far labeled nodes rise along the lift axis.
	LiftAmount float32 `yaml:"liftAmount"`
	// LiftDuration is the length of the rise in timeline seconds.
	LiftDuration float32 `yaml:"liftDuration"`
	// SettleDuration is the length of the return in timeline seconds.
	SettleDuration float32 `yaml:"settleDuration"`
	// SpreadWindow is the time between the first and last column starts.
	SpreadWindow float32 `yaml:"spreadWindow"`
	// ColumnBaseOffset is the start time of the first column.
	ColumnBaseOffset float32 `yaml:"columnBaseOffset"`
	// SwitchLiftFraction scales lift amount and both durations for fallback nodes.
	SwitchLiftFraction float32 `yaml:"switchLiftFraction"`
	// SwitchDelayFraction delays fallback nodes by this fraction of LiftDuration.
	SwitchDelayFraction float32 `yaml:"switchDelayFraction"`
	// Ease is the easing identifier for every wave entry.
	Ease string `yaml:"ease"`
}

// DefaultConfig returns the hero keyboard wave: keycaps rise 0.08 over half a second
// and settle back, columns start between 0.5s and 2.5s, switches follow at half height
// 0.2s later.
//
// Returns:
//   - Config: the default wave configuration
func DefaultConfig() Config {
	return Config{
		LiftAmount:          0.08,
		LiftDuration:        0.5,
		SettleDuration:      0.5,
		SpreadWindow:        2,
		ColumnBaseOffset:    0.5,
		SwitchLiftFraction:  0.5,
		SwitchDelayFraction: 0.4,
		Ease:                easing.EaseInOut,
	}
}

// InvalidConfigError is returned for a wave configuration that cannot be choreographed.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid wave config %s: %s", e.Field, e.Reason)
}

// SpanBound returns the longest time a choreographed wave may occupy, measured from
// ColumnBaseOffset.
//
// Returns:
//   - float32: SpreadWindow + LiftDuration + SettleDuration
func (c Config) SpanBound() float32 {
	return c.SpreadWindow + c.LiftDuration + c.SettleDuration
}

// Validate checks durations, fractions and that the fallback ripple ends within SpanBound.
//
// Returns:
//   - error: InvalidConfigError for the first violation, or nil
func (c Config) Validate() error {
	switch {
	case c.LiftDuration < 0:
		return InvalidConfigError{Field: "liftDuration", Reason: "must not be negative"}
	case c.SettleDuration < 0:
		return InvalidConfigError{Field: "settleDuration", Reason: "must not be negative"}
	case c.SpreadWindow < 0:
		return InvalidConfigError{Field: "spreadWindow", Reason: "must not be negative"}
	case c.SwitchLiftFraction < 0 || c.SwitchLiftFraction > 1:
		return InvalidConfigError{Field: "switchLiftFraction", Reason: "must be within [0, 1]"}
	case c.SwitchDelayFraction < 0 || c.SwitchDelayFraction > 1:
		return InvalidConfigError{Field: "switchDelayFraction", Reason: "must be within [0, 1]"}
	}
	phase := c.LiftDuration + c.SettleDuration
	if c.LiftDuration*c.SwitchDelayFraction+phase*c.SwitchLiftFraction > phase {
		return InvalidConfigError{Field: "switchDelayFraction", Reason: "fallback ripple would outlast the keycap ripple"}
	}
	if _, err := easing.Lookup(c.Ease); err != nil {
		return fmt.Errorf("invalid wave config ease: %w", err)
	}
	return nil
}

// Choreographer appends wave entries for a partition to a timeline.
type Choreographer interface {
	// Choreograph appends, for every column i of the partition, a lift entry and an
	// anchored settle entry per node. Column i starts at
	// i/(columns-1)*SpreadWindow + ColumnBaseOffset (ColumnBaseOffset for a single column).
	// Fallback nodes ripple with LiftAmount, LiftDuration and SettleDuration scaled by
	// SwitchLiftFraction, starting LiftDuration*SwitchDelayFraction later.
	// Columns with no nodes add nothing.
	//
	// Parameters:
	//   - partition: columns from a layout.ColumnPartitioner
	//   - cfg: the wave configuration
	//   - tl: the timeline receiving the entries
	//
	// Returns:
	//   - int: number of entries appended
	//   - error: InvalidConfigError, or an error from tl.AddEntry
	Choreograph(partition layout.Partition, cfg Config, tl timeline.Timeline) (int, error)
}

type choreographer struct {
	axes   node.Axes
	prefix string
}

var _ Choreographer = &choreographer{}

// NewChoreographer creates a wave Choreographer lifting along y by default.
//
// Parameters:
//   - options: functional options to configure the choreographer
//
// Returns:
//   - Choreographer: the newly created choreographer
func NewChoreographer(options ...ChoreographerBuilderOption) Choreographer {
	c := &choreographer{
		axes:   node.AxisY,
		prefix: "wave",
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// ColumnStart returns the start time of column i out of columns.
//
// Parameters:
//   - i: column index
//   - columns: total column count
//   - cfg: the wave configuration
//
// Returns:
//   - float32: start time in timeline seconds
func ColumnStart(i, columns int, cfg Config) float32 {
	var progress float32
	if columns > 1 {
		progress = float32(i) / float32(columns-1)
	}
	return progress*cfg.SpreadWindow + cfg.ColumnBaseOffset
}

func (c *choreographer) Choreograph(partition layout.Partition, cfg Config, tl timeline.Timeline) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	columns := partition.Columns()
	added := 0
	for i := 0; i < columns; i++ {
		keys := partition.Labeled[i]
		var switches []node.Node
		if i < len(partition.Unlabeled) {
			switches = partition.Unlabeled[i]
		}
		if len(keys) == 0 && len(switches) == 0 {
			continue
		}

		start := ColumnStart(i, columns, cfg)
		for j, n := range keys {
			name := fmt.Sprintf("%s/%d/key/%d", c.prefix, i, j)
			if err := c.ripple(tl, n, name, start, cfg.LiftAmount, cfg.LiftDuration, cfg.SettleDuration, cfg.Ease); err != nil {
				return added, err
			}
			added += 2
		}

		switchStart := start + cfg.LiftDuration*cfg.SwitchDelayFraction
		f := cfg.SwitchLiftFraction
		for j, n := range switches {
			name := fmt.Sprintf("%s/%d/switch/%d", c.prefix, i, j)
			if err := c.ripple(tl, n, name, switchStart, cfg.LiftAmount*f, cfg.LiftDuration*f, cfg.SettleDuration*f, cfg.Ease); err != nil {
				return added, err
			}
			added += 2
		}
	}
	return added, nil
}

// ripple appends a relative lift at start and a settle anchored to the lift's end.
func (c *choreographer) ripple(tl timeline.Timeline, n node.Node, name string, start, amount, lift, settle float32, ease string) error {
	delta := c.axes.Mask(mgl32.Vec3{amount, amount, amount})
	liftName := name + "/lift"
	if err := tl.AddEntry(timeline.Entry{
		Name:  liftName,
		Start: timeline.At(start),
		Keyframe: timeline.Keyframe{
			Target:   n,
			Property: node.PropertyPosition,
			Value:    delta,
			Axes:     c.axes,
			Duration: lift,
			Ease:     ease,
			Relative: true,
		},
	}); err != nil {
		return err
	}
	return tl.AddEntry(timeline.Entry{
		Name:  name + "/settle",
		Start: timeline.AfterEndOf(liftName, 0),
		Keyframe: timeline.Keyframe{
			Target:   n,
			Property: node.PropertyPosition,
			Value:    delta.Mul(-1),
			Axes:     c.axes,
			Duration: settle,
			Ease:     ease,
			Relative: true,
		},
	})
}
