package timeline

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-hero/engine/node"
	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects how a Timeline's playhead moves. It is fixed at construction.
type Mode int

const (
	// ModeAutonomous advances with wall-clock time via Evaluate or Advance.
	ModeAutonomous Mode = iota
	// ModeScrubbed is positioned externally via ScrubTo and never advances on its own.
	ModeScrubbed
)

func (m Mode) String() string {
	switch m {
	case ModeAutonomous:
		return "autonomous"
	case ModeScrubbed:
		return "scrubbed"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Keyframe describes one transform tween on a single node property.
type Keyframe struct {
	// Target is the node written by this keyframe. Not owned by the timeline.
	Target node.Node
	// Property is the transform vector being animated.
	Property node.Property
	// Value is the absolute target, or the additive delta when Relative is set.
	Value mgl32.Vec3
	// Axes restricts the tween to a subset of components. Zero means all axes.
	Axes node.Axes
	// Duration is the tween length in timeline seconds. Negative values are treated as zero.
	Duration float32
	// Ease is an easing identifier resolved through easing.Lookup.
	Ease string
	// Relative makes Value a delta added to the baseline instead of an absolute target.
	Relative bool
}

// AnchorKind selects how an Entry's start time is resolved.
type AnchorKind int

const (
	// AnchorAbsolute starts the entry at Offset seconds.
	AnchorAbsolute AnchorKind = iota
	// AnchorWithStart starts the entry at the referenced entry's start plus Offset.
	AnchorWithStart
	// AnchorAfterEnd starts the entry at the referenced entry's end plus Offset.
	AnchorAfterEnd
	// AnchorTimelineEnd starts the entry at the timeline's current end plus Offset.
	AnchorTimelineEnd
)

// Anchor places an Entry in time. Ref names an earlier entry; an empty Ref on a
// relative anchor means the immediately preceding entry.
type Anchor struct {
	Kind   AnchorKind
	Ref    string
	Offset float32
}

// At anchors an entry at an absolute time.
//
// Parameters:
//   - t: start time in seconds
//
// Returns:
//   - Anchor: the absolute anchor
func At(t float32) Anchor {
	return Anchor{Kind: AnchorAbsolute, Offset: t}
}

// WithStartOf aligns an entry with the start of an earlier entry.
//
// Parameters:
//   - ref: name of the earlier entry, or "" for the preceding entry
//   - offset: seconds added to the referenced start
//
// Returns:
//   - Anchor: the relative anchor
func WithStartOf(ref string, offset float32) Anchor {
	return Anchor{Kind: AnchorWithStart, Ref: ref, Offset: offset}
}

// AfterEndOf places an entry after the end of an earlier entry.
//
// Parameters:
//   - ref: name of the earlier entry, or "" for the preceding entry
//   - offset: seconds added to the referenced end
//
// Returns:
//   - Anchor: the relative anchor
func AfterEndOf(ref string, offset float32) Anchor {
	return Anchor{Kind: AnchorAfterEnd, Ref: ref, Offset: offset}
}

// Appended places an entry at the current end of the timeline plus a delay.
//
// Parameters:
//   - delay: seconds added to the timeline end
//
// Returns:
//   - Anchor: the sequential anchor
func Appended(delay float32) Anchor {
	return Anchor{Kind: AnchorTimelineEnd, Offset: delay}
}

// Entry is a Keyframe placed on a Timeline.
type Entry struct {
	Keyframe

	// Name identifies the entry for later anchors. May be empty.
	Name string
	// Start places the entry in time.
	Start Anchor
	// OnComplete is called once when an autonomous playhead first passes the entry's end.
	OnComplete func()
}

// InvalidAnchorError is returned when an anchor references an entry that has not been added.
type InvalidAnchorError struct {
	Entry string
	Ref   string
}

func (e InvalidAnchorError) Error() string {
	ref := e.Ref
	if ref == "" {
		ref = "<previous>"
	}
	return fmt.Sprintf("entry %q anchors to %s, which has not been added", e.Entry, ref)
}

// InvalidModeError is returned when a playback method does not match the timeline's mode.
type InvalidModeError struct {
	Mode Mode
	Op   string
}

func (e InvalidModeError) Error() string {
	return fmt.Sprintf("%s is not available on a %s timeline", e.Op, e.Mode)
}
