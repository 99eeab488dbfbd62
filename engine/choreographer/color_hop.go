package choreographer

import (
	"log"

	"github.com/Carmen-Shannon/oxy-hero/engine/easing"
	"github.com/Carmen-Shannon/oxy-hero/engine/node"
	"github.com/Carmen-Shannon/oxy-hero/engine/timeline"
	"github.com/go-gl/mathgl/mgl32"
)

// Hop timing: the keyboard jumps up, the variant swaps at the top, and it bounces back down.
const (
	hopHeight       = 0.3
	hopUpDuration   = 0.4
	hopDownDuration = 0.6
	hopDownEase     = "elastic.out(1,0.4)"
)

// ColorHop animates a colour-variant change on the keyboard: a hop up, a swap of the
// visible variant at the apex, and an elastic landing.
type ColorHop interface {
	// Change requests a new variant. Requesting the visible variant, or the one a running
	// hop is already heading to, does nothing. A new request during a hop restarts it from
	// the keyboard's current height. With reduced motion the swap and completion happen at once.
	//
	// Parameters:
	//   - variant: the requested variant identifier
	//
	// Returns:
	//   - bool: true if a change was started
	Change(variant string) bool

	// Frame advances a running hop by dt seconds.
	//
	// Parameters:
	//   - dt: elapsed seconds
	Frame(dt float32)

	// Variant returns the visible variant.
	//
	// Returns:
	//   - string: the visible variant identifier
	Variant() string

	// Busy returns whether a hop is running.
	//
	// Returns:
	//   - bool: true while hopping
	Busy() bool
}

type colorHop struct {
	target        node.Node
	reducedMotion bool
	onSwap        func(variant string)
	onComplete    func(variant string)

	visible string
	pending string
	tl      timeline.Timeline
}

var _ ColorHop = &colorHop{}

// NewColorHop creates a ColorHop moving target and showing the initial variant.
//
// Parameters:
//   - target: the keyboard node to hop
//   - initial: the variant visible at start
//   - options: functional options to configure the hop
//
// Returns:
//   - ColorHop: the newly created colour hop
func NewColorHop(target node.Node, initial string, options ...ColorHopBuilderOption) ColorHop {
	h := &colorHop{
		target:  target,
		visible: initial,
	}
	for _, option := range options {
		option(h)
	}
	return h
}

func (h *colorHop) Change(variant string) bool {
	if h.Busy() {
		if variant == h.pending {
			return false
		}
		h.tl.Stop()
	} else if variant == h.visible {
		return false
	}
	h.pending = variant

	if h.reducedMotion || h.target == nil {
		h.swap()
		h.complete()
		return true
	}

	h.tl = timeline.NewTimeline(timeline.ModeAutonomous,
		timeline.WithName("color-hop"),
		timeline.WithOnComplete(h.complete),
	)
	up := timeline.Entry{
		Name:       "hop/up",
		Start:      timeline.At(0),
		OnComplete: h.swap,
		Keyframe: timeline.Keyframe{
			Target: h.target, Property: node.PropertyPosition, Axes: node.AxisY,
			Value: mgl32.Vec3{0, hopHeight, 0}, Duration: hopUpDuration, Ease: easing.EaseOut,
		},
	}
	down := timeline.Entry{
		Name:  "hop/down",
		Start: timeline.AfterEndOf(up.Name, 0),
		Keyframe: timeline.Keyframe{
			Target: h.target, Property: node.PropertyPosition, Axes: node.AxisY,
			Value: mgl32.Vec3{0, 0, 0}, Duration: hopDownDuration, Ease: hopDownEase,
		},
	}
	if err := h.tl.AddEntry(up); err != nil {
		h.tl = nil
		return false
	}
	if err := h.tl.AddEntry(down); err != nil {
		h.tl = nil
		return false
	}
	return true
}

func (h *colorHop) Frame(dt float32) {
	if !h.Busy() {
		return
	}
	if err := h.tl.Advance(dt); err != nil {
		log.Printf("[ColorHop] evaluation failed: %v", err)
	}
}

func (h *colorHop) Variant() string {
	return h.visible
}

func (h *colorHop) Busy() bool {
	return h.tl != nil && !h.tl.Stopped() && !h.tl.Done()
}

func (h *colorHop) swap() {
	h.visible = h.pending
	if h.onSwap != nil {
		h.onSwap(h.visible)
	}
}

func (h *colorHop) complete() {
	if h.onComplete != nil {
		h.onComplete(h.visible)
	}
}
