package choreographer

import (
	"math"

	"github.com/Carmen-Shannon/oxy-hero/engine/easing"
	"github.com/Carmen-Shannon/oxy-hero/engine/node"
	"github.com/Carmen-Shannon/oxy-hero/engine/timeline"
	"github.com/go-gl/mathgl/mgl32"
)

// Entry names of the intro and scroll timelines.
const (
	IntroDescend     = "intro/descend"
	IntroTilt        = "intro/tilt"
	IntroApproach    = "intro/approach"
	IntroTurn        = "intro/turn"
	ScrollRise       = "scroll/rise"
	ScrollFlip       = "scroll/flip"
	ScrollKeycapGrow = "scroll/keycaps"
)

// tweenEase is the curve of every intro and scroll tween without an ease of its own.
const tweenEase = "power1.out"

// buildIntro lowers the keyboard into view while tilting it toward the camera, then after
// a short pause brings it closer with a slight turn. Completion hands over to the scroll phase.
func (c *choreographer) buildIntro() (timeline.Timeline, error) {
	kb := c.scene.Keyboard
	tl := timeline.NewTimeline(timeline.ModeAutonomous,
		timeline.WithName("intro"),
		timeline.WithOnComplete(c.enterScroll),
	)
	entries := []timeline.Entry{
		{
			Name:  IntroDescend,
			Start: timeline.At(0),
			Keyframe: timeline.Keyframe{
				Target: kb, Property: node.PropertyPosition,
				Value: mgl32.Vec3{0, -0.5, 0.5}, Duration: 2, Ease: easing.EaseInOut,
			},
		},
		{
			Name:  IntroTilt,
			Start: timeline.WithStartOf(IntroDescend, 0),
			Keyframe: timeline.Keyframe{
				Target: kb, Property: node.PropertyRotation,
				Value: mgl32.Vec3{1.4, 0, 0}, Duration: 1.8, Ease: tweenEase,
			},
		},
		{
			Name:  IntroApproach,
			Start: timeline.Appended(0.5),
			Keyframe: timeline.Keyframe{
				Target: kb, Property: node.PropertyPosition,
				Value: mgl32.Vec3{0.2, -0.5, 1.9}, Duration: 2, Ease: easing.EaseInOut,
			},
		},
		{
			Name:  IntroTurn,
			Start: timeline.WithStartOf(IntroApproach, 0),
			Keyframe: timeline.Keyframe{
				Target: kb, Property: node.PropertyRotation,
				Value: mgl32.Vec3{1.6, 0.4, 0}, Duration: 2, Ease: tweenEase,
			},
		},
	}
	for _, e := range entries {
		if err := tl.AddEntry(e); err != nil {
			return nil, err
		}
	}
	return tl, nil
}

// buildScroll raises and flips the keyboard over the first half second of scroll, grows
// the floating keycaps across the first three seconds, and appends the key wave.
func (c *choreographer) buildScroll() (timeline.Timeline, error) {
	kb := c.scene.Keyboard
	tl := timeline.NewTimeline(timeline.ModeScrubbed, timeline.WithName("scroll"))
	entries := []timeline.Entry{
		{
			Name:  ScrollRise,
			Start: timeline.At(0),
			Keyframe: timeline.Keyframe{
				Target: kb, Property: node.PropertyPosition,
				Value: mgl32.Vec3{0, -0.5, 2.2}, Duration: 0.5, Ease: tweenEase,
			},
		},
		{
			Name:  ScrollFlip,
			Start: timeline.WithStartOf(ScrollRise, 0),
			Keyframe: timeline.Keyframe{
				Target: kb, Property: node.PropertyRotation,
				Value: mgl32.Vec3{-2 * math.Pi, 0, 0}, Duration: 0.5, Ease: tweenEase,
			},
		},
	}
	if c.scene.Keycaps != nil {
		entries = append(entries, timeline.Entry{
			Name:  ScrollKeycapGrow,
			Start: timeline.At(0),
			Keyframe: timeline.Keyframe{
				Target: c.scene.Keycaps, Property: node.PropertyScale,
				Value: mgl32.Vec3{5, 5, 5}, Duration: 3, Ease: tweenEase,
			},
		})
	}
	for _, e := range entries {
		if err := tl.AddEntry(e); err != nil {
			return nil, err
		}
	}

	if _, err := c.waver.Choreograph(c.partition, c.scene.Wave, tl); err != nil {
		return nil, err
	}
	return tl, nil
}
