// package choreographer composes the hero scene: an autonomous intro, then a scroll-bound
// timeline carrying the keyboard motion and the key wave, with a pointer-following camera
// throughout. Reduced motion keeps every handle where it was.
package choreographer

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/Carmen-Shannon/oxy-hero/engine/camera"
	"github.com/Carmen-Shannon/oxy-hero/engine/easing"
	"github.com/Carmen-Shannon/oxy-hero/engine/layout"
	"github.com/Carmen-Shannon/oxy-hero/engine/node"
	"github.com/Carmen-Shannon/oxy-hero/engine/timeline"
	"github.com/Carmen-Shannon/oxy-hero/engine/wave"
	"github.com/go-gl/mathgl/mgl32"
)

// lagEpsilon is the distance below which lagged scroll progress snaps to the raw value.
const lagEpsilon = 1e-4

// Choreographer owns the scene's phases. It is driven from a single goroutine:
// Scroll on every scroll change and Frame once per rendered frame.
type Choreographer interface {
	// Start mounts the scene. With reduced motion the scene stays static; otherwise the
	// intro starts, engaging the scroll lock if the page is at the top. Later calls do nothing.
	//
	// Parameters:
	//   - progress: the scroll progress at mount time
	Start(progress float32)

	// Scroll records a new raw scroll progress, clamped to [0, 1]. A changed value during
	// the intro aborts it and hands the current transforms to the scroll timeline.
	//
	// Parameters:
	//   - progress: normalized scroll progress
	Scroll(progress float32)

	// Frame advances the active phase by dt seconds and returns this frame's camera pose.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous frame
	//   - pointer: normalized pointer offset in [0, 1]^2
	//
	// Returns:
	//   - camera.Pose: the camera pose for this frame
	Frame(dt float32, pointer mgl32.Vec2) camera.Pose

	// Phase returns the active phase.
	//
	// Returns:
	//   - Phase: the active phase
	Phase() Phase

	// Progress returns the lagged scroll progress the scroll timeline was last scrubbed to.
	//
	// Returns:
	//   - float32: displayed progress in [0, 1]
	Progress() float32

	// LightIntensity returns the ambient light scale, ramping from 0 to 1 after Start.
	//
	// Returns:
	//   - float32: light intensity in [0, 1]
	LightIntensity() float32

	// Intro returns the intro timeline, or nil before Start or under reduced motion.
	//
	// Returns:
	//   - timeline.Timeline: the intro timeline
	Intro() timeline.Timeline

	// ScrollTimeline returns the scroll-bound timeline, or nil until the intro hands over.
	//
	// Returns:
	//   - timeline.Timeline: the scroll timeline
	ScrollTimeline() timeline.Timeline
}

type choreographer struct {
	scene     Scene
	partition layout.Partition

	reducedMotion bool
	scrubLag      float32
	onScrollLock  func(locked bool)

	partitioner layout.ColumnPartitioner
	waver       wave.Choreographer
	follower    camera.Follower

	phase     Phase
	intro     timeline.Timeline
	scroll    timeline.Timeline
	light     timeline.Timeline
	lightNode node.Node
	locked    bool

	raw       float32
	displayed float32
}

var _ Choreographer = &choreographer{}

// NewChoreographer validates the scene and creates a Choreographer for it. The layout is
// partitioned now, so later frames cannot fail.
//
// Parameters:
//   - scene: the handles and declarations to animate
//   - options: functional options to configure the choreographer
//
// Returns:
//   - Choreographer: the newly created choreographer
//   - error: an error for a missing keyboard, layout.InvalidLayoutError or wave.InvalidConfigError
func NewChoreographer(scene Scene, options ...ChoreographerBuilderOption) (Choreographer, error) {
	c := &choreographer{
		scene:       scene,
		scrubLag:    1,
		partitioner: layout.NewColumnPartitioner(),
		waver:       wave.NewChoreographer(),
		lightNode:   node.NewNode(node.WithName("light")),
	}
	for _, option := range options {
		option(c)
	}
	if c.follower == nil {
		c.follower = camera.NewFollower()
	}

	if scene.Keyboard == nil {
		return nil, errors.New("scene has no keyboard node")
	}
	if err := scene.Wave.Validate(); err != nil {
		return nil, err
	}
	partition, err := c.partitioner.Partition(scene.Objects, scene.Layout)
	if err != nil {
		return nil, err
	}
	c.partition = partition

	c.light = timeline.NewTimeline(timeline.ModeAutonomous, timeline.WithName("light"))
	if err := c.light.AddEntry(timeline.Entry{
		Name:  "light/ramp",
		Start: timeline.At(0.5),
		Keyframe: timeline.Keyframe{
			Target:   c.lightNode,
			Property: node.PropertyPosition,
			Value:    mgl32.Vec3{1, 0, 0},
			Axes:     node.AxisX,
			Duration: 3.5,
			Ease:     easing.EaseInOut,
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to build light ramp: %w", err)
	}
	return c, nil
}

func (c *choreographer) Start(progress float32) {
	if c.phase != PhaseIdle {
		return
	}
	c.raw = clampProgress(progress)

	if c.reducedMotion {
		c.setPhase(PhaseStatic)
		return
	}

	intro, err := c.buildIntro()
	if err != nil {
		log.Printf("[Choreographer] failed to build intro, skipping to scroll: %v", err)
		c.setPhase(PhaseIntro)
		c.enterScroll()
		return
	}
	c.intro = intro
	if c.raw == 0 {
		c.setScrollLock(true)
	}
	c.setPhase(PhaseIntro)
}

func (c *choreographer) Scroll(progress float32) {
	p := clampProgress(progress)
	if p == c.raw {
		return
	}
	c.raw = p
	if c.phase == PhaseIntro {
		log.Printf("[Choreographer] intro aborted at %.2fs", c.intro.Time())
		c.intro.Stop()
		c.enterScroll()
	}
}

func (c *choreographer) Frame(dt float32, pointer mgl32.Vec2) camera.Pose {
	if dt < 0 || math.IsNaN(float64(dt)) {
		dt = 0
	}
	if c.phase != PhaseIdle {
		c.must(c.light.Advance(dt))
	}

	if c.phase == PhaseIntro {
		c.must(c.intro.Advance(dt))
	}
	if c.phase == PhaseScroll {
		c.displayed = c.lagged(dt)
		c.must(c.scroll.ScrubTo(c.displayed))
	}

	return c.follower.Update(pointer, c.reducedMotion)
}

func (c *choreographer) Phase() Phase {
	return c.phase
}

func (c *choreographer) Progress() float32 {
	return c.displayed
}

func (c *choreographer) LightIntensity() float32 {
	return c.lightNode.Position().X()
}

func (c *choreographer) Intro() timeline.Timeline {
	return c.intro
}

func (c *choreographer) ScrollTimeline() timeline.Timeline {
	return c.scroll
}

// enterScroll builds the scroll timeline from the transforms as they are right now and
// makes it the owner of the scene.
func (c *choreographer) enterScroll() {
	if c.phase != PhaseIntro {
		return
	}
	c.setScrollLock(false)

	tl, err := c.buildScroll()
	if err != nil {
		log.Printf("[Choreographer] failed to build scroll timeline: %v", err)
		c.setPhase(PhaseStatic)
		return
	}
	c.scroll = tl
	c.displayed = 0
	log.Printf("[Choreographer] scroll timeline built: %d entries, %.2fs", tl.Len(), tl.TotalDuration())
	c.setPhase(PhaseScroll)
}

// lagged moves the displayed progress toward the raw progress with time constant scrubLag.
func (c *choreographer) lagged(dt float32) float32 {
	if c.scrubLag <= 0 {
		return c.raw
	}
	alpha := float32(1 - math.Exp(-float64(dt/c.scrubLag)))
	next := c.displayed + (c.raw-c.displayed)*alpha
	if mgl32.Abs(c.raw-next) < lagEpsilon {
		return c.raw
	}
	return next
}

func (c *choreographer) setPhase(p Phase) {
	if p == c.phase {
		return
	}
	log.Printf("[Choreographer] phase %s -> %s", c.phase, p)
	c.phase = p
}

func (c *choreographer) setScrollLock(locked bool) {
	if locked == c.locked {
		return
	}
	c.locked = locked
	if c.onScrollLock != nil {
		c.onScrollLock(locked)
	}
}

// must logs an evaluation error. Evaluation only fails on a mode mismatch, which the
// choreographer never produces.
func (c *choreographer) must(err error) {
	if err != nil {
		log.Printf("[Choreographer] evaluation failed: %v", err)
	}
}

func clampProgress(p float32) float32 {
	if math.IsNaN(float64(p)) {
		return 0
	}
	return mgl32.Clamp(p, 0, 1)
}
