package choreographer

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-hero/engine/camera"
	"github.com/Carmen-Shannon/oxy-hero/engine/layout"
	"github.com/Carmen-Shannon/oxy-hero/engine/node"
	"github.com/Carmen-Shannon/oxy-hero/engine/wave"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	scene   Scene
	locks   []bool
	objects map[string]node.Node
}

func newFixture() *fixture {
	objects := map[string]node.Node{
		"a":  node.NewNode(node.WithName("a"), node.WithPosition(-0.1, 0.02, 0)),
		"b":  node.NewNode(node.WithName("b"), node.WithPosition(0.1, 0.02, 0)),
		"sw": node.NewNode(node.WithName("sw"), node.WithPosition(0, 0, 0)),
	}
	return &fixture{
		objects: objects,
		scene: Scene{
			Keyboard: node.NewNode(node.WithName("keyboard")),
			Keycaps:  node.NewNode(node.WithName("keycaps")),
			Objects:  objects,
			Layout:   layout.Layout{{"a"}, {"b"}},
			Wave:     wave.DefaultConfig(),
		},
	}
}

func (f *fixture) build(t *testing.T, options ...ChoreographerBuilderOption) Choreographer {
	t.Helper()
	options = append([]ChoreographerBuilderOption{WithScrollLock(func(locked bool) {
		f.locks = append(f.locks, locked)
	})}, options...)
	c, err := NewChoreographer(f.scene, options...)
	require.NoError(t, err)
	return c
}

func run(c Choreographer, seconds, step float32) {
	for elapsed := float32(0); elapsed < seconds; elapsed += step {
		c.Frame(step, mgl32.Vec2{0.5, 0.5})
	}
}

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d of %v", i, got)
	}
}

func TestNewChoreographerValidates(t *testing.T) {
	f := newFixture()
	f.scene.Keyboard = nil
	_, err := NewChoreographer(f.scene)
	assert.Error(t, err)

	f = newFixture()
	f.scene.Layout = layout.Layout{}
	_, err = NewChoreographer(f.scene)
	var layoutErr layout.InvalidLayoutError
	assert.True(t, errors.As(err, &layoutErr))

	f = newFixture()
	f.scene.Wave.SwitchLiftFraction = 2
	_, err = NewChoreographer(f.scene)
	var cfgErr wave.InvalidConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestReducedMotionIsStatic(t *testing.T) {
	f := newFixture()
	c := f.build(t, WithReducedMotion(true))
	base := camera.NewFollower().Base()

	c.Start(0)
	assert.Equal(t, PhaseStatic, c.Phase())
	assert.Nil(t, c.Intro())
	assert.Empty(t, f.locks)

	c.Scroll(0.7)
	for _, p := range []mgl32.Vec2{{0, 0}, {1, 1}, {0.2, 0.9}} {
		assert.Equal(t, base, c.Frame(0.5, p))
	}
	run(c, 5, 0.5)

	assert.Nil(t, c.ScrollTimeline())
	assert.Equal(t, mgl32.Vec3{}, f.scene.Keyboard.Position())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, f.scene.Keycaps.Scale())
	assert.Equal(t, float32(0.02), f.objects["a"].Position().Y())
	assert.InDelta(t, 1, c.LightIntensity(), 1e-6)
}

func TestIntroPlaysThenHandsOver(t *testing.T) {
	f := newFixture()
	c := f.build(t)

	c.Start(0)
	require.Equal(t, PhaseIntro, c.Phase())
	assert.Equal(t, []bool{true}, f.locks)
	assert.InDelta(t, 4.5, c.Intro().TotalDuration(), 1e-6)

	c.Start(0)
	assert.Equal(t, []bool{true}, f.locks, "second Start is ignored")

	run(c, 5, 0.1)
	require.Equal(t, PhaseScroll, c.Phase())
	assert.Equal(t, []bool{true, false}, f.locks)
	assertVec(t, mgl32.Vec3{0.2, -0.5, 1.9}, f.scene.Keyboard.Position())
	assertVec(t, mgl32.Vec3{1.6, 0.4, 0}, f.scene.Keyboard.Rotation())
}

func TestScrollTimelineContents(t *testing.T) {
	f := newFixture()
	c := f.build(t)
	c.Start(0)
	run(c, 5, 0.1)

	tl := c.ScrollTimeline()
	require.NotNil(t, tl)
	start, end, ok := tl.Window(ScrollRise)
	require.True(t, ok)
	assert.Equal(t, float32(0), start)
	assert.Equal(t, float32(0.5), end)
	_, end, ok = tl.Window(ScrollKeycapGrow)
	require.True(t, ok)
	assert.Equal(t, float32(3), end)

	// Two key columns and one switch, each with a lift and a settle.
	assert.Equal(t, 3+6, tl.Len())
	assert.InDelta(t, 3.5, tl.TotalDuration(), 1e-6)
}

func TestScrollTweensEaseQuadratically(t *testing.T) {
	f := newFixture()
	c := f.build(t, WithScrubLag(0))
	c.Start(0)
	run(c, 5, 0.1)
	require.Equal(t, PhaseScroll, c.Phase())

	// Halfway through the keycap growth: 1 + 4 * (1 - 0.5^2).
	c.Scroll(1.5 / 3.5)
	c.Frame(0.016, mgl32.Vec2{0.5, 0.5})
	assert.InDelta(t, 4, f.scene.Keycaps.Scale().X(), 1e-4)
}

func TestScrollTimelineWithoutKeycaps(t *testing.T) {
	f := newFixture()
	f.scene.Keycaps = nil
	c := f.build(t)
	c.Start(0)
	run(c, 5, 0.1)

	_, _, ok := c.ScrollTimeline().Window(ScrollKeycapGrow)
	assert.False(t, ok)
}

func TestScrollScrubsBothWays(t *testing.T) {
	f := newFixture()
	c := f.build(t, WithScrubLag(0))
	c.Start(0)
	run(c, 5, 0.1)
	require.Equal(t, PhaseScroll, c.Phase())
	handoff := f.scene.Keyboard.Position()

	c.Scroll(1)
	c.Frame(0.016, mgl32.Vec2{0.5, 0.5})
	assert.Equal(t, float32(1), c.Progress())
	assertVec(t, mgl32.Vec3{0, -0.5, 2.2}, f.scene.Keyboard.Position())
	assertVec(t, mgl32.Vec3{-2 * math.Pi, 0, 0}, f.scene.Keyboard.Rotation())
	assertVec(t, mgl32.Vec3{5, 5, 5}, f.scene.Keycaps.Scale())
	assert.InDelta(t, 0.02, f.objects["a"].Position().Y(), 1e-6)

	c.Scroll(0.75)
	c.Frame(0.016, mgl32.Vec2{0.5, 0.5})
	mid := f.objects["b"].Position().Y()
	assert.Greater(t, mid, float32(0.02), "the second column is mid-lift")

	c.Scroll(0)
	c.Frame(0.016, mgl32.Vec2{0.5, 0.5})
	assert.Equal(t, handoff, f.scene.Keyboard.Position())
	assert.Equal(t, float32(0.02), f.objects["b"].Position().Y())

	c.Scroll(0.75)
	c.Frame(0.016, mgl32.Vec2{0.5, 0.5})
	assert.Equal(t, mid, f.objects["b"].Position().Y())
}

func TestScrubLagEasesTowardScroll(t *testing.T) {
	f := newFixture()
	c := f.build(t, WithScrubLag(1))
	c.Start(0)
	run(c, 5, 0.1)

	c.Scroll(1)
	c.Frame(1, mgl32.Vec2{0.5, 0.5})
	assert.InDelta(t, 1-math.Exp(-1), c.Progress(), 1e-5)

	run(c, 20, 0.5)
	assert.Equal(t, float32(1), c.Progress())
}

func TestScrollDuringIntroAbortsWithoutJump(t *testing.T) {
	f := newFixture()
	c := f.build(t)
	c.Start(0)
	c.Frame(1, mgl32.Vec2{0.5, 0.5})
	midFlight := f.scene.Keyboard.Position()
	require.NotEqual(t, mgl32.Vec3{}, midFlight)

	c.Scroll(0.5)
	assert.Equal(t, PhaseScroll, c.Phase())
	assert.True(t, c.Intro().Stopped())
	assert.Equal(t, []bool{true, false}, f.locks)

	c.Frame(0, mgl32.Vec2{0.5, 0.5})
	assert.Equal(t, midFlight, f.scene.Keyboard.Position())

	c.Frame(5, mgl32.Vec2{0.5, 0.5})
	assert.Greater(t, c.Progress(), float32(0.49))
}

func TestStartAwayFromTopSkipsLock(t *testing.T) {
	f := newFixture()
	c := f.build(t)
	c.Start(0.3)
	assert.Equal(t, PhaseIntro, c.Phase())
	assert.Empty(t, f.locks)

	c.Scroll(0.3)
	assert.Equal(t, PhaseIntro, c.Phase(), "an unchanged progress keeps the intro running")
}

func TestLightRamp(t *testing.T) {
	f := newFixture()
	c := f.build(t)
	c.Frame(1, mgl32.Vec2{0.5, 0.5})
	assert.Equal(t, float32(0), c.LightIntensity(), "the ramp waits for Start")

	c.Start(0)
	c.Frame(0.5, mgl32.Vec2{0.5, 0.5})
	assert.Equal(t, float32(0), c.LightIntensity())
	c.Frame(1.75, mgl32.Vec2{0.5, 0.5})
	assert.InDelta(t, 0.5, c.LightIntensity(), 1e-6)
	c.Frame(1.75, mgl32.Vec2{0.5, 0.5})
	assert.InDelta(t, 1, c.LightIntensity(), 1e-6)
}

func TestFrameFollowsPointer(t *testing.T) {
	f := newFixture()
	follower := camera.NewFollower()
	c := f.build(t, WithFollower(follower))
	c.Start(0)

	pose := c.Frame(0.016, mgl32.Vec2{1, 0.5})
	assert.InDelta(t, 0.015, pose.Position.X(), 1e-6)
	assert.Equal(t, follower.Held(), pose.Position)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "static", PhaseStatic.String())
	assert.Equal(t, "intro", PhaseIntro.String())
	assert.Equal(t, "scroll", PhaseScroll.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
