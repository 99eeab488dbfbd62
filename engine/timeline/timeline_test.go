package timeline

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-hero/engine/easing"
	"github.com/Carmen-Shannon/oxy-hero/engine/node"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingNode records how many writes reach it.
type countingNode struct {
	node.Node
	sets int
}

func (c *countingNode) Set(p node.Property, v mgl32.Vec3) {
	c.sets++
	c.Node.Set(p, v)
}

func newCounting(opts ...node.NodeBuilderOption) *countingNode {
	return &countingNode{Node: node.NewNode(opts...)}
}

func moveX(target node.Node, name string, x, duration float32, start Anchor) Entry {
	return Entry{
		Name:     name,
		Start:    start,
		Keyframe: Keyframe{Target: target, Property: node.PropertyPosition, Value: mgl32.Vec3{x, 0, 0}, Axes: node.AxisX, Duration: duration, Ease: easing.Linear},
	}
}

func TestAnchoredSequenceDurationAndEvaluate(t *testing.T) {
	a := node.NewNode()
	b := node.NewNode(node.WithPosition(3, 1, 1))
	tl := NewTimeline(ModeAutonomous)

	require.NoError(t, tl.AddEntry(moveX(a, "A", 10, 1, At(0))))
	require.NoError(t, tl.AddEntry(moveX(b, "B", 20, 1, AfterEndOf("A", 0))))

	assert.Equal(t, float32(2), tl.TotalDuration())
	start, end, ok := tl.Window("B")
	require.True(t, ok)
	assert.Equal(t, float32(1), start)
	assert.Equal(t, float32(2), end)

	require.NoError(t, tl.Evaluate(0.5))
	assert.InDelta(t, 5, a.Position().X(), 1e-6)
	assert.Equal(t, mgl32.Vec3{3, 1, 1}, b.Position())

	require.NoError(t, tl.Evaluate(2))
	assert.Equal(t, mgl32.Vec3{10, 0, 0}, a.Position())
	assert.Equal(t, mgl32.Vec3{20, 1, 1}, b.Position())
}

func TestAnchorKinds(t *testing.T) {
	n := node.NewNode()
	tl := NewTimeline(ModeAutonomous)

	require.NoError(t, tl.AddEntry(moveX(n, "first", 1, 2, At(0.5))))
	require.NoError(t, tl.AddEntry(moveX(node.NewNode(), "aligned", 1, 1.8, WithStartOf("", 0))))
	require.NoError(t, tl.AddEntry(moveX(n, "next", 2, 2, Appended(0.5))))
	require.NoError(t, tl.AddEntry(moveX(node.NewNode(), "shifted", 1, 1, WithStartOf("first", 0.25))))

	cases := map[string][2]float32{
		"first":   {0.5, 2.5},
		"aligned": {0.5, 2.3},
		"next":    {3, 5},
		"shifted": {0.75, 1.75},
	}
	for name, want := range cases {
		start, end, ok := tl.Window(name)
		require.True(t, ok, name)
		assert.InDelta(t, want[0], start, 1e-6, name)
		assert.InDelta(t, want[1], end, 1e-6, name)
	}
	assert.InDelta(t, 5, tl.TotalDuration(), 1e-6)
}

func TestInvalidAnchor(t *testing.T) {
	n := node.NewNode()
	tl := NewTimeline(ModeAutonomous)

	err := tl.AddEntry(moveX(n, "orphan", 1, 1, WithStartOf("", 0)))
	var anchorErr InvalidAnchorError
	require.True(t, errors.As(err, &anchorErr))
	assert.Equal(t, "orphan", anchorErr.Entry)

	require.NoError(t, tl.AddEntry(moveX(n, "A", 1, 1, At(0))))
	err = tl.AddEntry(moveX(n, "B", 1, 1, AfterEndOf("later", 0)))
	require.True(t, errors.As(err, &anchorErr))
	assert.Equal(t, "later", anchorErr.Ref)
	assert.Equal(t, 1, tl.Len())
}

func TestUnknownEasingAndNilTarget(t *testing.T) {
	tl := NewTimeline(ModeScrubbed)

	e := moveX(node.NewNode(), "bouncy", 1, 1, At(0))
	e.Ease = "bounce.out"
	err := tl.AddEntry(e)
	var easeErr easing.UnknownEasingError
	require.True(t, errors.As(err, &easeErr))
	assert.Equal(t, "bounce.out", easeErr.Name)

	assert.Error(t, tl.AddEntry(moveX(nil, "nobody", 1, 1, At(0))))
	assert.Equal(t, 0, tl.Len())
}

func TestInvalidMode(t *testing.T) {
	auto := NewTimeline(ModeAutonomous)
	scrub := NewTimeline(ModeScrubbed)
	var modeErr InvalidModeError

	require.True(t, errors.As(auto.ScrubTo(0.5), &modeErr))
	assert.Equal(t, ModeAutonomous, modeErr.Mode)
	assert.Equal(t, "ScrubTo", modeErr.Op)

	require.True(t, errors.As(scrub.Evaluate(1), &modeErr))
	assert.Equal(t, ModeScrubbed, modeErr.Mode)
	require.True(t, errors.As(scrub.Advance(1), &modeErr))
}

func buildScrubbed(t *testing.T) (Timeline, []node.Node) {
	t.Helper()
	keyboard := node.NewNode(node.WithPosition(0.2, -0.5, 1.9), node.WithRotation(1.6, 0.4, 0))
	key := node.NewNode(node.WithPosition(0.1, 0.3, 0))
	group := node.NewNode()
	tl := NewTimeline(ModeScrubbed)

	entries := []Entry{
		{Name: "kb-pos", Start: At(0), Keyframe: Keyframe{Target: keyboard, Property: node.PropertyPosition, Value: mgl32.Vec3{0, -0.5, 2.2}, Duration: 0.5, Ease: easing.EaseOut}},
		{Name: "kb-rot", Start: WithStartOf("", 0), Keyframe: Keyframe{Target: keyboard, Property: node.PropertyRotation, Value: mgl32.Vec3{-6.283, 0, 0}, Duration: 0.5, Ease: easing.EaseOut}},
		{Name: "scale", Start: At(0), Keyframe: Keyframe{Target: group, Property: node.PropertyScale, Value: mgl32.Vec3{5, 5, 5}, Duration: 3, Ease: easing.EaseOut}},
		{Name: "lift", Start: At(1), Keyframe: Keyframe{Target: key, Property: node.PropertyPosition, Value: mgl32.Vec3{0, 0.08, 0}, Axes: node.AxisY, Duration: 0.5, Ease: easing.EaseInOut, Relative: true}},
		{Name: "settle", Start: AfterEndOf("", 0), Keyframe: Keyframe{Target: key, Property: node.PropertyPosition, Value: mgl32.Vec3{0, -0.08, 0}, Axes: node.AxisY, Duration: 0.5, Ease: easing.EaseInOut, Relative: true}},
	}
	for _, e := range entries {
		require.NoError(t, tl.AddEntry(e))
	}
	return tl, []node.Node{keyboard, key, group}
}

type snapshot [][3]mgl32.Vec3

func capture(nodes []node.Node) snapshot {
	s := make(snapshot, len(nodes))
	for i, n := range nodes {
		s[i] = [3]mgl32.Vec3{n.Position(), n.Rotation(), n.Scale()}
	}
	return s
}

func TestScrubIsReversible(t *testing.T) {
	tl, nodes := buildScrubbed(t)
	initial := capture(nodes)

	progress := []float32{0.1, 0.37, 0.5, 0.9}
	states := make([]snapshot, len(progress))
	for i, p := range progress {
		require.NoError(t, tl.ScrubTo(p))
		states[i] = capture(nodes)
	}
	require.NoError(t, tl.ScrubTo(1))
	for i := len(progress) - 1; i >= 0; i-- {
		require.NoError(t, tl.ScrubTo(progress[i]))
		assert.Equal(t, states[i], capture(nodes), "progress %v", progress[i])
	}

	require.NoError(t, tl.ScrubTo(0))
	assert.Equal(t, initial, capture(nodes))
}

func TestScrubRestoresBaselineBeforeEntry(t *testing.T) {
	tl, nodes := buildScrubbed(t)
	key := nodes[1]

	require.NoError(t, tl.ScrubTo(1.25/3))
	assert.Greater(t, key.Position().Y(), float32(0.3))

	require.NoError(t, tl.ScrubTo(0.2))
	assert.Equal(t, mgl32.Vec3{0.1, 0.3, 0}, key.Position())

	require.NoError(t, tl.ScrubTo(1))
	assert.InDelta(t, 0.3, key.Position().Y(), 1e-6)
	assert.Equal(t, float32(0.1), key.Position().X())
}

func TestScrubRepeatIsNoOp(t *testing.T) {
	n := newCounting()
	tl := NewTimeline(ModeScrubbed)
	require.NoError(t, tl.AddEntry(moveX(n, "A", 1, 1, At(0))))

	require.NoError(t, tl.ScrubTo(0.5))
	assert.Equal(t, 1, n.sets)
	require.NoError(t, tl.ScrubTo(0.5))
	assert.Equal(t, 1, n.sets)
	require.NoError(t, tl.ScrubTo(2))
	require.NoError(t, tl.ScrubTo(1))
	assert.Equal(t, 2, n.sets)
	assert.Equal(t, float32(1), tl.Progress())
}

func TestAdvanceFiresCallbacksOnce(t *testing.T) {
	n := node.NewNode()
	var order []string
	tl := NewTimeline(ModeAutonomous, WithOnComplete(func() { order = append(order, "timeline") }))

	up := moveX(n, "up", 1, 0.4, At(0))
	up.OnComplete = func() { order = append(order, "up") }
	down := moveX(n, "down", 0, 0.6, AfterEndOf("up", 0))
	down.OnComplete = func() { order = append(order, "down") }
	require.NoError(t, tl.AddEntry(up))
	require.NoError(t, tl.AddEntry(down))

	require.NoError(t, tl.Advance(0.2))
	assert.Empty(t, order)
	require.NoError(t, tl.Advance(0.3))
	assert.Equal(t, []string{"up"}, order)
	require.NoError(t, tl.Advance(1))
	assert.Equal(t, []string{"up", "down", "timeline"}, order)
	assert.True(t, tl.Done())

	require.NoError(t, tl.Evaluate(0))
	require.NoError(t, tl.Evaluate(5))
	assert.Equal(t, []string{"up", "down", "timeline"}, order)
}

func TestStopFreezes(t *testing.T) {
	n := node.NewNode()
	tl := NewTimeline(ModeAutonomous)
	require.NoError(t, tl.AddEntry(moveX(n, "A", 10, 1, At(0))))

	require.NoError(t, tl.Advance(0.5))
	tl.Stop()
	require.NoError(t, tl.Advance(0.5))
	require.NoError(t, tl.Evaluate(1))

	assert.True(t, tl.Stopped())
	assert.False(t, tl.Done())
	assert.InDelta(t, 5, n.Position().X(), 1e-6)
}

func TestBaselineCapturedAtRegistration(t *testing.T) {
	n := node.NewNode(node.WithPosition(1, 0, 0))
	tl := NewTimeline(ModeScrubbed)
	require.NoError(t, tl.AddEntry(moveX(n, "A", 3, 1, At(1))))

	// A later write by another owner does not move the baseline.
	n.SetPosition(mgl32.Vec3{100, 0, 0})
	require.NoError(t, tl.ScrubTo(0))
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, n.Position())
}

func TestDurationCacheRefreshes(t *testing.T) {
	tl := NewTimeline(ModeAutonomous)
	assert.Equal(t, float32(0), tl.TotalDuration())

	require.NoError(t, tl.AddEntry(moveX(node.NewNode(), "A", 1, 1, At(0))))
	assert.Equal(t, float32(1), tl.TotalDuration())

	e := moveX(node.NewNode(), "B", 1, -2, At(3))
	require.NoError(t, tl.AddEntry(e))
	assert.Equal(t, float32(3), tl.TotalDuration())
}
