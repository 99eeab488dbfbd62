package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestTickLogsOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithClock(clock.now), WithStatus(func() string { return "phase scroll" }))

	for i := 0; i < 59; i++ {
		clock.advance(time.Second / 60)
		assert.False(t, p.Tick())
	}
	clock.advance(time.Second / 60)
	assert.True(t, p.Tick())

	s := p.Last()
	assert.InDelta(t, 60, s.FPS, 1)
	assert.Equal(t, "phase scroll", s.Status)
	assert.Contains(t, s.String(), "| phase scroll")

	clock.advance(time.Millisecond)
	assert.False(t, p.Tick(), "the frame count restarts after a sample")
}

func TestWithInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithClock(clock.now), WithInterval(100*time.Millisecond), WithInterval(0))

	clock.advance(100 * time.Millisecond)
	assert.True(t, p.Tick())
	assert.InDelta(t, 10, p.Last().FPS, 1e-9)
	assert.NotContains(t, p.Last().String(), " | phase")
}
