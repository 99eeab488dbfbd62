package input

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestScrollAccumulatesAndClamps(t *testing.T) {
	st := NewScrollTracker(WithSteps(4))

	assert.False(t, st.Scroll(1), "scrolling up at the top does nothing")
	assert.True(t, st.Scroll(-1))
	assert.Equal(t, float32(0.25), st.Progress())

	st.Scroll(-10)
	assert.Equal(t, float32(1), st.Progress())
	assert.False(t, st.Scroll(-1))

	st.Scroll(2)
	assert.Equal(t, float32(0.5), st.Progress())
}

func TestScrollLock(t *testing.T) {
	st := NewScrollTracker()
	st.Lock()
	assert.True(t, st.Locked())
	assert.False(t, st.Scroll(-5))
	assert.Equal(t, float32(0), st.Progress())

	assert.True(t, st.SetProgress(0.4), "SetProgress ignores the lock")

	st.Unlock()
	assert.False(t, st.Locked())
	assert.True(t, st.Scroll(-2))
	assert.InDelta(t, 0.5, st.Progress(), 1e-6)
}

func TestConsumeReportsChangesOnce(t *testing.T) {
	st := NewScrollTracker(WithInitialProgress(0.3))
	p, changed := st.Consume()
	assert.Equal(t, float32(0.3), p)
	assert.False(t, changed)

	st.SetProgress(0.6)
	st.SetProgress(0.7)
	p, changed = st.Consume()
	assert.Equal(t, float32(0.7), p)
	assert.True(t, changed)

	_, changed = st.Consume()
	assert.False(t, changed)

	assert.False(t, st.SetProgress(0.7))
	assert.True(t, st.SetProgress(float32(math.NaN())))
	assert.Equal(t, float32(0), st.Progress())
}

func TestWithStepsIgnoresInvalid(t *testing.T) {
	st := NewScrollTracker(WithSteps(0))
	st.Scroll(-1)
	assert.Equal(t, float32(0.05), st.Progress())
}

func TestNormalizePointer(t *testing.T) {
	tests := []struct {
		name          string
		x, y          float64
		width, height int
		want          mgl32.Vec2
	}{
		{"centre", 640, 360, 1280, 720, mgl32.Vec2{0.5, 0.5}},
		{"top left", 0, 0, 1280, 720, mgl32.Vec2{0, 0}},
		{"bottom right", 1280, 720, 1280, 720, mgl32.Vec2{1, 1}},
		{"outside", -50, 900, 1280, 720, mgl32.Vec2{0, 1}},
		{"empty viewport", 10, 10, 0, 0, mgl32.Vec2{0.5, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePointer(tt.x, tt.y, tt.width, tt.height))
		})
	}
}

func TestVariantKey(t *testing.T) {
	tests := []struct {
		name   string
		key    uint32
		cur    int
		want   int
		wantOK bool
	}{
		{"digit", Key2, 0, 1, true},
		{"digit past count", Key9, 0, 0, false},
		{"right wraps", KeyRight, 3, 0, true},
		{"left wraps", KeyLeft, 0, 3, true},
		{"unmapped", 'Q', 1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := VariantKey(tt.key, tt.cur, 4)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}

	_, ok := VariantKey(Key1, 0, 0)
	assert.False(t, ok)
}

func TestLockHook(t *testing.T) {
	st := NewScrollTracker()
	hook := LockHook(st)
	hook(true)
	assert.True(t, st.Locked())
	hook(false)
	assert.False(t, st.Locked())
}
