package engine

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-hero/engine/camera"
	"github.com/Carmen-Shannon/oxy-hero/engine/choreographer"
	"github.com/Carmen-Shannon/oxy-hero/engine/config"
	"github.com/Carmen-Shannon/oxy-hero/engine/input"
	"github.com/Carmen-Shannon/oxy-hero/engine/profiler"
	"github.com/Carmen-Shannon/oxy-hero/engine/renderer"
	"github.com/Carmen-Shannon/oxy-hero/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// maxFrameDelta caps the step after a stall so a hidden window does not fast-forward the scene.
const maxFrameDelta = 0.25

// engine implements the Engine interface.
// Every frame runs on the window's message loop goroutine.
type engine struct {
	window        window.Window
	renderer      renderer.Renderer
	choreographer choreographer.Choreographer
	hop           choreographer.ColorHop
	tracker       input.ScrollTracker
	variants      []config.Variant

	pointer mgl32.Vec2
	ambient float64

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameCallback    func(deltaTime float32, pose camera.Pose)
	renderFrameLimit time.Duration
	lastFrame        time.Time

	startOnce sync.Once
	quitOnce  sync.Once
}

// Engine is the main entry point of the hero scene.
// It feeds window input to the scroll tracker and the choreographer, advances them once per
// frame and presents the result.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, or nil when running headless
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetFrameCallback registers the function called at the end of each frame.
	//
	// Parameters:
	//   - callback: function receiving the frame delta in seconds and the camera pose
	SetFrameCallback(callback func(deltaTime float32, pose camera.Pose))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Start hands the current scroll position to the choreographer, beginning the intro.
	// Only the first call has an effect. Run calls Start itself.
	Start()

	// Frame advances the scene by one frame: pending scroll progress is forwarded, the colour
	// hop and the choreographer are stepped and the frame is presented.
	//
	// Parameters:
	//   - dt: seconds since the previous frame
	//
	// Returns:
	//   - camera.Pose: the camera pose for this frame
	Frame(dt float32) camera.Pose

	// Pointer returns the last normalized pointer position.
	//
	// Returns:
	//   - mgl32.Vec2: the pointer offset in [0, 1]^2
	Pointer() mgl32.Vec2

	// Run starts the scene and blocks until the window closes.
	Run()

	// Quit closes the window and releases the renderer.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine with the provided options and registers its window callbacks.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		pointer: mgl32.Vec2{0.5, 0.5},
		ambient: 0.25,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.tracker == nil {
		e.tracker = input.NewScrollTracker()
	}
	e.profiler = profiler.NewProfiler(profiler.WithStatus(e.status))

	if e.window != nil {
		e.window.SetResizeCallback(e.handleResize)
		e.window.SetScrollCallback(e.handleScroll)
		e.window.SetPointerMoveCallback(e.handlePointer)
		e.window.SetKeyDownCallback(e.handleKey)
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetFrameCallback(callback func(deltaTime float32, pose camera.Pose)) {
	e.frameCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) Start() {
	e.startOnce.Do(func() {
		if e.choreographer != nil {
			e.choreographer.Start(e.tracker.Progress())
		}
	})
}

func (e *engine) Frame(dt float32) camera.Pose {
	if progress, changed := e.tracker.Consume(); changed && e.choreographer != nil {
		e.choreographer.Scroll(progress)
	}
	if e.hop != nil {
		e.hop.Frame(dt)
	}

	var pose camera.Pose
	intensity := float32(1)
	if e.choreographer != nil {
		pose = e.choreographer.Frame(dt, e.pointer)
		intensity = e.choreographer.LightIntensity()
	}

	if e.renderer != nil {
		e.renderer.SetClearColor(renderer.Tint(e.variantColor(), intensity, e.ambient))
		if err := e.renderer.BeginFrame(); err == nil {
			e.renderer.EndFrame()
			e.renderer.Present()
		}
	}

	if e.frameCallback != nil {
		e.frameCallback(dt, pose)
	}
	if e.profilingEnabled {
		e.profiler.Tick()
	}
	return pose
}

func (e *engine) Pointer() mgl32.Vec2 {
	return e.pointer
}

func (e *engine) Run() {
	if e.window == nil {
		log.Printf("[Engine] no window to run")
		return
	}
	e.Start()
	e.lastFrame = time.Now()
	e.window.SetUpdateCallback(e.update)
	e.window.ProcessMessages()
	e.Quit()
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		if e.renderer != nil {
			e.renderer.Release()
		}
		if e.window != nil {
			if err := e.window.Close(); err != nil {
				log.Printf("[Engine] failed to close window: %v", err)
			}
		}
	})
}

// update runs one frame from the window loop with a wall-clock delta.
// A panic inside the frame is logged and shuts the engine down.
func (e *engine) update() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] frame recovered from panic: %v", r)
			e.Quit()
		}
	}()

	now := time.Now()
	dt := float32(now.Sub(e.lastFrame).Seconds())
	e.lastFrame = now
	e.Frame(min(dt, maxFrameDelta))

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(now); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

func (e *engine) handleResize(width, height int) {
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
}

func (e *engine) handleScroll(delta float32) {
	e.tracker.Scroll(delta)
}

func (e *engine) handlePointer(x, y float64) {
	e.pointer = input.NormalizePointer(x, y, e.window.Width(), e.window.Height())
}

func (e *engine) handleKey(keyCode uint32) {
	if e.hop == nil {
		return
	}
	next, ok := input.VariantKey(keyCode, e.variantIndex(), len(e.variants))
	if !ok {
		return
	}
	if e.hop.Change(e.variants[next].ID) {
		log.Printf("[Engine] variant %s requested", e.variants[next].ID)
	}
}

// variantIndex returns the index of the variant the hop is showing, or 0.
func (e *engine) variantIndex() int {
	if e.hop == nil {
		return 0
	}
	for i, v := range e.variants {
		if v.ID == e.hop.Variant() {
			return i
		}
	}
	return 0
}

func (e *engine) variantColor() [3]float64 {
	if len(e.variants) == 0 {
		return [3]float64{1, 1, 1}
	}
	return e.variants[e.variantIndex()].Color
}

func (e *engine) status() string {
	if e.choreographer == nil {
		return fmt.Sprintf("progress: %.3f", e.tracker.Progress())
	}
	return fmt.Sprintf("phase: %s | progress: %.3f | light: %.2f",
		e.choreographer.Phase(), e.choreographer.Progress(), e.choreographer.LightIntensity())
}
