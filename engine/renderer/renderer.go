// package renderer presents the hero scene to a window surface. A frame is a single clear pass
// whose colour follows the active keycap variant and the key light intensity.
package renderer

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-hero/engine/window"
	"github.com/go-gl/mathgl/mgl64"
)

// Renderer defines the interface for presenting frames.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when the window framebuffer is resized.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode changes how frames are delivered to the display.
	// The surface is reconfigured at its current size.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the colour of the next frames.
	//
	// Parameters:
	//   - color: RGBA in [0, 1]
	SetClearColor(color [4]float64)

	// BeginFrame acquires the next surface image and opens the frame pass.
	//
	// Returns:
	//   - error: error if no surface image could be acquired
	BeginFrame() error

	// EndFrame closes and submits the frame pass.
	EndFrame()

	// Present shows the frame opened by BeginFrame.
	Present()

	// Release frees the GPU resources. The Renderer must not be used afterwards.
	Release()
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	width  int
	height int

	forceFallbackAdapter bool
	presentMode          PresentMode
	msaa                 MSAASampleCount
	clearColor           [4]float64
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer for the window's surface and configures it at the
// window size. Panics if no GPU adapter or device is available.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - w: the window to present to
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(backendType RendererBackendType, w window.Window, options ...RendererBuilderOption) Renderer {
	r := newRenderer(backendType, options...)

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(w.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa)
	}

	r.backend.SetPresentMode(r.presentMode)
	r.backend.SetClearColor(r.clearColor)
	r.Resize(w.Width(), w.Height())
	return r
}

// newRenderer applies the options over the defaults without touching the GPU.
func newRenderer(backendType RendererBackendType, options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		presentMode: PresentModeVSync,
		msaa:        MSAAOff,
		clearColor:  [4]float64{0, 0, 0, 1},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = width, height
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presentMode = mode
	r.backend.SetPresentMode(mode)
	r.backend.ConfigureSurface(r.width, r.height)
}

func (r *renderer) SetClearColor(color [4]float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if color == r.clearColor {
		return
	}
	r.clearColor = color
	r.backend.SetClearColor(color)
}

func (r *renderer) BeginFrame() error {
	return r.backend.BeginFrame()
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

func (r *renderer) Release() {
	r.backend.Release()
}

// Tint scales a base colour by a light intensity. Intensity is clamped to [0, 1] and an
// ambient floor keeps the scene from going fully black before the light comes up.
//
// Parameters:
//   - base: RGB in [0, 1]
//   - intensity: key light intensity
//   - ambient: fraction of the base colour visible with the light off
//
// Returns:
//   - [4]float64: opaque RGBA clear colour
func Tint(base [3]float64, intensity float32, ambient float64) [4]float64 {
	k := ambient + (1-ambient)*mgl64.Clamp(float64(intensity), 0, 1)
	return [4]float64{
		mgl64.Clamp(base[0]*k, 0, 1),
		mgl64.Clamp(base[1]*k, 0, 1),
		mgl64.Clamp(base[2]*k, 0, 1),
		1,
	}
}
