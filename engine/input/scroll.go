// package input turns raw window events into the normalized signals the scene consumes:
// a scroll progress in [0, 1] and a pointer offset in [0, 1]^2.
package input

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// ScrollTracker accumulates scroll wheel notches into a page progress.
// A full page scroll takes a fixed number of notches. While locked, wheel input is ignored.
type ScrollTracker interface {
	// Scroll applies a wheel delta. Positive deltas scroll up, toward progress 0.
	//
	// Parameters:
	//   - delta: wheel notches, positive = up
	//
	// Returns:
	//   - bool: true if the progress changed
	Scroll(delta float32) bool

	// SetProgress moves the page directly, clamped to [0, 1]. Lock is not consulted.
	//
	// Parameters:
	//   - progress: normalized page position
	//
	// Returns:
	//   - bool: true if the progress changed
	SetProgress(progress float32) bool

	// Progress returns the current page position.
	//
	// Returns:
	//   - float32: normalized page position in [0, 1]
	Progress() float32

	// Consume returns the current progress and whether it changed since the last Consume.
	//
	// Returns:
	//   - float32: normalized page position in [0, 1]
	//   - bool: true if the progress changed
	Consume() (float32, bool)

	// Lock stops wheel input from moving the page.
	Lock()

	// Unlock lets wheel input move the page again.
	Unlock()

	// Locked returns whether wheel input is currently ignored.
	//
	// Returns:
	//   - bool: true if locked
	Locked() bool
}

type scrollTracker struct {
	mu *sync.Mutex

	steps    float32
	progress float32
	locked   bool
	dirty    bool
}

var _ ScrollTracker = &scrollTracker{}

// NewScrollTracker creates a ScrollTracker at progress 0 needing 20 notches for a full page.
//
// Parameters:
//   - options: functional options to configure the tracker
//
// Returns:
//   - ScrollTracker: the newly created tracker
func NewScrollTracker(options ...ScrollTrackerBuilderOption) ScrollTracker {
	st := &scrollTracker{
		mu:    &sync.Mutex{},
		steps: 20,
	}
	for _, option := range options {
		option(st)
	}
	return st
}

func (st *scrollTracker) Scroll(delta float32) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.locked {
		return false
	}
	return st.set(st.progress - delta/st.steps)
}

func (st *scrollTracker) SetProgress(progress float32) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.set(progress)
}

func (st *scrollTracker) Progress() float32 {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.progress
}

func (st *scrollTracker) Consume() (float32, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	changed := st.dirty
	st.dirty = false
	return st.progress, changed
}

func (st *scrollTracker) Lock() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.locked = true
}

func (st *scrollTracker) Unlock() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.locked = false
}

func (st *scrollTracker) Locked() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.locked
}

// set must be called with mu held.
func (st *scrollTracker) set(progress float32) bool {
	p := mgl32.Clamp(progress, 0, 1)
	if p != p {
		p = 0
	}
	if p == st.progress {
		return false
	}
	st.progress = p
	st.dirty = true
	return true
}

// LockHook adapts a tracker to the scroll lock hook of a scene choreographer.
//
// Parameters:
//   - st: the tracker to lock and unlock
//
// Returns:
//   - func(locked bool): locks st on true, unlocks it on false
func LockHook(st ScrollTracker) func(locked bool) {
	return func(locked bool) {
		if locked {
			st.Lock()
		} else {
			st.Unlock()
		}
	}
}
