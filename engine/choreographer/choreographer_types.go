package choreographer

import (
	"github.com/Carmen-Shannon/oxy-hero/engine/layout"
	"github.com/Carmen-Shannon/oxy-hero/engine/node"
	"github.com/Carmen-Shannon/oxy-hero/engine/wave"
)

// Phase identifies which component currently owns the scene's transforms.
type Phase int

const (
	// PhaseIdle is the state before Start.
	PhaseIdle Phase = iota
	// PhaseStatic means reduced motion: no timeline ever touches the scene.
	PhaseStatic
	// PhaseIntro means the autonomous entrance timeline is playing.
	PhaseIntro
	// PhaseScroll means the scroll-bound timeline is scrubbed by scroll progress.
	PhaseScroll
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseStatic:
		return "static"
	case PhaseIntro:
		return "intro"
	case PhaseScroll:
		return "scroll"
	}
	return "unknown"
}

// Scene is the set of node handles and declarations a Choreographer animates.
// The handles are owned by the caller and are never replaced.
type Scene struct {
	// Keyboard is the keyboard group moved by the intro and the scroll timeline. Required.
	Keyboard node.Node
	// Keycaps is the floating keycap group scaled up while scrolling. Optional.
	Keycaps node.Node
	// Objects holds the keycaps and switches the wave ripples through, keyed by label.
	Objects map[string]node.Node
	// Layout declares the keyboard columns left to right.
	Layout layout.Layout
	// Wave shapes the ripple.
	Wave wave.Config
}
