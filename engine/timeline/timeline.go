package timeline

import (
	"fmt"
	"math"
	"sort"

	"github.com/Carmen-Shannon/oxy-hero/engine/easing"
	"github.com/Carmen-Shannon/oxy-hero/engine/node"
	"github.com/go-gl/mathgl/mgl32"
)

// Timeline is an ordered composition of transform keyframes with resolved start times.
// Every entry snapshots its from/to values when it is added, so evaluation depends only
// on the playhead position: any sequence of Evaluate or ScrubTo calls reproduces the same
// node state for the same time, in both directions.
type Timeline interface {
	// Name returns the timeline's label used in logs.
	Name() string

	// Mode returns the playback mode fixed at construction.
	//
	// Returns:
	//   - Mode: autonomous or scrubbed
	Mode() Mode

	// AddEntry appends an entry. Anchors may only reference entries already added.
	// The entry's baseline is captured now: the target's current value for the first
	// entry on a (node, property) track, otherwise the previous entry's target value.
	//
	// Parameters:
	//   - e: the entry to append
	//
	// Returns:
	//   - error: InvalidAnchorError, a wrapped easing.UnknownEasingError, or an error for a nil target
	AddEntry(e Entry) error

	// Len returns the number of entries.
	//
	// Returns:
	//   - int: entry count
	Len() int

	// TotalDuration returns max(start + duration) across all entries, never negative.
	//
	// Returns:
	//   - float32: total duration in seconds
	TotalDuration() float32

	// Window returns the resolved time window of a named entry.
	//
	// Parameters:
	//   - name: the entry name
	//
	// Returns:
	//   - start, end: the entry's window in seconds
	//   - ok: false if no entry has that name
	Window(name string) (start, end float32, ok bool)

	// Evaluate positions an autonomous timeline at time t and writes every track.
	// Re-evaluating the last observed time is a no-op.
	//
	// Parameters:
	//   - t: timeline time in seconds
	//
	// Returns:
	//   - error: InvalidModeError on a scrubbed timeline
	Evaluate(t float32) error

	// Advance moves an autonomous playhead forward by dt seconds and evaluates.
	// Does nothing once the timeline is stopped.
	//
	// Parameters:
	//   - dt: elapsed seconds
	//
	// Returns:
	//   - error: InvalidModeError on a scrubbed timeline
	Advance(dt float32) error

	// ScrubTo positions a scrubbed timeline at progress * TotalDuration.
	// Progress is clamped to [0, 1]; repeating the last observed value is a no-op.
	//
	// Parameters:
	//   - progress: normalized playhead position
	//
	// Returns:
	//   - error: InvalidModeError on an autonomous timeline
	ScrubTo(progress float32) error

	// Time returns the last evaluated playhead time.
	//
	// Returns:
	//   - float32: time in seconds
	Time() float32

	// Progress returns the playhead as a fraction of TotalDuration in [0, 1].
	//
	// Returns:
	//   - float32: normalized playhead position
	Progress() float32

	// Stop freezes the timeline where it is. Node values are left as last written.
	Stop()

	// Stopped returns whether Stop has been called.
	//
	// Returns:
	//   - bool: true if stopped
	Stopped() bool

	// Done returns whether the playhead has reached TotalDuration.
	//
	// Returns:
	//   - bool: true if complete
	Done() bool
}

type trackKey struct {
	target   node.Node
	property node.Property
}

type track struct {
	target    node.Node
	property  node.Property
	baseline  mgl32.Vec3
	projected mgl32.Vec3
	entries   []int
}

type resolvedEntry struct {
	Entry
	start, end float32
	from, to   mgl32.Vec3
	ease       easing.Func
	fired      bool
}

type timeline struct {
	name string
	mode Mode

	entries []*resolvedEntry
	byName  map[string]int

	tracks     []*track
	trackIndex map[trackKey]int

	duration      float32
	durationValid bool

	time         float32
	progress     float32
	evaluated    bool
	stopped      bool
	completed    bool
	onComplete   func()
	pendingFires []*resolvedEntry
}

var _ Timeline = &timeline{}

// NewTimeline creates an empty Timeline in the given playback mode.
//
// Parameters:
//   - mode: ModeAutonomous or ModeScrubbed
//   - options: functional options to configure the timeline
//
// Returns:
//   - Timeline: the newly created timeline
func NewTimeline(mode Mode, options ...TimelineBuilderOption) Timeline {
	tl := &timeline{
		name:       "timeline",
		mode:       mode,
		byName:     make(map[string]int),
		trackIndex: make(map[trackKey]int),
	}
	for _, option := range options {
		option(tl)
	}
	return tl
}

func (tl *timeline) Name() string {
	return tl.name
}

func (tl *timeline) Mode() Mode {
	return tl.mode
}

func (tl *timeline) Len() int {
	return len(tl.entries)
}

func (tl *timeline) AddEntry(e Entry) error {
	if e.Target == nil {
		return fmt.Errorf("entry %q has no target", e.Name)
	}
	ease, err := easing.Lookup(e.Ease)
	if err != nil {
		return fmt.Errorf("entry %q: %w", e.Name, err)
	}
	start, err := tl.resolveStart(e)
	if err != nil {
		return err
	}

	duration := e.Duration
	if duration < 0 || math.IsNaN(float64(duration)) {
		duration = 0
	}

	key := trackKey{target: e.Target, property: e.Property}
	ti, ok := tl.trackIndex[key]
	if !ok {
		baseline := e.Target.Get(e.Property)
		tl.tracks = append(tl.tracks, &track{
			target:    e.Target,
			property:  e.Property,
			baseline:  baseline,
			projected: baseline,
		})
		ti = len(tl.tracks) - 1
		tl.trackIndex[key] = ti
	}
	tr := tl.tracks[ti]

	from := tr.projected
	var to mgl32.Vec3
	if e.Relative {
		to = from.Add(e.Axes.Mask(e.Value))
	} else {
		to = e.Axes.Merge(from, e.Value)
	}
	tr.projected = to

	re := &resolvedEntry{
		Entry: e,
		start: start,
		end:   start + duration,
		from:  from,
		to:    to,
		ease:  ease,
	}
	re.Duration = duration
	tl.entries = append(tl.entries, re)
	idx := len(tl.entries) - 1
	tr.entries = append(tr.entries, idx)
	if e.Name != "" {
		tl.byName[e.Name] = idx
	}

	tl.durationValid = false
	tl.evaluated = false
	return nil
}

// resolveStart turns an anchor into an absolute start time. Only entries already
// added can be referenced, so the result never changes afterwards.
func (tl *timeline) resolveStart(e Entry) (float32, error) {
	a := e.Start
	switch a.Kind {
	case AnchorAbsolute:
		return a.Offset, nil
	case AnchorTimelineEnd:
		return tl.TotalDuration() + a.Offset, nil
	case AnchorWithStart, AnchorAfterEnd:
		ref, ok := tl.lookupRef(a.Ref)
		if !ok {
			return 0, InvalidAnchorError{Entry: e.Name, Ref: a.Ref}
		}
		if a.Kind == AnchorWithStart {
			return ref.start + a.Offset, nil
		}
		return ref.end + a.Offset, nil
	}
	return 0, InvalidAnchorError{Entry: e.Name, Ref: a.Ref}
}

func (tl *timeline) lookupRef(ref string) (*resolvedEntry, bool) {
	if ref == "" {
		if len(tl.entries) == 0 {
			return nil, false
		}
		return tl.entries[len(tl.entries)-1], true
	}
	idx, ok := tl.byName[ref]
	if !ok {
		return nil, false
	}
	return tl.entries[idx], true
}

func (tl *timeline) TotalDuration() float32 {
	if tl.durationValid {
		return tl.duration
	}
	var d float32
	for _, e := range tl.entries {
		if e.end > d {
			d = e.end
		}
	}
	tl.duration = d
	tl.durationValid = true
	return d
}

func (tl *timeline) Window(name string) (float32, float32, bool) {
	idx, ok := tl.byName[name]
	if !ok {
		return 0, 0, false
	}
	e := tl.entries[idx]
	return e.start, e.end, true
}

func (tl *timeline) Evaluate(t float32) error {
	if tl.mode != ModeAutonomous {
		return InvalidModeError{Mode: tl.mode, Op: "Evaluate"}
	}
	if tl.stopped {
		return nil
	}
	if math.IsNaN(float64(t)) {
		t = 0
	}
	if tl.evaluated && t == tl.time {
		return nil
	}
	prev, forward := tl.time, !tl.evaluated || t > tl.time
	if !tl.evaluated {
		prev = float32(math.Inf(-1))
	}

	tl.apply(t)
	tl.time = t
	tl.progress = tl.fraction(t)
	tl.evaluated = true

	if forward {
		tl.fire(prev, t)
	}
	return nil
}

func (tl *timeline) Advance(dt float32) error {
	if tl.mode != ModeAutonomous {
		return InvalidModeError{Mode: tl.mode, Op: "Advance"}
	}
	if tl.stopped {
		return nil
	}
	if dt < 0 || math.IsNaN(float64(dt)) {
		dt = 0
	}
	t := tl.time
	if !tl.evaluated {
		t = 0
	}
	return tl.Evaluate(t + dt)
}

func (tl *timeline) ScrubTo(progress float32) error {
	if tl.mode != ModeScrubbed {
		return InvalidModeError{Mode: tl.mode, Op: "ScrubTo"}
	}
	if tl.stopped {
		return nil
	}
	p := clamp01(progress)
	if tl.evaluated && p == tl.progress {
		return nil
	}
	t := p * tl.TotalDuration()
	tl.apply(t)
	tl.time = t
	tl.progress = p
	tl.evaluated = true
	return nil
}

func (tl *timeline) Time() float32 {
	return tl.time
}

func (tl *timeline) Progress() float32 {
	return tl.progress
}

func (tl *timeline) Stop() {
	tl.stopped = true
}

func (tl *timeline) Stopped() bool {
	return tl.stopped
}

func (tl *timeline) Done() bool {
	return tl.evaluated && tl.time >= tl.TotalDuration()
}

// apply writes every track for playhead time t. On each track the latest-started
// entry decides the value; a track with no started entry gets its baseline back.
func (tl *timeline) apply(t float32) {
	for _, tr := range tl.tracks {
		var active *resolvedEntry
		for _, idx := range tr.entries {
			e := tl.entries[idx]
			if e.start <= t && (active == nil || e.start >= active.start) {
				active = e
			}
		}

		switch {
		case active == nil:
			tr.target.Set(tr.property, tr.baseline)
		case t >= active.end:
			tr.target.Set(tr.property, active.to)
		default:
			k := active.ease((t - active.start) / (active.end - active.start))
			tr.target.Set(tr.property, active.from.Add(active.to.Sub(active.from).Mul(k)))
		}
	}
}

// fire runs completion callbacks for entries whose end falls in (prev, t], in end order,
// then the timeline callback once the playhead reaches the total duration.
func (tl *timeline) fire(prev, t float32) {
	tl.pendingFires = tl.pendingFires[:0]
	for _, e := range tl.entries {
		if !e.fired && e.OnComplete != nil && e.end > prev && e.end <= t {
			tl.pendingFires = append(tl.pendingFires, e)
		}
	}
	sort.SliceStable(tl.pendingFires, func(i, j int) bool {
		return tl.pendingFires[i].end < tl.pendingFires[j].end
	})
	for _, e := range tl.pendingFires {
		e.fired = true
		e.OnComplete()
	}

	if !tl.completed && t >= tl.TotalDuration() {
		tl.completed = true
		if tl.onComplete != nil {
			tl.onComplete()
		}
	}
}

func (tl *timeline) fraction(t float32) float32 {
	d := tl.TotalDuration()
	if d <= 0 {
		return 1
	}
	return clamp01(t / d)
}

func clamp01(v float32) float32 {
	if math.IsNaN(float64(v)) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
