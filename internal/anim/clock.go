package anim

import (
	"github.com/san-kum/trajviz/internal/trajectory"
)

// Phase is the lifecycle of a Clock.
type Phase int

const (
	Idle Phase = iota
	Running
	Finished
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Clock is the single frame counter shared by every panel of a session.
// Tick must not be called concurrently; callers dispatch it from one timer.
type Clock struct {
	store    *trajectory.Store
	counter  bool
	maxFrame int
	frame    int
	phase    Phase
}

// Option configures a Clock.
type Option func(*Clock)

// WithCounter makes every Update carry the "iter: N" counter text.
func WithCounter(enabled bool) Option {
	return func(c *Clock) { c.counter = enabled }
}

// NewClock returns an idle clock over store. An empty store yields a clock
// that is already finished.
func NewClock(store *trajectory.Store, opts ...Option) *Clock {
	c := &Clock{
		store:    store,
		maxFrame: store.MaxLen() - 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxFrame < 0 {
		c.phase = Finished
	}
	return c
}

// Tick emits the state of the current frame and advances the counter.
// Once the last frame has been emitted it returns false.
func (c *Clock) Tick() (State, bool) {
	if c.phase == Finished {
		return State{}, false
	}
	st := StateAt(c.store, c.frame, c.counter)
	c.frame++
	c.phase = Running
	if c.frame > c.maxFrame {
		c.phase = Finished
	}
	return st, true
}

func (c *Clock) Phase() Phase { return c.phase }

// Frame returns the next frame to be emitted.
func (c *Clock) Frame() int { return c.frame }

// MaxFrame is the index of the last frame: the longest trajectory's last
// index.
func (c *Clock) MaxFrame() int { return c.maxFrame }

// Counter reports whether updates carry counter text.
func (c *Clock) Counter() bool { return c.counter }

// Progress returns the fraction of frames already emitted.
func (c *Clock) Progress() float64 {
	if c.maxFrame < 0 {
		return 1
	}
	return float64(c.frame) / float64(c.maxFrame+1)
}
