package showcase

import (
	"time"
)

const (
	// how long a slide stays active before auto-advancing
	DefaultDwell = 8 * time.Second

	// grace period between a full progress bar and the slide change
	DefaultAdvanceDelay = 200 * time.Millisecond

	// frame step used by the virtual clock (~60 fps)
	DefaultFrameInterval = 16 * time.Millisecond
)

// a single showcase entry
type Slide struct {
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	Badge       *string `json:"badge,omitempty" yaml:"badge"`
	ImageURL    string  `json:"image_url" yaml:"image_url"`
}

// reports whether the slide carries a badge label
func (s Slide) HasBadge() bool {
	return s.Badge != nil && *s.Badge != ""
}

// read-only view consumed by the render surface
type Snapshot struct {
	ActiveIndex int     `json:"active_index"`
	Progress    float64 `json:"progress"`
}

// identifies a scheduled callback; the zero handle is never issued
type Handle uint64

// supplies the current time
type Clock interface {
	Now() time.Time
}

// timing capability provided by the host.
// callbacks are dispatched from a single goroutine and run to completion.
type Scheduler interface {
	Clock
	ScheduleRepeating(fn func()) Handle
	ScheduleOnce(delay time.Duration, fn func()) Handle
	Cancel(h Handle)
}

// configures a Controller
type Option func(*Controller)

// sets the dwell time per slide; non-positive values are ignored
func WithDwell(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.dwell = d
		}
	}
}

// sets the pause between reaching 100% and committing the next slide
func WithAdvanceDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.advanceDelay = d
		}
	}
}

// registers a callback invoked after every state change
func WithObserver(fn func(Snapshot)) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}
