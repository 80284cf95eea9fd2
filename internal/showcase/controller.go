package showcase

import (
	"errors"
	"time"

	"codeberg.org/crumbs/server/internal/logger"
)

var ErrNoSlides = errors.New("showcase: at least one slide is required")

// drives the auto-advancing showcase carousel.
//
// Progress for the active slide is derived from the time elapsed since the
// visit started. Reaching 100% and switching slides are two separate events:
// the bar stays full for the advance delay, then the next slide is committed
// and its progress reset in the same step.
//
// A Controller is not safe for concurrent use. All calls must come from the
// goroutine that dispatches the scheduler's callbacks.
type Controller struct {
	slides       []Slide
	scheduler    Scheduler
	dwell        time.Duration
	advanceDelay time.Duration
	observer     func(Snapshot)

	mounted    bool
	active     int
	progress   float64
	visitStart time.Time
	visit      uint64
	tick       Handle
	advance    Handle
}

// creates a controller over a fixed slide list
func New(slides []Slide, scheduler Scheduler, opts ...Option) (*Controller, error) {
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}

	if scheduler == nil {
		return nil, errors.New("showcase: scheduler is required")
	}

	c := &Controller{
		slides:       append([]Slide(nil), slides...),
		scheduler:    scheduler,
		dwell:        DefaultDwell,
		advanceDelay: DefaultAdvanceDelay,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// starts the carousel on the first slide
func (c *Controller) Mount() {
	if c.mounted {
		return
	}

	c.mounted = true
	c.startVisit(0)

	logger.Debug("showcase mounted", "slides", len(c.slides), "dwell", c.dwell)
	c.notify()
}

// switches to the given slide on user request.
// returns false when the call was ignored (out of range, already active, not mounted).
func (c *Controller) Select(index int) bool {
	if !c.mounted || index < 0 || index >= len(c.slides) || index == c.active {
		return false
	}

	c.startVisit(index)
	c.notify()

	return true
}

// stops the carousel; pending callbacks are cancelled and ignored if they still fire
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}

	c.cancelTimers()
	c.mounted = false
	c.visit++

	logger.Debug("showcase unmounted", "active", c.active)
}

// returns the current active index and progress
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		ActiveIndex: c.active,
		Progress:    c.progress,
	}
}

// returns a copy of the slide list
func (c *Controller) Slides() []Slide {
	return append([]Slide(nil), c.slides...)
}

func (c *Controller) Mounted() bool {
	return c.mounted
}

func (c *Controller) Dwell() time.Duration {
	return c.dwell
}

func (c *Controller) AdvanceDelay() time.Duration {
	return c.advanceDelay
}

// commits a slide and resets its progress baseline; the only place progress goes back to 0
func (c *Controller) startVisit(index int) {
	c.cancelTimers()
	c.visit++

	c.active = index
	c.progress = 0
	c.visitStart = c.scheduler.Now()

	visit := c.visit
	c.tick = c.scheduler.ScheduleRepeating(func() {
		c.onTick(visit)
	})
}

func (c *Controller) onTick(visit uint64) {
	if !c.current(visit) || c.advance != 0 {
		return
	}

	elapsed := c.scheduler.Now().Sub(c.visitStart)
	value := min(float64(elapsed)/float64(c.dwell)*100, 100)

	// never move backwards within a visit
	if value <= c.progress {
		return
	}

	c.progress = value

	if c.progress >= 100 {
		c.scheduler.Cancel(c.tick)
		c.tick = 0
		c.advance = c.scheduler.ScheduleOnce(c.advanceDelay, func() {
			c.onAdvance(visit)
		})
	}

	c.notify()
}

func (c *Controller) onAdvance(visit uint64) {
	if !c.current(visit) {
		return
	}

	c.advance = 0
	next := (c.active + 1) % len(c.slides)
	c.startVisit(next)

	logger.Debug("showcase advanced", "active", next)
	c.notify()
}

// reports whether a callback belongs to the live visit
func (c *Controller) current(visit uint64) bool {
	return c.mounted && visit == c.visit
}

func (c *Controller) cancelTimers() {
	if c.tick != 0 {
		c.scheduler.Cancel(c.tick)
		c.tick = 0
	}

	if c.advance != 0 {
		c.scheduler.Cancel(c.advance)
		c.advance = 0
	}
}

func (c *Controller) notify() {
	if c.observer != nil {
		c.observer(c.Snapshot())
	}
}
