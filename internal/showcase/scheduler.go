package showcase

import (
	"cmp"
	"slices"
	"time"
)

type onceTask struct {
	due   time.Time
	since uint64
	fn    func()
}

type repeatingTask struct {
	since uint64
	fn    func()
}

// FrameScheduler is a Scheduler pumped by an external frame source.
//
// Each call to Frame first runs the one-shot callbacks that are due, oldest
// deadline first, then every repeating callback in registration order.
// Callbacks registered while a frame is being dispatched run from the next
// frame on, mirroring requestAnimationFrame. Not safe for concurrent use.
type FrameScheduler struct {
	current   time.Time
	frame     uint64
	nextID    Handle
	once      map[Handle]*onceTask
	repeating map[Handle]*repeatingTask
	order     []Handle
}

// creates a scheduler whose clock starts at the given time
func NewFrameScheduler(start time.Time) *FrameScheduler {
	return &FrameScheduler{
		current:   start,
		once:      make(map[Handle]*onceTask),
		repeating: make(map[Handle]*repeatingTask),
	}
}

// returns the time of the last dispatched frame
func (s *FrameScheduler) Now() time.Time {
	return s.current
}

func (s *FrameScheduler) ScheduleRepeating(fn func()) Handle {
	h := s.issue()
	s.repeating[h] = &repeatingTask{since: s.frame, fn: fn}
	s.order = append(s.order, h)

	return h
}

func (s *FrameScheduler) ScheduleOnce(delay time.Duration, fn func()) Handle {
	h := s.issue()
	s.once[h] = &onceTask{due: s.current.Add(delay), since: s.frame, fn: fn}

	return h
}

// removes a callback; unknown or already fired handles are ignored
func (s *FrameScheduler) Cancel(h Handle) {
	delete(s.once, h)

	if _, ok := s.repeating[h]; ok {
		delete(s.repeating, h)
		s.order = slices.DeleteFunc(s.order, func(id Handle) bool { return id == h })
	}
}

// returns the number of live callbacks
func (s *FrameScheduler) Pending() int {
	return len(s.once) + len(s.repeating)
}

// dispatches one frame at the given time. time never moves backwards.
func (s *FrameScheduler) Frame(now time.Time) {
	if now.After(s.current) {
		s.current = now
	}

	s.frame++
	frame := s.frame

	due := make([]Handle, 0, len(s.once))
	for h, task := range s.once {
		if task.since < frame && !task.due.After(s.current) {
			due = append(due, h)
		}
	}

	slices.SortFunc(due, func(a, b Handle) int {
		if c := s.once[a].due.Compare(s.once[b].due); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	for _, h := range due {
		task, ok := s.once[h]
		if !ok {
			continue // cancelled by an earlier callback in this frame
		}

		delete(s.once, h)
		task.fn()
	}

	for _, h := range slices.Clone(s.order) {
		task, ok := s.repeating[h]
		if !ok || task.since >= frame {
			continue
		}

		task.fn()
	}
}

func (s *FrameScheduler) issue() Handle {
	s.nextID++
	return s.nextID
}

// VirtualClock is a deterministic FrameScheduler that advances in fixed frame steps.
type VirtualClock struct {
	*FrameScheduler
	step time.Duration
}

// creates a virtual clock at a fixed epoch with the default frame interval
func NewVirtualClock() *VirtualClock {
	return NewVirtualClockWithStep(DefaultFrameInterval)
}

func NewVirtualClockWithStep(step time.Duration) *VirtualClock {
	if step <= 0 {
		step = DefaultFrameInterval
	}

	return &VirtualClock{
		FrameScheduler: NewFrameScheduler(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		step:           step,
	}
}

// moves time forward by d, dispatching a frame every step and one at the end
func (c *VirtualClock) Advance(d time.Duration) {
	target := c.Now().Add(d)

	for c.Now().Before(target) {
		next := c.Now().Add(c.step)
		if next.After(target) {
			next = target
		}

		c.Frame(next)
	}
}

// dispatches exactly one frame step
func (c *VirtualClock) Step() {
	c.Frame(c.Now().Add(c.step))
}
