package showcase

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSlides(n int) []Slide {
	slides := make([]Slide, n)
	for i := range slides {
		slides[i] = Slide{
			Title:       fmt.Sprintf("slide %d", i),
			Description: fmt.Sprintf("description %d", i),
			ImageURL:    fmt.Sprintf("https://example.com/%d.png", i),
		}
	}

	return slides
}

// records every snapshot the controller publishes
type recorder struct {
	events []Snapshot
}

func (r *recorder) observe(s Snapshot) {
	r.events = append(r.events, s)
}

func newTestController(t *testing.T, n int) (*Controller, *VirtualClock, *recorder) {
	t.Helper()

	clock := NewVirtualClock()
	rec := &recorder{}

	c, err := New(testSlides(n), clock, WithObserver(rec.observe))
	require.NoError(t, err)

	c.Mount()

	return c, clock, rec
}

func TestNewRejectsEmptySlides(t *testing.T) {
	_, err := New(nil, NewVirtualClock())
	assert.ErrorIs(t, err, ErrNoSlides)
}

func TestNewRequiresScheduler(t *testing.T) {
	_, err := New(testSlides(2), nil)
	assert.Error(t, err)
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	c, err := New(testSlides(2), NewVirtualClock(), WithDwell(0), WithAdvanceDelay(-time.Second))
	require.NoError(t, err)

	assert.Equal(t, DefaultDwell, c.Dwell())
	assert.Equal(t, DefaultAdvanceDelay, c.AdvanceDelay())
}

func TestMountStartsAtFirstSlide(t *testing.T) {
	c, _, rec := newTestController(t, 5)

	assert.True(t, c.Mounted())
	assert.Equal(t, Snapshot{ActiveIndex: 0, Progress: 0}, c.Snapshot())
	require.Len(t, rec.events, 1)

	// mounting again is a no-op
	c.Mount()
	assert.Len(t, rec.events, 1)
}

func TestProgressFollowsElapsedTime(t *testing.T) {
	c, clock, _ := newTestController(t, 5)

	clock.Advance(3200 * time.Millisecond)
	assert.Equal(t, 0, c.Snapshot().ActiveIndex)
	assert.InDelta(t, 40.0, c.Snapshot().Progress, 0.001)

	clock.Advance(4800 * time.Millisecond)
	assert.Equal(t, Snapshot{ActiveIndex: 0, Progress: 100}, c.Snapshot())
}

func TestFullBarStaysVisibleBeforeAdvance(t *testing.T) {
	c, clock, _ := newTestController(t, 5)

	clock.Advance(8 * time.Second)
	assert.Equal(t, Snapshot{ActiveIndex: 0, Progress: 100}, c.Snapshot())

	// still inside the grace period
	clock.Advance(150 * time.Millisecond)
	assert.Equal(t, Snapshot{ActiveIndex: 0, Progress: 100}, c.Snapshot())

	clock.Advance(100 * time.Millisecond)
	snap := c.Snapshot()
	assert.Equal(t, 1, snap.ActiveIndex)
	assert.Less(t, snap.Progress, 1.0)
}

func TestAdvanceCommitsIndexAndResetTogether(t *testing.T) {
	_, clock, rec := newTestController(t, 3)

	clock.Advance(8300 * time.Millisecond)

	var changes []Snapshot
	for i := 1; i < len(rec.events); i++ {
		if rec.events[i].ActiveIndex != rec.events[i-1].ActiveIndex {
			changes = append(changes, rec.events[i])
		}
	}

	require.Len(t, changes, 1)
	assert.Equal(t, Snapshot{ActiveIndex: 1, Progress: 0}, changes[0])
}

func TestProgressIsMonotonicWithSingleResetPerChange(t *testing.T) {
	c, clock, rec := newTestController(t, 5)

	clock.Advance(20 * time.Second)
	c.Select(4)
	clock.Advance(2 * time.Second)
	c.Select(1)
	clock.Advance(30 * time.Second)

	require.NotEmpty(t, rec.events)

	for i := 1; i < len(rec.events); i++ {
		prev, cur := rec.events[i-1], rec.events[i]

		assert.LessOrEqual(t, cur.Progress, 100.0)
		assert.GreaterOrEqual(t, cur.Progress, 0.0)

		if cur.ActiveIndex == prev.ActiveIndex {
			assert.GreaterOrEqual(t, cur.Progress, prev.Progress, "event %d went backwards on slide %d", i, cur.ActiveIndex)
		} else {
			assert.Equal(t, 0.0, cur.Progress, "event %d changed slide without resetting progress", i)
		}
	}
}

func TestCycleReturnsToFirstSlide(t *testing.T) {
	const n = 5
	c, clock, rec := newTestController(t, n)

	var order []int
	last := 0

	for steps := 0; len(order) < n && steps < 100000; steps++ {
		clock.Step()

		if idx := c.Snapshot().ActiveIndex; idx != last {
			order = append(order, idx)
			last = idx
		}
	}

	assert.Equal(t, []int{1, 2, 3, 4, 0}, order)
	assert.NotEmpty(t, rec.events)
}

func TestManualSelectTakesPrecedence(t *testing.T) {
	c, clock, rec := newTestController(t, 5)

	clock.Advance(3200 * time.Millisecond)
	require.InDelta(t, 40.0, c.Snapshot().Progress, 0.001)

	assert.True(t, c.Select(3))
	assert.Equal(t, Snapshot{ActiveIndex: 3, Progress: 0}, c.Snapshot())
	assert.Equal(t, 1, clock.Pending())

	mark := len(rec.events)
	clock.Advance(time.Second)

	for _, ev := range rec.events[mark:] {
		assert.Equal(t, 3, ev.ActiveIndex)
	}

	assert.InDelta(t, 12.5, c.Snapshot().Progress, 0.001)
}

func TestSelectCancelsPendingAdvance(t *testing.T) {
	c, clock, _ := newTestController(t, 5)

	clock.Advance(8100 * time.Millisecond)
	require.Equal(t, Snapshot{ActiveIndex: 0, Progress: 100}, c.Snapshot())

	assert.True(t, c.Select(2))
	clock.Advance(300 * time.Millisecond)

	snap := c.Snapshot()
	assert.Equal(t, 2, snap.ActiveIndex)
	assert.InDelta(t, 3.75, snap.Progress, 0.001)
}

func TestReselectIsNoOp(t *testing.T) {
	c, clock, rec := newTestController(t, 5)

	clock.Advance(time.Second)
	before := c.Snapshot()
	events := len(rec.events)

	assert.False(t, c.Select(before.ActiveIndex))
	assert.Equal(t, before, c.Snapshot())
	assert.Len(t, rec.events, events)
}

func TestSelectOutOfRangeIsIgnored(t *testing.T) {
	c, clock, _ := newTestController(t, 5)

	require.True(t, c.Select(2))
	clock.Advance(time.Second)
	before := c.Snapshot()

	assert.False(t, c.Select(5))
	assert.False(t, c.Select(-1))
	assert.Equal(t, before, c.Snapshot())
}

func TestUnmountStopsAllUpdates(t *testing.T) {
	c, clock, rec := newTestController(t, 5)

	clock.Advance(time.Second)
	c.Unmount()

	before := c.Snapshot()
	events := len(rec.events)

	assert.False(t, c.Mounted())
	assert.Equal(t, 0, clock.Pending())

	clock.Advance(20 * time.Second)
	assert.False(t, c.Select(3))

	assert.Equal(t, before, c.Snapshot())
	assert.Len(t, rec.events, events)
}

// ignores cancellation so stale callbacks keep firing
type leakyScheduler struct {
	*VirtualClock
}

func (leakyScheduler) Cancel(Handle) {}

func TestStaleCallbacksCannotMutateState(t *testing.T) {
	clock := leakyScheduler{NewVirtualClock()}
	rec := &recorder{}

	c, err := New(testSlides(5), clock, WithObserver(rec.observe))
	require.NoError(t, err)
	c.Mount()

	clock.Advance(3200 * time.Millisecond)
	require.True(t, c.Select(3))

	clock.Advance(time.Second)
	assert.Equal(t, 3, c.Snapshot().ActiveIndex)
	assert.InDelta(t, 12.5, c.Snapshot().Progress, 0.001)

	c.Unmount()
	before := c.Snapshot()
	events := len(rec.events)

	clock.Advance(20 * time.Second)
	assert.Equal(t, before, c.Snapshot())
	assert.Len(t, rec.events, events)
}

func TestEmptyDescriptionSlideIsOrdinary(t *testing.T) {
	slides := testSlides(2)
	slides = append(slides, Slide{Title: "disconnected", ImageURL: "https://example.com/x.png"})

	clock := NewVirtualClock()
	c, err := New(slides, clock, WithDwell(time.Second), WithAdvanceDelay(0))
	require.NoError(t, err)
	c.Mount()

	require.True(t, c.Select(2))
	active := c.Slides()[c.Snapshot().ActiveIndex]
	assert.Equal(t, "disconnected", active.Title)
	assert.Empty(t, active.Description)

	clock.Advance(1100 * time.Millisecond)
	assert.Equal(t, 0, c.Snapshot().ActiveIndex)
}

func TestSingleSlideRestartsProgress(t *testing.T) {
	clock := NewVirtualClock()
	c, err := New(testSlides(1), clock, WithDwell(time.Second))
	require.NoError(t, err)
	c.Mount()

	clock.Advance(1300 * time.Millisecond)

	snap := c.Snapshot()
	assert.Equal(t, 0, snap.ActiveIndex)
	assert.Less(t, snap.Progress, 100.0)
}

func TestSlidesReturnsCopy(t *testing.T) {
	c, _, _ := newTestController(t, 2)

	slides := c.Slides()
	slides[0].Title = "changed"

	assert.Equal(t, "slide 0", c.Slides()[0].Title)
}

func TestSlideHasBadge(t *testing.T) {
	badge := "NEW"
	empty := ""

	assert.True(t, Slide{Badge: &badge}.HasBadge())
	assert.False(t, Slide{Badge: &empty}.HasBadge())
	assert.False(t, Slide{}.HasBadge())
}
