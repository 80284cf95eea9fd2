package showcase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameSchedulerRunsDueOnceTasksInOrder(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewFrameScheduler(start)

	var fired []string
	s.ScheduleOnce(30*time.Millisecond, func() { fired = append(fired, "late") })
	s.ScheduleOnce(10*time.Millisecond, func() { fired = append(fired, "early") })
	s.ScheduleOnce(time.Second, func() { fired = append(fired, "never") })

	s.Frame(start.Add(5 * time.Millisecond))
	assert.Empty(t, fired)

	s.Frame(start.Add(50 * time.Millisecond))
	assert.Equal(t, []string{"early", "late"}, fired)
	assert.Equal(t, 1, s.Pending())
}

func TestFrameSchedulerRepeatsEveryFrame(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewFrameScheduler(start)

	count := 0
	h := s.ScheduleRepeating(func() { count++ })

	for i := 1; i <= 3; i++ {
		s.Frame(start.Add(time.Duration(i) * time.Millisecond))
	}
	assert.Equal(t, 3, count)

	s.Cancel(h)
	s.Frame(start.Add(10 * time.Millisecond))
	assert.Equal(t, 3, count)
	assert.Equal(t, 0, s.Pending())
}

func TestFrameSchedulerDefersCallbacksRegisteredMidFrame(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewFrameScheduler(start)

	inner := 0
	s.ScheduleOnce(0, func() {
		s.ScheduleRepeating(func() { inner++ })
		s.ScheduleOnce(0, func() { inner += 10 })
	})

	s.Frame(start.Add(time.Millisecond))
	assert.Equal(t, 0, inner)

	s.Frame(start.Add(2 * time.Millisecond))
	assert.Equal(t, 11, inner)
}

func TestFrameSchedulerCancelDuringFrame(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewFrameScheduler(start)

	var second Handle
	ran := false

	s.ScheduleOnce(time.Millisecond, func() { s.Cancel(second) })
	second = s.ScheduleOnce(2*time.Millisecond, func() { ran = true })

	s.Frame(start.Add(10 * time.Millisecond))
	assert.False(t, ran)
	assert.Equal(t, 0, s.Pending())
}

func TestFrameSchedulerTimeNeverGoesBackwards(t *testing.T) {
	start := time.Unix(100, 0)
	s := NewFrameScheduler(start)

	s.Frame(start.Add(time.Second))
	s.Frame(start)

	assert.Equal(t, start.Add(time.Second), s.Now())
}

func TestVirtualClockAdvanceLandsOnTarget(t *testing.T) {
	c := NewVirtualClockWithStep(16 * time.Millisecond)
	begin := c.Now()

	frames := 0
	c.ScheduleRepeating(func() { frames++ })

	c.Advance(100 * time.Millisecond)

	assert.Equal(t, begin.Add(100*time.Millisecond), c.Now())
	assert.Equal(t, 7, frames) // 6 full steps plus the final partial one
}
