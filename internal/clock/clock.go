// Package clock provides the frame clock used by the game loop.
package clock

import "time"

// Clock paces frames and measures elapsed session time.
//
// Tick works like a classic frame limiter: it sleeps for whatever is left of the
// frame interval since the previous Tick returned. A frame that overran its budget
// does not sleep at all.
type Clock struct {
	now   func() time.Time
	sleep func(time.Duration)
	start time.Time
	last  time.Time
}

// Option customizes a Clock.
type Option func(*Clock)

// WithTimeSource replaces time.Now and time.Sleep, mainly for tests.
func WithTimeSource(now func() time.Time, sleep func(time.Duration)) Option {
	return func(c *Clock) {
		c.now = now
		c.sleep = sleep
	}
}

// New returns a Clock whose session starts now.
func New(opts ...Option) *Clock {
	c := &Clock{
		now:   time.Now,
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.start = c.now()
	c.last = c.start
	return c
}

// NewHostPaced returns a Clock that never sleeps in Tick. Use it when the host
// already schedules frames at the target rate (bubbletea ticks, ebiten TPS).
func NewHostPaced(opts ...Option) *Clock {
	c := New(opts...)
	c.sleep = nil
	return c
}

// Interval returns the frame budget for frameRate. Non-positive rates have no budget.
func Interval(frameRate int) time.Duration {
	if frameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(frameRate)
}

// Tick blocks until one frame interval has passed since the previous Tick.
func (c *Clock) Tick(frameRate int) {
	if c.sleep != nil {
		if wait := Interval(frameRate) - c.now().Sub(c.last); wait > 0 {
			c.sleep(wait)
		}
	}
	c.last = c.now()
}

// ElapsedMillis returns whole milliseconds since the clock was created.
func (c *Clock) ElapsedMillis() int64 {
	return c.now().Sub(c.start).Milliseconds()
}

// Elapsed returns the time since the clock was created.
func (c *Clock) Elapsed() time.Duration {
	return c.now().Sub(c.start)
}
