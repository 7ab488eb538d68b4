package tjs

import "time"

// Clock keeps track of elapsed time while the game runs.
type Clock struct {
	now func() time.Time

	running bool
	start   time.Time
	last    time.Time
	elapsed float64
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

func (c *Clock) Start() {
	now := c.now()
	c.start = now
	c.last = now
	c.elapsed = 0
	c.running = true
}

func (c *Clock) Stop() {
	if !c.running {
		return
	}

	c.Delta()
	c.running = false
}

func (c *Clock) Running() bool {
	return c.running
}

// Delta returns the seconds passed since the previous Delta or Elapsed
// call, or since Start.
func (c *Clock) Delta() float64 {
	if !c.running {
		return 0
	}

	now := c.now()
	delta := now.Sub(c.last).Seconds()
	c.last = now
	c.elapsed += delta
	return delta
}

// Elapsed returns the seconds accumulated since Start.
func (c *Clock) Elapsed() float64 {
	c.Delta()
	return c.elapsed
}
