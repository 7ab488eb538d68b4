package tjs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTime struct {
	now time.Time
}

func (f *fakeTime) Now() time.Time { return f.now }

func (f *fakeTime) Advance(d time.Duration) { f.now = f.now.Add(d) }

func TestClock(t *testing.T) {
	ft := &fakeTime{now: time.Unix(1700000000, 0)}
	clock := &Clock{now: ft.Now}

	assert.Zero(t, clock.Delta(), "stopped clock has no delta")

	clock.Start()
	assert.True(t, clock.Running())

	ft.Advance(16 * time.Millisecond)
	assert.InDelta(t, 0.016, clock.Delta(), 1e-9)

	ft.Advance(500 * time.Millisecond)
	assert.InDelta(t, 0.516, clock.Elapsed(), 1e-9)
	assert.Zero(t, clock.Delta())

	ft.Advance(time.Second)
	clock.Stop()
	assert.False(t, clock.Running())
	assert.InDelta(t, 1.516, clock.Elapsed(), 1e-9)

	ft.Advance(time.Second)
	assert.Zero(t, clock.Delta())
	assert.InDelta(t, 1.516, clock.Elapsed(), 1e-9)

	clock.Start()
	assert.Zero(t, clock.Elapsed())
}

func TestGameFrameUsesClock(t *testing.T) {
	ft := &fakeTime{now: time.Unix(1700000000, 0)}
	tg := newTestGame(t)
	tg.clock.now = ft.Now

	var deltas []float64
	p := tg.probe("a")
	p.onUpdate = func(g *Game) {
		deltas = append(deltas, g.Frame().Delta)
	}
	_, err := tg.Register(p)
	assert.NoError(t, err)

	assert.NoError(t, tg.Start())
	ft.Advance(20 * time.Millisecond)
	assert.NoError(t, tg.Tick())
	ft.Advance(30 * time.Millisecond)
	assert.NoError(t, tg.Tick())

	assert.InDeltaSlice(t, []float64{0.02, 0.03}, deltas, 1e-9)
	assert.InDelta(t, 0.05, tg.Frame().Elapsed, 1e-9)
	assert.Equal(t, int64(2), tg.Frame().Frame)
	assert.Equal(t, ft.now, tg.Frame().Time)
}
