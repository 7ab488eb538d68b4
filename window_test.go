package tjs

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWindowGame(t *testing.T) (*testGame, *Window) {
	t.Helper()

	tg := newTestGame(t, func(p *GameProps) {
		p.DisableAnimationLoop = false
		p.Scheduler = nil
	})
	return tg, NewWindow(tg.Game, "")
}

func TestWindowSchedulesFrames(t *testing.T) {
	tg, w := newWindowGame(t)
	assert.Equal(t, DefaultTitle, w.Title)

	p := tg.probe("a")
	_, err := tg.Register(p)
	require.NoError(t, err)
	require.NoError(t, tg.Start())

	require.NoError(t, w.Update())
	require.NoError(t, w.Update())
	assert.Equal(t, 2, p.updates)
	assert.Equal(t, 2, tg.renderer.renders)

	tg.End()
	assert.ErrorIs(t, w.Update(), ebiten.Termination)
	assert.Equal(t, 2, p.updates)
}

func TestWindowLayoutForwardsSizeChanges(t *testing.T) {
	tg, w := newWindowGame(t)

	var resizes int
	tg.On(EventResize, func(any) { resizes++ })

	width, height := w.Layout(800, 600)
	assert.Equal(t, 800, width)
	assert.Equal(t, 600, height)
	assert.Zero(t, resizes, "unchanged size is not forwarded")

	width, height = w.Layout(1280, 720)
	assert.Equal(t, 1280, width)
	assert.Equal(t, 720, height)
	assert.Equal(t, 1, resizes)
	assert.Equal(t, 1280, tg.renderer.width)

	w.Layout(1280, 720)
	assert.Equal(t, 1, resizes)

	width, height = w.Layout(0, 0)
	assert.Equal(t, 1280, width)
	assert.Equal(t, 720, height)
}

func TestWindowReportsRenderFailure(t *testing.T) {
	tg, w := newWindowGame(t)
	tg.renderer.err = errBoom

	require.NoError(t, tg.Start())
	assert.ErrorIs(t, w.Update(), errBoom)
	assert.ErrorIs(t, w.Update(), errBoom)
}
