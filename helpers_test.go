package tjs

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rhpo/tjs.go/engine"
)

type fakeCamera struct {
	aspect           float64
	projectionAspect float64
	updates          int
}

func (c *fakeCamera) SetAspect(aspect float64)   { c.aspect = aspect }
func (c *fakeCamera) Aspect() float64            { return c.aspect }
func (c *fakeCamera) UpdateProjectionMatrix()    { c.projectionAspect = c.aspect; c.updates++ }
func (c *fakeCamera) ViewProjection() mgl32.Mat4 { return mgl32.Ident4() }

type fakeRenderer struct {
	trace   *[]string
	width   int
	height  int
	renders int
	err     error
}

func (r *fakeRenderer) Render(*engine.Scene, engine.Camera) error {
	r.renders++
	if r.trace != nil {
		*r.trace = append(*r.trace, "render")
	}
	return r.err
}

func (r *fakeRenderer) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// probe records its lifecycle calls into a shared trace.
type probe struct {
	name  string
	trace *[]string
	game  *Game

	starts, updates, ends int

	startErr  error
	updateErr error
	panicOn   Phase

	onStart  func(g *Game)
	onUpdate func(g *Game)
}

func (p *probe) Name() string        { return p.name }
func (p *probe) SetName(name string) { p.name = name }

func (p *probe) record(phase Phase) {
	if p.trace != nil {
		*p.trace = append(*p.trace, string(phase)+" "+p.name)
	}
	if p.panicOn == phase {
		panic("probe " + p.name + " exploded")
	}
}

func (p *probe) Start(game *Game) error {
	p.game = game
	p.starts++
	p.record(PhaseStart)
	if p.onStart != nil {
		p.onStart(game)
	}
	return p.startErr
}

func (p *probe) Update() error {
	p.updates++
	p.record(PhaseUpdate)
	if p.onUpdate != nil {
		p.onUpdate(p.game)
	}
	return p.updateErr
}

func (p *probe) End() error {
	p.ends++
	p.record(PhaseEnd)
	return nil
}

// unnamed has no name of its own.
type unnamed struct {
	updates int
}

func (u *unnamed) Start(*Game) error { return nil }
func (u *unnamed) Update() error     { u.updates++; return nil }
func (u *unnamed) End() error        { return nil }

type testGame struct {
	*Game
	camera    *fakeCamera
	renderer  *fakeRenderer
	scheduler *ManualScheduler
	logs      *observer.ObservedLogs
	trace     *[]string
}

func newTestGame(t *testing.T, configure ...func(*GameProps)) *testGame {
	t.Helper()

	trace := &[]string{}
	core, logs := observer.New(zap.DebugLevel)

	tg := &testGame{
		camera:    &fakeCamera{},
		renderer:  &fakeRenderer{trace: trace},
		scheduler: &ManualScheduler{},
		logs:      logs,
		trace:     trace,
	}

	props := &GameProps{
		Scene:                engine.NewScene(),
		Camera:               tg.camera,
		Renderer:             tg.renderer,
		Width:                800,
		Height:               600,
		DisableAnimationLoop: true,
		Scheduler:            tg.scheduler,
		Logger:               zap.New(core),
	}
	for _, fn := range configure {
		fn(props)
	}

	game, err := New(props)
	require.NoError(t, err)
	tg.Game = game

	return tg
}

func (tg *testGame) probe(name string) *probe {
	return &probe{name: name, trace: tg.trace}
}

func (tg *testGame) resetTrace() {
	*tg.trace = (*tg.trace)[:0]
}

var errBoom = errors.New("boom")
