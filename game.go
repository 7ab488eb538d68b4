package tjs

import (
	"fmt"
	"iter"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/rhpo/tjs.go/engine"
)

type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Renderer draws a scene as seen by a camera onto an output surface.
type Renderer interface {
	Render(scene *engine.Scene, camera engine.Camera) error
	SetSize(width, height int)
}

// Controls are updated once per frame after the game objects.
type Controls interface {
	Update(delta float64)
}

type GameProps struct {
	Scene    *engine.Scene
	Camera   engine.Camera
	Renderer Renderer
	Controls Controls

	Width  int
	Height int

	// DisableAnimationLoop leaves ticking to the caller. Otherwise Start
	// schedules frames with Scheduler until the game ends.
	DisableAnimationLoop bool
	Scheduler            FrameScheduler

	// Collisions notifies CollisionListener objects about overlapping
	// colliders once per frame.
	Collisions bool

	Logger *zap.Logger
}

// Game owns the frame loop and the registry of game objects. All methods
// must be called from the goroutine driving the frames.
type Game struct {
	*EventEmitter

	scene    *engine.Scene
	camera   engine.Camera
	renderer Renderer
	controls Controls

	clock    *Clock
	registry *Registry
	logger   *zap.Logger

	width  int
	height int

	freeRunning bool
	scheduler   FrameScheduler
	collisions  bool

	state   State
	frame   LoopData
	loopErr error
}

func New(props *GameProps) (*Game, error) {
	if props == nil {
		props = &GameProps{}
	}

	if props.Scene == nil {
		return nil, ErrNoScene
	}
	if props.Camera == nil {
		return nil, ErrNoCamera
	}
	if props.Renderer == nil {
		return nil, ErrNoRenderer
	}
	if props.Width < 0 || props.Height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, props.Width, props.Height)
	}
	if props.Width == 0 {
		props.Width = DefaultWidth
	}
	if props.Height == 0 {
		props.Height = DefaultHeight
	}

	logger := props.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	game := &Game{
		EventEmitter: NewEventEmitter(),
		scene:        props.Scene,
		camera:       props.Camera,
		renderer:     props.Renderer,
		controls:     props.Controls,
		clock:        NewClock(),
		registry:     NewRegistry(logger),
		logger:       logger,
		freeRunning:  !props.DisableAnimationLoop,
		scheduler:    props.Scheduler,
		collisions:   props.Collisions,
		state:        StateIdle,
	}

	game.applyViewport(props.Width, props.Height)

	return game, nil
}

// Register adds obj to the game and returns the name it was stored under.
// While the game runs the object is started right away, otherwise its start
// is deferred until Start. A failing start is reported in the returned
// error; the object stays registered.
func (g *Game) Register(obj GameObject) (string, error) {
	if obj == nil {
		return "", ErrNilObject
	}

	if name, ok := g.registry.NameOf(obj); ok {
		return name, nil
	}

	name := g.registry.Insert(obj)
	g.logger.Debug("game object registered", objectFields(name, obj)...)
	g.Emit(EventObjectRegistered, EventObjectData{Object: obj, Name: name})

	if g.state != StateRunning {
		return name, nil
	}

	e, _ := g.registry.lookup(obj)
	return name, g.startObject(e)
}

// Unregister removes obj from the game. While the game runs a started
// object is ended first. Before Start, or after End, the object is dropped
// without its End being called. Unknown objects are ignored.
func (g *Game) Unregister(obj GameObject) error {
	if obj == nil {
		return nil
	}

	e, ok := g.registry.lookup(obj)
	if !ok {
		return nil
	}

	var err error
	if g.state == StateRunning && e.phase == phaseStarted {
		e.phase = phaseEnded
		if callErr := call(obj.End); callErr != nil {
			err = g.fail(e, PhaseEnd, callErr)
		}
		// End may have removed the object itself.
		if !g.current(e) {
			return err
		}
	}

	g.registry.Remove(obj)
	g.logger.Debug("game object removed", objectFields(e.name, obj)...)
	g.Emit(EventObjectRemoved, EventObjectData{Object: obj, Name: e.name})

	return err
}

// Start starts the clock and every registered object, in registration
// order, then schedules the first frame unless the animation loop is
// disabled. Failures of individual objects are returned joined together
// but do not stop the game from running.
func (g *Game) Start() error {
	switch g.state {
	case StateRunning:
		return ErrAlreadyRunning
	case StateStopped:
		return ErrStopped
	}

	if g.freeRunning && g.scheduler == nil {
		return ErrNoScheduler
	}

	g.state = StateRunning
	g.clock.Start()
	g.frame = LoopData{Time: g.clock.now()}

	g.logger.Info("game started",
		zap.Int("objects", g.registry.Len()),
		zap.Bool("animation_loop", g.freeRunning))
	g.Emit(EventStart, nil)

	var errs error
	for _, e := range g.registry.snapshot() {
		if !g.current(e) || e.phase != phaseUnstarted {
			continue
		}
		errs = multierr.Append(errs, g.startObject(e))
	}

	if g.freeRunning {
		g.scheduler.RequestFrame(g.animate)
	}

	return errs
}

// Tick runs one frame: every started object is updated in registration
// order, collisions and controls are processed, then the scene is rendered
// once. Objects registered during the frame are updated from the next frame
// on; objects removed during the frame are not updated again.
//
// Object failures do not interrupt the frame. They are returned joined
// together with the render error, if any.
func (g *Game) Tick() error {
	if g.state != StateRunning {
		return ErrNotRunning
	}

	errs, renderErr := g.tick()
	return multierr.Append(errs, renderErr)
}

func (g *Game) tick() (errs error, renderErr error) {
	delta := g.clock.Delta()
	g.frame = LoopData{
		Time:    g.clock.now(),
		Frame:   g.frame.Frame + 1,
		Delta:   delta,
		Elapsed: g.frame.Elapsed + delta,
	}

	for _, e := range g.registry.snapshot() {
		if !g.current(e) || e.phase != phaseStarted {
			continue
		}
		if err := call(e.object.Update); err != nil {
			errs = multierr.Append(errs, g.fail(e, PhaseUpdate, err))
		}
	}

	if g.collisions {
		errs = multierr.Append(errs, g.dispatchCollisions())
	}

	if g.controls != nil {
		g.controls.Update(delta)
	}

	if err := g.renderer.Render(g.scene, g.camera); err != nil {
		return errs, fmt.Errorf("tjs: render frame %d: %w", g.frame.Frame, err)
	}

	return errs, nil
}

// animate is the frame callback handed to the scheduler. It stops
// rescheduling itself once the game is no longer running.
func (g *Game) animate() {
	if g.state != StateRunning {
		return
	}

	errs, renderErr := g.tick()
	if errs != nil {
		g.logger.Debug("frame finished with object failures",
			zap.Int64("frame", g.frame.Frame),
			zap.Int("failures", len(multierr.Errors(errs))))
	}
	if renderErr != nil {
		g.logger.Error("render failed, stopping game", zap.Error(renderErr))
		g.loopErr = renderErr
		g.End()
		return
	}

	if g.state == StateRunning {
		g.scheduler.RequestFrame(g.animate)
	}
}

// End stops the clock and the animation loop. Registered objects are left
// as they are.
func (g *Game) End() {
	if g.state == StateStopped {
		return
	}

	g.clock.Stop()
	g.state = StateStopped

	g.logger.Info("game ended", zap.Int64("frames", g.frame.Frame))
	g.Emit(EventEnd, nil)
}

// Resize applies a new viewport size to the camera and the renderer.
// Non-positive sizes, as reported for minimized windows, are ignored.
func (g *Game) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		g.logger.Debug("ignoring resize", zap.Int("width", width), zap.Int("height", height))
		return
	}

	g.applyViewport(width, height)

	g.logger.Debug("viewport resized", zap.Int("width", width), zap.Int("height", height))
	g.Emit(EventResize, EventResizeData{Width: width, Height: height})
}

func (g *Game) applyViewport(width, height int) {
	g.width = width
	g.height = height

	g.camera.SetAspect(float64(width) / float64(height))
	g.camera.UpdateProjectionMatrix()
	g.renderer.SetSize(width, height)
}

func (g *Game) startObject(e *entry) error {
	e.phase = phaseStarted
	if err := call(func() error { return e.object.Start(g) }); err != nil {
		return g.fail(e, PhaseStart, err)
	}
	return nil
}

func (g *Game) fail(e *entry, phase Phase, err error) error {
	pe := &PhaseError{Object: e.object, Name: e.name, Phase: phase, Err: err}

	g.logger.Error("game object failed",
		append(objectFields(e.name, e.object), zap.String("phase", string(phase)), zap.Error(err))...)
	g.Emit(EventObjectFailed, pe)

	return pe
}

// current reports whether e is still the registry entry of its object.
func (g *Game) current(e *entry) bool {
	live, ok := g.registry.lookup(e.object)
	return ok && live == e
}

// SetScheduler replaces the frame scheduler used by the animation loop.
func (g *Game) SetScheduler(scheduler FrameScheduler) {
	g.scheduler = scheduler
}

func (g *Game) Get(name string) (GameObject, bool) {
	return g.registry.Get(name)
}

func (g *Game) NameOf(obj GameObject) (string, bool) {
	return g.registry.NameOf(obj)
}

func (g *Game) Objects() iter.Seq[GameObject] {
	return g.registry.All()
}

func (g *Game) Len() int {
	return g.registry.Len()
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Running() bool {
	return g.state == StateRunning
}

// Err returns the error that stopped the animation loop, if any.
func (g *Game) Err() error {
	return g.loopErr
}

func (g *Game) Frame() LoopData {
	return g.frame
}

func (g *Game) Clock() *Clock {
	return g.clock
}

func (g *Game) Scene() *engine.Scene {
	return g.scene
}

func (g *Game) Camera() engine.Camera {
	return g.camera
}

func (g *Game) Renderer() Renderer {
	return g.renderer
}

func (g *Game) Viewport() (width, height int) {
	return g.width, g.height
}

func (g *Game) FreeRunning() bool {
	return g.freeRunning
}

func (g *Game) Logger() *zap.Logger {
	return g.logger
}
