package tjs

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Presenter draws the last rendered frame onto the ebiten screen.
type Presenter interface {
	Present(screen *ebiten.Image)
}

var (
	_ ebiten.Game    = (*Window)(nil)
	_ FrameScheduler = (*Window)(nil)
)

// Window runs a Game inside an ebiten window. It schedules the game's
// frames on ebiten's update loop and reports window size changes back to
// the game.
type Window struct {
	Title string

	game      *Game
	presenter Presenter
	pending   []func()

	width  int
	height int
}

func NewWindow(game *Game, title string) *Window {
	if title == "" {
		title = DefaultTitle
	}

	w := &Window{
		Title: title,
		game:  game,
	}
	w.width, w.height = game.Viewport()

	if p, ok := game.Renderer().(Presenter); ok {
		w.presenter = p
	}

	game.SetScheduler(w)

	return w
}

func (w *Window) RequestFrame(fn func()) {
	w.pending = append(w.pending, fn)
}

func (w *Window) Update() error {
	if err := w.game.Err(); err != nil {
		return err
	}
	if w.game.State() == StateStopped {
		return ebiten.Termination
	}

	pending := w.pending
	w.pending = nil
	for _, fn := range pending {
		fn()
	}

	return w.game.Err()
}

func (w *Window) Draw(screen *ebiten.Image) {
	if w.presenter != nil {
		w.presenter.Present(screen)
	}
}

// Layout is called by ebiten with the outside size of the window. Only size
// changes are forwarded to the game.
func (w *Window) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.game.Resize(outsideWidth, outsideHeight)
	}

	return w.game.Viewport()
}

// Run opens the window, starts the game if needed and blocks until the
// window is closed or the game ends.
func (w *Window) Run() error {
	width, height := w.game.Viewport()

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if w.game.State() == StateIdle {
		if err := w.game.Start(); err != nil {
			if !phaseOnly(err) {
				return err
			}
			w.game.Logger().Warn("some game objects failed to start", zap.Error(err))
		}
	}

	err := ebiten.RunGame(w)
	w.game.End()
	return err
}
