//go:build ebiten

package app

import (
	"minesweeper/internal/core"
	"minesweeper/internal/render"
	"minesweeper/internal/solver"
	"minesweeper/internal/ui"
	"minesweeper/pkg/minesweeper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

const hudMinHeight = 200

// Game adapts a minesweeper round to the ebiten.Game interface.
type Game struct {
	game    *minesweeper.Game
	layout  Layout
	painter *render.BoardPainter
	top     *ui.TopBar
	hud     *ui.HUD
	overlay *ui.Overlay
	ctl     *Controller
	status  *Status

	bot      *solver.Solver
	step     *core.FixedStep
	autoplay bool
	pressing bool

	log logrus.FieldLogger
}

// New constructs the host for g.
func New(g *minesweeper.Game, cfg *Config, log logrus.FieldLogger) *Game {
	size := g.Board().Size()
	hud := ui.NewHUD(g, cfg.HUDWidth)
	h := &Game{
		game: g,
		layout: Layout{
			Cols:      size.W,
			Rows:      size.H,
			Scale:     cfg.Scale,
			Top:       ui.TopBarHeight,
			HUDWidth:  hud.Width(),
			MinHeight: hudMinHeight,
		},
		painter: render.NewBoardPainter(size.W, size.H),
		top:     ui.NewTopBar(),
		hud:     hud,
		overlay: ui.NewOverlay(cfg.Scale, ui.TopBarHeight),
		ctl:     NewController(g),
		status:  NewStatus(log),
		bot:     solver.New(nil),
		step:    core.NewFixedStep(cfg.AutoplayRate, nil),
		log:     log,
	}
	return h
}

// ScreenSize returns the window size the host needs.
func (h *Game) ScreenSize() (int, int) { return h.layout.ScreenSize() }

func (h *Game) reset() {
	h.game.Reset()
	h.log.Debug("reset requested")
}

// syncLayout follows board size changes made from the settings panel.
func (h *Game) syncLayout() {
	size := h.game.Board().Size()
	if size.W == h.layout.Cols && size.H == h.layout.Rows {
		return
	}
	h.layout.Cols, h.layout.Rows = size.W, size.H
	ebiten.SetWindowSize(h.layout.ScreenSize())
	h.log.WithFields(logrus.Fields{"w": size.W, "h": size.H}).Info("board resized")
}

func (h *Game) pointer() Pointer {
	mx, my := ebiten.CursorPosition()
	x, y, inside := h.layout.CellAt(mx, my)
	return Pointer{
		X:             x,
		Y:             y,
		Inside:        inside,
		LeftHeld:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		LeftReleased:  inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		RightPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		MiddleHeld:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		MiddlePressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle),
	}
}

// Update handles per-frame input and drains the round's events.
func (h *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		h.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		h.autoplay = !h.autoplay
		h.step.Restart()
		h.log.WithField("autoplay", h.autoplay).Info("autoplay toggled")
	}

	if h.top.Update(h.layout.BoardWidth()) {
		h.reset()
	}
	if h.hud.Update(h.layout.BoardWidth()) {
		h.syncLayout()
	}
	h.overlay.Update()

	h.pressing = h.ctl.Handle(h.pointer())

	if h.autoplay && h.step.ShouldStep() {
		if _, ok := h.bot.Step(h.game); !ok {
			h.autoplay = false
		}
	}

	h.status.Observe(h.game.Events().Drain())
	h.overlay.SetBanner(h.status.Banner())
	return nil
}

// Draw renders the top bar, the board, the overlay and the settings panel.
func (h *Game) Draw(screen *ebiten.Image) {
	state := h.game.State()
	seconds := 0
	if d, ok := h.game.Elapsed(); ok {
		seconds = int(d.Seconds())
	}
	face := render.SmileyFor(state, h.pressing, h.top.Pressed())
	width := h.layout.BoardWidth()
	h.top.Draw(screen, width, render.FlagCounter(h.game.RemainingFlags()), render.TimerCounter(seconds), face)

	snap := h.game.Board().Snapshot()
	h.painter.Draw(screen, snap, state.Terminal(), h.layout.Scale, h.layout.Top)
	h.overlay.Draw(screen, snap)

	_, height := h.layout.ScreenSize()
	h.hud.Draw(screen, width, height)
}

// Layout returns the logical screen size.
func (h *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.layout.ScreenSize()
}
