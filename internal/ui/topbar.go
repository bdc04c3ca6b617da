//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"minesweeper/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// TopBarHeight is the height of the counter strip above the board.
const TopBarHeight = 40

const faceButtonSize = 28

// TopBar draws the remaining flag count, the reset face and the timer.
type TopBar struct {
	pixel     *ebiten.Image
	faceRect  image.Rectangle
	pressed   bool
	lastWidth int
}

// NewTopBar constructs a top bar.
func NewTopBar() *TopBar {
	tb := &TopBar{pixel: ebiten.NewImage(1, 1)}
	tb.pixel.Fill(color.White)
	return tb
}

// Pressed reports whether the reset face is held down.
func (tb *TopBar) Pressed() bool { return tb != nil && tb.pressed }

// Update tracks clicks on the face for a bar width pixels wide. It reports
// true when a click is released over the face.
func (tb *TopBar) Update(width int) bool {
	if tb == nil {
		return false
	}
	tb.layout(width)
	mx, my := ebiten.CursorPosition()
	over := pointInRect(mx, my, tb.faceRect)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && over {
		tb.pressed = true
	}
	if tb.pressed && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		tb.pressed = false
		return over
	}
	return false
}

func (tb *TopBar) layout(width int) {
	if width == tb.lastWidth {
		return
	}
	tb.lastWidth = width
	x := (width - faceButtonSize) / 2
	y := (TopBarHeight - faceButtonSize) / 2
	tb.faceRect = image.Rect(x, y, x+faceButtonSize, y+faceButtonSize)
}

// Draw paints the bar across the top width pixels of screen.
func (tb *TopBar) Draw(screen *ebiten.Image, width int, flags, timer string, face render.Smiley) {
	if tb == nil {
		return
	}
	tb.layout(width)
	fillRect(screen, tb.pixel, image.Rect(0, 0, width, TopBarHeight), color.RGBA{R: 30, G: 30, B: 36, A: 255})

	counter := color.RGBA{R: 230, G: 40, B: 40, A: 255}
	font := basicfont.Face7x13
	baseline := (TopBarHeight + 13) / 2
	text.Draw(screen, flags, font, panelPadding, baseline, counter)
	bounds := text.BoundString(font, timer)
	text.Draw(screen, timer, font, width-panelPadding-bounds.Dx(), baseline, counter)

	bg := color.RGBA{R: 200, G: 180, B: 40, A: 255}
	if tb.pressed {
		bg = color.RGBA{R: 150, G: 135, B: 30, A: 255}
	}
	fillRect(screen, tb.pixel, tb.faceRect, bg)
	drawCentered(screen, face.String(), tb.faceRect, color.Black)
}
