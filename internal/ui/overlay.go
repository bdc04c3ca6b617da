//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"minesweeper/pkg/minesweeper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the board.
type Overlay struct {
	scale    int
	top      int
	showMine bool
	showSafe bool
	banner   string

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for tiles scale pixels wide drawn top
// pixels below the top of the screen.
func NewOverlay(scale, top int) *Overlay {
	o := &Overlay{scale: scale, top: top}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetBanner sets the message shown across the board; empty hides it.
func (o *Overlay) SetBanner(msg string) { o.banner = msg }

// Update toggles the mine peek (1) and the safe zone view (2).
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showMine = !o.showMine
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showSafe = !o.showSafe
	}
}

// Draw renders the enabled layers for the snapshot.
func (o *Overlay) Draw(screen *ebiten.Image, snap *minesweeper.Snapshot) {
	if snap == nil || snap.Width <= 0 || snap.Height <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showMine || o.showSafe {
		for i, t := range snap.Tiles {
			x, y := i%snap.Width, i/snap.Width
			rect := image.Rect(x*scale, o.top+y*scale, (x+1)*scale, o.top+(y+1)*scale)
			switch {
			case o.showMine && t.IsMine() && !t.Swept:
				fillRect(screen, o.pixel, rect.Inset(scale/4), color.RGBA{R: 255, G: 60, B: 40, A: 140})
			case o.showSafe && t.Safe:
				fillRect(screen, o.pixel, rect, color.RGBA{R: 64, G: 164, B: 223, A: 90})
			}
		}
	}
	if o.banner != "" {
		w := snap.Width * scale
		strip := image.Rect(0, o.top+snap.Height*scale/2-12, w, o.top+snap.Height*scale/2+12)
		fillRect(screen, o.pixel, strip, color.RGBA{R: 0, G: 0, B: 0, A: 170})
		drawCentered(screen, o.banner, strip, color.White)
	}
}
