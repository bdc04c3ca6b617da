//go:build ebiten

package render

import (
	"image/color"

	"minesweeper/pkg/minesweeper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var gridLineColor = color.RGBA{R: 80, G: 82, B: 92, A: 255}

// BoardPainter keeps one pixel per tile in an image that is scaled up to
// the tile size, then draws grid lines and glyphs on top.
type BoardPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	faces []TileFace
}

// NewBoardPainter allocates a painter for a w*h board.
func NewBoardPainter(w, h int) *BoardPainter {
	bp := &BoardPainter{}
	bp.resize(w, h)
	return bp
}

func (bp *BoardPainter) resize(w, h int) {
	bp.w, bp.h = w, h
	bp.buf = make([]byte, 4*w*h)
	bp.img = ebiten.NewImage(w, h)
}

// Size returns the board dimensions the painter is sized for.
func (bp *BoardPainter) Size() (int, int) { return bp.w, bp.h }

// Draw renders the snapshot with every tile scale pixels wide, offset by
// top pixels from the top of dst.
func (bp *BoardPainter) Draw(dst *ebiten.Image, snap *minesweeper.Snapshot, over bool, scale, top int) {
	if snap.Width != bp.w || snap.Height != bp.h {
		bp.resize(snap.Width, snap.Height)
	}
	if scale <= 0 {
		scale = 1
	}
	bp.faces = FacesFor(snap, over, bp.faces)
	fillFaceRGBA(bp.buf, bp.faces, DefaultPalette[:])
	bp.img.WritePixels(bp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(0, float64(top))
	dst.DrawImage(bp.img, op)

	s := float32(scale)
	for x := 0; x <= bp.w; x++ {
		vector.DrawFilledRect(dst, float32(x)*s, float32(top), 1, float32(bp.h)*s, gridLineColor, false)
	}
	for y := 0; y <= bp.h; y++ {
		vector.DrawFilledRect(dst, 0, float32(top)+float32(y)*s, float32(bp.w)*s, 1, gridLineColor, false)
	}

	face := basicfont.Face7x13
	for i, f := range bp.faces {
		glyph := f.Glyph()
		if glyph == "" {
			continue
		}
		tx, ty := i%bp.w, i/bp.w
		bounds := text.BoundString(face, glyph)
		x := tx*scale + (scale-bounds.Dx())/2
		y := top + ty*scale + (scale-bounds.Dy())/2 + bounds.Dy()
		text.Draw(dst, glyph, face, x, y, GlyphColors[f])
	}
}
