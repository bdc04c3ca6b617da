package render

import "image/color"

// DefaultPalette holds the background color of every face.
var DefaultPalette = [faceCount]color.RGBA{
	FaceUnknown:   {R: 120, G: 124, B: 136, A: 255},
	FaceRevealed:  {R: 196, G: 198, B: 204, A: 255},
	FaceFlag:      {R: 120, G: 124, B: 136, A: 255},
	FaceQuestion:  {R: 120, G: 124, B: 136, A: 255},
	FaceInvalid:   {R: 196, G: 198, B: 204, A: 255},
	FaceMine:      {R: 196, G: 198, B: 204, A: 255},
	FaceExplosion: {R: 220, G: 40, B: 40, A: 255},
	FaceFalseFlag: {R: 196, G: 198, B: 204, A: 255},
	FaceOne:       {R: 196, G: 198, B: 204, A: 255},
	FaceTwo:       {R: 196, G: 198, B: 204, A: 255},
	FaceThree:     {R: 196, G: 198, B: 204, A: 255},
	FaceFour:      {R: 196, G: 198, B: 204, A: 255},
	FaceFive:      {R: 196, G: 198, B: 204, A: 255},
	FaceSix:       {R: 196, G: 198, B: 204, A: 255},
	FaceSeven:     {R: 196, G: 198, B: 204, A: 255},
	FaceEight:     {R: 196, G: 198, B: 204, A: 255},
}

// GlyphColors holds the label color of faces that carry one.
var GlyphColors = [faceCount]color.RGBA{
	FaceFlag:      {R: 200, G: 20, B: 20, A: 255},
	FaceQuestion:  {R: 20, G: 20, B: 20, A: 255},
	FaceInvalid:   {R: 20, G: 20, B: 20, A: 255},
	FaceMine:      {R: 10, G: 10, B: 10, A: 255},
	FaceExplosion: {R: 10, G: 10, B: 10, A: 255},
	FaceFalseFlag: {R: 200, G: 20, B: 20, A: 255},
	FaceOne:       {R: 0, G: 0, B: 255, A: 255},
	FaceTwo:       {R: 0, G: 128, B: 0, A: 255},
	FaceThree:     {R: 255, G: 0, B: 0, A: 255},
	FaceFour:      {R: 0, G: 0, B: 128, A: 255},
	FaceFive:      {R: 128, G: 0, B: 0, A: 255},
	FaceSix:       {R: 0, G: 128, B: 128, A: 255},
	FaceSeven:     {R: 0, G: 0, B: 0, A: 255},
	FaceEight:     {R: 128, G: 128, B: 128, A: 255},
}

// fillFaceRGBA converts faces into RGBA pixels using a palette. Faces past the
// end of the palette use its last entry; an empty palette clears the buffer
// to transparent black.
func fillFaceRGBA(buf []byte, faces []TileFace, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range faces {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, f := range faces {
		idx := int(f)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
