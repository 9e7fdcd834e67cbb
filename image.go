package pixgrid

import (
	"image"
	"image/color"
)

// FromImage copies img into a new grid. Alpha is discarded; callers
// decoding formats with transparency should composite beforehand.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	g := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			r, gr, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			g.pix[y*g.width+x] = Pixel{
				R: uint8(r >> 8),
				G: uint8(gr >> 8),
				B: uint8(b >> 8),
			}
		}
	}
	return g
}

// RGBA copies the grid into a fully opaque stdlib RGBA image, the hand-off
// point to encoders and displays. The grid engine itself performs no I/O.
func (g *Grid) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := g.pix[y*g.width+x]
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}
