package pixgrid

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestFromImageRGBARoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	src := randomGrid(rng, 9, 5)
	back := FromImage(src.RGBA())
	if !src.Equal(back) {
		t.Error("grid changed through RGBA round trip")
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(2, 3, 6, 5))
	img.SetRGBA(2, 3, color.RGBA{R: 9, G: 8, B: 7, A: 255})
	g := FromImage(img)
	if g.Width() != 4 || g.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 4x2", g.Width(), g.Height())
	}
	if got := g.At(0, 0); got != (Pixel{R: 9, G: 8, B: 7}) {
		t.Errorf("origin pixel: got %+v", got)
	}
}

func TestRGBAOpaque(t *testing.T) {
	g := New(3, 3)
	g.Set(1, 1, Pixel{R: 200, G: 100, B: 50})
	img := g.RGBA()
	if got := img.RGBAAt(1, 1); got != (color.RGBA{R: 200, G: 100, B: 50, A: 255}) {
		t.Errorf("pixel (1,1): got %+v", got)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if a := img.RGBAAt(x, y).A; a != 255 {
				t.Errorf("pixel (%d,%d) alpha %d, want 255", x, y, a)
			}
		}
	}
}
