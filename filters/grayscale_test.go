package filters

import (
	"math/rand"
	"testing"

	"github.com/soypat/pixgrid"
)

func TestGrayscaleNeutral(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	src := randomGrid(rng, 12, 8)
	gray, err := Grayscale(src)
	if err != nil {
		t.Fatal(err)
	}
	for pt, p := range gray.All() {
		if p.R != p.G || p.G != p.B {
			t.Fatalf("pixel %v not neutral: %+v", pt, p)
		}
		want := uint8(brightness(src.At(pt.X, pt.Y)))
		if p.R != want {
			t.Fatalf("pixel %v: got %d, want brightness %d", pt, p.R, want)
		}
	}
}

func TestGrayscaleIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	src := randomGrid(rng, 10, 10)
	once, err := Grayscale(src)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Grayscale(once)
	if err != nil {
		t.Fatal(err)
	}
	if !once.Equal(twice) {
		t.Error("grayscale applied twice differs from once")
	}
}

func TestWeightedGrayscaleTruncates(t *testing.T) {
	src := pixgrid.New(1, 1)
	src.Set(0, 0, pixgrid.Pixel{R: 10, G: 20, B: 30})
	// 0.299*10 + 0.587*20 + 0.114*30 = 18.15, truncates to 18.
	dst, err := WeightedGrayscale(src)
	if err != nil {
		t.Fatal(err)
	}
	if got := dst.At(0, 0); got != pixgrid.Gray(18) {
		t.Errorf("got %+v, want gray 18", got)
	}
}

func TestGrayscaleModeControl(t *testing.T) {
	f := NewGrayscale(GrayscaleAverage)
	ctrls := f.Controls()
	if len(ctrls) != 1 {
		t.Fatalf("got %d controls, want 1", len(ctrls))
	}
	if err := ctrls[0].ChangeValue(GrayscaleLuminance); err != nil {
		t.Fatal(err)
	}
	src := pixgrid.New(1, 1)
	src.Set(0, 0, pixgrid.Pixel{R: 10, G: 20, B: 30})
	dst, err := f.Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	if got := dst.At(0, 0); got != pixgrid.Gray(18) {
		t.Errorf("after mode change: got %+v, want luminance gray 18", got)
	}
	if err := ctrls[0].ChangeValue(GrayscaleMode(99)); err == nil {
		t.Error("invalid mode accepted")
	}
}
