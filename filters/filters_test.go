package filters

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/soypat/pixgrid"
)

func randomGrid(rng *rand.Rand, width, height int) *pixgrid.Grid {
	g := pixgrid.New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Set(x, y, pixgrid.Pixel{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
			})
		}
	}
	return g
}

// everyFilter lists all facade filters with representative parameters.
func everyFilter() []struct {
	name  string
	apply func(*pixgrid.Grid) (*pixgrid.Grid, error)
} {
	return []struct {
		name  string
		apply func(*pixgrid.Grid) (*pixgrid.Grid, error)
	}{
		{"grayscale", Grayscale},
		{"weightedgrayscale", WeightedGrayscale},
		{"negative", Negative},
		{"solarize", func(g *pixgrid.Grid) (*pixgrid.Grid, error) { return Solarize(g, 128) }},
		{"blackandwhite", BlackAndWhite},
		{"blackandwhiteandgray", BlackAndWhiteAndGray},
		{"extremecontrast", ExtremeContrast},
		{"sepia", SepiaTint},
		{"posterize", Posterize},
		{"tonecurve", func(g *pixgrid.Grid) (*pixgrid.Grid, error) {
			return ToneCurve(g, []pixgrid.CurvePoint{{X: 0, Y: 0}, {X: 1, Y: 0.8}})
		}},
		{"edges", func(g *pixgrid.Grid) (*pixgrid.Grid, error) { return DetectEdges(g, 10) }},
		{"edgesbetter", func(g *pixgrid.Grid) (*pixgrid.Grid, error) { return DetectEdgesBetter(g, 10) }},
		{"blur", BlurBetter},
		{"flipvertical", FlipVertical},
		{"fliphorizontal", FlipHorizontal},
	}
}

func TestDimensionPreservation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, dims := range [][2]int{{1, 1}, {2, 2}, {3, 7}, {16, 9}} {
		src := randomGrid(rng, dims[0], dims[1])
		for _, f := range everyFilter() {
			dst, err := f.apply(src)
			if err != nil {
				t.Fatalf("%s on %dx%d: %v", f.name, dims[0], dims[1], err)
			}
			if dst.Width() != src.Width() || dst.Height() != src.Height() {
				t.Errorf("%s on %dx%d: output %dx%d", f.name, dims[0], dims[1], dst.Width(), dst.Height())
			}
		}
	}
}

func TestInputImmutability(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	src := randomGrid(rng, 13, 11)
	before := src.Clone()
	for _, f := range everyFilter() {
		dst, err := f.apply(src)
		if err != nil {
			t.Fatalf("%s: %v", f.name, err)
		}
		if !src.Equal(before) {
			t.Fatalf("%s mutated its input", f.name)
		}
		if dst == src {
			t.Fatalf("%s returned its input grid", f.name)
		}
	}
}

func TestEmptyGridRejected(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 4}, {4, 0}} {
		empty := pixgrid.New(dims[0], dims[1])
		for _, f := range everyFilter() {
			_, err := f.apply(empty)
			if !errors.Is(err, pixgrid.ErrEmptyImage) {
				t.Errorf("%s on %dx%d: got %v, want ErrEmptyImage", f.name, dims[0], dims[1], err)
			}
		}
	}
}

func TestPointFilterNilFunc(t *testing.T) {
	var f PointFilter
	_, err := f.Apply(pixgrid.New(2, 2))
	if err == nil {
		t.Error("nil PointFunc accepted")
	}
	var n NeighborhoodFilter
	_, err = n.Apply(pixgrid.New(2, 2))
	if err == nil {
		t.Error("nil NeighborhoodFunc accepted")
	}
}

func TestWorkerCountDoesNotChangeOutput(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	src := randomGrid(rng, 31, 17)
	serial := NewGrayscale(GrayscaleLuminance)
	serial.Opts = Options{Workers: 1}
	parallel := NewGrayscale(GrayscaleLuminance)
	parallel.Opts = Options{Workers: 7}

	want, err := serial.Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	got, err := parallel.Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	if !want.Equal(got) {
		t.Error("parallel output differs from serial output")
	}

	blurSerial := NewBlurBetter()
	blurSerial.Opts = Options{Workers: 1}
	blurParallel := NewBlurBetter()
	blurParallel.Opts = Options{Workers: 5}
	want, err = blurSerial.Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	got, err = blurParallel.Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	if !want.Equal(got) {
		t.Error("parallel blur differs from serial blur")
	}
}
