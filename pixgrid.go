// Package pixgrid provides a bounds-checked RGB pixel grid and the control
// surface shared by the filters operating on it.
//
// A Grid is a rectangular array of [Pixel] with fixed dimensions. Filters in
// the filters subpackage never mutate their input grid; each invocation
// allocates a fresh output grid, so a source grid may be read concurrently
// while several outputs are being computed.
package pixgrid

import (
	"errors"
	"fmt"
	"image"
	"iter"
)

// ErrEmptyImage reports a grid with zero width or height. Filters return it
// before iterating so bound computations such as width-1 never underflow.
var ErrEmptyImage = errors.New("empty image")

// Pixel is an RGB color triple. It is a plain value; two pixels with equal
// channels are the same color.
type Pixel struct {
	R, G, B uint8
}

// Gray returns a pixel with all three channels set to v.
func Gray(v uint8) Pixel {
	return Pixel{R: v, G: v, B: v}
}

// Grid is a fixed-size rectangular raster of RGB pixels addressed by
// (x, y) coordinates with 0 <= x < Width and 0 <= y < Height.
// Pixels are stored row-major. Dimensions never change after creation.
type Grid struct {
	width  int
	height int
	pix    []Pixel
}

// New allocates a zeroed (all-black) grid. Negative dimensions panic;
// zero dimensions are representable but rejected by filters, see Validate.
func New(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic("pixgrid: negative grid dimensions")
	}
	return &Grid{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// NumPixels returns the total amount of pixels contained in the grid.
func (g *Grid) NumPixels() int { return g.width * g.height }

// Validate returns ErrEmptyImage for grids with no addressable pixels.
func (g *Grid) Validate() error {
	if g.width < 1 || g.height < 1 {
		return ErrEmptyImage
	}
	return nil
}

// At returns the pixel at (x, y). Out-of-range coordinates panic,
// same contract as slice indexing.
func (g *Grid) At(x, y int) Pixel {
	if uint(x) >= uint(g.width) || uint(y) >= uint(g.height) {
		panic(fmt.Sprintf("pixgrid: At(%d, %d) out of %dx%d bounds", x, y, g.width, g.height))
	}
	return g.pix[y*g.width+x]
}

// Set writes the pixel at (x, y). Out-of-range coordinates panic.
func (g *Grid) Set(x, y int, p Pixel) {
	if uint(x) >= uint(g.width) || uint(y) >= uint(g.height) {
		panic(fmt.Sprintf("pixgrid: Set(%d, %d) out of %dx%d bounds", x, y, g.width, g.height))
	}
	g.pix[y*g.width+x] = p
}

// All iterates over every coordinate-pixel pair of the grid in row-major
// order: y advances outermost, x innermost. The sequence is finite and may
// be ranged over any number of times.
func (g *Grid) All() iter.Seq2[image.Point, Pixel] {
	return func(yield func(image.Point, Pixel) bool) {
		for y := 0; y < g.height; y++ {
			row := y * g.width
			for x := 0; x < g.width; x++ {
				if !yield(image.Point{X: x, Y: y}, g.pix[row+x]) {
					return
				}
			}
		}
	}
}

// Clone returns a new grid with identical dimensions and pixel contents.
// The clone shares no storage with the receiver.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		width:  g.width,
		height: g.height,
		pix:    make([]Pixel, len(g.pix)),
	}
	copy(out.pix, g.pix)
	return out
}

// Equal reports whether both grids have the same dimensions and
// pixel-identical contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.pix {
		if g.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}
