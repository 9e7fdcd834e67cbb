package filters

import "github.com/soypat/pixgrid"

// NewBlurBetter creates a 3x3 box blur: each interior pixel becomes the
// floor-averaged mean of itself and its 8 neighbors, per channel. The
// one-pixel border keeps its original colors.
func NewBlurBetter() *NeighborhoodFilter {
	return &NeighborhoodFilter{
		Fn: func(src *pixgrid.Grid, x, y int) pixgrid.Pixel {
			var r, g, b int
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					p := src.At(x+dx, y+dy)
					r += int(p.R)
					g += int(p.G)
					b += int(p.B)
				}
			}
			return pixgrid.Pixel{
				R: uint8(r / 9),
				G: uint8(g / 9),
				B: uint8(b / 9),
			}
		},
	}
}

// BlurBetter returns a box-blurred copy of src.
func BlurBetter(src *pixgrid.Grid) (*pixgrid.Grid, error) {
	return NewBlurBetter().Apply(src)
}
