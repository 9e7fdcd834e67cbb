package filters

import "github.com/soypat/pixgrid"

// NeighborhoodFunc computes the output color at (x, y) from a fixed window
// of source pixels around (x, y). It is only invoked for interior
// coordinates, so reads one pixel away in any direction stay in bounds.
type NeighborhoodFunc func(src *pixgrid.Grid, x, y int) pixgrid.Pixel

// NeighborhoodFilter applies a fixed-window transformation to every interior
// pixel. The output starts as a copy of the input: the outermost one-pixel
// border, where the full window is unavailable, keeps its original colors.
// Windows read the source grid while writes go to the disjoint output grid,
// so neighbor reads never observe partial results.
type NeighborhoodFilter struct {
	Fn    NeighborhoodFunc
	Opts  Options
	Ctrls []pixgrid.Control
}

// Controls implements [Filter].
func (f *NeighborhoodFilter) Controls() []pixgrid.Control {
	return f.Ctrls
}

// Apply implements [Filter].
func (f *NeighborhoodFilter) Apply(src *pixgrid.Grid) (*pixgrid.Grid, error) {
	if f.Fn == nil {
		return nil, errNilNeighborhoodFunc
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	width, height := src.Width(), src.Height()
	dst := src.Clone()
	forEachRowBand(1, height-1, f.Opts.workers(), func(band0, band1 int) {
		for y := band0; y < band1; y++ {
			for x := 1; x < width-1; x++ {
				dst.Set(x, y, f.Fn(src, x, y))
			}
		}
	})
	return dst, nil
}

var errNilNeighborhoodFunc = errorString("nil NeighborhoodFunc")
