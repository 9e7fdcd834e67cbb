package filters

import "github.com/soypat/pixgrid"

// FlipAxis selects the mirror line of a FlipFilter.
type FlipAxis int

const (
	// FlipAxisVertical mirrors around a vertical line through the midpoint:
	// interior pixel (x, y) moves to (width-x-1, y).
	FlipAxisVertical FlipAxis = iota
	// FlipAxisHorizontal mirrors around a horizontal line through the
	// midpoint: interior pixel (x, y) moves to (x, height-y-1).
	FlipAxisHorizontal
)

func (a FlipAxis) String() string {
	switch a {
	case FlipAxisVertical:
		return "Vertical"
	case FlipAxisHorizontal:
		return "Horizontal"
	default:
		return "Unknown"
	}
}

// FlipFilter permutes pixel coordinates without altering colors. Like the
// neighborhood filters, the output starts as a copy and only interior
// pixels are reassigned: the one-pixel frame stays unflipped. Mirroring an
// interior coordinate lands on an interior coordinate, so the frame is
// never overwritten either.
type FlipFilter struct {
	Axis FlipAxis
	Opts Options
}

// Controls implements [Filter].
func (f *FlipFilter) Controls() []pixgrid.Control { return nil }

// Apply implements [Filter].
func (f *FlipFilter) Apply(src *pixgrid.Grid) (*pixgrid.Grid, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	width, height := src.Width(), src.Height()
	dst := src.Clone()
	horizontal := f.Axis == FlipAxisHorizontal
	// Each source row writes exactly one destination row (itself for
	// vertical, its mirror for horizontal), so row bands stay disjoint.
	forEachRowBand(1, height-1, f.Opts.workers(), func(band0, band1 int) {
		for y := band0; y < band1; y++ {
			for x := 1; x < width-1; x++ {
				if horizontal {
					dst.Set(x, height-y-1, src.At(x, y))
				} else {
					dst.Set(width-x-1, y, src.At(x, y))
				}
			}
		}
	})
	return dst, nil
}

// FlipVertical returns a copy of src mirrored around a vertical line
// through its midpoint.
func FlipVertical(src *pixgrid.Grid) (*pixgrid.Grid, error) {
	return (&FlipFilter{Axis: FlipAxisVertical}).Apply(src)
}

// FlipHorizontal returns a copy of src mirrored around a horizontal line
// through its midpoint.
func FlipHorizontal(src *pixgrid.Grid) (*pixgrid.Grid, error) {
	return (&FlipFilter{Axis: FlipAxisHorizontal}).Apply(src)
}
