package filters

import "github.com/soypat/pixgrid"

var (
	black   = pixgrid.Pixel{}
	midGray = pixgrid.Gray(128)
	white   = pixgrid.Gray(255)
)

// NewBlackAndWhite creates a two-tone filter: pixels with brightness in the
// lower half of the 0-255 range become black, the rest white.
func NewBlackAndWhite() *PointFilter {
	return &PointFilter{
		Fn: func(p pixgrid.Pixel) pixgrid.Pixel {
			if brightness(p) < 128 {
				return black
			}
			return white
		},
	}
}

// BlackAndWhite returns a two-tone copy of src.
func BlackAndWhite(src *pixgrid.Grid) (*pixgrid.Grid, error) {
	return NewBlackAndWhite().Apply(src)
}

// NewBlackAndWhiteAndGray creates a three-tone filter: brightness below 85
// maps to black, below 171 to mid-gray, the rest to white.
func NewBlackAndWhiteAndGray() *PointFilter {
	return &PointFilter{
		Fn: func(p pixgrid.Pixel) pixgrid.Pixel {
			switch b := brightness(p); {
			case b < 85:
				return black
			case b < 171:
				return midGray
			default:
				return white
			}
		},
	}
}

// BlackAndWhiteAndGray returns a three-tone copy of src.
func BlackAndWhiteAndGray(src *pixgrid.Grid) (*pixgrid.Grid, error) {
	return NewBlackAndWhiteAndGray().Apply(src)
}

// NewExtremeContrast creates a filter thresholding each channel
// independently: below 128 to 0, otherwise to 255. Each output pixel is one
// of 8 possible colors, not tied to combined brightness.
func NewExtremeContrast() *PointFilter {
	return &PointFilter{
		Fn: func(p pixgrid.Pixel) pixgrid.Pixel {
			return pixgrid.Pixel{
				R: extremeChannel(p.R),
				G: extremeChannel(p.G),
				B: extremeChannel(p.B),
			}
		},
	}
}

func extremeChannel(c uint8) uint8 {
	if c < 128 {
		return 0
	}
	return 255
}

// ExtremeContrast returns a copy of src with per-channel contrast maximized.
func ExtremeContrast(src *pixgrid.Grid) (*pixgrid.Grid, error) {
	return NewExtremeContrast().Apply(src)
}

// NewPosterize creates a filter snapping each channel independently to the
// midpoint of its quarter of the intensity range.
func NewPosterize() *PointFilter {
	return &PointFilter{
		Fn: func(p pixgrid.Pixel) pixgrid.Pixel {
			return pixgrid.Pixel{
				R: quadrantMidpoint(p.R),
				G: quadrantMidpoint(p.G),
				B: quadrantMidpoint(p.B),
			}
		},
	}
}

// Posterize returns a posterized copy of src.
func Posterize(src *pixgrid.Grid) (*pixgrid.Grid, error) {
	return NewPosterize().Apply(src)
}

// NewSepiaTint creates a filter converting to weighted grayscale and then
// warming the result: blue is scaled down and red up in three tiers keyed
// on the gray value. Green keeps the gray value. Scaled channels are
// truncated and clamped on write; a gray value of 255 would otherwise push
// red to 275.
func NewSepiaTint() *PointFilter {
	return &PointFilter{
		Fn: func(p pixgrid.Pixel) pixgrid.Pixel {
			v := toChannel(luminance601(p))
			var rScale, bScale float64
			switch {
			case v < 63:
				rScale, bScale = 1.1, 0.9
			case v < 191:
				rScale, bScale = 1.15, 0.85
			default:
				rScale, bScale = 1.08, 0.93
			}
			return pixgrid.Pixel{
				R: toChannel(float64(v) * rScale),
				G: v,
				B: toChannel(float64(v) * bScale),
			}
		},
	}
}

// SepiaTint returns a sepia-toned copy of src.
func SepiaTint(src *pixgrid.Grid) (*pixgrid.Grid, error) {
	return NewSepiaTint().Apply(src)
}
