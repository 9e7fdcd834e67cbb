package filters

import "github.com/soypat/pixgrid"

// NewNegative creates a filter inverting every channel of every pixel.
func NewNegative() *PointFilter {
	return &PointFilter{
		Fn: func(p pixgrid.Pixel) pixgrid.Pixel {
			return pixgrid.Pixel{R: 255 - p.R, G: 255 - p.G, B: 255 - p.B}
		},
	}
}

// Negative returns a color negative copy of src.
func Negative(src *pixgrid.Grid) (*pixgrid.Grid, error) {
	return NewNegative().Apply(src)
}

// NewSolarize creates a filter inverting only the channels with intensity
// below threshold. Channels are solarized independently of each other.
//
// threshold is documented in 0-256; out-of-range values degrade gracefully:
// 0 and below never invert, 256 and above always invert.
func NewSolarize(threshold int) *PointFilter {
	limit := threshold
	return &PointFilter{
		Fn: func(p pixgrid.Pixel) pixgrid.Pixel {
			if int(p.R) < limit {
				p.R = 255 - p.R
			}
			if int(p.G) < limit {
				p.G = 255 - p.G
			}
			if int(p.B) < limit {
				p.B = 255 - p.B
			}
			return p
		},
		Ctrls: []pixgrid.Control{
			&pixgrid.ControlOrdered[int]{
				Name:        "Threshold",
				Description: "Channel intensities below this value are inverted",
				Value:       limit,
				Min:         0,
				Max:         256,
				Step:        1,
				OnChange: func(v int) error {
					limit = v
					return nil
				},
			},
		},
	}
}

// Solarize returns a copy of src with channel intensities below threshold
// inverted.
func Solarize(src *pixgrid.Grid, threshold int) (*pixgrid.Grid, error) {
	return NewSolarize(threshold).Apply(src)
}
