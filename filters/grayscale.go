package filters

import "github.com/soypat/pixgrid"

// GrayscaleMode determines the algorithm for RGB to grayscale conversion.
type GrayscaleMode int

const (
	// GrayscaleAverage uses the floor-averaged mean: (R + G + B) / 3.
	GrayscaleAverage GrayscaleMode = iota
	// GrayscaleLuminance uses ITU-R 601 weights: 0.299*R + 0.587*G + 0.114*B,
	// truncated on write.
	GrayscaleLuminance
)

func (m GrayscaleMode) String() string {
	switch m {
	case GrayscaleAverage:
		return "Average"
	case GrayscaleLuminance:
		return "Luminance"
	default:
		return "Unknown"
	}
}

// NewGrayscale creates a filter replacing each pixel with the shade of gray
// of matching brightness, computed per mode.
func NewGrayscale(mode GrayscaleMode) *PointFilter {
	filterMode := mode
	return &PointFilter{
		Fn: func(p pixgrid.Pixel) pixgrid.Pixel {
			switch filterMode {
			case GrayscaleLuminance:
				return pixgrid.Gray(toChannel(luminance601(p)))
			default:
				return pixgrid.Gray(uint8(brightness(p)))
			}
		},
		Ctrls: []pixgrid.Control{
			&pixgrid.ControlEnum[GrayscaleMode]{
				Name:        "Conversion Mode",
				Description: "Algorithm for RGB to grayscale conversion",
				Value:       filterMode,
				ValidValues: []GrayscaleMode{GrayscaleAverage, GrayscaleLuminance},
				OnChange: func(m GrayscaleMode) error {
					filterMode = m // Closure will assign and Fn above pick up.
					return nil
				},
			},
		},
	}
}

// Grayscale returns a grayscale copy of src using average brightness.
func Grayscale(src *pixgrid.Grid) (*pixgrid.Grid, error) {
	return NewGrayscale(GrayscaleAverage).Apply(src)
}

// WeightedGrayscale returns a grayscale copy of src using perceptually
// weighted luminance.
func WeightedGrayscale(src *pixgrid.Grid) (*pixgrid.Grid, error) {
	return NewGrayscale(GrayscaleLuminance).Apply(src)
}
