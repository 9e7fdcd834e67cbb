package filters

import (
	"math"

	"github.com/soypat/pixgrid"
)

// brightness is the floor-averaged mean of the three channels, range 0-255.
func brightness(p pixgrid.Pixel) int {
	return (int(p.R) + int(p.G) + int(p.B)) / 3
}

// luminance601 is the perceptual brightness with ITU-R 601 luma weights.
// Kept as a real number until the final channel write, see toChannel.
func luminance601(p pixgrid.Pixel) float64 {
	return 0.299*float64(p.R) + 0.587*float64(p.G) + 0.114*float64(p.B)
}

// toChannel converts a real-valued channel to storage form: truncation
// toward zero, then clamped to 0-255. Every filter performing non-integer
// arithmetic funnels its final write through this one conversion.
func toChannel(v float64) uint8 {
	t := math.Trunc(v)
	if t < 0 {
		return 0
	}
	if t > 255 {
		return 255
	}
	return uint8(t)
}

// quadrantMidpoint maps a channel value to the midpoint of the quarter of
// the 0-256 range it falls in. Boundaries are half-open on the low end:
// 64, 128 and 192 belong to the next bucket up.
func quadrantMidpoint(v uint8) uint8 {
	switch {
	case v < 64:
		return 31
	case v < 128:
		return 95
	case v < 192:
		return 159
	default:
		return 223
	}
}
