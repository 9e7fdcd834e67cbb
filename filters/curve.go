package filters

import (
	"github.com/chewxy/math32"
	"github.com/soypat/pixgrid"
)

// NewToneCurve creates a filter mapping each channel independently through
// the piecewise-linear curve described by points, with X the normalized
// input intensity and Y the normalized output intensity. An empty point set
// is the identity mapping. The curve is baked into a 256-entry lookup table
// which the curve control rebuilds on change.
func NewToneCurve(points []pixgrid.CurvePoint) *PointFilter {
	var lut [256]uint8
	bake := func(pts []pixgrid.CurvePoint) {
		for i := range lut {
			y := pixgrid.EvalCurve(pts, float32(i)/255)
			lut[i] = uint8(math32.Round(y * 255))
		}
	}
	bake(points)
	return &PointFilter{
		Fn: func(p pixgrid.Pixel) pixgrid.Pixel {
			return pixgrid.Pixel{R: lut[p.R], G: lut[p.G], B: lut[p.B]}
		},
		Ctrls: []pixgrid.Control{
			&pixgrid.ControlCurve{
				Name:        "Tone Curve",
				Description: "Per-channel intensity remapping curve",
				Points:      points,
				OnChange: func(pts []pixgrid.CurvePoint) error {
					bake(pts)
					return nil
				},
			},
		},
	}
}

// ToneCurve returns a copy of src with each channel remapped through the
// given curve.
func ToneCurve(src *pixgrid.Grid, points []pixgrid.CurvePoint) (*pixgrid.Grid, error) {
	return NewToneCurve(points).Apply(src)
}
