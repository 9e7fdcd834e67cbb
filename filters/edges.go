package filters

import "github.com/soypat/pixgrid"

// NewDetectEdges creates an edge detector comparing each interior pixel only
// against the pixel directly below it: where the brightness drop
// (brightness(pixel) - brightness(below)) stays under threshold the output
// is white, otherwise black.
//
// NewDetectEdgesBetter samples more neighbors but also compares in the
// opposite direction with the opposite output colors; the two detectors are
// deliberately kept as independent filters.
func NewDetectEdges(threshold int) *NeighborhoodFilter {
	limit := threshold
	return &NeighborhoodFilter{
		Fn: func(src *pixgrid.Grid, x, y int) pixgrid.Pixel {
			contrast := brightness(src.At(x, y)) - brightness(src.At(x, y+1))
			if contrast < limit {
				return white
			}
			return black
		},
		Ctrls: []pixgrid.Control{thresholdControl(&limit)},
	}
}

// DetectEdges returns an edge-detected copy of src, see NewDetectEdges.
func DetectEdges(src *pixgrid.Grid, threshold int) (*pixgrid.Grid, error) {
	return NewDetectEdges(threshold).Apply(src)
}

// NewDetectEdgesBetter creates an edge detector comparing each interior
// pixel against the pixels below and to its right: if either brightness
// drop exceeds threshold the output is black, otherwise white. Note the
// comparison direction and output colors are inverted relative to
// NewDetectEdges.
func NewDetectEdgesBetter(threshold int) *NeighborhoodFilter {
	limit := threshold
	return &NeighborhoodFilter{
		Fn: func(src *pixgrid.Grid, x, y int) pixgrid.Pixel {
			center := brightness(src.At(x, y))
			contrastBelow := center - brightness(src.At(x, y+1))
			contrastRight := center - brightness(src.At(x+1, y))
			if contrastBelow > limit || contrastRight > limit {
				return black
			}
			return white
		},
		Ctrls: []pixgrid.Control{thresholdControl(&limit)},
	}
}

// DetectEdgesBetter returns an edge-detected copy of src, see
// NewDetectEdgesBetter.
func DetectEdgesBetter(src *pixgrid.Grid, threshold int) (*pixgrid.Grid, error) {
	return NewDetectEdgesBetter(threshold).Apply(src)
}

// thresholdControl exposes an edge detection threshold. Brightness contrast
// between two pixels spans -255..255.
func thresholdControl(limit *int) pixgrid.Control {
	return &pixgrid.ControlOrdered[int]{
		Name:        "Threshold",
		Description: "Brightness contrast at which a pixel counts as an edge",
		Value:       *limit,
		Min:         -255,
		Max:         255,
		Step:        1,
		OnChange: func(v int) error {
			*limit = v
			return nil
		},
	}
}
