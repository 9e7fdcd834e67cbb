package filters

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/soypat/pixgrid"
)

// Step is a named stage of a Pipeline. The name labels errors so callers
// can tell which stage of a chain failed.
type Step struct {
	Name   string
	Filter Filter
}

// Pipeline applies filters in sequence, feeding each step's output to the
// next. It stops at the first failing step; earlier results are discarded.
type Pipeline struct {
	steps []Step
}

// NewPipeline creates a pipeline from the given steps.
func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Controls implements [Filter] by concatenating the controls of all steps.
func (p *Pipeline) Controls() []pixgrid.Control {
	var ctrls []pixgrid.Control
	for _, s := range p.steps {
		ctrls = append(ctrls, s.Filter.Controls()...)
	}
	return ctrls
}

// Apply implements [Filter]. An empty pipeline returns a clone so the
// result never aliases src.
func (p *Pipeline) Apply(src *pixgrid.Grid) (*pixgrid.Grid, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	cur := src
	for _, s := range p.steps {
		next, err := s.Filter.Apply(cur)
		if err != nil {
			return nil, fmt.Errorf("pipeline step %q: %w", s.Name, err)
		}
		cur = next
	}
	if cur == src {
		return src.Clone(), nil
	}
	return cur, nil
}

// Named constructs the filter registered under name. threshold feeds the
// parameterized filters (solarize, edges, edgesbetter) and is ignored by
// the rest.
func Named(name string, threshold int) (Filter, error) {
	switch name {
	case "grayscale":
		return NewGrayscale(GrayscaleAverage), nil
	case "weightedgrayscale":
		return NewGrayscale(GrayscaleLuminance), nil
	case "negative":
		return NewNegative(), nil
	case "solarize":
		return NewSolarize(threshold), nil
	case "blackandwhite":
		return NewBlackAndWhite(), nil
	case "blackandwhiteandgray":
		return NewBlackAndWhiteAndGray(), nil
	case "extremecontrast":
		return NewExtremeContrast(), nil
	case "sepia":
		return NewSepiaTint(), nil
	case "posterize":
		return NewPosterize(), nil
	case "edges":
		return NewDetectEdges(threshold), nil
	case "edgesbetter":
		return NewDetectEdgesBetter(threshold), nil
	case "blur":
		return NewBlurBetter(), nil
	case "flipvertical":
		return &FlipFilter{Axis: FlipAxisVertical}, nil
	case "fliphorizontal":
		return &FlipFilter{Axis: FlipAxisHorizontal}, nil
	}
	return nil, fmt.Errorf("unknown filter %q", name)
}

// Names lists the filter names accepted by Named and ParseChain.
func Names() []string {
	return []string{
		"grayscale", "weightedgrayscale", "negative", "solarize",
		"blackandwhite", "blackandwhiteandgray", "extremecontrast",
		"sepia", "posterize", "edges", "edgesbetter", "blur",
		"flipvertical", "fliphorizontal",
	}
}

// ParseChain builds a pipeline from a comma-separated chain description.
// Each element is a filter name, optionally with a threshold argument:
// "grayscale,solarize=128,edges=10".
func ParseChain(chain string) (*Pipeline, error) {
	var steps []Step
	for _, elem := range strings.Split(chain, ",") {
		elem = strings.TrimSpace(elem)
		if elem == "" {
			continue
		}
		name, arg, hasArg := strings.Cut(elem, "=")
		var threshold int
		if hasArg {
			var err error
			threshold, err = strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("filter %q: bad threshold %q", name, arg)
			}
		}
		f, err := Named(name, threshold)
		if err != nil {
			return nil, err
		}
		steps = append(steps, Step{Name: elem, Filter: f})
	}
	return NewPipeline(steps...), nil
}
