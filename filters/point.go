// Package filters implements the raster transforms of the pixgrid engine:
// per-pixel tonal filters, fixed-window neighborhood filters and coordinate
// flips. Every filter is a pure function over its input grid: the source is
// never mutated and each application returns a freshly allocated grid of
// identical dimensions.
package filters

import (
	"runtime"
	"sync"

	"github.com/soypat/pixgrid"
)

// Filter transforms a source grid into a new grid of the same dimensions.
type Filter interface {
	// Apply computes the filtered grid. The source is only read and the
	// returned grid shares no storage with it.
	Apply(src *pixgrid.Grid) (*pixgrid.Grid, error)
	// Controls returns the editable parameters of the filter.
	// Controls remain valid after ChangeValue and affect later Apply calls.
	Controls() []pixgrid.Control
}

// Options tunes how a filter schedules its work.
type Options struct {
	// Workers is the number of goroutines rows are partitioned across.
	// Zero or negative selects a per-CPU default. Output is identical
	// regardless of worker count; pixels never depend on each other.
	Workers int
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return min(8, runtime.NumCPU())
}

// forEachRowBand splits rows [y0, y1) into contiguous bands and runs fn on
// each band, one goroutine per band. fn must only touch rows of its band.
func forEachRowBand(y0, y1, workers int, fn func(band0, band1 int)) {
	rows := y1 - y0
	if rows <= 0 {
		return
	}
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		fn(y0, y1)
		return
	}
	var wg sync.WaitGroup
	bandSize := (rows + workers - 1) / workers
	for band0 := y0; band0 < y1; band0 += bandSize {
		band1 := min(band0+bandSize, y1)
		wg.Add(1)
		go func(b0, b1 int) {
			defer wg.Done()
			fn(b0, b1)
		}(band0, band1)
	}
	wg.Wait()
}

// PointFunc computes the output color of a single pixel from its input
// color alone.
type PointFunc func(pixgrid.Pixel) pixgrid.Pixel

// PointFilter applies a per-pixel transformation through a callback. It owns
// the iteration, validation and scheduling common to all per-pixel filters;
// concrete filters only supply Fn and their controls.
type PointFilter struct {
	Fn    PointFunc
	Opts  Options
	Ctrls []pixgrid.Control
}

// Controls implements [Filter].
func (f *PointFilter) Controls() []pixgrid.Control {
	return f.Ctrls
}

// Apply implements [Filter].
func (f *PointFilter) Apply(src *pixgrid.Grid) (*pixgrid.Grid, error) {
	if f.Fn == nil {
		return nil, errNilPointFunc
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	width, height := src.Width(), src.Height()
	dst := pixgrid.New(width, height)
	forEachRowBand(0, height, f.Opts.workers(), func(band0, band1 int) {
		for y := band0; y < band1; y++ {
			for x := 0; x < width; x++ {
				dst.Set(x, y, f.Fn(src.At(x, y)))
			}
		}
	})
	return dst, nil
}

var errNilPointFunc = errorString("nil PointFunc")

type errorString string

func (e errorString) Error() string { return string(e) }
