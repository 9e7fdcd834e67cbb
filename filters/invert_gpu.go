package filters

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/soypat/pixgrid"
)

const negativeTransform = `
fn transform(c: vec4<f32>) -> vec4<f32> {
    return vec4<f32>(1.0 - c.r, 1.0 - c.g, 1.0 - c.b, c.a);
}
`

// NegativeGPU inverts grid colors using GPU compute.
type NegativeGPU struct {
	PointFilterGPU
}

// NewNegativeGPU creates a GPU-accelerated color inversion filter.
func NewNegativeGPU(device *wgpu.Device, queue *wgpu.Queue) (*NegativeGPU, error) {
	f := &NegativeGPU{}
	if err := f.Init(device, queue, negativeTransform); err != nil {
		return nil, err
	}
	return f, nil
}

// Controls returns nil as negative has no adjustable parameters.
func (f *NegativeGPU) Controls() []pixgrid.Control {
	return nil
}
