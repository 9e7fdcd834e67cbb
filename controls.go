package pixgrid

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
)

// Control is an editable parameter of a filter. Changing the value via
// ChangeValue takes effect on the filter's next application.
type Control interface {
	// Describe returns the human readable name and description of the parameter.
	Describe() (name, description string)
	// ActualValue returns the current value of the control.
	ActualValue() any
	// ChangeValue attempts to update the ActualValue to newValue.
	ChangeValue(newValue any) error
}

// ControlOrdered is a numeric parameter limited to the Min..Max range,
// such as a solarize or edge detection threshold.
type ControlOrdered[T cmp.Ordered] struct {
	Name        string
	Description string
	Value       T
	Min         T
	Max         T
	Step        T
	OnChange    func(T) error
}

func (co *ControlOrdered[T]) Describe() (name, description string) {
	return co.Name, co.Description
}
func (co *ControlOrdered[T]) ActualValue() any { return co.Value }
func (co *ControlOrdered[T]) ChangeValue(newValue any) error {
	v, ok := newValue.(T)
	if !ok {
		return fmt.Errorf("new value %T not of type %T", newValue, co.Value)
	}
	if v < co.Min || v > co.Max {
		return fmt.Errorf("new value %v exceeds limits %v..%v", v, co.Min, co.Max)
	}
	err := co.OnChange(v)
	if err == nil {
		co.Value = v
	}
	return err
}

type integer interface {
	~int | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64
}

// enum best generated with stringer commands.
type enum interface {
	integer
	fmt.Stringer
}

// ControlEnum selects one of a fixed set of named values,
// such as a grayscale conversion mode.
type ControlEnum[T enum] struct {
	Name        string
	Description string
	Value       T
	ValidValues []T
	OnChange    func(T) error
}

func (ce *ControlEnum[T]) Describe() (name, description string) {
	return ce.Name, ce.Description
}
func (ce *ControlEnum[T]) ActualValue() any {
	return ce.Value
}
func (ce *ControlEnum[T]) ChangeValue(newValue any) error {
	v, ok := newValue.(T)
	if !ok {
		return fmt.Errorf("new value %T not of type %T", newValue, ce.Value)
	}
	if !slices.Contains(ce.ValidValues, v) {
		return fmt.Errorf("value %v of %T not valid", v, v)
	}
	err := ce.OnChange(v)
	if err == nil {
		ce.Value = v
	}
	return err
}

// CurvePoint is a control point for curve-type controls.
// X represents input (0-1), Y represents output (0-1).
type CurvePoint = ms2.Vec

// ControlCurve is a polyline curve control with editable control points,
// used by tone mapping filters. Points are in normalized 0-1 range for
// both X (input) and Y (output).
type ControlCurve struct {
	Name        string
	Description string
	Points      []CurvePoint
	OnChange    func([]CurvePoint) error
}

func (cc *ControlCurve) Describe() (name, description string) {
	return cc.Name, cc.Description
}

func (cc *ControlCurve) ActualValue() any {
	return cc.Points
}

func (cc *ControlCurve) ChangeValue(newValue any) error {
	pts, ok := newValue.([]CurvePoint)
	if !ok {
		return fmt.Errorf("new value %T not of type []CurvePoint", newValue)
	}
	err := cc.OnChange(pts)
	if err == nil {
		cc.Points = pts
	}
	return err
}

// EvalCurve evaluates the piecewise-linear curve described by points at
// input x. Points need not be sorted; evaluation sorts a copy by X.
// Inputs outside the covered X range take the nearest endpoint's Y value.
// An empty point set is the identity curve. The result is clamped to 0-1.
func EvalCurve(points []CurvePoint, x float32) float32 {
	if len(points) == 0 {
		return clamp01(x)
	}
	pts := slices.Clone(points)
	slices.SortFunc(pts, func(a, b CurvePoint) int {
		return cmp.Compare(a.X, b.X)
	})
	if x <= pts[0].X {
		return clamp01(pts[0].Y)
	}
	last := pts[len(pts)-1]
	if x >= last.X {
		return clamp01(last.Y)
	}
	for i := 1; i < len(pts); i++ {
		if x > pts[i].X {
			continue
		}
		p0, p1 := pts[i-1], pts[i]
		dx := p1.X - p0.X
		if dx == 0 {
			return clamp01(p1.Y)
		}
		t := (x - p0.X) / dx
		return clamp01(p0.Y + t*(p1.Y-p0.Y))
	}
	return clamp01(last.Y)
}

func clamp01(v float32) float32 {
	return math32.Min(1, math32.Max(0, v))
}
