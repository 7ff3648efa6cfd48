// SPDX-License-Identifier: MIT

package markers

import "fmt"

// HorizontalLines is a set of horizontal lines spanning the x axis.
// Offsets are the y positions, one per line.
type HorizontalLines struct {
	Markers
}

// NewHorizontalLines builds horizontal lines at offsets ([]float64 or any
// numeric sequence, possibly wrapped in Iterating).
// Defaults: offsets transform "display", transform "yaxis".
func NewHorizontalLines(offsets any, opts ...Option) (*HorizontalLines, error) {
	o := defaultOptions()
	o.offsetsTransform = TransformDisplay
	o.transform = TransformYAxis
	o = gather(o, opts)

	base, err := newBase(TypeHorizontalLines, LineCollection, offsets, o)
	if err != nil {
		return nil, err
	}

	return &HorizontalLines{Markers: base}, nil
}

// DataPosition replaces offsets with one segment per line, from pos.XLim[0]
// to pos.XLim[1] at height y.
func (h *HorizontalLines) DataPosition(pos Position) (map[string]any, error) {
	kw, err := h.Markers.DataPosition(pos)
	if err != nil {
		return nil, err
	}
	ys, err := toFloats(kw["offsets"])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", h.markerType, err)
	}
	delete(kw, "offsets")

	segments := make([][2][2]float64, len(ys))
	for i, y := range ys {
		segments[i] = [2][2]float64{{pos.XLim[0], y}, {pos.XLim[1], y}}
	}
	kw["segments"] = segments

	return kw, nil
}

// VerticalLines is a set of vertical lines spanning the whole y axis.
// Offsets are the x positions, one per line. The transform is always "xaxis".
type VerticalLines struct {
	Markers
}

// NewVerticalLines builds vertical lines at offsets.
// Default offsets transform: "display". Passing WithTransform with anything
// but TransformXAxis returns ErrTransformLocked.
func NewVerticalLines(offsets any, opts ...Option) (*VerticalLines, error) {
	o := defaultOptions()
	o.offsetsTransform = TransformDisplay
	o = gather(o, opts)
	if o.transformSet && o.transform != TransformXAxis {
		return nil, fmt.Errorf("%s: transform %q: %w", TypeVerticalLines, string(o.transform), ErrTransformLocked)
	}
	o.transform = TransformXAxis

	base, err := newBase(TypeVerticalLines, LineCollection, offsets, o)
	if err != nil {
		return nil, err
	}

	return &VerticalLines{Markers: base}, nil
}

// DataPosition replaces offsets with one unit-height segment per line; with
// the xaxis transform the segment covers the full y range.
func (v *VerticalLines) DataPosition(pos Position) (map[string]any, error) {
	kw, err := v.Markers.DataPosition(pos)
	if err != nil {
		return nil, err
	}
	xs, err := toFloats(kw["offsets"])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", v.markerType, err)
	}
	delete(kw, "offsets")

	segments := make([][2][2]float64, len(xs))
	for i, x := range xs {
		segments[i] = [2][2]float64{{x, 0}, {x, 1}}
	}
	kw["segments"] = segments

	return kw, nil
}
