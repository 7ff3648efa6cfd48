// SPDX-License-Identifier: MIT

package markers

import "fmt"

// Marker type names, as stored under "class" in dictionaries.
const (
	TypeHorizontalLines = "HorizontalLines"
	TypeVerticalLines   = "VerticalLines"
	TypeSquares         = "Squares"
)

// CollectionKind names the plotting collection a marker configures.
type CollectionKind int

const (
	// LineCollection draws one polyline per segment.
	LineCollection CollectionKind = iota
	// RegularPolyCollection draws one regular polygon per offset.
	RegularPolyCollection
)

func (k CollectionKind) String() string {
	switch k {
	case LineCollection:
		return "LineCollection"
	case RegularPolyCollection:
		return "RegularPolyCollection"
	default:
		return fmt.Sprintf("CollectionKind(%d)", int(k))
	}
}

// Transform names a coordinate system used to place offsets or shapes.
type Transform string

const (
	TransformData       Transform = "data"
	TransformDisplay    Transform = "display"
	TransformXAxis      Transform = "xaxis"
	TransformYAxis      Transform = "yaxis"
	TransformAxes       Transform = "axes"
	TransformXAxisScale Transform = "xaxis_scale"
	TransformYAxisScale Transform = "yaxis_scale"
	TransformRelative   Transform = "relative"
)

var knownTransforms = map[Transform]struct{}{
	TransformData:       {},
	TransformDisplay:    {},
	TransformXAxis:      {},
	TransformYAxis:      {},
	TransformAxes:       {},
	TransformXAxisScale: {},
	TransformYAxisScale: {},
	TransformRelative:   {},
}

// Valid reports whether t is a supported transform.
func (t Transform) Valid() bool {
	_, ok := knownTransforms[t]
	return ok
}

// parseTransform accepts a Transform or a plain string.
func parseTransform(v any) (Transform, error) {
	var t Transform
	switch x := v.(type) {
	case Transform:
		t = x
	case string:
		t = Transform(x)
	default:
		return "", fmt.Errorf("transform of type %T: %w", v, ErrUnknownTransform)
	}
	if !t.Valid() {
		return "", fmt.Errorf("%q: %w", string(t), ErrUnknownTransform)
	}

	return t, nil
}

// Iterating holds one keyword value per navigation index (flattened, row-major).
type Iterating []any

// Position selects what DataPosition resolves: the navigation index and the
// current axis limits in data coordinates.
type Position struct {
	Index int
	XLim  [2]float64
	YLim  [2]float64
}

// DefaultPosition is navigation index 0 with unit axis limits.
func DefaultPosition() Position {
	return Position{XLim: [2]float64{0, 1}, YLim: [2]float64{0, 1}}
}
