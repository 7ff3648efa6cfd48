// SPDX-License-Identifier: MIT

package markers

import (
	"fmt"
	"math"
	"reflect"
)

// Squares is a set of axis-aligned squares drawn as four-sided regular polygons.
type Squares struct {
	Markers
}

// NewSquares builds squares centered at offsets (n×2) with the given sizes
// (scalar, per-square sequence, or Iterating).
// Defaults: offsets transform "data", transform "xaxis_scale", rotation 0.
// A regular four-sided polygon stands on a vertex, so π/4 is added to the
// requested rotation.
func NewSquares(offsets, sizes any, opts ...Option) (*Squares, error) {
	if sizes == nil {
		return nil, fmt.Errorf("%s: nil sizes: %w", TypeSquares, ErrBadOffsets)
	}
	o := defaultOptions()
	o.offsetsTransform = TransformData
	o.transform = TransformXAxisScale
	o = gather(o, opts)
	o.kwargs["sizes"] = sizes
	o.kwargs["numsides"] = 4
	o.kwargs["rotation"] = o.rotation + math.Pi/4

	base, err := newBase(TypeSquares, RegularPolyCollection, offsets, o)
	if err != nil {
		return nil, err
	}

	return &Squares{Markers: base}, nil
}

// DataPosition resolves keywords and normalizes offsets to [][2]float64 and
// sizes to float64 or []float64.
func (s *Squares) DataPosition(pos Position) (map[string]any, error) {
	kw, err := s.Markers.DataPosition(pos)
	if err != nil {
		return nil, err
	}
	pts, err := toPoints(kw["offsets"])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.markerType, err)
	}
	kw["offsets"] = pts
	if kw["sizes"], err = toSizes(kw["sizes"]); err != nil {
		return nil, fmt.Errorf("%s: %w", s.markerType, err)
	}

	return kw, nil
}

// toSizes coerces a numeric scalar to float64 and a numeric sequence to
// []float64. A YAML snapshot decodes 2.0 as int 2; both resolve the same.
func toSizes(v any) (any, error) {
	if f, ok := toFloat(reflect.ValueOf(v)); ok {
		return f, nil
	}
	fs, err := toFloats(v)
	if err != nil {
		return nil, fmt.Errorf("sizes: %w", err)
	}

	return fs, nil
}
