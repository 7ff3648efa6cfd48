// SPDX-License-Identifier: MIT

package markers

import (
	"fmt"
	"reflect"
)

// toFloats converts a numeric slice or array (any element kind, including
// []any of numbers) into []float64.
func toFloats(v any) ([]float64, error) {
	if f, ok := v.([]float64); ok {
		return f, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("got %T, want a numeric sequence: %w", v, ErrBadOffsets)
	}
	out := make([]float64, rv.Len())
	for i := range out {
		f, ok := toFloat(rv.Index(i))
		if !ok {
			return nil, fmt.Errorf("element %d of %T is not numeric: %w", i, v, ErrBadOffsets)
		}
		out[i] = f
	}

	return out, nil
}

// toPoints converts an n×2 numeric sequence into [][2]float64.
func toPoints(v any) ([][2]float64, error) {
	if p, ok := v.([][2]float64); ok {
		return p, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("got %T, want n×2 points: %w", v, ErrBadOffsets)
	}
	out := make([][2]float64, rv.Len())
	for i := range out {
		row, err := toFloats(elem(rv.Index(i)).Interface())
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		if len(row) != 2 {
			return nil, fmt.Errorf("point %d has %d coordinates: %w", i, len(row), ErrBadOffsets)
		}
		out[i] = [2]float64{row[0], row[1]}
	}

	return out, nil
}

// elem unwraps interface values.
func elem(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}

	return rv
}

func toFloat(rv reflect.Value) (float64, bool) {
	rv = elem(rv)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}
