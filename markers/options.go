// SPDX-License-Identifier: MIT

package markers

import (
	"fmt"
	"math"
)

// Option configures a marker at construction time.
// Constructors panic on meaningless values (programmer error).
type Option func(*options)

type options struct {
	name             string
	offsetsTransform Transform
	transform        Transform
	transformSet     bool
	plotOnSignal     bool
	rotation         float64
	kwargs           map[string]any
}

// defaultOptions returns the shared defaults; each marker type then applies
// its own transforms before user options run.
func defaultOptions() options {
	return options{
		plotOnSignal: true,
		kwargs:       make(map[string]any),
	}
}

// WithName sets the marker name. The default is the marker type.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithOffsetsTransform sets the coordinate system of the offsets.
// Panics on an unknown transform.
func WithOffsetsTransform(t Transform) Option {
	mustTransform("WithOffsetsTransform", t)
	return func(o *options) { o.offsetsTransform = t }
}

// WithTransform sets the coordinate system of the drawn shapes.
// Panics on an unknown transform.
func WithTransform(t Transform) Option {
	mustTransform("WithTransform", t)
	return func(o *options) {
		o.transform = t
		o.transformSet = true
	}
}

// WithPlotOnSignal selects the signal plot (true, default) or the navigator plot.
func WithPlotOnSignal(on bool) Option {
	return func(o *options) { o.plotOnSignal = on }
}

// WithKwarg adds a static collection keyword argument, e.g. "color".
// Panics on an empty key.
func WithKwarg(key string, value any) Option {
	if key == "" {
		panic("markers: WithKwarg: empty key")
	}
	return func(o *options) { o.kwargs[key] = value }
}

// WithIterating adds a keyword argument with one value per navigation index.
// Panics on an empty key.
func WithIterating(key string, values ...any) Option {
	if key == "" {
		panic("markers: WithIterating: empty key")
	}
	it := make(Iterating, len(values))
	copy(it, values)
	return func(o *options) { o.kwargs[key] = it }
}

// WithRotation sets the square rotation in radians. Only Squares reads it.
// Panics on NaN or ±Inf.
func WithRotation(rad float64) Option {
	if math.IsNaN(rad) || math.IsInf(rad, 0) {
		panic("markers: WithRotation: rotation must be finite")
	}
	return func(o *options) { o.rotation = rad }
}

func mustTransform(fn string, t Transform) {
	if !t.Valid() {
		panic(fmt.Sprintf("markers: %s(%q): unknown transform", fn, string(t)))
	}
}

// gather applies opts over o.
func gather(o options, opts []Option) options {
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
