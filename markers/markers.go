// SPDX-License-Identifier: MIT

package markers

import (
	"fmt"
	"sort"

	"github.com/gguzzina/hyperspy/fsdict"
	"github.com/gguzzina/hyperspy/tuplesa"
)

// Marker is implemented by every concrete marker type.
type Marker interface {
	tuplesa.Element

	// Base exposes the shared configuration.
	Base() *Markers

	// DataPosition resolves keywords and geometry at pos.
	DataPosition(pos Position) (map[string]any, error)

	// AsDictionary snapshots the marker; see FromDictionary.
	AsDictionary() fsdict.Tree
}

// Markers is the configuration shared by all marker types.
// Keyword arguments hold "offsets" (and "sizes" for squares) next to styling
// keywords such as "color" or "linewidth".
type Markers struct {
	markerType       string
	name             string
	collection       CollectionKind
	offsetsTransform Transform
	transform        Transform
	plotOnSignal     bool
	kwargs           map[string]any
}

// baseProps exposes the fixed fields of Markers as properties.
var baseProps = tuplesa.NewAccessors[Markers]().
	Field("marker_type", func(m *Markers) any { return m.markerType }, nil).
	Field("name", func(m *Markers) any { return m.name },
		func(m *Markers, v any) error { return tuplesa.SetAs(&m.name, v) }).
	Field("offsets_transform", func(m *Markers) any { return m.offsetsTransform },
		func(m *Markers, v any) error {
			t, err := parseTransform(v)
			if err != nil {
				return err
			}
			m.offsetsTransform = t
			return nil
		}).
	Field("transform", func(m *Markers) any { return m.transform },
		func(m *Markers, v any) error {
			t, err := parseTransform(v)
			if err != nil {
				return err
			}
			if m.markerType == TypeVerticalLines && t != TransformXAxis {
				return fmt.Errorf("%s: transform %q: %w", m.markerType, string(t), ErrTransformLocked)
			}
			m.transform = t
			return nil
		}).
	Field("plot_on_signal", func(m *Markers) any { return m.plotOnSignal },
		func(m *Markers, v any) error { return tuplesa.SetAs(&m.plotOnSignal, v) })

// newBase builds the shared part from resolved options. offsets must be non-nil.
func newBase(markerType string, kind CollectionKind, offsets any, o options) (Markers, error) {
	if offsets == nil {
		return Markers{}, fmt.Errorf("%s: nil offsets: %w", markerType, ErrBadOffsets)
	}
	name := o.name
	if name == "" {
		name = markerType
	}
	kwargs := make(map[string]any, len(o.kwargs)+1)
	for k, v := range o.kwargs {
		kwargs[k] = v
	}
	kwargs["offsets"] = offsets

	return Markers{
		markerType:       markerType,
		name:             name,
		collection:       kind,
		offsetsTransform: o.offsetsTransform,
		transform:        o.transform,
		plotOnSignal:     o.plotOnSignal,
		kwargs:           kwargs,
	}, nil
}

// Base returns m itself; it satisfies Marker for embedding types.
func (m *Markers) Base() *Markers { return m }

// MarkerType returns the marker class name.
func (m *Markers) MarkerType() string { return m.markerType }

// Name returns the marker name.
func (m *Markers) Name() string { return m.name }

// Collection returns the collection kind the marker configures.
func (m *Markers) Collection() CollectionKind { return m.collection }

// OffsetsTransform returns the coordinate system of the offsets.
func (m *Markers) OffsetsTransform() Transform { return m.offsetsTransform }

// Transform returns the coordinate system of the shapes.
func (m *Markers) Transform() Transform { return m.transform }

// PlotOnSignal reports whether the marker targets the signal plot.
func (m *Markers) PlotOnSignal() bool { return m.plotOnSignal }

// Kwargs returns a shallow copy of the keyword arguments.
func (m *Markers) Kwargs() map[string]any {
	cp := make(map[string]any, len(m.kwargs))
	for k, v := range m.kwargs {
		cp[k] = v
	}

	return cp
}

// IsIterating reports whether keyword key varies with the navigation index.
func (m *Markers) IsIterating(key string) bool {
	_, ok := m.kwargs[key].(Iterating)
	return ok
}

// iteratingKeys returns the iterating keyword names in ascending order.
func (m *Markers) iteratingKeys() []string {
	var keys []string
	for k, v := range m.kwargs {
		if _, ok := v.(Iterating); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	return keys
}

// HasProperty reports whether name is a fixed field or an existing keyword.
func (m *Markers) HasProperty(name string) bool {
	if baseProps.Has(name) {
		return true
	}
	_, ok := m.kwargs[name]

	return ok
}

// Property reads a fixed field or keyword.
func (m *Markers) Property(name string) (any, error) {
	if baseProps.Has(name) {
		return baseProps.Get(m, name)
	}
	v, ok := m.kwargs[name]
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", m.markerType, name, tuplesa.ErrAttribute)
	}

	return v, nil
}

// SetProperty writes a fixed field or replaces an existing keyword.
// New keywords are added with options at construction; SetProperty only
// replaces, so a misspelt name fails instead of adding a dead keyword.
func (m *Markers) SetProperty(name string, value any) error {
	if baseProps.Has(name) {
		return baseProps.Set(m, name, value)
	}
	if _, ok := m.kwargs[name]; !ok {
		return fmt.Errorf("%s: %q: %w", m.markerType, name, tuplesa.ErrAttribute)
	}
	m.kwargs[name] = value

	return nil
}

// DataPosition resolves every keyword at pos.Index: Iterating values yield
// their pos.Index entry, static values pass through unchanged.
func (m *Markers) DataPosition(pos Position) (map[string]any, error) {
	out := make(map[string]any, len(m.kwargs))
	for k, v := range m.kwargs {
		it, ok := v.(Iterating)
		if !ok {
			out[k] = v
			continue
		}
		if pos.Index < 0 || pos.Index >= len(it) {
			return nil, fmt.Errorf("%s: %q index %d of %d: %w", m.markerType, k, pos.Index, len(it), ErrIndexOutOfRange)
		}
		out[k] = it[pos.Index]
	}

	return out, nil
}

// Group is a broadcast tuple of markers, for uniform styling.
type Group = tuplesa.Tuple[tuplesa.Element]

// NewGroup collects markers into a Group.
func NewGroup(ms ...Marker) Group {
	els := make([]tuplesa.Element, len(ms))
	for i, m := range ms {
		els[i] = m
	}

	return tuplesa.New(els...)
}
