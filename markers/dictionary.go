// SPDX-License-Identifier: MIT

package markers

import (
	"fmt"

	"github.com/gguzzina/hyperspy/fsdict"
)

// AsDictionary snapshots m as a nested tree:
//
//	class, name, plot_on_signal, offsets_transform, transform,
//	kwargs.<key> for every keyword, iterating: sorted iterating keyword names.
//
// Iterating keywords are stored as plain []any so the tree survives YAML.
func (m *Markers) AsDictionary() fsdict.Tree {
	d := fsdict.Tree{}
	fsdict.Insert([]string{"class"}, m.markerType, d)
	fsdict.Insert([]string{"name"}, m.name, d)
	fsdict.Insert([]string{"plot_on_signal"}, m.plotOnSignal, d)
	fsdict.Insert([]string{"offsets_transform"}, string(m.offsetsTransform), d)
	fsdict.Insert([]string{"transform"}, string(m.transform), d)
	fsdict.Insert([]string{"kwargs"}, fsdict.Tree{}, d)
	for k, v := range m.kwargs {
		if it, ok := v.(Iterating); ok {
			v = []any(it)
		}
		fsdict.Insert([]string{"kwargs", k}, v, d)
	}
	iter := m.iteratingKeys()
	keys := make([]any, len(iter))
	for i, k := range iter {
		keys[i] = k
	}
	fsdict.Insert([]string{"iterating"}, keys, d)

	return d
}

// FromDictionary rebuilds a marker from an AsDictionary snapshot, including
// one decoded with fsdict.UnmarshalYAML.
func FromDictionary(d fsdict.Tree) (Marker, error) {
	class, err := field[string](d, "class")
	if err != nil {
		return nil, err
	}

	var (
		m    Marker
		base *Markers
		kind CollectionKind
	)
	switch class {
	case TypeHorizontalLines:
		h := &HorizontalLines{}
		m, base, kind = h, &h.Markers, LineCollection
	case TypeVerticalLines:
		v := &VerticalLines{}
		m, base, kind = v, &v.Markers, LineCollection
	case TypeSquares:
		s := &Squares{}
		m, base, kind = s, &s.Markers, RegularPolyCollection
	default:
		return nil, fmt.Errorf("%q: %w", class, ErrUnknownClass)
	}
	base.markerType = class
	base.collection = kind

	if base.name, err = field[string](d, "name"); err != nil {
		return nil, err
	}
	if base.plotOnSignal, err = field[bool](d, "plot_on_signal"); err != nil {
		return nil, err
	}
	if base.offsetsTransform, err = transformField(d, "offsets_transform"); err != nil {
		return nil, err
	}
	if base.transform, err = transformField(d, "transform"); err != nil {
		return nil, err
	}
	if class == TypeVerticalLines && base.transform != TransformXAxis {
		return nil, fmt.Errorf("%s: transform %q: %w", class, string(base.transform), ErrTransformLocked)
	}

	kwargs, err := field[fsdict.Tree](d, "kwargs")
	if err != nil {
		return nil, err
	}
	iterating := map[string]bool{}
	if raw, ok := d["iterating"]; ok {
		names, err := stringList(raw)
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			iterating[n] = true
		}
	}

	base.kwargs = make(map[string]any, len(kwargs))
	for k, v := range kwargs {
		if iterating[k] {
			list, ok := v.([]any)
			if !ok {
				return nil, fmt.Errorf("kwargs.%s: iterating value of type %T: %w", k, v, ErrBadDictionary)
			}
			v = Iterating(list)
		}
		base.kwargs[k] = v
	}
	if _, ok := base.kwargs["offsets"]; !ok {
		return nil, fmt.Errorf("%s: kwargs.offsets missing: %w", class, ErrBadOffsets)
	}
	if sizes, ok := base.kwargs["sizes"]; ok && class == TypeSquares && !iterating["sizes"] {
		if base.kwargs["sizes"], err = toSizes(sizes); err != nil {
			return nil, fmt.Errorf("%s: %w", class, err)
		}
	}

	return m, nil
}

// field reads d[key] as V.
func field[V any](d fsdict.Tree, key string) (V, error) {
	v, ok := d[key].(V)
	if !ok {
		var zero V
		return zero, fmt.Errorf("%q: got %T, want %T: %w", key, d[key], zero, ErrBadDictionary)
	}

	return v, nil
}

func transformField(d fsdict.Tree, key string) (Transform, error) {
	t, err := parseTransform(d[key])
	if err != nil {
		return "", fmt.Errorf("%q: %w", key, err)
	}

	return t, nil
}

// stringList accepts []string or []any of strings.
func stringList(v any) ([]string, error) {
	switch x := v.(type) {
	case []string:
		return x, nil
	case []any:
		out := make([]string, len(x))
		for i, e := range x {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("iterating[%d]: got %T: %w", i, e, ErrBadDictionary)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("iterating: got %T: %w", v, ErrBadDictionary)
	}
}
