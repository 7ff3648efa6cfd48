// SPDX-License-Identifier: MIT

package tuplesa

import (
	"fmt"
	"iter"
	"reflect"
	"sort"
	"unicode"
)

// Tuple is an immutable ordered sequence of elements that supports bulk
// property assignment and collection. The zero value is an empty tuple.
//
// The tuple holds references to pre-existing elements: Set mutates those
// elements in place, never the tuple itself.
type Tuple[E Element] struct {
	items []E
}

// Assignment binds a property name to the value Set should apply.
type Assignment struct {
	Name  string
	Value any
}

// Attr builds an Assignment.
func Attr(name string, value any) Assignment {
	return Assignment{Name: name, Value: value}
}

// ScalarValue marks a value that Set must copy to every element, even when
// it is a sequence whose length matches the tuple.
type ScalarValue struct {
	V any
}

// Scalar wraps v so that Set never broadcasts it element-wise.
func Scalar(v any) ScalarValue {
	return ScalarValue{V: v}
}

// New builds a tuple over items. The slice is copied; elements are not.
func New[E Element](items ...E) Tuple[E] {
	cp := make([]E, len(items))
	copy(cp, items)

	return Tuple[E]{items: cp}
}

// Len returns the number of elements.
func (t Tuple[E]) Len() int { return len(t.items) }

// At returns the i-th element. Panics if i is out of range, like slice indexing.
func (t Tuple[E]) At(i int) E { return t.items[i] }

// Items returns a copy of the element slice.
func (t Tuple[E]) Items() []E {
	cp := make([]E, len(t.items))
	copy(cp, t.items)

	return cp
}

// All iterates index/element pairs in order.
func (t Tuple[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, e := range t.items {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Concat returns a new tuple holding t's elements followed by other's.
// Neither operand is modified.
func (t Tuple[E]) Concat(other Tuple[E]) Tuple[E] {
	out := make([]E, 0, len(t.items)+len(other.items))
	out = append(out, t.items...)
	out = append(out, other.items...)

	return Tuple[E]{items: out}
}

// Repeat returns a new tuple with t's elements repeated n times in order.
// n <= 0 yields an empty tuple.
func (t Tuple[E]) Repeat(n int) Tuple[E] {
	if n <= 0 {
		return Tuple[E]{}
	}
	out := make([]E, 0, n*len(t.items))
	for k := 0; k < n; k++ {
		out = append(out, t.items...)
	}

	return Tuple[E]{items: out}
}

// Set applies each assignment to every element.
//
// A slice or array value (strings excluded) whose length equals Len() is
// broadcast element-wise: element i receives index i. Any other value,
// including values wrapped with Scalar, is assigned unchanged to every element.
//
// All names are validated against all elements first; see the package doc
// for the behavior when a setter fails afterwards.
func (t Tuple[E]) Set(assignments ...Assignment) error {
	names := make([]string, len(assignments))
	for i, a := range assignments {
		names[i] = a.Name
	}
	if err := t.validate(names); err != nil {
		return err
	}

	n := len(t.items)
	for _, a := range assignments {
		seq, broadcast := sequenceOf(a.Value, n)
		for i, e := range t.items {
			v := a.Value
			if broadcast {
				v = seq.Index(i).Interface()
			} else if s, ok := v.(ScalarValue); ok {
				v = s.V
			}
			if err := e.SetProperty(a.Name, v); err != nil {
				return fmt.Errorf("set element %d: %w", i, err)
			}
		}
	}

	return nil
}

// SetMap applies values in ascending key order. It is Set for callers that
// hold their assignments in a map.
func (t Tuple[E]) SetMap(values map[string]any) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	assignments := make([]Assignment, len(keys))
	for i, k := range keys {
		assignments[i] = Attr(k, values[k])
	}

	return t.Set(assignments...)
}

// Get returns, for each name, the property value of every element in order.
func (t Tuple[E]) Get(names ...string) (map[string][]any, error) {
	if err := t.validate(names); err != nil {
		return nil, err
	}

	out := make(map[string][]any, len(names))
	for _, name := range names {
		vals := make([]any, len(t.items))
		for i, e := range t.items {
			v, err := e.Property(name)
			if err != nil {
				return nil, fmt.Errorf("get element %d: %w", i, err)
			}
			vals[i] = v
		}
		out[name] = vals
	}

	return out, nil
}

// Values gathers a single property from every element of t, converting each
// value to V.
func Values[V any, E Element](t Tuple[E], name string) ([]V, error) {
	got, err := t.Get(name)
	if err != nil {
		return nil, err
	}
	out := make([]V, len(got[name]))
	for i, raw := range got[name] {
		v, err := As[V](raw)
		if err != nil {
			return nil, fmt.Errorf("element %d %q: %w", i, name, err)
		}
		out[i] = v
	}

	return out, nil
}

// validate checks name syntax, then presence on every element.
func (t Tuple[E]) validate(names []string) error {
	for _, name := range names {
		if !IsIdentifier(name) {
			return fmt.Errorf("%q: %w", name, ErrInvalidName)
		}
	}
	for _, name := range names {
		for i, e := range t.items {
			if !e.HasProperty(name) {
				return missingErr(name, i)
			}
		}
	}

	return nil
}

// sequenceOf reports whether v is a slice or array of length n (strings are
// not sequences here) and returns its reflected value.
func sequenceOf(v any, n int) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, rv.Len() == n
	default:
		return reflect.Value{}, false
	}
}

// IsIdentifier reports whether name is usable as a property name: a letter
// or underscore followed by letters, digits or underscores.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}

	return true
}
