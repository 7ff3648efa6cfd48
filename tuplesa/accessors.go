// SPDX-License-Identifier: MIT

package tuplesa

import (
	"fmt"
	"sort"
)

// Element is the named-property capability required from tuple members.
//
// HasProperty must report true exactly for the names Property and
// SetProperty can resolve; Set and Get rely on it for up-front validation.
type Element interface {
	HasProperty(name string) bool
	Property(name string) (any, error)
	SetProperty(name string, value any) error
}

// accessor pairs the getter and optional setter of one property.
type accessor[T any] struct {
	get func(*T) any
	set func(*T, any) error
}

// Accessors is a name→accessor lookup table for the concrete type T.
// Build it once (typically in a package-level var) and Bind every instance to it.
// The table is read-only after construction and safe to share.
type Accessors[T any] struct {
	byName map[string]accessor[T]
}

// NewAccessors returns an empty table for T.
func NewAccessors[T any]() *Accessors[T] {
	return &Accessors[T]{byName: make(map[string]accessor[T])}
}

// Field registers property name with getter get and setter set.
// A nil set makes the property read-only.
// Panics on an invalid or duplicate name or a nil getter (programmer error).
func (a *Accessors[T]) Field(name string, get func(*T) any, set func(*T, any) error) *Accessors[T] {
	if !IsIdentifier(name) {
		panic(fmt.Sprintf("tuplesa: Field(%q): invalid name", name))
	}
	if get == nil {
		panic(fmt.Sprintf("tuplesa: Field(%q): nil getter", name))
	}
	if _, dup := a.byName[name]; dup {
		panic(fmt.Sprintf("tuplesa: Field(%q): duplicate name", name))
	}
	a.byName[name] = accessor[T]{get: get, set: set}

	return a
}

// Names returns the registered property names in ascending order.
func (a *Accessors[T]) Names() []string {
	names := make([]string, 0, len(a.byName))
	for n := range a.byName {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Has reports whether name is registered.
func (a *Accessors[T]) Has(name string) bool {
	_, ok := a.byName[name]
	return ok
}

// Get reads property name from target.
func (a *Accessors[T]) Get(target *T, name string) (any, error) {
	acc, ok := a.byName[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrAttribute)
	}

	return acc.get(target), nil
}

// Set writes property name on target.
func (a *Accessors[T]) Set(target *T, name string, value any) error {
	acc, ok := a.byName[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrAttribute)
	}
	if acc.set == nil {
		return fmt.Errorf("%q: %w", name, ErrReadOnly)
	}
	if err := acc.set(target, value); err != nil {
		return fmt.Errorf("%q: %w", name, err)
	}

	return nil
}

// Bind returns an Element view of target backed by this table.
func (a *Accessors[T]) Bind(target *T) Element {
	return bound[T]{table: a, target: target}
}

// bound adapts a *T and its Accessors table to Element.
type bound[T any] struct {
	table  *Accessors[T]
	target *T
}

func (b bound[T]) HasProperty(name string) bool { return b.table.Has(name) }

func (b bound[T]) Property(name string) (any, error) { return b.table.Get(b.target, name) }

func (b bound[T]) SetProperty(name string, value any) error {
	return b.table.Set(b.target, name, value)
}

// As converts value to V, returning ErrValueType on mismatch.
// Untyped constants arrive as int or float64; As widens int to float64 so
// numeric properties accept both.
func As[V any](value any) (V, error) {
	if v, ok := value.(V); ok {
		return v, nil
	}
	var zero V
	if i, ok := value.(int); ok {
		if f, ok := any(float64(i)).(V); ok {
			return f, nil
		}
	}

	return zero, fmt.Errorf("got %T, want %T: %w", value, zero, ErrValueType)
}

// SetAs stores value into *dst after converting it with As.
func SetAs[V any](dst *V, value any) error {
	v, err := As[V](value)
	if err != nil {
		return err
	}
	*dst = v

	return nil
}
