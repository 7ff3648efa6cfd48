// SPDX-License-Identifier: MIT

package tuplesa

import (
	"errors"
	"fmt"
)

var (
	// ErrAttribute indicates that a property name cannot be resolved on one
	// or more elements.
	ErrAttribute = errors.New("tuplesa: attribute not found")

	// ErrInvalidName indicates a property name that is not a legal identifier.
	// It wraps ErrAttribute, so errors.Is(err, ErrAttribute) also holds.
	ErrInvalidName = fmt.Errorf("%w: invalid attribute name", ErrAttribute)

	// ErrReadOnly indicates an attempt to assign a property that has no setter.
	ErrReadOnly = errors.New("tuplesa: attribute is read-only")

	// ErrValueType indicates that a setter received a value it cannot store.
	ErrValueType = errors.New("tuplesa: value has unexpected type")
)

// missingErr reports the first element index lacking name.
func missingErr(name string, idx int) error {
	return fmt.Errorf("element %d has no attribute %q: %w", idx, name, ErrAttribute)
}
