// SPDX-License-Identifier: MIT

package markers

import "errors"

var (
	// ErrBadOffsets indicates missing offsets or offsets of a non-numeric shape.
	ErrBadOffsets = errors.New("markers: invalid offsets")

	// ErrTransformLocked indicates a transform change on a marker whose
	// transform is fixed by its geometry (VerticalLines must span the y axis).
	ErrTransformLocked = errors.New("markers: transform is fixed for this marker type")

	// ErrUnknownTransform indicates a transform name outside the supported set.
	ErrUnknownTransform = errors.New("markers: unknown transform")

	// ErrIndexOutOfRange indicates a navigation index beyond an Iterating keyword.
	ErrIndexOutOfRange = errors.New("markers: navigation index out of range")

	// ErrUnknownClass indicates a dictionary naming an unsupported marker class.
	ErrUnknownClass = errors.New("markers: unknown marker class")

	// ErrBadDictionary indicates a dictionary entry of the wrong type.
	ErrBadDictionary = errors.New("markers: malformed marker dictionary")
)
