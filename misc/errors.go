// SPDX-License-Identifier: MIT

package misc

import "errors"

var (
	// ErrRagged indicates rows of differing lengths in Str2Num input.
	ErrRagged = errors.New("misc: rows must have the same number of columns")

	// ErrNotNumber indicates a field that does not parse as a float.
	ErrNotNumber = errors.New("misc: field is not a number")

	// ErrNotArray indicates a value ToHost cannot convert: lazy arrays,
	// nested slices, or non-numeric values.
	ErrNotArray = errors.New("misc: value is not a host or device array")
)
