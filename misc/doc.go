// Package misc collects small helpers shared across the toolkit: name
// cleanup, quantity parsing, number grids and array backend detection.
//
// Strings:
//
//   - Slugify: ASCII identifier-like slugs ("├── Node 1" → "Node_1").
//   - ParseQuantity: split "name (units)" labels.
//   - StrList2Enumeration: "a, b and c".
//   - ShortenName: truncate with a ".." suffix.
//
// Numbers:
//
//   - Str2Num: whitespace-separated text to a [][]float64 grid.
//   - ClosestPowerOfTwo: smallest power of two ≥ n.
//   - SwapElem: in-place element swap.
//
// Arrays:
//
//	ModuleOf classifies a value as a Host array (plain numeric slice), a
//	Device array (implements DeviceArray) or a Lazy array (implements
//	LazyArray). ToHost copies host and device arrays into a []float64;
//	lazy arrays and nested slices return ErrNotArray and must be computed
//	or flattened by the caller first.
package misc
