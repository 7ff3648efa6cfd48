// Package hyperspy holds building blocks of a multidimensional data analysis
// toolkit: the pieces that style plot annotations and assemble metadata
// trees, independent of any plotting or fitting backend.
//
// 🚀 What is inside?
//
//	A small, dependency-light set of packages:
//		• tuplesa  – fixed tuples that set/get a property on every element at once
//		• fsdict   – nested maps grown from (path, value) pairs, with YAML snapshots
//		• markers  – horizontal lines, vertical lines and squares as plot-ready configuration
//		• misc     – slugs, "name (units)" parsing, number grids, array backend detection
//
// ✨ Conventions
//
//   - Errors are package sentinels ("markers: ..."); branch with errors.Is.
//   - Option constructors panic on meaningless values; operations return errors.
//   - Nothing here is safe for concurrent mutation; callers serialize access.
//
// Quick example:
//
//	h, _ := markers.NewHorizontalLines([]float64{1, 2})
//	v, _ := markers.NewVerticalLines([]float64{3}, markers.WithKwarg("color", "k"))
//	g := markers.NewGroup(h, v)
//	_ = g.Set(tuplesa.Attr("name", []string{"levels", "edge"}))
//
//	go get github.com/gguzzina/hyperspy
package hyperspy
