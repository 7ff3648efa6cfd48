// Package markers describes annotation overlays for signal plots: sets of
// horizontal lines, vertical lines and squares. A marker only prepares the
// configuration a plotting collection needs (keyword arguments, transforms,
// segments); drawing is left to the caller.
//
// What:
//
//   - Markers is the shared base: marker type, collection kind, transforms
//     and collection keyword arguments.
//   - A keyword wrapped in Iterating varies with the navigation index; all
//     other keywords are static.
//   - DataPosition resolves the keywords for one navigation index and turns
//     offsets into concrete geometry.
//
// Geometry:
//
//	HorizontalLines  offsets y_i → segments [[xlim0, y_i], [xlim1, y_i]]
//	VerticalLines    offsets x_i → segments [[x_i, 0], [x_i, 1]] (transform fixed to xaxis)
//	Squares          offsets kept; numsides=4, rotation+π/4 (a square on its side)
//
// Every marker is a tuplesa.Element, so a Group of markers can be styled in
// one call:
//
//	g := markers.NewGroup(h, v)
//	err := g.Set(tuplesa.Attr("color", "red"))
//
// Snapshots: AsDictionary and FromDictionary convert a marker to and from an
// fsdict.Tree.
//
// Errors:
//
//   - ErrBadOffsets: offsets missing or not numeric.
//   - ErrTransformLocked: VerticalLines was given a transform other than xaxis.
//   - ErrUnknownTransform: transform name not recognized.
//   - ErrIndexOutOfRange: navigation index beyond an Iterating keyword.
//   - ErrUnknownClass, ErrBadDictionary: FromDictionary input problems.
package markers
