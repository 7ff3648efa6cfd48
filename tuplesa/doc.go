// Package tuplesa provides a fixed-length tuple of elements that can be
// styled in bulk: one call sets (or gathers) a named property on every
// element.
//
// What:
//
//   - Tuple[E] wraps an ordered, immutable sequence of Element values.
//   - Set assigns a property on every element; a slice whose length equals
//     the tuple length is broadcast element-wise, anything else is copied
//     to every element as is.
//   - Get gathers properties from every element in element order.
//   - Concat and Repeat return new tuples of the same type.
//
// Elements expose properties through the Element interface. Concrete types
// usually build one Accessors table per type and Bind each instance to it:
//
//	var lineProps = tuplesa.NewAccessors[Line]().
//		Field("color", func(l *Line) any { return l.Color },
//			func(l *Line, v any) error { return tuplesa.SetAs(&l.Color, v) })
//
//	t := tuplesa.New(lineProps.Bind(&a), lineProps.Bind(&b))
//	_ = t.Set(tuplesa.Attr("color", "red"))
//
// Length coincidence:
//
//	A value such as []string{"r", "g"} on a two-element tuple is always
//	treated as element-wise. Wrap it with Scalar to give every element the
//	whole slice instead.
//
// Errors:
//
//   - ErrAttribute: a property is missing on at least one element.
//   - ErrInvalidName: a name is not a legal identifier (also matches ErrAttribute).
//   - ErrReadOnly: the property has no setter.
//   - ErrValueType: a setter received a value of the wrong type.
//
// Set and Get validate every name against every element before any element
// is read or written. A setter that fails afterwards stops the loop; writes
// already made to earlier elements are kept.
package tuplesa
