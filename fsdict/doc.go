// Package fsdict grows nested string-keyed maps from flat (path, value)
// pairs, the way a filesystem grows directories around its files.
//
//	root := fsdict.Tree{}
//	fsdict.Insert([]string{"This", "is", "a", "dead", "parrot"}, "X", root)
//	fsdict.Insert([]string{"This", "parrot", "is", "no", "more"}, "Y", root)
//	// root["This"] now holds both "is" and "parrot".
//
// Every segment but the last names an intermediate Tree, created on first
// use and reused by later paths sharing the prefix. The last segment maps to
// the leaf value, overwriting any previous value at that exact path.
//
// Segments are not validated. Descending through an existing leaf as if it
// were a Tree is a caller error and panics at the type mismatch.
//
// Snapshots: MarshalYAML and UnmarshalYAML store a Tree as a YAML mapping.
//
// A Tree is not safe for concurrent mutation; callers serialize access.
package fsdict
