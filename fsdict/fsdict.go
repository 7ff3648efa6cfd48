// SPDX-License-Identifier: MIT

package fsdict

import (
	"sort"
	"strings"
)

// Tree is a nested mapping: values are either Tree (intermediate levels) or leaves.
type Tree = map[string]any

// Pair is one (path, value) insertion.
type Pair struct {
	Path  []string
	Value any
}

// Insert stores value at path inside root, creating intermediate levels as needed.
// A zero-length path is a no-op. Panics if a non-final segment names a leaf.
// Complexity: O(len(path)).
func Insert(path []string, value any, root Tree) {
	if len(path) == 0 {
		return
	}
	node := root
	for _, seg := range path[:len(path)-1] {
		next, ok := node[seg]
		if !ok {
			child := Tree{}
			node[seg] = child
			node = child
			continue
		}
		node = next.(Tree)
	}
	node[path[len(path)-1]] = value
}

// Lookup returns the value stored at path, or false when any level is missing
// or a non-final segment names a leaf.
// Lookup of a zero-length path returns root itself.
func Lookup(root Tree, path []string) (any, bool) {
	var cur any = root
	for _, seg := range path {
		node, ok := cur.(Tree)
		if !ok {
			return nil, false
		}
		if cur, ok = node[seg]; !ok {
			return nil, false
		}
	}

	return cur, true
}

// InsertDotted splits key on sep and inserts value at the resulting path.
// Panics on an empty separator.
func InsertDotted(key, sep string, value any, root Tree) {
	if sep == "" {
		panic("fsdict: InsertDotted: empty separator")
	}
	Insert(strings.Split(key, sep), value, root)
}

// FromPairs builds a fresh Tree from pairs, applied in order.
func FromPairs(pairs ...Pair) Tree {
	root := Tree{}
	for _, p := range pairs {
		Insert(p.Path, p.Value, root)
	}

	return root
}

// Flatten returns every leaf of root keyed by its path joined with sep.
// Empty intermediate Trees are kept as leaves so InsertDotted can restore them.
func Flatten(root Tree, sep string) map[string]any {
	out := make(map[string]any)
	flattenInto(out, root, "", sep, true)

	return out
}

func flattenInto(out map[string]any, node Tree, prefix, sep string, top bool) {
	for k, v := range node {
		key := k
		if !top {
			key = prefix + sep + k
		}
		child, ok := v.(Tree)
		if ok && len(child) > 0 {
			flattenInto(out, child, key, sep, false)
			continue
		}
		out[key] = v
	}
}

// Keys returns root's top-level keys in ascending order.
func Keys(root Tree) []string {
	keys := make([]string, 0, len(root))
	for k := range root {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
