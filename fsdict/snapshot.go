// SPDX-License-Identifier: MIT

package fsdict

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping indicates that a YAML document does not decode into a mapping.
var ErrNotMapping = errors.New("fsdict: snapshot is not a mapping")

// MarshalYAML encodes root as a YAML mapping. Keys are emitted in sorted order.
func MarshalYAML(root Tree) ([]byte, error) {
	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("fsdict: yaml marshal: %w", err)
	}

	return data, nil
}

// UnmarshalYAML decodes a snapshot produced by MarshalYAML. Nested mappings
// decode as Tree; an empty document yields an empty Tree.
func UnmarshalYAML(data []byte) (Tree, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fsdict: yaml unmarshal: %w", err)
	}
	if doc == nil {
		return Tree{}, nil
	}
	root, ok := doc.(Tree)
	if !ok {
		return nil, fmt.Errorf("fsdict: got %T: %w", doc, ErrNotMapping)
	}

	return root, nil
}
