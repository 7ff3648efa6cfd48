package fsdict_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gguzzina/hyperspy/fsdict"
)

// TestYAML_RoundTrip snapshots the parrot tree and restores it.
func TestYAML_RoundTrip(t *testing.T) {
	root := parrot()

	data, err := fsdict.MarshalYAML(root)
	require.NoError(t, err)

	back, err := fsdict.UnmarshalYAML(data)
	require.NoError(t, err)
	if diff := cmp.Diff(root, back); diff != "" {
		t.Errorf("yaml round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestYAML_Scalars keeps ints, floats and bools typed.
func TestYAML_Scalars(t *testing.T) {
	root := fsdict.Tree{}
	fsdict.Insert([]string{"Signal", "binned"}, true, root)
	fsdict.Insert([]string{"Signal", "size"}, 1024, root)
	fsdict.Insert([]string{"Signal", "scale"}, 0.5, root)

	data, err := fsdict.MarshalYAML(root)
	require.NoError(t, err)
	assert.Equal(t, "Signal:\n    binned: true\n    scale: 0.5\n    size: 1024\n", string(data))

	back, err := fsdict.UnmarshalYAML(data)
	require.NoError(t, err)
	got, ok := fsdict.Lookup(back, []string{"Signal", "size"})
	require.True(t, ok)
	assert.Equal(t, 1024, got)
}

// TestYAML_Errors covers empty and non-mapping documents.
func TestYAML_Errors(t *testing.T) {
	empty, err := fsdict.UnmarshalYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = fsdict.UnmarshalYAML([]byte("- a\n- b\n"))
	assert.ErrorIs(t, err, fsdict.ErrNotMapping)

	_, err = fsdict.UnmarshalYAML([]byte("a: [unterminated"))
	assert.Error(t, err)
}
