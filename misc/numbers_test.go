package misc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gguzzina/hyperspy/misc"
)

// TestStr2Num parses a tab-separated grid.
func TestStr2Num(t *testing.T) {
	got, err := misc.Str2Num("2.17\t 3.14\t 42\n 1\t 2\t 3")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2.17, 3.14, 42}, {1, 2, 3}}, got)

	got, err = misc.Str2Num("\n1 2\n\n3 4\n")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, got)
}

// TestStr2Num_Errors reports ragged grids and bad fields.
func TestStr2Num_Errors(t *testing.T) {
	_, err := misc.Str2Num("1 2\n3")
	assert.ErrorIs(t, err, misc.ErrRagged)

	_, err = misc.Str2Num("1 x")
	assert.ErrorIs(t, err, misc.ErrNotNumber)
}

// TestSwapElem swaps in place.
func TestSwapElem(t *testing.T) {
	l := []string{"a", "b", "c"}
	misc.SwapElem(l, 1, 2)
	assert.Equal(t, []string{"a", "c", "b"}, l)
}

// TestClosestPowerOfTwo rounds up to powers of two.
func TestClosestPowerOfTwo(t *testing.T) {
	cases := map[int]int{5: 8, 13: 16, 120: 128, 973: 1024, 8: 8, 1: 1, 0: 1}
	for n, want := range cases {
		assert.Equal(t, want, misc.ClosestPowerOfTwo(n), "ClosestPowerOfTwo(%d)", n)
	}
}

type fakeDevice []float64

func (d fakeDevice) CopyToHost() ([]float64, error) {
	out := make([]float64, len(d))
	copy(out, d)
	return out, nil
}

type brokenDevice struct{}

func (brokenDevice) CopyToHost() ([]float64, error) { return nil, errors.New("device lost") }

type fakeLazy struct{}

func (fakeLazy) Compute() ([]float64, error) { return []float64{0, 1, 2}, nil }

// TestModuleOf classifies backends.
func TestModuleOf(t *testing.T) {
	assert.Equal(t, misc.Host, misc.ModuleOf([]float64{0, 1, 2}))
	assert.Equal(t, misc.Host, misc.ModuleOf([3]int{0, 1, 2}))
	assert.Equal(t, misc.Device, misc.ModuleOf(fakeDevice{0, 1, 2}))
	assert.Equal(t, misc.Lazy, misc.ModuleOf(fakeLazy{}))
	assert.Equal(t, misc.Unknown, misc.ModuleOf([][]int{{0, 1, 2}}))
	assert.Equal(t, misc.Unknown, misc.ModuleOf(nil))

	assert.True(t, misc.IsDeviceArray(fakeDevice{1}))
	assert.False(t, misc.IsDeviceArray([]float64{1}))
	assert.Equal(t, "device", misc.Device.String())
}

// TestToHost converts host and device arrays and rejects the rest.
func TestToHost(t *testing.T) {
	want := []float64{0, 1, 2}

	got, err := misc.ToHost([]int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = misc.ToHost(fakeDevice{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = misc.ToHost(fakeLazy{})
	assert.ErrorIs(t, err, misc.ErrNotArray)

	_, err = misc.ToHost([][]int{{0, 1, 2}})
	assert.ErrorIs(t, err, misc.ErrNotArray)

	_, err = misc.ToHost(brokenDevice{})
	assert.EqualError(t, err, "misc: copy to host: device lost")
}
