package markers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gguzzina/hyperspy/markers"
	"github.com/gguzzina/hyperspy/tuplesa"
)

// TestHorizontalLines_Defaults checks transforms, collection and name.
func TestHorizontalLines_Defaults(t *testing.T) {
	h, err := markers.NewHorizontalLines([]float64{1, 2})
	require.NoError(t, err)

	assert.Equal(t, markers.TypeHorizontalLines, h.MarkerType())
	assert.Equal(t, markers.TypeHorizontalLines, h.Name())
	assert.Equal(t, markers.LineCollection, h.Collection())
	assert.Equal(t, markers.TransformDisplay, h.OffsetsTransform())
	assert.Equal(t, markers.TransformYAxis, h.Transform())
	assert.True(t, h.PlotOnSignal())
}

// TestHorizontalLines_Segments spans the current x limits at each offset.
func TestHorizontalLines_Segments(t *testing.T) {
	h, err := markers.NewHorizontalLines([]int{2, 5}, markers.WithKwarg("color", "red"))
	require.NoError(t, err)

	pos := markers.DefaultPosition()
	pos.XLim = [2]float64{-1, 10}
	kw, err := h.DataPosition(pos)
	require.NoError(t, err)

	assert.NotContains(t, kw, "offsets")
	assert.Equal(t, "red", kw["color"])
	assert.Equal(t, [][2][2]float64{
		{{-1, 2}, {10, 2}},
		{{-1, 5}, {10, 5}},
	}, kw["segments"])
}

// TestHorizontalLines_Iterating resolves per-index offsets.
func TestHorizontalLines_Iterating(t *testing.T) {
	h, err := markers.NewHorizontalLines(markers.Iterating{[]float64{1}, []float64{3, 4}})
	require.NoError(t, err)
	assert.True(t, h.IsIterating("offsets"))

	pos := markers.DefaultPosition()
	pos.Index = 1
	kw, err := h.DataPosition(pos)
	require.NoError(t, err)
	assert.Len(t, kw["segments"], 2)

	pos.Index = 2
	_, err = h.DataPosition(pos)
	assert.ErrorIs(t, err, markers.ErrIndexOutOfRange)
}

// TestHorizontalLines_BadOffsets rejects nil and non-numeric offsets.
func TestHorizontalLines_BadOffsets(t *testing.T) {
	_, err := markers.NewHorizontalLines(nil)
	assert.ErrorIs(t, err, markers.ErrBadOffsets)

	h, err := markers.NewHorizontalLines([]string{"a"})
	require.NoError(t, err)
	_, err = h.DataPosition(markers.DefaultPosition())
	assert.ErrorIs(t, err, markers.ErrBadOffsets)
}

// TestVerticalLines_Segments spans y from 0 to 1 in axis coordinates.
func TestVerticalLines_Segments(t *testing.T) {
	v, err := markers.NewVerticalLines([]any{1, 2.5})
	require.NoError(t, err)

	assert.Equal(t, markers.TransformXAxis, v.Transform())
	assert.Equal(t, markers.TransformDisplay, v.OffsetsTransform())

	kw, err := v.DataPosition(markers.DefaultPosition())
	require.NoError(t, err)
	assert.NotContains(t, kw, "offsets")
	assert.Equal(t, [][2][2]float64{
		{{1, 0}, {1, 1}},
		{{2.5, 0}, {2.5, 1}},
	}, kw["segments"])
}

// TestVerticalLines_TransformLocked rejects any transform but xaxis.
func TestVerticalLines_TransformLocked(t *testing.T) {
	_, err := markers.NewVerticalLines([]float64{1}, markers.WithTransform(markers.TransformData))
	assert.ErrorIs(t, err, markers.ErrTransformLocked)

	v, err := markers.NewVerticalLines([]float64{1}, markers.WithTransform(markers.TransformXAxis))
	require.NoError(t, err)

	err = v.SetProperty("transform", "data")
	assert.ErrorIs(t, err, markers.ErrTransformLocked)
	assert.Equal(t, markers.TransformXAxis, v.Transform())

	require.NoError(t, v.SetProperty("transform", "xaxis"))

	err = v.SetProperty("transform", "sideways")
	assert.ErrorIs(t, err, markers.ErrUnknownTransform)
}

// TestVerticalLines_TransformLockedOnBase holds the lock on the shared base,
// directly and through a tuple over it.
func TestVerticalLines_TransformLockedOnBase(t *testing.T) {
	v, err := markers.NewVerticalLines([]float64{1, 2})
	require.NoError(t, err)

	err = v.Base().SetProperty("transform", "data")
	assert.ErrorIs(t, err, markers.ErrTransformLocked)
	assert.Equal(t, markers.TransformXAxis, v.Transform())

	err = tuplesa.New(v.Base()).Set(tuplesa.Attr("transform", "axes"))
	assert.ErrorIs(t, err, markers.ErrTransformLocked)
	assert.Equal(t, markers.TransformXAxis, v.Transform())

	kw, err := v.DataPosition(markers.DefaultPosition())
	require.NoError(t, err)
	assert.Equal(t, [][2][2]float64{{{1, 0}, {1, 1}}, {{2, 0}, {2, 1}}}, kw["segments"])

	// Other marker types keep a free transform.
	h, err := markers.NewHorizontalLines([]float64{1})
	require.NoError(t, err)
	require.NoError(t, h.Base().SetProperty("transform", "data"))
	assert.Equal(t, markers.TransformData, h.Transform())
}
