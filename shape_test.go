package saldata_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	saldata "github.com/reoring/saldata"
)

func TestStrides_RowMajor(t *testing.T) {
	shapes := [][]int{
		{},
		{7},
		{3, 4},
		{2, 3, 4},
		{5, 1, 6, 2},
		{2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
	}
	for _, shape := range shapes {
		strides, err := saldata.Strides(shape)
		require.NoError(t, err, "shape %v", shape)
		require.Len(t, strides, len(shape))
		count, err := saldata.ElementCount(shape)
		require.NoError(t, err)
		if len(shape) == 0 {
			assert.Equal(t, 1, count)
			continue
		}
		n := len(shape)
		assert.Equal(t, 1, strides[n-1])
		for i := 0; i < n-1; i++ {
			assert.Equal(t, strides[i+1]*shape[i+1], strides[i], "shape %v axis %d", shape, i)
		}
		// the highest multi-index lands on the last buffer slot
		last := 0
		for i := range shape {
			last += (shape[i] - 1) * strides[i]
		}
		assert.Equal(t, count-1, last, "shape %v", shape)
	}
}

func TestStrides_DimensionOverflow(t *testing.T) {
	_, err := saldata.Strides(make([]int, saldata.MaxDimensions+1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, saldata.ErrDimensionOverflow))

	iss, ok := saldata.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "11", iss[0].Params["got"])
}

func TestStrides_NegativeExtent(t *testing.T) {
	_, err := saldata.Strides([]int{2, -1})
	assert.ErrorIs(t, err, saldata.ErrMalformedInput)
}

func TestShape_ExtentProductOverflow(t *testing.T) {
	for _, shape := range [][]int{
		{3037000500, 3037000500},
		{1 << 32, 1 << 32},
		{math.MaxInt, 2},
	} {
		_, err := saldata.ElementCount(shape)
		assert.ErrorIs(t, err, saldata.ErrMalformedInput, "shape %v", shape)
		_, err = saldata.Strides(shape)
		assert.ErrorIs(t, err, saldata.ErrMalformedInput, "shape %v", shape)
	}

	// the element count is zero but the outer stride still overflows
	_, err := saldata.Strides([]int{0, 1 << 32, 1 << 32})
	assert.ErrorIs(t, err, saldata.ErrMalformedInput)

	// a zero extent on the outermost axis keeps every partial product small
	count, err := saldata.ElementCount([]int{1 << 32, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	strides, err := saldata.Strides([]int{1 << 32, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, strides)

	_, err = saldata.NewArray[float64](math.MaxInt/4, 2)
	assert.ErrorIs(t, err, saldata.ErrMalformedInput)
}

func TestOffset(t *testing.T) {
	shape := []int{3, 4}
	strides, err := saldata.Strides(shape)
	require.NoError(t, err)

	off, err := saldata.Offset(shape, strides, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 11, off)

	_, err = saldata.Offset(shape, strides, []int{1})
	assert.ErrorIs(t, err, saldata.ErrIndexOutOfRange)

	_, err = saldata.Offset(shape, strides, []int{1, -1})
	assert.ErrorIs(t, err, saldata.ErrIndexOutOfRange)
}
