package saldata

import (
	"fmt"
	"math"
	"strconv"
)

// MaxDimensions is the highest dimension count an Array supports.
const MaxDimensions = 10

// Strides computes row-major strides for shape: the last axis varies fastest,
// stride[D-1] = 1 and stride[i] = stride[i+1] * shape[i+1]. A 0-dimensional
// shape yields an empty slice. A shape whose partial products do not fit in
// an int fails with MalformedInput.
func Strides(shape []int) ([]int, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		next, ok := mulInt(acc, shape[i])
		if !ok {
			return nil, extentOverflow(shape)
		}
		acc = next
	}
	return strides, nil
}

// ElementCount is the product of the extents of shape (1 for 0 dimensions).
func ElementCount(shape []int) (int, error) {
	if err := checkShape(shape); err != nil {
		return 0, err
	}
	n := 1
	for _, d := range shape {
		next, ok := mulInt(n, d)
		if !ok {
			return 0, extentOverflow(shape)
		}
		n = next
	}
	return n, nil
}

// mulInt multiplies two non-negative ints, reporting false on overflow.
func mulInt(a, b int) (int, bool) {
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}
	return a * b, true
}

func extentOverflow(shape []int) error {
	return malformed(RootPath(), nil, "shape %v overflows the addressable element count", shape)
}

// Offset converts a multi-index into a linear buffer offset. Every axis index
// must satisfy 0 <= idx < shape[axis] and len(idx) must equal len(shape).
func Offset(shape, strides []int, idx []int) (int, error) {
	if len(shape) > MaxDimensions {
		return 0, dimensionOverflow(len(shape))
	}
	if len(idx) != len(shape) {
		return 0, Issues{{
			Path:    "/",
			Code:    CodeIndexOutOfRange,
			Message: fmt.Sprintf("got %d indices for %d dimensions", len(idx), len(shape)),
			Params:  map[string]any{"indices": len(idx), "dimensions": len(shape)},
		}}
	}
	off := 0
	for axis, i := range idx {
		if i < 0 || i >= shape[axis] {
			return 0, singleIssue(RootPath(), CodeIndexOutOfRange, nil, map[string]string{
				"index":  strconv.Itoa(i),
				"axis":   strconv.Itoa(axis),
				"extent": strconv.Itoa(shape[axis]),
			})
		}
		off += i * strides[axis]
	}
	return off, nil
}

func checkShape(shape []int) error {
	if len(shape) > MaxDimensions {
		return dimensionOverflow(len(shape))
	}
	for axis, d := range shape {
		if d < 0 {
			return malformed(RootPath(), nil, "negative extent %d on axis %d", d, axis)
		}
	}
	return nil
}

func dimensionOverflow(n int) error {
	return singleIssue(RootPath(), CodeDimensionOverflow, nil, map[string]string{
		"got": strconv.Itoa(n),
		"max": strconv.Itoa(MaxDimensions),
	})
}
