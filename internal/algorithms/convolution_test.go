package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-editor/internal/raster"
)

func TestConvolveUniformInterior(t *testing.T) {
	color := raster.Pixel{A: 255, R: 120, G: 33, B: 250}
	buf := uniformBuffer(t, 13, 11, color)
	k, err := GaussianKernel(4)
	require.NoError(t, err)

	out, err := NewProcessor(4).Convolve(buf, k, EdgeZero)
	require.NoError(t, err)
	require.Equal(t, 13, out.Width)
	require.Equal(t, 11, out.Height)

	for y := 4; y < 11-4; y++ {
		for x := 4; x < 13-4; x++ {
			assert.Equal(t, color, out.At(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestConvolveZeroFillDarkensBorder(t *testing.T) {
	color := raster.Pixel{A: 200, R: 200, G: 200, B: 200}
	buf := uniformBuffer(t, 9, 9, color)
	k, err := GaussianKernel(4)
	require.NoError(t, err)

	out, err := NewProcessor(1).Convolve(buf, k, EdgeZero)
	require.NoError(t, err)

	assert.Equal(t, color, out.At(4, 4))
	corner := out.At(0, 0)
	assert.Less(t, corner.R, color.R)
	assert.Equal(t, color.A, corner.A, "alpha is not convolved")
}

func TestConvolveClampKeepsUniformField(t *testing.T) {
	color := raster.Pixel{A: 10, R: 77, G: 5, B: 199}
	buf := uniformBuffer(t, 6, 5, color)
	k, err := GaussianKernel(3)
	require.NoError(t, err)

	out, err := NewProcessor(2).Convolve(buf, k, EdgeClamp)
	require.NoError(t, err)
	for _, p := range out.Pix {
		assert.Equal(t, color, p)
	}
}

func TestConvolveDoesNotModifyInput(t *testing.T) {
	buf := randomBuffer(t, 8, 8, 20)
	input := buf.Clone()
	k, err := GaussianKernel(1)
	require.NoError(t, err)

	_, err = NewProcessor(1).Convolve(buf, k, EdgeZero)
	require.NoError(t, err)
	assert.True(t, buf.Equal(input))
}

func TestConvolveParallelMatchesSequential(t *testing.T) {
	buf := randomBuffer(t, 31, 17, 21)
	k, err := GaussianKernel(2)
	require.NoError(t, err)

	seq, err := NewProcessor(1).Convolve(buf, k, EdgeZero)
	require.NoError(t, err)
	par, err := NewProcessor(6).Convolve(buf, k, EdgeZero)
	require.NoError(t, err)
	assert.True(t, seq.Equal(par))
}

func TestConvolveRejectsBadInput(t *testing.T) {
	p := NewProcessor(1)
	k, err := GaussianKernel(1)
	require.NoError(t, err)

	_, err = p.Convolve(corruptBuffer(), k, EdgeZero)
	assert.ErrorIs(t, err, raster.ErrDimensionMismatch)

	_, err = p.Convolve(uniformBuffer(t, 2, 2, raster.Pixel{}), nil, EdgeZero)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = p.Convolve(uniformBuffer(t, 2, 2, raster.Pixel{}), k, EdgeMode(7))
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestParseEdgeMode(t *testing.T) {
	m, err := ParseEdgeMode("clamp")
	require.NoError(t, err)
	assert.Equal(t, EdgeClamp, m)

	m, err = ParseEdgeMode("zero")
	require.NoError(t, err)
	assert.Equal(t, EdgeZero, m)

	_, err = ParseEdgeMode("wrap")
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
