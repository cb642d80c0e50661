package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-editor/internal/raster"
)

func TestNamesInMenuOrder(t *testing.T) {
	assert.Equal(t, []string{
		"Horizontal Flip",
		"Vertical Flip",
		"Gray Scale",
		"Sepia Tone",
		"Invert Colour",
		"Gaussian Blur",
		"Bulge Effect",
		"Rotate Orientation",
		"Red Filter",
		"Green Filter",
		"Blue Filter",
	}, Names())
}

func TestLookup(t *testing.T) {
	op, err := Lookup("Gaussian Blur")
	require.NoError(t, err)
	assert.Equal(t, Operation{Kind: KindGaussianBlur, Radius: DefaultBlurRadius, Edge: EdgeZero}, op)
	assert.Equal(t, "Gaussian Blur(radius=4, edge=zero)", op.String())

	op, err = Lookup("Rotate Orientation")
	require.NoError(t, err)
	assert.Equal(t, KindRotate, op.Kind)
	assert.Equal(t, "Rotate Orientation", op.String())

	_, err = Lookup("Save As")
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestApplyDispatchesEveryKind(t *testing.T) {
	p := NewProcessor(2)
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			op, err := Lookup(name)
			require.NoError(t, err)

			buf := randomBuffer(t, 6, 4, 30)
			out, err := p.Apply(buf, op)
			require.NoError(t, err)
			require.NoError(t, out.Validate())
			if op.Kind == KindRotate {
				assert.Equal(t, 4, out.Width)
				assert.Equal(t, 6, out.Height)
			} else {
				assert.Equal(t, 6, out.Width)
				assert.Equal(t, 4, out.Height)
			}
		})
	}
}

func TestApplyMatchesEngine(t *testing.T) {
	p := NewProcessor(1)
	buf := randomBuffer(t, 5, 5, 31)

	viaApply, err := p.Apply(buf.Clone(), Op(KindBlueFilter))
	require.NoError(t, err)
	direct, err := IsolateChannel(buf.Clone(), ChannelBlue)
	require.NoError(t, err)
	assert.True(t, viaApply.Equal(direct))
}

func TestApplyErrors(t *testing.T) {
	p := NewProcessor(1)

	_, err := p.Apply(randomBuffer(t, 2, 2, 32), Operation{Kind: KindUnknown})
	assert.ErrorIs(t, err, ErrUnknownOperation)

	_, err = p.Apply(corruptBuffer(), Op(KindSepia))
	assert.ErrorIs(t, err, raster.ErrDimensionMismatch)

	_, err = p.Apply(randomBuffer(t, 2, 2, 33), GaussianBlur(0, EdgeZero))
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNewProcessorDefaultsWorkers(t *testing.T) {
	assert.GreaterOrEqual(t, NewProcessor(0).Workers(), 1)
	assert.Equal(t, 3, NewProcessor(3).Workers())
}
