package algorithms

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"photo-editor/internal/raster"
)

// randomBuffer fills a w x h buffer with reproducible pixels
func randomBuffer(t *testing.T, w, h int, seed int64) *raster.Buffer {
	t.Helper()
	buf, err := raster.New(w, h)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	for i := range buf.Pix {
		buf.Pix[i] = raster.Pixel{
			A: uint8(rng.Intn(256)),
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
		}
	}
	return buf
}

func uniformBuffer(t *testing.T, w, h int, p raster.Pixel) *raster.Buffer {
	t.Helper()
	buf, err := raster.New(w, h)
	require.NoError(t, err)
	buf.Fill(p)
	return buf
}

func corruptBuffer() *raster.Buffer {
	return &raster.Buffer{Width: 4, Height: 4, Pix: make([]raster.Pixel, 15)}
}
