package codec

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-editor/internal/raster"
)

func opaqueGradient(t *testing.T, w, h int) *raster.Buffer {
	t.Helper()
	buf, err := raster.New(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.Set(x, y, raster.Pixel{A: 255, R: uint8(x * 16), G: uint8(y * 16), B: uint8((x + y) * 8)})
		}
	}
	return buf
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.png":        FormatPNG,
		"dir/b.JPG":    FormatJPEG,
		"c.jpeg":       FormatJPEG,
		"d.gif":        FormatGIF,
		"e.bmp":        FormatBMP,
		"f.tiff":       FormatTIFF,
		"g.tif":        FormatTIFF,
		"h.final.webp": FormatWebP,
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("notes.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	_, err = FormatFromPath("no_extension")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatExtension(t *testing.T) {
	assert.Equal(t, ".jpg", FormatJPEG.Extension())
	assert.Equal(t, ".tif", FormatTIFF.Extension())
	assert.Equal(t, ".png", FormatPNG.Extension())
}

func TestLosslessRoundTrip(t *testing.T) {
	c := NewStandard()
	src := opaqueGradient(t, 9, 7)

	for _, format := range []Format{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			var encoded bytes.Buffer
			require.NoError(t, c.Encode(&encoded, src, format))

			decoded, name, err := c.Decode(&encoded)
			require.NoError(t, err)
			assert.Equal(t, string(format), name)
			assert.True(t, decoded.Equal(src))
		})
	}
}

func TestPNGKeepsAlpha(t *testing.T) {
	c := NewStandard()
	src := opaqueGradient(t, 3, 3)
	src.Set(1, 1, raster.Pixel{A: 77, R: 10, G: 20, B: 30})

	var encoded bytes.Buffer
	require.NoError(t, c.Encode(&encoded, src, FormatPNG))
	decoded, _, err := c.Decode(&encoded)
	require.NoError(t, err)
	assert.Equal(t, raster.Pixel{A: 77, R: 10, G: 20, B: 30}, decoded.At(1, 1))
}

func TestLossyFormatsKeepDimensions(t *testing.T) {
	c := NewStandard()
	src := opaqueGradient(t, 16, 8)

	for _, format := range []Format{FormatJPEG, FormatGIF} {
		var encoded bytes.Buffer
		require.NoError(t, c.Encode(&encoded, src, format), format)

		decoded, name, err := c.Decode(&encoded)
		require.NoError(t, err, format)
		assert.Equal(t, string(format), name)
		assert.Equal(t, 16, decoded.Width)
		assert.Equal(t, 8, decoded.Height)
	}
}

func TestEncodeErrors(t *testing.T) {
	c := NewStandard()
	var out bytes.Buffer

	err := c.Encode(&out, opaqueGradient(t, 2, 2), FormatWebP)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	err = c.Encode(&out, &raster.Buffer{Width: 2, Height: 2}, FormatPNG)
	assert.ErrorIs(t, err, raster.ErrDimensionMismatch)
}

func TestDecodeGarbage(t *testing.T) {
	_, _, err := NewStandard().Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestLoaderSaveAndLoad(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	loader := NewImageLoader(NewStandard(), logger)
	src := opaqueGradient(t, 5, 4)
	path := filepath.Join(t.TempDir(), "out.png")

	require.NoError(t, loader.SaveImage(src, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	loaded, err := loader.LoadImage(path)
	require.NoError(t, err)
	assert.True(t, loaded.Equal(src))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Image loaded successfully", entry.Message)
	assert.Equal(t, "std", entry.Data["codec"])
}

func TestLoaderErrors(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	loader := NewImageLoader(NewStandard(), logger)
	dir := t.TempDir()

	_, err := loader.LoadImage(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	_, err = loader.LoadImage(filepath.Join(dir, "image.xyz"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	err = loader.SaveImage(opaqueGradient(t, 2, 2), filepath.Join(dir, "image.xyz"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	corrupt := filepath.Join(dir, "corrupt.png")
	require.NoError(t, os.WriteFile(corrupt, []byte("garbage"), 0o644))
	_, err = loader.LoadImage(corrupt)
	assert.Error(t, err)
}

func TestLoaderStreams(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	loader := NewImageLoader(NewStandard(), logger)
	src := opaqueGradient(t, 6, 2)

	var encoded bytes.Buffer
	require.NoError(t, loader.WriteImage(&encoded, src, "picked/by/dialog.bmp"))

	decoded, err := loader.ReadImage(&encoded, "picked/by/dialog.bmp")
	require.NoError(t, err)
	assert.True(t, decoded.Equal(src))

	err = loader.WriteImage(&encoded, src, "no_extension")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestValidateImageSizeLimit(t *testing.T) {
	huge := &raster.Buffer{Width: MaxDimension + 1, Height: 1, Pix: make([]raster.Pixel, MaxDimension+1)}
	assert.Error(t, ValidateImage(huge))
	assert.NoError(t, ValidateImage(opaqueGradient(t, 2, 2)))
}
