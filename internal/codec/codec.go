// Image codecs turning encoded bytes into pixel buffers and back
package codec

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // registers the WebP decoder

	"photo-editor/internal/raster"
)

// ErrUnsupportedFormat is returned for formats the codec cannot handle
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format identifies an encoded image format
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatWebP Format = "webp"
)

// Extension returns the canonical file extension, including the dot
func (f Format) Extension() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatTIFF:
		return ".tif"
	}
	return "." + string(f)
}

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".gif":
		return FormatGIF, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".webp":
		return FormatWebP, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Codec decodes and encodes pixel buffers
type Codec interface {
	// Decode reads one image and reports its format name
	Decode(r io.Reader) (*raster.Buffer, string, error)
	// Encode writes buf in the requested format
	Encode(w io.Writer, buf *raster.Buffer, format Format) error
	// Name identifies the backend in logs
	Name() string
}

// Standard is the pure Go codec built on image and golang.org/x/image
type Standard struct {
	// JPEGQuality is used when encoding JPEG; zero means jpeg.DefaultQuality
	JPEGQuality int
}

// NewStandard creates the pure Go codec
func NewStandard() *Standard {
	return &Standard{JPEGQuality: jpeg.DefaultQuality}
}

func (c *Standard) Name() string {
	return "std"
}

func (c *Standard) Decode(r io.Reader) (*raster.Buffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	buf, err := raster.FromImage(img)
	if err != nil {
		return nil, "", err
	}
	return buf, format, nil
}

func (c *Standard) Encode(w io.Writer, buf *raster.Buffer, format Format) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	img := buf.ToImage()

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		quality := c.JPEGQuality
		if quality == 0 {
			quality = jpeg.DefaultQuality
		}
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: cannot encode %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}
