// Image loading and saving on top of a codec
package codec

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"photo-editor/internal/raster"
)

// MaxDimension bounds decoded images to keep memory use reasonable
const MaxDimension = 16384

// ImageLoader handles image file operations
type ImageLoader struct {
	codec  Codec
	logger logrus.FieldLogger
}

func NewImageLoader(codec Codec, logger logrus.FieldLogger) *ImageLoader {
	return &ImageLoader{
		codec:  codec,
		logger: logger,
	}
}

// Codec returns the backend used by the loader
func (il *ImageLoader) Codec() Codec {
	return il.codec
}

// LoadImage decodes the file at path
func (il *ImageLoader) LoadImage(path string) (*raster.Buffer, error) {
	if _, err := FormatFromPath(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	defer f.Close()

	return il.ReadImage(f, path)
}

// ReadImage decodes an image from r; name is only used for logging
func (il *ImageLoader) ReadImage(r io.Reader, name string) (*raster.Buffer, error) {
	il.logger.WithField("filepath", name).Debug("Loading image")

	buf, format, err := il.codec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", name, err)
	}
	if err := ValidateImage(buf); err != nil {
		return nil, err
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": name,
		"format":   format,
		"codec":    il.codec.Name(),
		"width":    buf.Width,
		"height":   buf.Height,
	}).Info("Image loaded successfully")

	return buf, nil
}

// SaveImage encodes buf in the format implied by the extension of path
func (il *ImageLoader) SaveImage(buf *raster.Buffer, path string) (err error) {
	if _, err := FormatFromPath(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to save image: %w", cerr)
		}
	}()

	return il.WriteImage(f, buf, path)
}

// WriteImage encodes buf to w in the format implied by the extension of name
func (il *ImageLoader) WriteImage(w io.Writer, buf *raster.Buffer, name string) error {
	il.logger.WithField("filepath", name).Debug("Saving image")

	format, err := FormatFromPath(name)
	if err != nil {
		return err
	}

	if err := il.codec.Encode(w, buf, format); err != nil {
		return fmt.Errorf("failed to save image %s: %w", name, err)
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": name,
		"format":   format,
		"codec":    il.codec.Name(),
		"width":    buf.Width,
		"height":   buf.Height,
	}).Info("Image saved successfully")

	return nil
}

// ValidateImage checks a decoded buffer for basic requirements
func ValidateImage(buf *raster.Buffer) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	if buf.Width > MaxDimension || buf.Height > MaxDimension {
		return fmt.Errorf("image too large: %s (max: %d)", buf.Size(), MaxDimension)
	}
	return nil
}

// SupportedExtensions lists the file extensions accepted by LoadImage
func SupportedExtensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}
}

// SaveFormats lists the formats offered when saving
func SaveFormats() []Format {
	return []Format{FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatTIFF}
}
