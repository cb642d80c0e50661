// OpenCV backed codec using gocv imdecode/imencode
package opencv

import (
	"fmt"
	"io"

	"gocv.io/x/gocv"

	"photo-editor/internal/codec"
	"photo-editor/internal/raster"
)

// Codec decodes and encodes through OpenCV. It needs the OpenCV shared
// libraries at runtime and does not support GIF or WebP encoding.
type Codec struct{}

// New creates the OpenCV codec
func New() *Codec {
	return &Codec{}
}

func (c *Codec) Name() string {
	return "opencv"
}

func (c *Codec) Decode(r io.Reader) (*raster.Buffer, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}

	mat, err := gocv.IMDecode(data, gocv.IMReadUnchanged)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, "", fmt.Errorf("decode image: %w", codec.ErrUnsupportedFormat)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, "", fmt.Errorf("convert %dx%d mat with %d channels: %w", mat.Cols(), mat.Rows(), mat.Channels(), err)
	}

	buf, err := raster.FromImage(img)
	if err != nil {
		return nil, "", err
	}
	return buf, c.Name(), nil
}

func (c *Codec) Encode(w io.Writer, buf *raster.Buffer, format codec.Format) error {
	if err := buf.Validate(); err != nil {
		return err
	}

	switch format {
	case codec.FormatPNG, codec.FormatJPEG, codec.FormatBMP, codec.FormatTIFF:
	default:
		return fmt.Errorf("%w: opencv cannot encode %q", codec.ErrUnsupportedFormat, format)
	}

	mat, err := gocv.ImageToMatRGBA(buf.ToImage())
	if err != nil {
		return fmt.Errorf("convert to mat: %w", err)
	}
	defer mat.Close()

	encoded, err := gocv.IMEncode(gocv.FileExt(format.Extension()), mat)
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	defer encoded.Close()

	if _, err := w.Write(encoded.GetBytes()); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

var _ codec.Codec = (*Codec)(nil)
