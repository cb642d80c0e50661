// Per-pixel color transforms
package algorithms

import (
	"fmt"

	"photo-editor/internal/raster"
)

// Channel names one color channel of a pixel
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
)

func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// mapPixels validates buf and replaces every pixel with fn(pixel)
func mapPixels(buf *raster.Buffer, fn func(raster.Pixel) raster.Pixel) (*raster.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	for i, p := range buf.Pix {
		buf.Pix[i] = fn(p)
	}
	return buf, nil
}

// Grayscale sets R, G and B to 0.299R + 0.587G + 0.114B, each term truncated
// before summing. Pixels that are already gray are kept as they are.
func Grayscale(buf *raster.Buffer) (*raster.Buffer, error) {
	return mapPixels(buf, func(p raster.Pixel) raster.Pixel {
		if p.R == p.G && p.G == p.B {
			return p
		}
		luma := uint8(int(float64(p.R)*0.299) + int(float64(p.G)*0.587) + int(float64(p.B)*0.114))
		return raster.Pixel{A: p.A, R: luma, G: luma, B: luma}
	})
}

// Sepia applies the classic sepia tone matrix, truncating and capping at 255
func Sepia(buf *raster.Buffer) (*raster.Buffer, error) {
	return mapPixels(buf, func(p raster.Pixel) raster.Pixel {
		r, g, b := float64(p.R), float64(p.G), float64(p.B)
		return raster.Pixel{
			A: p.A,
			R: capByte(0.393*r + 0.769*g + 0.189*b),
			G: capByte(0.349*r + 0.686*g + 0.168*b),
			B: capByte(0.272*r + 0.534*g + 0.131*b),
		}
	})
}

// Invert replaces each color channel c with 255 - c
func Invert(buf *raster.Buffer) (*raster.Buffer, error) {
	return mapPixels(buf, func(p raster.Pixel) raster.Pixel {
		return raster.Pixel{A: p.A, R: 255 - p.R, G: 255 - p.G, B: 255 - p.B}
	})
}

// IsolateChannel keeps alpha and the named channel and zeroes the other two
func IsolateChannel(buf *raster.Buffer, ch Channel) (*raster.Buffer, error) {
	var keep func(raster.Pixel) raster.Pixel
	switch ch {
	case ChannelRed:
		keep = func(p raster.Pixel) raster.Pixel { return raster.Pixel{A: p.A, R: p.R} }
	case ChannelGreen:
		keep = func(p raster.Pixel) raster.Pixel { return raster.Pixel{A: p.A, G: p.G} }
	case ChannelBlue:
		keep = func(p raster.Pixel) raster.Pixel { return raster.Pixel{A: p.A, B: p.B} }
	default:
		return nil, fmt.Errorf("%w: channel %v", ErrInvalidParameter, ch)
	}
	return mapPixels(buf, keep)
}

// capByte truncates v toward zero and caps it at 255. Inputs are never negative.
func capByte(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
