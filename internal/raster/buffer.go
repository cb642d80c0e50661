// Pixel buffer shared by every transform engine
package raster

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch reports a buffer whose declared size does not match its pixels
var ErrDimensionMismatch = errors.New("dimension mismatch")

// Pixel is a single non-premultiplied ARGB sample
type Pixel struct {
	A, R, G, B uint8
}

// Transparent is fully transparent black
var Transparent = Pixel{}

// Buffer is a row-major grid of pixels with a fixed width and height
type Buffer struct {
	Width  int
	Height int
	Pix    []Pixel
}

// New allocates a transparent buffer of the given size
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d: %w", width, height, ErrDimensionMismatch)
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]Pixel, width*height),
	}, nil
}

// Validate checks that the pixel count matches the declared dimensions.
// Engines call it before touching pixels so that a corrupted buffer fails
// loudly instead of reading out of bounds.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("nil buffer: %w", ErrDimensionMismatch)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d: %w", b.Width, b.Height, ErrDimensionMismatch)
	}
	if len(b.Pix) != b.Width*b.Height {
		return fmt.Errorf("%dx%d buffer holds %d pixels: %w", b.Width, b.Height, len(b.Pix), ErrDimensionMismatch)
	}
	return nil
}

// In reports whether (x, y) lies inside the buffer
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

func (b *Buffer) offset(x, y int) int {
	return y*b.Width + x
}

// At returns the pixel at (x, y). The coordinates must be in bounds.
func (b *Buffer) At(x, y int) Pixel {
	return b.Pix[b.offset(x, y)]
}

// Set stores p at (x, y). The coordinates must be in bounds.
func (b *Buffer) Set(x, y int, p Pixel) {
	b.Pix[b.offset(x, y)] = p
}

// Row returns the pixels of row y, sharing storage with the buffer
func (b *Buffer) Row(y int) []Pixel {
	start := b.offset(0, y)
	return b.Pix[start : start+b.Width]
}

// Clone returns a deep copy
func (b *Buffer) Clone() *Buffer {
	pix := make([]Pixel, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{
		Width:  b.Width,
		Height: b.Height,
		Pix:    pix,
	}
}

// Equal reports whether both buffers have the same size and pixels
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.Width != other.Width || b.Height != other.Height || len(b.Pix) != len(other.Pix) {
		return false
	}
	for i := range b.Pix {
		if b.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}

// Fill sets every pixel to p
func (b *Buffer) Fill(p Pixel) {
	for i := range b.Pix {
		b.Pix[i] = p
	}
}

// Size returns the buffer dimensions as "WxH"
func (b *Buffer) Size() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}
