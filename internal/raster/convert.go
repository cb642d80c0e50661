// Conversion between pixel buffers and the image package
package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// FromImage copies any decoded image into a new buffer
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	buf, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
		bounds = nrgba.Bounds()
	}

	for y := 0; y < buf.Height; y++ {
		row := buf.Row(y)
		src := nrgba.Pix[nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		for x := range row {
			i := x * 4
			row[x] = Pixel{A: src[i+3], R: src[i], G: src[i+1], B: src[i+2]}
		}
	}
	return buf, nil
}

// ToImage renders the buffer as a non-premultiplied RGBA image
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, p := range b.Pix {
		j := i * 4
		img.Pix[j] = p.R
		img.Pix[j+1] = p.G
		img.Pix[j+2] = p.B
		img.Pix[j+3] = p.A
	}
	return img
}
