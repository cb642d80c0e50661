// Geometric transforms: flips, orientation swap and bulge distortion
package algorithms

import (
	"math"

	"photo-editor/internal/raster"
)

// FlipHorizontal mirrors buf across its vertical center axis in place
func FlipHorizontal(buf *raster.Buffer) (*raster.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	for y := 0; y < buf.Height; y++ {
		row := buf.Row(y)
		for x := 0; x < buf.Width/2; x++ {
			row[x], row[buf.Width-1-x] = row[buf.Width-1-x], row[x]
		}
	}
	return buf, nil
}

// FlipVertical mirrors buf across its horizontal center axis in place
func FlipVertical(buf *raster.Buffer) (*raster.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	for y := 0; y < buf.Height/2; y++ {
		top, bottom := buf.Row(y), buf.Row(buf.Height-1-y)
		for x := range top {
			top[x], bottom[x] = bottom[x], top[x]
		}
	}
	return buf, nil
}

// Rotate swaps portrait and landscape orientation. The result is H wide and
// W high and the source pixel (x, y) lands at (H-1-y, W-1-x). Applying the
// mapping twice restores the input.
func Rotate(buf *raster.Buffer) (*raster.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	dst, err := raster.New(buf.Height, buf.Width)
	if err != nil {
		return nil, err
	}
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			dst.Set(buf.Height-1-y, buf.Width-1-x, buf.At(x, y))
		}
	}
	return dst, nil
}

// Bulge pushes the image outward from its center. Each destination pixel
// samples the source at the same angle but at distance r*r/W from the center;
// samples that fall outside the source stay transparent black.
func (p *Processor) Bulge(buf *raster.Buffer) (*raster.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	dst, err := raster.New(buf.Width, buf.Height)
	if err != nil {
		return nil, err
	}

	cx, cy := buf.Width/2, buf.Height/2
	width := float64(buf.Width)

	p.forEachRow(buf.Height, func(y int) {
		row := dst.Row(y)
		dy := float64(y - cy)
		for x := range row {
			dx := float64(x - cx)
			radius := math.Sqrt(dx*dx + dy*dy)
			distorted := radius * radius / width
			angle := math.Atan2(dy, dx)

			srcX := cx + int(math.Round(distorted*math.Cos(angle)))
			srcY := cy + int(math.Round(distorted*math.Sin(angle)))
			if buf.In(srcX, srcY) {
				row[x] = buf.At(srcX, srcY)
			}
		}
	})
	return dst, nil
}
