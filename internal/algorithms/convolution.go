// 2-D convolution with a configurable edge policy
package algorithms

import (
	"fmt"
	"math"

	"photo-editor/internal/raster"
)

// EdgeMode decides what a convolution samples outside the buffer
type EdgeMode int

const (
	// EdgeZero treats missing samples as transparent black, darkening the border
	EdgeZero EdgeMode = iota
	// EdgeClamp repeats the nearest edge pixel
	EdgeClamp
)

func (m EdgeMode) String() string {
	switch m {
	case EdgeZero:
		return "zero"
	case EdgeClamp:
		return "clamp"
	}
	return fmt.Sprintf("EdgeMode(%d)", int(m))
}

// ParseEdgeMode accepts "zero" or "clamp"
func ParseEdgeMode(s string) (EdgeMode, error) {
	switch s {
	case "zero", "":
		return EdgeZero, nil
	case "clamp":
		return EdgeClamp, nil
	}
	return EdgeZero, fmt.Errorf("%w: edge mode %q", ErrInvalidParameter, s)
}

// Convolve applies kernel to the color channels of buf and returns a new
// buffer of the same size. Alpha is copied unchanged.
func (p *Processor) Convolve(buf *raster.Buffer, kernel *Kernel, edge EdgeMode) (*raster.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if kernel == nil {
		return nil, fmt.Errorf("%w: nil kernel", ErrInvalidParameter)
	}
	if edge != EdgeZero && edge != EdgeClamp {
		return nil, fmt.Errorf("%w: edge mode %v", ErrInvalidParameter, edge)
	}

	dst, err := raster.New(buf.Width, buf.Height)
	if err != nil {
		return nil, err
	}

	r := kernel.Radius
	p.forEachRow(buf.Height, func(y int) {
		row := dst.Row(y)
		for x := range row {
			var sumR, sumG, sumB float64
			for j := -r; j <= r; j++ {
				for i := -r; i <= r; i++ {
					sx, sy := x+i, y+j
					if !buf.In(sx, sy) {
						if edge == EdgeZero {
							continue
						}
						sx, sy = clampInt(sx, 0, buf.Width-1), clampInt(sy, 0, buf.Height-1)
					}
					w := kernel.At(i, j)
					s := buf.At(sx, sy)
					sumR += w * float64(s.R)
					sumG += w * float64(s.G)
					sumB += w * float64(s.B)
				}
			}
			row[x] = raster.Pixel{
				A: buf.At(x, y).A,
				R: roundByte(sumR),
				G: roundByte(sumG),
				B: roundByte(sumB),
			}
		}
	})
	return dst, nil
}

// roundByte rounds v to the nearest integer and clamps it to [0, 255]
func roundByte(v float64) uint8 {
	v = math.Round(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
