// Concrete implementations of quality metrics
package metrics

import (
	"math"

	"photo-editor/internal/raster"
)

// MSE is the mean squared error over the red, green and blue channels
type MSE struct{}

// NewMSE creates a new MSE metric
func NewMSE() *MSE {
	return &MSE{}
}

func (m *MSE) Calculate(original, processed *raster.Buffer) (float64, error) {
	if err := checkComparable(original, processed); err != nil {
		return 0, err
	}
	return meanSquaredError(original, processed), nil
}

func (m *MSE) GetName() string {
	return "MSE"
}

func (m *MSE) IsHigherBetter() bool {
	return false
}

// PSNR implements Peak Signal-to-Noise Ratio in decibels
type PSNR struct{}

// NewPSNR creates a new PSNR metric
func NewPSNR() *PSNR {
	return &PSNR{}
}

// Calculate returns +Inf for identical buffers
func (p *PSNR) Calculate(original, processed *raster.Buffer) (float64, error) {
	if err := checkComparable(original, processed); err != nil {
		return 0, err
	}

	mse := meanSquaredError(original, processed)
	if mse == 0 {
		return math.Inf(1), nil // Perfect match
	}

	maxVal := 255.0
	return 20 * math.Log10(maxVal/math.Sqrt(mse)), nil
}

func (p *PSNR) GetName() string {
	return "PSNR"
}

func (p *PSNR) IsHigherBetter() bool {
	return true
}

// ChangedRatio is the fraction of pixels that differ in any channel
type ChangedRatio struct{}

// NewChangedRatio creates a new changed-pixel ratio metric
func NewChangedRatio() *ChangedRatio {
	return &ChangedRatio{}
}

func (c *ChangedRatio) Calculate(original, processed *raster.Buffer) (float64, error) {
	if err := checkComparable(original, processed); err != nil {
		return 0, err
	}
	changed := 0
	for i := range original.Pix {
		if original.Pix[i] != processed.Pix[i] {
			changed++
		}
	}
	return float64(changed) / float64(len(original.Pix)), nil
}

func (c *ChangedRatio) GetName() string {
	return "Changed Pixels"
}

func (c *ChangedRatio) IsHigherBetter() bool {
	return false
}

func meanSquaredError(original, processed *raster.Buffer) float64 {
	sumSquaredDiff := 0.0
	for i, a := range original.Pix {
		b := processed.Pix[i]
		dr := float64(a.R) - float64(b.R)
		dg := float64(a.G) - float64(b.G)
		db := float64(a.B) - float64(b.B)
		sumSquaredDiff += dr*dr + dg*dg + db*db
	}
	return sumSquaredDiff / float64(3*len(original.Pix))
}
