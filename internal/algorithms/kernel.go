// Gaussian kernel generation
package algorithms

import (
	"fmt"
	"math"
)

// GaussianSigma is the standard deviation of every generated kernel. It does
// not follow the radius: a larger radius widens the window over the same
// curve, so large kernels are close to a box filter.
const GaussianSigma = 10.0

// Kernel is an immutable square weight matrix of side 2*Radius+1
type Kernel struct {
	Radius  int
	weights []float64
}

// GaussianKernel builds a normalized (2r+1)x(2r+1) Gaussian kernel
func GaussianKernel(radius int) (*Kernel, error) {
	if radius < 1 {
		return nil, fmt.Errorf("%w: kernel radius %d must be at least 1", ErrInvalidParameter, radius)
	}

	size := 2*radius + 1
	weights := make([]float64, size*size)
	variance := GaussianSigma * GaussianSigma
	scale := 1.0 / (2.0 * math.Pi * variance)

	sum := 0.0
	for j := -radius; j <= radius; j++ {
		for i := -radius; i <= radius; i++ {
			w := scale * math.Exp(-float64(i*i+j*j)/(2.0*variance))
			weights[(j+radius)*size+(i+radius)] = w
			sum += w
		}
	}

	// Normalize
	for i := range weights {
		weights[i] /= sum
	}

	return &Kernel{Radius: radius, weights: weights}, nil
}

// Size returns the side length of the kernel
func (k *Kernel) Size() int {
	return 2*k.Radius + 1
}

// At returns the weight at offset (i, j), both in [-Radius, Radius]
func (k *Kernel) At(i, j int) float64 {
	return k.weights[(j+k.Radius)*k.Size()+(i+k.Radius)]
}

// Weights returns a row-major copy of the weights
func (k *Kernel) Weights() []float64 {
	out := make([]float64, len(k.weights))
	copy(out, k.weights)
	return out
}

// Sum returns the total of all weights
func (k *Kernel) Sum() float64 {
	sum := 0.0
	for _, w := range k.weights {
		sum += w
	}
	return sum
}
