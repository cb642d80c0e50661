// Image quality metrics comparing an edited buffer with its original
package metrics

import (
	"fmt"
	"sort"

	"photo-editor/internal/raster"
)

// Metric defines the interface for quality metrics
type Metric interface {
	// Calculate computes the metric value
	Calculate(original, processed *raster.Buffer) (float64, error)

	// GetName returns the metric name
	GetName() string

	// IsHigherBetter returns true if higher values indicate a closer match
	IsHigherBetter() bool
}

// Evaluator manages and calculates multiple metrics
type Evaluator struct {
	metrics map[string]Metric
}

// NewEvaluator creates an evaluator with the default metrics registered
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		metrics: make(map[string]Metric),
	}
	e.RegisterDefaultMetrics()
	return e
}

// RegisterDefaultMetrics registers mse, psnr and changed_ratio
func (e *Evaluator) RegisterDefaultMetrics() {
	e.Register("mse", NewMSE())
	e.Register("psnr", NewPSNR())
	e.Register("changed_ratio", NewChangedRatio())
}

// Register registers a metric
func (e *Evaluator) Register(name string, metric Metric) {
	e.metrics[name] = metric
}

// Names returns the registered metric names, sorted
func (e *Evaluator) Names() []string {
	names := make([]string, 0, len(e.metrics))
	for name := range e.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Calculate calculates a specific metric
func (e *Evaluator) Calculate(name string, original, processed *raster.Buffer) (float64, error) {
	metric, exists := e.metrics[name]
	if !exists {
		return 0, fmt.Errorf("metric not found: %s", name)
	}
	return metric.Calculate(original, processed)
}

// CalculateAll calculates every registered metric. The first failure aborts,
// since all metrics share the same preconditions.
func (e *Evaluator) CalculateAll(original, processed *raster.Buffer) (map[string]float64, error) {
	results := make(map[string]float64, len(e.metrics))
	for _, name := range e.Names() {
		value, err := e.metrics[name].Calculate(original, processed)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		results[name] = value
	}
	return results, nil
}

// CalculatePSNR calculates PSNR between two buffers
func (e *Evaluator) CalculatePSNR(original, processed *raster.Buffer) (float64, error) {
	return e.Calculate("psnr", original, processed)
}

// checkComparable checks that two buffers can be compared pixel by pixel
func checkComparable(original, processed *raster.Buffer) error {
	if err := original.Validate(); err != nil {
		return err
	}
	if err := processed.Validate(); err != nil {
		return err
	}
	if original.Width != processed.Width || original.Height != processed.Height {
		return fmt.Errorf("cannot compare %s with %s: %w", original.Size(), processed.Size(), raster.ErrDimensionMismatch)
	}
	return nil
}
