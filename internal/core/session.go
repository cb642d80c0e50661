// Edit session holding the original and working images
package core

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"photo-editor/internal/algorithms"
	"photo-editor/internal/metrics"
	"photo-editor/internal/raster"
)

// ErrInvalidState is returned when an operation is requested before an image is loaded
var ErrInvalidState = errors.New("no image loaded")

// SessionConfig controls how named operations are parameterized
type SessionConfig struct {
	BlurRadius int
	Edge       algorithms.EdgeMode
	Workers    int
}

// DefaultSessionConfig matches the editor's "Gaussian Blur" command
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		BlurRadius: algorithms.DefaultBlurRadius,
		Edge:       algorithms.EdgeZero,
	}
}

// ImageMetadata describes the loaded image
type ImageMetadata struct {
	Width    int
	Height   int
	Source   string
	LoadedAt time.Time
}

// Session owns the original image and the working copy every operation edits
type Session struct {
	mu        sync.RWMutex
	original  *raster.Buffer
	working   *raster.Buffer
	hasImage  bool
	metadata  ImageMetadata
	steps     []algorithms.Operation
	config    SessionConfig
	processor *algorithms.Processor
	evaluator *metrics.Evaluator
	logger    logrus.FieldLogger
}

// NewSession creates an empty session
func NewSession(config SessionConfig, logger logrus.FieldLogger) *Session {
	return &Session{
		config:    config,
		processor: algorithms.NewProcessor(config.Workers),
		evaluator: metrics.NewEvaluator(),
		logger:    logger,
	}
}

// Load replaces the session contents with a freshly decoded image
func (s *Session) Load(buf *raster.Buffer, source string) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("cannot load image: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.original = buf.Clone()
	s.working = buf.Clone()
	s.hasImage = true
	s.steps = nil
	s.metadata = ImageMetadata{
		Width:    buf.Width,
		Height:   buf.Height,
		Source:   source,
		LoadedAt: time.Now(),
	}

	s.logger.WithFields(logrus.Fields{
		"source": source,
		"size":   buf.Size(),
	}).Info("Image loaded into session")
	return nil
}

// Apply runs op on the working image. The engine works on a private copy and
// the working image is only replaced once it succeeds.
func (s *Session) Apply(op algorithms.Operation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasImage {
		return fmt.Errorf("%v: %w", op, ErrInvalidState)
	}

	start := time.Now()
	result, err := s.processor.Apply(s.working.Clone(), op)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"operation": op.String(),
			"error":     err,
		}).Error("Operation failed")
		return fmt.Errorf("%v: %w", op, err)
	}

	inputSize := s.working.Size()
	s.working = result
	s.steps = append(s.steps, op)

	s.logger.WithFields(logrus.Fields{
		"operation":   op.String(),
		"input_size":  inputSize,
		"output_size": result.Size(),
		"step":        len(s.steps),
		"duration":    time.Since(start),
	}).Info("Operation applied")
	return nil
}

// ApplyNamed resolves a menu name such as "Gaussian Blur" and applies it.
// Blur operations take their radius and edge policy from the session config.
func (s *Session) ApplyNamed(name string) error {
	op, err := algorithms.Lookup(name)
	if err != nil {
		return err
	}
	if op.Kind == algorithms.KindGaussianBlur {
		op = algorithms.GaussianBlur(s.config.BlurRadius, s.config.Edge)
	}
	return s.Apply(op)
}

// RestoreOriginal discards every edit by copying the original image back
func (s *Session) RestoreOriginal() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasImage {
		return fmt.Errorf("restore to original: %w", ErrInvalidState)
	}

	discarded := len(s.steps)
	s.working = s.original.Clone()
	s.steps = nil

	s.logger.WithField("discarded_steps", discarded).Info("Restored original image")
	return nil
}

// Current returns a copy of the working image
func (s *Session) Current() (*raster.Buffer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasImage {
		return nil, ErrInvalidState
	}
	return s.working.Clone(), nil
}

// Original returns a copy of the image as it was loaded
func (s *Session) Original() (*raster.Buffer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasImage {
		return nil, ErrInvalidState
	}
	return s.original.Clone(), nil
}

// HasImage returns true if an image is loaded
func (s *Session) HasImage() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasImage
}

// Metadata returns information about the loaded image
func (s *Session) Metadata() ImageMetadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metadata
}

// Steps returns the operations applied since the last load or restore
func (s *Session) Steps() []algorithms.Operation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	steps := make([]algorithms.Operation, len(s.steps))
	copy(steps, s.steps)
	return steps
}

// Quality compares the working image with the original. It fails with
// raster.ErrDimensionMismatch while the orientation differs.
func (s *Session) Quality() (map[string]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasImage {
		return nil, ErrInvalidState
	}
	return s.evaluator.CalculateAll(s.original, s.working)
}

// Clear drops the loaded image
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.original = nil
	s.working = nil
	s.hasImage = false
	s.steps = nil
	s.metadata = ImageMetadata{}
}
