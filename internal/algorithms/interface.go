// Operation vocabulary and dispatch to the transform engines
package algorithms

import (
	"errors"
	"fmt"
	"runtime"

	"photo-editor/internal/raster"
)

var (
	// ErrUnknownOperation is returned for names or kinds outside the vocabulary
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrInvalidParameter is returned for out-of-range operation parameters
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Kind enumerates the transforms the engines implement
type Kind int

const (
	KindUnknown Kind = iota
	KindHorizontalFlip
	KindVerticalFlip
	KindGrayscale
	KindSepia
	KindInvert
	KindGaussianBlur
	KindBulge
	KindRotate
	KindRedFilter
	KindGreenFilter
	KindBlueFilter
)

// DefaultBlurRadius is the kernel radius used by the "Gaussian Blur" command
const DefaultBlurRadius = 4

// Operation selects one transform together with its parameters
type Operation struct {
	Kind   Kind
	Radius int      // Gaussian blur only
	Edge   EdgeMode // Gaussian blur only
}

// Op returns an operation of the given kind with default parameters
func Op(kind Kind) Operation {
	op := Operation{Kind: kind}
	if kind == KindGaussianBlur {
		op.Radius = DefaultBlurRadius
		op.Edge = EdgeZero
	}
	return op
}

// GaussianBlur returns a blur operation with an explicit radius and edge policy
func GaussianBlur(radius int, edge EdgeMode) Operation {
	return Operation{Kind: KindGaussianBlur, Radius: radius, Edge: edge}
}

func (op Operation) String() string {
	name := op.Kind.String()
	if op.Kind == KindGaussianBlur {
		return fmt.Sprintf("%s(radius=%d, edge=%s)", name, op.Radius, op.Edge)
	}
	return name
}

func (k Kind) String() string {
	if entry, ok := registry[k]; ok {
		return entry.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// engineFunc runs one operation on a validated buffer
type engineFunc func(p *Processor, buf *raster.Buffer, op Operation) (*raster.Buffer, error)

type registration struct {
	name string
	fn   engineFunc
}

var (
	registry = make(map[Kind]registration)
	byName   = make(map[string]Kind)
	ordered  []Kind
)

func register(kind Kind, name string, fn engineFunc) {
	registry[kind] = registration{name: name, fn: fn}
	byName[name] = kind
	ordered = append(ordered, kind)
}

// Lookup resolves a menu name such as "Sepia Tone" to an operation with default parameters
func Lookup(name string) (Operation, error) {
	kind, ok := byName[name]
	if !ok {
		return Operation{}, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return Op(kind), nil
}

// Names returns the transform names in menu order
func Names() []string {
	names := make([]string, 0, len(ordered))
	for _, kind := range ordered {
		names = append(names, registry[kind].name)
	}
	return names
}

// Processor dispatches operations to the engines. Engines that compute
// destination rows independently split the work across up to workers goroutines.
type Processor struct {
	workers int
}

// NewProcessor creates a processor; workers <= 0 uses GOMAXPROCS
func NewProcessor(workers int) *Processor {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Processor{workers: workers}
}

// Workers returns the row parallelism limit
func (p *Processor) Workers() int {
	return p.workers
}

// Apply runs op on buf. Flip and color operations modify buf and return it;
// rotate, bulge and blur return a newly allocated buffer.
func (p *Processor) Apply(buf *raster.Buffer, op Operation) (*raster.Buffer, error) {
	entry, ok := registry[op.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownOperation, op.Kind)
	}
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", entry.name, err)
	}
	return entry.fn(p, buf, op)
}

func stateless(fn func(*raster.Buffer) (*raster.Buffer, error)) engineFunc {
	return func(_ *Processor, buf *raster.Buffer, _ Operation) (*raster.Buffer, error) {
		return fn(buf)
	}
}

func channelFilter(ch Channel) engineFunc {
	return func(_ *Processor, buf *raster.Buffer, _ Operation) (*raster.Buffer, error) {
		return IsolateChannel(buf, ch)
	}
}

func init() {
	// Menu order of the editor
	register(KindHorizontalFlip, "Horizontal Flip", stateless(FlipHorizontal))
	register(KindVerticalFlip, "Vertical Flip", stateless(FlipVertical))
	register(KindGrayscale, "Gray Scale", stateless(Grayscale))
	register(KindSepia, "Sepia Tone", stateless(Sepia))
	register(KindInvert, "Invert Colour", stateless(Invert))
	register(KindGaussianBlur, "Gaussian Blur", func(p *Processor, buf *raster.Buffer, op Operation) (*raster.Buffer, error) {
		kernel, err := GaussianKernel(op.Radius)
		if err != nil {
			return nil, err
		}
		return p.Convolve(buf, kernel, op.Edge)
	})
	register(KindBulge, "Bulge Effect", func(p *Processor, buf *raster.Buffer, _ Operation) (*raster.Buffer, error) {
		return p.Bulge(buf)
	})
	register(KindRotate, "Rotate Orientation", stateless(Rotate))
	register(KindRedFilter, "Red Filter", channelFilter(ChannelRed))
	register(KindGreenFilter, "Green Filter", channelFilter(ChannelGreen))
	register(KindBlueFilter, "Blue Filter", channelFilter(ChannelBlue))
}
