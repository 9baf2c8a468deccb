package snippet

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// DefaultContextRadius is the number of lines shown on each side of the target.
const DefaultContextRadius = 5

type options struct {
	radius    int
	colorizer Colorizer
}

// Option configures Select.
type Option func(*options)

// WithContextRadius sets how many lines to show before and after the target line.
func WithContextRadius(n int) Option {
	return func(o *options) {
		o.radius = n
	}
}

// WithColorizer sets the formatter used for line numbers and highlights.
func WithColorizer(c Colorizer) Option {
	return func(o *options) {
		if c != nil {
			o.colorizer = c
		}
	}
}

// Select returns the window of lines around lineNumber (1-based).
//
// When fewer than radius lines precede the target, the window starts at the
// first line of the file and the target keeps its global index. Otherwise
// exactly radius lines precede it. The window is clipped at the end of lines.
// The returned Snippet owns a copy of the selected lines.
func Select(lines []string, lineNumber int, opts ...Option) (*Snippet, error) {
	o := options{radius: DefaultContextRadius, colorizer: Plain}
	for _, opt := range opts {
		opt(&o)
	}

	if o.radius < 0 {
		return nil, errors.Wrapf(ErrInvalidContextRadius, "%d", o.radius)
	}
	if lineNumber < 1 || lineNumber > len(lines) {
		return nil, errors.Wrapf(ErrInvalidLineNumber, "line %d of %d", lineNumber, len(lines))
	}

	targetIndex := lineNumber - 1
	end := min(targetIndex+o.radius+1, len(lines))

	start := 0
	if targetIndex > o.radius {
		start = targetIndex - o.radius
		targetIndex = o.radius
	}

	return &Snippet{
		Lines:       slices.Clone(lines[start:end]),
		StartLine:   start,
		TargetIndex: targetIndex,
		colorize:    o.colorizer,
	}, nil
}
