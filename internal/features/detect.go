package features

import (
	"fmt"

	"github.com/markerforge/vision/internal/raster"
)

// Detect is the entry point for raw feature detection: it validates the
// raster, converts it to grayscale, and runs the configured detector.
//
// Returns the detected features (possibly empty, a featureless image is
// not an error) or a wrapped raster.ErrInvalidDimensions when the input
// buffer is malformed. The raster is never mutated and nothing is cached
// between calls.
func Detect(r *raster.Raster, opts Options) ([]Feature, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("detect features: %w", err)
	}
	gray := r.Grayscale()
	return NewHybridDetector(opts).Detect(gray, r.Width, r.Height), nil
}
