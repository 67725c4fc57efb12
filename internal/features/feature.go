package features

import "fmt"

// Feature is a distinctive image point that a live AR tracker can
// re-locate across viewpoints.
type Feature struct {
	// X is the horizontal position normalized to [0, 1] (pixel x / width).
	X float64 `json:"x"`

	// Y is the vertical position normalized to [0, 1] (pixel y / height).
	Y float64 `json:"y"`

	// Scale is always 1.0 in this design; the detectors operate at the
	// native image resolution only.
	Scale float64 `json:"scale"`

	// Orientation is the feature angle in radians. FAST leaves it at 0;
	// Harris uses the gradient direction; ORB uses the intensity centroid.
	Orientation float64 `json:"orientation"`

	// Strength is the detector's cornerness score normalized to [0, 1].
	// Harris saturates at exactly 1.0 for strong corners; see the
	// HarrisDetector docs.
	Strength float64 `json:"strength"`

	// Descriptor is an 8-element appearance fingerprint, present only on
	// ORB features. Values are mean patch intensities normalized to [0, 1].
	Descriptor []float64 `json:"descriptor,omitempty"`
}

// Detector is the capability every corner detector provides: grayscale
// buffer in, normalized features out. Implementations are stateless with
// respect to the image; a single detector value may be reused across
// images and goroutines.
type Detector interface {
	Detect(gray []uint8, width, height int) []Feature
}

// Algorithm selects which detector Detect runs.
type Algorithm string

// The closed set of detection algorithms.
const (
	AlgorithmFAST   Algorithm = "fast"
	AlgorithmHarris Algorithm = "harris"
	AlgorithmORB    Algorithm = "orb"
	AlgorithmHybrid Algorithm = "hybrid"
)

// ParseAlgorithm converts a user-supplied string into an Algorithm.
// The empty string maps to AlgorithmHybrid, the default.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AlgorithmFAST, AlgorithmHarris, AlgorithmORB, AlgorithmHybrid:
		return Algorithm(s), nil
	case "":
		return AlgorithmHybrid, nil
	}
	return "", fmt.Errorf("unknown detection algorithm %q", s)
}

// Options configures feature detection.
//
// The zero value is usable: unset numeric fields fall back to the
// defaults below during Detect, and non-maximum suppression is on
// unless FASTDisableNonMaxSuppression is set.
type Options struct {
	// Algorithm selects the detector. Empty selects hybrid.
	Algorithm Algorithm `json:"algorithm"`

	// MaxFeatures caps the result length, keeping the highest-strength
	// features. Default 500.
	MaxFeatures int `json:"max_features"`

	// FASTThreshold is the intensity margin for the segment test.
	// Default 20.
	FASTThreshold int `json:"fast_threshold"`

	// FASTDisableNonMaxSuppression turns off the 7x7 local-maximum
	// filter on FAST corners. Suppression is on by default; disabling it
	// returns every raw segment-test hit.
	FASTDisableNonMaxSuppression bool `json:"fast_disable_non_max_suppression"`

	// HarrisK is the trace-penalty constant in the Harris response.
	// Default 0.04.
	HarrisK float64 `json:"harris_k"`

	// HarrisThreshold is the minimum Harris response for a corner.
	// Default 0.01.
	HarrisThreshold float64 `json:"harris_threshold"`

	// ORBThreshold is the FAST threshold used inside ORB. Default 15.
	ORBThreshold int `json:"orb_threshold"`

	// ORBPatchSize is the square patch side for orientation and
	// descriptor sampling. Default 31.
	ORBPatchSize int `json:"orb_patch_size"`
}

// DefaultOptions returns the detection configuration used by the upload
// validation workflow: hybrid detection, at most 500 features, and the
// detector defaults tuned for marker images.
func DefaultOptions() Options {
	return Options{
		Algorithm:       AlgorithmHybrid,
		MaxFeatures:     500,
		FASTThreshold:   20,
		HarrisK:         0.04,
		HarrisThreshold: 0.01,
		ORBThreshold:    15,
		ORBPatchSize:    31,
	}
}

// withDefaults fills unset numeric fields.
func (o Options) withDefaults() Options {
	if o.Algorithm == "" {
		o.Algorithm = AlgorithmHybrid
	}
	if o.MaxFeatures <= 0 {
		o.MaxFeatures = 500
	}
	if o.FASTThreshold <= 0 {
		o.FASTThreshold = 20
	}
	if o.HarrisK <= 0 {
		o.HarrisK = 0.04
	}
	if o.HarrisThreshold <= 0 {
		o.HarrisThreshold = 0.01
	}
	if o.ORBThreshold <= 0 {
		o.ORBThreshold = 15
	}
	if o.ORBPatchSize <= 0 {
		o.ORBPatchSize = 31
	}
	return o
}
