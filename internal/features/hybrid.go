package features

import (
	"math"
	"sort"
)

// mergeRadius is the normalized distance below which a Harris feature is
// considered a duplicate of a FAST feature and dropped by the merge.
const mergeRadius = 0.01

// HybridDetector orchestrates the individual detectors according to an
// Options value: single-algorithm modes delegate directly, hybrid mode
// merges FAST and Harris. Every mode ranks by strength and truncates to
// MaxFeatures.
type HybridDetector struct {
	opts Options
}

// NewHybridDetector builds a detector for the given options, filling in
// defaults for unset fields.
func NewHybridDetector(opts Options) *HybridDetector {
	return &HybridDetector{opts: opts.withDefaults()}
}

// Detect dispatches on the configured algorithm.
//
// Hybrid mode runs FAST and Harris independently and keeps all FAST
// features plus every Harris feature at normalized distance >= 0.01 from
// each FAST feature. Duplicates within a single detector's output are
// never removed; each detector already emits non-overlapping candidates
// by its own rule.
//
// The final feature list for every mode is sorted by strength descending
// (ties broken by Y then X ascending so the ranking is deterministic)
// and truncated to MaxFeatures. The result is never nil, so callers can
// serialize it as an empty JSON array.
func (d *HybridDetector) Detect(gray []uint8, width, height int) []Feature {
	var features []Feature
	switch d.opts.Algorithm {
	case AlgorithmFAST:
		features = d.fast().Detect(gray, width, height)
	case AlgorithmHarris:
		features = d.harris().Detect(gray, width, height)
	case AlgorithmORB:
		features = d.orb().Detect(gray, width, height)
	default:
		fastFeatures := d.fast().Detect(gray, width, height)
		harrisFeatures := d.harris().Detect(gray, width, height)
		features = mergeDetections(fastFeatures, harrisFeatures)
	}

	rankByStrength(features)
	if len(features) > d.opts.MaxFeatures {
		features = features[:d.opts.MaxFeatures]
	}
	return features
}

func (d *HybridDetector) fast() *FASTDetector {
	return &FASTDetector{
		Threshold:         d.opts.FASTThreshold,
		NonMaxSuppression: !d.opts.FASTDisableNonMaxSuppression,
	}
}

func (d *HybridDetector) harris() *HarrisDetector {
	return &HarrisDetector{K: d.opts.HarrisK, Threshold: d.opts.HarrisThreshold}
}

func (d *HybridDetector) orb() *ORBDetector {
	return &ORBDetector{
		FAST:      &FASTDetector{Threshold: d.opts.ORBThreshold, NonMaxSuppression: !d.opts.FASTDisableNonMaxSuppression},
		PatchSize: d.opts.ORBPatchSize,
	}
}

// mergeDetections keeps all FAST features and the Harris features that do
// not sit within mergeRadius of any FAST feature. FAST wins collisions
// because its graduated scores rank better than Harris's saturated ones.
func mergeDetections(fastFeatures, harrisFeatures []Feature) []Feature {
	merged := make([]Feature, 0, len(fastFeatures)+len(harrisFeatures))
	merged = append(merged, fastFeatures...)

	for _, h := range harrisFeatures {
		duplicate := false
		for _, f := range fastFeatures {
			if math.Hypot(h.X-f.X, h.Y-f.Y) < mergeRadius {
				duplicate = true
				break
			}
		}
		if !duplicate {
			merged = append(merged, h)
		}
	}
	return merged
}

// rankByStrength sorts strongest-first with a deterministic tie-break on
// position (Y, then X, ascending).
func rankByStrength(features []Feature) {
	sort.Slice(features, func(i, j int) bool {
		if features[i].Strength != features[j].Strength {
			return features[i].Strength > features[j].Strength
		}
		if features[i].Y != features[j].Y {
			return features[i].Y < features[j].Y
		}
		return features[i].X < features[j].X
	})
}
