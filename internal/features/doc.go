// Package features implements corner detection for AR marker images.
//
// This package provides three classical corner detectors and an
// orchestrator that combines them:
//
//   - FAST: Features from Accelerated Segment Test (the FAST-9 variant),
//     a cheap circular-neighborhood corner test with optional non-maximum
//     suppression
//   - Harris: gradient structure-tensor corner response
//   - ORB: FAST keypoints augmented with an intensity-centroid orientation
//     and a small rotation-aware descriptor
//   - Hybrid: FAST and Harris run independently, merged, deduplicated,
//     ranked by strength and truncated
//
// Detect is the single entry point external callers use: it validates the
// raster, converts it to grayscale, and dispatches on Options.Algorithm.
//
// # Feature Coordinates
//
// Detected features carry positions normalized to [0, 1] in both axes
// (pixel coordinate divided by image width or height), so downstream
// consumers are independent of the analyzed resolution. Strengths are
// likewise normalized to [0, 1].
//
// # Algorithm Selection
//
// The Algorithm type is a closed enum: fast, harris, orb, hybrid. Each
// detector satisfies the Detector interface, so single-algorithm modes
// delegate directly while hybrid mode composes FAST and Harris.
//
// # Performance Considerations
//
// Every detector is O(width*height); Harris is the most expensive because
// of the windowed tensor accumulation. FAST's suppression pass is
// O(candidates * window area) on top of detection, which is fine at
// marker-image resolutions but would want spatial bucketing for very
// large inputs. All computation is synchronous and CPU-bound with no
// shared state, so different images may be processed concurrently.
package features
