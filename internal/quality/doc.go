// Package quality scores how reliably a marker image will track in a
// live AR camera session.
//
// The Evaluator consumes a raster and the features detected on it and
// produces a TrackingQuality report: an overall score in [0, 100], five
// component scores, the underlying image statistics, and an ordered list
// of actionable recommendations for improving the marker.
//
// # Scoring
//
// The component scores are:
//
//   - feature: how many features were found and how strong they are
//   - uniqueness: how few of the image's local windows repeat
//   - texture: Shannon entropy of the luminance histogram
//   - contrast: Michelson contrast (max-min)/(max+min)
//   - stability: a blend of feature count, contrast, entropy and spatial
//     feature distribution
//
// The weights combining these are empirically tuned against a corpus of
// known-good and known-bad marker images, not derived from a model. They
// are deliberately hard-coded; changing them changes which uploads pass
// validation.
//
// # Degenerate Inputs
//
// A uniform-color image is not an error: contrast and entropy come out
// zero, no features are found, and the scores degrade smoothly with the
// matching recommendations. Only a malformed raster (non-positive
// dimensions or a mismatched buffer length) is rejected.
//
// Evaluation is a stateless single pass: identical inputs always produce
// identical reports, and different images may be evaluated concurrently.
package quality
