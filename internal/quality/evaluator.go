package quality

import (
	"fmt"
	"math"
	"sort"

	"github.com/markerforge/vision/internal/features"
	"github.com/markerforge/vision/internal/raster"
)

const (
	// distributionGrid is the side of the grid used to score feature
	// spread over the normalized [0,1]^2 image plane.
	distributionGrid = 8

	// uniquenessWindow and uniquenessStep define the sliding window used
	// to count distinct local patterns: 16x16 windows at 50% overlap.
	uniquenessWindow = 16
	uniquenessStep   = 8

	// uniquenessSample and uniquenessBucket control the window hash:
	// every 4th pixel, luminance quantized into 8 levels of 32.
	uniquenessSample = 4
	uniquenessBucket = 32
)

// Recommendation texts, evaluated in a fixed order so reports are stable.
const (
	recommendMoreFeatures = "Add more distinctive detail: corners, edges, and irregular shapes give the tracker points to lock onto"
	recommendContrast     = "Increase contrast: the difference between the brightest and darkest regions is too small for reliable tracking"
	recommendTexture      = "Add varied texture: large flat or smoothly shaded areas carry no trackable information"
	recommendUniqueness   = "Avoid repetitive patterns: regions that look alike make features ambiguous to match"
	recommendStability    = "Spread detail across the whole image: tracking drifts when all features sit in one area"
	recommendExcellent    = "Image has excellent tracking characteristics"
)

// TrackingQuality is the evaluator's report for one marker image.
type TrackingQuality struct {
	// Overall is the composite trackability score, an integer in [0, 100].
	Overall int `json:"overall"`

	// FeatureScore reflects feature count and strength.
	FeatureScore float64 `json:"feature_score"`

	// UniquenessScore reflects how few local windows repeat.
	UniquenessScore float64 `json:"uniqueness_score"`

	// TextureScore reflects luminance entropy.
	TextureScore float64 `json:"texture_score"`

	// ContrastScore reflects Michelson contrast.
	ContrastScore float64 `json:"contrast_score"`

	// StabilityScore blends count, contrast, entropy and feature spread.
	StabilityScore float64 `json:"stability_score"`

	// FeatureCount is the number of features the score was computed from.
	FeatureCount int `json:"feature_count"`

	// Statistics are the raw image statistics behind the scores.
	Statistics ImageStatistics `json:"statistics"`

	// Recommendations lists actionable guidance, most fundamental first.
	// Non-empty whenever any component score falls below its threshold.
	Recommendations []string `json:"recommendations"`
}

// Evaluator computes tracking-quality reports. It holds no state; one
// value may be shared freely across goroutines.
type Evaluator struct{}

// NewEvaluator returns an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate scores how reliably the image will track, given the features
// detected on it.
//
// Parameters:
//   - r: the decoded RGBA raster the features were detected on.
//   - feats: detector output with normalized coordinates. An empty slice
//     is valid and yields zero-valued feature-dependent sub-scores, never
//     an error.
//
// Returns the complete report, or a wrapped raster.ErrInvalidDimensions
// when the raster is malformed.
//
// # Scoring
//
// Component scores, each in [0, 100]:
//
//	feature   = min(count/3 + strength*0.5, 100)
//	uniqueness = min(distinctWindows/theoreticalMax, 1) * 100
//	texture   = min(entropy * 14, 100)
//	contrast  = min(michelson * 100, 100)
//	stability = min(min(count/100,1)*30 + michelson*25
//	              + min(entropy/7,1)*20 + distribution*0.25, 100)
//
// where strength blends the mean feature strength (40%) with the mean of
// the top quartile (60%), and distribution combines 8x8 grid coverage
// (60%) with fill uniformity (40%).
//
// The overall score is the weighted sum
// 0.25*feature + 0.20*uniqueness + 0.20*texture + 0.15*contrast +
// 0.20*stability, rounded and clamped to [0, 100]. All weights are
// empirical; see the package documentation.
func (e *Evaluator) Evaluate(r *raster.Raster, feats []features.Feature) (*TrackingQuality, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("evaluate tracking quality: %w", err)
	}
	gray := r.Grayscale()
	stats := computeStatistics(gray)

	distribution := distributionScore(feats)
	strength := strengthScore(feats)
	uniqueness := uniquenessScore(gray, r.Width, r.Height)

	count := float64(len(feats))
	featureScore := math.Min(count/3+strength*0.5, 100)
	textureScore := math.Min(stats.Entropy*14, 100)
	contrastScore := math.Min(stats.Contrast*100, 100)
	stabilityScore := math.Min(
		math.Min(count/100, 1)*30+
			stats.Contrast*25+
			math.Min(stats.Entropy/7, 1)*20+
			distribution*0.25,
		100)

	overall := featureScore*0.25 + uniqueness*0.20 + textureScore*0.20 +
		contrastScore*0.15 + stabilityScore*0.20
	overallInt := int(math.Round(overall))
	if overallInt < 0 {
		overallInt = 0
	} else if overallInt > 100 {
		overallInt = 100
	}

	q := &TrackingQuality{
		Overall:         overallInt,
		FeatureScore:    featureScore,
		UniquenessScore: uniqueness,
		TextureScore:    textureScore,
		ContrastScore:   contrastScore,
		StabilityScore:  stabilityScore,
		FeatureCount:    len(feats),
		Statistics:      stats,
	}
	q.Recommendations = recommend(q)
	return q, nil
}

// distributionScore measures feature spread over an 8x8 grid on the
// normalized image plane: 60% cell coverage, 40% fill uniformity.
// Zero when there are no features.
func distributionScore(feats []features.Feature) float64 {
	if len(feats) == 0 {
		return 0
	}

	var cells [distributionGrid * distributionGrid]int
	for _, f := range feats {
		gx := int(f.X * distributionGrid)
		gy := int(f.Y * distributionGrid)
		if gx >= distributionGrid {
			gx = distributionGrid - 1
		}
		if gy >= distributionGrid {
			gy = distributionGrid - 1
		}
		cells[gy*distributionGrid+gx]++
	}

	nonEmpty := 0
	maxCount := 0
	for _, c := range cells {
		if c > 0 {
			nonEmpty++
		}
		if c > maxCount {
			maxCount = c
		}
	}

	coverage := float64(nonEmpty) / float64(len(cells))
	uniformity := 0.0
	if maxCount > 0 {
		meanCount := float64(len(feats)) / float64(len(cells))
		uniformity = 1 - (float64(maxCount)-meanCount)/float64(maxCount)
	}
	return (coverage*0.6 + uniformity*0.4) * 100
}

// strengthScore blends the mean strength of all features (40%) with the
// mean of the top 25% (60%, at least one feature). Zero without features.
func strengthScore(feats []features.Feature) float64 {
	if len(feats) == 0 {
		return 0
	}

	strengths := make([]float64, len(feats))
	var sum float64
	for i, f := range feats {
		strengths[i] = f.Strength
		sum += f.Strength
	}
	avg := sum / float64(len(strengths))

	sort.Sort(sort.Reverse(sort.Float64Slice(strengths)))
	topN := len(strengths) / 4
	if topN < 1 {
		topN = 1
	}
	var topSum float64
	for _, s := range strengths[:topN] {
		topSum += s
	}
	topAvg := topSum / float64(topN)

	return math.Min((avg*0.4+topAvg*0.6)*100, 100)
}

// uniquenessScore counts distinct local patterns: 16x16 windows slid at
// 50% overlap, each hashed by quantizing every 4th pixel into 8 intensity
// levels. The count is normalized by floor(W/8)*floor(H/8), the number of
// window positions an image of this size could theoretically offer.
func uniquenessScore(gray []uint8, width, height int) float64 {
	theoreticalMax := (width / uniquenessStep) * (height / uniquenessStep)
	if theoreticalMax == 0 {
		return 0
	}

	// 16x16 window sampled every 4th pixel = 16 bucketed values per key.
	type windowKey [16]uint8
	seen := make(map[windowKey]struct{})

	for wy := 0; wy+uniquenessWindow <= height; wy += uniquenessStep {
		for wx := 0; wx+uniquenessWindow <= width; wx += uniquenessStep {
			var key windowKey
			i := 0
			for dy := 0; dy < uniquenessWindow; dy += uniquenessSample {
				for dx := 0; dx < uniquenessWindow; dx += uniquenessSample {
					key[i] = gray[(wy+dy)*width+wx+dx] / uniquenessBucket
					i++
				}
			}
			seen[key] = struct{}{}
		}
	}

	return math.Min(float64(len(seen))/float64(theoreticalMax), 1) * 100
}

// recommend applies the guidance rules in their fixed order. When no rule
// fires and the overall score clears 80, a single positive message is
// emitted instead.
func recommend(q *TrackingQuality) []string {
	var recs []string
	if q.FeatureScore < 50 {
		recs = append(recs, recommendMoreFeatures)
	}
	if q.ContrastScore < 40 {
		recs = append(recs, recommendContrast)
	}
	if q.TextureScore < 40 {
		recs = append(recs, recommendTexture)
	}
	if q.UniquenessScore < 50 {
		recs = append(recs, recommendUniqueness)
	}
	if q.StabilityScore < 60 {
		recs = append(recs, recommendStability)
	}
	if len(recs) == 0 && q.Overall > 80 {
		recs = append(recs, recommendExcellent)
	}
	return recs
}
