package quality

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ImageStatistics summarizes the luminance content of an image.
type ImageStatistics struct {
	// Mean is the average luminance (0-255).
	Mean float64 `json:"mean"`

	// StdDev is the population standard deviation of luminance.
	StdDev float64 `json:"std_dev"`

	// Histogram is the 256-bin luminance histogram; the bin counts sum to
	// width*height.
	Histogram []int `json:"histogram"`

	// Entropy is the Shannon entropy of the histogram in bits (0-8).
	Entropy float64 `json:"entropy"`

	// Contrast is the Michelson contrast (max-min)/(max+min), 0 when the
	// image is a single luminance value.
	Contrast float64 `json:"contrast"`
}

// computeStatistics builds ImageStatistics from a grayscale buffer.
//
// Mean and entropy are histogram-weighted so the cost past the histogram
// pass is O(256) regardless of the image size. The standard deviation is
// the population form (divide by N): the image is the whole population,
// not a sample of one.
func computeStatistics(gray []uint8) ImageStatistics {
	hist := make([]int, 256)
	for _, v := range gray {
		hist[v]++
	}
	total := float64(len(gray))

	levels := make([]float64, 256)
	weights := make([]float64, 256)
	probs := make([]float64, 256)
	for i, c := range hist {
		levels[i] = float64(i)
		weights[i] = float64(c)
		probs[i] = float64(c) / total
	}

	mean := stat.Mean(levels, weights)

	var variance float64
	for i, c := range hist {
		d := float64(i) - mean
		variance += float64(c) * d * d
	}
	variance /= total

	// stat.Entropy works in nats; the report uses bits.
	entropy := stat.Entropy(probs) / math.Ln2

	minLum, maxLum := -1, 0
	for i, c := range hist {
		if c == 0 {
			continue
		}
		if minLum < 0 {
			minLum = i
		}
		maxLum = i
	}
	contrast := 0.0
	if maxLum > minLum {
		contrast = float64(maxLum-minLum) / float64(maxLum+minLum)
	}

	return ImageStatistics{
		Mean:      mean,
		StdDev:    math.Sqrt(variance),
		Histogram: hist,
		Entropy:   entropy,
		Contrast:  contrast,
	}
}
