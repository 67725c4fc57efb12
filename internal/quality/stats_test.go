package quality

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStatistics_Uniform(t *testing.T) {
	gray := make([]uint8, 64*64)
	for i := range gray {
		gray[i] = 128
	}

	s := computeStatistics(gray)

	assert.Equal(t, 128.0, s.Mean)
	assert.Zero(t, s.StdDev)
	assert.Zero(t, s.Entropy)
	assert.Zero(t, s.Contrast, "max == min must yield zero contrast, not NaN")
	assert.Equal(t, 64*64, s.Histogram[128])
}

func TestComputeStatistics_HistogramSumsToPixelCount(t *testing.T) {
	gray := make([]uint8, 100*50)
	for i := range gray {
		gray[i] = uint8(i % 256)
	}

	s := computeStatistics(gray)

	require.Len(t, s.Histogram, 256)
	total := 0
	for _, c := range s.Histogram {
		total += c
	}
	assert.Equal(t, 100*50, total)
}

func TestComputeStatistics_TwoLevel(t *testing.T) {
	// Half 0, half 255: mean 127.5, population std-dev 127.5, entropy
	// exactly 1 bit, full Michelson contrast.
	gray := make([]uint8, 1000)
	for i := 500; i < 1000; i++ {
		gray[i] = 255
	}

	s := computeStatistics(gray)

	assert.InDelta(t, 127.5, s.Mean, 1e-9)
	assert.InDelta(t, 127.5, s.StdDev, 1e-9)
	assert.InDelta(t, 1.0, s.Entropy, 1e-9)
	assert.InDelta(t, 1.0, s.Contrast, 1e-9)
}

func TestComputeStatistics_EntropyBounds(t *testing.T) {
	// One pixel of every level: maximal 8-bit entropy.
	gray := make([]uint8, 256)
	for i := range gray {
		gray[i] = uint8(i)
	}

	s := computeStatistics(gray)

	assert.InDelta(t, 8.0, s.Entropy, 1e-9)
	assert.False(t, math.IsNaN(s.Entropy))
}
