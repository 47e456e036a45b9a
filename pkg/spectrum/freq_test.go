package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyBinsEvenLength(t *testing.T) {
	freqs := FrequencyBins(8, 8.0)

	// Standard DFT ordering: DC, positive ascending, then negative
	// frequencies ascending toward zero.
	want := []float64{0, 1, 2, 3, -4, -3, -2, -1}
	assert.Equal(t, want, freqs)
}

func TestFrequencyBinsOddLength(t *testing.T) {
	freqs := FrequencyBins(5, 5.0)

	want := []float64{0, 1, 2, -2, -1}
	assert.Equal(t, want, freqs)
}

func TestFrequencyBinsScalesWithSampleRate(t *testing.T) {
	freqs := FrequencyBins(4, 1000.0)

	assert.Equal(t, []float64{0, 250, -500, -250}, freqs)
}

func TestFrequencyBinsDegenerate(t *testing.T) {
	assert.Nil(t, FrequencyBins(0, 1000.0))
	assert.Nil(t, FrequencyBins(-3, 1000.0))
}
