package spectrum

// FrequencyBins returns the frequency in Hz of each DFT bin for an n-point
// transform at the given sample rate, in standard DFT ordering: bin 0 is DC,
// the first half ascends to just below Nyquist, and the second half holds
// the negative frequencies ascending toward zero.
func FrequencyBins(n int, sampleRateHz float64) []float64 {
	if n <= 0 {
		return nil
	}

	freqs := make([]float64, n)
	step := sampleRateHz / float64(n)

	positive := (n-1)/2 + 1
	for i := range positive {
		freqs[i] = float64(i) * step
	}
	for i := positive; i < n; i++ {
		freqs[i] = float64(i-n) * step
	}
	return freqs
}
