// Package spectrum implements the lag-domain to frequency-domain transform
// chain: symmetrize, remove the DC offset, take the FFT magnitude, and
// convert to a logarithmic power scale.
//
// Every operation is a pure function of its input. No stage mutates its
// argument; each allocates and returns a fresh slice. The chain operates in
// bin-index space; attaching a frequency axis is the presentation layer's
// concern.
package spectrum

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

// LogEpsilon is added to every magnitude before taking the logarithm so a
// zero bin maps to a finite floor of 10*log10(1e-12) = -120 dB.
const LogEpsilon = 1e-12

// Result holds the output of every stage of the transform chain for one
// lag-domain function. All slices are owned by the caller and immutable
// after Transform returns.
type Result struct {
	Autocorrelation []float64
	Symmetrized     []float64
	Centered        []float64
	Magnitude       []float64
	PowerDB         []float64
}

// Symmetrize reconstructs the negative-lag half of an autocorrelation
// function by mirroring: g = concat(f, reverse(f)). A real autocorrelation
// function is even, so transforming the symmetrized signal yields a real
// power spectrum without leakage from a truncated half-signal.
func Symmetrize(f []float64) ([]float64, error) {
	if len(f) == 0 {
		return nil, NewInvalidInputError("Symmetrize", "empty input sequence")
	}

	n := len(f)
	g := make([]float64, 2*n)
	copy(g, f)
	for i := range n {
		g[n+i] = f[n-1-i]
	}
	return g, nil
}

// RemoveDCOffset subtracts the arithmetic mean so the spectrum reflects
// only time-varying structure. The output mean is zero to within
// floating-point tolerance.
func RemoveDCOffset(g []float64) ([]float64, error) {
	if len(g) == 0 {
		return nil, NewInvalidInputError("RemoveDCOffset", "empty input sequence")
	}

	mean := stat.Mean(g, nil)
	h := make([]float64, len(g))
	for i, v := range g {
		h[i] = v - mean
	}
	return h, nil
}

// ComputeFFT returns the element-wise magnitude of the discrete Fourier
// transform of h. The transform length equals len(h); bins follow standard
// DFT ordering (bin 0 = DC, ascending, wrap-around negative frequencies).
// No windowing is applied: the symmetrization step already enforces
// periodicity-consistent symmetry.
func ComputeFFT(h []float64) ([]float64, error) {
	if len(h) == 0 {
		return nil, NewInvalidInputError("ComputeFFT", "empty input sequence")
	}

	bins := fft.FFTReal(h)
	m := make([]float64, len(bins))
	for i, c := range bins {
		m[i] = cmplx.Abs(c)
	}
	return m, nil
}

// ToPowerSpectrumDB converts magnitudes to decibels: 10*log10(m + 1e-12).
// The epsilon is applied before the logarithm so a zero magnitude stays
// finite.
func ToPowerSpectrumDB(m []float64) ([]float64, error) {
	if len(m) == 0 {
		return nil, NewInvalidInputError("ToPowerSpectrumDB", "empty input sequence")
	}

	p := make([]float64, len(m))
	for i, v := range m {
		p[i] = 10 * math.Log10(v+LogEpsilon)
	}
	return p, nil
}

// Transform runs the full chain on one lag-domain function and collects
// every intermediate stage.
func Transform(f []float64) (*Result, error) {
	symmetrized, err := Symmetrize(f)
	if err != nil {
		return nil, err
	}
	centered, err := RemoveDCOffset(symmetrized)
	if err != nil {
		return nil, err
	}
	magnitude, err := ComputeFFT(centered)
	if err != nil {
		return nil, err
	}
	powerDB, err := ToPowerSpectrumDB(magnitude)
	if err != nil {
		return nil, err
	}

	autocorr := make([]float64, len(f))
	copy(autocorr, f)

	return &Result{
		Autocorrelation: autocorr,
		Symmetrized:     symmetrized,
		Centered:        centered,
		Magnitude:       magnitude,
		PowerDB:         powerDB,
	}, nil
}
