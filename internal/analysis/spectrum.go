package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum is the one-sided magnitude spectrum of a uniformly
// sampled series.
type PowerSpectrum struct {
	Freqs []float64 // Hz
	Power []float64
}

// Spectrum computes the one-sided spectrum of a series sampled every step
// seconds. The series is mean-subtracted, Hann-windowed and zero-padded to
// a power of two; non-finite samples are rejected.
func Spectrum(series []float64, step float64) (*PowerSpectrum, error) {
	if len(series) < 4 {
		return nil, fmt.Errorf("analysis: spectrum needs at least 4 samples, got %d", len(series))
	}
	if step <= 0 {
		return nil, fmt.Errorf("analysis: sample step must be positive, got %g", step)
	}

	mean := 0.0
	for _, v := range series {
		if !finite(v) {
			return nil, fmt.Errorf("analysis: series contains non-finite samples")
		}
		mean += v
	}
	mean /= float64(len(series))

	// Removing the mean keeps DC leakage from masking the real peak.
	n := nextPow2(len(series))
	padded := make([]float64, n)
	for i, v := range series {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(len(series)-1)))
		padded[i] = (v - mean) * w
	}

	spec := fft.FFTReal(padded)

	half := n / 2
	ps := &PowerSpectrum{
		Freqs: make([]float64, half),
		Power: make([]float64, half),
	}
	fs := 1.0 / step
	for i := 0; i < half; i++ {
		ps.Freqs[i] = float64(i) * fs / float64(n)
		ps.Power[i] = cmplx.Abs(spec[i])
	}
	return ps, nil
}

// Dominant returns the frequency of the strongest non-DC bin.
func (ps *PowerSpectrum) Dominant() float64 {
	if len(ps.Power) < 2 {
		return 0
	}
	best := 1
	for i := 2; i < len(ps.Power); i++ {
		if ps.Power[i] > ps.Power[best] {
			best = i
		}
	}
	return ps.Freqs[best]
}

// SmallAngleFrequency is the linearized pendulum frequency sqrt(g/L)/2pi.
func SmallAngleFrequency(gravity, length float64) float64 {
	return math.Sqrt(gravity/length) / (2 * math.Pi)
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
