package analysis

import (
	"math"
	"testing"

	"github.com/avekker/pendlab/internal/pendulum"
)

func TestSpectrumFindsPureTone(t *testing.T) {
	const (
		fs   = 100.0
		freq = 2.0
	)
	series := make([]float64, 1000)
	for i := range series {
		series[i] = math.Sin(2 * math.Pi * freq * float64(i) / fs)
	}

	ps, err := Spectrum(series, 1/fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ps.Dominant(); math.Abs(got-freq) > 0.1 {
		t.Errorf("expected dominant near %.1f Hz, got %.3f", freq, got)
	}
}

func TestSpectrumMatchesSmallAngle(t *testing.T) {
	p := pendulum.DefaultParams()
	p.Duration = 60

	tr, err := pendulum.SimulatePlanar(p, pendulum.PlanarInit{Phi: 0.05})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ps, err := Spectrum(tr.Series(0), p.Step)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := SmallAngleFrequency(p.Gravity, p.Length)
	if got := ps.Dominant(); math.Abs(got-want) > 0.02 {
		t.Errorf("expected dominant near %.4f Hz, got %.4f", want, got)
	}
}

func TestSpectrumMeanOffsetDoesNotMaskPeak(t *testing.T) {
	const fs = 50.0
	series := make([]float64, 500)
	for i := range series {
		series[i] = 5.0 + 0.01*math.Sin(2*math.Pi*float64(i)/fs)
	}

	ps, err := Spectrum(series, 1/fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ps.Dominant(); math.Abs(got-1.0) > 0.2 {
		t.Errorf("expected dominant near 1 Hz despite offset, got %.3f", got)
	}
}

func TestSpectrumShape(t *testing.T) {
	series := make([]float64, 100)
	for i := range series {
		series[i] = math.Cos(float64(i))
	}

	ps, err := Spectrum(series, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ps.Freqs) != 64 || len(ps.Power) != 64 {
		t.Fatalf("expected 64 bins for 100 samples, got %d/%d", len(ps.Freqs), len(ps.Power))
	}
	if ps.Freqs[0] != 0 {
		t.Errorf("expected DC bin at 0 Hz, got %g", ps.Freqs[0])
	}
	for i := 1; i < len(ps.Freqs); i++ {
		if ps.Freqs[i] <= ps.Freqs[i-1] {
			t.Fatalf("frequencies not increasing at bin %d", i)
		}
	}
}

func TestSpectrumRejectsBadInput(t *testing.T) {
	if _, err := Spectrum([]float64{1, 2, 3}, 0.01); err == nil {
		t.Error("expected error for short series")
	}
	if _, err := Spectrum(make([]float64, 16), 0); err == nil {
		t.Error("expected error for zero step")
	}

	bad := make([]float64, 16)
	bad[7] = math.NaN()
	if _, err := Spectrum(bad, 0.01); err == nil {
		t.Error("expected error for non-finite series")
	}
}

func TestSmallAngleFrequency(t *testing.T) {
	want := math.Sqrt(9.81) / (2 * math.Pi)
	if got := SmallAngleFrequency(9.81, 1); math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %.6f, got %.6f", want, got)
	}
	// quadrupling the length halves the frequency
	if got := SmallAngleFrequency(9.81, 4); math.Abs(got-want/2) > 1e-12 {
		t.Errorf("expected %.6f, got %.6f", want/2, got)
	}
}

func TestNextPow2(t *testing.T) {
	cases := []struct{ in, want int }{
		{1, 1}, {2, 2}, {3, 4}, {100, 128}, {1024, 1024}, {1025, 2048},
	}
	for _, tc := range cases {
		if got := nextPow2(tc.in); got != tc.want {
			t.Errorf("nextPow2(%d): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}
