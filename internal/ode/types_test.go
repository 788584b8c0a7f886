package ode

import (
	"math"
	"testing"
)

func TestStateClone(t *testing.T) {
	s := State{1.0, 2.0, 3.0}
	c := s.Clone()

	c[0] = 99.0
	if s[0] != 1.0 {
		t.Errorf("clone aliases original: %v", s)
	}
	if len(c) != len(s) {
		t.Errorf("expected clone length %d, got %d", len(s), len(c))
	}
}

func TestStateIsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{"empty", State{}, true},
		{"finite", State{1.0, -2.5, 0.0}, true},
		{"nan", State{1.0, math.NaN()}, false},
		{"positive inf", State{math.Inf(1), 0.0}, false},
		{"negative inf", State{0.0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateNorm(t *testing.T) {
	s := State{3.0, 4.0}
	if got := s.Norm(); math.Abs(got-5.0) > 1e-12 {
		t.Errorf("expected norm 5.0, got %v", got)
	}

	var empty State
	if got := empty.Norm(); got != 0.0 {
		t.Errorf("expected zero norm for empty state, got %v", got)
	}
}
