package pendulum

import (
	"fmt"
	"math"
	"strings"
)

// Kind selects a pendulum model variant.
type Kind int

const (
	KindPlanar Kind = iota
	KindSpherical
	KindCartesian
)

func (k Kind) String() string {
	switch k {
	case KindPlanar:
		return "planar"
	case KindSpherical:
		return "spherical"
	case KindCartesian:
		return "cartesian"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Labels names the state columns of the kind's generalized coordinates.
func (k Kind) Labels() []string {
	switch k {
	case KindPlanar:
		return []string{"phi", "omega"}
	case KindSpherical:
		return []string{"theta", "psi", "theta_dot", "psi_dot"}
	case KindCartesian:
		return []string{"x", "y", "z", "vx", "vy", "vz"}
	}
	return nil
}

// ParseKind resolves a model name. Matching is case-insensitive; "2d" and
// "3d" are accepted aliases for planar and spherical.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "planar", "2d":
		return KindPlanar, nil
	case "spherical", "3d":
		return KindSpherical, nil
	case "cartesian":
		return KindCartesian, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Params holds the physical and integration parameters shared by every
// model variant.
type Params struct {
	Length   float64 // rod length (m)
	Gravity  float64 // gravitational acceleration (m/s^2)
	Drag     float64 // quadratic drag coefficient, 0 disables
	Step     float64 // integration step (s)
	Duration float64 // simulated time span (s)
}

func DefaultParams() Params {
	return Params{
		Length:   1.0,
		Gravity:  9.81,
		Step:     0.01,
		Duration: 10.0,
	}
}

func (p Params) Validate() error {
	if p.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %g", ErrInvalidParams, p.Length)
	}
	if p.Step <= 0 {
		return fmt.Errorf("%w: step must be positive, got %g", ErrInvalidParams, p.Step)
	}
	if p.Duration < 0 {
		return fmt.Errorf("%w: duration must be non-negative, got %g", ErrInvalidParams, p.Duration)
	}
	if p.Drag < 0 {
		return fmt.Errorf("%w: drag must be non-negative, got %g", ErrInvalidParams, p.Drag)
	}
	return nil
}

const stepSlack = 1e-9

// sampleCount is floor(Duration/Step)+1: every step boundary in
// [0, Duration] plus the initial sample. The slack keeps an exact multiple
// from landing a hair under the integer boundary.
func (p Params) sampleCount() int {
	return int(math.Floor(p.Duration/p.Step+stepSlack)) + 1
}

// PlanarInit is the initial condition of the planar model.
type PlanarInit struct {
	Phi   float64 // angle from the downward vertical (rad)
	Omega float64 // angular velocity (rad/s)
}

// SphericalInit is the initial condition of the spherical and Cartesian
// models. Theta is the polar angle from the downward vertical, Psi the
// azimuth around it.
type SphericalInit struct {
	Theta    float64
	Psi      float64
	ThetaDot float64
	PsiDot   float64
}
