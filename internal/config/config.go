package config

import (
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/avekker/pendlab/internal/pendulum"
)

const (
	DefaultLength   = 1.0
	DefaultGravity  = 9.81
	DefaultStep     = 0.01
	DefaultDuration = 10.0
	DefaultTheta    = 0.5
	DefaultFPS      = 60
	DefaultTrail    = 400
)

type Config struct {
	Run  RunConfig  `yaml:"run"`
	View ViewConfig `yaml:"view"`
}

// RunConfig selects a model variant and its parameters.
type RunConfig struct {
	Model    string        `yaml:"model"`
	Length   float64       `yaml:"length"`
	Gravity  float64       `yaml:"gravity"`
	Drag     float64       `yaml:"drag"`
	Step     float64       `yaml:"step"`
	Duration float64       `yaml:"duration"`
	Init     InitConfig    `yaml:"init"`
	Impulse  ImpulseConfig `yaml:"impulse"`
}

// InitConfig seeds the initial state. Phi/Omega apply to the planar model,
// the theta/psi fields to the spherical and cartesian ones.
type InitConfig struct {
	Phi      float64 `yaml:"phi"`
	Omega    float64 `yaml:"omega"`
	Theta    float64 `yaml:"theta"`
	Psi      float64 `yaml:"psi"`
	ThetaDot float64 `yaml:"theta_dot"`
	PsiDot   float64 `yaml:"psi_dot"`
}

// ImpulseConfig is the t=0 momentum kick.
type ImpulseConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// ViewConfig carries all live-view state explicitly; there are no mutable
// display globals.
type ViewConfig struct {
	Theme       string  `yaml:"theme"`
	FPS         int     `yaml:"fps"`
	Trail       int     `yaml:"trail"`
	CameraYaw   float64 `yaml:"camera_yaw"`
	CameraPitch float64 `yaml:"camera_pitch"`
	Zoom        float64 `yaml:"zoom"`
	ShowVectors bool    `yaml:"show_vectors"`
	ShowEnergy  bool    `yaml:"show_energy"`
	KickSize    float64 `yaml:"kick_size"`
}

func Default() *Config {
	return &Config{
		Run: RunConfig{
			Model:    "planar",
			Length:   DefaultLength,
			Gravity:  DefaultGravity,
			Step:     DefaultStep,
			Duration: DefaultDuration,
			Init: InitConfig{
				Phi:   DefaultTheta,
				Theta: DefaultTheta,
			},
		},
		View: ViewConfig{
			Theme:       "dark",
			FPS:         DefaultFPS,
			Trail:       DefaultTrail,
			CameraYaw:   0.6,
			CameraPitch: 0.35,
			Zoom:        1.0,
			ShowVectors: true,
			ShowEnergy:  true,
			KickSize:    0.5,
		},
	}
}

// Load reads a YAML config, overlaying the file onto the defaults so
// partial files stay valid.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params maps the run section onto simulation parameters.
func (r *RunConfig) Params() pendulum.Params {
	return pendulum.Params{
		Length:   r.Length,
		Gravity:  r.Gravity,
		Drag:     r.Drag,
		Step:     r.Step,
		Duration: r.Duration,
	}
}

// Request assembles a full simulation request, resolving the model name.
func (r *RunConfig) Request() (pendulum.Request, error) {
	kind, err := pendulum.ParseKind(r.Model)
	if err != nil {
		return pendulum.Request{}, err
	}
	return pendulum.Request{
		Kind:   kind,
		Params: r.Params(),
		Planar: pendulum.PlanarInit{Phi: r.Init.Phi, Omega: r.Init.Omega},
		Spherical: pendulum.SphericalInit{
			Theta:    r.Init.Theta,
			Psi:      r.Init.Psi,
			ThetaDot: r.Init.ThetaDot,
			PsiDot:   r.Init.PsiDot,
		},
		Impulse: mgl64.Vec3{r.Impulse.X, r.Impulse.Y, r.Impulse.Z},
	}, nil
}
