package config

import "sort"

// Presets are ready-made run configurations for the run and live commands.
var Presets = map[string]RunConfig{
	"small-swing": {
		Model: "planar", Length: 1.0, Gravity: 9.81, Step: 0.01, Duration: 10.0,
		Init: InitConfig{Phi: 0.1},
	},
	"large-swing": {
		Model: "planar", Length: 1.0, Gravity: 9.81, Step: 0.01, Duration: 20.0,
		Init: InitConfig{Phi: 2.5},
	},
	"damped": {
		Model: "planar", Length: 1.0, Gravity: 9.81, Drag: 0.2, Step: 0.01, Duration: 20.0,
		Init: InitConfig{Phi: 1.2},
	},
	"conical": {
		// psi-dot = sqrt(g/(L*cos(theta))) puts the bob on a steady circle.
		Model: "spherical", Length: 1.0, Gravity: 9.81, Step: 0.01, Duration: 20.0,
		Init: InitConfig{Theta: 0.5, PsiDot: 3.344},
	},
	"precession": {
		Model: "spherical", Length: 1.0, Gravity: 9.81, Step: 0.01, Duration: 20.0,
		Init: InitConfig{Theta: 1.0, PsiDot: 1.5},
	},
	"inverted": {
		// 175 degrees; the fine step keeps the fast bottom passes accurate.
		Model: "spherical", Length: 1.0, Gravity: 9.81, Step: 0.002, Duration: 10.0,
		Init: InitConfig{Theta: 3.0543},
	},
	"pole-kick": {
		// Rest at the bottom pole plus a sideways kick: exercises the
		// Cartesian fallback.
		Model: "spherical", Length: 1.0, Gravity: 9.81, Step: 0.01, Duration: 10.0,
		Impulse: ImpulseConfig{Y: 0.2},
	},
}

// Preset returns the named run configuration by value.
func Preset(name string) (RunConfig, bool) {
	rc, ok := Presets[name]
	return rc, ok
}

// PresetNames lists the available presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
