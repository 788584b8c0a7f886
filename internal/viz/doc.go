// Package viz renders pendulum runs in the terminal.
//
// The package has two layers. The lower layer is plain rasterization:
// [Canvas] is a braille pixel grid, [Camera] an orbiting perspective
// camera, and [DrawScene] projects one [Frame] of a simulation onto a
// canvas. The upper layer is the interactive Bubble Tea view: [Model]
// steps a pendulum walk in real time, and [Run] wires it into a
// full-screen program.
//
// # Key bindings
//
//	space        pause / resume
//	r            restart the run
//	x/X y/Y z/Z  kick the bob along the ±axis
//	arrows hjkl  orbit the camera
//	+ / -        zoom
//	v            toggle force vectors
//	e            toggle the energy chart
//	t            cycle themes
//	?            help overlay
//	q            quit
package viz
