// Package analysis derives secondary views from simulated trajectories.
//
//   - [Phase]: 2D phase-space portraits rendered to a braille canvas
//   - [Spectrum]: one-sided magnitude spectrum of a state series
//   - [PowerSpectrum.Dominant]: strongest oscillation frequency, for
//     comparison against the small-angle prediction sqrt(g/L)/2pi
package analysis
