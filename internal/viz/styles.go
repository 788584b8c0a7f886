package viz

import "github.com/charmbracelet/lipgloss"

// styles holds the rendered-text styles for one theme. The live view
// rebuilds it whenever the theme cycles, so themes never leak into
// package state.
type styles struct {
	canvas lipgloss.Style
	stats  lipgloss.Style
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	good   lipgloss.Style
	warn   lipgloss.Style
	bad    lipgloss.Style
	graph  lipgloss.Style
	help   lipgloss.Style
}

func newStyles(th Theme) styles {
	return styles{
		canvas: lipgloss.NewStyle().Foreground(th.Canvas).Padding(1, 2),
		stats: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(th.Muted).
			Padding(1, 2).
			Width(statsWidth),
		title: lipgloss.NewStyle().Foreground(th.Title).Bold(true),
		label: lipgloss.NewStyle().Foreground(th.Muted).Width(12),
		value: lipgloss.NewStyle().Foreground(th.Text),
		good:  lipgloss.NewStyle().Foreground(th.Good).Bold(true),
		warn:  lipgloss.NewStyle().Foreground(th.Warn).Bold(true),
		bad:   lipgloss.NewStyle().Foreground(th.Bad).Bold(true),
		graph: lipgloss.NewStyle().Foreground(th.Accent),
		help:  lipgloss.NewStyle().Foreground(th.Muted),
	}
}
